package ui

const (
	// CellWidth is the number of terminal columns a board cell occupies.
	CellWidth = 3

	gridLeft = 2
	gridTop  = 2

	// Title is drawn on the first row.
	Title = "Campo Minato"

	restartLabel = "[ Restart ]"
)

// Layout maps board cells and controls to terminal coordinates.
//
//	row 0            title
//	row gridTop..    grid, CellWidth columns per cell
//	grid + 1         status message
//	grid + 2         flag counter
//	grid + 4         restart button
type Layout struct {
	Rows, Cols int
}

// NewLayout creates the layout for a rows x cols board.
func NewLayout(rows, cols int) Layout {
	return Layout{Rows: rows, Cols: cols}
}

// CellOrigin returns the screen position of a cell's left edge.
func (l Layout) CellOrigin(row, col int) (x, y int) {
	return gridLeft + col*CellWidth, gridTop + row
}

// CellAt returns the board cell drawn at screen position (x, y).
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if x < gridLeft || y < gridTop {
		return 0, 0, false
	}
	row = y - gridTop
	col = (x - gridLeft) / CellWidth
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// TitleX returns the column where the title starts, centered over the grid.
func (l Layout) TitleX() int {
	return gridLeft + max(0, (l.GridWidth()-len(Title))/2)
}

// GridWidth returns the width of the grid in terminal columns.
func (l Layout) GridWidth() int {
	return l.Cols * CellWidth
}

// StatusY returns the row of the status message.
func (l Layout) StatusY() int {
	return gridTop + l.Rows + 1
}

// CounterY returns the row of the flag counter.
func (l Layout) CounterY() int {
	return l.StatusY() + 1
}

// RestartOrigin returns the position of the restart button.
func (l Layout) RestartOrigin() (x, y int) {
	return gridLeft, l.CounterY() + 2
}

// RestartAt returns true if (x, y) falls on the restart button.
func (l Layout) RestartAt(x, y int) bool {
	bx, by := l.RestartOrigin()
	return y == by && x >= bx && x < bx+len(restartLabel)
}
