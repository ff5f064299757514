package board

import (
	"math/rand"
	"time"
)

const (
	// DefaultRows is the number of rows of the standard board.
	DefaultRows = 8
	// DefaultCols is the number of columns of the standard board.
	DefaultCols = 8
	// DefaultMines is the number of mines on the standard board.
	DefaultMines = 10
)

// Board holds the mine layout and the player-visible state of every cell.
// Cells are stored in flat slices indexed by row*cols+col.
//
// Every operation is a no-op on invalid input (out of bounds, revealed cell,
// terminal state); the board never reports errors. A Board is not safe for
// concurrent use.
type Board struct {
	rows      int
	cols      int
	mineCount int

	mines    []bool
	revealed []bool
	flagged  []bool

	state         State
	flags         int
	revealedCount int // All revealed cells, mines included
	safeRevealed  int // Revealed non-mine cells

	rng *rand.Rand
}

// New creates an empty board. Mines are placed on the first reveal.
// mineCount is clamped to [0, rows*cols-1] so the first cell can always be safe.
// A nil rng is replaced by a time-seeded source.
func New(rows, cols, mineCount int, rng *rand.Rand) *Board {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	mineCount = max(0, min(mineCount, rows*cols-1))
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		rng:       rng,
	}
	b.Reset()
	return b
}

// NewDefault creates the standard 8x8 board with 10 mines.
func NewDefault(rng *rand.Rand) *Board {
	return New(DefaultRows, DefaultCols, DefaultMines, rng)
}

// Reset discards the mine layout and all cell state.
func (b *Board) Reset() {
	n := b.rows * b.cols
	b.mines = make([]bool, n)
	b.revealed = make([]bool, n)
	b.flagged = make([]bool, n)
	b.state = NotStarted
	b.flags = 0
	b.revealedCount = 0
	b.safeRevealed = 0
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// MineCount returns the number of mines the board holds once started.
func (b *Board) MineCount() int { return b.mineCount }

// State returns the current game state.
func (b *Board) State() State { return b.state }

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int { return b.flags }

// MinesRemaining returns the mine count minus the flags placed.
func (b *Board) MinesRemaining() int { return b.mineCount - b.flags }

// RevealedCount returns the number of revealed cells, mines included.
func (b *Board) RevealedCount() int { return b.revealedCount }

// InBounds returns true if the coordinates name a cell on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsMine returns true if the cell holds a mine. Always false before the first reveal.
func (b *Board) IsMine(row, col int) bool {
	return b.InBounds(row, col) && b.mines[b.index(row, col)]
}

// IsRevealed returns true if the cell has been revealed.
func (b *Board) IsRevealed(row, col int) bool {
	return b.InBounds(row, col) && b.revealed[b.index(row, col)]
}

// IsFlagged returns true if the cell carries a flag.
func (b *Board) IsFlagged(row, col int) bool {
	return b.InBounds(row, col) && b.flagged[b.index(row, col)]
}

// NeighborMineCount returns how many of the up to eight adjacent cells are mines.
func (b *Board) NeighborMineCount(row, col int) int {
	if !b.InBounds(row, col) {
		return 0
	}
	count := 0
	b.eachNeighbor(row, col, func(i int) {
		if b.mines[i] {
			count++
		}
	})
	return count
}

// IsWin returns true if every non-mine cell is revealed.
func (b *Board) IsWin() bool {
	return b.safeRevealed == b.rows*b.cols-b.mineCount
}

// View returns the appearance of a cell. Out-of-bounds cells read as hidden.
func (b *Board) View(row, col int) CellView {
	if !b.InBounds(row, col) {
		return CellView{Kind: CellHidden}
	}
	i := b.index(row, col)
	switch {
	case !b.revealed[i] && b.flagged[i]:
		return CellView{Kind: CellFlagged}
	case !b.revealed[i]:
		return CellView{Kind: CellHidden}
	case b.mines[i]:
		return CellView{Kind: CellMine}
	}
	if n := b.NeighborMineCount(row, col); n > 0 {
		return CellView{Kind: CellNumber, Count: n}
	}
	return CellView{Kind: CellEmpty}
}

// Reveal opens a cell and returns the number of cells newly revealed.
//
// The first reveal places the mines, never on the revealed cell. Revealing a
// mine loses the game and exposes every mine; other cells keep their state.
// Revealing a cell with no neighbouring mines opens its neighbours in turn.
// Revealing a flagged cell removes the flag.
func (b *Board) Reveal(row, col int) int {
	if !b.InBounds(row, col) || b.state.IsTerminal() {
		return 0
	}
	i := b.index(row, col)
	if b.revealed[i] {
		return 0
	}

	if b.state == NotStarted {
		b.placeMines(i)
		b.state = InProgress
	}

	if b.mines[i] {
		b.open(i)
		b.state = Lost
		return 1 + b.revealMines()
	}

	n := b.floodFill(i)
	if b.IsWin() {
		b.state = Won
	}
	return n
}

// ToggleFlag flags or unflags an unrevealed cell and reports whether the
// board changed. Flagging is refused once every mine has a flag.
func (b *Board) ToggleFlag(row, col int) bool {
	if !b.InBounds(row, col) || b.state.IsTerminal() {
		return false
	}
	i := b.index(row, col)
	if b.revealed[i] {
		return false
	}

	if b.flagged[i] {
		b.flagged[i] = false
		b.flags--
		return true
	}
	if b.flags >= b.mineCount {
		return false
	}
	b.flagged[i] = true
	b.flags++
	return true
}

// floodFill reveals the cell at start and, while the revealed cells have no
// neighbouring mines, their unrevealed neighbours. Mines are never opened.
func (b *Board) floodFill(start int) int {
	revealed := 0
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.revealed[i] || b.mines[i] {
			continue
		}

		b.open(i)
		revealed++

		row, col := b.position(i)
		if b.NeighborMineCount(row, col) > 0 {
			continue
		}
		b.eachNeighbor(row, col, func(n int) {
			if !b.revealed[n] {
				stack = append(stack, n)
			}
		})
	}
	return revealed
}

// revealMines opens every mine not yet revealed.
func (b *Board) revealMines() int {
	revealed := 0
	for i, mine := range b.mines {
		if mine && !b.revealed[i] {
			b.open(i)
			revealed++
		}
	}
	return revealed
}

// open marks a single cell revealed, dropping any flag on it.
func (b *Board) open(i int) {
	if b.flagged[i] {
		b.flagged[i] = false
		b.flags--
	}
	b.revealed[i] = true
	b.revealedCount++
	if !b.mines[i] {
		b.safeRevealed++
	}
}

// eachNeighbor calls fn with the index of every in-bounds neighbour.
func (b *Board) eachNeighbor(row, col int, fn func(i int)) {
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if (r == row && c == col) || !b.InBounds(r, c) {
				continue
			}
			fn(b.index(r, c))
		}
	}
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) position(i int) (row, col int) {
	return i / b.cols, i % b.cols
}
