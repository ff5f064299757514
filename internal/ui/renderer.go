package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/campominato/internal/board"
	"github.com/samdwyer/campominato/internal/gamedata"
)

// BoardView is the read-only board state the renderer draws.
type BoardView interface {
	Rows() int
	Cols() int
	MineCount() int
	FlagCount() int
	View(row, col int) board.CellView
}

// Frame is everything drawn in one pass.
type Frame struct {
	Board  BoardView
	Cursor board.Position
	Status string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles *gamedata.CellStyles
	layout Layout
}

// NewRenderer creates a new renderer for the given screen and layout.
func NewRenderer(screen *Screen, styles *gamedata.CellStyles, layout Layout) *Renderer {
	return &Renderer{
		screen: screen,
		styles: styles,
		layout: layout,
	}
}

// Render draws the title, board, status lines and restart button.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawText(r.layout.TitleX(), 0, Title, titleStyle)

	for row := 0; row < f.Board.Rows(); row++ {
		for col := 0; col < f.Board.Cols(); col++ {
			cursor := f.Cursor.Row == row && f.Cursor.Col == col
			r.drawCell(row, col, f.Board.View(row, col), cursor)
		}
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(gridLeft, r.layout.StatusY(), f.Status, textStyle)
	r.screen.DrawText(gridLeft, r.layout.CounterY(),
		fmt.Sprintf("Flags: %d/%d", f.Board.FlagCount(), f.Board.MineCount()), textStyle)

	bx, by := r.layout.RestartOrigin()
	buttonStyle := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorSilver).
		Bold(true)
	r.screen.DrawText(bx, by, restartLabel, buttonStyle)

	r.screen.Show()
}

// drawCell draws one cell as its glyph padded by a space on each side.
func (r *Renderer) drawCell(row, col int, view board.CellView, cursor bool) {
	glyph, style := '?', tcell.StyleDefault
	if def := r.styles.Get(view.Key()); def != nil {
		glyph, style = def.GlyphRune(), def.Style()
	}
	if cursor {
		style = style.Reverse(true)
	}

	x, y := r.layout.CellOrigin(row, col)
	r.screen.SetContent(x, y, ' ', style)
	r.screen.SetContent(x+1, y, glyph, style)
	r.screen.SetContent(x+2, y, ' ', style)
}
