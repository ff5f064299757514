package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/campominato/internal/board"
	"github.com/samdwyer/campominato/internal/gamedata"
	"github.com/samdwyer/campominato/internal/telemetry"
	"github.com/samdwyer/campominato/internal/ui"
)

// mouseButtons are the buttons the game reacts to; wheel events are ignored.
const mouseButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	layout   ui.Layout
	board    *board.Board
	cursor   board.Position
	status   string
	buttons  tcell.ButtonMask // Mouse buttons held at the last mouse event
	running  bool
	log      logrus.FieldLogger
}

// New creates a new game instance on the terminal.
func New(cfg Config, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := NewWithScreen(cfg, screen, log)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an already initialized screen.
func NewWithScreen(cfg Config, screen *ui.Screen, log logrus.FieldLogger) (*Game, error) {
	styles, err := gamedata.LoadCellStyles()
	if err != nil {
		return nil, err
	}

	b := board.New(cfg.Rows, cfg.Cols, cfg.Mines, cfg.newRand())
	layout := ui.NewLayout(b.Rows(), b.Cols())

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, styles, layout),
		layout:   layout,
		board:    b,
		status:   msgWelcome,
		running:  true,
		log:      log,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("board.rows", g.board.Rows()),
		attribute.Int("board.cols", g.board.Cols()),
		attribute.Int("board.mines", g.board.MineCount()),
	)
	initSpan.End()

	g.log.WithFields(logrus.Fields{
		"rows":  g.board.Rows(),
		"cols":  g.board.Cols(),
		"mines": g.board.MineCount(),
	}).Info("game started")

	for g.running {
		g.render()

		// Blocks until the next terminal event
		g.handleEvent(ctx, g.screen.PollEvent())
	}

	g.log.Info("game closed")
	g.screen.Close()
	return nil
}

// render draws the current state.
func (g *Game) render() {
	g.renderer.Render(ui.Frame{
		Board:  g.board,
		Cursor: g.cursor,
		Status: g.status,
	})
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.moveCursor(-1, 0)
	case tcell.KeyDown:
		g.moveCursor(1, 0)
	case tcell.KeyLeft:
		g.moveCursor(0, -1)
	case tcell.KeyRight:
		g.moveCursor(0, 1)

	case tcell.KeyEnter:
		g.reveal(ctx, g.cursor.Row, g.cursor.Col)

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.reveal(ctx, g.cursor.Row, g.cursor.Col)
		case 'f', 'F':
			g.toggleFlag(ctx, g.cursor.Row, g.cursor.Col)
		case 'r', 'R':
			g.restart(ctx)
		case 'q', 'Q':
			g.running = false
		}
	}
}

// handleMouseEvent acts on buttons at the moment they are pressed. Held
// buttons during a drag and releases are ignored.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons() & mouseButtons
	pressed := buttons &^ g.buttons
	g.buttons = buttons
	if pressed == 0 {
		return
	}

	x, y := ev.Position()
	if pressed&tcell.ButtonPrimary != 0 && g.layout.RestartAt(x, y) {
		g.restart(ctx)
		return
	}

	row, col, ok := g.layout.CellAt(x, y)
	if !ok {
		return
	}
	g.cursor = board.Position{Row: row, Col: col}

	if pressed&tcell.ButtonPrimary != 0 {
		g.reveal(ctx, row, col)
	} else {
		g.toggleFlag(ctx, row, col)
	}
}

// moveCursor moves the keyboard cursor, staying on the board.
func (g *Game) moveCursor(dRow, dCol int) {
	row, col := g.cursor.Row+dRow, g.cursor.Col+dCol
	if g.board.InBounds(row, col) {
		g.cursor = board.Position{Row: row, Col: col}
	}
}

// reveal opens a cell and finishes the game if that decided it.
func (g *Game) reveal(ctx context.Context, row, col int) {
	if g.board.State().IsTerminal() {
		return
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.reveal")
	defer span.End()

	firstMove := g.board.State() == board.NotStarted
	revealed := g.board.Reveal(row, col)
	state := g.board.State()

	span.SetAttributes(
		attribute.Int("row", row),
		attribute.Int("col", col),
		attribute.Bool("first_move", firstMove),
		attribute.Int("cells_revealed", revealed),
		attribute.String("state", state.String()),
	)
	g.log.WithFields(logrus.Fields{
		"row":      row,
		"col":      col,
		"revealed": revealed,
		"state":    state,
	}).Debug("reveal")

	g.checkGameEnd(ctx)
}

// toggleFlag flags or unflags a cell and refreshes the flag message.
func (g *Game) toggleFlag(ctx context.Context, row, col int) {
	if g.board.State().IsTerminal() || g.board.IsRevealed(row, col) {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.flag")
	defer span.End()

	changed := g.board.ToggleFlag(row, col)
	g.status = flagsMessage(g.board.FlagCount())

	span.SetAttributes(
		attribute.Int("row", row),
		attribute.Int("col", col),
		attribute.Bool("changed", changed),
		attribute.Bool("flagged", g.board.IsFlagged(row, col)),
		attribute.Int("flags", g.board.FlagCount()),
	)
	g.log.WithFields(logrus.Fields{
		"row":     row,
		"col":     col,
		"changed": changed,
		"flags":   g.board.FlagCount(),
	}).Debug("toggle flag")
}

// checkGameEnd shows the outcome once the board reaches a terminal state.
func (g *Game) checkGameEnd(ctx context.Context) {
	msg := outcomeMessage(g.board.State())
	if msg == "" {
		return
	}
	g.status = msg

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("outcome", g.board.State().String()),
		attribute.Int("cells_revealed", g.board.RevealedCount()),
		attribute.Int("flags", g.board.FlagCount()),
	)
	span.End()

	g.log.WithFields(logrus.Fields{
		"outcome":  g.board.State(),
		"revealed": g.board.RevealedCount(),
		"flags":    g.board.FlagCount(),
	}).Info("game over")
}

// restart discards the board and starts a fresh game.
func (g *Game) restart(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.restart")
	span.SetAttributes(attribute.String("previous_state", g.board.State().String()))
	span.End()

	g.board.Reset()
	g.status = msgWelcome
	g.log.Debug("restart")
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
