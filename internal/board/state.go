// Package board implements the Minesweeper board model: mine layout,
// revealed and flagged cells, and the game outcome state machine.
package board

// State represents the outcome state of a game.
type State int

const (
	// NotStarted is the state before the first reveal. No mines are placed yet.
	NotStarted State = iota
	// InProgress is entered on the first reveal, which also places the mines.
	InProgress
	// Won means every non-mine cell has been revealed.
	Won
	// Lost means a mine was revealed.
	Lost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the board accepts no further mutation.
func (s State) IsTerminal() bool {
	return s == Won || s == Lost
}
