// Package game provides the main game loop: it owns the board, maps terminal
// input onto board operations and keeps the status line current.
package game

import (
	"fmt"

	"github.com/samdwyer/campominato/internal/board"
)

const (
	msgWelcome = "Welcome to Campo Minato!"
	msgLost    = "You lost! Click 'Restart' to play again."
	msgWon     = "You won! Click 'Restart' to play again."
)

// flagsMessage reports the number of flags placed.
func flagsMessage(n int) string {
	return fmt.Sprintf("Flags placed: %d", n)
}

// outcomeMessage returns the status line for a finished game, or "" while
// the game is still open.
func outcomeMessage(s board.State) string {
	switch s {
	case board.Won:
		return msgWon
	case board.Lost:
		return msgLost
	default:
		return ""
	}
}
