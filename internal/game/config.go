package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/campominato/internal/board"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible mine layouts.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Rows, Cols, Mines int
}

// DefaultConfig returns the standard 8x8 board with 10 mines and a random seed.
func DefaultConfig() Config {
	return Config{
		Rows:  board.DefaultRows,
		Cols:  board.DefaultCols,
		Mines: board.DefaultMines,
	}
}

// newRand returns the random source for the configured seed.
func (c Config) newRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
