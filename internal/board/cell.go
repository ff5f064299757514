package board

import "strconv"

// Position identifies a cell by row and column.
type Position struct {
	Row, Col int
}

// CellKind is the appearance category of a cell.
type CellKind int

const (
	// CellHidden is an unrevealed, unflagged cell.
	CellHidden CellKind = iota
	// CellFlagged is an unrevealed cell carrying a flag.
	CellFlagged
	// CellEmpty is a revealed cell with no neighbouring mines.
	CellEmpty
	// CellNumber is a revealed cell with 1-8 neighbouring mines.
	CellNumber
	// CellMine is a revealed mine.
	CellMine
)

// String returns a human-readable kind name.
func (k CellKind) String() string {
	switch k {
	case CellHidden:
		return "hidden"
	case CellFlagged:
		return "flagged"
	case CellEmpty:
		return "empty"
	case CellNumber:
		return "number"
	case CellMine:
		return "mine"
	default:
		return "unknown"
	}
}

// CellView is the read-only appearance of a single cell.
type CellView struct {
	Kind  CellKind
	Count int // Neighbouring mines, set only for CellNumber
}

// Key returns the glyph table key for this view: the kind name, or the
// digit for numbered cells.
func (v CellView) Key() string {
	if v.Kind == CellNumber {
		return strconv.Itoa(v.Count)
	}
	return v.Kind.String()
}
