package gamedata

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// CellStyleDef describes how one cell appearance is drawn, loaded from JSON.
type CellStyleDef struct {
	Key        string `json:"key"`        // Appearance key ("hidden", "flagged", "empty", "mine", "1".."8")
	Glyph      string `json:"glyph"`      // Single character drawn in the cell
	Color      string `json:"color"`      // Foreground hex color
	Background string `json:"background"` // Background hex color
	Bold       bool   `json:"bold"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *CellStyleDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// Style returns the tcell style for this appearance. Unparseable colors
// fall back to the terminal defaults.
func (d *CellStyleDef) Style() tcell.Style {
	style := tcell.StyleDefault.Bold(d.Bold)
	if fg, err := ParseHexColor(d.Color); err == nil {
		style = style.Foreground(fg)
	}
	if bg, err := ParseHexColor(d.Background); err == nil {
		style = style.Background(bg)
	}
	return style
}

// CellsFile represents the structure of cells.json.
type CellsFile struct {
	Cells []CellStyleDef `json:"cells"`
}

// requiredKeys lists every appearance the renderer can ask for.
func requiredKeys() []string {
	keys := []string{"hidden", "flagged", "empty", "mine"}
	for n := 1; n <= 8; n++ {
		keys = append(keys, strconv.Itoa(n))
	}
	return keys
}

// CellStyles holds the loaded glyph table keyed by appearance.
type CellStyles struct {
	byKey map[string]*CellStyleDef
	all   []CellStyleDef
}

// NewCellStyles creates a table from loaded definitions.
func NewCellStyles(defs []CellStyleDef) *CellStyles {
	styles := &CellStyles{
		byKey: make(map[string]*CellStyleDef, len(defs)),
		all:   defs,
	}
	for i := range defs {
		styles.byKey[defs[i].Key] = &defs[i]
	}
	return styles
}

// LoadCellStyles loads the glyph table from the embedded cells.json.
func LoadCellStyles() (*CellStyles, error) {
	file, err := Load[CellsFile]("cells.json")
	if err != nil {
		return nil, err
	}
	styles := NewCellStyles(file.Cells)
	if err := styles.validate(); err != nil {
		return nil, fmt.Errorf("cells.json: %w", err)
	}
	return styles, nil
}

// MustLoadCellStyles loads the glyph table, panicking on error.
func MustLoadCellStyles() *CellStyles {
	styles, err := LoadCellStyles()
	if err != nil {
		panic(err)
	}
	return styles
}

// Get returns the definition for an appearance key, or nil if not found.
func (s *CellStyles) Get(key string) *CellStyleDef {
	return s.byKey[key]
}

// Count returns the number of definitions in the table.
func (s *CellStyles) Count() int {
	return len(s.all)
}

func (s *CellStyles) validate() error {
	for _, key := range requiredKeys() {
		def := s.byKey[key]
		if def == nil {
			return fmt.Errorf("missing cell style %q", key)
		}
		if _, err := ParseHexColor(def.Color); err != nil {
			return fmt.Errorf("cell style %q: %w", key, err)
		}
		if _, err := ParseHexColor(def.Background); err != nil {
			return fmt.Errorf("cell style %q: %w", key, err)
		}
	}
	return nil
}
