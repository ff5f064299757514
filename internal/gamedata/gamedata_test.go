package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCellStyles(t *testing.T) {
	styles, err := LoadCellStyles()
	require.NoError(t, err)

	assert.Equal(t, 12, styles.Count())
	for _, key := range requiredKeys() {
		assert.NotNil(t, styles.Get(key), "missing style %q", key)
	}
	assert.Nil(t, styles.Get("9"))

	mine := styles.Get("mine")
	require.NotNil(t, mine)
	assert.Equal(t, '*', mine.GlyphRune())
}

func TestCellStylesValidate(t *testing.T) {
	styles := NewCellStyles([]CellStyleDef{
		{Key: "hidden", Glyph: "#", Color: "#000000", Background: "#FFFFFF"},
	})

	err := styles.validate()
	assert.ErrorContains(t, err, `missing cell style "flagged"`)
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"good.json": {Data: []byte(`{"cells":[{"key":"hidden","glyph":"#"}]}`)},
		"bad.json":  {Data: []byte(`{"cells":`)},
	}

	file, err := loadFS[CellsFile](fsys, "good.json")
	require.NoError(t, err)
	assert.Len(t, file.Cells, 1)

	_, err = loadFS[CellsFile](fsys, "bad.json")
	assert.ErrorContains(t, err, "failed to parse JSON from bad.json")

	_, err = loadFS[CellsFile](fsys, "missing.json")
	assert.ErrorContains(t, err, "failed to read data file missing.json")
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000ff", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, "ParseHexColor(%q)", tt.input)
		} else {
			assert.Error(t, err, "ParseHexColor(%q)", tt.input)
		}
	}

	c, err := ParseHexColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0x10, 0x20, 0x30), c)
}

func TestCellStyleDefMethods(t *testing.T) {
	def := CellStyleDef{
		Key:        "3",
		Glyph:      "3",
		Color:      "#FF0000",
		Background: "#FFFFFF",
		Bold:       true,
	}

	assert.Equal(t, '3', def.GlyphRune())

	fg, bg, attrs := def.Style().Decompose()
	assert.Equal(t, tcell.NewRGBColor(0xFF, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0xFF, 0xFF, 0xFF), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	empty := CellStyleDef{}
	assert.Equal(t, '?', empty.GlyphRune())
}
