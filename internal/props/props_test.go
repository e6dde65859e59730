package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringAndBoolDefaults(t *testing.T) {
	b := Bag{"label": "Save", "enabled": false, "weird": 3.0}

	assert.Equal(t, "Save", b.String("label", "x"))
	assert.Equal(t, "x", b.String("missing", "x"))
	assert.Equal(t, "x", b.String("weird", "x"), "type mismatch falls back")

	assert.False(t, b.Bool("enabled", true))
	assert.True(t, b.Bool("missing", true))
}

func TestFloatCoercion(t *testing.T) {
	b := Bag{"w": 12.5, "h": "24", "n": int64(3), "bad": "wide"}

	assert.Equal(t, 12.5, b.Float("w", 0))
	assert.Equal(t, 24.0, b.Float("h", 0), "numeric strings are accepted")
	assert.Equal(t, 3.0, b.Float("n", 0))
	assert.Equal(t, 7.0, b.Float("bad", 7), "non-numeric string falls back")
	assert.Equal(t, 7.0, b.Float("missing", 7))
	assert.Equal(t, 24, b.Int("h", 0))
}

func TestKeyword(t *testing.T) {
	b := Bag{"align": "Center", "axis": "diagonal"}

	assert.Equal(t, "center", b.Keyword("align", "start", "start", "center", "end"))
	assert.Equal(t, "start", b.Keyword("axis", "start", "start", "center", "end"), "unrecognized keyword falls back")
	assert.Equal(t, "start", b.Keyword("missing", "start", "start", "center", "end"))
}

func TestNilBagIsSafe(t *testing.T) {
	var b Bag
	assert.Equal(t, "d", b.String("k", "d"))
	assert.Equal(t, Edges{}, b.Edges("padding"))
	assert.False(t, b.Color("color").Valid)
	assert.False(t, b.Has("k"))
}

func TestParseColor(t *testing.T) {
	withHash := ParseColor("#ff0000")
	bare := ParseColor("ff0000")
	assert.True(t, withHash.Valid)
	assert.Equal(t, withHash, bare, "leading # is optional")
	assert.Equal(t, uint8(0xFF), withHash.R)
	assert.Equal(t, uint8(0xFF), withHash.A, "6-digit form gets opaque alpha")
	assert.Equal(t, "#ff0000", withHash.Hex())

	short := ParseColor("#f00")
	assert.Equal(t, withHash, short, "#RGB expands to #RRGGBB")

	withAlpha := ParseColor("#ff000080")
	assert.True(t, withAlpha.Valid)
	assert.Equal(t, uint8(0x80), withAlpha.A)

	for _, bad := range []string{"zz0000", "#12345", "", "#ff00", "red"} {
		c := ParseColor(bad)
		assert.False(t, c.Valid, "%q must parse to the transparent fallback", bad)
	}
}

func TestEdges(t *testing.T) {
	b := Bag{
		"scalar":    8.0,
		"string":    "8",
		"tuple":     []any{1.0, 2.0, 3.0, 4.0},
		"short":     []any{1.0, 2.0},
		"nonNumber": []any{"a", "b", "c", "d"},
	}

	assert.Equal(t, Uniform(8), b.Edges("scalar"))
	assert.Equal(t, Uniform(8), b.Edges("string"))
	assert.Equal(t, Edges{Left: 1, Top: 2, Right: 3, Bottom: 4}, b.Edges("tuple"))
	assert.Equal(t, Edges{}, b.Edges("short"), "wrong arity yields zero spacing")
	assert.Equal(t, Edges{}, b.Edges("nonNumber"))
	assert.Equal(t, Edges{}, b.Edges("missing"))
}

func TestWithDoesNotMutate(t *testing.T) {
	b := Bag{"value": "old"}
	c := b.With("value", "new")
	assert.Equal(t, "old", b.String("value", ""))
	assert.Equal(t, "new", c.String("value", ""))
}
