package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veneer/internal/props"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Fluent, Parse("fluent"))
	assert.Equal(t, MacOS, Parse(" MacOS "))
	assert.Equal(t, Cupertino, Parse("CUPERTINO"))
	assert.Equal(t, Material, Parse("material"))
	assert.Equal(t, Default, Parse("gtk"), "unknown themes fall back deterministically")
	assert.Equal(t, Default, Parse(""))
}

func TestLookupExactAndDefault(t *testing.T) {
	r := NewRegistry()

	for _, th := range Known() {
		for _, typ := range []string{"column", "row", "container", "text", "icon", "button", "text_input", "toggle", "slider"} {
			_, ok := r.Lookup(typ, th)
			assert.True(t, ok, "theme %s must resolve %s", th, typ)
		}
	}

	// divider has no per-theme rule; it resolves through the default.
	_, ok := r.Lookup("divider", Fluent)
	assert.True(t, ok)

	_, ok = r.Lookup("holographic_orb", Material)
	assert.False(t, ok, "unrecognized types resolve to nothing; the interpreter renders a placeholder")
}

func TestExclusivesResolveOnlyThroughOwnFamily(t *testing.T) {
	r := NewRegistry()

	exclusives := map[string]ID{
		"acrylic": Fluent,
		"card":    Material,
		"toolbar": MacOS,
		"navbar":  Cupertino,
	}
	for typ, owner := range exclusives {
		_, ok := r.Lookup(typ, owner)
		assert.True(t, ok, "%s must resolve under %s", typ, owner)
		for _, other := range Known() {
			if other == owner {
				continue
			}
			_, ok := r.Lookup(typ, other)
			assert.False(t, ok, "%s must not resolve under %s", typ, other)
		}
	}
}

func TestEveryFamilyBuildsEveryCategory(t *testing.T) {
	r := NewRegistry()
	bags := map[string]props.Bag{
		"text":       {"value": "hello"},
		"icon":       {"name": "check"},
		"button":     {"label": "Go", "primary": true},
		"text_input": {"value": "abc", "placeholder": "type"},
		"toggle":     {"value": true, "label": "on"},
		"slider":     {"value": 30.0, "min": 0.0, "max": 100.0},
		"container":  {},
		"column":     {},
		"row":        {},
	}
	for _, th := range Known() {
		for typ, bag := range bags {
			build, ok := r.Lookup(typ, th)
			require.True(t, ok)
			out, err := build(Params{ID: "w1", Type: typ, Props: bag, Children: []string{"a", "b"}})
			assert.NoError(t, err, "%s/%s", th, typ)
			_ = out
		}
	}
}

func TestButtonVariants(t *testing.T) {
	r := NewRegistry()
	build, ok := r.Lookup("button", Fluent)
	require.True(t, ok)

	primary, err := build(Params{ID: "b", Type: "button", Props: props.Bag{"label": "Save", "primary": true}})
	require.NoError(t, err)
	secondary, err := build(Params{ID: "b", Type: "button", Props: props.Bag{"label": "Save"}})
	require.NoError(t, err)
	disabled, err := build(Params{ID: "b", Type: "button", Props: props.Bag{"label": "Save", "enabled": false}})
	require.NoError(t, err)
	focused, err := build(Params{ID: "b", Type: "button", Props: props.Bag{"label": "Save"}, Focused: true})
	require.NoError(t, err)

	assert.Contains(t, primary, "Save")
	assert.NotEqual(t, primary, secondary, "primary and secondary must be visually distinct")
	assert.NotEqual(t, secondary, disabled, "disabled must be visually distinct")
	assert.NotEqual(t, secondary, focused, "focus must be visible")
}

func TestSliderRejectsInvalidRange(t *testing.T) {
	r := NewRegistry()
	build, ok := r.Lookup("slider", Material)
	require.True(t, ok)

	_, err := build(Params{ID: "s", Type: "slider", Props: props.Bag{"min": 10.0, "max": 10.0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slider")
}

func TestColumnPreservesChildOrder(t *testing.T) {
	out, err := buildColumn(Params{Children: []string{"first", "second", "third"}})
	require.NoError(t, err)
	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	third := strings.Index(out, "third")
	assert.True(t, first < second && second < third)
}

func TestPaletteFor(t *testing.T) {
	for _, th := range Known() {
		assert.Equal(t, th, PaletteFor(th).Name)
	}
	assert.Equal(t, Material, PaletteFor("nope").Name)
}
