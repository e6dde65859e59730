package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veneer/internal/protocol"
	"veneer/internal/theme"
)

func sampleTree() *protocol.WidgetSpec {
	return &protocol.WidgetSpec{
		Type: "column",
		ID:   "root",
		Props: map[string]any{
			"style": map[string]any{"padding": []any{1.0, 2.0, 3.0, 4.0}},
		},
		Children: []protocol.WidgetSpec{
			{Type: "text", ID: "t1", Props: map[string]any{"value": "Hi"}},
		},
	}
}

func strptr(s string) *string { return &s }

func themeptr(id theme.ID) *theme.ID { return &id }

func TestNewStoreIsAwaitingFirstPush(t *testing.T) {
	s := NewStore(theme.Material)
	snap := s.Snapshot()
	assert.Nil(t, snap.Tree)
	assert.Equal(t, theme.Material, snap.Theme)
	assert.Empty(t, snap.Title)
}

func TestApplyPatchIsPartialMerge(t *testing.T) {
	s := NewStore(theme.Material)
	s.ApplyPatch(Patch{Tree: sampleTree(), Theme: themeptr(theme.Fluent), Title: strptr("Home")})

	before := s.Snapshot()

	// A title-only patch must change only the title.
	s.ApplyPatch(Patch{Title: strptr("X")})
	after := s.Snapshot()

	assert.Equal(t, "X", after.Title)
	assert.Equal(t, before.Theme, after.Theme)
	assert.Equal(t, before.Tree, after.Tree, "omitted tree field must leave prior tree identical")

	// An empty patch changes nothing.
	s.ApplyPatch(Patch{})
	assert.Equal(t, after, s.Snapshot())
}

func TestSnapshotIsIsolatedFromLaterPatches(t *testing.T) {
	s := NewStore(theme.Material)
	s.ApplyPatch(Patch{Tree: sampleTree()})

	snap := s.Snapshot()
	s.ApplyPatch(Patch{Tree: &protocol.WidgetSpec{Type: "row", ID: "other"}})

	require.NotNil(t, snap.Tree)
	assert.Equal(t, "column", snap.Tree.Type, "earlier snapshot must not observe later patches")
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewStore(theme.Material)
	s.ApplyPatch(Patch{Tree: sampleTree()})

	snap := s.Snapshot()
	snap.Tree.Children[0].Props["value"] = "mutated"
	snap.Tree.Props["style"].(map[string]any)["padding"] = "broken"

	fresh := s.Snapshot()
	assert.Equal(t, "Hi", fresh.Tree.Children[0].Props["value"], "mutating a snapshot must not leak into the store")
	assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0}, fresh.Tree.Props["style"].(map[string]any)["padding"])
}

func TestPatchFromUpdate(t *testing.T) {
	up := &protocol.UpdatePayload{
		Theme: strptr("cupertino"),
		Title: strptr("Settings"),
	}
	p := PatchFromUpdate(up)
	assert.Nil(t, p.Tree)
	require.NotNil(t, p.Theme)
	assert.Equal(t, theme.Cupertino, *p.Theme)
	require.NotNil(t, p.Title)
	assert.Equal(t, "Settings", *p.Title)

	// Unrecognized wire themes resolve to the default family.
	p = PatchFromUpdate(&protocol.UpdatePayload{Theme: strptr("win31")})
	require.NotNil(t, p.Theme)
	assert.Equal(t, theme.Default, *p.Theme)

	assert.Equal(t, Patch{}, PatchFromUpdate(nil))
}
