// Package state holds the last UI state pushed by the backend. The store is
// the single mutation point: only update_ui patches applied through
// ApplyPatch change it, and consumers only ever see immutable snapshots.
package state

import (
	"veneer/internal/protocol"
	"veneer/internal/theme"
)

// UIState is the current remote-controlled surface. A nil Tree is the valid
// awaiting-first-push state, distinct from a pushed-but-empty tree.
type UIState struct {
	Tree  *protocol.WidgetSpec
	Theme theme.ID
	Title string
}

// Patch is a partial UIState update. Nil fields were absent from the wire
// payload and leave the prior value untouched.
type Patch struct {
	Tree  *protocol.WidgetSpec
	Theme *theme.ID
	Title *string
}

// Store owns the UIState for the lifetime of the session. All access happens
// on the single update loop, so there is no lock; isolation comes from
// snapshot copies, not synchronization.
type Store struct {
	current UIState
}

// NewStore starts empty with the given theme until the backend pushes one.
func NewStore(initial theme.ID) *Store {
	return &Store{current: UIState{Theme: initial}}
}

// ApplyPatch merges only the fields present in the patch.
func (s *Store) ApplyPatch(p Patch) {
	if p.Tree != nil {
		s.current.Tree = p.Tree
	}
	if p.Theme != nil {
		s.current.Theme = *p.Theme
	}
	if p.Title != nil {
		s.current.Title = *p.Title
	}
}

// PatchFromUpdate converts a decoded update_ui payload into a Patch,
// resolving the wire theme string to a known family.
func PatchFromUpdate(u *protocol.UpdatePayload) Patch {
	var p Patch
	if u == nil {
		return p
	}
	p.Tree = u.Tree
	if u.Theme != nil {
		id := theme.Parse(*u.Theme)
		p.Theme = &id
	}
	p.Title = u.Title
	return p
}

// Snapshot returns a deep copy the renderer can walk without observing
// later patches.
func (s *Store) Snapshot() UIState {
	out := s.current
	if s.current.Tree != nil {
		tree := cloneSpec(*s.current.Tree)
		out.Tree = &tree
	}
	return out
}

func cloneSpec(spec protocol.WidgetSpec) protocol.WidgetSpec {
	out := protocol.WidgetSpec{
		Type: spec.Type,
		ID:   spec.ID,
	}
	if spec.Props != nil {
		out.Props = make(map[string]any, len(spec.Props))
		for k, v := range spec.Props {
			out.Props[k] = cloneValue(v)
		}
	}
	if spec.Children != nil {
		out.Children = make([]protocol.WidgetSpec, len(spec.Children))
		for i, c := range spec.Children {
			out.Children[i] = cloneSpec(c)
		}
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}
