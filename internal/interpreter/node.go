package interpreter

import "time"

// RenderNode is one compiled node of the render tree. The tree mirrors the
// widget-spec tree shape: every spec node yields exactly one render node, in
// the same child order, whether it built cleanly, fell back to a
// placeholder, or was isolated as an error node.
type RenderNode struct {
	Type      string
	ID        string
	Focusable bool

	// Err is set when this node is an error node: construction of this
	// specific spec node failed and was isolated here.
	Err error

	// View is the composed terminal visual for this whole subtree.
	View string

	// Animation carries the style animation attributes when the spec node
	// declared a style; the terminal substrate keeps them as metadata.
	Animation *Animation

	Children []RenderNode
}

// Animation is the declared transition for a styled node.
type Animation struct {
	Duration time.Duration
	Easing   string
}

// Walk visits the node and all descendants depth-first in child order.
func (n RenderNode) Walk(fn func(RenderNode)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree.
func (n RenderNode) Count() int {
	total := 0
	n.Walk(func(RenderNode) { total++ })
	return total
}

// Context carries client-local presentation state into a render pass:
// which node has keyboard focus and any live interaction values (edit
// buffers, dragged slider positions, flipped toggles) that override the
// node's "value" prop. Render stays a pure function of (tree, theme,
// context); nothing is retained between passes.
type Context struct {
	FocusedID string
	Overrides map[string]any
}
