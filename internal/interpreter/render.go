// Package interpreter compiles the declarative widget-spec tree into a
// render tree. It is a small interpreter: construction rules come from the
// theme backend registry, prop coercion is permissive, and any failure is
// isolated to the node that raised it.
package interpreter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"veneer/internal/props"
	"veneer/internal/protocol"
	"veneer/internal/theme"
)

const maxErrorTextWidth = 60

var (
	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#E0A956", Dark: "#F9C171"}).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#E0A956", Dark: "#F9C171"}).
				Padding(0, 1)

	errorNodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#E06A56", Dark: "#F97171"}).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#E06A56", Dark: "#F97171"}).
			Padding(0, 1)
)

var focusableTypes = map[string]bool{
	"button":     true,
	"text_input": true,
	"toggle":     true,
	"slider":     true,
}

// Focusable reports whether a widget type participates in keyboard focus
// traversal.
func Focusable(widgetType string) bool {
	return focusableTypes[widgetType]
}

// Renderer compiles widget specs against a theme registry. It holds no
// per-render state; the same renderer serves every pass.
type Renderer struct {
	reg *theme.Registry
}

// New builds a renderer over the given registry.
func New(reg *theme.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// Render compiles a spec tree for a theme with no interaction context.
// It never fails: the worst case is a tree of error nodes.
func (r *Renderer) Render(spec protocol.WidgetSpec, th theme.ID) RenderNode {
	return r.RenderContext(spec, th, Context{})
}

// RenderContext compiles a spec tree with client-local focus and live
// interaction values applied.
func (r *Renderer) RenderContext(spec protocol.WidgetSpec, th theme.ID, ctx Context) RenderNode {
	node, err := r.buildWidget(spec, th, ctx)
	if err != nil {
		return errorNode(spec, err)
	}
	return node
}

// buildWidget is the per-node isolation boundary: coercion panics and
// builder rejections surface as the error return and are converted to an
// error node by the caller, leaving siblings and ancestors untouched.
func (r *Renderer) buildWidget(spec protocol.WidgetSpec, th theme.ID, ctx Context) (node RenderNode, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("build panicked: %v", rec)
		}
	}()

	// Children resolve fully, in order, before the parent wraps them. A
	// failing child becomes an error node right here; the failure never
	// reaches the parent.
	children := make([]RenderNode, 0, len(spec.Children))
	childViews := make([]string, 0, len(spec.Children))
	for _, childSpec := range spec.Children {
		child, cerr := r.buildWidget(childSpec, th, ctx)
		if cerr != nil {
			child = errorNode(childSpec, cerr)
		}
		children = append(children, child)
		childViews = append(childViews, child.View)
	}

	build, ok := r.reg.Lookup(spec.Type, th)
	if !ok {
		return placeholderNode(spec, children), nil
	}

	bag := props.Bag(spec.Props)
	if v, ok := ctx.Overrides[spec.ID]; ok {
		bag = bag.With("value", v)
	}

	view, err := build(theme.Params{
		ID:       spec.ID,
		Type:     spec.Type,
		Props:    bag,
		Children: childViews,
		Focused:  spec.ID != "" && spec.ID == ctx.FocusedID,
	})
	if err != nil {
		return RenderNode{}, err
	}

	node = RenderNode{
		Type:      spec.Type,
		ID:        spec.ID,
		Focusable: Focusable(spec.Type) && bag.Bool("enabled", true),
		View:      view,
		Children:  children,
	}
	if st, ok := parseStyle(bag); ok {
		node.View = applyStyle(node.View, st)
		anim := st.Animation
		node.Animation = &anim
	}
	return node, nil
}

// placeholderNode is the visible stand-in for an unrecognized widget type.
// It carries the literal type string so the backend author can see the
// mistake; already-built children render beneath it.
func placeholderNode(spec protocol.WidgetSpec, children []RenderNode) RenderNode {
	view := placeholderStyle.Render(fmt.Sprintf("unknown widget %q", spec.Type))
	if len(children) > 0 {
		parts := make([]string, 0, len(children)+1)
		parts = append(parts, view)
		for _, c := range children {
			parts = append(parts, c.View)
		}
		view = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return RenderNode{
		Type:     spec.Type,
		ID:       spec.ID,
		View:     view,
		Children: children,
	}
}

// errorNode replaces a node whose construction failed. It shows the declared
// type and a truncated error text, and is built from nothing but two strings
// so it can never fail itself, whatever the spec contained.
func errorNode(spec protocol.WidgetSpec, err error) RenderNode {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	msg = runewidth.Truncate(msg, maxErrorTextWidth, "…")
	return RenderNode{
		Type: spec.Type,
		ID:   spec.ID,
		Err:  err,
		View: errorNodeStyle.Render(fmt.Sprintf("✗ %s: %s", spec.Type, msg)),
	}
}
