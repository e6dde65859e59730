package theme

import "veneer/internal/props"

// Params is the normalized parameter set handed to every builder. Children
// arrive fully rendered, in spec order; the builder only composes them.
type Params struct {
	ID       string
	Type     string
	Props    props.Bag
	Children []string
	// Focused is client-local presentation state supplied by the render
	// context, not by the backend.
	Focused bool
}

// BuildFunc turns normalized parameters into a terminal renderable. An error
// return means the backend's parameters were rejected; the interpreter
// isolates it to this node.
type BuildFunc func(p Params) (string, error)

type registryKey struct {
	widgetType string
	theme      ID
}

// Registry resolves construction rules by exact (type, theme) match with a
// theme-agnostic default rule per type covering the gaps. Families are added
// by registration, never by editing a central dispatcher.
type Registry struct {
	exact    map[registryKey]BuildFunc
	defaults map[string]BuildFunc
}

// NewRegistry builds the full production registry: the four theme families
// plus the theme-agnostic default rules.
func NewRegistry() *Registry {
	r := &Registry{
		exact:    map[registryKey]BuildFunc{},
		defaults: map[string]BuildFunc{},
	}
	registerDefaults(r)
	registerFamily(r, fluentPalette)
	registerFamily(r, macosPalette)
	registerFamily(r, materialPalette)
	registerFamily(r, cupertinoPalette)
	registerFluent(r)
	registerMacOS(r)
	registerMaterial(r)
	registerCupertino(r)
	return r
}

// Register installs a theme-specific construction rule.
func (r *Registry) Register(widgetType string, theme ID, fn BuildFunc) {
	r.exact[registryKey{widgetType, theme}] = fn
}

// RegisterDefault installs the theme-agnostic rule for a type.
func (r *Registry) RegisterDefault(widgetType string, fn BuildFunc) {
	r.defaults[widgetType] = fn
}

// Lookup resolves the construction rule for (widgetType, theme). The second
// return is false only when the type is unrecognized by every family and has
// no default rule; the interpreter then renders a placeholder.
func (r *Registry) Lookup(widgetType string, theme ID) (BuildFunc, bool) {
	if fn, ok := r.exact[registryKey{widgetType, theme}]; ok {
		return fn, true
	}
	if fn, ok := r.defaults[widgetType]; ok {
		return fn, true
	}
	return nil, false
}
