// Package theme provides the theme backend registry: one builder per
// (widget type, theme family) pair, all sharing a normalized parameter
// signature and returning a terminal renderable.
package theme

import "strings"

// ID names one theme family.
type ID string

const (
	Fluent    ID = "fluent"
	MacOS     ID = "macos"
	Material  ID = "material"
	Cupertino ID = "cupertino"
)

// Default is the family used when the backend has not pushed a theme or
// pushed one this client does not know.
const Default = Material

// Known lists the supported families in a stable order.
func Known() []ID {
	return []ID{Fluent, MacOS, Material, Cupertino}
}

// Parse maps a wire theme string to an ID. Unrecognized values fall back to
// Default deterministically; they never error.
func Parse(s string) ID {
	switch ID(strings.ToLower(strings.TrimSpace(s))) {
	case Fluent:
		return Fluent
	case MacOS:
		return MacOS
	case Material:
		return Material
	case Cupertino:
		return Cupertino
	default:
		return Default
	}
}

func (id ID) String() string {
	return string(id)
}
