package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// neutralPalette backs the theme-agnostic default rules: plain frames, no
// brand color. It is intentionally not a selectable family.
var neutralPalette = Palette{
	Name:        "neutral",
	Primary:     lipgloss.AdaptiveColor{Light: "#444444", Dark: "#BBBBBB"},
	Accent:      lipgloss.AdaptiveColor{Light: "#444444", Dark: "#BBBBBB"},
	Text:        lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	Muted:       lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"},
	Danger:      lipgloss.AdaptiveColor{Light: "#E06A56", Dark: "#F97171"},
	Border:      lipgloss.AdaptiveColor{Light: "#D1D1D1", Dark: "#3C3C3C"},
	Frame:       lipgloss.NormalBorder(),
	ToggleOn:    "[x]",
	ToggleOff:   "[ ]",
	SliderFill:  "=",
	SliderTrack: "-",
	SliderKnob:  "o",
	Cursor:      "|",
	Icons:       map[string]string{},
}

// registerDefaults installs the fallback rule per widget type. These cover
// any category a family chose not to implement; "divider" and "spacer" exist
// only here because no family needs to restyle them.
func registerDefaults(r *Registry) {
	r.RegisterDefault("column", buildColumn)
	r.RegisterDefault("row", buildRow)
	r.RegisterDefault("container", neutralPalette.buildContainer)
	r.RegisterDefault("text", neutralPalette.buildText)
	r.RegisterDefault("icon", neutralPalette.buildIcon)
	r.RegisterDefault("button", neutralPalette.buildButton)
	r.RegisterDefault("text_input", neutralPalette.buildTextInput)
	r.RegisterDefault("toggle", neutralPalette.buildToggle)
	r.RegisterDefault("slider", neutralPalette.buildSlider)
	r.RegisterDefault("divider", buildDivider)
	r.RegisterDefault("spacer", buildSpacer)
}

func buildDivider(p Params) (string, error) {
	width := p.Props.Int("width", 24)
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(neutralPalette.Muted).
		Render(strings.Repeat("─", width)), nil
}

func buildSpacer(p Params) (string, error) {
	height := p.Props.Int("height", 1)
	if height < 1 {
		height = 1
	}
	return strings.Repeat(" \n", height-1) + " ", nil
}
