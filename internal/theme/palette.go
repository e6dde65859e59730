package theme

import "github.com/charmbracelet/lipgloss"

// Palette carries everything that distinguishes one theme family on a
// terminal: colors, the frame border set, and the control glyphs.
type Palette struct {
	Name ID

	Primary lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor

	Frame lipgloss.Border

	ToggleOn    string
	ToggleOff   string
	SliderFill  string
	SliderTrack string
	SliderKnob  string
	Cursor      string

	Icons map[string]string
}

var fluentPalette = Palette{
	Name:    Fluent,
	Primary: lipgloss.AdaptiveColor{Light: "#0067C0", Dark: "#4CC2FF"},
	Accent:  lipgloss.AdaptiveColor{Light: "#005FB8", Dark: "#60CDFF"},
	Text:    lipgloss.AdaptiveColor{Light: "#1B1B1B", Dark: "#FFFFFF"},
	Muted:   lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9D9D9D"},
	Danger:  lipgloss.AdaptiveColor{Light: "#C42B1C", Dark: "#FF99A4"},
	Border:  lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#3D3D3D"},

	Frame:       lipgloss.NormalBorder(),
	ToggleOn:    "▣",
	ToggleOff:   "▢",
	SliderFill:  "━",
	SliderTrack: "─",
	SliderKnob:  "◆",
	Cursor:      "▏",
	Icons: map[string]string{
		"check": "✔", "cross": "✖", "warning": "⚠", "info": "ℹ",
		"search": "🔍", "settings": "⚙", "home": "⌂", "star": "★",
	},
}

var macosPalette = Palette{
	Name:    MacOS,
	Primary: lipgloss.AdaptiveColor{Light: "#007AFF", Dark: "#0A84FF"},
	Accent:  lipgloss.AdaptiveColor{Light: "#5856D6", Dark: "#5E5CE6"},
	Text:    lipgloss.AdaptiveColor{Light: "#1D1D1F", Dark: "#F5F5F7"},
	Muted:   lipgloss.AdaptiveColor{Light: "#86868B", Dark: "#98989D"},
	Danger:  lipgloss.AdaptiveColor{Light: "#FF3B30", Dark: "#FF453A"},
	Border:  lipgloss.AdaptiveColor{Light: "#D2D2D7", Dark: "#424245"},

	Frame:       lipgloss.RoundedBorder(),
	ToggleOn:    "◉",
	ToggleOff:   "◎",
	SliderFill:  "█",
	SliderTrack: "░",
	SliderKnob:  "●",
	Cursor:      "▎",
	Icons: map[string]string{
		"check": "✓", "cross": "✕", "warning": "⚠", "info": "ℹ",
		"search": "⌕", "settings": "⚙", "home": "⌂", "star": "✦",
	},
}

var materialPalette = Palette{
	Name:    Material,
	Primary: lipgloss.AdaptiveColor{Light: "#6750A4", Dark: "#D0BCFF"},
	Accent:  lipgloss.AdaptiveColor{Light: "#7D5260", Dark: "#EFB8C8"},
	Text:    lipgloss.AdaptiveColor{Light: "#1C1B1F", Dark: "#E6E1E5"},
	Muted:   lipgloss.AdaptiveColor{Light: "#79747E", Dark: "#938F99"},
	Danger:  lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#F2B8B5"},
	Border:  lipgloss.AdaptiveColor{Light: "#CAC4D0", Dark: "#49454F"},

	Frame:       lipgloss.RoundedBorder(),
	ToggleOn:    "■",
	ToggleOff:   "□",
	SliderFill:  "▰",
	SliderTrack: "▱",
	SliderKnob:  "⬤",
	Cursor:      "▌",
	Icons: map[string]string{
		"check": "✔", "cross": "✘", "warning": "▲", "info": "●",
		"search": "🔍", "settings": "⛭", "home": "⌂", "star": "★",
	},
}

var cupertinoPalette = Palette{
	Name:    Cupertino,
	Primary: lipgloss.AdaptiveColor{Light: "#007AFF", Dark: "#0A84FF"},
	Accent:  lipgloss.AdaptiveColor{Light: "#34C759", Dark: "#30D158"},
	Text:    lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	Muted:   lipgloss.AdaptiveColor{Light: "#8E8E93", Dark: "#8E8E93"},
	Danger:  lipgloss.AdaptiveColor{Light: "#FF3B30", Dark: "#FF453A"},
	Border:  lipgloss.AdaptiveColor{Light: "#C6C6C8", Dark: "#38383A"},

	Frame:       lipgloss.RoundedBorder(),
	ToggleOn:    "⦿",
	ToggleOff:   "⦾",
	SliderFill:  "●",
	SliderTrack: "○",
	SliderKnob:  "◉",
	Cursor:      "▕",
	Icons: map[string]string{
		"check": "✓", "cross": "✗", "warning": "⚠", "info": "ⓘ",
		"search": "⌕", "settings": "⚙", "home": "⌂", "star": "✧",
	},
}

// paletteFor returns the palette of a family; used by the TUI chrome so the
// shell picks up the active theme's accent.
func PaletteFor(id ID) Palette {
	switch id {
	case Fluent:
		return fluentPalette
	case MacOS:
		return macosPalette
	case Cupertino:
		return cupertinoPalette
	default:
		return materialPalette
	}
}
