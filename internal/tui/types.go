package tui

import "github.com/charmbracelet/bubbles/key"

// AppMode is the coarse screen the shell is showing.
type AppMode int

const (
	// modeConnecting is the initial spinner screen before the first
	// connection attempt resolves.
	modeConnecting AppMode = iota
	// modeSurface is the interpreted widget surface, whether or not the
	// connection is currently up.
	modeSurface
	// modeQuitting is the teardown frame.
	modeQuitting
)

// maxLogLines bounds the in-memory debug log ring.
const maxLogLines = 200

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Enter     key.Binding
	Space     key.Binding
	Left      key.Binding
	Right     key.Binding
	Reconnect key.Binding
	CopyTree  key.Binding
	ToggleLog key.Binding
	Help      key.Binding
	Esc       key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate/submit"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "slider down"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "slider up"),
		),
		Reconnect: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reconnect"),
		),
		CopyTree: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy UI tree"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// FullHelp returns bindings for the help overlay, one inner slice per column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter, k.Space},
		{k.Left, k.Right, k.Reconnect, k.CopyTree},
		{k.Help, k.ToggleLog, k.Esc, k.Quit},
	}
}

// ShortHelp returns the minimal set shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Help, k.Quit}
}
