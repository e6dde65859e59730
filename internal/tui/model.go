// Package tui is the interactive shell around the interpreted widget
// surface. All mutable state lives in the model and changes only inside
// Update; the connection manager reaches the loop exclusively through
// messages.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"veneer/internal/client"
	"veneer/internal/dispatch"
	"veneer/internal/interpreter"
	"veneer/internal/props"
	"veneer/internal/protocol"
	"veneer/internal/state"
	"veneer/internal/theme"
	"veneer/pkg/logging"
)

// connection is the slice of the client manager the shell needs. It is an
// interface so tests can drive the loop without a live websocket.
type connection interface {
	Send(protocol.Envelope) error
	Close()
}

// Options configures the shell.
type Options struct {
	Endpoint string
	Theme    theme.ID
	ShowLog  bool
	LogCh    <-chan logging.LogEntry
}

type model struct {
	keys     KeyMap
	store    *state.Store
	renderer *interpreter.Renderer
	conn     connection
	events   *dispatch.Dispatcher
	connect  tea.Cmd

	mode       AppMode
	connStatus client.Status
	connDetail string
	endpoint   string

	// Focus traversal over the current tree, recomputed on every tree patch.
	focusIDs []string
	focusIdx int

	// overrides holds client-local widget values (typed text, flipped
	// toggles) keyed by widget id until the backend pushes a new tree.
	overrides map[string]any
	editor    textinput.Model

	dialog    *protocol.DialogPayload
	statusBar string
	statusSeq int

	showHelp bool
	showLog  bool
	logLines []string
	logCh    <-chan logging.LogEntry

	spinner spinner.Model
	width   int
	height  int
	ready   bool
}

// InitialModel assembles the shell. connectCmd runs once at startup and
// again on every explicit reconnect keypress.
func InitialModel(opts Options, conn connection, connectCmd tea.Cmd) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})

	ed := textinput.New()
	ed.Prompt = ""

	return model{
		keys:       DefaultKeyMap(),
		store:      state.NewStore(opts.Theme),
		renderer:   interpreter.New(theme.NewRegistry()),
		conn:       conn,
		events:     dispatch.New(conn),
		connect:    connectCmd,
		mode:       modeConnecting,
		connStatus: client.StatusDisconnected,
		endpoint:   opts.Endpoint,
		overrides:  make(map[string]any),
		editor:     ed,
		showLog:    opts.ShowLog,
		logCh:      opts.LogCh,
		spinner:    sp,
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.connect}
	if m.logCh != nil {
		cmds = append(cmds, waitForLogEntry(m.logCh))
	}
	return tea.Batch(cmds...)
}

// -------------------- Focus and value helpers --------------------

// refreshFocus recomputes the traversal order from the current tree, keeping
// the previously focused widget when it survived the patch.
func (m *model) refreshFocus() {
	prev := m.focusedID()
	m.focusIDs = nil
	if tree := m.store.Snapshot().Tree; tree != nil {
		m.focusIDs = collectFocusIDs(*tree)
	}
	m.focusIdx = 0
	for i, id := range m.focusIDs {
		if id == prev {
			m.focusIdx = i
			break
		}
	}
	m.syncEditor()
}

func (m *model) focusedID() string {
	if len(m.focusIDs) == 0 || m.focusIdx >= len(m.focusIDs) {
		return ""
	}
	return m.focusIDs[m.focusIdx]
}

// focusedSpec returns the spec node currently holding focus, or nil.
func (m *model) focusedSpec() *protocol.WidgetSpec {
	id := m.focusedID()
	if id == "" {
		return nil
	}
	tree := m.store.Snapshot().Tree
	if tree == nil {
		return nil
	}
	return findSpec(tree, id)
}

func (m *model) moveFocus(step int) {
	if len(m.focusIDs) == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + step + len(m.focusIDs)) % len(m.focusIDs)
	m.syncEditor()
}

// syncEditor loads the focused text input's live value into the editor so
// keystrokes continue from what is on screen.
func (m *model) syncEditor() {
	spec := m.focusedSpec()
	if spec == nil || spec.Type != "text_input" {
		m.editor.Blur()
		return
	}
	m.editor.SetValue(m.currentString(spec))
	m.editor.CursorEnd()
	m.editor.Focus()
}

// currentValue resolves a widget's live value: the local override when one
// exists, the server value otherwise.
func (m *model) currentValue(spec *protocol.WidgetSpec) any {
	if v, ok := m.overrides[spec.ID]; ok {
		return v
	}
	return spec.Props["value"]
}

func (m *model) currentString(spec *protocol.WidgetSpec) string {
	if s, ok := m.currentValue(spec).(string); ok {
		return s
	}
	return ""
}

func (m *model) currentBool(spec *protocol.WidgetSpec) bool {
	bag := props.Bag(spec.Props)
	if v, ok := m.overrides[spec.ID]; ok {
		bag = bag.With("value", v)
	}
	return bag.Bool("value", false)
}

func (m *model) currentFloat(spec *protocol.WidgetSpec, key string, def float64) float64 {
	bag := props.Bag(spec.Props)
	if key == "value" {
		if v, ok := m.overrides[spec.ID]; ok {
			bag = bag.With("value", v)
		}
	}
	return bag.Float(key, def)
}

// collectFocusIDs walks the tree depth-first and returns the ids of enabled
// interactive widgets in document order.
func collectFocusIDs(spec protocol.WidgetSpec) []string {
	var ids []string
	if interpreter.Focusable(spec.Type) &&
		spec.ID != "" &&
		props.Bag(spec.Props).Bool("enabled", true) {
		ids = append(ids, spec.ID)
	}
	for _, child := range spec.Children {
		ids = append(ids, collectFocusIDs(child)...)
	}
	return ids
}

// findSpec locates the first node with the given id, depth-first.
func findSpec(spec *protocol.WidgetSpec, id string) *protocol.WidgetSpec {
	if spec.ID == id {
		return spec
	}
	for i := range spec.Children {
		if found := findSpec(&spec.Children[i], id); found != nil {
			return found
		}
	}
	return nil
}
