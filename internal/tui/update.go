package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"veneer/internal/client"
	"veneer/internal/protocol"
	"veneer/internal/state"
	"veneer/pkg/logging"
)

const subsystem = "tui"

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case envelopeMsg:
		return m.handleEnvelope(msg.env)

	case connStatusMsg:
		m.connStatus = msg.status
		m.connDetail = msg.detail
		if msg.status == client.StatusConnected {
			m.mode = modeSurface
		}
		return m, nil

	case connectResultMsg:
		if msg.err != nil {
			m.mode = modeSurface
		}
		return m, nil

	case clearStatusBarMsg:
		// Only the timer belonging to the latest toast may clear it.
		if msg.seq == m.statusSeq {
			m.statusBar = ""
		}
		return m, nil

	case logEntryMsg:
		m.logLines = append(m.logLines, msg.entry.String())
		if len(m.logLines) > maxLogLines {
			m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
		}
		return m, waitForLogEntry(m.logCh)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleEnvelope applies one backend message to the model.
func (m model) handleEnvelope(env protocol.Envelope) (tea.Model, tea.Cmd) {
	switch env.Action {
	case protocol.ActionUpdateUI:
		if env.Update == nil {
			return m, nil
		}
		m.store.ApplyPatch(state.PatchFromUpdate(env.Update))
		if env.Update.Tree != nil {
			// A fresh tree is the backend's word on every value; local
			// overrides are stale from here on.
			m.overrides = make(map[string]any)
			m.refreshFocus()
		}
		m.mode = modeSurface
		return m, nil

	case protocol.ActionToast:
		if env.Toast == nil {
			return m, nil
		}
		m.statusSeq++
		m.statusBar = env.Toast.Message
		return m, clearStatusBarAfter(m.statusSeq)

	case protocol.ActionDialog:
		if env.Dialog == nil {
			return m, nil
		}
		dialog := *env.Dialog
		m.dialog = &dialog
		return m, nil

	default:
		logging.Debug(subsystem, "ignoring envelope with unknown action %q", env.Action)
		return m, nil
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays swallow everything except their dismiss keys.
	if m.dialog != nil {
		if key.Matches(msg, m.keys.Enter, m.keys.Esc) {
			m.dialog = nil
		}
		return m, nil
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Esc, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	editing := m.editorActive()

	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()

	case key.Matches(msg, m.keys.Quit) && !editing:
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.ToggleLog) && !editing:
		m.showLog = !m.showLog
		return m, nil

	case key.Matches(msg, m.keys.Reconnect) && !editing:
		if m.connStatus == client.StatusDisconnected || m.connStatus == client.StatusFaulted {
			return m, m.connect
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyTree) && !editing:
		return m, copyTreeCmd(m.store.Snapshot().Tree)
	}

	return m.handleInteraction(msg)
}

// handleInteraction routes a key to the focused widget.
func (m model) handleInteraction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	spec := m.focusedSpec()
	if spec == nil {
		return m, nil
	}

	switch spec.Type {
	case "button":
		if key.Matches(msg, m.keys.Enter, m.keys.Space) {
			m.events.Click(spec.ID)
		}
		return m, nil

	case "toggle":
		if key.Matches(msg, m.keys.Enter, m.keys.Space) {
			next := !m.currentBool(spec)
			m.overrides[spec.ID] = next
			m.events.Change(spec.ID, next)
		}
		return m, nil

	case "slider":
		var dir float64
		switch {
		case key.Matches(msg, m.keys.Left):
			dir = -1
		case key.Matches(msg, m.keys.Right):
			dir = 1
		default:
			return m, nil
		}
		min := m.currentFloat(spec, "min", 0)
		max := m.currentFloat(spec, "max", 100)
		step := m.currentFloat(spec, "step", 1)
		next := m.currentFloat(spec, "value", min) + dir*step
		if next < min {
			next = min
		}
		if next > max {
			next = max
		}
		m.overrides[spec.ID] = next
		m.events.Change(spec.ID, next)
		return m, nil

	case "text_input":
		if key.Matches(msg, m.keys.Enter) {
			m.events.Submit(spec.ID, m.currentString(spec))
			return m, nil
		}
		before := m.editor.Value()
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if after := m.editor.Value(); after != before {
			m.overrides[spec.ID] = after
			m.events.Change(spec.ID, after)
		}
		return m, cmd
	}

	return m, nil
}

// editorActive reports whether printable keys currently belong to a text
// input rather than to shell shortcuts.
func (m *model) editorActive() bool {
	spec := m.focusedSpec()
	return spec != nil && spec.Type == "text_input"
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.mode = modeQuitting
	m.conn.Close()
	return m, tea.Quit
}
