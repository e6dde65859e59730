package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"veneer/internal/client"
	"veneer/internal/interpreter"
)

func (m model) View() string {
	if m.mode == modeQuitting {
		return "Closing connection...\n"
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.mode == modeConnecting {
		return m.viewConnecting()
	}
	return m.viewSurface()
}

func (m model) viewConnecting() string {
	body := fmt.Sprintf("%s Connecting to %s...", m.spinner.View(), m.endpoint)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m model) viewSurface() string {
	snap := m.store.Snapshot()

	var sections []string
	sections = append(sections, m.viewTitleBar(snap.Title, string(snap.Theme)))

	if m.connStatus == client.StatusFaulted || m.connStatus == client.StatusDisconnected {
		banner := m.connDetail
		if banner == "" {
			banner = "Disconnected"
		}
		sections = append(sections, disconnectedBannerStyle.Render(banner+"  (press r to reconnect)"))
	}

	if snap.Tree == nil {
		sections = append(sections, awaitingStyle.Render("Awaiting first UI push from backend..."))
	} else {
		node := m.renderer.RenderContext(*snap.Tree, snap.Theme, interpreter.Context{
			FocusedID: m.focusedID(),
			Overrides: m.overrides,
		})
		sections = append(sections, node.View)
	}

	if m.showLog && len(m.logLines) > 0 {
		sections = append(sections, m.viewLogTail())
	}

	sections = append(sections, m.viewStatusBar())
	view := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.dialog != nil {
		return m.overlay(m.viewDialog())
	}
	if m.showHelp {
		return m.overlay(m.viewHelp())
	}
	return appStyle.Render(view)
}

func (m model) viewTitleBar(title, themeName string) string {
	if title == "" {
		title = "veneer"
	}
	meta := titleMetaStyle.Render(fmt.Sprintf("  %s · %s", themeName, m.connStatus))
	bar := titleBarStyle.Render(title) + meta
	return bar
}

func (m model) viewStatusBar() string {
	if m.statusBar != "" {
		return statusBarStyle.Width(m.width).Render(toastStyle.Render(m.statusBar))
	}
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s",
			helpKeyStyle.Render(b.Help().Key),
			helpDescStyle.Render(b.Help().Desc)))
	}
	return statusBarStyle.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m model) viewLogTail() string {
	tail := m.logLines
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	lines := make([]string, 0, len(tail))
	for _, l := range tail {
		lines = append(lines, logLineStyle.Render(l))
	}
	return strings.Join(lines, "\n")
}

func (m model) viewDialog() string {
	var b strings.Builder
	if m.dialog.Title != "" {
		b.WriteString(dialogTitleStyle.Render(m.dialog.Title))
		b.WriteString("\n")
	}
	b.WriteString(m.dialog.Message)
	b.WriteString("\n\n")
	b.WriteString(helpDescStyle.Render("enter/esc to dismiss"))
	return dialogStyle.Render(b.String())
}

func (m model) viewHelp() string {
	var cols []string
	for _, col := range m.keys.FullHelp() {
		var rows []string
		for _, b := range col {
			rows = append(rows, fmt.Sprintf("%s  %s",
				helpKeyStyle.Render(fmt.Sprintf("%-11s", b.Help().Key)),
				helpDescStyle.Render(b.Help().Desc)))
		}
		cols = append(cols, strings.Join(rows, "\n"))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols[0], "   ", cols[1], "   ", cols[2])
	return helpOverlayStyle.Render(dialogTitleStyle.Render("Keys") + "\n" + body)
}

func (m model) overlay(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
