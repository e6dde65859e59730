package tui

import (
	"encoding/json"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"veneer/internal/protocol"
	"veneer/pkg/logging"
)

// clearStatusBarAfter schedules a toast expiry carrying the toast's sequence
// number.
func clearStatusBarAfter(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearStatusBarMsg{seq: seq}
	})
}

// waitForLogEntry blocks on the logging channel for one entry. The handler
// re-issues it, forming the usual channel-pump loop.
func waitForLogEntry(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logEntryMsg{entry: entry}
	}
}

// copyTreeCmd serializes the current widget tree to the system clipboard.
func copyTreeCmd(tree *protocol.WidgetSpec) tea.Cmd {
	return func() tea.Msg {
		if tree == nil {
			return nil
		}
		data, err := json.MarshalIndent(tree, "", "  ")
		if err == nil {
			err = clipboard.WriteAll(string(data))
		}
		if err != nil {
			logging.Warn("tui", "copy to clipboard failed: %v", err)
		}
		return nil
	}
}
