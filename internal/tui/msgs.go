package tui

import (
	"veneer/internal/client"
	"veneer/internal/protocol"
	"veneer/pkg/logging"
)

// -------------------- Connection messages --------------------

// envelopeMsg carries one decoded inbound envelope onto the update loop.
type envelopeMsg struct {
	env protocol.Envelope
}

// connStatusMsg carries a connection lifecycle transition.
type connStatusMsg struct {
	status client.Status
	detail string
}

// connectResultMsg is the outcome of an explicit connect attempt.
type connectResultMsg struct {
	err error
}

// -------------------- Surface messages --------------------

// clearStatusBarMsg expires a toast. The seq guards against a stale timer
// clearing a newer toast.
type clearStatusBarMsg struct {
	seq int
}

// logEntryMsg delivers one entry from the logging channel.
type logEntryMsg struct {
	entry logging.LogEntry
}
