// Package client owns the duplex channel to the backend: connect, listen,
// reconnect-on-demand, close. There is no automatic retry; reconnecting is
// always an explicit caller decision.
package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"veneer/internal/protocol"
	"veneer/pkg/logging"
)

const subsystem = "connection"

// Status is the connection lifecycle state.
type Status int

const (
	StatusDisconnected Status = iota
	StatusConnecting
	StatusConnected
	StatusFaulted
)

func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "Connecting"
	case StatusConnected:
		return "Connected"
	case StatusFaulted:
		return "Faulted"
	default:
		return "Disconnected"
	}
}

// EnvelopeHandler receives every successfully decoded inbound envelope. It
// is called from the read loop goroutine; the TUI handler marshals back onto
// the update loop before touching any state.
type EnvelopeHandler func(protocol.Envelope)

// StatusHandler receives lifecycle transitions with a human-readable detail
// string suitable for the status bar.
type StatusHandler func(status Status, detail string)

// Manager owns one websocket session at a time.
type Manager struct {
	url        string
	onEnvelope EnvelopeHandler
	onStatus   StatusHandler

	mu     sync.Mutex
	status Status
	conn   *websocket.Conn

	// writeMu serializes writes; gorilla connections allow one concurrent
	// writer only.
	writeMu sync.Mutex
}

// NewManager wires a manager to its endpoint and handlers. Handlers may be
// nil when the caller does not care (headless probes, tests).
func NewManager(url string, onEnvelope EnvelopeHandler, onStatus StatusHandler) *Manager {
	return &Manager{
		url:        url,
		onEnvelope: onEnvelope,
		onStatus:   onStatus,
	}
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Connect dials the endpoint and starts the read loop. It is idempotent
// while Connecting or Connected and returns the dial error, if any, to the
// caller as well as surfacing it through the status handler.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	if m.status == StatusConnecting || m.status == StatusConnected {
		m.mu.Unlock()
		logging.Debug(subsystem, "connect ignored, already %s", m.status)
		return nil
	}
	m.status = StatusConnecting
	m.mu.Unlock()
	m.notify(StatusConnecting, fmt.Sprintf("Connecting to %s", m.url))

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, m.url, nil)
	if err != nil {
		m.setStatus(StatusDisconnected)
		detail := fmt.Sprintf("Connection failed: %v", err)
		logging.Error(subsystem, err, "dial %s failed", m.url)
		m.notify(StatusDisconnected, detail)
		return fmt.Errorf("dial %s: %w", m.url, err)
	}

	m.mu.Lock()
	m.conn = conn
	m.status = StatusConnected
	m.mu.Unlock()
	logging.Info(subsystem, "connected to %s", m.url)
	m.notify(StatusConnected, fmt.Sprintf("Connected to %s", m.url))

	go m.readLoop(conn)
	return nil
}

// readLoop forwards every decoded inbound envelope until the transport
// closes. Decode failures drop the message and keep the session alive.
func (m *Manager) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			m.closed(conn, err)
			return
		}
		env, derr := protocol.Decode(data)
		if derr != nil {
			logging.Warn(subsystem, "dropping malformed message: %v", derr)
			continue
		}
		if m.onEnvelope != nil {
			m.onEnvelope(env)
		}
	}
}

// closed handles the transport going away, cleanly or not. A session that a
// newer Connect already replaced is ignored.
func (m *Manager) closed(conn *websocket.Conn, err error) {
	m.mu.Lock()
	if m.conn != conn {
		m.mu.Unlock()
		return
	}
	m.conn = nil

	status := StatusFaulted
	detail := fmt.Sprintf("Connection lost: %v", err)
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		status = StatusDisconnected
		detail = "Connection closed by backend"
	}
	m.status = status
	m.mu.Unlock()

	logging.Warn(subsystem, "%s", detail)
	m.notify(status, detail)
}

// Send encodes and writes one envelope. When not Connected it is a logged
// no-op: outbound events are fire-and-forget relative to the current session
// and are never queued for later delivery.
func (m *Manager) Send(env protocol.Envelope) error {
	m.mu.Lock()
	conn := m.conn
	connected := m.status == StatusConnected
	m.mu.Unlock()

	if !connected || conn == nil {
		logging.Debug(subsystem, "dropping outbound %s envelope, not connected", env.Action)
		return nil
	}

	data, err := protocol.Encode(env)
	if err != nil {
		logging.Error(subsystem, err, "cannot encode outbound envelope")
		return err
	}

	m.writeMu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	m.writeMu.Unlock()
	if err != nil {
		logging.Error(subsystem, err, "write failed")
		m.closed(conn, err)
		return err
	}
	return nil
}

// Close tears the session down deliberately; the read loop observing the
// close is ignored because the conn is detached first.
func (m *Manager) Close() {
	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	m.status = StatusDisconnected
	m.mu.Unlock()

	if conn != nil {
		m.writeMu.Lock()
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client closing"))
		m.writeMu.Unlock()
		_ = conn.Close()
	}
	m.notify(StatusDisconnected, "Disconnected")
}

func (m *Manager) setStatus(s Status) {
	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
}

func (m *Manager) notify(s Status, detail string) {
	if m.onStatus != nil {
		m.onStatus(s, detail)
	}
}
