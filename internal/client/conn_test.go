package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veneer/internal/protocol"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// fakeBackend is a loopback websocket endpoint for exercising the manager.
type fakeBackend struct {
	srv      *httptest.Server
	conns    chan *websocket.Conn
	received chan []byte
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		conns:    make(chan *websocket.Conn, 4),
		received: make(chan []byte, 16),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		b.conns <- conn
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			b.received <- data
		}
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) wsURL() string {
	return "ws" + strings.TrimPrefix(b.srv.URL, "http")
}

func (b *fakeBackend) acceptedConn(t *testing.T) *websocket.Conn {
	t.Helper()
	select {
	case c := <-b.conns:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("backend never accepted a connection")
		return nil
	}
}

func waitStatus(t *testing.T, ch <-chan Status, want Status) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-ch:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("never reached status %s", want)
		}
	}
}

func TestConnectReceiveSendAndClose(t *testing.T) {
	backend := newFakeBackend(t)

	envelopes := make(chan protocol.Envelope, 4)
	statuses := make(chan Status, 16)
	m := NewManager(backend.wsURL(),
		func(env protocol.Envelope) { envelopes <- env },
		func(s Status, detail string) {
			assert.NotEmpty(t, detail)
			statuses <- s
		})

	require.NoError(t, m.Connect(context.Background()))
	waitStatus(t, statuses, StatusConnected)
	assert.Equal(t, StatusConnected, m.Status())

	server := backend.acceptedConn(t)

	// Backend pushes an update; the manager decodes and forwards it.
	err := server.WriteMessage(websocket.TextMessage,
		[]byte(`{"action":"update_ui","payload":{"title":"Hi"}}`))
	require.NoError(t, err)
	select {
	case env := <-envelopes:
		assert.Equal(t, protocol.ActionUpdateUI, env.Action)
		require.NotNil(t, env.Update)
		require.NotNil(t, env.Update.Title)
		assert.Equal(t, "Hi", *env.Update.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("envelope never forwarded")
	}

	// A malformed frame is dropped without killing the session.
	require.NoError(t, server.WriteMessage(websocket.TextMessage, []byte(`{nope`)))
	require.NoError(t, server.WriteMessage(websocket.TextMessage,
		[]byte(`{"action":"toast","message":"still alive"}`)))
	select {
	case env := <-envelopes:
		require.NotNil(t, env.Toast)
		assert.Equal(t, "still alive", env.Toast.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("session died on a malformed frame")
	}

	// Outbound event reaches the backend.
	require.NoError(t, m.Send(protocol.Envelope{
		Action: protocol.ActionEvent,
		Event:  &protocol.EventPayload{ID: "btn1", Type: protocol.EventClick},
	}))
	select {
	case data := <-backend.received:
		env, err := protocol.Decode(data)
		require.NoError(t, err)
		require.NotNil(t, env.Event)
		assert.Equal(t, "btn1", env.Event.ID)
		assert.False(t, env.Event.HasValue)
	case <-time.After(2 * time.Second):
		t.Fatal("event never reached the backend")
	}

	// Backend closes cleanly: the manager reports Disconnected, not Faulted.
	require.NoError(t, server.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	server.Close()
	waitStatus(t, statuses, StatusDisconnected)
}

func TestConnectIsIdempotent(t *testing.T) {
	backend := newFakeBackend(t)
	statuses := make(chan Status, 16)
	m := NewManager(backend.wsURL(), nil, func(s Status, _ string) { statuses <- s })

	require.NoError(t, m.Connect(context.Background()))
	waitStatus(t, statuses, StatusConnected)

	// A second connect while connected must not dial again.
	require.NoError(t, m.Connect(context.Background()))
	assert.Equal(t, StatusConnected, m.Status())
	select {
	case <-backend.conns:
		// first connection
	case <-time.After(2 * time.Second):
		t.Fatal("no connection accepted")
	}
	select {
	case <-backend.conns:
		t.Fatal("idempotent connect dialed a second session")
	case <-time.After(100 * time.Millisecond):
	}

	m.Close()
	assert.Equal(t, StatusDisconnected, m.Status())
}

func TestConnectFailureSurfacesDisconnected(t *testing.T) {
	var lastDetail string
	statuses := make(chan Status, 4)
	m := NewManager("ws://127.0.0.1:1", nil, func(s Status, detail string) {
		lastDetail = detail
		statuses <- s
	})

	err := m.Connect(context.Background())
	require.Error(t, err)
	waitStatus(t, statuses, StatusDisconnected)
	assert.Equal(t, StatusDisconnected, m.Status())
	assert.Contains(t, lastDetail, "Connection failed")
}

func TestSendWhileDisconnectedIsANoOp(t *testing.T) {
	backend := newFakeBackend(t)
	m := NewManager(backend.wsURL(), nil, nil)

	err := m.Send(protocol.Envelope{
		Action: protocol.ActionEvent,
		Event:  &protocol.EventPayload{ID: "btn1", Type: protocol.EventClick},
	})
	assert.NoError(t, err, "send while disconnected is swallowed, not failed")

	select {
	case <-backend.received:
		t.Fatal("no envelope may leave while disconnected")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestReconnectAfterClose(t *testing.T) {
	backend := newFakeBackend(t)
	statuses := make(chan Status, 16)
	m := NewManager(backend.wsURL(), nil, func(s Status, _ string) { statuses <- s })

	require.NoError(t, m.Connect(context.Background()))
	waitStatus(t, statuses, StatusConnected)
	m.Close()
	assert.Equal(t, StatusDisconnected, m.Status())

	// Reconnect is an explicit second call, never a timer.
	require.NoError(t, m.Connect(context.Background()))
	waitStatus(t, statuses, StatusConnected)
}
