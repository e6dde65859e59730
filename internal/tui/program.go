package tui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"veneer/internal/client"
	"veneer/internal/protocol"
)

// relay forwards connection callbacks into the bubbletea loop. The program
// pointer is set after construction; callbacks arriving before that are
// dropped, which only affects the instant before Run.
type relay struct {
	program atomic.Pointer[tea.Program]
}

func (r *relay) send(msg tea.Msg) {
	if p := r.program.Load(); p != nil {
		p.Send(msg)
	}
}

// Run wires the connection manager to a fresh program and blocks until the
// user quits or the program fails.
func Run(opts Options) error {
	r := &relay{}

	manager := client.NewManager(opts.Endpoint,
		func(env protocol.Envelope) {
			r.send(envelopeMsg{env: env})
		},
		func(status client.Status, detail string) {
			r.send(connStatusMsg{status: status, detail: detail})
		})

	connectCmd := func() tea.Msg {
		return connectResultMsg{err: manager.Connect(context.Background())}
	}

	m := InitialModel(opts, manager, connectCmd)
	p := tea.NewProgram(m, tea.WithAltScreen())
	r.program.Store(p)

	_, err := p.Run()
	manager.Close()
	return err
}
