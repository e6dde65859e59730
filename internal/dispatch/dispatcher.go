// Package dispatch turns user interactions into outbound event envelopes.
package dispatch

import (
	"veneer/internal/protocol"
	"veneer/pkg/logging"
)

const subsystem = "dispatch"

// Sender is the outbound half of the connection manager. Sending while not
// connected is the sender's problem; the dispatcher never queues.
type Sender interface {
	Send(protocol.Envelope) error
}

// Dispatcher builds and forwards interaction events. It is stateless beyond
// its sender reference.
type Dispatcher struct {
	sender Sender
}

func New(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// Click reports an activation. Click events carry no value.
func (d *Dispatcher) Click(id string) {
	d.emit(protocol.EventPayload{ID: id, Type: protocol.EventClick})
}

// Change reports a new widget value, including zero values like false or "".
func (d *Dispatcher) Change(id string, value any) {
	d.emit(protocol.EventPayload{ID: id, Type: protocol.EventChange, Value: value, HasValue: true})
}

// Submit reports a commit of the widget's current value.
func (d *Dispatcher) Submit(id string, value any) {
	d.emit(protocol.EventPayload{ID: id, Type: protocol.EventSubmit, Value: value, HasValue: true})
}

func (d *Dispatcher) emit(ev protocol.EventPayload) {
	env := protocol.Envelope{Action: protocol.ActionEvent, Event: &ev}
	if err := d.sender.Send(env); err != nil {
		logging.Warn(subsystem, "event %s for %q not delivered: %v", ev.Type, ev.ID, err)
	}
}
