package protocol

import (
	"encoding/json"
	"fmt"
)

// rawEnvelope mirrors every field any envelope variant places at the top
// level. Toast puts its message beside the action; update_ui and dialog nest
// theirs under payload; event is flat.
type rawEnvelope struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
	Message string          `json:"message"`
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Value   json.RawMessage `json:"value"`
}

// Decode parses one wire message into an Envelope. Malformed JSON or a
// missing action yields an error; an unrecognized action does not, it simply
// produces an envelope with no variant set so the caller can drop it.
func Decode(data []byte) (Envelope, error) {
	var raw rawEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return Envelope{}, fmt.Errorf("malformed envelope: %w", err)
	}
	if raw.Action == "" {
		return Envelope{}, fmt.Errorf("envelope missing action")
	}

	env := Envelope{Action: Action(raw.Action)}
	switch env.Action {
	case ActionUpdateUI:
		var p UpdatePayload
		if len(raw.Payload) > 0 {
			if err := json.Unmarshal(raw.Payload, &p); err != nil {
				return Envelope{}, fmt.Errorf("malformed update_ui payload: %w", err)
			}
		}
		env.Update = &p
	case ActionToast:
		env.Toast = &ToastPayload{Message: raw.Message}
	case ActionDialog:
		var p DialogPayload
		if len(raw.Payload) > 0 {
			if err := json.Unmarshal(raw.Payload, &p); err != nil {
				return Envelope{}, fmt.Errorf("malformed dialog payload: %w", err)
			}
		}
		env.Dialog = &p
	case ActionEvent:
		p := EventPayload{ID: raw.ID, Type: EventType(raw.Type)}
		if len(raw.Value) > 0 {
			var v any
			if err := json.Unmarshal(raw.Value, &v); err != nil {
				return Envelope{}, fmt.Errorf("malformed event value: %w", err)
			}
			p.Value = v
			p.HasValue = true
		}
		env.Event = &p
	}
	return env, nil
}

// Encode serializes an envelope for the wire. Only the event variant is ever
// sent by this client; the inbound variants are supported for symmetry (the
// headless mode and tests round-trip them).
func Encode(env Envelope) ([]byte, error) {
	switch env.Action {
	case ActionEvent:
		if env.Event == nil {
			return nil, fmt.Errorf("event envelope without payload")
		}
		out := map[string]any{
			"action": ActionEvent,
			"id":     env.Event.ID,
			"type":   env.Event.Type,
		}
		if env.Event.HasValue {
			out["value"] = env.Event.Value
		}
		return json.Marshal(out)
	case ActionUpdateUI:
		return json.Marshal(map[string]any{"action": ActionUpdateUI, "payload": env.Update})
	case ActionToast:
		msg := ""
		if env.Toast != nil {
			msg = env.Toast.Message
		}
		return json.Marshal(map[string]any{"action": ActionToast, "message": msg})
	case ActionDialog:
		return json.Marshal(map[string]any{"action": ActionDialog, "payload": env.Dialog})
	default:
		return nil, fmt.Errorf("cannot encode action %q", env.Action)
	}
}
