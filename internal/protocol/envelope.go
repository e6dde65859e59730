package protocol

import "encoding/json"

// Action discriminates the envelope variants exchanged with the backend.
type Action string

const (
	ActionUpdateUI Action = "update_ui"
	ActionToast    Action = "toast"
	ActionDialog   Action = "dialog"
	ActionEvent    Action = "event"
)

// EventType classifies an outbound interaction event.
type EventType string

const (
	EventClick  EventType = "click"
	EventChange EventType = "change"
	EventSubmit EventType = "submit"
)

// WidgetSpec is one node of the declarative UI tree pushed by the backend.
// Child order is significant and preserved through rendering.
type WidgetSpec struct {
	Type     string         `json:"type"`
	ID       string         `json:"id"`
	Props    map[string]any `json:"props"`
	Children []WidgetSpec   `json:"children"`
}

// DefaultWidgetID is substituted when the backend omits a node id.
const DefaultWidgetID = "no_id"

// UnmarshalJSON applies the wire defaults: missing id becomes DefaultWidgetID,
// missing props an empty map, missing children an empty slice.
func (w *WidgetSpec) UnmarshalJSON(data []byte) error {
	type alias WidgetSpec
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == "" {
		raw.ID = DefaultWidgetID
	}
	if raw.Props == nil {
		raw.Props = map[string]any{}
	}
	if raw.Children == nil {
		raw.Children = []WidgetSpec{}
	}
	*w = WidgetSpec(raw)
	return nil
}

// UpdatePayload is a partial UIState patch. A nil field means the key was
// absent on the wire and the prior value must be retained.
type UpdatePayload struct {
	Tree  *WidgetSpec `json:"tree,omitempty"`
	Theme *string     `json:"theme,omitempty"`
	Title *string     `json:"title,omitempty"`
}

// ToastPayload carries a transient notification message.
type ToastPayload struct {
	Message string `json:"message"`
}

// DialogPayload carries a modal request.
type DialogPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// EventPayload is the outbound interaction report. HasValue tracks whether
// the value key is emitted at all: click events carry none, while change
// events must keep zero values such as false on the wire.
type EventPayload struct {
	ID       string
	Type     EventType
	Value    any
	HasValue bool
}

// Envelope is one decoded protocol message. Exactly one variant field is
// populated for the known actions; all of them are nil for unknown actions,
// which the caller ignores.
type Envelope struct {
	Action Action
	Update *UpdatePayload
	Toast  *ToastPayload
	Dialog *DialogPayload
	Event  *EventPayload
}
