package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUpdateUIFullPayload(t *testing.T) {
	data := []byte(`{"action":"update_ui","payload":{"tree":{"type":"column","id":"root","children":[{"type":"text","props":{"value":"Hi"}}]},"theme":"fluent","title":"Demo"}}`)

	env, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, ActionUpdateUI, env.Action)
	require.NotNil(t, env.Update)

	require.NotNil(t, env.Update.Tree)
	assert.Equal(t, "column", env.Update.Tree.Type)
	assert.Equal(t, "root", env.Update.Tree.ID)
	require.Len(t, env.Update.Tree.Children, 1)

	child := env.Update.Tree.Children[0]
	assert.Equal(t, "text", child.Type)
	assert.Equal(t, DefaultWidgetID, child.ID, "missing id defaults to no_id")
	assert.Equal(t, "Hi", child.Props["value"])
	assert.NotNil(t, child.Children, "missing children defaults to empty slice")

	require.NotNil(t, env.Update.Theme)
	assert.Equal(t, "fluent", *env.Update.Theme)
	require.NotNil(t, env.Update.Title)
	assert.Equal(t, "Demo", *env.Update.Title)
}

func TestDecodeUpdateUIPartialPayload(t *testing.T) {
	env, err := Decode([]byte(`{"action":"update_ui","payload":{"title":"X"}}`))
	require.NoError(t, err)
	require.NotNil(t, env.Update)
	assert.Nil(t, env.Update.Tree, "absent tree key must stay nil")
	assert.Nil(t, env.Update.Theme, "absent theme key must stay nil")
	require.NotNil(t, env.Update.Title)
	assert.Equal(t, "X", *env.Update.Title)
}

func TestDecodeUpdateUIEmptyPayload(t *testing.T) {
	env, err := Decode([]byte(`{"action":"update_ui"}`))
	require.NoError(t, err)
	require.NotNil(t, env.Update)
	assert.Nil(t, env.Update.Tree)
}

func TestDecodeToast(t *testing.T) {
	env, err := Decode([]byte(`{"action":"toast","message":"saved"}`))
	require.NoError(t, err)
	require.NotNil(t, env.Toast)
	assert.Equal(t, "saved", env.Toast.Message)
}

func TestDecodeDialog(t *testing.T) {
	env, err := Decode([]byte(`{"action":"dialog","payload":{"title":"Oops","message":"backend says no"}}`))
	require.NoError(t, err)
	require.NotNil(t, env.Dialog)
	assert.Equal(t, "Oops", env.Dialog.Title)
	assert.Equal(t, "backend says no", env.Dialog.Message)
}

func TestDecodeUnknownActionIsNotAnError(t *testing.T) {
	env, err := Decode([]byte(`{"action":"reticulate_splines","payload":{}}`))
	require.NoError(t, err)
	assert.Equal(t, Action("reticulate_splines"), env.Action)
	assert.Nil(t, env.Update)
	assert.Nil(t, env.Toast)
	assert.Nil(t, env.Dialog)
	assert.Nil(t, env.Event)
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		"truncated json": `{"action":"toast"`,
		"not an object":  `[1,2,3]`,
		"missing action": `{"payload":{}}`,
		"bad payload":    `{"action":"update_ui","payload":"not-an-object"}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestEncodeClickEventOmitsValueKey(t *testing.T) {
	env := Envelope{Action: ActionEvent, Event: &EventPayload{ID: "btn1", Type: EventClick}}

	data, err := Encode(env)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, "event", wire["action"])
	assert.Equal(t, "btn1", wire["id"])
	assert.Equal(t, "click", wire["type"])
	_, hasValue := wire["value"]
	assert.False(t, hasValue, "click events must not carry a value key")
}

func TestEncodeChangeEventKeepsZeroValue(t *testing.T) {
	env := Envelope{Action: ActionEvent, Event: &EventPayload{ID: "tgl", Type: EventChange, Value: false, HasValue: true}}

	data, err := Encode(env)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	v, hasValue := wire["value"]
	assert.True(t, hasValue, "change events carry the value even when it is falsy")
	assert.Equal(t, false, v)
}

func TestEventRoundTrip(t *testing.T) {
	env := Envelope{Action: ActionEvent, Event: &EventPayload{ID: "field", Type: EventSubmit, Value: "hello", HasValue: true}}

	data, err := Encode(env)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.NotNil(t, decoded.Event)
	assert.Equal(t, env.Event.ID, decoded.Event.ID)
	assert.Equal(t, env.Event.Type, decoded.Event.Type)
	assert.Equal(t, "hello", decoded.Event.Value)
	assert.True(t, decoded.Event.HasValue)
}

func TestEncodeUnknownAction(t *testing.T) {
	_, err := Encode(Envelope{Action: "bogus"})
	assert.Error(t, err)
}
