// Package protocol defines the JSON event records used to drive the composer
// without a terminal. Each line of input is one host UI event and each line
// of output is one result record. Both share an envelope with a "type"
// discriminator.
package protocol

import (
	"encoding/json"
	"fmt"
)

// ---------------------------------------------------------------------------
// Event type constants
// ---------------------------------------------------------------------------

// Host -> composer event types.
const (
	TypeEdit      = "edit"
	TypeSend      = "send"
	TypeKeyDown   = "keydown"
	TypeIncrement = "increment"
	TypeDecrement = "decrement"
	TypeReset     = "reset"
	TypeToggle    = "toggle"
)

// Composer -> host output types.
const (
	TypeSent  = "sent"
	TypeState = "state"
	TypeError = "error"
)

// ---------------------------------------------------------------------------
// Envelope — used for initial JSON parsing to extract the type discriminator.
// ---------------------------------------------------------------------------

// Envelope holds the event type and the raw JSON payload for deferred
// parsing into a concrete struct.
type Envelope struct {
	Type string          `json:"type"`
	Raw  json.RawMessage `json:"-"`
}

// UnmarshalJSON captures the full raw bytes and extracts only the "type"
// field so that the rest of the payload can be decoded later.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	e.Raw = make(json.RawMessage, len(data))
	copy(e.Raw, data)

	var partial struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &partial); err != nil {
		return fmt.Errorf("protocol: failed to unmarshal envelope: %w", err)
	}
	if partial.Type == "" {
		return fmt.Errorf("protocol: missing or empty \"type\" field")
	}
	e.Type = partial.Type
	return nil
}

// ---------------------------------------------------------------------------
// Host -> composer event structs
// ---------------------------------------------------------------------------

// EditEvent replaces the draft with Text.
type EditEvent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendEvent is the explicit send action (the Send button).
type SendEvent struct {
	Type string `json:"type"`
}

// KeyDownEvent reports a key press in the message field. Only the key
// identity "Enter" commits.
type KeyDownEvent struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// CounterEvent is one of increment, decrement or reset.
type CounterEvent struct {
	Type string `json:"type"`
}

// ToggleEvent flips the toggle.
type ToggleEvent struct {
	Type string `json:"type"`
}

// ---------------------------------------------------------------------------
// Composer -> host output structs
// ---------------------------------------------------------------------------

// SentMsg records one successful commit with the exact text delivered.
type SentMsg struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// StateMsg is a snapshot of the composer, counter and toggle.
type StateMsg struct {
	Type   string `json:"type"`
	Draft  string `json:"draft"`
	Count  int    `json:"count"`
	Toggle bool   `json:"toggle"`
}

// ErrorMsg reports an event that could not be handled.
type ErrorMsg struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ---------------------------------------------------------------------------
// Helper functions
// ---------------------------------------------------------------------------

// ParseEvent parses one raw event into a typed struct. It returns the event
// type string, the decoded struct, and any error encountered during parsing.
// Unknown types are an error.
func ParseEvent(data []byte) (string, interface{}, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", nil, fmt.Errorf("protocol: failed to parse event: %w", err)
	}

	var (
		msg interface{}
		err error
	)

	switch env.Type {
	case TypeEdit:
		var m EditEvent
		err = json.Unmarshal(env.Raw, &m)
		msg = m
	case TypeSend:
		var m SendEvent
		err = json.Unmarshal(env.Raw, &m)
		msg = m
	case TypeKeyDown:
		var m KeyDownEvent
		err = json.Unmarshal(env.Raw, &m)
		msg = m
	case TypeIncrement, TypeDecrement, TypeReset:
		var m CounterEvent
		err = json.Unmarshal(env.Raw, &m)
		msg = m
	case TypeToggle:
		var m ToggleEvent
		err = json.Unmarshal(env.Raw, &m)
		msg = m
	default:
		return env.Type, nil, fmt.Errorf("protocol: unknown event type: %q", env.Type)
	}

	if err != nil {
		return env.Type, nil, fmt.Errorf("protocol: failed to decode %q payload: %w", env.Type, err)
	}
	return env.Type, msg, nil
}

// NewOutputMessage creates a JSON-encoded output record. The msgType is
// injected into the payload under the "type" key.
func NewOutputMessage(msgType string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("protocol: failed to marshal payload: %w", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("protocol: failed to unmarshal payload into map: %w", err)
	}

	m["type"] = msgType

	out, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("protocol: failed to marshal output message: %w", err)
	}
	return out, nil
}
