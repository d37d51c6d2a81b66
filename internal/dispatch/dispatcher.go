// Package dispatch routes parsed host UI events to the handlers that apply
// them, one event at a time and in delivery order.
package dispatch

import (
	"log"

	"github.com/whisper/compose/internal/protocol"
)

// Handler is the callback signature for handling a parsed event. The ev
// parameter is the concrete struct returned by protocol.ParseEvent (e.g.
// protocol.EditEvent, protocol.KeyDownEvent).
type Handler func(ev interface{})

// OutputFunc receives encoded output records produced while dispatching.
type OutputFunc func(data []byte)

// Dispatcher routes incoming events to registered handlers based on the
// event type. It sends structured error records for malformed or
// unsupported events.
type Dispatcher struct {
	handlers map[string]Handler
	output   OutputFunc
}

// New creates a Dispatcher that reports errors through output. A nil output
// discards error records.
func New(output OutputFunc) *Dispatcher {
	if output == nil {
		output = func([]byte) {}
	}
	return &Dispatcher{
		handlers: make(map[string]Handler),
		output:   output,
	}
}

// Register associates a Handler with an event type. If a handler was
// already registered for the given type, it is silently replaced.
func (d *Dispatcher) Register(evType string, handler Handler) {
	d.handlers[evType] = handler
}

// Dispatch parses the raw bytes into a typed event and routes it to the
// registered handler. Parse errors and unregistered types result in an
// error record. It reports whether a handler ran.
func (d *Dispatcher) Dispatch(data []byte) bool {
	evType, ev, err := protocol.ParseEvent(data)
	if err != nil {
		log.Printf("[dispatch] parse error: %v", err)
		d.sendError("parse_error", "invalid event format")
		return false
	}

	handler, ok := d.handlers[evType]
	if !ok {
		log.Printf("[dispatch] unsupported event type=%q", evType)
		d.sendError("unsupported_type", "unsupported event type")
		return false
	}

	handler(ev)
	return true
}

// Output writes an encoded record through the dispatcher's output.
func (d *Dispatcher) Output(data []byte) {
	d.output(data)
}

// sendError sends a structured error record. Errors during construction are
// logged but not propagated.
func (d *Dispatcher) sendError(code string, message string) {
	data, err := protocol.NewOutputMessage(protocol.TypeError, protocol.ErrorMsg{
		Code:    code,
		Message: message,
	})
	if err != nil {
		log.Printf("[dispatch] failed to build error record: %v", err)
		return
	}
	d.output(data)
}
