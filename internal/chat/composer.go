package chat

import "github.com/google/uuid"

// KeyEnter is the only key identity that commits the draft.
const KeyEnter = "Enter"

// Sink receives committed drafts. It is supplied by the embedding
// application and is assumed to return promptly.
type Sink interface {
	Send(text string)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(text string)

// Send calls f(text).
func (f SinkFunc) Send(text string) { f(text) }

// Observer is told the outcome of every commit attempt ("sent" or
// "declined"). Observers cannot influence the outcome.
type Observer func(result string)

// Option configures a Composer.
type Option func(*Composer)

// WithObserver registers an observer for commit outcomes.
func WithObserver(o Observer) Option {
	return func(c *Composer) {
		c.observers = append(c.observers, o)
	}
}

// WithID overrides the generated composer ID.
func WithID(id string) Option {
	return func(c *Composer) {
		c.id = id
	}
}

// Composer owns a single draft message and forwards it to a Sink when a
// commit is requested and the draft is sendable.
//
// A Composer is not safe for concurrent use. Events are expected to arrive
// one at a time from a single UI loop.
type Composer struct {
	id        string
	draft     string
	sink      Sink
	observers []Observer
}

// NewComposer creates a Composer with an empty draft that delivers to sink.
func NewComposer(sink Sink, opts ...Option) *Composer {
	c := &Composer{
		id:   uuid.New().String(),
		sink: sink,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the composer's identifier, used to correlate log lines.
func (c *Composer) ID() string {
	return c.id
}

// Draft returns the current draft text.
func (c *Composer) Draft() string {
	return c.draft
}

// Edit replaces the draft with text verbatim.
func (c *Composer) Edit(text string) {
	c.draft = text
}

// Commit delivers the draft to the sink and clears it if the draft is
// sendable. The sink receives the draft exactly as typed; trimming only
// decides sendability. Returns whether the sink was called.
func (c *Composer) Commit() bool {
	if !IsSendable(c.draft) {
		c.notify(ResultDeclined)
		return false
	}

	text := c.draft
	if c.sink != nil {
		c.sink.Send(text)
	}
	c.draft = ""
	c.notify(ResultSent)
	return true
}

// KeyPress commits the draft when key is exactly "Enter". Any other key is
// ignored.
func (c *Composer) KeyPress(key string) bool {
	if key != KeyEnter {
		return false
	}
	return c.Commit()
}

func (c *Composer) notify(result string) {
	for _, o := range c.observers {
		o(result)
	}
}
