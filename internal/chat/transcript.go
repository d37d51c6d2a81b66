package chat

// DefaultTranscriptSize is the number of sent messages retained when no
// capacity is given.
const DefaultTranscriptSize = 5

// Transcript keeps the most recent sent messages in memory using a fixed
// size ring buffer. Nothing is written anywhere; the transcript is gone when
// the process exits.
type Transcript struct {
	items []SentMessage
	pos   int
	count int
}

// NewTranscript creates an empty Transcript holding up to size messages.
// A non-positive size falls back to DefaultTranscriptSize.
func NewTranscript(size int) *Transcript {
	if size <= 0 {
		size = DefaultTranscriptSize
	}
	return &Transcript{
		items: make([]SentMessage, size),
	}
}

// Add appends a message. If the transcript is full, the oldest message is
// overwritten.
func (t *Transcript) Add(msg SentMessage) {
	size := len(t.items)
	t.items[t.pos] = msg
	t.pos = (t.pos + 1) % size
	if t.count < size {
		t.count++
	}
}

// Messages returns the retained messages in chronological order (oldest
// first). The result is never nil.
func (t *Transcript) Messages() []SentMessage {
	size := len(t.items)
	result := make([]SentMessage, t.count)
	// The oldest message is at position (pos - count) mod size.
	start := (t.pos - t.count + size) % size
	for i := 0; i < t.count; i++ {
		result[i] = t.items[(start+i)%size]
	}
	return result
}

// Len returns the number of retained messages.
func (t *Transcript) Len() int {
	return t.count
}

// Cap returns the maximum number of retained messages.
func (t *Transcript) Cap() int {
	return len(t.items)
}

// Clear drops every retained message.
func (t *Transcript) Clear() {
	for i := range t.items {
		t.items[i] = SentMessage{}
	}
	t.pos = 0
	t.count = 0
}
