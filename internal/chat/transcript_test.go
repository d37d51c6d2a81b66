package chat

import (
	"fmt"
	"testing"
)

func TestTranscript_AddAndMessages(t *testing.T) {
	tr := NewTranscript(5)

	tr.Add(SentMessage{Text: "hello", Ts: 1})
	tr.Add(SentMessage{Text: "hi", Ts: 2})
	tr.Add(SentMessage{Text: "how are you?", Ts: 3})

	msgs := tr.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "hello" {
		t.Errorf("expected first message 'hello', got %q", msgs[0].Text)
	}
	if msgs[1].Text != "hi" {
		t.Errorf("expected second message 'hi', got %q", msgs[1].Text)
	}
	if msgs[2].Text != "how are you?" {
		t.Errorf("expected third message 'how are you?', got %q", msgs[2].Text)
	}
}

func TestTranscript_Wraparound(t *testing.T) {
	tr := NewTranscript(5)

	// Add 7 messages; the transcript holds only 5.
	for i := 1; i <= 7; i++ {
		tr.Add(SentMessage{Text: fmt.Sprintf("msg-%d", i), Ts: int64(i)})
	}

	msgs := tr.Messages()
	if len(msgs) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(msgs))
	}

	// Should contain messages 3 through 7 in order.
	for i, msg := range msgs {
		expected := fmt.Sprintf("msg-%d", i+3)
		if msg.Text != expected {
			t.Errorf("index %d: expected %q, got %q", i, expected, msg.Text)
		}
	}
}

func TestTranscript_EmptyIsNonNil(t *testing.T) {
	tr := NewTranscript(3)

	msgs := tr.Messages()
	if msgs == nil {
		t.Fatal("expected non-nil empty slice, got nil")
	}
	if len(msgs) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(msgs))
	}
}

func TestTranscript_DefaultSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		tr := NewTranscript(size)
		if tr.Cap() != DefaultTranscriptSize {
			t.Errorf("NewTranscript(%d).Cap() = %d, want %d", size, tr.Cap(), DefaultTranscriptSize)
		}
	}
}

func TestTranscript_Clear(t *testing.T) {
	tr := NewTranscript(2)
	tr.Add(SentMessage{Text: "a"})
	tr.Add(SentMessage{Text: "b"})
	tr.Add(SentMessage{Text: "c"})

	tr.Clear()
	if tr.Len() != 0 {
		t.Fatalf("expected 0 messages after clear, got %d", tr.Len())
	}

	tr.Add(SentMessage{Text: "d"})
	msgs := tr.Messages()
	if len(msgs) != 1 || msgs[0].Text != "d" {
		t.Fatalf("expected [d] after clear, got %+v", msgs)
	}
}
