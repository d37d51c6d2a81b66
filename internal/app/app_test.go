package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/whisper/compose/internal/config"
	"github.com/whisper/compose/internal/protocol"
)

func newTestApp() *App {
	a := New(config.Default())
	a.now = func() time.Time { return time.Unix(1700000000, 0) }
	return a
}

// records decodes every JSON line in out.
func records(t *testing.T, out string) []map[string]interface{} {
	t.Helper()
	var recs []map[string]interface{}
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var m map[string]interface{}
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("invalid output line %q: %v", sc.Text(), err)
		}
		recs = append(recs, m)
	}
	return recs
}

// ---------------------------------------------------------------------------
// Test: sink wiring
// ---------------------------------------------------------------------------

func TestApp_SendRecordsTranscript(t *testing.T) {
	a := newTestApp()

	var sent []string
	a.OnSent(func(text string) { sent = append(sent, text) })

	a.Composer.Edit("  Test message  ")
	a.Composer.Commit()

	msgs := a.Transcript.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 transcript entry, got %d", len(msgs))
	}
	if msgs[0].Text != "  Test message  " {
		t.Errorf("expected untrimmed text, got %q", msgs[0].Text)
	}
	if msgs[0].Ts != 1700000000 {
		t.Errorf("expected ts 1700000000, got %d", msgs[0].Ts)
	}
	if len(sent) != 1 || sent[0] != "  Test message  " {
		t.Errorf("expected OnSent with untrimmed text, got %v", sent)
	}
}

func TestApp_ToggleHelp(t *testing.T) {
	a := newTestApp()
	if !a.Help.Value() {
		t.Fatal("expected help visible by default")
	}
	a.ToggleHelp()
	if a.Help.Value() {
		t.Fatal("expected help hidden after toggle")
	}
}

// ---------------------------------------------------------------------------
// Test: replay scenarios
// ---------------------------------------------------------------------------

func TestReplay_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		events    string
		wantSent  []string
		wantDraft string
	}{
		{
			name:      "send action",
			events:    `{"type":"edit","text":"Test message"}` + "\n" + `{"type":"send"}`,
			wantSent:  []string{"Test message"},
			wantDraft: "",
		},
		{
			name:      "untrimmed delivery",
			events:    `{"type":"edit","text":"  Test message  "}` + "\n" + `{"type":"send"}`,
			wantSent:  []string{"  Test message  "},
			wantDraft: "",
		},
		{
			name:      "no edit",
			events:    `{"type":"send"}`,
			wantSent:  nil,
			wantDraft: "",
		},
		{
			name:      "whitespace only",
			events:    `{"type":"edit","text":"   "}` + "\n" + `{"type":"send"}`,
			wantSent:  nil,
			wantDraft: "   ",
		},
		{
			name:      "other key",
			events:    `{"type":"edit","text":"Test message"}` + "\n" + `{"type":"keydown","key":"a"}`,
			wantSent:  nil,
			wantDraft: "Test message",
		},
		{
			name:      "enter key",
			events:    `{"type":"edit","text":"Test message"}` + "\n" + `{"type":"keydown","key":"Enter"}`,
			wantSent:  []string{"Test message"},
			wantDraft: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp()
			var out strings.Builder

			if err := a.Replay(context.Background(), strings.NewReader(tt.events), &out); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			recs := records(t, out.String())
			if len(recs) != len(tt.wantSent)+1 {
				t.Fatalf("expected %d records, got %d: %s", len(tt.wantSent)+1, len(recs), out.String())
			}
			for i, want := range tt.wantSent {
				if recs[i]["type"] != protocol.TypeSent {
					t.Errorf("record %d: expected type %q, got %v", i, protocol.TypeSent, recs[i]["type"])
				}
				if recs[i]["text"] != want {
					t.Errorf("record %d: expected text %q, got %v", i, want, recs[i]["text"])
				}
			}

			last := recs[len(recs)-1]
			if last["type"] != protocol.TypeState {
				t.Fatalf("expected final state record, got %v", last["type"])
			}
			if last["draft"] != tt.wantDraft {
				t.Errorf("expected draft %q, got %v", tt.wantDraft, last["draft"])
			}
		})
	}
}

func TestReplay_CounterAndToggle(t *testing.T) {
	a := newTestApp()
	events := strings.Join([]string{
		`{"type":"increment"}`,
		`{"type":"increment"}`,
		`{"type":"decrement"}`,
		``,
		`{"type":"increment"}`,
		`{"type":"toggle"}`,
	}, "\n")

	var out strings.Builder
	if err := a.Replay(context.Background(), strings.NewReader(events), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs := records(t, out.String())
	if len(recs) != 1 {
		t.Fatalf("expected only a state record, got %d", len(recs))
	}
	if recs[0]["count"] != float64(2) {
		t.Errorf("expected count 2, got %v", recs[0]["count"])
	}
	if recs[0]["toggle"] != false {
		t.Errorf("expected toggle false, got %v", recs[0]["toggle"])
	}

	// Reset goes through the same dispatcher.
	out.Reset()
	if err := a.Replay(context.Background(), strings.NewReader(`{"type":"reset"}`), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Counter.Count() != 0 {
		t.Errorf("expected count 0 after reset, got %d", a.Counter.Count())
	}
}

func TestReplay_BadLinesReportErrors(t *testing.T) {
	a := newTestApp()
	events := "not json\n" + `{"type":"edit","text":"ok"}` + "\n" + `{"type":"send"}`

	var out strings.Builder
	if err := a.Replay(context.Background(), strings.NewReader(events), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs := records(t, out.String())
	if len(recs) != 3 {
		t.Fatalf("expected error, sent and state records, got %d: %s", len(recs), out.String())
	}
	if recs[0]["type"] != protocol.TypeError || recs[0]["code"] != "parse_error" {
		t.Errorf("expected parse_error record, got %v", recs[0])
	}
	if recs[1]["text"] != "ok" {
		t.Errorf("expected sent record for %q, got %v", "ok", recs[1])
	}
}

func TestReplay_DoesNotLeakSentHooks(t *testing.T) {
	a := newTestApp()
	var out strings.Builder
	if err := a.Replay(context.Background(), strings.NewReader(""), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.onSent) != 0 {
		t.Fatalf("expected replay hook removed, got %d hooks", len(a.onSent))
	}
}

func TestReplay_CancelledContext(t *testing.T) {
	a := newTestApp()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	err := a.Replay(ctx, strings.NewReader(`{"type":"increment"}`), &out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if a.Counter.Count() != 0 {
		t.Errorf("expected no events applied, got count %d", a.Counter.Count())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReplay_WriteError(t *testing.T) {
	a := newTestApp()
	err := a.Replay(context.Background(), strings.NewReader(`{"type":"edit","text":"x"}`+"\n"+`{"type":"send"}`), failingWriter{})
	if err == nil {
		t.Fatal("expected write error, got nil")
	}
}
