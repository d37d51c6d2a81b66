// Package app wires the composer, counter store, help toggle, transcript and
// metrics into one unit shared by the terminal UI and the replay runner.
package app

import (
	"log"
	"time"

	"github.com/whisper/compose/internal/chat"
	"github.com/whisper/compose/internal/config"
	"github.com/whisper/compose/internal/counter"
	"github.com/whisper/compose/internal/metrics"
	"github.com/whisper/compose/internal/protocol"
	"github.com/whisper/compose/internal/toggle"
)

// App owns every piece of UI state. It is driven from a single event loop.
type App struct {
	Composer   *chat.Composer
	Counter    *counter.Store
	Help       *toggle.Toggle
	Transcript *chat.Transcript

	onSent []func(text string)
	now    func() time.Time
}

// New builds an App from cfg. The help footer starts visible.
func New(cfg config.Config) *App {
	a := &App{
		Counter:    counter.New(),
		Help:       toggle.New(true),
		Transcript: chat.NewTranscript(cfg.TranscriptSize),
		now:        time.Now,
	}
	a.Composer = chat.NewComposer(chat.SinkFunc(a.deliver), chat.WithObserver(metrics.ObserveCommit))
	a.Counter.Subscribe(metrics.SetCounter)
	metrics.SetCounter(a.Counter.Count())
	metrics.SetHelpVisible(a.Help.Value())
	return a
}

// OnSent registers fn to be called with every delivered message, after it
// has been recorded in the transcript.
func (a *App) OnSent(fn func(text string)) {
	a.onSent = append(a.onSent, fn)
}

// ToggleHelp flips the help footer.
func (a *App) ToggleHelp() {
	a.Help.Toggle()
	metrics.SetHelpVisible(a.Help.Value())
}

// State returns a snapshot for output records.
func (a *App) State() protocol.StateMsg {
	return protocol.StateMsg{
		Draft:  a.Composer.Draft(),
		Count:  a.Counter.Count(),
		Toggle: a.Help.Value(),
	}
}

// deliver is the composer's sink.
func (a *App) deliver(text string) {
	log.Printf("[app] composer=%s message sent: %q", a.Composer.ID(), text)
	a.Transcript.Add(chat.SentMessage{Text: text, Ts: a.now().Unix()})
	metrics.ObserveMessage(text)
	for _, fn := range a.onSent {
		fn(text)
	}
}
