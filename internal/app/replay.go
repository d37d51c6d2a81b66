package app

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/whisper/compose/internal/dispatch"
	"github.com/whisper/compose/internal/protocol"
)

// maxEventBytes bounds a single input line.
const maxEventBytes = 1 << 20

// Replay reads one JSON event per line from r, applies each event in order,
// and writes output records to w as JSON lines: one "sent" record for every
// delivered message, an "error" record for every rejected line, and a final
// "state" record. Blank lines are skipped. Replay stops early when ctx is
// cancelled.
func (a *App) Replay(ctx context.Context, r io.Reader, w io.Writer) error {
	var writeErr error
	emit := func(data []byte) {
		if writeErr != nil {
			return
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			writeErr = fmt.Errorf("app: write output: %w", err)
		}
	}

	d := a.newDispatcher(emit)
	n := len(a.onSent)
	defer func() { a.onSent = a.onSent[:n] }()
	a.OnSent(func(text string) {
		data, err := protocol.NewOutputMessage(protocol.TypeSent, protocol.SentMsg{Text: text})
		if err != nil {
			log.Printf("[replay] failed to build sent record: %v", err)
			return
		}
		d.Output(data)
	})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventBytes)

	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		if !d.Dispatch(data) {
			log.Printf("[replay] line %d rejected", line)
		}
		if writeErr != nil {
			return writeErr
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("app: read events: %w", err)
	}

	data, err := protocol.NewOutputMessage(protocol.TypeState, a.State())
	if err != nil {
		return err
	}
	d.Output(data)
	return writeErr
}

// newDispatcher registers a handler for every host event type.
func (a *App) newDispatcher(output dispatch.OutputFunc) *dispatch.Dispatcher {
	d := dispatch.New(output)

	d.Register(protocol.TypeEdit, func(ev interface{}) {
		edit, ok := ev.(protocol.EditEvent)
		if !ok {
			return
		}
		a.Composer.Edit(edit.Text)
	})
	d.Register(protocol.TypeSend, func(interface{}) {
		a.Composer.Commit()
	})
	d.Register(protocol.TypeKeyDown, func(ev interface{}) {
		kd, ok := ev.(protocol.KeyDownEvent)
		if !ok {
			return
		}
		a.Composer.KeyPress(kd.Key)
	})
	d.Register(protocol.TypeIncrement, func(interface{}) { a.Counter.Increment() })
	d.Register(protocol.TypeDecrement, func(interface{}) { a.Counter.Decrement() })
	d.Register(protocol.TypeReset, func(interface{}) { a.Counter.Reset() })
	d.Register(protocol.TypeToggle, func(interface{}) { a.ToggleHelp() })

	return d
}
