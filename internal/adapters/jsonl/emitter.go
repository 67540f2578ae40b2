// Package jsonl implements the line-delimited JSON wire format shared by the
// emitters, the stream merger and recording files.
package jsonl

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// Emitter writes event records as single JSON lines to one output channel
type Emitter struct {
	channel domain.Channel
	mu      sync.Mutex
	w       io.Writer
}

// Compile-time interface verification
var _ ports.RecordEmitter = (*Emitter)(nil)

// NewEmitter creates an emitter bound to the process stdout (primary) or stderr (secondary)
func NewEmitter(channel domain.Channel) *Emitter {
	var w io.Writer = os.Stdout
	if channel == domain.ChannelSecondary {
		w = os.Stderr
	}
	return NewWriterEmitter(w, channel)
}

// NewWriterEmitter creates an emitter writing to an arbitrary writer
func NewWriterEmitter(w io.Writer, channel domain.Channel) *Emitter {
	return &Emitter{
		channel: channel,
		w:       w,
	}
}

// Channel returns the channel this emitter writes to
func (e *Emitter) Channel() domain.Channel {
	return e.channel
}

// Emit serializes the record and writes it with a single write call.
// Failures are logged and swallowed: reporting must never break the reported operation.
func (e *Emitter) Emit(rec domain.Record) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Emitter panicked", "panic", r, "event_type", rec.EventType)
		}
	}()

	line, err := json.Marshal(rec)
	if err != nil {
		logging.Logger.Debug("Failed to marshal record", "error", err, "event_type", rec.EventType)
		return
	}
	line = append(line, '\n')

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.w.Write(line); err != nil {
		logging.Logger.Debug("Failed to write record",
			"error", err,
			"event_type", rec.EventType,
			"channel", e.channel.String())
		return
	}

	logging.Logger.Debug("Record emitted",
		"event_type", rec.EventType,
		"channel", e.channel.String(),
		"bytes", len(line))
}
