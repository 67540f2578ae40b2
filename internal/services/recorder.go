package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// errRecorderClosed is returned when observing after Close
var errRecorderClosed = errors.New("recorder is closed")

// Recorder persists observed records with their offset from the recording start.
// It implements ports.Observer so it can sit next to any live consumer.
type Recorder struct {
	closed     bool
	count      int
	lastOffset int64
	meta       RecordingMeta
	mu         sync.Mutex
	now        func() time.Time
	sink       ports.RecordingSink
	start      time.Time
	started    bool
}

// Compile-time interface verification
var _ ports.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder writing to sink
func NewRecorder(sink ports.RecordingSink, meta RecordingMeta) *Recorder {
	return &Recorder{
		meta: meta,
		now:  time.Now,
		sink: sink,
	}
}

// Start writes the metadata header. Offsets are measured from this moment.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.startLocked()
}

func (r *Recorder) startLocked() error {
	if r.closed {
		return errRecorderClosed
	}
	if r.started {
		return nil
	}

	// time.Now carries a monotonic reading, so offsets are immune to wall clock jumps
	r.start = r.now()
	header := domain.RecordingHeader{
		CreatedAt:     r.start.UTC().Format(domain.TimestampFormat),
		Model:         r.meta.Model,
		SchemaVersion: domain.CurrentSchemaVersion,
		Task:          r.meta.Task,
		ToolVersion:   r.meta.ToolVersion,
		Type:          domain.LineTypeMetadata,
	}
	if err := r.sink.WriteLine(header); err != nil {
		return fmt.Errorf("failed to write recording header: %w", err)
	}

	r.started = true
	logging.Logger.Info("Recording started", "path", r.sink.Path())
	return nil
}

// Observe appends one recorded event and flushes it
func (r *Recorder) Observe(ctx context.Context, rec domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.startLocked(); err != nil {
		return err
	}

	offset := r.now().Sub(r.start).Milliseconds()
	if offset < r.lastOffset {
		offset = r.lastOffset
	}

	line := domain.RecordedEvent{
		Event:    rec,
		OffsetMS: offset,
		Type:     domain.LineTypeEvent,
	}
	if err := r.sink.WriteLine(line); err != nil {
		return fmt.Errorf("failed to record %s: %w", rec.EventType, err)
	}

	r.lastOffset = offset
	r.count++
	return nil
}

// Close finalizes the recording. A recording that never saw an event still gets
// its header. Calling Close more than once is safe.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}

	var errs []error
	if !r.started {
		errs = append(errs, r.startLocked())
	}
	r.closed = true
	errs = append(errs, r.sink.Close())

	logging.Logger.Info("Recording closed", "path", r.sink.Path(), "events", r.count)
	return errors.Join(errs...)
}

// Count returns how many events were recorded
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Path returns where the recording is written
func (r *Recorder) Path() string {
	return r.sink.Path()
}
