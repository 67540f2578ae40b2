package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// Player replays a loaded recording. It never modifies the file it came from.
type Player struct {
	events []domain.RecordedEvent
	header domain.RecordingHeader
	path   string
}

// LoadRecording reads a recording, migrating older schema versions to the current one.
// A missing file fails with domain.ErrRecordingNotFound and a newer schema with
// domain.ErrUnsupportedSchema.
func LoadRecording(store ports.RecordingStore, path string) (*Player, error) {
	lines, err := store.ReadObjects(path)
	if err != nil {
		return nil, err
	}

	from, err := migrateRecording(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if from != domain.CurrentSchemaVersion {
		logging.Logger.Info("Recording migrated", "path", path, "from", from, "to", domain.CurrentSchemaVersion)
	}

	p := &Player{path: path}
	if err := remarshal(lines[0], &p.header); err != nil {
		return nil, fmt.Errorf("%w: header of %s: %v", domain.ErrInvalidRecording, path, err)
	}

	for i, line := range lines[1:] {
		if line["type"] != domain.LineTypeEvent {
			logging.Logger.Debug("Skipping non-event recording line", "path", path, "line", i+2)
			continue
		}

		var ev domain.RecordedEvent
		if err := remarshal(line, &ev); err != nil {
			return nil, fmt.Errorf("%w: line %d of %s: %v", domain.ErrInvalidRecording, i+2, path, err)
		}
		p.events = append(p.events, ev)
	}

	return p, nil
}

// Metadata returns the migrated recording header
func (p *Player) Metadata() domain.RecordingHeader {
	return p.header
}

// Events returns the recorded event records in order, without timing
func (p *Player) Events() []domain.Record {
	records := make([]domain.Record, len(p.events))
	for i, ev := range p.events {
		records[i] = ev.Event
	}
	return records
}

// RecordedEvents returns the recorded events with their offsets
func (p *Player) RecordedEvents() []domain.RecordedEvent {
	return slices.Clone(p.events)
}

// Duration returns the offset of the last event
func (p *Player) Duration() time.Duration {
	if len(p.events) == 0 {
		return 0
	}
	return time.Duration(p.events[len(p.events)-1].OffsetMS) * time.Millisecond
}

// Play re-emits every event to obs, keeping the recorded spacing divided by speed.
// Delays are scheduled from the replay start, so slow observers do not accumulate drift.
// Cancelling ctx aborts the pending sleep and returns ctx.Err().
func (p *Player) Play(ctx context.Context, obs ports.Observer, speed float64) error {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSpeed, speed)
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	start := time.Now()
	var lastOffset int64
	for _, ev := range p.events {
		offset := max(ev.OffsetMS, lastOffset)
		lastOffset = offset

		due := start.Add(time.Duration(float64(offset) * float64(time.Millisecond) / speed))
		if wait := time.Until(due); wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := obs.Observe(ctx, ev.Event); err != nil {
			logging.Logger.Warn("Observer failed during playback", "event_type", ev.Event.EventType, "error", err)
		}
	}
	return nil
}

// remarshal converts a decoded JSON object into a typed value
func remarshal(from map[string]any, to any) error {
	data, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, to)
}
