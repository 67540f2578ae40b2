// Package console renders event records for humans.
package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/ports"
	"github.com/renato0307/trailhook/internal/theme"
)

// maxValueWidth truncates long context values so one event stays on one line
const maxValueWidth = 60

// Printer is an observer that prints one styled line per record.
// Offsets are relative to the first record printed.
type Printer struct {
	first   time.Time
	mu      sync.Mutex
	verbose bool
	w       io.Writer
}

// Compile-time interface verification
var _ ports.Observer = (*Printer)(nil)

// NewPrinter creates a printer. Verbose output includes metadata fields.
func NewPrinter(w io.Writer, verbose bool) *Printer {
	return &Printer{
		verbose: verbose,
		w:       w,
	}
}

// Observe implements Observer
func (p *Printer) Observe(ctx context.Context, rec domain.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	at, err := rec.Time()
	if err != nil {
		at = time.Now()
	}
	if p.first.IsZero() {
		p.first = at
	}

	_, err = fmt.Fprintln(p.w, FormatRecord(rec, at.Sub(p.first), p.verbose))
	return err
}

// FormatRecord renders a record as a single line
func FormatRecord(rec domain.Record, offset time.Duration, verbose bool) string {
	var b strings.Builder

	b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("%+9.3fs", offset.Seconds())))
	b.WriteString("  ")
	b.WriteString(theme.EventTypeStyle(rec.EventType).Render(fmt.Sprintf("%-26s", rec.EventType)))
	b.WriteString(" ")
	b.WriteString(formatFields(rec.Context))

	if verbose && len(rec.Metadata) > 0 {
		b.WriteString(" ")
		b.WriteString(theme.MutedStyle.Render(formatFields(rec.Metadata)))
	}

	return strings.TrimRight(b.String(), " ")
}

// formatFields renders key=value pairs in key order
func formatFields(fields map[string]any) string {
	keys := slices.Sorted(maps.Keys(fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		value := fmt.Sprint(fields[k])
		if len(value) > maxValueWidth {
			value = value[:maxValueWidth-3] + "..."
		}
		parts = append(parts, theme.LabelStyle.Render(k+"=")+value)
	}
	return strings.Join(parts, " ")
}
