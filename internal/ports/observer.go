package ports

import (
	"context"

	"github.com/renato0307/trailhook/internal/domain"
)

// Observer consumes event records. The live stream merger and the
// recording player both deliver records through this interface.
type Observer interface {
	Observe(ctx context.Context, rec domain.Record) error
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(ctx context.Context, rec domain.Record) error

// Observe implements Observer
func (f ObserverFunc) Observe(ctx context.Context, rec domain.Record) error {
	return f(ctx, rec)
}

// SessionListener is notified of every session state transition with a snapshot
type SessionListener interface {
	SessionChanged(ctx context.Context, session domain.Session)
}
