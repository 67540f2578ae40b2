package ports

import (
	"context"

	"github.com/renato0307/trailhook/internal/domain"
)

// SessionReader reads tracked sessions
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, limit int) ([]domain.Session, error)
}

// SessionWriter stores session snapshots
type SessionWriter interface {
	Save(ctx context.Context, session domain.Session) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
	Close() error
}
