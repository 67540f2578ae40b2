package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	started := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	session := domain.Session{
		Command:   "claude -p hello",
		ID:        "s-1",
		Provider:  "claude-code",
		StartedAt: started,
		State:     domain.StateRunning,
	}
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "claude -p hello", got.Command)
	assert.Equal(t, domain.StateRunning, got.State)
	assert.True(t, got.StartedAt.Equal(started))
	assert.True(t, got.EndedAt.IsZero())
}

func TestSQLiteRepository_SaveOverwritesSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	session := domain.Session{ID: "s-1", StartedAt: time.Now(), State: domain.StateRunning}
	require.NoError(t, repo.Save(ctx, session))

	session.State = domain.StateTerminated
	session.EventCount = 12
	session.ExitCode = 1
	session.EndedAt = time.Now()
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateTerminated, got.State)
	assert.Equal(t, 12, got.EventCount)
	assert.Equal(t, 1, got.ExitCode)
	assert.False(t, got.EndedAt.IsZero())
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSQLiteRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		repo.SessionChanged(ctx, domain.Session{
			ID:        id,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			State:     domain.StateTerminated,
		})
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLiteRepository_SaveRequiresID(t *testing.T) {
	repo := newTestRepository(t)

	assert.Error(t, repo.Save(context.Background(), domain.Session{}))
}
