package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/adapters/follow"
	"github.com/renato0307/trailhook/internal/adapters/jsonl"
	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/ports"
)

// stubSessions is a SessionReader over a fixed list
type stubSessions []domain.Session

func (s stubSessions) Get(ctx context.Context, id string) (*domain.Session, error) {
	for _, session := range s {
		if session.ID == id {
			return &session, nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

func (s stubSessions) List(ctx context.Context, limit int) ([]domain.Session, error) {
	if limit > 0 && limit < len(s) {
		return s[:limit], nil
	}
	return s, nil
}

func newTestSessionService(t *testing.T, launcher ports.ProcessLauncher) (*SessionService, *Catalog) {
	t.Helper()
	store := jsonl.NewFileStore()
	catalog := NewCatalog(store, t.TempDir())
	service := NewSessionService(store, catalog, jsonl.Codec{}, launcher, follow.NewFollowerWithPoll(20*time.Millisecond),
		stubSessions{{ID: "a"}, {ID: "b"}}, MergerOptions{Provider: "claude-code"})
	return service, catalog
}

func TestSessionService_CaptureStdin(t *testing.T) {
	service, catalog := newTestSessionService(t, nil)
	echo := &collector{}
	meta := RecordingMeta{Model: "sonnet", Task: "fix login", ToolVersion: "1.4.0"}

	result, err := service.Capture(context.Background(), CaptureParams{
		Echo:  echo,
		Meta:  meta,
		Stdin: strings.NewReader("total 24\n" + completedLine + "\n" + completedLine + "\n"),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.EventCount)
	assert.Equal(t, catalog.PathFor(meta), result.RecordingPath)
	assert.Equal(t, result.RecordingPath, result.Session.RecordingPath)
	assert.Len(t, echo.Records(), 2)

	player, err := LoadRecording(jsonl.NewFileStore(), result.RecordingPath)
	require.NoError(t, err)
	assert.Equal(t, "fix login", player.Metadata().Task)
	assert.Equal(t, normalizeRecords(t, echo.Records()), player.Events())
}

func TestSessionService_CaptureFileWithoutFollow(t *testing.T) {
	service, _ := newTestSessionService(t, nil)
	input := filepath.Join(t.TempDir(), "agent.log")
	require.NoError(t, os.WriteFile(input, []byte(completedLine+"\n"), 0644))
	output := filepath.Join(t.TempDir(), "out.jsonl")

	result, err := service.Capture(context.Background(), CaptureParams{InputPath: input, OutputPath: output})

	require.NoError(t, err)
	assert.Equal(t, 1, result.EventCount)
	assert.Equal(t, output, result.RecordingPath)
	assert.Equal(t, input, result.Session.Command)
}

func TestSessionService_CaptureFollowEndsOnCancel(t *testing.T) {
	service, _ := newTestSessionService(t, nil)
	input := filepath.Join(t.TempDir(), "agent.log")
	require.NoError(t, os.WriteFile(input, []byte(completedLine+"\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	echo := &collector{}
	go func() {
		assert.Eventually(t, func() bool { return len(echo.Records()) == 1 }, 2*time.Second, 10*time.Millisecond)
		f, err := os.OpenFile(input, os.O_APPEND|os.O_WRONLY, 0644)
		if assert.NoError(t, err) {
			_, _ = io.WriteString(f, completedLine+"\n")
			_ = f.Close()
		}
		assert.Eventually(t, func() bool { return len(echo.Records()) == 2 }, 2*time.Second, 10*time.Millisecond)
		cancel()
	}()

	result, err := service.Capture(ctx, CaptureParams{
		Echo:       echo,
		Follow:     true,
		InputPath:  input,
		OutputPath: filepath.Join(t.TempDir(), "followed.jsonl"),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.EventCount)
}

func TestSessionService_CaptureMissingInputKeepsEmptyRecording(t *testing.T) {
	service, _ := newTestSessionService(t, nil)
	output := filepath.Join(t.TempDir(), "empty.jsonl")

	result, err := service.Capture(context.Background(), CaptureParams{
		InputPath:  filepath.Join(t.TempDir(), "missing.log"),
		OutputPath: output,
	})

	assert.ErrorIs(t, err, domain.ErrRecordingNotFound)
	assert.Equal(t, 0, result.EventCount)
	player, err := LoadRecording(jsonl.NewFileStore(), output)
	require.NoError(t, err)
	assert.Empty(t, player.Events())
}

func TestSessionService_RunWithoutCommand(t *testing.T) {
	service, _ := newTestSessionService(t, nil)

	_, err := service.Run(context.Background(), RunParams{})

	assert.Error(t, err)
}

func TestSessionService_List(t *testing.T) {
	service, _ := newTestSessionService(t, nil)

	sessions, err := service.List(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "a", sessions[0].ID)
}
