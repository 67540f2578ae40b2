package follow

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/domain"
)

func TestFollower_OpenWithoutFollowReadsToEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.log")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	r, err := NewFollower().Open(context.Background(), path, false)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestFollower_MissingFile(t *testing.T) {
	_, err := NewFollower().Open(context.Background(), filepath.Join(t.TempDir(), "nope"), true)

	assert.ErrorIs(t, err, domain.ErrRecordingNotFound)
}

func TestFollower_FollowSeesAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.log")
	require.NoError(t, os.WriteFile(path, []byte("first\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, err := NewFollowerWithPoll(50*time.Millisecond).Open(ctx, path, true)
	require.NoError(t, err)
	defer r.Close()

	lines := make(chan string, 4)
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	assert.Equal(t, "first", receive(t, lines))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("second\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Equal(t, "second", receive(t, lines))

	cancel()
	select {
	case _, ok := <-lines:
		assert.False(t, ok, "reader should end after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not stop after cancel")
	}
}

func TestFollower_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.log")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	r, err := NewFollower().Open(context.Background(), path, true)
	require.NoError(t, err)

	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}

func receive(t *testing.T, lines <-chan string) string {
	t.Helper()
	select {
	case line := <-lines:
		return line
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for line")
		return ""
	}
}
