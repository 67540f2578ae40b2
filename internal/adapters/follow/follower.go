// Package follow opens capture sources, optionally tailing a file as it grows.
package follow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// DefaultPollInterval rechecks the file when no write notification arrives,
// for filesystems where fsnotify events are unreliable
const DefaultPollInterval = time.Second

// Follower implements ports.FileFollower with fsnotify
type Follower struct {
	poll time.Duration
}

// Compile-time interface verification
var _ ports.FileFollower = (*Follower)(nil)

// NewFollower creates a Follower with the default poll interval
func NewFollower() *Follower {
	return &Follower{poll: DefaultPollInterval}
}

// NewFollowerWithPoll creates a Follower with a custom poll interval
func NewFollowerWithPoll(poll time.Duration) *Follower {
	return &Follower{poll: poll}
}

// Open opens path for reading. With follow set, reads block at end of file
// until more data is written, the file is removed, or ctx is cancelled.
func (f *Follower) Open(ctx context.Context, path string, follow bool) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRecordingNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if !follow {
		return file, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		_ = file.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	logging.Logger.Debug("Following file", "path", path)
	return &followReader{
		cancel:  cancel,
		ctx:     ctx,
		file:    file,
		poll:    f.poll,
		watcher: watcher,
	}, nil
}

// followReader reads a file and waits for writes at end of file
type followReader struct {
	cancel    context.CancelFunc
	closeOnce sync.Once
	ctx       context.Context
	file      *os.File
	poll      time.Duration
	watcher   *fsnotify.Watcher
}

func (r *followReader) Read(p []byte) (int, error) {
	for {
		n, err := r.file.Read(p)
		if n > 0 {
			return n, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}

		if done := r.wait(); done {
			return 0, io.EOF
		}
	}
}

// wait blocks until the file may have grown. It reports true when following should end.
func (r *followReader) wait() bool {
	timer := time.NewTimer(r.poll)
	defer timer.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return true
		case <-timer.C:
			return false
		case event, ok := <-r.watcher.Events:
			if !ok {
				return true
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				logging.Logger.Debug("Followed file went away", "path", event.Name)
				return true
			}
			if event.Has(fsnotify.Write) {
				return false
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return true
			}
			logging.Logger.Warn("File watcher error", "error", err)
		}
	}
}

// Close stops following and releases the file
func (r *followReader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		r.cancel()
		err = errors.Join(r.watcher.Close(), r.file.Close())
	})
	return err
}
