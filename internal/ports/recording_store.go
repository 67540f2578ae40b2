package ports

import (
	"context"
	"io"
)

// RecordingSink receives the lines of one recording being written
type RecordingSink interface {
	Close() error
	Path() string
	WriteLine(v any) error
}

// RecordingFile is a recording found on disk
type RecordingFile struct {
	Name string
	Path string
	Size int64
}

// RecordingStore creates and reads recording files.
// Readers return domain.ErrRecordingNotFound for missing files.
type RecordingStore interface {
	Create(path string) (RecordingSink, error)
	List(dir string) ([]RecordingFile, error)
	ReadHeader(path string) (map[string]any, error)
	ReadObjects(path string) ([]map[string]any, error)
}

// FileFollower opens a file for streaming. With follow set, reads block at
// the end of the file until more data is appended or ctx is done.
type FileFollower interface {
	Open(ctx context.Context, path string, follow bool) (io.ReadCloser, error)
}
