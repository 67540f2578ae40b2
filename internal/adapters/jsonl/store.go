package jsonl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/ports"
)

// RecordingExt is the file extension of recording files
const RecordingExt = ".jsonl"

// FileStore implements ports.RecordingStore on the local filesystem
type FileStore struct{}

// Compile-time interface verification
var _ ports.RecordingStore = (*FileStore)(nil)

// NewFileStore creates a new FileStore
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Create implements RecordingStore.Create
func (s *FileStore) Create(path string) (ports.RecordingSink, error) {
	return CreateRecording(path)
}

// List implements RecordingStore.List. A missing directory holds no recordings.
func (s *FileStore) List(dir string) ([]ports.RecordingFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read recordings directory: %w", err)
	}

	var files []ports.RecordingFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), RecordingExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, ports.RecordingFile{
			Name: strings.TrimSuffix(entry.Name(), RecordingExt),
			Path: filepath.Join(dir, entry.Name()),
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// ReadHeader implements RecordingStore.ReadHeader by decoding the first non-empty line
func (s *FileStore) ReadHeader(path string) (map[string]any, error) {
	f, err := openRecording(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := NewLineReader(f)
	for {
		line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s is empty", domain.ErrInvalidRecording, path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}

		var header map[string]any
		if err := json.Unmarshal(trimmed, &header); err != nil {
			return nil, fmt.Errorf("%w: header of %s: %v", domain.ErrInvalidRecording, path, err)
		}
		return header, nil
	}
}

// ReadObjects implements RecordingStore.ReadObjects
func (s *FileStore) ReadObjects(path string) ([]map[string]any, error) {
	f, err := openRecording(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	objects, err := ReadObjects(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidRecording, path, err)
	}
	return objects, nil
}

func openRecording(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRecordingNotFound, path)
		}
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}
	return f, nil
}
