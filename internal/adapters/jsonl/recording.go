package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// RecordingWriter appends JSON lines to a recording file it owns exclusively.
// Every line is flushed immediately so a crash leaves a readable prefix.
type RecordingWriter struct {
	bw     *bufio.Writer
	closed bool
	f      *os.File
	mu     sync.Mutex
	path   string
}

// CreateRecording creates (or truncates) the recording file at path
func CreateRecording(path string) (*RecordingWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create recordings directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording file: %w", err)
	}

	return &RecordingWriter{
		bw:   bufio.NewWriter(f),
		f:    f,
		path: path,
	}, nil
}

// Path returns the file path being written
func (w *RecordingWriter) Path() string {
	return w.path
}

// WriteLine marshals v as one line and flushes it to disk
func (w *RecordingWriter) WriteLine(v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal recording line: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return os.ErrClosed
	}
	if _, err := w.bw.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write recording line: %w", err)
	}
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush recording: %w", err)
	}
	return nil
}

// Close flushes, syncs and closes the file. Calling Close twice is a no-op.
func (w *RecordingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	flushErr := w.bw.Flush()
	syncErr := w.f.Sync()
	closeErr := w.f.Close()
	return errors.Join(flushErr, syncErr, closeErr)
}

// ReadObjects decodes every non-empty line of r into a generic JSON object.
// Line numbers in errors are 1-based.
func ReadObjects(r io.Reader) ([]map[string]any, error) {
	reader := NewLineReader(r)
	var objects []map[string]any

	for lineNo := 1; ; lineNo++ {
		line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", lineNo, err)
		}

		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, fmt.Errorf("line %d is not a JSON object: %w", lineNo, err)
		}
		objects = append(objects, obj)
	}

	return objects, nil
}
