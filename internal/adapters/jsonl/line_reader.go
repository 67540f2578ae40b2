package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/renato0307/trailhook/internal/domain"
)

// MaxLineBytes caps a single line; longer lines are returned in chunks of this size
const MaxLineBytes = 10 * 1024 * 1024

// LineReader splits a byte stream into lines. Partial writes are buffered
// until their newline arrives, so a line is never split across two reads.
type LineReader struct {
	maxLine int
	r       *bufio.Reader
}

// NewLineReader creates a LineReader over r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		maxLine: MaxLineBytes,
		r:       bufio.NewReaderSize(r, 64*1024),
	}
}

// Next returns the next raw line including its terminator, if any.
// A final line without a newline is returned as is; io.EOF is only returned
// once no bytes remain.
func (l *LineReader) Next() ([]byte, error) {
	var line []byte
	for {
		chunk, err := l.r.ReadSlice('\n')
		line = append(line, chunk...)

		switch {
		case err == nil:
			return line, nil
		case errors.Is(err, bufio.ErrBufferFull):
			if len(line) >= l.maxLine {
				return line, nil
			}
			continue
		case errors.Is(err, io.EOF):
			if len(line) > 0 {
				return line, nil
			}
			return nil, io.EOF
		default:
			if len(line) > 0 {
				return line, nil
			}
			return nil, err
		}
	}
}

// maxEmbeddedRecord caps how far one embedded-object attempt may read
const maxEmbeddedRecord = 64 * 1024

// recordKeys are the keys an event record may open with
var recordKeys = [][]byte{
	[]byte(`{"context"`),
	[]byte(`{"event_type"`),
	[]byte(`{"metadata"`),
	[]byte(`{"provider"`),
	[]byte(`{"session_id"`),
	[]byte(`{"timestamp"`),
}

// ExtractRecords returns every event-shaped record found in a line.
// A line that is one JSON object yields at most that object. A line that is not
// valid JSON is scanned for embedded objects, which recovers records glued to
// other output by non-atomic concurrent writes. The scan reads at most a few
// times the line length in total, however the line is nested or truncated.
func ExtractRecords(line []byte) []domain.Record {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return nil
	}

	if json.Valid(trimmed) {
		if trimmed[0] != '{' {
			return nil
		}
		var rec domain.Record
		if err := json.Unmarshal(trimmed, &rec); err != nil || rec.EventType == "" {
			return nil
		}
		return []domain.Record{rec}
	}

	var (
		records []domain.Record
		scanned int
	)
	budget := 4*len(trimmed) + maxEmbeddedRecord
	for i := 0; i < len(trimmed) && scanned < budget; {
		start := nextRecordStart(trimmed, i)
		if start < 0 {
			break
		}

		counter := &countingReader{r: io.LimitReader(bytes.NewReader(trimmed[start:]), maxEmbeddedRecord)}
		dec := json.NewDecoder(counter)
		var rec domain.Record
		err := dec.Decode(&rec)
		scanned += counter.n
		if err != nil {
			i = start + 1
			continue
		}

		if rec.EventType != "" {
			records = append(records, rec)
		}
		i = start + int(dec.InputOffset())
	}

	return records
}

// nextRecordStart returns the index of the next object opening with a record key, or -1
func nextRecordStart(b []byte, from int) int {
	for i := from; i < len(b); {
		idx := bytes.Index(b[i:], []byte(`{"`))
		if idx < 0 {
			return -1
		}
		start := i + idx
		for _, key := range recordKeys {
			if bytes.HasPrefix(b[start:], key) {
				return start
			}
		}
		i = start + 1
	}
	return -1
}

// countingReader counts the bytes a decoder pulls, read-ahead included
type countingReader struct {
	n int
	r io.Reader
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}
