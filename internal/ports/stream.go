package ports

import (
	"io"

	"github.com/renato0307/trailhook/internal/domain"
)

// LineReader yields the raw lines of a byte stream, terminator included
type LineReader interface {
	Next() ([]byte, error)
}

// StreamCodec splits a merged output stream into lines and finds the event records in them
type StreamCodec interface {
	ExtractRecords(line []byte) []domain.Record
	NewLineReader(r io.Reader) LineReader
}
