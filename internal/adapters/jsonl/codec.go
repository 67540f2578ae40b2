package jsonl

import (
	"io"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/ports"
)

// Codec implements ports.StreamCodec for line-delimited JSON records
type Codec struct{}

// Compile-time interface verification
var _ ports.StreamCodec = Codec{}

// ExtractRecords implements StreamCodec.ExtractRecords
func (Codec) ExtractRecords(line []byte) []domain.Record {
	return ExtractRecords(line)
}

// NewLineReader implements StreamCodec.NewLineReader
func (Codec) NewLineReader(r io.Reader) ports.LineReader {
	return NewLineReader(r)
}
