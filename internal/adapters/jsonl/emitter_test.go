package jsonl

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/domain"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

type panickingWriter struct{}

func (panickingWriter) Write([]byte) (int, error) { panic("boom") }

func sampleRecord() domain.Record {
	return domain.NewRecord(
		domain.Envelope{Provider: "claude-code", SessionID: "sess-1"},
		domain.ToolExecutionCompleted{ToolName: "Bash", ToolUseID: "t1", Success: true},
	)
}

func TestEmitter_WritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriterEmitter(&buf, domain.ChannelPrimary)

	e.Emit(sampleRecord())

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))

	var decoded domain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, domain.EventToolExecutionCompleted, decoded.EventType)
	assert.Equal(t, "sess-1", decoded.SessionID)
	assert.Equal(t, "Bash", decoded.Context["tool_name"])
}

func TestEmitter_SwallowsWriteErrors(t *testing.T) {
	e := NewWriterEmitter(failingWriter{}, domain.ChannelSecondary)

	assert.NotPanics(t, func() { e.Emit(sampleRecord()) })
}

func TestEmitter_SwallowsWriterPanics(t *testing.T) {
	e := NewWriterEmitter(panickingWriter{}, domain.ChannelSecondary)

	assert.NotPanics(t, func() { e.Emit(sampleRecord()) })
}

func TestEmitter_SwallowsMarshalErrors(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriterEmitter(&buf, domain.ChannelPrimary)
	rec := sampleRecord()
	rec.Metadata = map[string]any{"bad": make(chan int)}

	assert.NotPanics(t, func() { e.Emit(rec) })
	assert.Zero(t, buf.Len())
}

func TestEmitter_ConcurrentEmitsKeepLinesWhole(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriterEmitter(&buf, domain.ChannelPrimary)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Emit(sampleRecord())
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 50)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), line)
	}
}

func TestNewEmitter_ChannelSelection(t *testing.T) {
	assert.Equal(t, domain.ChannelPrimary, NewEmitter(domain.ChannelPrimary).Channel())
	assert.Equal(t, domain.ChannelSecondary, NewEmitter(domain.ChannelSecondary).Channel())
}
