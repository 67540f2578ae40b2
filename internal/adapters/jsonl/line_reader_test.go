package jsonl

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/domain"
)

func readAll(t *testing.T, r *LineReader) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.Next()
		if errors.Is(err, io.EOF) {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, string(line))
	}
}

func TestLineReader_ReassemblesPartialWrites(t *testing.T) {
	input := "total 24\n{\"event_type\":\"agent_stopped\"}\nlast"
	r := NewLineReader(iotest.OneByteReader(strings.NewReader(input)))

	lines := readAll(t, r)

	assert.Equal(t, []string{"total 24\n", "{\"event_type\":\"agent_stopped\"}\n", "last"}, lines)
}

func TestLineReader_KeepsCarriageReturns(t *testing.T) {
	r := NewLineReader(strings.NewReader("a\r\nb\r\n"))

	assert.Equal(t, []string{"a\r\n", "b\r\n"}, readAll(t, r))
}

func TestLineReader_SplitsOversizedLines(t *testing.T) {
	r := &LineReader{
		maxLine: 10,
		r:       bufio.NewReaderSize(strings.NewReader(strings.Repeat("x", 100)+"\n"), 16),
	}

	lines := readAll(t, r)

	require.Greater(t, len(lines), 1)
	assert.LessOrEqual(t, len(lines[0]), 16)
	assert.Equal(t, strings.Repeat("x", 100)+"\n", strings.Join(lines, ""))
}

func TestLineReader_PropagatesReadErrors(t *testing.T) {
	r := NewLineReader(iotest.ErrReader(errors.New("read failed")))

	_, err := r.Next()

	assert.EqualError(t, err, "read failed")
}

func TestExtractRecords(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		types []domain.EventType
	}{
		{"plain output", "total 24", nil},
		{"empty", "   ", nil},
		{"event line", `{"event_type":"tool_execution_completed","session_id":"s"}`, []domain.EventType{"tool_execution_completed"}},
		{"event line with crlf", "{\"event_type\":\"agent_stopped\"}\r\n", []domain.EventType{"agent_stopped"}},
		{"json without event type", `{"level":"info","msg":"hello"}`, nil},
		{"empty event type", `{"event_type":""}`, nil},
		{"json array", `[{"event_type":"agent_stopped"}]`, nil},
		{"nested event in valid json", `{"log":{"event_type":"agent_stopped"}}`, nil},
		{"event glued after text", `tot{"event_type":"git_commit"}al 24`, []domain.EventType{"git_commit"}},
		{"two events glued", `{"event_type":"git_commit"}{"event_type":"agent_stopped"}`, []domain.EventType{"git_commit", "agent_stopped"}},
		{"truncated event", `{"event_type":"git_commit"`, nil},
		{"event inside truncated event", `{"event_type":"git_push","ctx":{"event_type":"git_commit"}`, []domain.EventType{"git_commit"}},
		{"object without event type is skipped whole", `x{"session_id":"a","metadata":{"event_type":"git_commit"}}`, nil},
		{"event inside object with other keys", `x{"a":{"event_type":"git_commit"}`, []domain.EventType{"git_commit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := ExtractRecords([]byte(tt.line))
			var got []domain.EventType
			for _, r := range records {
				got = append(got, r.EventType)
			}
			assert.Equal(t, tt.types, got)
		})
	}
}

func TestExtractRecords_DeeplyNestedLineIsBounded(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unrelated keys", "x" + strings.Repeat(`{"a":`, 40000)},
		{"record keys", "x" + strings.Repeat(`{"event_type":`, 40000)},
		{"record keys with trailing event", "x" + strings.Repeat(`{"context":`, 40000) + `{"event_type":"git_commit"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			ExtractRecords([]byte(tt.line + "\n"))
			assert.Less(t, time.Since(start), 2*time.Second)
		})
	}
}
