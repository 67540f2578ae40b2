package claude

import (
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHookInput(t *testing.T) {
	input := `{"session_id":"abc","hook_event_name":"PostToolUse","tool_name":"Bash","tool_use_id":"t1","tool_response":{"stdout":"ok"},"extra":1}`

	got, err := ReadHookInput(strings.NewReader(input), DefaultMaxInputBytes, time.Second)

	require.NoError(t, err)
	assert.Equal(t, "abc", got.SessionID)
	assert.Equal(t, "Bash", got.ToolName)
	assert.JSONEq(t, `{"stdout":"ok"}`, string(got.ToolResponse))
}

func TestReadHookInput_Empty(t *testing.T) {
	got, err := ReadHookInput(strings.NewReader("  \n"), DefaultMaxInputBytes, time.Second)

	require.NoError(t, err)
	assert.Empty(t, got.SessionID)
}

func TestReadHookInput_Errors(t *testing.T) {
	blocked, _ := io.Pipe()

	tests := []struct {
		name string
		r    io.Reader
		max  int64
	}{
		{"malformed json", strings.NewReader("{not json"), DefaultMaxInputBytes},
		{"too large", strings.NewReader(`{"prompt":"` + strings.Repeat("x", 100) + `"}`), 10},
		{"never closed", blocked, DefaultMaxInputBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadHookInput(tt.r, tt.max, 50*time.Millisecond)
			assert.Error(t, err)
		})
	}
}

func TestBuildSettings(t *testing.T) {
	settings := BuildSettings("/usr/local/bin/trailhook", []string{"PostToolUse", "Stop"})

	data, err := settings.JSON()
	require.NoError(t, err)

	var decoded map[string]map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded["hooks"], 2)

	hooks := decoded["hooks"]["Stop"][0]["hooks"].([]any)
	command := hooks[0].(map[string]any)
	assert.Equal(t, "/usr/local/bin/trailhook hook Stop", command["command"])
	assert.Equal(t, "command", command["type"])
}
