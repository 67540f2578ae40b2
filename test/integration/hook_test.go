package integration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/trailhook/test/integration/harness"
)

func TestHook(t *testing.T) {
	tests := []struct {
		name      string
		hook      string
		input     string
		sessionID string
		validate  func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:      "pre tool use emits tool_execution_started on stdout",
			hook:      "PreToolUse",
			input:     `{"session_id":"payload-session","tool_name":"Bash","tool_use_id":"toolu_01","tool_input":{"command":"ls -la"}}`,
			sessionID: "env-session",
			validate: func(t *testing.T, result harness.CommandResult) {
				rec := harness.RequireSingleRecord(t, result.Stdout, "tool_execution_started")
				assert.Equal(t, "env-session", rec["session_id"])
				assert.Equal(t, "claude-code", rec["provider"])
				assert.Equal(t, map[string]any{"tool_name": "Bash", "tool_use_id": "toolu_01"}, rec["context"])
			},
		},
		{
			name:  "payload session id is used without the environment",
			hook:  "Stop",
			input: `{"session_id":"payload-session"}`,
			validate: func(t *testing.T, result harness.CommandResult) {
				rec := harness.RequireSingleRecord(t, result.Stdout, "agent_stopped")
				assert.Equal(t, "payload-session", rec["session_id"])
			},
		},
		{
			name:  "missing session id falls back to unknown",
			hook:  "SessionStart",
			input: `{}`,
			validate: func(t *testing.T, result harness.CommandResult) {
				rec := harness.RequireSingleRecord(t, result.Stdout, "session_started")
				assert.Equal(t, "unknown", rec["session_id"])
			},
		},
		{
			name:  "unknown hook emits nothing",
			hook:  "NoSuchHook",
			input: `{"session_id":"s"}`,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutEmpty(t, result)
			},
		},
		{
			name:  "malformed input still exits 0",
			hook:  "Notification",
			input: `{not json`,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.RequireSingleRecord(t, result.Stdout, "notification_received")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.sessionID != "" {
				env.SetEnv("TRAILHOOK_SESSION_ID", tt.sessionID)
			}

			result := harness.RunCommandWithInput(t, env, strings.NewReader(tt.input), "hook", tt.hook)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestHooksClaudeSettings(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "hooks", "claude-settings", "--binary", "/usr/local/bin/trailhook")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, `"PreToolUse"`)
	harness.AssertStdoutContains(t, result, `"TaskCompleted"`)
	harness.AssertStdoutContains(t, result, `/usr/local/bin/trailhook hook SessionStart`)
}

func TestValidate(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "validate")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "OK: 19 event types")
}
