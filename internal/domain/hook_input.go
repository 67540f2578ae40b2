package domain

import "encoding/json"

// HookInput is the JSON document an agent runtime writes to a hook's stdin.
// Only the fields some event type uses are decoded; unknown fields are ignored.
type HookInput struct {
	AgentID             string          `json:"agent_id"`
	AgentTranscriptPath string          `json:"agent_transcript_path"`
	AgentType           string          `json:"agent_type"`
	CustomInstructions  string          `json:"custom_instructions"`
	Cwd                 string          `json:"cwd"`
	Decision            string          `json:"decision"`
	DecisionReason      string          `json:"decision_reason"`
	Error               string          `json:"error"`
	HookEventName       string          `json:"hook_event_name"`
	IsInterrupt         bool            `json:"is_interrupt"`
	Message             string          `json:"message"`
	Model               string          `json:"model"`
	NotificationType    string          `json:"notification_type"`
	Prompt              string          `json:"prompt"`
	Reason              string          `json:"reason"`
	SessionID           string          `json:"session_id"`
	Source              string          `json:"source"`
	StopHookActive      bool            `json:"stop_hook_active"`
	TaskID              string          `json:"task_id"`
	TaskSubject         string          `json:"task_subject"`
	TeamName            string          `json:"team_name"`
	TeammateName        string          `json:"teammate_name"`
	ToolInput           json.RawMessage `json:"tool_input"`
	ToolName            string          `json:"tool_name"`
	ToolResponse        json.RawMessage `json:"tool_response"`
	ToolUseID           string          `json:"tool_use_id"`
	TranscriptPath      string          `json:"transcript_path"`
	Trigger             string          `json:"trigger"`
}
