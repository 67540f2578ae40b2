package domain

import (
	"encoding/json"
	"fmt"
)

// Payload is the per-type body of a record. The envelope fields stay outside of it.
type Payload interface {
	EventType() EventType
}

// SessionStarted is emitted when the agent session initializes
type SessionStarted struct {
	Cwd            string `json:"cwd,omitempty"`
	Model          string `json:"model,omitempty"`
	Source         string `json:"source" record:"context"` // startup, resume, clear, compact
	TranscriptPath string `json:"transcript_path,omitempty"`
}

// SessionEnded is emitted when the agent session ends
type SessionEnded struct {
	Reason         string `json:"reason" record:"context"`
	TranscriptPath string `json:"transcript_path,omitempty"`
}

// UserPromptSubmitted is emitted when the user submits a prompt
type UserPromptSubmitted struct {
	PromptLength  int    `json:"prompt_length" record:"context"`
	PromptPreview string `json:"prompt_preview,omitempty"`
	PromptTokens  int    `json:"prompt_tokens"`
}

// ToolExecutionStarted is emitted before a tool runs.
// Decision carries the external policy verdict when one was supplied.
type ToolExecutionStarted struct {
	Decision       string `json:"decision,omitempty"`
	DecisionReason string `json:"decision_reason,omitempty"`
	InputSummary   string `json:"input_summary,omitempty"`
	ToolName       string `json:"tool_name" record:"context"`
	ToolUseID      string `json:"tool_use_id" record:"context"`
}

// ToolExecutionCompleted is emitted after a tool finished
type ToolExecutionCompleted struct {
	OutputBytes int    `json:"output_bytes"`
	Success     bool   `json:"success"`
	ToolName    string `json:"tool_name" record:"context"`
	ToolUseID   string `json:"tool_use_id" record:"context"`
}

// ToolExecutionFailed is emitted when a tool failed and the agent continues
type ToolExecutionFailed struct {
	Error       string `json:"error,omitempty"`
	IsInterrupt bool   `json:"is_interrupt"`
	ToolName    string `json:"tool_name" record:"context"`
	ToolUseID   string `json:"tool_use_id" record:"context"`
}

// PermissionRequested is emitted when the agent asks for permission to use a tool
type PermissionRequested struct {
	InputSummary string `json:"input_summary,omitempty"`
	ToolName     string `json:"tool_name" record:"context"`
}

// NotificationReceived is emitted for system notifications
type NotificationReceived struct {
	Message          string `json:"message,omitempty"`
	NotificationType string `json:"notification_type" record:"context"`
}

// SubagentStarted is emitted when a subagent is spawned
type SubagentStarted struct {
	AgentID   string `json:"agent_id" record:"context"`
	AgentType string `json:"agent_type,omitempty"`
}

// SubagentStopped is emitted when a subagent finishes
type SubagentStopped struct {
	AgentID        string `json:"agent_id" record:"context"`
	AgentType      string `json:"agent_type,omitempty"`
	TranscriptPath string `json:"transcript_path,omitempty"`
}

// AgentStopped is emitted when the agent finished responding
type AgentStopped struct {
	StopHookActive bool `json:"stop_hook_active" record:"context"`
}

// ContextCompacted is emitted before the agent compacts its context
type ContextCompacted struct {
	CustomInstructionsLength int    `json:"custom_instructions_length"`
	Trigger                  string `json:"trigger" record:"context"` // manual or auto
}

// AgentIdle is emitted when an agent goes idle waiting for work
type AgentIdle struct {
	TeamName     string `json:"team_name,omitempty"`
	TeammateName string `json:"teammate_name" record:"context"`
}

// TaskCompleted is emitted when the agent marks a task as completed
type TaskCompleted struct {
	TaskID      string `json:"task_id" record:"context"`
	TaskSubject string `json:"task_subject,omitempty"`
}

// GitCommit is emitted after a commit was created
type GitCommit struct {
	Branch             string `json:"branch" record:"context"`
	DiffTokensEstimate int    `json:"diff_tokens_estimate"`
	Deletions          int    `json:"deletions"`
	FilesChanged       int    `json:"files_changed"`
	Insertions         int    `json:"insertions"`
	IsMergeCommit      bool   `json:"is_merge_commit"`
	SHA                string `json:"sha" record:"context"`
	Subject            string `json:"subject,omitempty"`
}

// PushRef is one ref update announced to a pre-push hook
type PushRef struct {
	LocalRef  string `json:"local_ref"`
	LocalSHA  string `json:"local_sha"`
	RemoteRef string `json:"remote_ref"`
	RemoteSHA string `json:"remote_sha"`
}

// GitPush is emitted before refs are pushed to a remote
type GitPush struct {
	CommitCount int       `json:"commit_count"`
	Delete      bool      `json:"delete"`
	NewBranch   bool      `json:"new_branch"`
	Refs        []PushRef `json:"refs"`
	Remote      string    `json:"remote" record:"context"`
	RemoteURL   string    `json:"remote_url,omitempty"`
}

// GitMerge is emitted after a merge completed (including merge-strategy pulls)
type GitMerge struct {
	Branch       string `json:"branch" record:"context"`
	Deletions    int    `json:"deletions"`
	FilesChanged int    `json:"files_changed"`
	Insertions   int    `json:"insertions"`
	SHA          string `json:"sha" record:"context"`
	Squash       bool   `json:"squash"`
	Trigger      string `json:"trigger,omitempty"`
}

// GitRewrite is emitted after commits were rewritten by amend or rebase
type GitRewrite struct {
	Branch         string `json:"branch,omitempty"`
	RewriteType    string `json:"rewrite_type" record:"context"` // amend or rebase
	RewrittenCount int    `json:"rewritten_count"`
	SHA            string `json:"sha" record:"context"`
	Trigger        string `json:"trigger,omitempty"`
}

// GitCheckout is emitted after a checkout or clone
type GitCheckout struct {
	Branch       string `json:"branch" record:"context"`
	CheckoutType string `json:"checkout_type"` // branch or file
	IsClone      bool   `json:"is_clone"`
	NewSHA       string `json:"new_sha" record:"context"`
	PreviousSHA  string `json:"previous_sha"`
}

func (AgentIdle) EventType() EventType              { return EventAgentIdle }
func (AgentStopped) EventType() EventType           { return EventAgentStopped }
func (ContextCompacted) EventType() EventType       { return EventContextCompacted }
func (NotificationReceived) EventType() EventType   { return EventNotificationReceived }
func (PermissionRequested) EventType() EventType    { return EventPermissionRequested }
func (SessionEnded) EventType() EventType           { return EventSessionEnded }
func (SessionStarted) EventType() EventType         { return EventSessionStarted }
func (SubagentStarted) EventType() EventType        { return EventSubagentStarted }
func (SubagentStopped) EventType() EventType        { return EventSubagentStopped }
func (TaskCompleted) EventType() EventType          { return EventTaskCompleted }
func (ToolExecutionCompleted) EventType() EventType { return EventToolExecutionCompleted }
func (ToolExecutionFailed) EventType() EventType    { return EventToolExecutionFailed }
func (ToolExecutionStarted) EventType() EventType   { return EventToolExecutionStarted }
func (UserPromptSubmitted) EventType() EventType    { return EventUserPromptSubmitted }
func (GitCheckout) EventType() EventType            { return EventGitCheckout }
func (GitCommit) EventType() EventType              { return EventGitCommit }
func (GitMerge) EventType() EventType               { return EventGitMerge }
func (GitPush) EventType() EventType                { return EventGitPush }
func (GitRewrite) EventType() EventType             { return EventGitRewrite }

// payloadFactories maps each known event type to a constructor for its payload
var payloadFactories = map[EventType]func() Payload{
	EventAgentIdle:              func() Payload { return &AgentIdle{} },
	EventAgentStopped:           func() Payload { return &AgentStopped{} },
	EventContextCompacted:       func() Payload { return &ContextCompacted{} },
	EventGitCheckout:            func() Payload { return &GitCheckout{} },
	EventGitCommit:              func() Payload { return &GitCommit{} },
	EventGitMerge:               func() Payload { return &GitMerge{} },
	EventGitPush:                func() Payload { return &GitPush{} },
	EventGitRewrite:             func() Payload { return &GitRewrite{} },
	EventNotificationReceived:   func() Payload { return &NotificationReceived{} },
	EventPermissionRequested:    func() Payload { return &PermissionRequested{} },
	EventSessionEnded:           func() Payload { return &SessionEnded{} },
	EventSessionStarted:         func() Payload { return &SessionStarted{} },
	EventSubagentStarted:        func() Payload { return &SubagentStarted{} },
	EventSubagentStopped:        func() Payload { return &SubagentStopped{} },
	EventTaskCompleted:          func() Payload { return &TaskCompleted{} },
	EventToolExecutionCompleted: func() Payload { return &ToolExecutionCompleted{} },
	EventToolExecutionFailed:    func() Payload { return &ToolExecutionFailed{} },
	EventToolExecutionStarted:   func() Payload { return &ToolExecutionStarted{} },
	EventUserPromptSubmitted:    func() Payload { return &UserPromptSubmitted{} },
}

// KnownEventTypes returns every event type with a payload schema
func KnownEventTypes() []EventType {
	types := make([]EventType, 0, len(payloadFactories))
	for t := range payloadFactories {
		types = append(types, t)
	}
	return types
}

// DecodePayload decodes the flattened view of a record into its typed payload.
// The returned value is a pointer to the payload struct.
func DecodePayload(r Record) (Payload, error) {
	factory, ok := payloadFactories[r.EventType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, r.EventType)
	}

	data, err := json.Marshal(r.Flatten())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record fields: %w", err)
	}

	p := factory()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", r.EventType, err)
	}
	return p, nil
}
