package domain

import (
	"maps"
	"time"
)

// TimestampFormat is the layout used for every record timestamp (UTC, millisecond precision)
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// EventType identifies the kind of lifecycle fact a record describes
type EventType string

// Events emitted by the hook dispatcher
const (
	EventAgentIdle              EventType = "agent_idle"
	EventAgentStopped           EventType = "agent_stopped"
	EventContextCompacted       EventType = "context_compacted"
	EventNotificationReceived   EventType = "notification_received"
	EventPermissionRequested    EventType = "permission_requested"
	EventSessionEnded           EventType = "session_ended"
	EventSessionStarted         EventType = "session_started"
	EventSubagentStarted        EventType = "subagent_started"
	EventSubagentStopped        EventType = "subagent_stopped"
	EventTaskCompleted          EventType = "task_completed"
	EventToolExecutionCompleted EventType = "tool_execution_completed"
	EventToolExecutionFailed    EventType = "tool_execution_failed"
	EventToolExecutionStarted   EventType = "tool_execution_started"
	EventUserPromptSubmitted    EventType = "user_prompt_submitted"
)

// Events emitted by the git operation hooks
const (
	EventGitCheckout EventType = "git_checkout"
	EventGitCommit   EventType = "git_commit"
	EventGitMerge    EventType = "git_merge"
	EventGitPush     EventType = "git_push"
	EventGitRewrite  EventType = "git_rewrite"
)

// Channel selects the output path an emitter writes to
type Channel int

const (
	ChannelPrimary   Channel = iota // stdout of the emitting process
	ChannelSecondary                // stderr of the emitting process
)

// String returns the channel name used in logs
func (c Channel) String() string {
	switch c {
	case ChannelPrimary:
		return "primary"
	case ChannelSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Record is one self-contained fact about a monitored run.
// Records are passed by value and have no setters: the event type is fixed at construction.
type Record struct {
	Context   map[string]any `json:"context"`
	EventType EventType      `json:"event_type"`
	Metadata  map[string]any `json:"metadata"`
	Provider  string         `json:"provider"`
	SessionID string         `json:"session_id"`
	Timestamp string         `json:"timestamp"`
}

// Envelope holds the fields shared by every event type
type Envelope struct {
	At        time.Time
	Provider  string
	SessionID string
}

// NewRecord builds a record from the common envelope and a typed payload
func NewRecord(env Envelope, p Payload) Record {
	at := env.At
	if at.IsZero() {
		at = time.Now()
	}
	ctx, meta := splitFields(p)
	return Record{
		Context:   ctx,
		EventType: p.EventType(),
		Metadata:  meta,
		Provider:  env.Provider,
		SessionID: env.SessionID,
		Timestamp: at.UTC().Format(TimestampFormat),
	}
}

// Time parses the record timestamp
func (r Record) Time() (time.Time, error) {
	return time.Parse(TimestampFormat, r.Timestamp)
}

// Flatten merges context and metadata into one view.
// Context keys win when both maps carry the same key.
func (r Record) Flatten() map[string]any {
	flat := make(map[string]any, len(r.Context)+len(r.Metadata))
	maps.Copy(flat, r.Metadata)
	maps.Copy(flat, r.Context)
	return flat
}
