package services

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// Hook names as the agent runtime invokes them
const (
	HookNotification       = "Notification"
	HookPermissionRequest  = "PermissionRequest"
	HookPostToolUse        = "PostToolUse"
	HookPostToolUseFailure = "PostToolUseFailure"
	HookPreCompact         = "PreCompact"
	HookPreToolUse         = "PreToolUse"
	HookSessionEnd         = "SessionEnd"
	HookSessionStart       = "SessionStart"
	HookStop               = "Stop"
	HookSubagentStart      = "SubagentStart"
	HookSubagentStop       = "SubagentStop"
	HookTaskCompleted      = "TaskCompleted"
	HookTeammateIdle       = "TeammateIdle"
	HookUserPromptSubmit   = "UserPromptSubmit"
)

// UnknownSessionID is used when neither the environment nor the payload names a session
const UnknownSessionID = "unknown"

const (
	maxSummaryRunes = 120
	maxPreviewRunes = 60
)

// summaryKeys are the tool input fields that identify a call best, in order of preference
var summaryKeys = []string{"command", "file_path", "pattern", "url", "description"}

// hookRoute binds a hook name to the one event type it produces
type hookRoute struct {
	build     func(in domain.HookInput) domain.Payload
	eventType domain.EventType
}

// Dispatcher turns agent lifecycle hook invocations into event records on the primary channel
type Dispatcher struct {
	emitter   ports.RecordEmitter
	estimator ports.TokenEstimator
	now       func() time.Time
	routes    map[string]hookRoute
}

// NewDispatcher creates a Dispatcher with the hook table built once
func NewDispatcher(emitter ports.RecordEmitter, estimator ports.TokenEstimator) *Dispatcher {
	d := &Dispatcher{
		emitter:   emitter,
		estimator: estimator,
		now:       time.Now,
	}
	d.routes = d.buildRoutes()
	return d
}

func (d *Dispatcher) buildRoutes() map[string]hookRoute {
	return map[string]hookRoute{
		HookNotification: {
			eventType: domain.EventNotificationReceived,
			build: func(in domain.HookInput) domain.Payload {
				return domain.NotificationReceived{
					Message:          in.Message,
					NotificationType: in.NotificationType,
				}
			},
		},
		HookPermissionRequest: {
			eventType: domain.EventPermissionRequested,
			build: func(in domain.HookInput) domain.Payload {
				return domain.PermissionRequested{
					InputSummary: summarizeToolInput(in.ToolInput),
					ToolName:     in.ToolName,
				}
			},
		},
		HookPostToolUse: {
			eventType: domain.EventToolExecutionCompleted,
			build: func(in domain.HookInput) domain.Payload {
				return domain.ToolExecutionCompleted{
					OutputBytes: len(in.ToolResponse),
					Success:     toolSucceeded(in.ToolResponse),
					ToolName:    in.ToolName,
					ToolUseID:   in.ToolUseID,
				}
			},
		},
		HookPostToolUseFailure: {
			eventType: domain.EventToolExecutionFailed,
			build: func(in domain.HookInput) domain.Payload {
				return domain.ToolExecutionFailed{
					Error:       in.Error,
					IsInterrupt: in.IsInterrupt,
					ToolName:    in.ToolName,
					ToolUseID:   in.ToolUseID,
				}
			},
		},
		HookPreCompact: {
			eventType: domain.EventContextCompacted,
			build: func(in domain.HookInput) domain.Payload {
				return domain.ContextCompacted{
					CustomInstructionsLength: utf8.RuneCountInString(in.CustomInstructions),
					Trigger:                  in.Trigger,
				}
			},
		},
		HookPreToolUse: {
			eventType: domain.EventToolExecutionStarted,
			build: func(in domain.HookInput) domain.Payload {
				return domain.ToolExecutionStarted{
					Decision:       in.Decision,
					DecisionReason: in.DecisionReason,
					InputSummary:   summarizeToolInput(in.ToolInput),
					ToolName:       in.ToolName,
					ToolUseID:      in.ToolUseID,
				}
			},
		},
		HookSessionEnd: {
			eventType: domain.EventSessionEnded,
			build: func(in domain.HookInput) domain.Payload {
				return domain.SessionEnded{
					Reason:         in.Reason,
					TranscriptPath: in.TranscriptPath,
				}
			},
		},
		HookSessionStart: {
			eventType: domain.EventSessionStarted,
			build: func(in domain.HookInput) domain.Payload {
				return domain.SessionStarted{
					Cwd:            in.Cwd,
					Model:          in.Model,
					Source:         in.Source,
					TranscriptPath: in.TranscriptPath,
				}
			},
		},
		HookStop: {
			eventType: domain.EventAgentStopped,
			build: func(in domain.HookInput) domain.Payload {
				return domain.AgentStopped{StopHookActive: in.StopHookActive}
			},
		},
		HookSubagentStart: {
			eventType: domain.EventSubagentStarted,
			build: func(in domain.HookInput) domain.Payload {
				return domain.SubagentStarted{
					AgentID:   in.AgentID,
					AgentType: in.AgentType,
				}
			},
		},
		HookSubagentStop: {
			eventType: domain.EventSubagentStopped,
			build: func(in domain.HookInput) domain.Payload {
				return domain.SubagentStopped{
					AgentID:        in.AgentID,
					AgentType:      in.AgentType,
					TranscriptPath: in.AgentTranscriptPath,
				}
			},
		},
		HookTaskCompleted: {
			eventType: domain.EventTaskCompleted,
			build: func(in domain.HookInput) domain.Payload {
				return domain.TaskCompleted{
					TaskID:      in.TaskID,
					TaskSubject: in.TaskSubject,
				}
			},
		},
		HookTeammateIdle: {
			eventType: domain.EventAgentIdle,
			build: func(in domain.HookInput) domain.Payload {
				return domain.AgentIdle{
					TeamName:     in.TeamName,
					TeammateName: in.TeammateName,
				}
			},
		},
		HookUserPromptSubmit: {
			eventType: domain.EventUserPromptSubmitted,
			build: func(in domain.HookInput) domain.Payload {
				return domain.UserPromptSubmitted{
					PromptLength:  utf8.RuneCountInString(in.Prompt),
					PromptPreview: truncateRunes(in.Prompt, maxPreviewRunes),
					PromptTokens:  d.estimator.Estimate(in.Prompt),
				}
			},
		},
	}
}

// HookNames returns every hook name the dispatcher handles, sorted
func (d *Dispatcher) HookNames() []string {
	names := make([]string, 0, len(d.routes))
	for name := range d.routes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// EventTypes returns every event type the dispatcher can emit
func (d *Dispatcher) EventTypes() []domain.EventType {
	types := make([]domain.EventType, 0, len(d.routes))
	for _, route := range d.routes {
		types = append(types, route.eventType)
	}
	slices.Sort(types)
	return slices.Compact(types)
}

// Dispatch builds the record for one hook invocation and emits it.
// It reports false, emitting nothing, for hook names it does not know.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	hookName string,
	in domain.HookInput,
	hc HookContext,
) (domain.Record, bool) {
	route, ok := d.routes[hookName]
	if !ok {
		logging.Logger.Debug("Unknown hook, nothing emitted", "hook", hookName)
		return domain.Record{}, false
	}

	sessionID := resolveSessionID(hc.SessionID, in.SessionID)
	rec := domain.NewRecord(domain.Envelope{
		At:        d.now(),
		Provider:  hc.Provider,
		SessionID: sessionID,
	}, route.build(in))

	d.emitter.Emit(rec)
	logging.Logger.Debug("Hook dispatched",
		"hook", hookName,
		"event_type", rec.EventType,
		"session_id", sessionID)
	return rec, true
}

// resolveSessionID applies the precedence env > payload > "unknown"
func resolveSessionID(fromEnv, fromPayload string) string {
	if fromEnv != "" {
		return fromEnv
	}
	if fromPayload != "" {
		return fromPayload
	}
	return UnknownSessionID
}

// summarizeToolInput picks the most telling field of a tool input,
// falling back to the compacted JSON
func summarizeToolInput(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 || string(raw) == "null" {
		return ""
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err == nil {
		for _, key := range summaryKeys {
			if value, ok := fields[key].(string); ok && value != "" {
				return truncateRunes(value, maxSummaryRunes)
			}
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return truncateRunes(string(raw), maxSummaryRunes)
	}
	return truncateRunes(compact.String(), maxSummaryRunes)
}

// toolSucceeded reads the failure markers tool responses carry
func toolSucceeded(raw json.RawMessage) bool {
	var response struct {
		IsError *bool `json:"is_error"`
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		return true
	}
	if response.Success != nil && !*response.Success {
		return false
	}
	return response.IsError == nil || !*response.IsError
}

// truncateRunes shortens s to at most n runes, marking the cut with "..."
func truncateRunes(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}
