package domain

import "slices"

// Owner names the emitter source allowed to produce an event type
type Owner string

const (
	OwnerGitHooks       Owner = "git-hooks"
	OwnerHookDispatcher Owner = "hook-dispatcher"
)

// hookDispatcherTypes is the set of event types only the hook dispatcher may emit
var hookDispatcherTypes = []EventType{
	EventAgentIdle,
	EventAgentStopped,
	EventContextCompacted,
	EventNotificationReceived,
	EventPermissionRequested,
	EventSessionEnded,
	EventSessionStarted,
	EventSubagentStarted,
	EventSubagentStopped,
	EventTaskCompleted,
	EventToolExecutionCompleted,
	EventToolExecutionFailed,
	EventToolExecutionStarted,
	EventUserPromptSubmitted,
}

// gitHookTypes is the set of event types only the git operation hooks may emit
var gitHookTypes = []EventType{
	EventGitCheckout,
	EventGitCommit,
	EventGitMerge,
	EventGitPush,
	EventGitRewrite,
}

// OwnedTypes returns a copy of the event types assigned to an owner
func OwnedTypes(owner Owner) []EventType {
	switch owner {
	case OwnerHookDispatcher:
		return slices.Clone(hookDispatcherTypes)
	case OwnerGitHooks:
		return slices.Clone(gitHookTypes)
	default:
		return nil
	}
}

// Owners returns every owner in the partition
func Owners() []Owner {
	return []Owner{OwnerGitHooks, OwnerHookDispatcher}
}

// OwnerOf returns the owner of an event type.
// The second value is false when the type is not assigned to any owner.
func OwnerOf(t EventType) (Owner, bool) {
	if slices.Contains(hookDispatcherTypes, t) {
		return OwnerHookDispatcher, true
	}
	if slices.Contains(gitHookTypes, t) {
		return OwnerGitHooks, true
	}
	return "", false
}
