package domain

import (
	"strings"
	"time"
	"unicode"
)

// SessionState is a stage of the stream merger state machine
type SessionState string

const (
	StateDraining   SessionState = "draining"
	StateIdle       SessionState = "idle"
	StateRunning    SessionState = "running"
	StateTerminated SessionState = "terminated"
)

// Session groups one execution of a monitored process.
// ID is assigned at launch and never changes afterwards.
type Session struct {
	Command       string
	EndedAt       time.Time
	EventCount    int
	ExitCode      int
	ID            string
	Provider      string
	RecordingPath string
	StartedAt     time.Time
	State         SessionState
}

// Slugify converts free text to a file-name friendly slug.
// - Letters and numbers are kept (lowercased), periods too
// - Whitespace, underscores, hyphens, slashes and parentheses become a single hyphen
// - Other special characters are removed
func Slugify(text string) string {
	var result strings.Builder
	lastWasHyphen := false

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '.' {
			result.WriteRune(r)
			lastWasHyphen = false
		} else if unicode.IsSpace(r) || r == '_' || r == '-' || r == '(' || r == ')' || r == '/' {
			// Avoid consecutive and leading hyphens
			if !lastWasHyphen && result.Len() > 0 {
				result.WriteRune('-')
				lastWasHyphen = true
			}
		}
	}

	return strings.TrimRight(result.String(), "-")
}
