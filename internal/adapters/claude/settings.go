package claude

import (
	"encoding/json"
	"fmt"

	"github.com/renato0307/trailhook/internal/domain"
)

// HookCommand is one command entry of a hook matcher group
type HookCommand struct {
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
	Type    string `json:"type"`
}

// HookMatcher groups the commands bound to one hook name
type HookMatcher struct {
	Hooks   []HookCommand `json:"hooks"`
	Matcher string        `json:"matcher,omitempty"`
}

// Settings is the subset of the agent settings file trailhook manages
type Settings struct {
	Hooks map[string][]HookMatcher `json:"hooks"`
}

// hookTimeoutSeconds bounds how long the agent waits for one hook invocation
const hookTimeoutSeconds = 10

// BuildSettings binds every hook name to `<bin> hook <HookName>`
func BuildSettings(bin string, hookNames []string) Settings {
	settings := Settings{Hooks: make(map[string][]HookMatcher, len(hookNames))}
	for _, name := range hookNames {
		settings.Hooks[name] = []HookMatcher{{
			Hooks: []HookCommand{{
				Command: fmt.Sprintf("%s hook %s", domain.ShellQuote(bin), name),
				Timeout: hookTimeoutSeconds,
				Type:    "command",
			}},
		}}
	}
	return settings
}

// JSON renders the settings as indented JSON
func (s Settings) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hooks configuration: %w", err)
	}
	return data, nil
}
