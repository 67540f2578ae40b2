package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvSessionID is exported to monitored processes so every hook they spawn
// stamps its records with the same session
const EnvSessionID = "TRAILHOOK_SESSION_ID"

// HookEnv is the environment a hook invocation inherits from the agent runtime and git
type HookEnv struct {
	ProjectDir   string `env:"CLAUDE_PROJECT_DIR"`
	Provider     string `env:"TRAILHOOK_PROVIDER" envDefault:"claude-code"`
	ReflogAction string `env:"GIT_REFLOG_ACTION"`
	SessionID    string `env:"TRAILHOOK_SESSION_ID"`
}

// LoadHookEnv parses the hook environment
func LoadHookEnv() (HookEnv, error) {
	var h HookEnv
	if err := ParseEnv(&h); err != nil {
		return HookEnv{}, err
	}
	return h, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
