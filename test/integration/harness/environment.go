package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own TRAILHOOK_HOME and HOME.
type TestEnvironment struct {
	Home          string
	TrailhookHome string
	extraEnv      map[string]string
	tb            testing.TB
}

// NewTestEnvironment creates an isolated test environment in temp directories.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:          tb.TempDir(),
		TrailhookHome: tb.TempDir(),
		extraEnv:      make(map[string]string),
		tb:            tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out TRAILHOOK_* and git identity variables and sets:
//   - TRAILHOOK_HOME to the temp directory
//   - TRAILHOOK_DEBUG to empty string (disables debug logging)
//   - HOME and XDG_CONFIG_HOME to a temp directory, without system git config
//   - A fixed git identity so commits work everywhere
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+10+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := map[string]bool{
		"CLAUDE_PROJECT_DIR":  true,
		"GIT_CONFIG_NOSYSTEM": true,
		"HOME":                true,
		"XDG_CONFIG_HOME":     true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing TRAILHOOK_* and GIT_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "TRAILHOOK_") || strings.HasPrefix(key, "GIT_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"TRAILHOOK_HOME="+e.TrailhookHome,
		"TRAILHOOK_DEBUG=",
		"HOME="+e.Home,
		"XDG_CONFIG_HOME="+filepath.Join(e.Home, ".config"),
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	// Add extra environment variables
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// RecordingsPath returns the default recordings directory.
func (e *TestEnvironment) RecordingsPath() string {
	return filepath.Join(e.TrailhookHome, "recordings")
}

// DBPath returns the path to the test session database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.TrailhookHome, "sessions.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
