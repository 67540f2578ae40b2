package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the trailhook home directory
const EnvHome = "TRAILHOOK_HOME"

// GetTrailhookHome returns TRAILHOOK_HOME or ~/.trailhook default
func GetTrailhookHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".trailhook"
		}
		return filepath.Join(homeDir, ".trailhook")
	}
	return ExpandPath(home)
}

// GetDBPath returns $TRAILHOOK_HOME/sessions.db
func GetDBPath() string {
	return filepath.Join(GetTrailhookHome(), "sessions.db")
}

// GetRecordingsPath returns $TRAILHOOK_HOME/recordings
func GetRecordingsPath() string {
	return filepath.Join(GetTrailhookHome(), "recordings")
}

// GetGlobalHooksPath returns $TRAILHOOK_HOME/git-hooks, the target of `hooks install --global`
func GetGlobalHooksPath() string {
	return filepath.Join(GetTrailhookHome(), "git-hooks")
}

// GetSettingsPath returns $TRAILHOOK_HOME/settings.yaml
func GetSettingsPath() string {
	return filepath.Join(GetTrailhookHome(), "settings.yaml")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
