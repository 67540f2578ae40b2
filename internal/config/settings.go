package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override settings.
// A double underscore separates nested keys: TRAILHOOK_NATS__URL sets nats.url.
const EnvPrefix = "TRAILHOOK_"

// Setting defaults
const (
	DefaultDrainTimeout = 2 * time.Second
	DefaultMaxLogFiles  = 1000
	DefaultProvider     = "claude-code"
	DefaultStopGrace    = 5 * time.Second
)

// NATSSettings configures the optional event publisher
type NATSSettings struct {
	SubjectPrefix string `koanf:"subject_prefix"`
	URL           string `koanf:"url"`
}

// Settings represents the structure of ~/.trailhook/settings.yaml
type Settings struct {
	Debug         bool          `koanf:"debug"`
	DebugFile     string        `koanf:"debug_file"`
	DrainTimeout  time.Duration `koanf:"drain_timeout"`
	MaxLogFiles   int           `koanf:"max_log_files"`
	Model         string        `koanf:"model"`
	NATS          NATSSettings  `koanf:"nats"`
	Provider      string        `koanf:"provider"`
	RecordingsDir string        `koanf:"recordings_dir"`
	Sound         bool          `koanf:"sound"`
	StopGrace     time.Duration `koanf:"stop_grace"`
}

// LoadSettings loads settings from the YAML file at path, then applies
// TRAILHOOK_* environment overrides and finally defaults.
// A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment settings: %w", err)
	}

	defaults := map[string]any{
		"drain_timeout":  DefaultDrainTimeout.String(),
		"max_log_files":  DefaultMaxLogFiles,
		"provider":       DefaultProvider,
		"recordings_dir": GetRecordingsPath(),
		"stop_grace":     DefaultStopGrace.String(),
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			if err := k.Set(key, value); err != nil {
				return nil, fmt.Errorf("failed to set default %s: %w", key, err)
			}
		}
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	settings.RecordingsDir = ExpandPath(settings.RecordingsDir)
	settings.DebugFile = ExpandPath(settings.DebugFile)

	return &settings, nil
}
