package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/renato0307/trailhook/internal/config"
	"github.com/renato0307/trailhook/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run        RunCmd        `cmd:"run" help:"Run a command as a monitored session"`
	Capture    CaptureCmd    `cmd:"capture" help:"Record events from stdin, a file or a container"`
	Play       PlayCmd       `cmd:"play" help:"Replay a recording"`
	Recordings RecordingsCmd `cmd:"recordings" help:"Manage recordings"`
	Sessions   SessionsCmd   `cmd:"sessions" help:"Show tracked sessions"`
	Hooks      HooksCmd      `cmd:"hooks" help:"Install git hooks and print agent hook settings"`
	Validate   ValidateCmd   `cmd:"validate" help:"Check that event emitters respect the ownership partition"`
	Hook       HookCmd       `cmd:"hook" help:"Handle an agent lifecycle hook" hidden:""`
	GitHook    GitHookCmd    `cmd:"git-hook" help:"Handle a git hook" hidden:""`

	// Internal fields (not flags)
	Container   *Container       `kong:"-"`
	settings    *config.Settings `kong:"-"`
	settingsErr error            `kong:"-"`
}

// SetSettings sets the settings on the CLI struct.
// A load error is kept and logged once logging is up: stderr is an event channel.
func (c *CLI) SetSettings(settings *config.Settings, err error) {
	c.settings = settings
	c.settingsErr = err
}

// Settings returns the loaded settings, never nil
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{
			DrainTimeout:  config.DefaultDrainTimeout,
			MaxLogFiles:   config.DefaultMaxLogFiles,
			Provider:      config.DefaultProvider,
			RecordingsDir: config.GetRecordingsPath(),
			StopGrace:     config.DefaultStopGrace,
		}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	settings := c.Settings()

	// Flags win over settings; env overrides were already folded into settings
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
			c.MaxLogFiles = settings.MaxLogFiles
		}
	}
	if !c.Debug && settings.Debug {
		c.Debug = true
	}
	if c.DebugFile == "" {
		c.DebugFile = settings.DebugFile
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		// Hooks run inside the agent and git; a broken log directory must not fail them
		if !isHookCommand(kctx) {
			return err
		}
	}

	// Set environment variables AFTER initialization so hooks spawned by a
	// monitored process append to the SAME log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	if c.settingsErr != nil {
		logging.Logger.Warn("Failed to load settings, using defaults", "error", c.settingsErr)
	}

	// Container is created after logging so adapters log to the right place
	c.Container = NewContainer(settings)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func isHookCommand(kctx *kong.Context) bool {
	if kctx == nil {
		return false
	}
	command := kctx.Command()
	return strings.HasPrefix(command, "hook ") || strings.HasPrefix(command, "git-hook ")
}
