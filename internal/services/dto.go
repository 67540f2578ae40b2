package services

import (
	"io"
	"time"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/ports"
)

// HookContext carries the envelope values a hook takes from its environment
type HookContext struct {
	Provider  string
	SessionID string // from TRAILHOOK_SESSION_ID, overrides the payload session id
}

// GitHookInput contains what git hands to a hook invocation
type GitHookInput struct {
	Args         []string
	Dir          string
	ReflogAction string // GIT_REFLOG_ACTION, used to recognize pulls
	Stdin        io.Reader
}

// MergerOptions configures a Merger
type MergerOptions struct {
	DrainTimeout  time.Duration
	Listener      ports.SessionListener // optional
	Observers     []ports.Observer
	Passthrough   io.Writer // receives every line unmodified; nil discards
	Provider      string
	RecordingPath string // stored on the session snapshot
	StopGrace     time.Duration
}

// RecordingMeta describes a recording before its header is written
type RecordingMeta struct {
	Model       string
	Task        string
	ToolVersion string
}

// CaptureParams contains parameters for capturing a stream into a recording
type CaptureParams struct {
	ContainerID string
	Echo        ports.Observer // optional live view of observed events
	Follow      bool
	InputPath   string
	Meta        RecordingMeta
	OutputPath  string // derived from the catalog naming convention when empty
	Stdin       io.Reader
}

// RunParams contains parameters for running a monitored command
type RunParams struct {
	Args        []string
	Dir         string
	Echo        ports.Observer // optional live view of observed events
	Meta        RecordingMeta
	OutputPath  string // derived from the catalog naming convention when empty
	Passthrough io.Writer
	PTY         bool
	Record      bool
	Stdin       io.Reader // forwarded to the command under PTY
}

// SessionResult contains the outcome of a monitored run or a capture
type SessionResult struct {
	EventCount    int    // events written to the recording
	RecordingPath string // empty when nothing was recorded
	Session       domain.Session
}

// InstallHooksParams contains parameters for installing git hook shims
type InstallHooksParams struct {
	BinaryPath string
	Global     bool
	RepoDir    string
}

// UninstallHooksParams contains parameters for removing git hook shims
type UninstallHooksParams struct {
	Global  bool
	RepoDir string
}

// HooksResult reports what an install or uninstall did per hook
type HooksResult struct {
	Changed   []string // shims written or removed
	HooksDir  string
	Skipped   []string // unmanaged hooks left untouched
	Unchanged []string // shims already up to date, or already absent
}
