package ports

import (
	"context"
	"io"
	"time"
)

// LaunchSpec describes a monitored process to start
type LaunchSpec struct {
	Args []string
	Dir  string
	Env  []string // appended to the current environment
	Name string
	PTY  bool // run under a pseudo-terminal instead of a pipe

	// Stdin is forwarded to the pseudo-terminal; pipe mode keeps stdin on the null device
	Stdin io.Reader
}

// Process is a running monitored process whose outputs are merged into one stream
type Process interface {
	// Output returns the merged byte stream of stdout and stderr
	Output() io.Reader
	// Close releases the read side of the stream, unblocking pending reads
	Close() error
	// Stop asks the process group to terminate, killing it after the grace period
	Stop(grace time.Duration) error
	// Wait blocks until the process exits and returns its exit code
	Wait() (int, error)
}

// ProcessLauncher starts monitored processes
type ProcessLauncher interface {
	Launch(ctx context.Context, spec LaunchSpec) (Process, error)
}
