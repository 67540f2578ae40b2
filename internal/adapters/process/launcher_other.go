//go:build !unix

package process

import (
	"context"
	"fmt"
	"runtime"

	"github.com/renato0307/trailhook/internal/ports"
)

// ExecLauncher is unavailable on platforms without process groups
type ExecLauncher struct{}

// Compile-time interface verification
var _ ports.ProcessLauncher = (*ExecLauncher)(nil)

// NewExecLauncher creates a new ExecLauncher
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// Launch always fails: monitored sessions need unix process groups
func (l *ExecLauncher) Launch(ctx context.Context, spec ports.LaunchSpec) (ports.Process, error) {
	return nil, fmt.Errorf("monitored sessions are not supported on %s", runtime.GOOS)
}
