//go:build unix

package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// ExecLauncher starts monitored processes in their own process group with
// stdout and stderr bound to one shared pipe (or one pseudo-terminal)
type ExecLauncher struct{}

// Compile-time interface verification
var _ ports.ProcessLauncher = (*ExecLauncher)(nil)

// NewExecLauncher creates a new ExecLauncher
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// Launch starts the process described by spec.
// The process lifetime is not bound to ctx; callers stop it through Process.Stop.
func (l *ExecLauncher) Launch(ctx context.Context, spec ports.LaunchSpec) (ports.Process, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("no command to launch")
	}

	cmd := exec.Command(spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)

	p := &execProcess{
		cmd:  cmd,
		done: make(chan struct{}),
	}

	if spec.PTY {
		// pty.Start makes the child a session leader, which also leads its own process group
		ptmx, err := pty.Start(cmd)
		if err != nil {
			return nil, fmt.Errorf("failed to start %s under pty: %w", spec.Name, err)
		}
		p.out = ptmx
		p.reader = ptyReader{f: ptmx}
		p.restore = forwardInput(spec.Stdin, ptmx)
	} else {
		r, w, err := os.Pipe()
		if err != nil {
			return nil, fmt.Errorf("failed to create output pipe: %w", err)
		}
		// Stdin stays on the null device: a background process group reading the
		// terminal would be stopped by SIGTTIN. Interactive commands use the pty mode,
		// which forwards spec.Stdin.
		cmd.Stdout = w
		cmd.Stderr = w
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

		if err := cmd.Start(); err != nil {
			_ = r.Close()
			_ = w.Close()
			return nil, fmt.Errorf("failed to start %s: %w", spec.Name, err)
		}
		// The child holds its own copy of the write end; EOF arrives once every writer is gone
		_ = w.Close()
		p.out = r
		p.reader = r
	}

	p.pgid = cmd.Process.Pid
	logging.Logger.Info("Process launched",
		"command", spec.Name,
		"pid", cmd.Process.Pid,
		"pty", spec.PTY)

	go func() {
		p.waitErr = cmd.Wait()
		if p.restore != nil {
			p.restore()
		}
		close(p.done)
	}()

	return p, nil
}

// forwardInput copies in to the pseudo-terminal until in ends or the terminal closes.
// When in is a terminal it is switched to raw mode so keystrokes reach the child
// unprocessed; the returned func puts it back.
func forwardInput(in io.Reader, ptmx *os.File) func() {
	if in == nil {
		return nil
	}

	var restore func()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if err := pty.InheritSize(f, ptmx); err != nil {
			logging.Logger.Debug("Failed to copy terminal size", "error", err)
		}
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			logging.Logger.Warn("Failed to switch terminal to raw mode", "error", err)
		} else {
			restore = func() {
				_ = term.Restore(int(f.Fd()), state)
			}
		}
	}

	go func() {
		_, err := io.Copy(ptmx, in)
		logging.Logger.Debug("Stopped forwarding input", "error", err)
	}()
	return restore
}

// execProcess is a running child started by ExecLauncher
type execProcess struct {
	closeOnce sync.Once
	cmd       *exec.Cmd
	done      chan struct{}
	out       *os.File
	pgid      int
	reader    io.Reader
	restore   func()
	waitErr   error
}

// Output returns the merged output stream
func (p *execProcess) Output() io.Reader {
	return p.reader
}

// Close closes the read side of the output stream
func (p *execProcess) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.out.Close()
	})
	return err
}

// Stop sends SIGTERM to the whole process group and SIGKILL once grace expires
func (p *execProcess) Stop(grace time.Duration) error {
	select {
	case <-p.done:
		return nil
	default:
	}

	logging.Logger.Info("Stopping process group", "pgid", p.pgid, "grace", grace)
	if err := unix.Kill(-p.pgid, unix.SIGTERM); err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("failed to terminate process group: %w", err)
	}

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-p.done:
		return nil
	case <-timer.C:
	}

	logging.Logger.Warn("Process group ignored SIGTERM, killing", "pgid", p.pgid)
	if err := unix.Kill(-p.pgid, unix.SIGKILL); err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("failed to kill process group: %w", err)
	}
	return nil
}

// Wait blocks until the process exits.
// A process killed by a signal reports 128 plus the signal number, like a shell does.
func (p *execProcess) Wait() (int, error) {
	<-p.done

	state := p.cmd.ProcessState
	if state == nil {
		return -1, p.waitErr
	}
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal()), nil
	}

	var exitErr *exec.ExitError
	if p.waitErr != nil && !errors.As(p.waitErr, &exitErr) {
		return state.ExitCode(), p.waitErr
	}
	return state.ExitCode(), nil
}

// ptyReader turns the EIO a pty master returns after the child exits into io.EOF
type ptyReader struct {
	f *os.File
}

func (r ptyReader) Read(b []byte) (int, error) {
	n, err := r.f.Read(b)
	if errors.Is(err, unix.EIO) {
		return n, io.EOF
	}
	return n, err
}
