// Package sound plays short audible cues when a monitored agent needs attention.
package sound

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// Cue identifies which kind of sound to play
type Cue string

// Cues
const (
	CueAttention Cue = "attention" // the agent waits for the user
	CueDone      Cue = "done"      // the agent finished a turn or a task
	CueStart     Cue = "start"     // a session started
)

// command is one way to play a sound on the current platform
type command struct {
	args []string
	name string
}

// Notifier is an observer that plays a cue for the events a user wants to hear about.
// Sounds play in the background so the observing loop is never held up.
type Notifier struct {
	bell  io.Writer
	start func(name string, args ...string) error
}

// Compile-time interface verification
var _ ports.Observer = (*Notifier)(nil)

// NewNotifier creates a Notifier using the platform's sound commands.
// The terminal bell on stderr is the fallback.
func NewNotifier() *Notifier {
	return &Notifier{
		bell:  os.Stderr,
		start: startDetached,
	}
}

// CueFor returns the cue played for an event type
func CueFor(t domain.EventType) (Cue, bool) {
	switch t {
	case domain.EventNotificationReceived, domain.EventPermissionRequested:
		return CueAttention, true
	case domain.EventAgentStopped, domain.EventTaskCompleted:
		return CueDone, true
	case domain.EventSessionStarted:
		return CueStart, true
	}
	return "", false
}

// Observe implements Observer
func (n *Notifier) Observe(ctx context.Context, rec domain.Record) error {
	cue, ok := CueFor(rec.EventType)
	if !ok {
		return nil
	}
	return n.Play(cue)
}

// Play tries each platform command for the cue and rings the bell if none starts
func (n *Notifier) Play(cue Cue) error {
	for _, c := range commandsFor(cue) {
		if err := n.start(c.name, c.args...); err == nil {
			return nil
		}
	}

	logging.Logger.Debug("No sound command available, ringing bell", "cue", cue)
	if _, err := fmt.Fprint(n.bell, "\a"); err != nil {
		return fmt.Errorf("failed to ring bell: %w", err)
	}
	return nil
}

// startDetached starts a command and reaps it in the background
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
