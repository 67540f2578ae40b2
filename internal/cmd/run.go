package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/renato0307/trailhook/internal/adapters/console"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
	"github.com/renato0307/trailhook/internal/services"
	"github.com/renato0307/trailhook/internal/version"
)

// RunCmd runs a command as a monitored session.
// The command's output is forwarded to stdout unchanged.
type RunCmd struct {
	DrainTimeout time.Duration `help:"How long to keep reading after the command exits (default from settings)"`
	Live         bool          `help:"Print each observed event to stderr"`
	Model        string        `help:"Model name stored in the recording header"`
	NATSURL      string        `name:"nats-url" help:"Publish every observed event to this NATS server"`
	Output       string        `help:"Recording path (default: derived from version, model and task)" short:"o" type:"path"`
	PTY          bool          `name:"pty" help:"Run the command under a pseudo-terminal"`
	Record       bool          `help:"Record the session" short:"r"`
	Sound        bool          `help:"Play a sound when the agent needs attention or finishes"`
	Task         string        `help:"Task description stored in the recording header (default: the command line)"`

	Command []string `arg:"" passthrough:"" help:"Command to run, after --"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI, ctx context.Context) error {
	sessions, err := cli.Container.SessionService(SessionOptions{
		DrainTimeout: r.DrainTimeout,
		NATSURL:      r.NATSURL,
		Sound:        r.Sound,
	})
	if err != nil {
		return err
	}

	var echo ports.Observer
	if r.Live {
		echo = console.NewPrinter(os.Stderr, false)
	}

	task := r.Task
	if task == "" {
		task = strings.Join(r.Command, " ")
	}

	logging.Logger.Info("Running monitored session", "command", r.Command, "record", r.Record)
	result, err := sessions.Run(ctx, services.RunParams{
		Args:        r.Command,
		Echo:        echo,
		Meta:        recordingMeta(cli, r.Model, task),
		OutputPath:  r.Output,
		Passthrough: os.Stdout,
		PTY:         r.PTY,
		Record:      r.Record,
		Stdin:       os.Stdin,
	})
	if result.RecordingPath != "" {
		fmt.Fprintf(os.Stderr, "Recorded %d events to %s\n", result.EventCount, result.RecordingPath)
	}
	if err != nil {
		return err
	}

	if code := result.Session.ExitCode; code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// ExitError carries the exit code of a monitored command back to main
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

// recordingMeta fills the recording header, falling back to settings for the model
func recordingMeta(cli *CLI, model, task string) services.RecordingMeta {
	if model == "" {
		model = cli.Settings().Model
	}
	return services.RecordingMeta{
		Model:       model,
		Task:        task,
		ToolVersion: version.Version,
	}
}
