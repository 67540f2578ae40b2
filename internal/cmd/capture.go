package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/trailhook/internal/adapters/console"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
	"github.com/renato0307/trailhook/internal/services"
)

// CaptureCmd records the events found in a stream produced elsewhere
type CaptureCmd struct {
	Container string `help:"Capture the logs of this docker container"`
	Follow    bool   `help:"Keep reading --input as it grows until interrupted" short:"f"`
	Input     string `help:"Read from this file instead of stdin" short:"i" type:"path"`
	Model     string `help:"Model name stored in the recording header"`
	Output    string `help:"Recording path (default: derived from version, model and task)" short:"o" type:"path"`
	Task      string `help:"Task description stored in the recording header" default:"capture"`
	Verbose   bool   `help:"Echo each captured event with its metadata to stdout" short:"v"`
}

// Run executes the capture command
func (c *CaptureCmd) Run(cli *CLI, ctx context.Context) error {
	if c.Container != "" && c.Input != "" {
		return fmt.Errorf("--container and --input are mutually exclusive")
	}
	if c.Follow && c.Input == "" {
		return fmt.Errorf("--follow requires --input")
	}

	sessions, err := cli.Container.SessionService(SessionOptions{})
	if err != nil {
		return err
	}

	var echo ports.Observer
	if c.Verbose {
		echo = console.NewPrinter(os.Stdout, true)
	}

	logging.Logger.Info("Starting capture",
		"container", c.Container,
		"input", c.Input,
		"follow", c.Follow)

	result, err := sessions.Capture(ctx, services.CaptureParams{
		ContainerID: c.Container,
		Echo:        echo,
		Follow:      c.Follow,
		InputPath:   c.Input,
		Meta:        recordingMeta(cli, c.Model, c.Task),
		OutputPath:  c.Output,
		Stdin:       os.Stdin,
	})
	if result.RecordingPath != "" {
		fmt.Fprintf(os.Stderr, "Recorded %d events to %s\n", result.EventCount, result.RecordingPath)
	}
	return err
}
