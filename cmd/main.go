package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/renato0307/trailhook/internal/cmd"
	"github.com/renato0307/trailhook/internal/config"
	"github.com/renato0307/trailhook/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	os.Exit(run(ctx, stop))
}

func run(ctx context.Context, stop context.CancelFunc) int {
	defer stop()

	// Load settings from ~/.trailhook/settings.yaml; errors are logged by AfterApply
	var cli cmd.CLI
	cli.SetSettings(config.LoadSettings(config.GetSettingsPath()))

	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	kctx := kong.Parse(&cli,
		kong.Name("trailhook"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	defer cli.Close()

	// Execute the selected command
	if err := kctx.Run(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
