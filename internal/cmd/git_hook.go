package cmd

import (
	"context"
	"os"

	"github.com/renato0307/trailhook/internal/config"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/services"
)

// GitHookCmd handles one git hook invocation from an installed shim.
// The record goes to stderr; the command never fails the git operation.
// NOTE: Field order matters for Kong positional args - Name must come before Args
type GitHookCmd struct {
	Name string   `arg:"" help:"Git hook name (post-commit, pre-push, post-merge, post-rewrite, post-checkout)"`
	Args []string `arg:"" optional:"" help:"Arguments git passed to the hook"`
}

// Run executes the git hook handler
func (g *GitHookCmd) Run(cli *CLI, ctx context.Context) (err error) {
	log := logging.ForHook("git", g.Name)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Git hook panicked", "panic", r)
		}
		err = nil
	}()

	env, envErr := config.LoadHookEnv()
	if envErr != nil {
		log.Warn("Failed to parse hook environment", "error", envErr)
	}

	dir, wdErr := os.Getwd()
	if wdErr != nil {
		log.Warn("Failed to get working directory", "error", wdErr)
	}

	rec, handleErr := cli.Container.GitHooks.Handle(ctx, g.Name, services.GitHookInput{
		Args:         g.Args,
		Dir:          dir,
		ReflogAction: env.ReflogAction,
		Stdin:        os.Stdin,
	}, services.HookContext{
		Provider:  env.Provider,
		SessionID: env.SessionID,
	})
	if handleErr != nil {
		log.Warn("Git hook emitted an incomplete event", "error", handleErr)
		if rec.EventType == "" {
			return nil
		}
	}

	log.Info("Git hook handled", "event_type", rec.EventType, "session_id", rec.SessionID)
	return nil
}
