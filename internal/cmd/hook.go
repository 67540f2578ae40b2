package cmd

import (
	"context"
	"os"

	"github.com/renato0307/trailhook/internal/adapters/claude"
	"github.com/renato0307/trailhook/internal/config"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/services"
)

// HookCmd handles one agent lifecycle hook invocation.
// The record goes to stdout; the command never fails the agent.
type HookCmd struct {
	HookName string `arg:"" help:"Agent hook name (PreToolUse, PostToolUse, SessionStart, ...)"`
}

// Run executes the hook handler
func (h *HookCmd) Run(cli *CLI, ctx context.Context) (err error) {
	log := logging.ForHook("agent", h.HookName)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Hook handler panicked", "panic", r)
		}
		err = nil
	}()

	input, readErr := claude.ReadHookInput(os.Stdin, claude.DefaultMaxInputBytes, claude.DefaultReadTimeout)
	if readErr != nil {
		// Emit anyway: the event itself is still worth recording
		log.Warn("Failed to read hook input", "error", readErr)
	}

	env, envErr := config.LoadHookEnv()
	if envErr != nil {
		log.Warn("Failed to parse hook environment", "error", envErr)
	}

	rec, ok := cli.Container.Dispatcher.Dispatch(ctx, h.HookName, input, services.HookContext{
		Provider:  env.Provider,
		SessionID: env.SessionID,
	})
	if ok {
		log.Info("Hook handled", "event_type", rec.EventType, "session_id", rec.SessionID)
	}
	return nil
}
