package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/trailhook/internal/adapters/claude"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/services"
)

// HooksCmd groups the hook installation commands
type HooksCmd struct {
	Install        HooksInstallCmd        `cmd:"install" help:"Install git hook shims"`
	Uninstall      HooksUninstallCmd      `cmd:"uninstall" help:"Remove git hook shims written by trailhook"`
	ClaudeSettings HooksClaudeSettingsCmd `cmd:"claude-settings" help:"Print the agent settings that route every hook to trailhook"`
}

// HooksInstallCmd writes the git hook shims
type HooksInstallCmd struct {
	Binary string `help:"Path of the trailhook binary the shims call (default: this executable)"`
	Global bool   `help:"Install into the machine-wide hooks directory and point core.hooksPath at it"`
	Repo   string `help:"Repository to install into" default:"." type:"path"`
	Yes    bool   `help:"Skip the confirmation prompt" short:"y"`
}

// Run executes the install command
func (h *HooksInstallCmd) Run(cli *CLI, ctx context.Context) error {
	binary, err := resolveBinary(h.Binary)
	if err != nil {
		return err
	}

	if h.Global && !h.Yes {
		confirmed, err := confirm(
			"Install trailhook git hooks globally?",
			"This sets core.hooksPath for your user; per-repository hooks stop running.")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	result, err := cli.Container.HookInstaller.Install(ctx, services.InstallHooksParams{
		BinaryPath: binary,
		Global:     h.Global,
		RepoDir:    h.Repo,
	})
	if err != nil {
		return fmt.Errorf("failed to install hooks: %w", err)
	}

	printHooksResult(result, "installed")
	return nil
}

// HooksUninstallCmd removes the git hook shims
type HooksUninstallCmd struct {
	Global bool   `help:"Uninstall from the machine-wide hooks directory"`
	Repo   string `help:"Repository to uninstall from" default:"." type:"path"`
	Yes    bool   `help:"Skip the confirmation prompt" short:"y"`
}

// Run executes the uninstall command
func (h *HooksUninstallCmd) Run(cli *CLI, ctx context.Context) error {
	if h.Global && !h.Yes {
		confirmed, err := confirm(
			"Remove trailhook git hooks globally?",
			"core.hooksPath is unset when it still points at the trailhook hooks directory.")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	result, err := cli.Container.HookInstaller.Uninstall(ctx, services.UninstallHooksParams{
		Global:  h.Global,
		RepoDir: h.Repo,
	})
	if err != nil {
		return fmt.Errorf("failed to uninstall hooks: %w", err)
	}

	printHooksResult(result, "removed")
	return nil
}

// HooksClaudeSettingsCmd prints the hooks section of the agent settings file
type HooksClaudeSettingsCmd struct {
	Binary string `help:"Path of the trailhook binary the hooks call (default: this executable)"`
}

// Run executes the claude-settings command
func (h *HooksClaudeSettingsCmd) Run(cli *CLI) error {
	binary, err := resolveBinary(h.Binary)
	if err != nil {
		return err
	}

	data, err := claude.BuildSettings(binary, cli.Container.Dispatcher.HookNames()).JSON()
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}

// resolveBinary returns the absolute path of the binary hooks should call
func resolveBinary(binary string) (string, error) {
	if binary != "" {
		return filepath.Abs(binary)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate trailhook binary: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

func confirm(title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&confirmed).
				Affirmative("Yes").
				Negative("No"),
		),
	)
	if err := form.Run(); err != nil {
		logging.Logger.Debug("Confirmation aborted", "error", err)
		return false, fmt.Errorf("confirmation aborted: %w", err)
	}
	return confirmed, nil
}

func printHooksResult(result services.HooksResult, verb string) {
	fmt.Printf("Hooks directory: %s\n", result.HooksDir)
	for _, name := range result.Changed {
		fmt.Printf("  %-14s %s\n", name, verb)
	}
	for _, name := range result.Unchanged {
		fmt.Printf("  %-14s unchanged\n", name)
	}
	for _, name := range result.Skipped {
		fmt.Printf("  %-14s skipped (not managed by trailhook)\n", name)
	}
}
