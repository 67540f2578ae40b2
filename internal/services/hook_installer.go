package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// ManagedMarker tags hook files written by trailhook. Files without it are never touched.
const ManagedMarker = "# managed-by: trailhook"

// HookInstaller writes and removes the git hook shims
type HookInstaller struct {
	git       ports.HookConfigurator
	globalDir string
}

// NewHookInstaller creates a HookInstaller. globalDir is the machine-wide hooks directory.
func NewHookInstaller(git ports.HookConfigurator, globalDir string) *HookInstaller {
	return &HookInstaller{git: git, globalDir: globalDir}
}

// ShimScript returns the shim for one hook. The shim always exits 0.
func ShimScript(binaryPath, hook string) string {
	return fmt.Sprintf("#!/bin/sh\n%s\n%s git-hook %s \"$@\" || true\nexit 0\n",
		ManagedMarker, domain.ShellQuote(binaryPath), hook)
}

// IsManaged reports whether a hook file was written by trailhook
func IsManaged(content []byte) bool {
	return bytes.Contains(content, []byte(ManagedMarker))
}

// Install writes a shim for every git hook. Installing twice leaves the files unchanged.
func (h *HookInstaller) Install(ctx context.Context, params InstallHooksParams) (HooksResult, error) {
	if params.BinaryPath == "" {
		return HooksResult{}, fmt.Errorf("binary path is required")
	}

	dir, err := h.hooksDir(ctx, params.Global, params.RepoDir)
	if err != nil {
		return HooksResult{}, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return HooksResult{}, fmt.Errorf("failed to create hooks directory: %w", err)
	}

	result := HooksResult{HooksDir: dir}
	for _, name := range GitHookNames() {
		path := filepath.Join(dir, name)
		want := []byte(ShimScript(params.BinaryPath, name))

		existing, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(existing, want):
			result.Unchanged = append(result.Unchanged, name)
			continue
		case err == nil && !IsManaged(existing):
			logging.Logger.Warn("Leaving unmanaged hook in place", "path", path)
			result.Skipped = append(result.Skipped, name)
			continue
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return result, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if err := os.WriteFile(path, want, 0755); err != nil {
			return result, fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := os.Chmod(path, 0755); err != nil {
			return result, fmt.Errorf("failed to make %s executable: %w", path, err)
		}
		result.Changed = append(result.Changed, name)
	}

	if params.Global {
		current := h.git.GlobalHooksPath(ctx)
		if current != dir {
			if current != "" {
				logging.Logger.Warn("Replacing global core.hooksPath", "previous", current, "new", dir)
			}
			if err := h.git.SetGlobalHooksPath(ctx, dir); err != nil {
				return result, fmt.Errorf("failed to set core.hooksPath: %w", err)
			}
		}
	}

	logging.Logger.Info("Git hooks installed",
		"dir", dir,
		"changed", len(result.Changed),
		"skipped", len(result.Skipped))
	return result, nil
}

// Uninstall removes the managed shims. core.hooksPath is unset only while it
// still points at the trailhook hooks directory.
func (h *HookInstaller) Uninstall(ctx context.Context, params UninstallHooksParams) (HooksResult, error) {
	dir, err := h.hooksDir(ctx, params.Global, params.RepoDir)
	if err != nil {
		return HooksResult{}, err
	}

	result := HooksResult{HooksDir: dir}
	for _, name := range GitHookNames() {
		path := filepath.Join(dir, name)

		existing, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			result.Unchanged = append(result.Unchanged, name)
			continue
		case err != nil:
			return result, fmt.Errorf("failed to read %s: %w", path, err)
		case !IsManaged(existing):
			result.Skipped = append(result.Skipped, name)
			continue
		}

		if err := os.Remove(path); err != nil {
			return result, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		result.Changed = append(result.Changed, name)
	}

	if params.Global && h.git.GlobalHooksPath(ctx) == dir {
		if err := h.git.UnsetGlobalHooksPath(ctx); err != nil {
			return result, fmt.Errorf("failed to unset core.hooksPath: %w", err)
		}
	}

	logging.Logger.Info("Git hooks uninstalled", "dir", dir, "removed", len(result.Changed))
	return result, nil
}

func (h *HookInstaller) hooksDir(ctx context.Context, global bool, repoDir string) (string, error) {
	if global {
		return h.globalDir, nil
	}
	return h.git.RepoHooksDir(ctx, repoDir)
}
