package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
)

// emptyTree is the object name of git's empty tree, used to diff root commits
const emptyTree = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// runGit runs git in dir and returns its trimmed stdout.
// Errors carry git's stderr so callers can log something useful.
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w (%s)", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(output)), nil
}

// commitSubject returns the first line of a commit message
func commitSubject(ctx context.Context, dir, rev string) (string, error) {
	return runGit(ctx, dir, "log", "-1", "--format=%s", rev)
}

// countCommits counts the commits selected by the given rev-list arguments
func countCommits(ctx context.Context, dir string, revs ...string) (int, error) {
	args := append([]string{"rev-list", "--count"}, revs...)
	output, err := runGit(ctx, dir, args...)
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	return count, nil
}

// currentBranch returns the checked out branch, "HEAD" when detached, or "" on error
func currentBranch(ctx context.Context, dir string) string {
	output, err := runGit(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		logging.Logger.Debug("Failed to get current branch", "error", err, "dir", dir)
		return ""
	}
	return output
}

// diffStats sums `git diff --numstat` between two revisions.
// An empty from diffs against the empty tree.
func diffStats(ctx context.Context, dir, from, to string) (domain.DiffStats, error) {
	if from == "" {
		from = emptyTree
	}

	output, err := runGit(ctx, dir, "diff", "--numstat", from, to)
	if err != nil {
		return domain.DiffStats{}, err
	}
	return parseNumstat(output), nil
}

// parseNumstat parses `--numstat` output. Binary files count as changed with no lines.
func parseNumstat(output string) domain.DiffStats {
	var stats domain.DiffStats
	for line := range strings.SplitSeq(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		stats.FilesChanged++
		if added, err := strconv.Atoi(fields[0]); err == nil {
			stats.Insertions += added
		}
		if deleted, err := strconv.Atoi(fields[1]); err == nil {
			stats.Deletions += deleted
		}
	}
	return stats
}

// diffText returns the full patch between two revisions
func diffText(ctx context.Context, dir, from, to string) (string, error) {
	if from == "" {
		from = emptyTree
	}
	return runGit(ctx, dir, "diff", from, to)
}

// parentCount returns how many parents a commit has
func parentCount(ctx context.Context, dir, rev string) (int, error) {
	output, err := runGit(ctx, dir, "rev-list", "--parents", "-n", "1", rev)
	if err != nil {
		return 0, err
	}

	fields := strings.Fields(output)
	if len(fields) == 0 {
		return 0, fmt.Errorf("commit %s not found", rev)
	}
	return len(fields) - 1, nil
}

// remoteURL returns the URL configured for a remote, or "" when unknown
func remoteURL(ctx context.Context, dir, remote string) string {
	output, err := runGit(ctx, dir, "remote", "get-url", remote)
	if err != nil {
		return ""
	}
	return output
}

// resolveRev resolves a revision expression to a full object name
func resolveRev(ctx context.Context, dir, rev string) (string, error) {
	return runGit(ctx, dir, "rev-parse", "--verify", "--quiet", rev)
}

// globalHooksPath returns the user-level core.hooksPath, or "" when unset
func globalHooksPath(ctx context.Context) string {
	output, err := runGit(ctx, "", "config", "--global", "--get", "core.hooksPath")
	if err != nil {
		return ""
	}
	return output
}

// repoHooksDir returns the absolute hooks directory git uses for the repository in dir
func repoHooksDir(ctx context.Context, dir string) (string, error) {
	output, err := runGit(ctx, dir, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	if filepath.IsAbs(output) {
		return output, nil
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(absDir, output), nil
}

// setGlobalHooksPath points core.hooksPath at path for the current user
func setGlobalHooksPath(ctx context.Context, path string) error {
	_, err := runGit(ctx, "", "config", "--global", "core.hooksPath", path)
	return err
}

// unsetGlobalHooksPath removes the user-level core.hooksPath.
// A missing key (exit status 5) is not an error.
func unsetGlobalHooksPath(ctx context.Context) error {
	_, err := runGit(ctx, "", "config", "--global", "--unset", "core.hooksPath")
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 5 {
		return nil
	}
	return err
}
