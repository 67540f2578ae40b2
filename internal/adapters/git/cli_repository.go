package git

import (
	"context"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct{}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// RepoInspector methods

// CommitSubject implements RepoInspector.CommitSubject
func (r *CLIRepository) CommitSubject(ctx context.Context, dir, rev string) (string, error) {
	return commitSubject(ctx, dir, rev)
}

// CountCommits implements RepoInspector.CountCommits
func (r *CLIRepository) CountCommits(ctx context.Context, dir string, revs ...string) (int, error) {
	return countCommits(ctx, dir, revs...)
}

// CurrentBranch implements RepoInspector.CurrentBranch
func (r *CLIRepository) CurrentBranch(ctx context.Context, dir string) string {
	return currentBranch(ctx, dir)
}

// DiffStats implements RepoInspector.DiffStats
func (r *CLIRepository) DiffStats(ctx context.Context, dir, from, to string) (domain.DiffStats, error) {
	return diffStats(ctx, dir, from, to)
}

// DiffText implements RepoInspector.DiffText
func (r *CLIRepository) DiffText(ctx context.Context, dir, from, to string) (string, error) {
	return diffText(ctx, dir, from, to)
}

// ParentCount implements RepoInspector.ParentCount
func (r *CLIRepository) ParentCount(ctx context.Context, dir, rev string) (int, error) {
	return parentCount(ctx, dir, rev)
}

// RemoteURL implements RepoInspector.RemoteURL
func (r *CLIRepository) RemoteURL(ctx context.Context, dir, remote string) string {
	return remoteURL(ctx, dir, remote)
}

// ResolveRev implements RepoInspector.ResolveRev
func (r *CLIRepository) ResolveRev(ctx context.Context, dir, rev string) (string, error) {
	return resolveRev(ctx, dir, rev)
}

// HookConfigurator methods

// GlobalHooksPath implements HookConfigurator.GlobalHooksPath
func (r *CLIRepository) GlobalHooksPath(ctx context.Context) string {
	return globalHooksPath(ctx)
}

// RepoHooksDir implements HookConfigurator.RepoHooksDir
func (r *CLIRepository) RepoHooksDir(ctx context.Context, dir string) (string, error) {
	return repoHooksDir(ctx, dir)
}

// SetGlobalHooksPath implements HookConfigurator.SetGlobalHooksPath
func (r *CLIRepository) SetGlobalHooksPath(ctx context.Context, path string) error {
	return setGlobalHooksPath(ctx, path)
}

// UnsetGlobalHooksPath implements HookConfigurator.UnsetGlobalHooksPath
func (r *CLIRepository) UnsetGlobalHooksPath(ctx context.Context) error {
	return unsetGlobalHooksPath(ctx)
}
