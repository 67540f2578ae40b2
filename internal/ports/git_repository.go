package ports

import (
	"context"

	"github.com/renato0307/trailhook/internal/domain"
)

// RepoInspector queries the result of a completed git operation
type RepoInspector interface {
	CommitSubject(ctx context.Context, dir, rev string) (string, error)
	CountCommits(ctx context.Context, dir string, revs ...string) (int, error)
	CurrentBranch(ctx context.Context, dir string) string
	DiffStats(ctx context.Context, dir, from, to string) (domain.DiffStats, error)
	DiffText(ctx context.Context, dir, from, to string) (string, error)
	ParentCount(ctx context.Context, dir, rev string) (int, error)
	RemoteURL(ctx context.Context, dir, remote string) string
	ResolveRev(ctx context.Context, dir, rev string) (string, error)
}

// HookConfigurator locates and configures where git looks for hooks
type HookConfigurator interface {
	GlobalHooksPath(ctx context.Context) string
	RepoHooksDir(ctx context.Context, dir string) (string, error)
	SetGlobalHooksPath(ctx context.Context, path string) error
	UnsetGlobalHooksPath(ctx context.Context) error
}

// GitRepository is the composite interface
type GitRepository interface {
	HookConfigurator
	RepoInspector
}
