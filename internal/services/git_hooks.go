package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// Git hook names
const (
	GitHookPostCheckout = "post-checkout"
	GitHookPostCommit   = "post-commit"
	GitHookPostMerge    = "post-merge"
	GitHookPostRewrite  = "post-rewrite"
	GitHookPrePush      = "pre-push"
)

// TriggerPull marks merges and rebases that were part of a git pull
const TriggerPull = "pull"

// MetadataError is the metadata key carrying why some fields of a git record are missing
const MetadataError = "error"

// MaxTokenizedDiffBytes bounds the diff run through the tokenizer; larger diffs
// are estimated at four bytes per token so a huge commit never stalls git
const MaxTokenizedDiffBytes = 1 << 20

// gitHookTypes maps each git hook to the one event type it emits
var gitHookTypes = map[string]domain.EventType{
	GitHookPostCheckout: domain.EventGitCheckout,
	GitHookPostCommit:   domain.EventGitCommit,
	GitHookPostMerge:    domain.EventGitMerge,
	GitHookPostRewrite:  domain.EventGitRewrite,
	GitHookPrePush:      domain.EventGitPush,
}

// GitHookNames returns the git hooks handled, sorted
func GitHookNames() []string {
	names := make([]string, 0, len(gitHookTypes))
	for name := range gitHookTypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GitHooks builds event records from the result of completed git operations
// and emits them on the secondary channel
type GitHooks struct {
	emitter   ports.RecordEmitter
	estimator ports.TokenEstimator
	now       func() time.Time
	repo      ports.RepoInspector
}

// NewGitHooks creates a new GitHooks
func NewGitHooks(
	emitter ports.RecordEmitter,
	repo ports.RepoInspector,
	estimator ports.TokenEstimator,
) *GitHooks {
	return &GitHooks{
		emitter:   emitter,
		estimator: estimator,
		now:       time.Now,
		repo:      repo,
	}
}

// EventTypes returns every event type the git hooks can emit
func (g *GitHooks) EventTypes() []domain.EventType {
	types := make([]domain.EventType, 0, len(gitHookTypes))
	for _, t := range gitHookTypes {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Handle computes and emits the record for one git hook invocation.
// When a git query fails the record is still emitted with the fields that could
// be computed and an "error" metadata field; the error is also returned.
func (g *GitHooks) Handle(
	ctx context.Context,
	name string,
	in GitHookInput,
	hc HookContext,
) (domain.Record, error) {
	var (
		payload domain.Payload
		err     error
	)

	switch name {
	case GitHookPostCommit:
		payload, err = g.postCommit(ctx, in)
	case GitHookPrePush:
		payload, err = g.prePush(ctx, in)
	case GitHookPostMerge:
		payload, err = g.postMerge(ctx, in)
	case GitHookPostRewrite:
		payload, err = g.postRewrite(ctx, in)
	case GitHookPostCheckout:
		payload, err = g.postCheckout(ctx, in)
	default:
		return domain.Record{}, fmt.Errorf("%w: %q", domain.ErrUnknownGitHook, name)
	}

	rec := domain.NewRecord(domain.Envelope{
		At:        g.now(),
		Provider:  hc.Provider,
		SessionID: resolveSessionID(hc.SessionID, ""),
	}, payload)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
		rec.Metadata[MetadataError] = err.Error()
	}

	g.emitter.Emit(rec)
	logging.Logger.Debug("Git hook emitted", "hook", name, "event_type", rec.EventType, "error", err)
	return rec, err
}

func (g *GitHooks) postCommit(ctx context.Context, in GitHookInput) (domain.Payload, error) {
	var commit domain.GitCommit

	sha, err := g.repo.ResolveRev(ctx, in.Dir, "HEAD")
	if err != nil {
		commit.Branch = g.repo.CurrentBranch(ctx, in.Dir)
		return commit, err
	}
	commit.SHA = sha

	var parents int
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		commit.Subject, err = g.repo.CommitSubject(egCtx, in.Dir, sha)
		return err
	})
	eg.Go(func() error {
		commit.Branch = g.repo.CurrentBranch(egCtx, in.Dir)
		return nil
	})
	eg.Go(func() error {
		var err error
		parents, err = g.repo.ParentCount(egCtx, in.Dir, sha)
		return err
	})
	if err := eg.Wait(); err != nil {
		return commit, err
	}
	commit.IsMergeCommit = parents > 1

	// Root commits diff against the empty tree
	from := ""
	if parents > 0 {
		from = sha + "^1"
	}

	stats, err := g.repo.DiffStats(ctx, in.Dir, from, sha)
	if err != nil {
		return commit, err
	}
	commit.Deletions = stats.Deletions
	commit.FilesChanged = stats.FilesChanged
	commit.Insertions = stats.Insertions

	if diff, err := g.repo.DiffText(ctx, in.Dir, from, sha); err != nil {
		logging.Logger.Warn("Failed to read commit diff, no token estimate", "error", err)
	} else {
		commit.DiffTokensEstimate = g.estimateDiffTokens(diff)
	}

	return commit, nil
}

// estimateDiffTokens tokenizes diffs up to MaxTokenizedDiffBytes and approximates larger ones
func (g *GitHooks) estimateDiffTokens(diff string) int {
	if len(diff) > MaxTokenizedDiffBytes {
		return len(diff) / 4
	}
	return g.estimator.Estimate(diff)
}

// prePush receives "<remote> <url>" as arguments and one
// "<local ref> <local sha> <remote ref> <remote sha>" line per ref on stdin
func (g *GitHooks) prePush(ctx context.Context, in GitHookInput) (domain.Payload, error) {
	push := domain.GitPush{Refs: []domain.PushRef{}}
	if len(in.Args) > 0 {
		push.Remote = in.Args[0]
	}
	if len(in.Args) > 1 {
		push.RemoteURL = in.Args[1]
	}
	if push.RemoteURL == "" && push.Remote != "" {
		push.RemoteURL = g.repo.RemoteURL(ctx, in.Dir, push.Remote)
	}

	refs, err := parsePushRefs(in.Stdin)
	if err != nil {
		return push, err
	}

	for _, ref := range refs {
		push.Refs = append(push.Refs, ref)

		if ref.LocalSHA == domain.NullSHA {
			push.Delete = true
			continue
		}

		var revs []string
		if ref.RemoteSHA == domain.NullSHA {
			push.NewBranch = true
			revs = []string{ref.LocalSHA, "--not", "--remotes=" + push.Remote}
		} else {
			revs = []string{ref.RemoteSHA + ".." + ref.LocalSHA}
		}

		count, err := g.repo.CountCommits(ctx, in.Dir, revs...)
		if err != nil {
			logging.Logger.Warn("Failed to count pushed commits", "ref", ref.LocalRef, "error", err)
			continue
		}
		push.CommitCount += count
	}

	return push, nil
}

func parsePushRefs(r io.Reader) ([]domain.PushRef, error) {
	if r == nil {
		return nil, nil
	}

	var refs []domain.PushRef
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			continue
		}
		refs = append(refs, domain.PushRef{
			LocalRef:  fields[0],
			LocalSHA:  fields[1],
			RemoteRef: fields[2],
			RemoteSHA: fields[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pushed refs: %w", err)
	}
	return refs, nil
}

// postMerge receives the squash flag as its only argument
func (g *GitHooks) postMerge(ctx context.Context, in GitHookInput) (domain.Payload, error) {
	merge := domain.GitMerge{
		Branch:  g.repo.CurrentBranch(ctx, in.Dir),
		Squash:  len(in.Args) > 0 && in.Args[0] == "1",
		Trigger: pullTrigger(in.ReflogAction),
	}

	sha, err := g.repo.ResolveRev(ctx, in.Dir, "HEAD")
	if err != nil {
		return merge, err
	}
	merge.SHA = sha

	// Without ORIG_HEAD there is nothing to diff against
	if _, err := g.repo.ResolveRev(ctx, in.Dir, "ORIG_HEAD"); err == nil {
		stats, err := g.repo.DiffStats(ctx, in.Dir, "ORIG_HEAD", sha)
		if err != nil {
			logging.Logger.Warn("Failed to compute merge stats", "error", err)
		}
		merge.Deletions = stats.Deletions
		merge.FilesChanged = stats.FilesChanged
		merge.Insertions = stats.Insertions
	}

	return merge, nil
}

// postRewrite receives "amend" or "rebase" as argument and one
// "<old sha> <new sha>" line per rewritten commit on stdin
func (g *GitHooks) postRewrite(ctx context.Context, in GitHookInput) (domain.Payload, error) {
	rewrite := domain.GitRewrite{
		Branch:  g.repo.CurrentBranch(ctx, in.Dir),
		Trigger: pullTrigger(in.ReflogAction),
	}
	if len(in.Args) > 0 {
		rewrite.RewriteType = in.Args[0]
	}

	sha, err := g.repo.ResolveRev(ctx, in.Dir, "HEAD")
	if err != nil {
		return rewrite, err
	}
	rewrite.SHA = sha

	if in.Stdin != nil {
		scanner := bufio.NewScanner(in.Stdin)
		for scanner.Scan() {
			if len(strings.Fields(scanner.Text())) >= 2 {
				rewrite.RewrittenCount++
			}
		}
		if err := scanner.Err(); err != nil {
			return rewrite, fmt.Errorf("failed to read rewritten commits: %w", err)
		}
	}

	return rewrite, nil
}

// postCheckout receives "<previous sha> <new sha> <flag>" where flag 1 is a branch checkout
func (g *GitHooks) postCheckout(ctx context.Context, in GitHookInput) (domain.Payload, error) {
	checkout := domain.GitCheckout{Branch: g.repo.CurrentBranch(ctx, in.Dir)}
	if len(in.Args) > 0 {
		checkout.PreviousSHA = in.Args[0]
		checkout.IsClone = in.Args[0] == domain.NullSHA
	}
	if len(in.Args) > 1 {
		checkout.NewSHA = in.Args[1]
	}
	if len(in.Args) < 3 {
		return checkout, fmt.Errorf("expected 3 arguments, got %d", len(in.Args))
	}

	checkout.CheckoutType = "file"
	if in.Args[2] == "1" {
		checkout.CheckoutType = "branch"
	}
	return checkout, nil
}

func pullTrigger(reflogAction string) string {
	if strings.HasPrefix(reflogAction, TriggerPull) {
		return TriggerPull
	}
	return ""
}
