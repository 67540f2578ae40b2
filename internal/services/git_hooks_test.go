package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/domain"
	portsmocks "github.com/renato0307/trailhook/internal/ports/mocks"
)

const (
	testSHA    = "1111111111111111111111111111111111111111"
	testOldSHA = "2222222222222222222222222222222222222222"
)

type gitHooksFixture struct {
	emitter   *portsmocks.MockRecordEmitter
	estimator *portsmocks.MockTokenEstimator
	hooks     *GitHooks
	repo      *portsmocks.MockRepoInspector
}

func newGitHooksFixture(t *testing.T) gitHooksFixture {
	t.Helper()
	f := gitHooksFixture{
		emitter:   portsmocks.NewMockRecordEmitter(t),
		estimator: portsmocks.NewMockTokenEstimator(t),
		repo:      portsmocks.NewMockRepoInspector(t),
	}
	f.hooks = NewGitHooks(f.emitter, f.repo, f.estimator)
	return f
}

func TestGitHooks_PostCommit(t *testing.T) {
	tests := []struct {
		name         string
		parents      int
		expectedFrom string
		isMerge      bool
	}{
		{"regular commit", 1, testSHA + "^1", false},
		{"root commit", 0, "", false},
		{"merge commit", 2, testSHA + "^1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGitHooksFixture(t)
			f.repo.EXPECT().ResolveRev(mock.Anything, "/repo", "HEAD").Return(testSHA, nil)
			f.repo.EXPECT().CommitSubject(mock.Anything, "/repo", testSHA).Return("Fix login", nil)
			f.repo.EXPECT().CurrentBranch(mock.Anything, "/repo").Return("main")
			f.repo.EXPECT().ParentCount(mock.Anything, "/repo", testSHA).Return(tt.parents, nil)
			f.repo.EXPECT().DiffStats(mock.Anything, "/repo", tt.expectedFrom, testSHA).
				Return(domain.DiffStats{Deletions: 2, FilesChanged: 3, Insertions: 10}, nil)
			f.repo.EXPECT().DiffText(mock.Anything, "/repo", tt.expectedFrom, testSHA).Return("+line", nil)
			f.estimator.EXPECT().Estimate("+line").Return(42)
			f.emitter.EXPECT().Emit(mock.Anything).Return()

			rec, err := f.hooks.Handle(context.Background(), GitHookPostCommit,
				GitHookInput{Dir: "/repo"}, HookContext{Provider: "claude-code", SessionID: "s-1"})

			require.NoError(t, err)
			assert.Equal(t, domain.EventGitCommit, rec.EventType)
			assert.Equal(t, "s-1", rec.SessionID)
			assert.Equal(t, map[string]any{"branch": "main", "sha": testSHA}, rec.Context)
			assert.Equal(t, 42, rec.Metadata["diff_tokens_estimate"])
			assert.Equal(t, 10, rec.Metadata["insertions"])
			assert.Equal(t, tt.isMerge, rec.Metadata["is_merge_commit"])
			assert.Equal(t, "Fix login", rec.Metadata["subject"])
		})
	}
}

func TestGitHooks_PostCommitResolveFailureStillEmits(t *testing.T) {
	f := newGitHooksFixture(t)
	f.repo.EXPECT().ResolveRev(mock.Anything, "/repo", "HEAD").Return("", errors.New("no HEAD"))
	f.repo.EXPECT().CurrentBranch(mock.Anything, "/repo").Return("main")
	f.emitter.EXPECT().Emit(mock.MatchedBy(func(rec domain.Record) bool {
		return rec.EventType == domain.EventGitCommit
	})).Return()

	rec, err := f.hooks.Handle(context.Background(), GitHookPostCommit, GitHookInput{Dir: "/repo"}, HookContext{})

	assert.ErrorContains(t, err, "no HEAD")
	assert.Equal(t, domain.EventGitCommit, rec.EventType)
	assert.Equal(t, "main", rec.Context["branch"])
	assert.Contains(t, rec.Metadata[MetadataError], "no HEAD")
}

func TestGitHooks_PostCommitDiffStatsFailureKeepsComputedFields(t *testing.T) {
	f := newGitHooksFixture(t)
	f.repo.EXPECT().ResolveRev(mock.Anything, "/repo", "HEAD").Return(testSHA, nil)
	f.repo.EXPECT().CommitSubject(mock.Anything, "/repo", testSHA).Return("Fix login", nil)
	f.repo.EXPECT().CurrentBranch(mock.Anything, "/repo").Return("main")
	f.repo.EXPECT().ParentCount(mock.Anything, "/repo", testSHA).Return(1, nil)
	f.repo.EXPECT().DiffStats(mock.Anything, "/repo", testSHA+"^1", testSHA).
		Return(domain.DiffStats{}, errors.New("diff failed"))
	f.emitter.EXPECT().Emit(mock.Anything).Return()

	rec, err := f.hooks.Handle(context.Background(), GitHookPostCommit, GitHookInput{Dir: "/repo"}, HookContext{})

	require.Error(t, err)
	assert.Equal(t, testSHA, rec.Context["sha"])
	assert.Equal(t, "Fix login", rec.Metadata["subject"])
	assert.Equal(t, "post-commit: diff failed", rec.Metadata[MetadataError])
}

func TestGitHooks_PostCommitLargeDiffSkipsTokenizer(t *testing.T) {
	diff := strings.Repeat("+", MaxTokenizedDiffBytes+4)

	f := newGitHooksFixture(t)
	f.repo.EXPECT().ResolveRev(mock.Anything, "/repo", "HEAD").Return(testSHA, nil)
	f.repo.EXPECT().CommitSubject(mock.Anything, "/repo", testSHA).Return("Vendor deps", nil)
	f.repo.EXPECT().CurrentBranch(mock.Anything, "/repo").Return("main")
	f.repo.EXPECT().ParentCount(mock.Anything, "/repo", testSHA).Return(1, nil)
	f.repo.EXPECT().DiffStats(mock.Anything, "/repo", testSHA+"^1", testSHA).Return(domain.DiffStats{}, nil)
	f.repo.EXPECT().DiffText(mock.Anything, "/repo", testSHA+"^1", testSHA).Return(diff, nil)
	f.emitter.EXPECT().Emit(mock.Anything).Return()

	rec, err := f.hooks.Handle(context.Background(), GitHookPostCommit, GitHookInput{Dir: "/repo"}, HookContext{})

	require.NoError(t, err)
	assert.Equal(t, len(diff)/4, rec.Metadata["diff_tokens_estimate"])
	f.estimator.AssertNotCalled(t, "Estimate", mock.Anything)
}

func TestGitHooks_PrePush(t *testing.T) {
	stdin := strings.Join([]string{
		"refs/heads/main " + testSHA + " refs/heads/main " + testOldSHA,
		"refs/heads/feature " + testSHA + " refs/heads/feature " + domain.NullSHA,
		"(delete) " + domain.NullSHA + " refs/heads/old " + testOldSHA,
		"garbage line",
	}, "\n")

	f := newGitHooksFixture(t)
	f.repo.EXPECT().CountCommits(mock.Anything, "/repo", testOldSHA+".."+testSHA).Return(2, nil)
	f.repo.EXPECT().CountCommits(mock.Anything, "/repo", testSHA, "--not", "--remotes=origin").Return(3, nil)
	f.emitter.EXPECT().Emit(mock.Anything).Return()

	rec, err := f.hooks.Handle(context.Background(), GitHookPrePush, GitHookInput{
		Args:  []string{"origin", "git@github.com:owner/repo.git"},
		Dir:   "/repo",
		Stdin: strings.NewReader(stdin),
	}, HookContext{})

	require.NoError(t, err)
	payload, err := domain.DecodePayload(rec)
	require.NoError(t, err)
	push := payload.(*domain.GitPush)
	assert.Equal(t, "origin", push.Remote)
	assert.Equal(t, "git@github.com:owner/repo.git", push.RemoteURL)
	assert.Equal(t, 5, push.CommitCount)
	assert.True(t, push.NewBranch)
	assert.True(t, push.Delete)
	assert.Len(t, push.Refs, 3)
}

func TestGitHooks_PrePushLooksUpRemoteURL(t *testing.T) {
	f := newGitHooksFixture(t)
	f.repo.EXPECT().RemoteURL(mock.Anything, "/repo", "origin").Return("https://example.com/repo.git")
	f.emitter.EXPECT().Emit(mock.Anything).Return()

	rec, err := f.hooks.Handle(context.Background(), GitHookPrePush,
		GitHookInput{Args: []string{"origin"}, Dir: "/repo"}, HookContext{})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/repo.git", rec.Metadata["remote_url"])
	assert.Equal(t, 0, rec.Metadata["commit_count"])
}

func TestGitHooks_PostMerge(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		reflogAction    string
		expectedSquash  bool
		expectedTrigger string
	}{
		{"plain merge", []string{"0"}, "merge feature", false, ""},
		{"squash merge", []string{"1"}, "", true, ""},
		{"merge pull", []string{"0"}, "pull origin main", false, TriggerPull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGitHooksFixture(t)
			f.repo.EXPECT().ResolveRev(mock.Anything, "/repo", "HEAD").Return(testSHA, nil)
			f.repo.EXPECT().ResolveRev(mock.Anything, "/repo", "ORIG_HEAD").Return(testOldSHA, nil)
			f.repo.EXPECT().CurrentBranch(mock.Anything, "/repo").Return("main")
			f.repo.EXPECT().DiffStats(mock.Anything, "/repo", "ORIG_HEAD", testSHA).
				Return(domain.DiffStats{Deletions: 1, FilesChanged: 1, Insertions: 4}, nil)
			f.emitter.EXPECT().Emit(mock.Anything).Return()

			rec, err := f.hooks.Handle(context.Background(), GitHookPostMerge, GitHookInput{
				Args:         tt.args,
				Dir:          "/repo",
				ReflogAction: tt.reflogAction,
			}, HookContext{})

			require.NoError(t, err)
			payload, err := domain.DecodePayload(rec)
			require.NoError(t, err)
			merge := payload.(*domain.GitMerge)
			assert.Equal(t, tt.expectedSquash, merge.Squash)
			assert.Equal(t, tt.expectedTrigger, merge.Trigger)
			assert.Equal(t, 4, merge.Insertions)
			assert.Equal(t, testSHA, merge.SHA)
		})
	}
}

func TestGitHooks_PostRewrite(t *testing.T) {
	tests := []struct {
		name          string
		rewriteType   string
		stdin         string
		reflogAction  string
		expectedCount int
		expectedTrig  string
	}{
		{"amend", "amend", testOldSHA + " " + testSHA + "\n", "", 1, ""},
		{"rebase pull", "rebase", "a b\nc d\ne f\n", "pull --rebase origin", 3, TriggerPull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGitHooksFixture(t)
			f.repo.EXPECT().CurrentBranch(mock.Anything, "/repo").Return("main")
			f.repo.EXPECT().ResolveRev(mock.Anything, "/repo", "HEAD").Return(testSHA, nil)
			f.emitter.EXPECT().Emit(mock.Anything).Return()

			rec, err := f.hooks.Handle(context.Background(), GitHookPostRewrite, GitHookInput{
				Args:         []string{tt.rewriteType},
				Dir:          "/repo",
				ReflogAction: tt.reflogAction,
				Stdin:        strings.NewReader(tt.stdin),
			}, HookContext{})

			require.NoError(t, err)
			assert.Equal(t, tt.rewriteType, rec.Context["rewrite_type"])
			assert.Equal(t, tt.expectedCount, rec.Metadata["rewritten_count"])
			if tt.expectedTrig == "" {
				assert.NotContains(t, rec.Metadata, "trigger")
			} else {
				assert.Equal(t, tt.expectedTrig, rec.Metadata["trigger"])
			}
		})
	}
}

func TestGitHooks_PostCheckout(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedType string
		isClone      bool
	}{
		{"branch switch", []string{testOldSHA, testSHA, "1"}, "branch", false},
		{"file checkout", []string{testSHA, testSHA, "0"}, "file", false},
		{"clone", []string{domain.NullSHA, testSHA, "1"}, "branch", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGitHooksFixture(t)
			f.repo.EXPECT().CurrentBranch(mock.Anything, "/repo").Return("main")
			f.emitter.EXPECT().Emit(mock.Anything).Return()

			rec, err := f.hooks.Handle(context.Background(), GitHookPostCheckout,
				GitHookInput{Args: tt.args, Dir: "/repo"}, HookContext{})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, rec.Metadata["checkout_type"])
			assert.Equal(t, tt.isClone, rec.Metadata["is_clone"])
			assert.Equal(t, testSHA, rec.Context["new_sha"])
		})
	}
}

func TestGitHooks_PostCheckoutMissingArgs(t *testing.T) {
	f := newGitHooksFixture(t)
	f.repo.EXPECT().CurrentBranch(mock.Anything, "").Return("main")
	f.emitter.EXPECT().Emit(mock.Anything).Return()

	rec, err := f.hooks.Handle(context.Background(), GitHookPostCheckout,
		GitHookInput{Args: []string{testSHA}}, HookContext{})

	assert.Error(t, err)
	assert.Equal(t, domain.EventGitCheckout, rec.EventType)
	assert.Equal(t, testSHA, rec.Metadata["previous_sha"])
	assert.Contains(t, rec.Metadata, MetadataError)
}

func TestGitHooks_UnknownHook(t *testing.T) {
	f := newGitHooksFixture(t)

	_, err := f.hooks.Handle(context.Background(), "pre-commit", GitHookInput{}, HookContext{})

	assert.ErrorIs(t, err, domain.ErrUnknownGitHook)
}

func TestGitHooks_EventTypesMatchOwnership(t *testing.T) {
	f := newGitHooksFixture(t)

	assert.ElementsMatch(t, domain.OwnedTypes(domain.OwnerGitHooks), f.hooks.EventTypes())
	assert.Equal(t, []string{"post-checkout", "post-commit", "post-merge", "post-rewrite", "pre-push"}, GitHookNames())
}
