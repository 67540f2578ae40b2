package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestGitSetup holds paths for a complete git test environment.
// It creates a bare repo (simulating remote/origin) and a clone with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Working repo with origin configured
	env          *TestEnvironment
	tb           testing.TB
}

// NewTestGitSetup creates a complete git environment with origin.
//  1. Creates a bare repo (simulates remote/origin)
//  2. Clones it to create a working repo with origin remote
//  3. Creates and pushes an initial commit on main
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/           <- git init --bare (acts as origin)
//	└── clone/          <- git clone bare/ clone/ (has origin remote)
func NewTestGitSetup(tb testing.TB, env *TestEnvironment) *TestGitSetup {
	tb.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		tb.Skip("git not installed")
	}

	baseDir := tb.TempDir()
	g := &TestGitSetup{
		BareRepoPath: filepath.Join(baseDir, "bare"),
		ClonePath:    filepath.Join(baseDir, "clone"),
		env:          env,
		tb:           tb,
	}

	g.Git(baseDir, "init", "--bare", g.BareRepoPath)
	g.Git(baseDir, "clone", g.BareRepoPath, g.ClonePath)

	g.WriteFile("README.md", "# Test Repo\n")
	g.Git(g.ClonePath, "add", "README.md")
	g.Git(g.ClonePath, "commit", "-m", "Initial commit")

	// Ensure branch is named "main" (git might default to "master")
	g.Git(g.ClonePath, "branch", "-M", "main")
	g.Git(g.ClonePath, "push", "-u", "origin", "main")

	return g
}

// WriteFile writes a file in the working repo.
func (g *TestGitSetup) WriteFile(name, content string) {
	g.tb.Helper()
	if err := os.WriteFile(filepath.Join(g.ClonePath, name), []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", name, err)
	}
}

// Git runs git in dir with the environment's isolation and fails the test on error.
func (g *TestGitSetup) Git(dir string, args ...string) CommandResult {
	g.tb.Helper()

	result := RunIn(g.tb, g.env, dir, "git", args...)
	if result.ExitCode != 0 {
		g.tb.Fatalf("git %v failed in %s (exit %d)\nStdout: %s\nStderr: %s",
			args, dir, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
