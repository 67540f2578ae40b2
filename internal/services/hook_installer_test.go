package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portsmocks "github.com/renato0307/trailhook/internal/ports/mocks"
)

func TestShimScript(t *testing.T) {
	script := ShimScript("/opt/my tools/trailhook", GitHookPostCommit)

	assert.Equal(t, "#!/bin/sh\n"+
		"# managed-by: trailhook\n"+
		"'/opt/my tools/trailhook' git-hook post-commit \"$@\" || true\n"+
		"exit 0\n", script)
	assert.True(t, IsManaged([]byte(script)))
	assert.False(t, IsManaged([]byte("#!/bin/sh\nnpx lint-staged\n")))
}

func TestHookInstaller_InstallIsIdempotent(t *testing.T) {
	hooksDir := filepath.Join(t.TempDir(), "hooks")
	git := portsmocks.NewMockHookConfigurator(t)
	git.EXPECT().RepoHooksDir(mock.Anything, "/repo").Return(hooksDir, nil).Times(2)
	installer := NewHookInstaller(git, "")
	params := InstallHooksParams{BinaryPath: "/usr/local/bin/trailhook", RepoDir: "/repo"}

	first, err := installer.Install(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, GitHookNames(), first.Changed)

	before := readHooks(t, hooksDir)

	second, err := installer.Install(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, second.Changed)
	assert.Equal(t, GitHookNames(), second.Unchanged)
	assert.Equal(t, before, readHooks(t, hooksDir))

	info, err := os.Stat(filepath.Join(hooksDir, GitHookPrePush))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0111, "shim must be executable")
}

func TestHookInstaller_LeavesUnmanagedHooksAlone(t *testing.T) {
	hooksDir := t.TempDir()
	custom := []byte("#!/bin/sh\nnpx lint-staged\n")
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, GitHookPostCommit), custom, 0755))

	git := portsmocks.NewMockHookConfigurator(t)
	git.EXPECT().RepoHooksDir(mock.Anything, "/repo").Return(hooksDir, nil).Times(2)
	installer := NewHookInstaller(git, "")

	result, err := installer.Install(context.Background(), InstallHooksParams{BinaryPath: "trailhook", RepoDir: "/repo"})
	require.NoError(t, err)
	assert.Equal(t, []string{GitHookPostCommit}, result.Skipped)
	assert.Len(t, result.Changed, 4)

	removed, err := installer.Uninstall(context.Background(), UninstallHooksParams{RepoDir: "/repo"})
	require.NoError(t, err)
	assert.Equal(t, []string{GitHookPostCommit}, removed.Skipped)
	assert.Len(t, removed.Changed, 4)

	content, err := os.ReadFile(filepath.Join(hooksDir, GitHookPostCommit))
	require.NoError(t, err)
	assert.Equal(t, custom, content)
	assert.NoFileExists(t, filepath.Join(hooksDir, GitHookPrePush))
}

func TestHookInstaller_RewritesOutdatedManagedShim(t *testing.T) {
	hooksDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, GitHookPostMerge),
		[]byte(ShimScript("/old/path/trailhook", GitHookPostMerge)), 0755))

	git := portsmocks.NewMockHookConfigurator(t)
	git.EXPECT().RepoHooksDir(mock.Anything, "/repo").Return(hooksDir, nil)

	result, err := NewHookInstaller(git, "").Install(context.Background(),
		InstallHooksParams{BinaryPath: "/new/trailhook", RepoDir: "/repo"})

	require.NoError(t, err)
	assert.Contains(t, result.Changed, GitHookPostMerge)
	content, err := os.ReadFile(filepath.Join(hooksDir, GitHookPostMerge))
	require.NoError(t, err)
	assert.Equal(t, ShimScript("/new/trailhook", GitHookPostMerge), string(content))
}

func TestHookInstaller_GlobalInstallSetsHooksPath(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "git-hooks")
	git := portsmocks.NewMockHookConfigurator(t)
	git.EXPECT().GlobalHooksPath(mock.Anything).Return("").Once()
	git.EXPECT().SetGlobalHooksPath(mock.Anything, globalDir).Return(nil).Once()

	result, err := NewHookInstaller(git, globalDir).Install(context.Background(),
		InstallHooksParams{BinaryPath: "trailhook", Global: true})

	require.NoError(t, err)
	assert.Equal(t, globalDir, result.HooksDir)
	assert.FileExists(t, filepath.Join(globalDir, GitHookPostCheckout))
}

func TestHookInstaller_GlobalInstallKeepsMatchingHooksPath(t *testing.T) {
	globalDir := t.TempDir()
	git := portsmocks.NewMockHookConfigurator(t)
	git.EXPECT().GlobalHooksPath(mock.Anything).Return(globalDir)

	_, err := NewHookInstaller(git, globalDir).Install(context.Background(),
		InstallHooksParams{BinaryPath: "trailhook", Global: true})

	require.NoError(t, err)
}

func TestHookInstaller_GlobalUninstall(t *testing.T) {
	tests := []struct {
		name        string
		currentPath func(dir string) string
		expectUnset bool
	}{
		{"unsets own hooks path", func(dir string) string { return dir }, true},
		{"keeps foreign hooks path", func(dir string) string { return "/elsewhere" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			globalDir := t.TempDir()
			git := portsmocks.NewMockHookConfigurator(t)
			git.EXPECT().GlobalHooksPath(mock.Anything).Return(tt.currentPath(globalDir))
			if tt.expectUnset {
				git.EXPECT().UnsetGlobalHooksPath(mock.Anything).Return(nil).Once()
			}

			result, err := NewHookInstaller(git, globalDir).Uninstall(context.Background(),
				UninstallHooksParams{Global: true})

			require.NoError(t, err)
			assert.Equal(t, GitHookNames(), result.Unchanged)
		})
	}
}

func TestHookInstaller_RequiresBinaryPath(t *testing.T) {
	_, err := NewHookInstaller(portsmocks.NewMockHookConfigurator(t), "").Install(context.Background(), InstallHooksParams{})

	assert.Error(t, err)
}

func readHooks(t *testing.T, dir string) map[string]string {
	t.Helper()
	hooks := make(map[string]string)
	for _, name := range GitHookNames() {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		hooks[name] = string(content)
	}
	return hooks
}
