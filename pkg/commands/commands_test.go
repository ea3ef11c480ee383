package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotvar/dotvar/pkg/commands"
	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/paths"
	"github.com/dotvar/dotvar/pkg/types"
)

// seedRepo writes a small widget tree onto the real filesystem.
func seedRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"bar/hyprland/waybar/config.jsonc": "hypr bar",
		"bar/default/waybar/config.jsonc":  "plain bar",
		"launcher/default/wofi/config":     "wofi",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func hyprlandEnv() map[string]string {
	return map[string]string{
		"window_manager": "hyprland",
		"shell":          "zsh",
		"terminal":       "kitty",
	}
}

func TestInstall(t *testing.T) {
	root := seedRepo(t)
	configRoot := t.TempDir()
	t.Setenv(paths.EnvConfigRoot, configRoot)
	t.Setenv(paths.EnvBackupDir, t.TempDir())

	result, err := commands.Install(commands.InstallOptions{
		RepoRoot:    root,
		Environment: hyprlandEnv(),
	})
	require.NoError(t, err)

	require.Len(t, result.Widgets, 2)
	assert.Empty(t, result.FailedFiles())

	data, err := os.ReadFile(filepath.Join(configRoot, "waybar", "config.jsonc"))
	require.NoError(t, err)
	assert.Equal(t, "hypr bar", string(data))

	_, err = os.Stat(filepath.Join(configRoot, "wofi", "config"))
	assert.NoError(t, err)
}

func TestInstallDryRun(t *testing.T) {
	root := seedRepo(t)
	configRoot := t.TempDir()
	t.Setenv(paths.EnvConfigRoot, configRoot)
	t.Setenv(paths.EnvBackupDir, t.TempDir())

	result, err := commands.Install(commands.InstallOptions{
		RepoRoot:    root,
		DryRun:      true,
		Environment: hyprlandEnv(),
	})
	require.NoError(t, err)
	assert.True(t, result.DryRun)

	entries, err := os.ReadDir(configRoot)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not write into the config root")
}

func TestInstallUnknownWidget(t *testing.T) {
	root := seedRepo(t)
	t.Setenv(paths.EnvConfigRoot, t.TempDir())

	_, err := commands.Install(commands.InstallOptions{
		RepoRoot:    root,
		Widget:      "nope",
		Environment: hyprlandEnv(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWidgetNotFound))
}

func TestList(t *testing.T) {
	root := seedRepo(t)
	t.Setenv(paths.EnvConfigRoot, t.TempDir())

	widgets, err := commands.List(commands.ListOptions{RepoRoot: root})
	require.NoError(t, err)

	var names []string
	for _, w := range widgets {
		names = append(names, w.Name)
	}
	assert.Equal(t, []string{"bar", "launcher"}, names)
}

func TestInfo(t *testing.T) {
	root := seedRepo(t)
	t.Setenv(paths.EnvConfigRoot, t.TempDir())

	widget, err := commands.Info(commands.InfoOptions{RepoRoot: root, Widget: "bar"})
	require.NoError(t, err)
	assert.Equal(t, "bar", widget.Name)
	assert.Equal(t, []string{"default", "hyprland"}, widget.VariantNames())

	_, err = commands.Info(commands.InfoOptions{RepoRoot: root, Widget: "nope"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrWidgetNotFound))
}

func TestDetectReturnsCompleteFingerprint(t *testing.T) {
	fp := commands.Detect()
	for _, dim := range types.Dimensions {
		assert.NotEmpty(t, fp.Value(dim))
	}
}

func TestRepoRegistry(t *testing.T) {
	root := seedRepo(t)
	t.Setenv(paths.EnvConfigRoot, t.TempDir())

	repos, err := commands.ListRepos(commands.ListReposOptions{RepoRoot: root})
	require.NoError(t, err)
	assert.Empty(t, repos)

	require.NoError(t, os.WriteFile(filepath.Join(root, paths.RepoListFile),
		[]byte("theme|https://example.com/theme.git|A theme|hyprland\n"), 0644))

	repos, err = commands.ListRepos(commands.ListReposOptions{RepoRoot: root})
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "theme", repos[0].Name)

	repos, err = commands.ListRepos(commands.ListReposOptions{
		RepoRoot: root, Tags: []string{"sway"},
	})
	require.NoError(t, err)
	assert.Empty(t, repos)

	require.NoError(t, commands.RemoveRepo(commands.RemoveRepoOptions{
		RepoRoot: root, Name: "theme",
	}))
	repos, err = commands.ListRepos(commands.ListReposOptions{RepoRoot: root})
	require.NoError(t, err)
	assert.Empty(t, repos)
}
