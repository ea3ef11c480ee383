package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresRepo(t *testing.T) {
	t.Setenv(EnvRepoRoot, "")

	_, err := New("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestNewFromEnv(t *testing.T) {
	repo := t.TempDir()
	t.Setenv(EnvRepoRoot, repo)

	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, repo, p.RepoRoot())
}

func TestConfigRootOverride(t *testing.T) {
	t.Setenv(EnvConfigRoot, "/custom/config")

	p, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/custom/config", p.ConfigRoot())
}

func TestBackupDirDefault(t *testing.T) {
	t.Setenv(EnvBackupDir, "")

	p, err := New(t.TempDir())
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, BackupDirName), p.BackupDir())
}

func TestBackupDirOverride(t *testing.T) {
	t.Setenv(EnvBackupDir, "/tmp/backups")

	p, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/backups", p.BackupDir())
}

func TestWidgetPath(t *testing.T) {
	repo := t.TempDir()
	p, err := New(repo)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(repo, "statusbar"), p.WidgetPath("statusbar"))
	assert.Equal(t, filepath.Join(repo, GitReposDirName), p.GitReposDir())
	assert.Equal(t, filepath.Join(repo, RepoConfigFile), p.RepoConfigPath())
}

func TestFindSupportFile(t *testing.T) {
	repo := t.TempDir()
	configRoot := t.TempDir()
	t.Setenv(EnvConfigRoot, configRoot)

	p, err := New(repo)
	require.NoError(t, err)

	// Nothing exists: default to the repo-root location
	assert.Equal(t, filepath.Join(repo, RepoListFile), p.FindSupportFile(RepoListFile))

	// Config-root copy wins when it is the only one
	require.NoError(t, os.WriteFile(filepath.Join(configRoot, RepoListFile), []byte("#"), 0644))
	assert.Equal(t, filepath.Join(configRoot, RepoListFile), p.FindSupportFile(RepoListFile))

	// Repo-root copy has priority over the config-root one
	require.NoError(t, os.WriteFile(filepath.Join(repo, RepoListFile), []byte("#"), 0644))
	assert.Equal(t, filepath.Join(repo, RepoListFile), p.FindSupportFile(RepoListFile))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "dots"), ExpandHome("~/dots"))
	assert.Equal(t, "/absolute/path", ExpandHome("/absolute/path"))
	assert.Equal(t, "relative", ExpandHome("relative"))
}
