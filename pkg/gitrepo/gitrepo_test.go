package gitrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/gitrepo"
	"github.com/dotvar/dotvar/pkg/repolist"
	"github.com/dotvar/dotvar/pkg/testutil"
	"github.com/dotvar/dotvar/pkg/types"
)

const gitDir = "/dotfiles/git_repos"

type gitCall struct {
	dir  string
	args []string
}

func fakeGit(calls *[]gitCall, fsys types.FS, failWith error) gitrepo.CommandRunner {
	return func(_ context.Context, dir string, args ...string) ([]byte, error) {
		*calls = append(*calls, gitCall{dir: dir, args: args})
		if failWith != nil {
			return []byte("fatal: remote error"), failWith
		}
		// A successful clone materializes the target directory.
		if args[0] == "clone" {
			if err := fsys.MkdirAll(args[2], 0755); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}
}

func TestEnsureClonesMissingRepo(t *testing.T) {
	fsys := testutil.MemFS()
	var calls []gitCall
	client := gitrepo.NewClientWithRunner(fsys, gitDir, fakeGit(&calls, fsys, nil))

	repo := repolist.Repo{Name: "theme", URL: "https://example.com/theme.git"}
	local, err := client.Ensure(context.Background(), repo, false)
	require.NoError(t, err)
	assert.Equal(t, gitDir+"/theme", local)

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"clone", "https://example.com/theme.git", gitDir + "/theme"}, calls[0].args)
}

func TestEnsureExistingRepoWithoutUpdate(t *testing.T) {
	fsys := testutil.MemFS()
	require.NoError(t, fsys.MkdirAll(gitDir+"/theme", 0755))

	var calls []gitCall
	client := gitrepo.NewClientWithRunner(fsys, gitDir, fakeGit(&calls, fsys, nil))

	local, err := client.Ensure(context.Background(), repolist.Repo{Name: "theme"}, false)
	require.NoError(t, err)
	assert.Equal(t, gitDir+"/theme", local)
	assert.Empty(t, calls, "existing clone must not touch git without update")
}

func TestEnsurePullsOnUpdate(t *testing.T) {
	fsys := testutil.MemFS()
	require.NoError(t, fsys.MkdirAll(gitDir+"/theme", 0755))

	var calls []gitCall
	client := gitrepo.NewClientWithRunner(fsys, gitDir, fakeGit(&calls, fsys, nil))

	_, err := client.Ensure(context.Background(), repolist.Repo{Name: "theme"}, true)
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, gitDir+"/theme", calls[0].dir)
	assert.Equal(t, []string{"pull"}, calls[0].args)
}

func TestEnsureCloneFailure(t *testing.T) {
	fsys := testutil.MemFS()
	var calls []gitCall
	client := gitrepo.NewClientWithRunner(fsys, gitDir,
		fakeGit(&calls, fsys, assert.AnError))

	_, err := client.Ensure(context.Background(),
		repolist.Repo{Name: "theme", URL: "https://example.com/theme.git"}, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGitClone))
	assert.Equal(t, "fatal: remote error", errors.GetErrorDetails(err)["output"])
}

func TestEnsurePullFailure(t *testing.T) {
	fsys := testutil.MemFS()
	require.NoError(t, fsys.MkdirAll(gitDir+"/theme", 0755))

	var calls []gitCall
	client := gitrepo.NewClientWithRunner(fsys, gitDir,
		fakeGit(&calls, fsys, assert.AnError))

	_, err := client.Ensure(context.Background(), repolist.Repo{Name: "theme"}, true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGitPull))
}

func TestCheckCompatibility(t *testing.T) {
	b := testutil.NewRepo(t, "/clone").
		File("bar", "hyprland", "waybar", "config.jsonc", "x").
		File("bar", "default", "waybar", "config.jsonc", "y").
		File("launcher", "sway", "wofi", "config", "z").
		WriteFile("/clone/.git/HEAD", "ref: refs/heads/main").
		WriteFile("/clone/README.md", "# dots")

	compat := gitrepo.CheckCompatibility(b.FS, "/clone")

	assert.True(t, compat.Compatible)
	assert.Equal(t, []string{"bar", "launcher"}, compat.Widgets)
	assert.Equal(t, []string{"hyprland", "sway"}, compat.Environments)
	assert.Equal(t, []string{"waybar", "wofi"}, compat.Programs)
	assert.Empty(t, compat.Issues)
}

func TestCheckCompatibilityEmptyRepo(t *testing.T) {
	fsys := testutil.MemFS()
	require.NoError(t, fsys.MkdirAll("/clone", 0755))

	compat := gitrepo.CheckCompatibility(fsys, "/clone")

	assert.False(t, compat.Compatible)
	assert.Contains(t, compat.Issues, "no widget directories found")
}
