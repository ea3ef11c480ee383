// Package gitrepo clones and updates compatible dotfile repositories
// under the repository's git_repos directory, and checks whether a
// cloned tree follows the widget/variant/program layout.
package gitrepo

import (
	"context"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/repolist"
	"github.com/dotvar/dotvar/pkg/types"
)

// CommandRunner executes git with the given arguments in dir. Tests
// inject a fake; the default shells out to the git binary.
type CommandRunner func(ctx context.Context, dir string, args ...string) ([]byte, error)

func execGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Client manages local clones under a git_repos directory.
type Client struct {
	fs      types.FS
	gitDir  string
	run     CommandRunner
	logger  zerolog.Logger
}

// NewClient creates a client cloning into gitReposDir.
func NewClient(fsys types.FS, gitReposDir string) *Client {
	return &Client{
		fs:     fsys,
		gitDir: gitReposDir,
		run:    execGit,
		logger: logging.GetLogger("gitrepo"),
	}
}

// NewClientWithRunner creates a client with an injected git runner.
func NewClientWithRunner(fsys types.FS, gitReposDir string, run CommandRunner) *Client {
	c := NewClient(fsys, gitReposDir)
	c.run = run
	return c
}

// LocalPath returns where the named repository is (or would be) cloned.
func (c *Client) LocalPath(name string) string {
	return filepath.Join(c.gitDir, name)
}

// Ensure makes the repository available locally: clones it when
// missing, pulls when it exists and update is requested, and otherwise
// leaves the existing clone alone. Returns the local path.
func (c *Client) Ensure(ctx context.Context, repo repolist.Repo, update bool) (string, error) {
	local := c.LocalPath(repo.Name)

	if err := c.fs.MkdirAll(c.gitDir, 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrDirCreate, "failed to create git repos directory").
			WithDetail("path", c.gitDir)
	}

	if _, err := c.fs.Stat(local); err == nil {
		if !update {
			c.logger.Debug().
				Str("repo", repo.Name).
				Msg("Repository already cloned")
			return local, nil
		}
		c.logger.Info().Str("repo", repo.Name).Msg("Updating repository")
		out, err := c.run(ctx, local, "pull")
		if err != nil {
			return "", errors.Wrap(err, errors.ErrGitPull, "git pull failed").
				WithDetail("repo", repo.Name).
				WithDetail("output", strings.TrimSpace(string(out)))
		}
		return local, nil
	}

	c.logger.Info().
		Str("repo", repo.Name).
		Str("url", repo.URL).
		Msg("Cloning repository")
	out, err := c.run(ctx, "", "clone", repo.URL, local)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrGitClone, "git clone failed").
			WithDetail("repo", repo.Name).
			WithDetail("url", repo.URL).
			WithDetail("output", strings.TrimSpace(string(out)))
	}
	return local, nil
}

// Compatibility is the structural census of a cloned repository.
type Compatibility struct {
	// Compatible is true when at least one widget directory exists
	Compatible bool

	// Widgets are the top-level widget directory names
	Widgets []string

	// Environments are the variant names seen across widgets,
	// excluding "default"
	Environments []string

	// Programs are the program folder names seen across variants
	Programs []string

	// Issues explains why the repository is not compatible
	Issues []string
}

// CheckCompatibility walks a cloned repository and reports whether it
// follows the widget/variant/program layout.
func CheckCompatibility(fsys types.FS, repoPath string) Compatibility {
	var compat Compatibility

	entries, err := fsys.ReadDir(repoPath)
	if err != nil {
		compat.Issues = append(compat.Issues, "repository path is not readable")
		return compat
	}

	envs := make(map[string]struct{})
	programs := make(map[string]struct{})

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		compat.Widgets = append(compat.Widgets, entry.Name())

		widgetPath := filepath.Join(repoPath, entry.Name())
		variants, err := fsys.ReadDir(widgetPath)
		if err != nil {
			continue
		}
		for _, variant := range variants {
			if !variant.IsDir() {
				continue
			}
			if variant.Name() != types.DefaultVariantName {
				envs[variant.Name()] = struct{}{}
			}
			folders, err := fsys.ReadDir(filepath.Join(widgetPath, variant.Name()))
			if err != nil {
				continue
			}
			for _, folder := range folders {
				if folder.IsDir() {
					programs[folder.Name()] = struct{}{}
				}
			}
		}
	}

	compat.Environments = sortedKeys(envs)
	compat.Programs = sortedKeys(programs)

	if len(compat.Widgets) > 0 {
		compat.Compatible = true
	} else {
		compat.Issues = append(compat.Issues, "no widget directories found")
	}
	return compat
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
