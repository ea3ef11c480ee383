package commands

import (
	"context"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/gitrepo"
	"github.com/dotvar/dotvar/pkg/install"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/repo"
	"github.com/dotvar/dotvar/pkg/repolist"
	"github.com/dotvar/dotvar/pkg/types"
)

// ListReposOptions defines the options for the ListRepos command.
type ListReposOptions struct {
	// RepoRoot is the dotfile repository path
	RepoRoot string

	// Tags filters the registry; empty lists everything
	Tags []string
}

// ListRepos returns the compatible-repository registry, optionally
// filtered by tags.
func ListRepos(opts ListReposOptions) ([]repolist.Repo, error) {
	rt, err := NewRuntime(opts.RepoRoot)
	if err != nil {
		return nil, err
	}
	repos, err := repolist.Load(rt.FS, rt.RepoListPath())
	if err != nil {
		return nil, err
	}
	return repolist.FilterByTags(repos, opts.Tags), nil
}

// AddRepoOptions defines the options for the AddRepo command.
type AddRepoOptions struct {
	// RepoRoot is the dotfile repository path
	RepoRoot string

	// URL is the repository to register
	URL string

	// Name overrides the name derived from the URL
	Name string

	// Description and Tags annotate the entry; when both are empty
	// and FetchMetadata is set, they are read from the repository
	Description string
	Tags        []string

	// FetchMetadata clones the repository to read its info file
	FetchMetadata bool
}

// AddRepo registers a repository in the compatible list.
func AddRepo(ctx context.Context, opts AddRepoOptions) (repolist.Repo, error) {
	log := logging.GetLogger("commands.repos")

	rt, err := NewRuntime(opts.RepoRoot)
	if err != nil {
		return repolist.Repo{}, err
	}

	entry := repolist.Repo{
		Name:        opts.Name,
		URL:         opts.URL,
		Description: opts.Description,
		Tags:        opts.Tags,
	}
	if entry.Name == "" {
		entry.Name = repolist.ExtractRepoName(opts.URL)
	}

	if opts.FetchMetadata && entry.Description == "" && len(entry.Tags) == 0 {
		client := gitrepo.NewClient(rt.FS, rt.Paths.GitReposDir())
		local, err := client.Ensure(ctx, entry, false)
		if err != nil {
			log.Warn().Err(err).Str("repo", entry.Name).Msg("Could not fetch repository metadata")
		} else {
			meta := repolist.ReadMetadata(rt.FS, local)
			entry.Description = meta.Description
			entry.Tags = meta.Tags
		}
	}

	if err := repolist.Add(rt.FS, rt.RepoListPath(), entry); err != nil {
		return repolist.Repo{}, err
	}
	return entry, nil
}

// RemoveRepoOptions defines the options for the RemoveRepo command.
type RemoveRepoOptions struct {
	// RepoRoot is the dotfile repository path
	RepoRoot string

	// Name is the registry entry to remove
	Name string
}

// RemoveRepo deletes a repository from the compatible list.
func RemoveRepo(opts RemoveRepoOptions) error {
	rt, err := NewRuntime(opts.RepoRoot)
	if err != nil {
		return err
	}
	return repolist.Remove(rt.FS, rt.RepoListPath(), opts.Name)
}

// CheckCompatOptions defines the options for the CheckCompat command.
type CheckCompatOptions struct {
	// RepoRoot is the dotfile repository path
	RepoRoot string

	// Name is the registered repository to check
	Name string

	// Update pulls the clone before checking
	Update bool
}

// CheckCompat clones or updates a registered repository and reports
// whether it follows the widget layout.
func CheckCompat(ctx context.Context, opts CheckCompatOptions) (gitrepo.Compatibility, error) {
	rt, err := NewRuntime(opts.RepoRoot)
	if err != nil {
		return gitrepo.Compatibility{}, err
	}

	repos, err := repolist.Load(rt.FS, rt.RepoListPath())
	if err != nil {
		return gitrepo.Compatibility{}, err
	}
	entry, found := repolist.Find(repos, opts.Name)
	if !found {
		return gitrepo.Compatibility{}, errors.Newf(errors.ErrRepoNotFound,
			"repository %q is not registered", opts.Name)
	}

	client := gitrepo.NewClient(rt.FS, rt.Paths.GitReposDir())
	local, err := client.Ensure(ctx, entry, opts.Update)
	if err != nil {
		return gitrepo.Compatibility{}, err
	}
	return gitrepo.CheckCompatibility(rt.FS, local), nil
}

// InstallFromRepoOptions defines the options for the InstallFromRepo
// command.
type InstallFromRepoOptions struct {
	// RepoRoot is the dotfile repository path
	RepoRoot string

	// Name is the registered repository to install from
	Name string

	// Widget restricts installation to one widget in the clone
	Widget string

	// Update pulls the clone before installing
	Update bool

	// DryRun plans and reports without writing
	DryRun bool

	// NoBackup disables the backup-before-overwrite policy
	NoBackup bool

	// Environment overrides detection with explicit dimension values
	Environment map[string]string
}

// InstallFromRepo installs widgets from a registered repository's
// clone instead of the local repository.
func InstallFromRepo(ctx context.Context, opts InstallFromRepoOptions) (*types.RunResult, error) {
	log := logging.GetLogger("commands.repos")

	rt, err := NewRuntime(opts.RepoRoot)
	if err != nil {
		return nil, err
	}

	repos, err := repolist.Load(rt.FS, rt.RepoListPath())
	if err != nil {
		return nil, err
	}
	entry, found := repolist.Find(repos, opts.Name)
	if !found {
		return nil, errors.Newf(errors.ErrRepoNotFound,
			"repository %q is not registered", opts.Name)
	}

	client := gitrepo.NewClient(rt.FS, rt.Paths.GitReposDir())
	local, err := client.Ensure(ctx, entry, opts.Update)
	if err != nil {
		return nil, err
	}

	compatibility := gitrepo.CheckCompatibility(rt.FS, local)
	if !compatibility.Compatible {
		return nil, errors.Newf(errors.ErrRepoInvalid,
			"repository %q does not follow the widget layout", opts.Name).
			WithDetail("issues", compatibility.Issues)
	}

	widgets, err := repo.DiscoverWidgets(rt.FS, local)
	if err != nil {
		return nil, err
	}
	if opts.Widget != "" && !widgetExists(widgets, opts.Widget) {
		return nil, errors.Newf(errors.ErrWidgetNotFound,
			"widget %q not found in repository %q", opts.Widget, opts.Name)
	}

	fp := rt.Fingerprint(opts.Environment)
	log.Info().
		Str("repo", opts.Name).
		Str("fingerprint", fp.String()).
		Msg("Installing from cloned repository")

	engine := install.New(rt.FS, rt.Paths.ConfigRoot(), rt.BackupDir(),
		rt.Config.Mappings, rt.Compat, install.Options{
			DryRun:          opts.DryRun || rt.Config.Settings.DryRun,
			BackupExisting:  rt.Config.Settings.BackupExisting && !opts.NoBackup,
			CreateBackupDir: rt.Config.Settings.CreateBackupDir,
			TargetWidget:    opts.Widget,
		})
	return engine.Run(widgets, fp), nil
}
