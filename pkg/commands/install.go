package commands

import (
	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/install"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/repo"
	"github.com/dotvar/dotvar/pkg/types"
)

// InstallOptions defines the options for the Install command.
type InstallOptions struct {
	// RepoRoot is the dotfile repository path
	RepoRoot string

	// Widget restricts installation to one widget. Empty installs all.
	Widget string

	// DryRun plans and reports without writing
	DryRun bool

	// NoBackup disables the backup-before-overwrite policy
	NoBackup bool

	// Environment overrides detection with explicit dimension values
	Environment map[string]string
}

// Install resolves every widget against the environment and installs
// the chosen variants.
func Install(opts InstallOptions) (*types.RunResult, error) {
	log := logging.GetLogger("commands.install")

	rt, err := NewRuntime(opts.RepoRoot)
	if err != nil {
		return nil, err
	}

	widgets, err := repo.DiscoverWidgets(rt.FS, rt.Paths.RepoRoot())
	if err != nil {
		return nil, err
	}
	if opts.Widget != "" && !widgetExists(widgets, opts.Widget) {
		return nil, errors.Newf(errors.ErrWidgetNotFound, "widget %q not found", opts.Widget)
	}

	fp := rt.Fingerprint(opts.Environment)
	log.Info().
		Str("fingerprint", fp.String()).
		Int("widgets", len(widgets)).
		Msg("Starting installation run")

	engine := install.New(rt.FS, rt.Paths.ConfigRoot(), rt.BackupDir(),
		rt.Config.Mappings, rt.Compat, install.Options{
			DryRun:          opts.DryRun || rt.Config.Settings.DryRun,
			BackupExisting:  rt.Config.Settings.BackupExisting && !opts.NoBackup,
			CreateBackupDir: rt.Config.Settings.CreateBackupDir,
			TargetWidget:    opts.Widget,
		})
	return engine.Run(widgets, fp), nil
}

func widgetExists(widgets []types.Widget, name string) bool {
	for _, w := range widgets {
		if w.Name == name {
			return true
		}
	}
	return false
}
