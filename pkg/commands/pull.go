package commands

import (
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/paths"
	"github.com/dotvar/dotvar/pkg/pull"
	"github.com/dotvar/dotvar/pkg/types"
)

// PullOptions defines the options for the Pull command.
type PullOptions struct {
	// RepoRoot is the dotfile repository path
	RepoRoot string

	// Widget is the widget directory to pull into
	Widget string

	// Environment names the target variant folder; empty uses the
	// detected window manager, falling back to "default"
	Environment string

	// Programs restricts the pull to these config directories
	Programs []string

	// OutputDir overrides the repository root as the pull target
	OutputDir string

	// AssumeYes skips the confirmation prompt
	AssumeYes bool
}

// Pull copies existing configurations from the config root into a
// widget variant, filtered by the auto-config rules.
func Pull(opts PullOptions) (*pull.Result, error) {
	log := logging.GetLogger("commands.pull")

	rt, err := NewRuntime(opts.RepoRoot)
	if err != nil {
		return nil, err
	}

	rules, err := pull.LoadRules(rt.Paths.FindSupportFile(paths.PullRulesFile))
	if err != nil {
		return nil, err
	}

	env := opts.Environment
	if env == "" {
		if fp := Detect(); fp.Known(types.DimWindowManager) {
			env = fp.WindowManager
		}
		log.Debug().Str("environment", env).Msg("Using detected environment for pull target")
	}

	puller := pull.New(rt.FS, rt.Paths.RepoRoot(), rt.Paths.ConfigRoot(), rules)
	return puller.Pull(pull.Options{
		Widget:      opts.Widget,
		Environment: env,
		Programs:    opts.Programs,
		OutputDir:   opts.OutputDir,
		AssumeYes:   opts.AssumeYes,
	})
}
