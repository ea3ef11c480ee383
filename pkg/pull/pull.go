// Package pull copies existing program configurations from the user's
// config directory back into the dotfile repository, creating or
// extending a widget variant. Candidate directories are filtered by
// auto-config rules so system and application state never lands in
// the repository.
package pull

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/types"
)

// Options controls one pull run.
type Options struct {
	// Widget is the widget directory to pull into
	Widget string

	// Environment is the variant folder name; when empty the caller
	// supplies the detected window manager (or "default")
	Environment string

	// Programs restricts the pull to these config directories,
	// bypassing the include rules
	Programs []string

	// OutputDir overrides the repository root as the pull target
	OutputDir string

	// AssumeYes skips the interactive confirmation above the
	// threshold
	AssumeYes bool
}

// Result reports what one pull run copied.
type Result struct {
	// Dest is the variant directory the configs were copied into
	Dest string

	// Pulled lists the program directories copied, in order
	Pulled []string

	// Failed lists program directories that could not be copied
	Failed []string
}

// ConfirmFunc asks the user to proceed; used above the confirmation
// threshold. The default is an interactive pterm prompt.
type ConfirmFunc func(prompt string) bool

func ptermConfirm(prompt string) bool {
	ok, _ := pterm.DefaultInteractiveConfirm.Show(prompt)
	return ok
}

// Puller copies config directories into the repository.
type Puller struct {
	fs         types.FS
	repoRoot   string
	configRoot string
	rules      Rules
	confirm    ConfirmFunc
	logger     zerolog.Logger
}

// New creates a puller reading from configRoot and writing under
// repoRoot, filtered by rules.
func New(fsys types.FS, repoRoot, configRoot string, rules Rules) *Puller {
	return &Puller{
		fs:         fsys,
		repoRoot:   repoRoot,
		configRoot: configRoot,
		rules:      rules,
		confirm:    ptermConfirm,
		logger:     logging.GetLogger("pull"),
	}
}

// WithConfirm replaces the interactive confirmation, for tests and
// non-interactive callers.
func (p *Puller) WithConfirm(confirm ConfirmFunc) *Puller {
	p.confirm = confirm
	return p
}

// Pull copies the selected config directories into
// <root>/<widget>/<environment>/. Per-directory copy failures are
// recorded and the run continues.
func (p *Puller) Pull(opts Options) (*Result, error) {
	if opts.Widget == "" {
		return nil, errors.New(errors.ErrInvalidInput, "widget name is required")
	}
	env := opts.Environment
	if env == "" {
		env = types.DefaultVariantName
	}

	root := p.repoRoot
	if opts.OutputDir != "" {
		root = opts.OutputDir
	}
	dest := filepath.Join(root, opts.Widget, env)

	candidates, err := p.selectCandidates(opts.Programs)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errors.New(errors.ErrNotFound, "no suitable configurations found").
			WithDetail("config_root", p.configRoot).
			WithDetail("hint", "use --programs to select directories explicitly")
	}

	if max := p.rules.MaxConfigsPerPull; max > 0 && len(candidates) > max {
		return nil, errors.Newf(errors.ErrTooManyConfigs,
			"found %d configurations, maximum per pull is %d", len(candidates), max).
			WithDetail("hint", "use --programs to limit which programs to pull")
	}

	if threshold := p.rules.ConfirmationThreshold; !opts.AssumeYes &&
		threshold > 0 && len(candidates) > threshold {
		prompt := fmt.Sprintf("About to pull %d configurations into %s. Continue?",
			len(candidates), dest)
		if !p.confirm(prompt) {
			return nil, errors.New(errors.ErrPullCancelled, "pull cancelled")
		}
	}

	if err := p.fs.MkdirAll(dest, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create variant directory").
			WithDetail("path", dest)
	}

	result := &Result{Dest: dest}
	for _, name := range candidates {
		source := filepath.Join(p.configRoot, name)
		target := filepath.Join(dest, name)

		// Replace any earlier pull of the same program wholesale.
		if _, err := p.fs.Stat(target); err == nil {
			if err := p.fs.RemoveAll(target); err != nil {
				p.logger.Warn().Err(err).Str("program", name).Msg("Could not replace existing pull")
				result.Failed = append(result.Failed, name)
				continue
			}
		}

		if err := p.copyTree(source, target); err != nil {
			p.logger.Warn().Err(err).Str("program", name).Msg("Could not copy configuration")
			result.Failed = append(result.Failed, name)
			continue
		}
		result.Pulled = append(result.Pulled, name)
		p.logger.Info().
			Str("program", name).
			Str("dest", target).
			Msg("Pulled configuration")
	}
	return result, nil
}

// selectCandidates picks config directories to pull: explicit programs
// verbatim (when present on disk), otherwise every non-hidden
// directory that is either a known dotfile program or matches an
// include keyword, minus the exclusions.
func (p *Puller) selectCandidates(programs []string) ([]string, error) {
	if len(programs) > 0 {
		var found []string
		for _, name := range programs {
			info, err := p.fs.Stat(filepath.Join(p.configRoot, name))
			if err != nil || !info.IsDir() {
				p.logger.Warn().Str("program", name).Msg("Requested program has no config directory")
				continue
			}
			found = append(found, name)
		}
		return found, nil
	}

	entries, err := p.fs.ReadDir(p.configRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read config directory").
			WithDetail("path", p.configRoot)
	}

	include := p.rules.includeSet()
	exclude := p.rules.excludeSet()

	var candidates []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || name[0] == '.' {
			continue
		}
		if _, excluded := exclude[name]; excluded {
			continue
		}
		if _, known := include[name]; !known && !p.rules.matchesKeyword(name) {
			continue
		}
		candidates = append(candidates, name)
	}
	sort.Strings(candidates)
	return candidates, nil
}

// copyTree copies a directory recursively, skipping files matching
// the ignore patterns.
func (p *Puller) copyTree(source, target string) error {
	if err := p.fs.MkdirAll(target, 0755); err != nil {
		return err
	}
	entries, err := p.fs.ReadDir(source)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(target, entry.Name())

		if entry.IsDir() {
			if err := p.copyTree(src, dst); err != nil {
				return err
			}
			continue
		}
		if p.ignored(entry.Name()) {
			continue
		}
		data, err := p.fs.ReadFile(src)
		if err != nil {
			return err
		}
		if err := p.fs.WriteFile(dst, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

func (p *Puller) ignored(name string) bool {
	for _, pattern := range p.rules.IgnorePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
