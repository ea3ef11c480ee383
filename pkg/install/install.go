// Package install orchestrates a full run: resolve a variant per
// widget, map program folders to destinations, analyze singleton
// conflicts, then apply the plan (or report it under dry-run).
//
// A run is partial-failure tolerant at file granularity. A widget
// that resolves to no variant is skipped with a recorded reason; a
// file that fails to copy is recorded and the run continues. The
// apply phase is fully serialized in discovery order, which pins
// last-writer-wins semantics when two installs target the same
// destination.
package install

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dotvar/dotvar/pkg/analyze"
	"github.com/dotvar/dotvar/pkg/compat"
	"github.com/dotvar/dotvar/pkg/config"
	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/mapper"
	"github.com/dotvar/dotvar/pkg/resolver"
	"github.com/dotvar/dotvar/pkg/types"
)

// maxBackupSuffix bounds the numeric suffix probe for backup names.
const maxBackupSuffix = 1000

// Options controls a single run.
type Options struct {
	// DryRun plans and reports without writing anything
	DryRun bool

	// BackupExisting copies a pre-existing destination file into the
	// backup directory before overwriting it
	BackupExisting bool

	// CreateBackupDir creates the backup directory when missing.
	// When false and the directory is absent, backups fail and the
	// affected overwrites are blocked.
	CreateBackupDir bool

	// TargetWidget restricts the run to one widget by name
	TargetWidget string
}

// Engine runs installation plans against a filesystem.
type Engine struct {
	fs         types.FS
	configRoot string
	backupDir  string
	mappings   config.CustomMappings
	compatDB   *compat.Database
	opts       Options
	logger     zerolog.Logger

	// backedUp tracks destinations already backed up this run, so an
	// existing file is backed up at most once even when two installs
	// target the same path
	backedUp map[string]string
}

// New creates an engine writing under configRoot with backups under
// backupDir. An environment override is expressed by handing Run a
// caller-built fingerprint instead of a detected one.
func New(fsys types.FS, configRoot, backupDir string, mappings config.CustomMappings, db *compat.Database, opts Options) *Engine {
	if db == nil {
		db = compat.LoadDefault()
	}
	return &Engine{
		fs:         fsys,
		configRoot: configRoot,
		backupDir:  backupDir,
		mappings:   mappings,
		compatDB:   db,
		opts:       opts,
		logger:     logging.GetLogger("install"),
		backedUp:   make(map[string]string),
	}
}

// Plan resolves and maps every widget against the fingerprint and
// runs conflict analysis. Nothing is written.
func (e *Engine) Plan(widgets []types.Widget, fp types.EnvironmentFingerprint) *types.RunResult {
	result := &types.RunResult{
		Fingerprint: fp,
		DryRun:      e.opts.DryRun,
	}

	for _, warning := range mapper.ValidateMappings(widgets, e.mappings) {
		e.logger.Warn().Msg(warning)
	}

	for _, widget := range widgets {
		if e.opts.TargetWidget != "" && widget.Name != e.opts.TargetWidget {
			continue
		}

		variant, err := resolver.Resolve(widget, fp)
		if err != nil {
			result.Widgets = append(result.Widgets, types.WidgetOutcome{
				Widget:     widget.Name,
				Skipped:    true,
				SkipReason: err.Error(),
			})
			e.logger.Info().
				Str("widget", widget.Name).
				Msg("No variant matches the current environment, skipping")
			continue
		}

		result.Widgets = append(result.Widgets, types.WidgetOutcome{
			Widget:  widget.Name,
			Variant: variant.Name,
		})
		result.Installs = append(result.Installs,
			mapper.MapVariant(widget, variant, e.configRoot, e.mappings)...)
	}

	result.Conflicts = analyze.Analyze(result.Installs, e.compatDB)
	return result
}

// Execute applies a plan's installs in order, recording a FileResult
// per file. Under dry-run every file is reported as would-copy and
// the filesystem is untouched.
func (e *Engine) Execute(result *types.RunResult) {
	for _, install := range result.Installs {
		for _, file := range install.Files {
			result.Files = append(result.Files, e.applyFile(install, file))
		}
	}
}

// Run plans and executes in one call.
func (e *Engine) Run(widgets []types.Widget, fp types.EnvironmentFingerprint) *types.RunResult {
	result := e.Plan(widgets, fp)
	e.Execute(result)
	return result
}

func (e *Engine) applyFile(install types.ResolvedInstall, file types.FileMapping) types.FileResult {
	res := types.FileResult{
		Widget:  install.Widget,
		Program: install.Program,
		Source:  file.Source,
		Dest:    file.Dest,
	}

	if e.opts.DryRun {
		res.Status = types.FileWouldCopy
		return res
	}

	exists := false
	if _, err := e.fs.Stat(file.Dest); err == nil {
		exists = true
	}

	if exists && e.opts.BackupExisting {
		backupPath, err := e.backupFile(file.Dest)
		if err != nil {
			// A failed backup blocks the overwrite; losing the
			// original silently is worse than not installing.
			res.Status = types.FileFailed
			res.Reason = err.Error()
			e.logger.Error().Err(err).
				Str("dest", file.Dest).
				Msg("Backup failed, leaving destination untouched")
			return res
		}
		res.BackupPath = backupPath
	}

	if err := e.copyFile(file.Source, file.Dest); err != nil {
		res.Status = types.FileFailed
		res.Reason = err.Error()
		e.logger.Error().Err(err).
			Str("source", file.Source).
			Str("dest", file.Dest).
			Msg("Copy failed")
		return res
	}

	if res.BackupPath != "" {
		res.Status = types.FileBackedUp
	} else {
		res.Status = types.FileCopied
	}
	e.logger.Debug().
		Str("widget", install.Widget).
		Str("program", install.Program).
		Str("dest", file.Dest).
		Msg("Installed file")
	return res
}

// backupFile copies dest into the backup directory, probing
// name, name.1, name.2, … for a free slot. A destination already
// backed up this run returns its recorded backup path.
func (e *Engine) backupFile(dest string) (string, error) {
	if path, done := e.backedUp[dest]; done {
		return path, nil
	}

	if err := e.ensureBackupDir(); err != nil {
		return "", err
	}

	backupPath, err := e.freeBackupPath(filepath.Base(dest))
	if err != nil {
		return "", err
	}

	data, err := e.fs.ReadFile(dest)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrBackup, "failed to read existing file for backup").
			WithDetail("path", dest)
	}
	if err := e.fs.WriteFile(backupPath, data, 0644); err != nil {
		return "", errors.Wrap(err, errors.ErrBackup, "failed to write backup").
			WithDetail("path", backupPath)
	}

	e.backedUp[dest] = backupPath
	e.logger.Info().
		Str("original", dest).
		Str("backup", backupPath).
		Msg("Backed up existing file")
	return backupPath, nil
}

func (e *Engine) ensureBackupDir() error {
	if _, err := e.fs.Stat(e.backupDir); err == nil {
		return nil
	}
	if !e.opts.CreateBackupDir {
		return errors.New(errors.ErrBackup, "backup directory does not exist").
			WithDetail("path", e.backupDir)
	}
	if err := e.fs.MkdirAll(e.backupDir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrBackup, "failed to create backup directory").
			WithDetail("path", e.backupDir)
	}
	return nil
}

func (e *Engine) freeBackupPath(name string) (string, error) {
	candidate := filepath.Join(e.backupDir, name)
	for i := 0; i <= maxBackupSuffix; i++ {
		if i > 0 {
			candidate = filepath.Join(e.backupDir, fmt.Sprintf("%s.%d", name, i))
		}
		if _, err := e.fs.Stat(candidate); err != nil {
			return candidate, nil
		}
	}
	return "", errors.New(errors.ErrBackup, "no free backup slot").
		WithDetail("name", name)
}

func (e *Engine) copyFile(source, dest string) error {
	data, err := e.fs.ReadFile(source)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "failed to read source file").
			WithDetail("path", source)
	}

	perm := fs.FileMode(0644)
	if info, err := e.fs.Stat(source); err == nil {
		if p := info.Mode().Perm(); p != 0 {
			perm = p
		}
	}

	if err := e.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create destination directory").
			WithDetail("path", filepath.Dir(dest))
	}
	if err := e.fs.WriteFile(dest, data, perm); err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "failed to write destination file").
			WithDetail("path", dest)
	}
	return nil
}
