// Package commands implements the orchestration behind each CLI verb.
// Every command follows the same shape: an options struct, a function
// that wires the lower layers together, and a result the renderer can
// display.
package commands

import (
	"github.com/dotvar/dotvar/pkg/compat"
	"github.com/dotvar/dotvar/pkg/config"
	"github.com/dotvar/dotvar/pkg/envdetect"
	"github.com/dotvar/dotvar/pkg/filesystem"
	"github.com/dotvar/dotvar/pkg/paths"
	"github.com/dotvar/dotvar/pkg/types"
)

// Runtime bundles the shared state every command needs: the
// filesystem, resolved paths, loaded configuration, and the program
// compatibility database.
type Runtime struct {
	FS     types.FS
	Paths  *paths.Paths
	Config *config.Config
	Compat *compat.Database
}

// NewRuntime resolves paths and loads configuration for a repository.
func NewRuntime(repoRoot string) (*Runtime, error) {
	p, err := paths.New(repoRoot)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(p.RepoConfigPath())
	if err != nil {
		return nil, err
	}
	db, err := compat.Load(p.FindSupportFile(paths.CompatFile))
	if err != nil {
		return nil, err
	}
	return &Runtime{
		FS:     filesystem.NewOS(),
		Paths:  p,
		Config: cfg,
		Compat: db,
	}, nil
}

// Fingerprint returns the caller-supplied override when present,
// otherwise detects the running environment.
func (rt *Runtime) Fingerprint(override map[string]string) types.EnvironmentFingerprint {
	if len(override) > 0 {
		return types.FingerprintFromMap(override)
	}
	return envdetect.New().Detect()
}

// BackupDir prefers the configured backup directory over the default.
func (rt *Runtime) BackupDir() string {
	if dir := rt.Config.Settings.BackupDir; dir != "" {
		return paths.ExpandHome(dir)
	}
	return rt.Paths.BackupDir()
}

// RepoListPath returns the registry file location: an existing support
// file wins, otherwise the repository root.
func (rt *Runtime) RepoListPath() string {
	return rt.Paths.FindSupportFile(paths.RepoListFile)
}
