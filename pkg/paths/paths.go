// Package paths provides centralized path handling for dotvar.
// It resolves the repository root, the installation root (the user's
// config directory), and the backup directory, honoring environment
// overrides and the XDG Base Directory specification.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/dotvar/dotvar/pkg/errors"
)

// Environment variable names
const (
	// EnvRepoRoot is the primary environment variable for the dotfile
	// repository location
	EnvRepoRoot = "DOTVAR_REPO"

	// EnvConfigRoot overrides the installation root
	EnvConfigRoot = "DOTVAR_CONFIG_ROOT"

	// EnvBackupDir overrides the backup directory
	EnvBackupDir = "DOTVAR_BACKUP_DIR"
)

// Default directories and files
const (
	// DotvarDirName is the directory name for dotvar-specific files
	DotvarDirName = "dotvar"

	// BackupDirName is the default backup directory under $HOME
	BackupDirName = ".config_backup"

	// GitReposDirName is the subdirectory of the repository that holds
	// cloned compatible repositories
	GitReposDirName = "git_repos"

	// RepoConfigFile is the name of the repository configuration file
	RepoConfigFile = "dotvar.toml"

	// RepoListFile is the name of the compatible-repositories list
	RepoListFile = "compatible_repos.txt"

	// CompatFile is the name of the program compatibility database file
	CompatFile = "program_compatibility.toml"

	// PullRulesFile is the name of the auto-config rules file
	PullRulesFile = "pull_rules.toml"

	// LogFileName is the name of the log file
	LogFileName = "dotvar.log"
)

// Paths provides centralized path management for dotvar
type Paths struct {
	repoRoot   string
	configRoot string
	backupDir  string
	stateDir   string
}

// New creates a Paths instance rooted at the given repository path.
// The installation root defaults to the XDG config home and the backup
// directory to ~/.config_backup; both honor their environment
// overrides.
func New(repoRoot string) (*Paths, error) {
	if repoRoot == "" {
		repoRoot = os.Getenv(EnvRepoRoot)
	}
	if repoRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "repository path is required").
			WithDetail("hint", "pass --repo or set "+EnvRepoRoot)
	}

	absRoot, err := filepath.Abs(ExpandHome(repoRoot))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to resolve repository path")
	}

	p := &Paths{repoRoot: absRoot}

	if configRoot := os.Getenv(EnvConfigRoot); configRoot != "" {
		p.configRoot = ExpandHome(configRoot)
	} else {
		p.configRoot = xdg.ConfigHome
	}

	if backupDir := os.Getenv(EnvBackupDir); backupDir != "" {
		p.backupDir = ExpandHome(backupDir)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
		}
		p.backupDir = filepath.Join(home, BackupDirName)
	}

	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.stateDir = filepath.Join(stateDir, DotvarDirName)
	} else {
		home, _ := os.UserHomeDir()
		p.stateDir = filepath.Join(home, ".local", "state", DotvarDirName)
	}

	return p, nil
}

// RepoRoot returns the dotfile repository root.
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// ConfigRoot returns the installation root under which destinations
// are resolved (commonly ~/.config).
func (p *Paths) ConfigRoot() string {
	return p.configRoot
}

// BackupDir returns the directory that receives pre-overwrite copies.
func (p *Paths) BackupDir() string {
	return p.backupDir
}

// StateDir returns the dotvar state directory (log files).
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path of the dotvar log file.
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// WidgetPath returns the path of a widget directory in the repository.
func (p *Paths) WidgetPath(widgetName string) string {
	return filepath.Join(p.repoRoot, widgetName)
}

// GitReposDir returns the directory that holds cloned compatible
// repositories.
func (p *Paths) GitReposDir() string {
	return filepath.Join(p.repoRoot, GitReposDirName)
}

// RepoConfigPath returns the path of the repository configuration file.
func (p *Paths) RepoConfigPath() string {
	return filepath.Join(p.repoRoot, RepoConfigFile)
}

// FindSupportFile locates a dotvar support file (repo list,
// compatibility database, pull rules) by checking the repository root
// first and the user's config directory second. The returned path is
// the first that exists, else the repository-root location for writes.
func (p *Paths) FindSupportFile(name string) string {
	candidates := []string{
		filepath.Join(p.repoRoot, name),
		filepath.Join(p.configRoot, name),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return candidates[0]
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
