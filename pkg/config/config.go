// Package config loads dotvar's layered configuration: built-in
// defaults, the repository's dotvar.toml, and DOTVAR_* environment
// variables, in increasing priority.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/logging"
)

// EnvPrefix is the prefix for configuration environment variables,
// e.g. DOTVAR_BACKUP_EXISTING=false.
const EnvPrefix = "DOTVAR_"

// Settings holds the scalar installation options.
type Settings struct {
	// BackupExisting applies the backup-before-overwrite policy
	BackupExisting bool `koanf:"backup_existing"`

	// CreateBackupDir creates the backup directory when missing
	CreateBackupDir bool `koanf:"create_backup_dir"`

	// DryRun plans and reports without writing anything
	DryRun bool `koanf:"dry_run"`

	// BackupDir overrides the default backup location when non-empty
	BackupDir string `koanf:"backup_dir"`
}

// Config is the loaded configuration for a run.
type Config struct {
	Settings Settings

	// Mappings holds the per-widget custom program-folder mappings
	Mappings CustomMappings
}

// defaults mirrors the original tool's built-in configuration.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"backup_existing":   true,
		"create_backup_dir": true,
		"dry_run":           false,
		"backup_dir":        "",
	}
}

// Load reads the configuration layers. configPath points at the
// repository's dotvar.toml and may name a missing file, in which case
// only defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	fileExists := false
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			fileExists = true
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config file").
					WithDetail("path", configPath)
			}
			logger.Debug().Str("path", configPath).Msg("Loaded repository config")
		} else {
			logger.Debug().Str("path", configPath).Msg("No config file found, using defaults")
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}

	cfg := &Config{Settings: settings, Mappings: CustomMappings{}}

	// Custom mapping keys are byte-exact folder names (they may contain
	// dots, commas and spaces), so they bypass koanf's key flattening
	// and are parsed from the raw file instead.
	if fileExists {
		mappings, err := loadMappings(configPath)
		if err != nil {
			return nil, err
		}
		cfg.Mappings = mappings
	}

	logger.Debug().
		Bool("backupExisting", settings.BackupExisting).
		Bool("dryRun", settings.DryRun).
		Int("mappedWidgets", len(cfg.Mappings)).
		Msg("Configuration loaded")

	return cfg, nil
}

// envKey maps DOTVAR_BACKUP_EXISTING to backup_existing. Keys that are
// not recognized settings are dropped so unrelated DOTVAR_* variables
// (DOTVAR_REPO and friends) don't leak into the settings map.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch key {
	case "backup_existing", "create_backup_dir", "dry_run", "backup_dir":
		return key
	}
	return ""
}
