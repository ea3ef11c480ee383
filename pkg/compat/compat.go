// Package compat supplies the program compatibility database: which
// destination programs accept only a single active configuration file,
// with human-readable warnings, and which explicitly tolerate several.
package compat

import (
	_ "embed"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/logging"
)

//go:embed defaults.toml
var defaultsTOML []byte

// SingletonInfo describes a single-configuration program.
type SingletonInfo struct {
	Warning    string `toml:"warning"`
	Suggestion string `toml:"suggestion"`
}

// MultiConfigInfo describes a program known to support several
// configuration files.
type MultiConfigInfo struct {
	Info       string `toml:"info"`
	Suggestion string `toml:"suggestion"`
}

// Database is the loaded compatibility database.
type Database struct {
	SingleConfigOnly        map[string]SingletonInfo   `toml:"single_config_only"`
	SupportsMultipleConfigs map[string]MultiConfigInfo `toml:"supports_multiple_configs"`
}

// LoadDefault returns the embedded database.
func LoadDefault() *Database {
	var db Database
	// The embedded file is validated by tests; a parse failure here is
	// a programming error.
	if err := toml.Unmarshal(defaultsTOML, &db); err != nil {
		panic(err)
	}
	return &db
}

// Load reads the database from path, falling back to the embedded
// defaults when the file does not exist.
func Load(path string) (*Database, error) {
	logger := logging.GetLogger("compat")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No compatibility file found, using defaults")
			return LoadDefault(), nil
		}
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot read compatibility database").
			WithDetail("path", path)
	}

	var db Database
	if err := toml.Unmarshal(data, &db); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse compatibility database").
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Int("singletons", len(db.SingleConfigOnly)).
		Msg("Loaded compatibility database")
	return &db, nil
}

// Singleton returns the info for a single-config program, if the
// identifier is in the singleton set.
func (db *Database) Singleton(program string) (SingletonInfo, bool) {
	info, ok := db.SingleConfigOnly[program]
	return info, ok
}

// MultiConfig returns the info for a known multi-config program.
func (db *Database) MultiConfig(program string) (MultiConfigInfo, bool) {
	info, ok := db.SupportsMultipleConfigs[program]
	return info, ok
}

// Singletons returns the singleton program identifiers in sorted order.
func (db *Database) Singletons() []string {
	names := make([]string, 0, len(db.SingleConfigOnly))
	for name := range db.SingleConfigOnly {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
