package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dotvar/dotvar/pkg/errors"
)

// CustomMappings maps widget name → literal program-folder name →
// canonical program identifier. Folder-name keys are matched
// byte-for-byte; no trimming or case folding is applied before lookup.
type CustomMappings map[string]map[string]string

// Lookup returns the canonical identifier for (widget, folderName), if
// a mapping exists. The folder name must match the mapping key exactly.
func (m CustomMappings) Lookup(widget, folderName string) (string, bool) {
	widgetMappings, ok := m[widget]
	if !ok {
		return "", false
	}
	target, ok := widgetMappings[folderName]
	return target, ok
}

// mappingsFile is the shape of the [custom_mappings] table in
// dotvar.toml:
//
//	[custom_mappings.statusbar]
//	"eww, fabirc, or weld" = "eww"
type mappingsFile struct {
	CustomMappings map[string]map[string]string `toml:"custom_mappings"`
}

// loadMappings parses the custom mapping table from the repository
// config file with a TOML decoder that preserves keys verbatim.
func loadMappings(path string) (CustomMappings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read config file").
			WithDetail("path", path)
	}

	var parsed mappingsFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse custom mappings").
			WithDetail("path", path)
	}

	if parsed.CustomMappings == nil {
		return CustomMappings{}, nil
	}
	return CustomMappings(parsed.CustomMappings), nil
}
