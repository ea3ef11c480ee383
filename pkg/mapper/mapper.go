// Package mapper translates a resolved variant's program folders into
// destination paths under the installation root, honoring per-widget
// custom name overrides.
package mapper

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dotvar/dotvar/pkg/config"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/types"
)

// MapVariant produces one ResolvedInstall per program folder under the
// variant, in directory order. A custom mapping entry for
// (widget, literal folder name) overrides the destination identifier;
// otherwise the folder name is lower-cased and trimmed. Individual
// files are never renamed.
//
// Files sitting directly under the variant install into a directory
// named after the file's stem.
func MapVariant(widget types.Widget, variant types.Variant, configRoot string, mappings config.CustomMappings) []types.ResolvedInstall {
	logger := logging.GetLogger("mapper")

	var installs []types.ResolvedInstall

	for _, folder := range variant.Programs {
		program := CanonicalProgram(widget.Name, folder.Name, mappings)
		destDir := filepath.Join(configRoot, program)

		install := types.ResolvedInstall{
			Widget:  widget.Name,
			Variant: variant.Name,
			Program: program,
			DestDir: destDir,
		}
		for _, f := range folder.Files {
			install.Files = append(install.Files, types.FileMapping{
				Source: f.SourcePath,
				Dest:   filepath.Join(destDir, f.RelPath),
			})
		}

		logger.Trace().
			Str("widget", widget.Name).
			Str("folder", folder.Name).
			Str("program", program).
			Int("files", len(install.Files)).
			Msg("Mapped program folder")

		installs = append(installs, install)
	}

	for _, loose := range variant.LooseFiles {
		program := strings.ToLower(stem(loose.RelPath))
		destDir := filepath.Join(configRoot, program)

		installs = append(installs, types.ResolvedInstall{
			Widget:  widget.Name,
			Variant: variant.Name,
			Program: program,
			DestDir: destDir,
			Files: []types.FileMapping{
				{Source: loose.SourcePath, Dest: filepath.Join(destDir, loose.RelPath)},
			},
		})
	}

	return installs
}

// CanonicalProgram returns the destination identifier for a program
// folder. The custom mapping lookup is byte-exact on the literal
// folder name; only the fallback path normalizes.
func CanonicalProgram(widgetName, folderName string, mappings config.CustomMappings) string {
	if mapped, ok := mappings.Lookup(widgetName, folderName); ok {
		return mapped
	}
	return strings.ToLower(strings.TrimSpace(folderName))
}

// ValidateMappings reports custom mapping entries that reference a
// widget or program folder absent from the repository snapshot. Such
// entries are ignored with a warning, never fatal.
func ValidateMappings(widgets []types.Widget, mappings config.CustomMappings) []string {
	byName := make(map[string]types.Widget, len(widgets))
	for _, w := range widgets {
		byName[w.Name] = w
	}

	var warnings []string
	for widgetName, folderMap := range mappings {
		widget, ok := byName[widgetName]
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("custom mapping references unknown widget %q", widgetName))
			continue
		}

		for folderName := range folderMap {
			if !widgetHasFolder(widget, folderName) {
				warnings = append(warnings,
					fmt.Sprintf("custom mapping for widget %q references unknown folder %q",
						widgetName, folderName))
			}
		}
	}
	return warnings
}

func widgetHasFolder(widget types.Widget, folderName string) bool {
	for _, v := range widget.Variants {
		for _, p := range v.Programs {
			if p.Name == folderName {
				return true
			}
		}
	}
	return false
}

// stem returns the file name without its extension.
func stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
