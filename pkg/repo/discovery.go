// Package repo discovers the widget/variant/program-folder tree from a
// dotfile repository snapshot. Discovery is read-only; the returned
// tree is never mutated by later stages.
package repo

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/paths"
	"github.com/dotvar/dotvar/pkg/types"
)

// DiscoverWidgets scans the repository root and returns all widgets in
// name order. Hidden directories and the git_repos clone area are not
// widgets.
func DiscoverWidgets(fsys types.FS, root string) ([]types.Widget, error) {
	logger := logging.GetLogger("repo.discovery")

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNotFound, "repository root does not exist").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "repository root is not a directory").
			WithDetail("path", root)
	}

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read repository root").
			WithDetail("path", root)
	}

	var widgets []types.Widget
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") || name == paths.GitReposDirName {
			continue
		}

		widget, err := loadWidget(fsys, filepath.Join(root, name))
		if err != nil {
			// Log and continue with the remaining widgets
			logger.Warn().Err(err).Str("widget", name).Msg("Failed to load widget, skipping")
			continue
		}
		widgets = append(widgets, widget)
	}

	sort.Slice(widgets, func(i, j int) bool {
		return widgets[i].Name < widgets[j].Name
	})

	logger.Info().Int("count", len(widgets)).Msg("Discovered widgets")
	return widgets, nil
}

// LoadWidget loads a single widget by name, for runs restricted with
// --widget.
func LoadWidget(fsys types.FS, root, name string) (types.Widget, error) {
	widgetPath := filepath.Join(root, name)

	info, err := fsys.Stat(widgetPath)
	if err != nil {
		return types.Widget{}, errors.Wrap(err, errors.ErrWidgetNotFound, "widget not found").
			WithDetail("widget", name).
			WithDetail("path", widgetPath)
	}
	if !info.IsDir() {
		return types.Widget{}, errors.New(errors.ErrWidgetNotFound, "widget path is not a directory").
			WithDetail("widget", name)
	}

	return loadWidget(fsys, widgetPath)
}

// loadWidget reads a widget directory: each subdirectory is a variant,
// kept in directory order.
func loadWidget(fsys types.FS, widgetPath string) (types.Widget, error) {
	entries, err := fsys.ReadDir(widgetPath)
	if err != nil {
		return types.Widget{}, errors.Wrap(err, errors.ErrWidgetAccess, "cannot read widget directory").
			WithDetail("path", widgetPath)
	}

	widget := types.Widget{
		Name: filepath.Base(widgetPath),
		Path: widgetPath,
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		variant, err := loadVariant(fsys, filepath.Join(widgetPath, name))
		if err != nil {
			return types.Widget{}, err
		}
		widget.Variants = append(widget.Variants, variant)
	}

	return widget, nil
}

// loadVariant reads a variant directory: subdirectories are program
// folders, plain files are loose entries installed by file stem.
func loadVariant(fsys types.FS, variantPath string) (types.Variant, error) {
	entries, err := fsys.ReadDir(variantPath)
	if err != nil {
		return types.Variant{}, errors.Wrap(err, errors.ErrWidgetAccess, "cannot read variant directory").
			WithDetail("path", variantPath)
	}

	variant := types.Variant{
		Name: filepath.Base(variantPath),
		Path: variantPath,
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			folder := types.ProgramFolder{
				Name: name,
				Path: filepath.Join(variantPath, name),
			}
			files, err := collectFiles(fsys, folder.Path, "")
			if err != nil {
				return types.Variant{}, err
			}
			folder.Files = files
			variant.Programs = append(variant.Programs, folder)
			continue
		}

		variant.LooseFiles = append(variant.LooseFiles, types.FileEntry{
			RelPath:    name,
			SourcePath: filepath.Join(variantPath, name),
		})
	}

	return variant, nil
}

// collectFiles walks a program folder recursively, returning all
// non-hidden files with paths relative to the folder root.
func collectFiles(fsys types.FS, dir, rel string) ([]types.FileEntry, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWidgetAccess, "cannot read program folder").
			WithDetail("path", dir)
	}

	var files []types.FileEntry
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		entryRel := name
		if rel != "" {
			entryRel = filepath.Join(rel, name)
		}

		if entry.IsDir() {
			sub, err := collectFiles(fsys, filepath.Join(dir, name), entryRel)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}

		files = append(files, types.FileEntry{
			RelPath:    entryRel,
			SourcePath: filepath.Join(dir, name),
		})
	}

	return files, nil
}
