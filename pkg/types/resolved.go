package types

import "path/filepath"

// FileMapping pairs one repository file with its installation target.
type FileMapping struct {
	// Source is the absolute path in the repository
	Source string

	// Dest is the absolute destination path under the config root
	Dest string
}

// ResolvedInstall records everything needed to install one program's
// configuration: which widget and variant it came from, the canonical
// program identifier, and the per-file source→destination mapping.
type ResolvedInstall struct {
	// Widget is the owning widget's name
	Widget string

	// Variant is the chosen variant's name
	Variant string

	// Program is the canonical program identifier after custom mapping
	Program string

	// DestDir is the destination directory for the program's files
	DestDir string

	// Files maps each source file to its destination
	Files []FileMapping
}

// SourceNames returns the base names of the install's source files,
// used in conflict reports.
func (r ResolvedInstall) SourceNames() []string {
	names := make([]string, len(r.Files))
	for i, f := range r.Files {
		names[i] = filepath.Base(f.Source)
	}
	return names
}

// ConflictSource identifies one (widget, variant) contribution to a
// singleton conflict.
type ConflictSource struct {
	Widget  string
	Variant string
	Files   []string
}

// ConflictReport warns that more than one resolved install targets a
// program that can only hold a single active configuration. Reports
// are advisory and never block installation.
type ConflictReport struct {
	// Program is the singleton program identifier
	Program string

	// Warning is the human-readable warning from the compatibility
	// database
	Warning string

	// Suggestion is the database's remediation hint
	Suggestion string

	// Sources lists every contributing (widget, variant) pair
	Sources []ConflictSource
}
