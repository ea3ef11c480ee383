package types

// DefaultVariantName is the literal folder name that marks a widget's
// fallback variant.
const DefaultVariantName = "default"

// Widget is a named unit of configuration, identified by its top-level
// folder name within the repository. It owns an ordered set of variant
// folders.
type Widget struct {
	// Name is the widget name (the directory name)
	Name string

	// Path is the absolute path to the widget directory
	Path string

	// Variants are the widget's variant folders in directory order.
	// The resolver's partial-match tie-break depends on this order.
	Variants []Variant
}

// Variant returns the variant with the given name, if present.
func (w *Widget) Variant(name string) (Variant, bool) {
	for _, v := range w.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// HasDefault reports whether the widget carries a default variant.
func (w *Widget) HasDefault() bool {
	_, ok := w.Variant(DefaultVariantName)
	return ok
}

// VariantNames returns the variant folder names in directory order.
func (w *Widget) VariantNames() []string {
	names := make([]string, len(w.Variants))
	for i, v := range w.Variants {
		names[i] = v.Name
	}
	return names
}

// Variant is a folder directly under a widget. Its name is either a
// literal environment-dimension value (hyprland, wayland, zsh, ...) or
// the literal "default".
type Variant struct {
	// Name is the variant folder name
	Name string

	// Path is the absolute path to the variant directory
	Path string

	// Programs are the program folders directly under the variant,
	// in directory order.
	Programs []ProgramFolder

	// LooseFiles are files sitting directly under the variant with no
	// program folder. Each installs into a directory named after the
	// file's stem.
	LooseFiles []FileEntry
}

// ProgramFolder is a folder directly under a variant representing one
// target program's config tree. The file tree is opaque to dotvar and
// copied verbatim.
type ProgramFolder struct {
	// Name is the literal folder name. Custom mapping lookup uses this
	// string byte-for-byte, so it may contain spaces or commas.
	Name string

	// Path is the absolute path to the program folder
	Path string

	// Files is the recursive file list, in directory order
	Files []FileEntry
}

// FileEntry is one file inside a variant tree.
type FileEntry struct {
	// RelPath is the path relative to the owning program folder (or to
	// the variant, for loose files)
	RelPath string

	// SourcePath is the absolute path in the repository
	SourcePath string
}
