package types

import (
	"fmt"
	"strings"
)

// Unknown is the placeholder value for a fingerprint dimension that
// could not be detected.
const Unknown = "unknown"

// Dimension identifies one axis of the environment fingerprint.
type Dimension string

const (
	DimWindowManager Dimension = "window_manager"
	DimCompositor    Dimension = "compositor"
	DimShell         Dimension = "shell"
	DimTerminal      Dimension = "terminal"
)

// Dimensions lists the fingerprint dimensions in resolution priority
// order. The resolver tries window manager matches before compositor
// matches, and so on.
var Dimensions = []Dimension{DimWindowManager, DimCompositor, DimShell, DimTerminal}

// EnvironmentFingerprint describes the desktop environment a run is
// installing into. It is built once per run (or supplied wholesale by
// the caller) and never mutated afterwards. Values are lower-cased
// identifiers, or Unknown.
type EnvironmentFingerprint struct {
	WindowManager string
	Compositor    string
	Shell         string
	Terminal      string
}

// Value returns the fingerprint's value for the given dimension.
func (f EnvironmentFingerprint) Value(dim Dimension) string {
	switch dim {
	case DimWindowManager:
		return f.WindowManager
	case DimCompositor:
		return f.Compositor
	case DimShell:
		return f.Shell
	case DimTerminal:
		return f.Terminal
	}
	return Unknown
}

// Known reports whether the dimension holds a usable value.
func (f EnvironmentFingerprint) Known(dim Dimension) bool {
	v := f.Value(dim)
	return v != "" && v != Unknown
}

// String renders the fingerprint for logs and the detect command.
func (f EnvironmentFingerprint) String() string {
	parts := make([]string, 0, len(Dimensions))
	for _, dim := range Dimensions {
		parts = append(parts, fmt.Sprintf("%s=%s", dim, f.Value(dim)))
	}
	return strings.Join(parts, " ")
}

// FingerprintFromMap builds a fingerprint from a dimension→value map,
// as supplied by the --env JSON override. Missing dimensions become
// Unknown; values are lower-cased and trimmed.
func FingerprintFromMap(m map[string]string) EnvironmentFingerprint {
	get := func(dim Dimension) string {
		v := strings.ToLower(strings.TrimSpace(m[string(dim)]))
		if v == "" {
			return Unknown
		}
		return v
	}
	return EnvironmentFingerprint{
		WindowManager: get(DimWindowManager),
		Compositor:    get(DimCompositor),
		Shell:         get(DimShell),
		Terminal:      get(DimTerminal),
	}
}
