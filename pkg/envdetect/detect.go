// Package envdetect builds the environment fingerprint for a run.
// Detection reads well-known environment variables first and falls
// back to scanning the process table, per dimension. The result is
// computed once per run and never mutated.
package envdetect

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/dotvar/dotvar/pkg/logging"
	"github.com/dotvar/dotvar/pkg/types"
)

// Environment variables consulted during detection.
const (
	envHyprland       = "HYPRLAND_INSTANCE_SIGNATURE"
	envLabwc          = "LABWC_SOCKET"
	envSway           = "SWAYSOCK"
	envI3             = "I3SOCK"
	envDesktopSession = "DESKTOP_SESSION"
	envCurrentDesktop = "XDG_CURRENT_DESKTOP"
	envWaylandDisplay = "WAYLAND_DISPLAY"
	envPicomConfig    = "PICOM_CONFIG"
	envSessionType    = "XDG_SESSION_TYPE"
	envShell          = "SHELL"
	envTerm           = "TERM"
)

// presenceVars unconditionally identify a window manager when set and
// non-empty, checked in order.
var presenceVars = []struct {
	env  string
	name string
}{
	{envHyprland, "hyprland"},
	{envLabwc, "labwc"},
	{envSway, "sway"},
	{envI3, "i3"},
}

// Binary names looked for in the process table.
var (
	knownWindowManagers = []string{"hyprland", "labwc", "sway", "i3"}
	knownCompositors    = []string{"picom", "compton", "xcompmgr"}
)

// Detector produces environment fingerprints. The environment and
// process-table lookups are injectable so tests can run hermetically.
type Detector struct {
	getenv    func(string) string
	processes func() []string

	// procCache holds the process names after the first scan
	procCache   []string
	procScanned bool
}

// New creates a detector backed by the real process environment and
// process table.
func New() *Detector {
	return &Detector{
		getenv:    os.Getenv,
		processes: listProcessNames,
	}
}

// NewWithLookup creates a detector with custom environment and
// process-table sources, for tests.
func NewWithLookup(getenv func(string) string, processes func() []string) *Detector {
	return &Detector{getenv: getenv, processes: processes}
}

// Detect builds the fingerprint from the current environment. It is
// side-effect free beyond reading environment variables and, as a
// fallback, the process list.
func (d *Detector) Detect() types.EnvironmentFingerprint {
	logger := logging.GetLogger("envdetect")

	fp := types.EnvironmentFingerprint{
		WindowManager: d.detectWindowManager(),
		Compositor:    d.detectCompositor(),
		Shell:         d.detectShell(),
		Terminal:      d.detectTerminal(),
	}

	logger.Info().Str("fingerprint", fp.String()).Msg("Detected environment")
	return fp
}

func (d *Detector) detectWindowManager() string {
	for _, pv := range presenceVars {
		if d.getenv(pv.env) != "" {
			return pv.name
		}
	}

	if session := strings.ToLower(d.getenv(envDesktopSession)); session != "" {
		return session
	}

	if desktop := strings.ToLower(d.getenv(envCurrentDesktop)); desktop != "" {
		if token := firstToken(desktop); token != "" {
			return token
		}
	}

	if name := d.scanProcesses(knownWindowManagers); name != "" {
		return name
	}

	return types.Unknown
}

func (d *Detector) detectCompositor() string {
	// Wayland provides compositing itself, but a compositor-specific
	// variable is more precise and wins.
	if d.getenv(envWaylandDisplay) != "" && d.getenv(envPicomConfig) == "" {
		return "wayland"
	}

	if d.getenv(envPicomConfig) != "" {
		return "picom"
	}

	if sessionType := strings.ToLower(d.getenv(envSessionType)); sessionType != "" {
		return sessionType
	}

	if name := d.scanProcesses(knownCompositors); name != "" {
		return name
	}

	return types.Unknown
}

func (d *Detector) detectShell() string {
	shell := d.getenv(envShell)
	if shell == "" {
		return types.Unknown
	}
	return strings.ToLower(filepath.Base(shell))
}

func (d *Detector) detectTerminal() string {
	term := d.getenv(envTerm)
	if term == "" {
		return types.Unknown
	}
	return strings.ToLower(term)
}

// scanProcesses returns the first candidate that appears as a
// substring of a running process name.
func (d *Detector) scanProcesses(candidates []string) string {
	if !d.procScanned {
		d.procScanned = true
		if d.processes != nil {
			d.procCache = d.processes()
		}
	}

	for _, procName := range d.procCache {
		lower := strings.ToLower(procName)
		for _, candidate := range candidates {
			if strings.Contains(lower, candidate) {
				return candidate
			}
		}
	}
	return ""
}

// firstToken returns the leading colon- or hyphen-delimited token,
// e.g. "ubuntu:gnome" yields "ubuntu".
func firstToken(s string) string {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ':' || r == '-'
	})
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// listProcessNames reads the names of all running processes.
// Unreadable entries are skipped; detection degrades to unknown.
func listProcessNames() []string {
	procs, err := process.Processes()
	if err != nil {
		logger := logging.GetLogger("envdetect")
		logger.Debug().Err(err).Msg("Process scan failed")
		return nil
	}

	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names
}
