package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dotvar.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Settings.BackupExisting)
	assert.True(t, cfg.Settings.CreateBackupDir)
	assert.False(t, cfg.Settings.DryRun)
	assert.Empty(t, cfg.Settings.BackupDir)
	assert.Empty(t, cfg.Mappings)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.True(t, cfg.Settings.BackupExisting)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
backup_existing = false
dry_run = true
backup_dir = "/tmp/alt-backups"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Settings.BackupExisting)
	assert.True(t, cfg.Settings.DryRun)
	assert.Equal(t, "/tmp/alt-backups", cfg.Settings.BackupDir)
	// Untouched key keeps its default
	assert.True(t, cfg.Settings.CreateBackupDir)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `backup_existing = true`)
	t.Setenv("DOTVAR_BACKUP_EXISTING", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Settings.BackupExisting)
}

func TestUnrelatedEnvVarsAreIgnored(t *testing.T) {
	t.Setenv("DOTVAR_REPO", "/some/repo")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Settings.BackupExisting)
}

func TestLoadCustomMappings(t *testing.T) {
	path := writeConfig(t, `
backup_existing = true

[custom_mappings.statusbar]
"eww, fabirc, or weld" = "eww"
waybar-alt = "waybar"

[custom_mappings.terminal]
kitty-dark = "kitty"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	target, ok := cfg.Mappings.Lookup("statusbar", "eww, fabirc, or weld")
	assert.True(t, ok)
	assert.Equal(t, "eww", target)

	target, ok = cfg.Mappings.Lookup("terminal", "kitty-dark")
	assert.True(t, ok)
	assert.Equal(t, "kitty", target)
}

func TestMappingLookupIsByteExact(t *testing.T) {
	m := CustomMappings{
		"statusbar": {"eww, fabirc, or weld": "eww"},
	}

	// Exact literal matches
	_, ok := m.Lookup("statusbar", "eww, fabirc, or weld")
	assert.True(t, ok)

	// Normalized or trimmed variants must not match
	_, ok = m.Lookup("statusbar", "eww,fabirc,or weld")
	assert.False(t, ok)
	_, ok = m.Lookup("statusbar", " eww, fabirc, or weld ")
	assert.False(t, ok)
	_, ok = m.Lookup("statusbar", "EWW, FABIRC, OR WELD")
	assert.False(t, ok)

	// Unknown widget
	_, ok = m.Lookup("terminal", "eww, fabirc, or weld")
	assert.False(t, ok)
}

func TestLoadRejectsBrokenToml(t *testing.T) {
	path := writeConfig(t, `backup_existing = [broken`)

	_, err := Load(path)
	require.Error(t, err)
}
