package compat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	db := LoadDefault()

	info, ok := db.Singleton("kitty")
	require.True(t, ok)
	assert.Contains(t, info.Warning, "one configuration file")
	assert.NotEmpty(t, info.Suggestion)

	_, ok = db.Singleton("alacritty")
	assert.True(t, ok)

	_, ok = db.Singleton("eww")
	assert.False(t, ok)

	multi, ok := db.MultiConfig("eww")
	require.True(t, ok)
	assert.Contains(t, multi.Info, "multiple configuration files")

	assert.Equal(t, []string{"alacritty", "kitty"}, db.Singletons())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	db, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	_, ok := db.Singleton("kitty")
	assert.True(t, ok)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program_compatibility.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[single_config_only.foot]
warning = "Foot reads a single foot.ini."
suggestion = "Keep one variant per environment."
`), 0644))

	db, err := Load(path)
	require.NoError(t, err)

	_, ok := db.Singleton("foot")
	assert.True(t, ok)

	// The file replaces the database wholesale
	_, ok = db.Singleton("kitty")
	assert.False(t, ok)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[single_config_only"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
