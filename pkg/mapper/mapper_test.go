package mapper

import (
	"testing"

	"github.com/dotvar/dotvar/pkg/config"
	"github.com/dotvar/dotvar/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapVariant(t *testing.T) {
	widget := types.Widget{Name: "statusbar"}
	variant := types.Variant{
		Name: "hyprland",
		Programs: []types.ProgramFolder{
			{
				Name: "waybar",
				Files: []types.FileEntry{
					{RelPath: "config", SourcePath: "/repo/statusbar/hyprland/waybar/config"},
					{RelPath: "style.css", SourcePath: "/repo/statusbar/hyprland/waybar/style.css"},
				},
			},
		},
	}

	installs := MapVariant(widget, variant, "/home/u/.config", config.CustomMappings{})
	require.Len(t, installs, 1)

	install := installs[0]
	assert.Equal(t, "statusbar", install.Widget)
	assert.Equal(t, "hyprland", install.Variant)
	assert.Equal(t, "waybar", install.Program)
	assert.Equal(t, "/home/u/.config/waybar", install.DestDir)
	require.Len(t, install.Files, 2)
	assert.Equal(t, "/home/u/.config/waybar/config", install.Files[0].Dest)
	assert.Equal(t, "/home/u/.config/waybar/style.css", install.Files[1].Dest)
}

func TestMapVariantNormalizesFolderName(t *testing.T) {
	widget := types.Widget{Name: "statusbar"}
	variant := types.Variant{
		Name: "default",
		Programs: []types.ProgramFolder{
			{Name: " Polybar ", Files: []types.FileEntry{
				{RelPath: "config.ini", SourcePath: "/repo/s/d/ Polybar /config.ini"},
			}},
		},
	}

	installs := MapVariant(widget, variant, "/cfg", config.CustomMappings{})
	require.Len(t, installs, 1)
	assert.Equal(t, "polybar", installs[0].Program)
	assert.Equal(t, "/cfg/polybar", installs[0].DestDir)
}

func TestCustomMappingExactness(t *testing.T) {
	mappings := config.CustomMappings{
		"statusbar": {"eww, fabirc, or weld": "eww"},
	}

	// Byte-exact folder name maps through the override
	assert.Equal(t, "eww",
		CanonicalProgram("statusbar", "eww, fabirc, or weld", mappings))

	// A trimmed/normalized variant of the key falls back to folder-name
	// normalization instead of the mapping
	assert.Equal(t, "eww,fabirc,or weld",
		CanonicalProgram("statusbar", "eww,fabirc,or weld", mappings))

	// Different widget: no mapping applies
	assert.Equal(t, "eww, fabirc, or weld",
		CanonicalProgram("terminal", "eww, fabirc, or weld", mappings))
}

func TestMapVariantLooseFiles(t *testing.T) {
	widget := types.Widget{Name: "shellrc"}
	variant := types.Variant{
		Name: "default",
		LooseFiles: []types.FileEntry{
			{RelPath: "Starship.toml", SourcePath: "/repo/shellrc/default/Starship.toml"},
		},
	}

	installs := MapVariant(widget, variant, "/cfg", config.CustomMappings{})
	require.Len(t, installs, 1)
	assert.Equal(t, "starship", installs[0].Program)
	assert.Equal(t, "/cfg/starship/Starship.toml", installs[0].Files[0].Dest)
}

func TestValidateMappings(t *testing.T) {
	widgets := []types.Widget{
		{
			Name: "statusbar",
			Variants: []types.Variant{
				{Name: "default", Programs: []types.ProgramFolder{{Name: "waybar"}}},
			},
		},
	}

	tests := []struct {
		name         string
		mappings     config.CustomMappings
		wantWarnings int
	}{
		{
			name:         "valid mapping",
			mappings:     config.CustomMappings{"statusbar": {"waybar": "waybar-custom"}},
			wantWarnings: 0,
		},
		{
			name:         "unknown widget",
			mappings:     config.CustomMappings{"ghost": {"waybar": "waybar"}},
			wantWarnings: 1,
		},
		{
			name:         "unknown folder",
			mappings:     config.CustomMappings{"statusbar": {"polybar": "polybar"}},
			wantWarnings: 1,
		},
		{
			name:         "empty mappings",
			mappings:     config.CustomMappings{},
			wantWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateMappings(widgets, tt.mappings)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}
