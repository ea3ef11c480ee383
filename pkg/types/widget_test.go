package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidgetVariant(t *testing.T) {
	w := Widget{
		Name: "bar",
		Path: "/repo/bar",
		Variants: []Variant{
			{Name: "default", Path: "/repo/bar/default"},
			{Name: "hyprland", Path: "/repo/bar/hyprland"},
		},
	}

	v, ok := w.Variant("hyprland")
	assert.True(t, ok)
	assert.Equal(t, "/repo/bar/hyprland", v.Path)

	_, ok = w.Variant("labwc")
	assert.False(t, ok)

	assert.True(t, w.HasDefault())
	assert.Equal(t, []string{"default", "hyprland"}, w.VariantNames())
}

func TestWidgetWithoutDefault(t *testing.T) {
	w := Widget{
		Name:     "clock",
		Variants: []Variant{{Name: "sway"}, {Name: "i3"}},
	}
	assert.False(t, w.HasDefault())
}

func TestResolvedInstallSourceNames(t *testing.T) {
	r := ResolvedInstall{
		Program: "kitty",
		Files: []FileMapping{
			{Source: "/repo/term/default/kitty/kitty.conf", Dest: "/home/u/.config/kitty/kitty.conf"},
			{Source: "/repo/term/default/kitty/themes/dark.conf", Dest: "/home/u/.config/kitty/themes/dark.conf"},
		},
	}
	assert.Equal(t, []string{"kitty.conf", "dark.conf"}, r.SourceNames())
}

func TestRunResultFilters(t *testing.T) {
	res := RunResult{
		Widgets: []WidgetOutcome{
			{Widget: "bar", Variant: "hyprland"},
			{Widget: "clock", Skipped: true, SkipReason: "no matching or default variant"},
		},
		Files: []FileResult{
			{Dest: "/a", Status: FileCopied},
			{Dest: "/b", Status: FileFailed, Reason: "permission denied"},
		},
	}

	failed := res.FailedFiles()
	assert.Len(t, failed, 1)
	assert.Equal(t, "/b", failed[0].Dest)

	skipped := res.SkippedWidgets()
	assert.Len(t, skipped, 1)
	assert.Equal(t, "clock", skipped[0].Widget)
}
