// Package cmdutil holds small helpers shared by the CLI subcommands.
package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotvar/dotvar/pkg/errors"
	"github.com/dotvar/dotvar/pkg/output"
	"github.com/dotvar/dotvar/pkg/types"
)

// RepoRoot reads the persistent --repo flag.
func RepoRoot(cmd *cobra.Command) string {
	repo, _ := cmd.Flags().GetString("repo")
	return repo
}

// Bool reads a boolean flag, treating an unknown flag as false.
func Bool(cmd *cobra.Command, name string) bool {
	value, _ := cmd.Flags().GetBool(name)
	return value
}

// Renderer builds a report renderer honoring --no-color.
func Renderer(cmd *cobra.Command) *output.Renderer {
	return output.NewRenderer(cmd.OutOrStdout(), Bool(cmd, "no-color"))
}

// ParseEnvOverrides turns repeated dimension=value flags into the
// override map consumed by the commands layer.
func ParseEnvOverrides(overrides []string) (map[string]string, error) {
	if len(overrides) == 0 {
		return nil, nil
	}
	valid := make(map[string]struct{}, len(types.Dimensions))
	for _, dim := range types.Dimensions {
		valid[string(dim)] = struct{}{}
	}

	env := make(map[string]string, len(overrides))
	for _, override := range overrides {
		key, value, found := strings.Cut(override, "=")
		if !found || key == "" || value == "" {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"invalid environment override %q, expected dimension=value", override)
		}
		if _, ok := valid[key]; !ok {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"unknown environment dimension %q", key)
		}
		env[key] = value
	}
	return env, nil
}
