package compat

import (
	"github.com/spf13/cobra"

	"github.com/dotvar/dotvar/cmd/dotvar/commands/internal/cmdutil"
	"github.com/dotvar/dotvar/pkg/commands"
)

// NewCommand creates the compat command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compat <name>",
		Short: MsgShort,
		Long:  MsgLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, _ := cmd.Flags().GetBool("update")

			compatibility, err := commands.CheckCompat(cmd.Context(), commands.CheckCompatOptions{
				RepoRoot: cmdutil.RepoRoot(cmd),
				Name:     args[0],
				Update:   update,
			})
			if err != nil {
				return err
			}
			cmdutil.Renderer(cmd).RenderCompatibility(args[0], compatibility)
			return nil
		},
	}
	cmd.Flags().Bool("update", false, "Pull the clone before checking")
	return cmd
}
