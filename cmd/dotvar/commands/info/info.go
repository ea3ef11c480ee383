package info

import (
	"github.com/spf13/cobra"

	"github.com/dotvar/dotvar/cmd/dotvar/commands/internal/cmdutil"
	"github.com/dotvar/dotvar/pkg/commands"
)

// NewCommand creates the info command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <widget>",
		Short: MsgShort,
		Long:  MsgLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			widget, err := commands.Info(commands.InfoOptions{
				RepoRoot: cmdutil.RepoRoot(cmd),
				Widget:   args[0],
			})
			if err != nil {
				return err
			}
			cmdutil.Renderer(cmd).RenderWidgetInfo(widget)
			return nil
		},
	}
}
