package list

import (
	"github.com/spf13/cobra"

	"github.com/dotvar/dotvar/cmd/dotvar/commands/internal/cmdutil"
	"github.com/dotvar/dotvar/pkg/commands"
)

// NewCommand creates the list command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgShort,
		Long:  MsgLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			widgets, err := commands.List(commands.ListOptions{
				RepoRoot: cmdutil.RepoRoot(cmd),
			})
			if err != nil {
				return err
			}
			cmdutil.Renderer(cmd).RenderWidgetList(widgets)
			return nil
		},
	}
}
