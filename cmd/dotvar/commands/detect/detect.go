package detect

import (
	"github.com/spf13/cobra"

	"github.com/dotvar/dotvar/cmd/dotvar/commands/internal/cmdutil"
	"github.com/dotvar/dotvar/pkg/commands"
)

// NewCommand creates the detect command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: MsgShort,
		Long:  MsgLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmdutil.Renderer(cmd).RenderFingerprint(commands.Detect())
		},
	}
}
