package pull

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotvar/dotvar/cmd/dotvar/commands/internal/cmdutil"
	"github.com/dotvar/dotvar/pkg/commands"
)

// NewCommand creates the pull command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pull <widget>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			environment, _ := cmd.Flags().GetString("environment")
			programs, _ := cmd.Flags().GetStringSlice("programs")
			outputDir, _ := cmd.Flags().GetString("output-dir")
			assumeYes, _ := cmd.Flags().GetBool("yes")

			result, err := commands.Pull(commands.PullOptions{
				RepoRoot:    cmdutil.RepoRoot(cmd),
				Widget:      args[0],
				Environment: environment,
				Programs:    programs,
				OutputDir:   outputDir,
				AssumeYes:   assumeYes,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pulled %d configuration(s) into %s\n", len(result.Pulled), result.Dest)
			for _, name := range result.Pulled {
				fmt.Fprintf(out, "  - %s\n", name)
			}
			for _, name := range result.Failed {
				fmt.Fprintf(out, "  ! %s (copy failed)\n", name)
			}
			return nil
		},
	}

	cmd.Flags().String("environment", "", "Variant folder to pull into (defaults to the detected window manager)")
	cmd.Flags().StringSlice("programs", nil, "Pull only these config directories")
	cmd.Flags().String("output-dir", "", "Pull into this directory instead of the repository")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
