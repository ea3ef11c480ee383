package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dotvar/dotvar/cmd/dotvar/commands/compat"
	"github.com/dotvar/dotvar/cmd/dotvar/commands/detect"
	"github.com/dotvar/dotvar/cmd/dotvar/commands/info"
	"github.com/dotvar/dotvar/cmd/dotvar/commands/install"
	"github.com/dotvar/dotvar/cmd/dotvar/commands/list"
	"github.com/dotvar/dotvar/cmd/dotvar/commands/pull"
	"github.com/dotvar/dotvar/cmd/dotvar/commands/repos"
	"github.com/dotvar/dotvar/internal/version"
	"github.com/dotvar/dotvar/pkg/logging"
)

// NewRootCmd builds the dotvar command tree.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "dotvar",
		Short: MsgShort,
		Long:  MsgLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringP("repo", "r", "",
		"Dotfile repository path (defaults to $DOTVAR_REPO)")
	rootCmd.PersistentFlags().Bool("dry-run", false,
		"Preview changes without writing anything")
	rootCmd.PersistentFlags().Bool("no-backup", false,
		"Do not back up existing files before overwriting")
	rootCmd.PersistentFlags().Bool("no-color", false,
		"Disable colored output")

	rootCmd.AddCommand(
		install.NewCommand(),
		list.NewCommand(),
		info.NewCommand(),
		detect.NewCommand(),
		pull.NewCommand(),
		repos.NewCommand(),
		compat.NewCommand(),
		versionCmd(),
		completionCmd(),
	)
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dotvar version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func completionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
