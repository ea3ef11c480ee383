package install

import (
	"github.com/spf13/cobra"

	"github.com/dotvar/dotvar/cmd/dotvar/commands/internal/cmdutil"
	"github.com/dotvar/dotvar/pkg/commands"
	"github.com/dotvar/dotvar/pkg/errors"
)

// NewCommand creates the install command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install [widget]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envFlags, _ := cmd.Flags().GetStringArray("env")
			env, err := cmdutil.ParseEnvOverrides(envFlags)
			if err != nil {
				return err
			}

			opts := commands.InstallOptions{
				RepoRoot:    cmdutil.RepoRoot(cmd),
				DryRun:      cmdutil.Bool(cmd, "dry-run"),
				NoBackup:    cmdutil.Bool(cmd, "no-backup"),
				Environment: env,
			}
			if len(args) > 0 {
				opts.Widget = args[0]
			}

			result, err := commands.Install(opts)
			if err != nil {
				return err
			}

			cmdutil.Renderer(cmd).RenderRun(result)

			if failed := result.FailedFiles(); len(failed) > 0 {
				return errors.Newf(errors.ErrFileCopy, "%d file(s) failed to install", len(failed))
			}
			return nil
		},
	}

	cmd.Flags().StringArray("env", nil,
		"Override a detected dimension (e.g. --env window_manager=hyprland)")
	return cmd
}
