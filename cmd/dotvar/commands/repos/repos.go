package repos

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotvar/dotvar/cmd/dotvar/commands/internal/cmdutil"
	"github.com/dotvar/dotvar/pkg/commands"
	"github.com/dotvar/dotvar/pkg/errors"
)

// NewCommand creates the repos command with its subcommands
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repos",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
	}
	cmd.AddCommand(listCmd(), addCmd(), removeCmd(), installCmd())
	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, _ := cmd.Flags().GetStringSlice("tags")
			repos, err := commands.ListRepos(commands.ListReposOptions{
				RepoRoot: cmdutil.RepoRoot(cmd),
				Tags:     tags,
			})
			if err != nil {
				return err
			}
			cmdutil.Renderer(cmd).RenderRepos(repos)
			return nil
		},
	}
	cmd.Flags().StringSlice("tags", nil, "Show only repositories carrying one of these tags")
	return cmd
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Register a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")
			tags, _ := cmd.Flags().GetStringSlice("tags")
			noFetch, _ := cmd.Flags().GetBool("no-fetch")

			entry, err := commands.AddRepo(cmd.Context(), commands.AddRepoOptions{
				RepoRoot:      cmdutil.RepoRoot(cmd),
				URL:           args[0],
				Name:          name,
				Description:   description,
				Tags:          tags,
				FetchMetadata: !noFetch,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", entry.Name)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Override the name derived from the URL")
	cmd.Flags().String("description", "", "Description for the registry entry")
	cmd.Flags().StringSlice("tags", nil, "Tags for the registry entry")
	cmd.Flags().Bool("no-fetch", false, "Do not clone the repository to read its metadata")
	return cmd
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a repository from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := commands.RemoveRepo(commands.RemoveRepoOptions{
				RepoRoot: cmdutil.RepoRoot(cmd),
				Name:     args[0],
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func installCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <name> [widget]",
		Short: "Install widgets from a registered repository",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			envFlags, _ := cmd.Flags().GetStringArray("env")
			env, err := cmdutil.ParseEnvOverrides(envFlags)
			if err != nil {
				return err
			}
			update, _ := cmd.Flags().GetBool("update")

			opts := commands.InstallFromRepoOptions{
				RepoRoot:    cmdutil.RepoRoot(cmd),
				Name:        args[0],
				Update:      update,
				DryRun:      cmdutil.Bool(cmd, "dry-run"),
				NoBackup:    cmdutil.Bool(cmd, "no-backup"),
				Environment: env,
			}
			if len(args) > 1 {
				opts.Widget = args[1]
			}

			result, err := commands.InstallFromRepo(cmd.Context(), opts)
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
	cmd.Flags().Bool("update", false, "Pull the clone before installing")
	cmd.Flags().StringArray("env", nil,
		"Override a detected dimension (e.g. --env window_manager=hyprland)")
	return cmd
}
