package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/cronkeeper/internal/app"
)

// newApplyCmd creates the apply command.
func newApplyCmd(opts *rootOptions) *cobra.Command {
	var (
		jobsFile     string
		dropMatching string
		dropPattern  string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Merge the declared jobs into the crontab",
		Long: `Merge the jobs of the job file into the installed crontab.

Installed lines are kept, minus those dropped by the merge filter, and every
declared line that is not installed yet is appended. Running apply twice
installs the same table.

Examples:
  cronkeeper apply
  cronkeeper apply -f jobs.yaml --drop-matching /app/yii
  cronkeeper apply --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{
				JobsFile:     jobsFile,
				DropMatching: dropMatching,
				DropPattern:  dropPattern,
			})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.LoadJobs(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				lines, err := a.Service.Plan(ctx)
				if err != nil {
					return err
				}
				if err := cliWriteLine(out, cliRenderTitle(fmt.Sprintf("Planned crontab for %s", owner(a)))); err != nil {
					return err
				}
				return cliWriteLines(out, lines)
			}

			if err := a.Service.Apply(ctx); err != nil {
				return err
			}
			return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Applied %d job(s) to the crontab of %s", len(a.Service.Jobs()), owner(a))))
		},
	}

	cmd.Flags().StringVarP(&jobsFile, "file", "f", "", "Job file (default from crontab.jobs_file)")
	cmd.Flags().StringVar(&dropMatching, "drop-matching", "", "Drop installed lines containing this text before merging")
	cmd.Flags().StringVar(&dropPattern, "drop-pattern", "", "Drop installed lines matching this regular expression before merging")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the merged table without installing it")
	cmd.MarkFlagsMutuallyExclusive("drop-matching", "drop-pattern")

	return cmd
}

// newRemoveCmd creates the remove command.
func newRemoveCmd(opts *rootOptions) *cobra.Command {
	var jobsFile string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the declared jobs from the crontab",
		Long: `Remove the lines of the declared jobs (and header lines) from the installed
crontab. Other lines stay. When nothing remains the table is removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{JobsFile: jobsFile})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.LoadJobs(ctx); err != nil {
				return err
			}
			if err := a.Service.Remove(ctx); err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(fmt.Sprintf("Removed %d job(s) from the crontab of %s", len(a.Service.Jobs()), owner(a))))
		},
	}

	cmd.Flags().StringVarP(&jobsFile, "file", "f", "", "Job file (default from crontab.jobs_file)")

	return cmd
}

// newRemoveAllCmd creates the remove-all command.
func newRemoveAllCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove-all",
		Short: "Remove the whole crontab",
		Long: `Remove the whole installed crontab of the user, including lines that
cronkeeper did not install.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{})
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if !yes {
				ok, err := opts.confirm(fmt.Sprintf("Remove the whole crontab of %s?", owner(a)))
				if err != nil {
					return err
				}
				if !ok {
					return cliWriteLine(out, cliRenderMuted("Cancelled."))
				}
			}

			if err := a.Service.RemoveAll(ctx); err != nil {
				return err
			}
			return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Removed the crontab of %s", owner(a))))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

// newSaveCmd creates the save command.
func newSaveCmd(opts *rootOptions) *cobra.Command {
	var jobsFile string

	cmd := &cobra.Command{
		Use:   "save <path>",
		Short: "Write the declared table to a file",
		Long: `Write the header lines and the declared jobs, in crontab file format, to a
file. The installed crontab is not read or changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{JobsFile: jobsFile})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.LoadJobs(ctx); err != nil {
				return err
			}
			n, err := a.Service.SaveToFile(ctx, args[0])
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(fmt.Sprintf("Wrote %d bytes to %s", n, args[0])))
		},
	}

	cmd.Flags().StringVarP(&jobsFile, "file", "f", "", "Job file (default from crontab.jobs_file)")

	return cmd
}

// newInstallCmd creates the install command.
func newInstallCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "install <path>",
		Short: "Install a crontab file as is",
		Long: `Install a file in crontab format, replacing the whole installed table.
No merge takes place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Service.ApplyFile(ctx, args[0]); err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(fmt.Sprintf("Installed %s as the crontab of %s", args[0], owner(a))))
		},
	}
}
