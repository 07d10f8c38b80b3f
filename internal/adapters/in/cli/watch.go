package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/cronkeeper/internal/app"
)

// newWatchCmd creates the watch command.
func newWatchCmd(opts *rootOptions) *cobra.Command {
	var jobsFile string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Apply the job file now and after every change",
		Long: `Apply the job file, then keep watching it and apply again whenever it
changes. Runs until interrupted. A job file that fails to load is reported
and the installed table is left alone until the next change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{JobsFile: jobsFile})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := cliWriteLine(cmd.OutOrStdout(), cliRenderInfo("Watching "+a.Jobs.Path()+" (Ctrl+C to stop)")); err != nil {
				return err
			}
			return a.Watch(ctx)
		},
	}

	cmd.Flags().StringVarP(&jobsFile, "file", "f", "", "Job file (default from crontab.jobs_file)")

	return cmd
}
