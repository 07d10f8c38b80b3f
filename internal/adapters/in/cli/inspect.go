package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/cronkeeper/internal/adapters/in/cli/ui/components"
	"github.com/bnema/cronkeeper/internal/app"
	"github.com/bnema/cronkeeper/internal/domain"
)

// newListCmd creates the list command.
func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the installed crontab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{})
			if err != nil {
				return err
			}
			defer a.Close()

			lines, err := a.Service.CurrentLines(ctx)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				return cliWriteLine(cmd.ErrOrStderr(), cliRenderMuted(fmt.Sprintf("No crontab installed for %s", owner(a))))
			}
			return cliWriteLines(cmd.OutOrStdout(), lines)
		},
	}
}

// newRenderCmd creates the render command.
func newRenderCmd(opts *rootOptions) *cobra.Command {
	var jobsFile string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the lines the declared jobs compose to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{JobsFile: jobsFile})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.LoadJobs(ctx); err != nil {
				return err
			}
			lines, err := a.Service.DesiredLines(ctx)
			if err != nil {
				return err
			}
			return cliWriteLines(cmd.OutOrStdout(), lines)
		},
	}

	cmd.Flags().StringVarP(&jobsFile, "file", "f", "", "Job file (default from crontab.jobs_file)")

	return cmd
}

// newValidateCmd creates the validate command.
func newValidateCmd(opts *rootOptions) *cobra.Command {
	var jobsFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every declared job against the crontab grammar",
		Long: `Load the job file and report every invalid field of every job.
Nothing is installed. Exits non-zero when a job is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{JobsFile: jobsFile})
			if err != nil {
				return err
			}
			defer a.Close()

			set, err := a.Jobs.Load(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for i, job := range set.Jobs {
				if err := job.Validate(); err != nil {
					invalid++
					if err := writeViolations(out, fmt.Sprintf("Job %d: %s", i+1, job.String()), err); err != nil {
						return err
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d job(s) in %s are invalid", invalid, len(set.Jobs), a.Jobs.Path())
			}
			return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("%d job(s) in %s are valid", len(set.Jobs), a.Jobs.Path())))
		},
	}

	cmd.Flags().StringVarP(&jobsFile, "file", "f", "", "Job file (default from crontab.jobs_file)")

	return cmd
}

// newParseCmd creates the parse command.
func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <line>",
		Short: "Split a crontab line into job fields",
		Long: `Split a crontab line into its schedule fields and command, then check
them against the crontab grammar.

Example:
  cronkeeper parse "*/5 * * * * php /app/yii queue/run"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := domain.ParseLine(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := cliWriteLine(out, components.FieldTable(fieldRows(job))); err != nil {
				return err
			}

			if err := job.Validate(); err != nil {
				if werr := writeViolations(out, "The parsed job is not valid", err); werr != nil {
					return werr
				}
				return errors.New("line does not describe a valid job")
			}
			return cliWriteLine(out, cliRenderSuccess("Valid job"))
		},
	}
}

func fieldRows(job domain.Job) [][]string {
	return [][]string{
		{domain.FieldMinute, job.Minute},
		{domain.FieldHour, job.Hour},
		{domain.FieldDayOfMonth, job.DayOfMonth},
		{domain.FieldMonth, job.Month},
		{domain.FieldDayOfWeek, job.DayOfWeek},
		{domain.FieldCommand, job.Command},
	}
}

// writeViolations prints title and one item per field violation of err.
func writeViolations(w io.Writer, title string, err error) error {
	if werr := cliWriteLine(w, cliRenderWarning(title)); werr != nil {
		return werr
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return cliWriteLine(w, cliRenderListItem(err.Error()))
	}
	for _, v := range verr.Violations() {
		if werr := cliWriteLine(w, cliRenderListItem(v.Error())); werr != nil {
			return werr
		}
	}
	return nil
}
