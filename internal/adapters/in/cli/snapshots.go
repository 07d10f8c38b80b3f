package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/cronkeeper/internal/adapters/in/cli/ui/components"
	"github.com/bnema/cronkeeper/internal/app"
	"github.com/bnema/cronkeeper/internal/domain"
)

// newSnapshotsCmd creates the snapshots command group.
func newSnapshotsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List and restore crontab snapshots",
		Long: `With snapshots enabled, the installed crontab is saved before apply,
remove, remove-all and restore change it.`,
	}

	cmd.AddCommand(newSnapshotsListCmd(opts))
	cmd.AddCommand(newSnapshotsRestoreCmd(opts))

	return cmd
}

func newSnapshotsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{})
			if err != nil {
				return err
			}
			defer a.Close()

			infos, err := a.Service.Snapshots(ctx)
			if err != nil {
				return snapshotError(err)
			}

			out := cmd.OutOrStdout()
			if len(infos) == 0 {
				return cliWriteLine(out, cliRenderMuted(fmt.Sprintf("No snapshots for %s", owner(a))))
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				user := info.Username
				if user == "" {
					user = "-"
				}
				rows = append(rows, []string{
					info.ID,
					user,
					info.Reason,
					info.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					strconv.Itoa(info.LineCount),
				})
			}
			return cliWriteLine(out, components.SnapshotTable(rows))
		},
	}
}

func newSnapshotsRestoreCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Install a snapshot, replacing the crontab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := opts.openApp(cmd, app.Overrides{})
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if !yes {
				ok, err := opts.confirm(fmt.Sprintf("Replace the crontab of %s with snapshot %s?", owner(a), args[0]))
				if err != nil {
					return err
				}
				if !ok {
					return cliWriteLine(out, cliRenderMuted("Cancelled."))
				}
			}

			if err := a.Service.Restore(ctx, args[0]); err != nil {
				return snapshotError(err)
			}
			return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Restored snapshot %s", args[0])))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func snapshotError(err error) error {
	if errors.Is(err, domain.ErrSnapshotsDisabled) {
		return fmt.Errorf("%w: set snapshots.enabled = true in the config", err)
	}
	return err
}
