// Package cli implements the CLI adapter for cronkeeper.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/cronkeeper/internal/app"
	"github.com/bnema/cronkeeper/pkg/version"
)

// rootOptions carries the global flags and the collaborators commands use.
type rootOptions struct {
	configPath string
	envFile    string
	username   string
	binPath    string
	logLevel   string

	open    func(app.Options) (*app.App, error)
	confirm func(message string) (bool, error)
}

// NewRootCmd creates the root command for the cronkeeper CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{open: app.New, confirm: askConfirm})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cronkeeper",
		Short: "cronkeeper - keep a crontab in sync with declared jobs",
		Long: `cronkeeper manages one user's crontab from a declared job file.

Jobs are validated, composed into crontab lines and merged into the
installed table through the system crontab binary. Lines installed by
anyone else are kept unless a merge filter drops them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to config file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "Dotenv file loaded before the environment is read")
	flags.StringVarP(&opts.username, "user", "u", "", "Crontab owner (default: the invoking user)")
	flags.StringVar(&opts.binPath, "bin", "", "Path to the crontab binary")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newApplyCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newRemoveAllCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newSaveCmd(opts))
	rootCmd.AddCommand(newInstallCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newSnapshotsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// openApp builds the application from the global flags and the command's
// own overrides. The returned context carries the application logger.
func (o *rootOptions) openApp(cmd *cobra.Command, overrides app.Overrides) (*app.App, context.Context, error) {
	if o.username != "" {
		overrides.Username = o.username
	}
	if o.binPath != "" {
		overrides.BinPath = o.binPath
	}
	if o.logLevel != "" {
		overrides.LogLevel = o.logLevel
	}

	envRequired := false
	if f := cmd.Flag("env-file"); f != nil {
		envRequired = f.Changed
	}

	a, err := o.open(app.Options{
		ConfigPath:      o.configPath,
		EnvFile:         o.envFile,
		EnvFileRequired: envRequired,
		Overrides:       overrides,
		LogOutput:       cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return a, a.Context(ctx), nil
}

// owner names the crontab owner for messages.
func owner(a *app.App) string {
	if a.Config.Crontab.Username == "" {
		return "the current user"
	}
	return a.Config.Crontab.Username
}

// askConfirm asks a yes/no question on the terminal.
func askConfirm(message string) (bool, error) {
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: message}, &ok); err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return ok, nil
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("cronkeeper %s\n", version.Display())
			cmd.Printf("Commit: %s\n", version.Commit())
			cmd.Printf("Build Date: %s\n", version.BuildDate())
		},
	}
}
