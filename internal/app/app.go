package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/time/rate"

	"github.com/bnema/cronkeeper/internal/adapters/out/filesystem"
	"github.com/bnema/cronkeeper/internal/adapters/out/jobfile"
	"github.com/bnema/cronkeeper/internal/adapters/out/shell"
	"github.com/bnema/cronkeeper/internal/boundaries/in"
	"github.com/bnema/cronkeeper/internal/boundaries/out"
	"github.com/bnema/cronkeeper/internal/logging"
	"github.com/bnema/cronkeeper/internal/usecase/crontab"
)

// Options configures New.
type Options struct {
	ConfigPath string
	EnvFile    string
	// EnvFileRequired makes a missing env file an error.
	EnvFileRequired bool
	Overrides       Overrides

	// Fs backs config, job file, temp files and snapshots. Nil means the OS.
	Fs afero.Fs
	// Runner replaces the shell runner, mainly for tests.
	Runner out.ProcessRunner
	// LogOutput receives console logs. Nil means stderr.
	LogOutput io.Writer
}

// App holds the wired application.
type App struct {
	Config  Config
	Log     zerolog.Logger
	Service in.CrontabService
	Jobs    out.JobSource

	closer io.Closer
}

// New loads configuration and wires the crontab service with its adapters.
func New(opts Options) (*App, error) {
	if err := LoadEnvFile(opts.EnvFile, opts.EnvFileRequired); err != nil {
		return nil, err
	}

	_, cfg, err := LoadConfig(opts.Fs, opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.Setup(cfg.LoggingConfig(), opts.LogOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	a, err := wire(cfg, opts, log)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	a.closer = closer

	log.Debug().
		Str(logging.FieldLayer, "app").
		Str(logging.FieldUser, cfg.Crontab.Username).
		Str("bin_path", cfg.Crontab.BinPath).
		Str("jobs_file", cfg.Crontab.JobsFile).
		Bool("snapshots", cfg.Snapshots.Enabled).
		Msg("cronkeeper initialized")

	return a, nil
}

func wire(cfg Config, opts Options, log zerolog.Logger) (*App, error) {
	svcCfg, err := cfg.CrontabConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid merge filter: %w", err)
	}

	runner := opts.Runner
	if runner == nil {
		runner = shell.NewRunner(cfg.Process.Shell, cfg.Process.Timeout, log)
	}

	var snapshots out.SnapshotStore
	if cfg.Snapshots.Enabled {
		storage, err := filesystem.NewSnapshotStorage(opts.Fs, cfg.Snapshots.Dir, log)
		if err != nil {
			return nil, err
		}
		snapshots = storage
	}

	svc := crontab.NewService(runner, filesystem.NewLocal(opts.Fs, log), snapshots, svcCfg, log)

	return &App{
		Config:  cfg,
		Log:     log,
		Service: svc,
		Jobs:    jobfile.NewFile(opts.Fs, cfg.Crontab.JobsFile, log),
	}, nil
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return a.Log.WithContext(ctx)
}

// LoadJobs reads the job file into the service. Head lines declared in the
// file replace the configured ones.
func (a *App) LoadJobs(ctx context.Context) error {
	set, err := a.Jobs.Load(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("job file %s not found: set crontab.jobs_file or pass --file", a.Jobs.Path())
		}
		return err
	}
	a.use(set)
	return nil
}

func (a *App) use(set out.JobSet) {
	if set.HeadLines != nil {
		a.Service.SetHeadLines(set.HeadLines)
	}
	a.Service.SetJobs(set.Jobs)
}

// Watch applies the job file now and again after every change until ctx is
// done. Applies are at least watch.min_interval apart. A failing apply is
// logged and watching continues.
func (a *App) Watch(ctx context.Context) error {
	if err := a.LoadJobs(ctx); err != nil {
		return err
	}
	if err := a.Service.Apply(ctx); err != nil {
		return err
	}

	log := a.Log.With().Str(logging.FieldLayer, "app").Str(logging.FieldComponent, "watch").Logger()
	log.Info().Str(logging.FieldPath, a.Jobs.Path()).Msg("watching job file")

	limiter := rate.NewLimiter(rate.Inf, 1)
	if a.Config.Watch.MinInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(a.Config.Watch.MinInterval), 1)
	}
	// the initial apply used the first token
	limiter.Allow()

	watcher := jobfile.NewWatcher(a.Jobs, a.Config.Watch.Debounce, a.Log)
	return watcher.Watch(ctx, func(ctx context.Context, set out.JobSet) {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		a.use(set)
		if err := a.Service.Apply(ctx); err != nil {
			log.Error().Err(err).Msg("apply after job file change failed")
			return
		}
		log.Info().Int(logging.FieldCount, len(set.Jobs)).Msg("job file change applied")
	})
}

// Close releases the log file.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
