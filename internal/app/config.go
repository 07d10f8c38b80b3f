package app

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/bnema/cronkeeper/internal/adapters/out/shell"
	"github.com/bnema/cronkeeper/internal/domain"
	"github.com/bnema/cronkeeper/internal/logging"
	"github.com/bnema/cronkeeper/internal/usecase/crontab"
)

// Config holds the application configuration.
type Config struct {
	Crontab struct {
		BinPath   string   `mapstructure:"bin_path"`
		Username  string   `mapstructure:"username"`
		JobsFile  string   `mapstructure:"jobs_file"`
		HeadLines []string `mapstructure:"head_lines"`
		Commands  struct {
			List      string `mapstructure:"list"`
			Install   string `mapstructure:"install"`
			RemoveAll string `mapstructure:"remove_all"`
		} `mapstructure:"commands"`
		TempDir           string `mapstructure:"temp_dir"`
		TempPrefix        string `mapstructure:"temp_prefix"`
		KeepTempOnFailure bool   `mapstructure:"keep_temp_on_failure"`
		StrictRemoveAll   bool   `mapstructure:"strict_remove_all"`
		NoTablePhrase     string `mapstructure:"no_table_phrase"`
		MergeFilter       struct {
			Contains string `mapstructure:"contains"`
			Pattern  string `mapstructure:"pattern"`
		} `mapstructure:"merge_filter"`
	} `mapstructure:"crontab"`

	Process struct {
		Timeout time.Duration `mapstructure:"timeout"`
		Shell   string        `mapstructure:"shell"`
	} `mapstructure:"process"`

	Watch struct {
		Debounce    time.Duration `mapstructure:"debounce"`
		MinInterval time.Duration `mapstructure:"min_interval"`
	} `mapstructure:"watch"`

	Snapshots struct {
		Enabled bool   `mapstructure:"enabled"`
		Dir     string `mapstructure:"dir"`
		Keep    int    `mapstructure:"keep"`
	} `mapstructure:"snapshots"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`
}

// Overrides are command-line values that take precedence over the config
// file and environment. Empty fields are ignored.
type Overrides struct {
	Username string
	BinPath  string
	JobsFile string
	LogLevel string

	// DropMatching and DropPattern replace the configured merge filter.
	DropMatching string
	DropPattern  string
}

// setDefaults registers every configuration key with its default value.
func setDefaults(v *viper.Viper) {
	cmds := crontab.DefaultCommandTemplates()

	v.SetDefault("crontab.bin_path", crontab.DefaultBinPath)
	v.SetDefault("crontab.username", "")
	v.SetDefault("crontab.jobs_file", "cronkeeper.yaml")
	v.SetDefault("crontab.head_lines", []string{})
	v.SetDefault("crontab.commands.list", cmds.List)
	v.SetDefault("crontab.commands.install", cmds.Install)
	v.SetDefault("crontab.commands.remove_all", cmds.RemoveAll)
	v.SetDefault("crontab.temp_dir", "") // OS temp dir when empty
	v.SetDefault("crontab.temp_prefix", crontab.DefaultTempPrefix)
	v.SetDefault("crontab.keep_temp_on_failure", true)
	v.SetDefault("crontab.strict_remove_all", false)
	v.SetDefault("crontab.no_table_phrase", crontab.DefaultNoTablePhrase)
	v.SetDefault("crontab.merge_filter.contains", "")
	v.SetDefault("crontab.merge_filter.pattern", "")
	v.SetDefault("process.timeout", "0s")
	v.SetDefault("process.shell", shell.DefaultShell)
	v.SetDefault("watch.debounce", "250ms")
	v.SetDefault("watch.min_interval", "1s")
	v.SetDefault("snapshots.enabled", false)
	v.SetDefault("snapshots.dir", filepath.Join(DefaultDataDir(), "snapshots"))
	v.SetDefault("snapshots.keep", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", logging.FormatConsole)
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
}

// loadConfig loads configuration from file and sets defaults. A missing file
// in the search paths is not an error; a missing explicit file is.
func loadConfig(v *viper.Viper, configPath string) error {
	setDefaults(v)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CRONKEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

func applyOverrides(v *viper.Viper, o Overrides) {
	if o.Username != "" {
		v.Set("crontab.username", o.Username)
	}
	if o.BinPath != "" {
		v.Set("crontab.bin_path", o.BinPath)
	}
	if o.JobsFile != "" {
		v.Set("crontab.jobs_file", o.JobsFile)
	}
	if o.LogLevel != "" {
		v.Set("logging.level", o.LogLevel)
	}
	if o.DropMatching != "" || o.DropPattern != "" {
		v.Set("crontab.merge_filter.contains", o.DropMatching)
		v.Set("crontab.merge_filter.pattern", o.DropPattern)
	}
}

// LoadConfig reads the configuration from configPath (or the search paths),
// the environment and overrides. fsys nil means the OS filesystem.
func LoadConfig(fsys afero.Fs, configPath string, o Overrides) (*viper.Viper, Config, error) {
	v := viper.New()
	if fsys != nil {
		v.SetFs(fsys)
	}

	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyOverrides(v, o)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return v, cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is only
// an error when required is true.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// CrontabConfig converts the configuration into the crontab use case settings.
func (c Config) CrontabConfig() (crontab.Config, error) {
	filter, err := domain.NewMergeFilter(c.Crontab.MergeFilter.Contains, c.Crontab.MergeFilter.Pattern)
	if err != nil {
		return crontab.Config{}, err
	}

	return crontab.Config{
		BinPath:   c.Crontab.BinPath,
		Username:  c.Crontab.Username,
		HeadLines: c.Crontab.HeadLines,
		Commands: crontab.CommandTemplates{
			List:      c.Crontab.Commands.List,
			Install:   c.Crontab.Commands.Install,
			RemoveAll: c.Crontab.Commands.RemoveAll,
		},
		TempDir:           c.Crontab.TempDir,
		TempPrefix:        c.Crontab.TempPrefix,
		KeepTempOnFailure: c.Crontab.KeepTempOnFailure,
		StrictRemoveAll:   c.Crontab.StrictRemoveAll,
		NoTablePhrase:     c.Crontab.NoTablePhrase,
		MergeFilter:       filter,
		SnapshotKeep:      c.Snapshots.Keep,
	}, nil
}

// LoggingConfig converts the configuration into logger settings.
func (c Config) LoggingConfig() logging.Config {
	path := c.Logging.File.Path
	if path == "" && c.Logging.File.Enabled {
		path = filepath.Join(DefaultDataDir(), "logs", "cronkeeper.log")
	}

	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		File: logging.FileConfig{
			Enabled:    c.Logging.File.Enabled,
			Path:       path,
			MaxSize:    c.Logging.File.MaxSize,
			MaxBackups: c.Logging.File.MaxBackups,
			MaxAge:     c.Logging.File.MaxAge,
			Compress:   true,
		},
	}
}
