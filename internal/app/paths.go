// Package app provides the application initialization and wiring.
package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDataDir returns the default data directory path.
// Uses ~/.local/share/cronkeeper for user installations, /var/lib/cronkeeper as fallback.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "share", "cronkeeper")
	}
	return "/var/lib/cronkeeper"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: cronkeeper.toml
// Search paths (in order): /etc/cronkeeper, ~/.config/cronkeeper, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("cronkeeper")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/cronkeeper")
		v.AddConfigPath("$HOME/.config/cronkeeper")
		v.AddConfigPath(".")
	}
}
