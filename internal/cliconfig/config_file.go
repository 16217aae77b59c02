package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	UserDataDir string `toml:"user_data_dir"`
	LogLevel    string `toml:"log_level"`
	Windows     int    `toml:"windows"`
	Linger      *bool  `toml:"linger"`
	QuitTimeout string `toml:"quit_timeout"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.appshell/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".appshell", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("name", fc.Name, &cfg.Name)
	s.setString("app-version", fc.Version, &cfg.Version)
	s.setString("user-data-dir", fc.UserDataDir, &cfg.UserDataDir)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("windows", fc.Windows, &cfg.Windows)
	s.setBool("linger", fc.Linger, &cfg.Linger)

	return s.setDuration("quit-timeout", fc.QuitTimeout, &cfg.QuitTimeout)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
