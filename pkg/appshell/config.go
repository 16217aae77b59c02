package appshell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the configuration for an App.
// Use the zero value and SetDefaults() for sensible defaults.
type Config struct {
	// Name is the application name. Empty falls back to packaging
	// metadata (Go build info, then the executable name).
	Name string

	// Version is the application version. Empty falls back to packaging
	// metadata.
	Version string

	// UserDataDir is the per-user data directory. It is created (best
	// effort) when launching finishes. Defaults to the OS user config
	// directory joined with Name.
	UserDataDir string
}

// SetDefaults fills in derived default values.
func (c *Config) SetDefaults() {
	if c.UserDataDir == "" && c.Name != "" {
		if base, err := os.UserConfigDir(); err == nil {
			c.UserDataDir = filepath.Join(base, c.Name)
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.ContainsRune(c.Name, os.PathSeparator) {
		return fmt.Errorf("%w: name must not contain path separators", ErrInvalidConfig)
	}
	return nil
}
