package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (APPSHELL_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("name", os.Getenv("APPSHELL_NAME"), &cfg.Name)
	s.setString("app-version", os.Getenv("APPSHELL_VERSION"), &cfg.Version)
	s.setString("user-data-dir", os.Getenv("APPSHELL_USER_DATA_DIR"), &cfg.UserDataDir)
	s.setString("log-level", os.Getenv("APPSHELL_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("windows", os.Getenv("APPSHELL_WINDOWS"), &cfg.Windows); err != nil {
		return err
	}

	s.setBoolFromString("linger", os.Getenv("APPSHELL_LINGER"), &cfg.Linger)

	return s.setDuration("quit-timeout", os.Getenv("APPSHELL_QUIT_TIMEOUT"), &cfg.QuitTimeout)
}
