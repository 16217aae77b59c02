package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("default LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Windows != 1 {
		t.Errorf("default Windows = %d, want 1", cfg.Windows)
	}
	if cfg.Linger {
		t.Error("default Linger = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "negative window count",
			mutate:  func(c *Config) { c.Windows = -1 },
			wantErr: true,
		},
		{
			name:    "negative quit timeout",
			mutate:  func(c *Config) { c.QuitTimeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero windows allowed",
			mutate:  func(c *Config) { c.Windows = 0 },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateDerivesUserDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Name = "myapp"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.UserDataDir == "" {
		t.Error("UserDataDir not derived from Name")
	}

	cfg2 := DefaultConfig()
	cfg2.Name = "myapp"
	cfg2.UserDataDir = "/explicit/dir"
	if err := cfg2.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg2.UserDataDir != "/explicit/dir" {
		t.Errorf("UserDataDir = %q, want explicit value preserved", cfg2.UserDataDir)
	}
}
