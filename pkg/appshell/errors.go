package appshell

import "errors"

var (
	// ErrAlreadyRunning is returned when Run() is called on a running App.
	ErrAlreadyRunning = errors.New("appshell: already running")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("appshell: invalid configuration")
)
