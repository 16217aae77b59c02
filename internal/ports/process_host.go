package ports

// ProcessHost abstracts the host event loop's exit-code handling.
// Implementations accept a deferred exit code once an event loop is bound.
type ProcessHost interface {
	// SetExitCode registers the code the process should exit with.
	// Returns false when no event loop is bound yet; the caller must then
	// terminate the process itself.
	SetExitCode(code int) bool

	// ExitCode returns the last registered exit code (0 if none).
	ExitCode() int
}
