package app

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
)

// AppInfo resolves the application name and version. Explicit overrides
// win; otherwise the values fall back to packaging metadata (Go build
// info, then the executable name). Safe for concurrent use: overrides
// may arrive from watcher goroutines.
type AppInfo struct {
	mu              sync.RWMutex
	nameOverride    string
	versionOverride string
}

// Name returns the overridden name, or the packaging fallback.
func (i *AppInfo) Name() string {
	i.mu.RLock()
	override := i.nameOverride
	i.mu.RUnlock()

	if override != "" {
		return override
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		return filepath.Base(info.Main.Path)
	}
	return filepath.Base(os.Args[0])
}

// SetName overrides the application name.
func (i *AppInfo) SetName(name string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.nameOverride = name
}

// Version returns the overridden version, or the packaging fallback.
func (i *AppInfo) Version() string {
	i.mu.RLock()
	override := i.versionOverride
	i.mu.RUnlock()

	if override != "" {
		return override
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// SetVersion overrides the application version.
func (i *AppInfo) SetVersion(version string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.versionOverride = version
}
