// Package metawatcher provides live application-metadata overrides for
// appshell. When enabled, it watches app.toml in the user data directory
// and applies name/version overrides as the file changes.
package metawatcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/glasswing-io/appshell/pkg/appshell"
)

const overrideFile = "app.toml"

// Overrides is the schema of the watched file. Empty fields leave the
// current value untouched.
type Overrides struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Config holds configuration options for the metadata watcher plugin.
type Config struct {
	// DebounceDelay is the delay to wait after a file change before
	// re-reading. Default: 100 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 100 * time.Millisecond,
	}
}

// Plugin implements metadata watching. It monitors app.toml in the user
// data directory and applies overrides through the owning App.
type Plugin struct {
	mu sync.RWMutex

	debounceDelay time.Duration

	userDataDir string
	app         *appshell.App
	logger      appshell.Logger
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	debounce    *time.Timer
}

// New creates a new metadata watcher plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	return &Plugin{
		debounceDelay: cfg.DebounceDelay,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "metawatcher"
}

// Initialize sets up the plugin and starts the override watcher.
func (p *Plugin) Initialize(ctx context.Context, cfg appshell.PluginConfig) error {
	p.mu.Lock()
	p.userDataDir = cfg.UserDataDir
	p.app = cfg.App
	p.logger = cfg.Logger
	p.mu.Unlock()

	if p.userDataDir == "" || p.app == nil {
		p.logger.Warn("Metadata watcher disabled: no user data directory configured")
		return nil
	}

	// Create cancellable context for the watcher loop
	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("Metadata watcher plugin initialized")

	p.wg.Add(1)
	go p.watchLoop(watchCtx)

	return nil
}

// Shutdown stops the override watcher.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	return nil
}

// watchLoop watches the user data directory for override file changes.
func (p *Plugin) watchLoop(ctx context.Context) {
	defer p.wg.Done()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.logger.Error("Metadata watcher: failed to create watcher")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(p.userDataDir); err != nil {
		p.logger.Error("Metadata watcher: failed to watch directory")
		// Still apply whatever overrides exist now
		p.applyOverrides()
		return
	}

	// Apply initial overrides
	p.applyOverrides()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != overrideFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.debounceApply(p.debounceDelay)

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("Metadata watcher: watcher error")
		}
	}
}

func (p *Plugin) debounceApply(delay time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	p.debounce = time.AfterFunc(delay, p.applyOverrides)
}

func (p *Plugin) overridePath() string {
	return filepath.Join(p.userDataDir, overrideFile)
}

// applyOverrides reads the override file and applies non-empty fields.
// A missing file is not an error; a malformed one is logged and skipped.
func (p *Plugin) applyOverrides() {
	ov, err := loadOverrides(p.overridePath())
	if err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn("Metadata watcher: failed to read overrides")
		}
		return
	}

	if ov.Name != "" {
		p.app.SetName(ov.Name)
	}
	if ov.Version != "" {
		p.app.SetVersion(ov.Version)
	}
	if ov.Name != "" || ov.Version != "" {
		p.logger.Info("Metadata watcher: applied overrides")
	}
}

// loadOverrides reads and parses the override file at the given path.
func loadOverrides(path string) (Overrides, error) {
	var ov Overrides
	b, err := os.ReadFile(path)
	if err != nil {
		return ov, err
	}
	if err := toml.Unmarshal(b, &ov); err != nil {
		return ov, err
	}
	return ov, nil
}

// Ensure Plugin implements appshell.Plugin.
var _ appshell.Plugin = (*Plugin)(nil)
