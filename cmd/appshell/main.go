package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/glasswing-io/appshell/internal/adapters/log"
	"github.com/glasswing-io/appshell/internal/cliconfig"
	"github.com/glasswing-io/appshell/pkg/appshell"
	"github.com/glasswing-io/appshell/plugins/metawatcher"
)

const helpDescription = `
Host an application lifecycle without writing the coordination code yourself.

Highlights:
  - Sequences startup readiness, quit negotiation, and shutdown.
  - Observers can veto cooperative quits; forced exit never negotiates.
  - A window refusing to close aborts a whole-application quit.
  - Configure via file, env (APPSHELL_*), or flags.

The CLI runs a headless demo host with placeholder windows; embed
pkg/appshell for real applications.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  appshell --name myapp --windows 2
  appshell --config $HOME/.appshell/config.toml --linger
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	exitCode := 0

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "appshell",
		Short:   "Run an application-lifecycle host with observable quit/exit/shutdown phases",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.appshell/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (APPSHELL_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// Validate and set derived defaults
			if err := cfg.Validate(); err != nil {
				return err
			}

			log = log.Level(cliconfig.ParseLevel(cfg.LogLevel))
			log.Info().Interface("config", cfg).Msg("configuration")

			zerologAdapter := logAdapter.NewZerologAdapterWithLogger(log)

			app, err := appshell.New(appshell.Config{
				Name:        cfg.Name,
				Version:     cfg.Version,
				UserDataDir: cfg.UserDataDir,
			},
				appshell.WithLogger(zerologAdapter),
				// Apply name/version overrides live from the user data dir
				metawatcher.WithDefaultMetaWatcher(),
			)
			if err != nil {
				return fmt.Errorf("create app: %w", err)
			}

			// Quit when the last window closes unless configured to linger.
			if !cfg.Linger {
				app.Observe(&appshell.ObserverFuncs{
					WindowAllClosed: app.Quit,
				})
			}

			// Open placeholder windows once startup finishes.
			go func() {
				<-app.WhenReady()
				for i := 0; i < cfg.Windows; i++ {
					app.Windows().Open(fmt.Sprintf("window-%d", i+1))
				}
			}()

			// SIGINT asks politely; a second one, or SIGTERM, does not.
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				for sig := range sigCh {
					switch sig {
					case syscall.SIGINT:
						if app.IsQuitting() {
							log.Info().Msg("second interrupt, forcing exit")
							app.Exit(130)
							continue
						}
						log.Info().Msg("received interrupt, quitting...")
						app.Quit()
						if cfg.QuitTimeout > 0 {
							time.AfterFunc(cfg.QuitTimeout, func() {
								if !app.IsShutdown() {
									log.Warn().Msg("quit timed out, forcing exit")
									app.Exit(1)
								}
							})
						}
					case syscall.SIGTERM:
						log.Info().Msg("received termination signal, exiting...")
						app.Exit(0)
					}
				}
			}()

			code, err := app.Run(context.Background())
			if err != nil {
				return fmt.Errorf("run app: %w", err)
			}
			exitCode = code
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.appshell/config.toml)")
	root.Flags().StringVar(&cfg.Name, "name", cfg.Name, "application name (defaults to packaging metadata)")
	root.Flags().StringVar(&cfg.Version, "app-version", cfg.Version, "application version override")
	root.Flags().StringVar(&cfg.UserDataDir, "user-data-dir", cfg.UserDataDir, "per-user data directory (defaults to the OS config dir)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().IntVar(&cfg.Windows, "windows", cfg.Windows, "number of placeholder windows to open")
	root.Flags().BoolVar(&cfg.Linger, "linger", cfg.Linger, "stay resident after the last window closes")
	root.Flags().DurationVar(&cfg.QuitTimeout, "quit-timeout", cfg.QuitTimeout, "force exit if a quit takes longer than this (0 disables)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("appshell")
		os.Exit(1)
	}
	os.Exit(exitCode)
}
