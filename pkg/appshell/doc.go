// Package appshell provides an embeddable application-lifecycle controller
// for long-lived GUI-hosting programs.
//
// An App sequences startup readiness, quit negotiation, and shutdown, and
// fans lifecycle notifications out to registered observers. Observers may
// veto the cooperative phases (before-quit, will-quit, open-file); forced
// exit is never negotiable.
//
// # Basic Usage
//
//	app, err := appshell.New(appshell.Config{Name: "myapp"},
//	    appshell.WithObserver(&appshell.ObserverFuncs{
//	        WindowAllClosed: func() { /* host policy */ },
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	go func() {
//	    <-app.WhenReady()
//	    app.Windows().Open("main")
//	}()
//
//	code, err := app.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(code)
//
// # Concurrency
//
// Lifecycle commands are safe to issue from any goroutine: signal
// handlers, timers, and window callbacks may call Quit, Exit, and the
// notification entry points concurrently. Observers run synchronously on
// whichever goroutine triggered the phase, and may call back into the
// App.
package appshell
