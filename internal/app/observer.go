package app

// LaunchInfo carries platform launch metadata delivered with the
// finish-launching notification. Keys are platform-defined.
type LaunchInfo map[string]interface{}

// AuthRequest describes a pending authentication challenge.
type AuthRequest struct {
	// URL is the resource that issued the challenge.
	URL string

	// Realm is the authentication realm reported by the server.
	Realm string

	// Scheme is the challenge scheme (e.g. "basic", "digest").
	Scheme string

	// IsProxy indicates a proxy challenge rather than a server one.
	IsProxy bool
}

// LoginHandler lets an observer answer an authentication challenge.
// Exactly one of Login or Cancel should be called.
type LoginHandler interface {
	Login(username, password string)
	Cancel()
}

// Observer receives lifecycle notifications in registration order.
// Vetoable phases (before-quit, will-quit, open-file) return a prevent
// flag; any observer returning true blocks the transition, but every
// observer still runs.
//
// Dispatch is synchronous with no timeout: an observer that never returns
// stalls the whole lifecycle.
type Observer interface {
	// OnBeforeQuit is solicited by Quit before anything else happens.
	OnBeforeQuit() (prevent bool)

	// OnWillQuit is solicited once the window set is empty during a quit.
	OnWillQuit() (prevent bool)

	// OnQuit fires unconditionally during shutdown. Irrevocable.
	OnQuit()

	// OnWillFinishLaunching fires before the host loop starts.
	OnWillFinishLaunching()

	// OnPreMainLoopRun fires just before the host loop begins running.
	OnPreMainLoopRun()

	// OnFinishLaunching fires once startup has completed.
	OnFinishLaunching(info LaunchInfo)

	// OnActivate fires when the application is activated.
	OnActivate(hasVisibleWindows bool)

	// OnWindowAllClosed fires when the last window closed organically,
	// with no quit or exit in progress.
	OnWindowAllClosed()

	// OnNewWindowForTab fires when the host requests a new tab window.
	OnNewWindowForTab()

	// OnOpenFile fires when the host asks the application to open a file.
	OnOpenFile(path string) (prevent bool)

	// OnOpenURL fires when the host asks the application to open a URL.
	OnOpenURL(url string)

	// OnAccessibilitySupportChanged fires when assistive technology
	// attaches or detaches.
	OnAccessibilitySupportChanged()

	// OnLogin fires when an authentication challenge needs an answer.
	OnLogin(handler LoginHandler, request AuthRequest)
}

// NoopObserver implements Observer with no-ops. Embed it to implement
// only the notifications you care about.
type NoopObserver struct{}

func (NoopObserver) OnBeforeQuit() bool                { return false }
func (NoopObserver) OnWillQuit() bool                  { return false }
func (NoopObserver) OnQuit()                           {}
func (NoopObserver) OnWillFinishLaunching()            {}
func (NoopObserver) OnPreMainLoopRun()                 {}
func (NoopObserver) OnFinishLaunching(LaunchInfo)      {}
func (NoopObserver) OnActivate(bool)                   {}
func (NoopObserver) OnWindowAllClosed()                {}
func (NoopObserver) OnNewWindowForTab()                {}
func (NoopObserver) OnOpenFile(string) bool            { return false }
func (NoopObserver) OnOpenURL(string)                  {}
func (NoopObserver) OnAccessibilitySupportChanged()    {}
func (NoopObserver) OnLogin(LoginHandler, AuthRequest) {}

// Ensure NoopObserver satisfies Observer.
var _ Observer = NoopObserver{}
