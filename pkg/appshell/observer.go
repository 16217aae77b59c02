package appshell

import "github.com/glasswing-io/appshell/internal/app"

// Observer receives lifecycle notifications in registration order.
type Observer = app.Observer

// NoopObserver implements Observer with no-ops; embed it to implement
// only the notifications you care about.
type NoopObserver = app.NoopObserver

// LaunchInfo carries platform launch metadata.
type LaunchInfo = app.LaunchInfo

// AuthRequest describes a pending authentication challenge.
type AuthRequest = app.AuthRequest

// LoginHandler lets an observer answer an authentication challenge.
type LoginHandler = app.LoginHandler

// ObserverFuncs adapts a set of optional functions to the Observer
// interface. Nil fields are no-ops; nil vetoable fields never veto.
// Register a pointer so the registry can remove it by identity.
type ObserverFuncs struct {
	BeforeQuit                  func() (prevent bool)
	WillQuit                    func() (prevent bool)
	Quit                        func()
	WillFinishLaunching         func()
	PreMainLoopRun              func()
	FinishLaunching             func(info LaunchInfo)
	Activate                    func(hasVisibleWindows bool)
	WindowAllClosed             func()
	NewWindowForTab             func()
	OpenFile                    func(path string) (prevent bool)
	OpenURL                     func(url string)
	AccessibilitySupportChanged func()
	Login                       func(handler LoginHandler, request AuthRequest)
}

func (f *ObserverFuncs) OnBeforeQuit() bool {
	if f.BeforeQuit == nil {
		return false
	}
	return f.BeforeQuit()
}

func (f *ObserverFuncs) OnWillQuit() bool {
	if f.WillQuit == nil {
		return false
	}
	return f.WillQuit()
}

func (f *ObserverFuncs) OnQuit() {
	if f.Quit != nil {
		f.Quit()
	}
}

func (f *ObserverFuncs) OnWillFinishLaunching() {
	if f.WillFinishLaunching != nil {
		f.WillFinishLaunching()
	}
}

func (f *ObserverFuncs) OnPreMainLoopRun() {
	if f.PreMainLoopRun != nil {
		f.PreMainLoopRun()
	}
}

func (f *ObserverFuncs) OnFinishLaunching(info LaunchInfo) {
	if f.FinishLaunching != nil {
		f.FinishLaunching(info)
	}
}

func (f *ObserverFuncs) OnActivate(hasVisibleWindows bool) {
	if f.Activate != nil {
		f.Activate(hasVisibleWindows)
	}
}

func (f *ObserverFuncs) OnWindowAllClosed() {
	if f.WindowAllClosed != nil {
		f.WindowAllClosed()
	}
}

func (f *ObserverFuncs) OnNewWindowForTab() {
	if f.NewWindowForTab != nil {
		f.NewWindowForTab()
	}
}

func (f *ObserverFuncs) OnOpenFile(path string) bool {
	if f.OpenFile == nil {
		return false
	}
	return f.OpenFile(path)
}

func (f *ObserverFuncs) OnOpenURL(url string) {
	if f.OpenURL != nil {
		f.OpenURL(url)
	}
}

func (f *ObserverFuncs) OnAccessibilitySupportChanged() {
	if f.AccessibilitySupportChanged != nil {
		f.AccessibilitySupportChanged()
	}
}

func (f *ObserverFuncs) OnLogin(handler LoginHandler, request AuthRequest) {
	if f.Login != nil {
		f.Login(handler, request)
	}
}

// Ensure ObserverFuncs satisfies Observer.
var _ Observer = (*ObserverFuncs)(nil)
