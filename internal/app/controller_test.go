package app

import (
	"sync"
	"testing"
)

// fakeWindowSet implements ports.WindowSet for testing.
type fakeWindowSet struct {
	empty           bool
	closeAllCalls   int
	destroyAllCalls int
}

func (f *fakeWindowSet) IsEmpty() bool { return f.empty }
func (f *fakeWindowSet) CloseAll()     { f.closeAllCalls++ }
func (f *fakeWindowSet) DestroyAll() {
	f.destroyAllCalls++
	f.empty = true
}

// fakeHost implements ports.ProcessHost for testing.
type fakeHost struct {
	bound bool
	code  int
}

func (f *fakeHost) SetExitCode(code int) bool {
	if !f.bound {
		return false
	}
	f.code = code
	return true
}

func (f *fakeHost) ExitCode() int { return f.code }

// recordingObserver counts notifications and vetoes on demand.
type recordingObserver struct {
	NoopObserver

	vetoBeforeQuit bool
	vetoWillQuit   bool
	preventOpen    bool

	beforeQuitCalls      int
	willQuitCalls        int
	quitCalls            int
	windowAllClosedCalls int
	openFileCalls        int
}

func (o *recordingObserver) OnBeforeQuit() bool {
	o.beforeQuitCalls++
	return o.vetoBeforeQuit
}

func (o *recordingObserver) OnWillQuit() bool {
	o.willQuitCalls++
	return o.vetoWillQuit
}

func (o *recordingObserver) OnQuit() { o.quitCalls++ }

func (o *recordingObserver) OnWindowAllClosed() { o.windowAllClosedCalls++ }

func (o *recordingObserver) OnOpenFile(path string) bool {
	o.openFileCalls++
	return o.preventOpen
}

func newTestController(windows *fakeWindowSet, host *fakeHost, observers ...Observer) *Controller {
	c := NewController(ControllerConfig{
		Windows: windows,
		Host:    host,
		ExitFunc: func(int) {
			panic("unexpected process termination")
		},
	})
	for _, o := range observers {
		c.Observers().Add(o)
	}
	return c
}

func TestController_ShutdownIdempotent(t *testing.T) {
	obs := &recordingObserver{}
	c := newTestController(&fakeWindowSet{empty: true}, &fakeHost{bound: true}, obs)

	terminateCalls := 0
	c.SetTerminateCallback(func() { terminateCalls++ })

	c.Shutdown()
	if !c.IsShutdown() {
		t.Fatal("IsShutdown() = false after Shutdown()")
	}
	c.Shutdown()
	c.Shutdown()

	if terminateCalls != 1 {
		t.Errorf("terminate callback invoked %d times, want 1", terminateCalls)
	}
	if obs.quitCalls != 1 {
		t.Errorf("OnQuit fired %d times, want 1", obs.quitCalls)
	}
}

func TestController_QuitVetoedByObserver(t *testing.T) {
	ws := &fakeWindowSet{empty: false}
	obs := &recordingObserver{vetoBeforeQuit: true}
	c := newTestController(ws, &fakeHost{bound: true}, obs)

	c.Quit()

	if c.IsQuitting() {
		t.Error("IsQuitting() = true after vetoed quit")
	}
	if ws.closeAllCalls != 0 {
		t.Errorf("CloseAll called %d times after vetoed quit, want 0", ws.closeAllCalls)
	}
}

func TestController_QuitVetoDoesNotPoisonLaterAttempt(t *testing.T) {
	ws := &fakeWindowSet{empty: false}
	obs := &recordingObserver{vetoBeforeQuit: true}
	c := newTestController(ws, &fakeHost{bound: true}, obs)

	c.Quit()
	if c.IsQuitting() {
		t.Fatal("first quit should have been vetoed")
	}

	obs.vetoBeforeQuit = false
	c.Quit()

	if !c.IsQuitting() {
		t.Error("IsQuitting() = false after un-vetoed quit")
	}
	if ws.closeAllCalls != 1 {
		t.Errorf("CloseAll called %d times, want 1", ws.closeAllCalls)
	}
	if obs.beforeQuitCalls != 2 {
		t.Errorf("OnBeforeQuit solicited %d times, want 2", obs.beforeQuitCalls)
	}
}

func TestController_WindowCloseCancelledAbortsQuit(t *testing.T) {
	ws := &fakeWindowSet{empty: false}
	obs := &recordingObserver{}
	c := newTestController(ws, &fakeHost{bound: true}, obs)

	terminateCalls := 0
	c.SetTerminateCallback(func() { terminateCalls++ })

	c.Quit()
	if !c.IsQuitting() {
		t.Fatal("quit should be in flight")
	}

	c.OnWindowCloseCancelled("w1")
	if c.IsQuitting() {
		t.Error("IsQuitting() = true after a window refused to close")
	}

	// The window set later empties through unrelated means: observers
	// are notified but nothing shuts down.
	ws.empty = true
	c.OnWindowAllClosed()

	if c.IsShutdown() {
		t.Error("IsShutdown() = true after cancelled quit")
	}
	if terminateCalls != 0 {
		t.Errorf("terminate callback invoked %d times, want 0", terminateCalls)
	}
	if obs.windowAllClosedCalls != 1 {
		t.Errorf("OnWindowAllClosed fired %d times, want 1", obs.windowAllClosedCalls)
	}
}

func TestController_ExitBypassesVeto(t *testing.T) {
	ws := &fakeWindowSet{empty: false}
	host := &fakeHost{bound: true}
	obs := &recordingObserver{vetoBeforeQuit: true, vetoWillQuit: true}
	c := newTestController(ws, host, obs)

	terminateCalls := 0
	c.SetTerminateCallback(func() { terminateCalls++ })

	c.Exit(7)
	if ws.destroyAllCalls != 1 {
		t.Fatalf("DestroyAll called %d times, want 1", ws.destroyAllCalls)
	}
	c.OnWindowAllClosed()

	if !c.IsShutdown() {
		t.Error("IsShutdown() = false after forced exit")
	}
	if terminateCalls != 1 {
		t.Errorf("terminate callback invoked %d times, want 1", terminateCalls)
	}
	if host.code != 7 {
		t.Errorf("exit code = %d, want 7", host.code)
	}
	if obs.beforeQuitCalls != 0 {
		t.Errorf("OnBeforeQuit solicited %d times during Exit, want 0", obs.beforeQuitCalls)
	}
	if obs.willQuitCalls != 0 {
		t.Errorf("OnWillQuit solicited %d times during Exit, want 0", obs.willQuitCalls)
	}
}

func TestController_ExitFastPathWithoutHostLoop(t *testing.T) {
	ws := &fakeWindowSet{empty: false}
	obs := &recordingObserver{}

	exitCode := -1
	c := NewController(ControllerConfig{
		Windows:  ws,
		Host:     &fakeHost{bound: false},
		ExitFunc: func(code int) { exitCode = code },
	})
	c.Observers().Add(obs)

	c.Exit(9)

	if exitCode != 9 {
		t.Errorf("fast path exit code = %d, want 9", exitCode)
	}
	if c.IsShutdown() {
		t.Error("IsShutdown() = true on fast-path exit")
	}
	if ws.destroyAllCalls != 0 {
		t.Errorf("DestroyAll called %d times on fast path, want 0", ws.destroyAllCalls)
	}
	if obs.quitCalls != 0 {
		t.Errorf("OnQuit fired %d times on fast path, want 0", obs.quitCalls)
	}
}

func TestController_WhenReadyReplaySafe(t *testing.T) {
	c := newTestController(&fakeWindowSet{empty: true}, &fakeHost{bound: true})

	ready := c.WhenReady()
	select {
	case <-ready:
		t.Fatal("readiness handle resolved before DidFinishLaunching")
	default:
	}

	c.DidFinishLaunching(LaunchInfo{"k": "v"})
	select {
	case <-ready:
	default:
		t.Fatal("readiness handle unresolved after DidFinishLaunching")
	}

	// Second finish-launching is a no-op for resolution.
	c.DidFinishLaunching(nil)

	// Late callers observe the same resolution immediately.
	select {
	case <-c.WhenReady():
	default:
		t.Fatal("late WhenReady() handle not resolved")
	}
	if !c.IsReady() {
		t.Error("IsReady() = false after DidFinishLaunching")
	}
}

func TestController_WhenReadyAfterReadyResolvesImmediately(t *testing.T) {
	c := newTestController(&fakeWindowSet{empty: true}, &fakeHost{bound: true})

	// Gate is created lazily; readiness arrived before the first query.
	c.DidFinishLaunching(nil)

	select {
	case <-c.WhenReady():
	default:
		t.Fatal("WhenReady() handle not resolved for an already-ready app")
	}
}

func TestController_LateTerminateBinding(t *testing.T) {
	obs := &recordingObserver{}
	c := newTestController(&fakeWindowSet{empty: true}, &fakeHost{bound: true}, obs)

	c.Shutdown()
	if !c.IsShutdown() {
		t.Fatal("IsShutdown() = false")
	}

	terminateCalls := 0
	c.SetTerminateCallback(func() { terminateCalls++ })
	if terminateCalls != 1 {
		t.Fatalf("late-bound terminate callback invoked %d times, want 1 (immediately)", terminateCalls)
	}

	c.Shutdown()
	if terminateCalls != 1 {
		t.Errorf("terminate callback invoked %d times after re-shutdown, want 1", terminateCalls)
	}
}

func TestController_OpenFileAggregation(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{preventOpen: true}
	third := &recordingObserver{}
	c := newTestController(&fakeWindowSet{empty: true}, &fakeHost{bound: true}, first, second, third)

	if !c.OpenFile("/tmp/doc.txt") {
		t.Error("OpenFile() = false, want true with one preventing observer")
	}
	for i, o := range []*recordingObserver{first, second, third} {
		if o.openFileCalls != 1 {
			t.Errorf("observer %d ran %d times, want 1 (no short-circuit)", i, o.openFileCalls)
		}
	}

	none := newTestController(&fakeWindowSet{empty: true}, &fakeHost{bound: true}, &recordingObserver{})
	if none.OpenFile("/tmp/doc.txt") {
		t.Error("OpenFile() = true with no preventing observers")
	}
}

func TestController_ExitWithEmptyWindowSet(t *testing.T) {
	ws := &fakeWindowSet{empty: true}
	host := &fakeHost{bound: true}
	obs := &recordingObserver{}
	c := newTestController(ws, host, obs)

	terminateCalls := 0
	c.SetTerminateCallback(func() { terminateCalls++ })

	c.Exit(3)

	if obs.quitCalls != 1 {
		t.Errorf("OnQuit fired %d times, want 1", obs.quitCalls)
	}
	if terminateCalls != 1 {
		t.Errorf("terminate callback invoked %d times, want 1", terminateCalls)
	}
	if !c.IsExiting() || !c.IsQuitting() || !c.IsShutdown() {
		t.Errorf("flags = exiting:%v quitting:%v shutdown:%v, want all true",
			c.IsExiting(), c.IsQuitting(), c.IsShutdown())
	}
	if host.code != 3 {
		t.Errorf("exit code = %d, want 3", host.code)
	}
}

func TestController_QuitDrivesWindowsThenShutdown(t *testing.T) {
	ws := &fakeWindowSet{empty: false}
	obs := &recordingObserver{}
	c := newTestController(ws, &fakeHost{bound: true}, obs)

	terminateCalls := 0
	c.SetTerminateCallback(func() { terminateCalls++ })

	c.Quit()
	if ws.closeAllCalls != 1 {
		t.Fatalf("CloseAll called %d times, want 1", ws.closeAllCalls)
	}
	if c.IsShutdown() {
		t.Fatal("shut down before windows closed")
	}

	// Windows closed gracefully; the tracker reports emptiness.
	ws.empty = true
	c.OnWindowAllClosed()

	if !c.IsShutdown() {
		t.Error("IsShutdown() = false after all windows closed during quit")
	}
	if terminateCalls != 1 {
		t.Errorf("terminate callback invoked %d times, want 1", terminateCalls)
	}
	if obs.willQuitCalls != 1 {
		t.Errorf("OnWillQuit solicited %d times, want 1", obs.willQuitCalls)
	}
}

func TestController_WillQuitVetoCancelsQuit(t *testing.T) {
	ws := &fakeWindowSet{empty: true}
	obs := &recordingObserver{vetoWillQuit: true}
	c := newTestController(ws, &fakeHost{bound: true}, obs)

	c.Quit()

	if c.IsQuitting() {
		t.Error("IsQuitting() = true after will-quit veto")
	}
	if c.IsShutdown() {
		t.Error("IsShutdown() = true after will-quit veto")
	}
}

func TestController_QuitReentryGuard(t *testing.T) {
	ws := &fakeWindowSet{empty: false}
	obs := &recordingObserver{}
	c := newTestController(ws, &fakeHost{bound: true}, obs)

	c.Quit()
	c.Quit()

	if obs.beforeQuitCalls != 1 {
		t.Errorf("OnBeforeQuit solicited %d times, want 1 (re-entry is a no-op)", obs.beforeQuitCalls)
	}
	if ws.closeAllCalls != 1 {
		t.Errorf("CloseAll called %d times, want 1", ws.closeAllCalls)
	}
}

func TestController_OrganicAllClosedOnlyNotifies(t *testing.T) {
	obs := &recordingObserver{}
	c := newTestController(&fakeWindowSet{empty: true}, &fakeHost{bound: true}, obs)

	c.OnWindowAllClosed()

	if c.IsShutdown() || c.IsQuitting() {
		t.Error("organic all-closed must not change lifecycle state")
	}
	if obs.windowAllClosedCalls != 1 {
		t.Errorf("OnWindowAllClosed fired %d times, want 1", obs.windowAllClosedCalls)
	}
}

func TestController_BadgeCount(t *testing.T) {
	c := newTestController(&fakeWindowSet{empty: true}, &fakeHost{bound: true})

	if c.BadgeCount() != 0 {
		t.Errorf("initial badge count = %d, want 0", c.BadgeCount())
	}
	c.SetBadgeCount(42)
	if c.BadgeCount() != 42 {
		t.Errorf("badge count = %d, want 42", c.BadgeCount())
	}
}

func TestController_ConcurrentCommands(t *testing.T) {
	windows := &fakeWindowSet{empty: true}
	host := &fakeHost{bound: true}
	c := newTestController(windows, host)

	// Quit and Exit race the way a signal handler and a quit-timeout
	// timer do; the status reads race the way a CLI poller does.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		c.Quit()
	}()
	go func() {
		defer wg.Done()
		c.Exit(1)
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			c.IsQuitting()
			c.IsShutdown()
			c.SetBadgeCount(i)
		}
	}()
	wg.Wait()

	if !c.IsShutdown() {
		t.Error("IsShutdown() = false after concurrent quit and exit")
	}
}
