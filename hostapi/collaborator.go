package hostapi

// ScriptSource supplies the current, immutable snapshot of the host's
// script registry. The bridge never mutates or caches the result across
// requests (§5: "no shared mutable state is modified on the request
// path inside the bridge").
type ScriptSource interface {
	Scripts() []*Script
}

// ScriptletSource supplies the current scriptlet snapshot.
type ScriptletSource interface {
	Scriptlets() []*Scriptlet
}

// AppStateSource supplies the current app-state snapshot. A host that has
// not wired a real source yet should still satisfy this interface and
// return the zero-value AppState (§4.3: "If the host has not supplied a
// snapshot, emit the default").
type AppStateSource interface {
	AppState() AppState
}

// WindowController performs the actual window effects for kit/show and
// kit/hide. The bridge calls Show or Hide synchronously while dispatching
// the tool call, before the RPC result is written back to the client.
type WindowController interface {
	Show()
	Hide()
}

// PendingCall describes a scripts/* tool invocation handed off for
// out-of-process execution.
type PendingCall struct {
	ScriptPath string
	Arguments  map[string]interface{}
}

// PendingExecutor enqueues a script invocation with a separate execution
// collaborator and returns immediately; it never runs the script itself
// (§1 non-goals: "Actual execution of a script process... is a pending
// hand-off").
type PendingExecutor interface {
	Enqueue(call PendingCall) error
}

// NoopScriptSource always reports an empty script snapshot, used when the
// bridge runs standalone without a host script registry wired in.
type NoopScriptSource struct{}

func (NoopScriptSource) Scripts() []*Script { return nil }

// NoopScriptletSource always reports an empty scriptlet snapshot.
type NoopScriptletSource struct{}

func (NoopScriptletSource) Scriptlets() []*Scriptlet { return nil }

// NoopAppStateSource always reports the zero-value AppState.
type NoopAppStateSource struct{}

func (NoopAppStateSource) AppState() AppState { return AppState{} }

// NoopWindowController is a WindowController that performs no UI effect,
// used when the bridge runs without a wired host window.
type NoopWindowController struct{}

func (NoopWindowController) Show() {}
func (NoopWindowController) Hide() {}

// NoopPendingExecutor accepts every call and does nothing further, used
// when the bridge runs without a wired execution runtime.
type NoopPendingExecutor struct{}

func (NoopPendingExecutor) Enqueue(PendingCall) error { return nil }

var (
	_ ScriptSource     = NoopScriptSource{}
	_ ScriptletSource  = NoopScriptletSource{}
	_ AppStateSource   = NoopAppStateSource{}
	_ WindowController = NoopWindowController{}
	_ PendingExecutor  = NoopPendingExecutor{}
)
