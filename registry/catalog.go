// Package registry maintains the bridge's tool and resource catalogs: the
// fixed kit namespace, the dynamic scripts namespace derived from the
// schema parser, and the three fixed resources (§4.2, §4.3).
package registry

import (
	"fmt"
	"strings"

	"github.com/scriptkit/scriptkit-bridge/hostapi"
	"github.com/scriptkit/scriptkit-bridge/protocol"
	"github.com/scriptkit/scriptkit-bridge/stream"
	"github.com/scriptkit/scriptkit-bridge/types"
)

// Registry wires the host collaborators needed to build catalogs and
// dispatch calls per request. It holds no cached catalog state itself —
// ToolsList and ResourcesList are rebuilt fresh on every call (§3
// "constructed on demand... not cached across requests").
type Registry struct {
	Scripts    hostapi.ScriptSource
	Scriptlets hostapi.ScriptletSource
	AppState   hostapi.AppStateSource
	Window     hostapi.WindowController
	Executor   hostapi.PendingExecutor
	Logger     types.Logger

	// Streams, when non-nil, turns on the SSE side-channel: a
	// scripts/* call publishes its queued status here and the
	// response gains a stream_uri (§9 "SSE side-channel").
	Streams *stream.Hub
}

// ToolsList returns the kit namespace followed by the scripts namespace.
func (r *Registry) ToolsList() protocol.ToolsListResult {
	tools := kitTools()
	tools = append(tools, scriptTools(r.Scripts.Scripts(), r.Logger)...)
	return protocol.ToolsListResult{Tools: tools}
}

// ResourcesList returns the three fixed resource definitions.
func (r *Registry) ResourcesList() protocol.ResourcesListResult {
	return protocol.ResourcesListResult{Resources: resourceDefinitions()}
}

// CallTool resolves name by namespace prefix and dispatches it (§4.2
// "Call resolution"). ok is false only when name falls outside both the
// kit/ and scripts/ namespaces — the caller surfaces that as a
// method-not-found protocol error; everything within a recognized
// namespace always returns a ToolResult, even on application failure.
func (r *Registry) CallTool(name string, arguments map[string]interface{}) (protocol.ToolResult, bool) {
	switch {
	case strings.HasPrefix(name, "kit/"):
		return callKit(name, r.Window, r.AppState), true
	case strings.HasPrefix(name, scriptsPrefix):
		return callScript(name, arguments, r.Scripts.Scripts(), r.Executor, r.Streams), true
	default:
		return protocol.ToolResult{}, false
	}
}

// ReadResource serializes the resource named by uri. ok is false for an
// unknown uri; the caller surfaces that as "Resource not found: <uri>"
// (§4.3).
func (r *Registry) ReadResource(uri string) (protocol.ResourceContent, bool) {
	appState := hostapi.AppState{}
	if r.AppState != nil {
		appState = r.AppState.AppState()
	}
	return readResource(uri, r.Scripts.Scripts(), r.Scriptlets.Scriptlets(), appState)
}

// ResourceNotFoundMessage formats the standard diagnostic for an unknown
// resource uri.
func ResourceNotFoundMessage(uri string) string {
	return fmt.Sprintf("Resource not found: %s", uri)
}

// ValidateToolArguments checks arguments against the declared input
// schema of the scripts/<slug> tool named by name. It reports ok=false
// for kit/* tools and any name it can't resolve, since only the dynamic
// scripts namespace carries a declared schema to validate against.
func (r *Registry) ValidateToolArguments(name string, arguments map[string]interface{}) (errs []string, ok bool) {
	fields, ok := findScriptInputFields(name, r.Scripts.Scripts())
	if !ok {
		return nil, false
	}
	return ValidateArguments(fields, arguments), true
}
