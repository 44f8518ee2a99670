package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/scriptkit/scriptkit-bridge/audit"
	"github.com/scriptkit/scriptkit-bridge/protocol"
	"github.com/scriptkit/scriptkit-bridge/registry"
	"github.com/scriptkit/scriptkit-bridge/types"
)

// AuditRecorder is the subset of audit.Recorder the handler depends on,
// so tests can substitute a stub without touching the filesystem.
type AuditRecorder interface {
	Record(entry audit.Entry) error
}

// Handler parses and dispatches JSON-RPC requests against a Registry
// (§4.4). It is stateless beyond its collaborators; concurrent callers
// share one Handler safely since the registry itself does no request-path
// mutation (§5).
type Handler struct {
	Registry *registry.Registry
	Version  string

	// ValidateArguments, when true, runs tools/call arguments through the
	// target script's declared schema before dispatch and fails with
	// -32602 on violation (§9 open question, opted into here).
	ValidateArguments bool

	// Audit receives one entry per tools/call, or per every dispatched
	// method when AuditAllMethods is set (§9 open question).
	Audit           AuditRecorder
	AuditAllMethods bool

	Logger types.Logger
}

// Handle parses raw as a JSON-RPC request and returns the response to
// serialize. It never panics and never returns nil (§7: "the protocol
// handler never panics; malformed input is always reflected as a
// -32600/-32602 response").
func (h *Handler) Handle(ctx context.Context, raw []byte) *protocol.Response {
	req, errResp := parseEnvelope(raw)
	if errResp != nil {
		return errResp
	}

	start := time.Now()
	resp := h.dispatch(ctx, req)
	duration := time.Since(start)

	if h.Audit != nil && (h.AuditAllMethods || req.method == protocol.MethodToolsCall) {
		h.recordAudit(req, resp, duration)
	}

	return resp
}

func (h *Handler) recordAudit(req *parsed, resp *protocol.Response, duration time.Duration) {
	entry := audit.Entry{
		Timestamp:  audit.NowISO8601Millis(time.Now()),
		Method:     req.method,
		Params:     json.RawMessage(req.params),
		DurationMs: duration.Milliseconds(),
		Success:    resp.Error == nil,
	}
	if resp.Error != nil {
		entry.Error = resp.Error.Message
	}
	if err := h.Audit.Record(entry); err != nil && h.Logger != nil {
		h.Logger.Warn("failed to write audit log entry: %s", err)
	}
}

func (h *Handler) dispatch(ctx context.Context, req *parsed) *protocol.Response {
	switch req.method {
	case protocol.MethodInitialize:
		return protocol.NewSuccess(req.id, h.initializeResult())

	case protocol.MethodToolsList:
		return protocol.NewSuccess(req.id, h.Registry.ToolsList())

	case protocol.MethodToolsCall:
		return h.handleToolsCall(req)

	case protocol.MethodResourcesList:
		return protocol.NewSuccess(req.id, h.Registry.ResourcesList())

	case protocol.MethodResourcesRead:
		return h.handleResourcesRead(req)

	default:
		return protocol.NewError(req.id, protocol.CodeMethodNotFound,
			fmt.Sprintf("Method not found: %s", req.method), nil)
	}
}

func (h *Handler) initializeResult() protocol.InitializeResult {
	return protocol.InitializeResult{
		ServerInfo: protocol.Implementation{Name: "script-kit", Version: h.Version},
		Capabilities: protocol.ServerCapabilities{
			Tools:     protocol.ToolsCapability{ListChanged: true},
			Resources: protocol.ResourcesCapability{Subscribe: false, ListChanged: true},
		},
	}
}

func (h *Handler) handleToolsCall(req *parsed) *protocol.Response {
	params, ok := paramsObject(req.params)
	if !ok {
		return protocol.NewError(req.id, protocol.CodeInvalidParams, "Invalid params: expected object", nil)
	}

	name, ok := params["name"].(string)
	if !ok || name == "" {
		return protocol.NewError(req.id, protocol.CodeInvalidParams, "Missing required parameter: name", nil)
	}

	arguments, _ := params["arguments"].(map[string]interface{})
	if arguments == nil {
		arguments = map[string]interface{}{}
	}

	if h.ValidateArguments {
		if violations, ok := h.Registry.ValidateToolArguments(name, arguments); ok && len(violations) > 0 {
			return protocol.NewError(req.id, protocol.CodeInvalidParams, "Invalid arguments", violations)
		}
	}

	result, ok := h.Registry.CallTool(name, arguments)
	if !ok {
		return protocol.NewError(req.id, protocol.CodeMethodNotFound,
			fmt.Sprintf("Method not found: %s", name), nil)
	}

	return protocol.NewSuccess(req.id, result)
}

func (h *Handler) handleResourcesRead(req *parsed) *protocol.Response {
	params, ok := paramsObject(req.params)
	if !ok {
		return protocol.NewError(req.id, protocol.CodeInvalidParams, "Invalid params: expected object", nil)
	}

	uri, ok := params["uri"].(string)
	if !ok || uri == "" {
		return protocol.NewError(req.id, protocol.CodeInvalidParams, "Missing required parameter: uri", nil)
	}

	content, ok := h.Registry.ReadResource(uri)
	if !ok {
		return protocol.NewError(req.id, protocol.CodeMethodNotFound, registry.ResourceNotFoundMessage(uri), nil)
	}

	return protocol.NewSuccess(req.id, protocol.ReadResourceResult{Contents: []protocol.ResourceContent{content}})
}
