// Package rpc implements the JSON-RPC 2.0 protocol handler: envelope
// parsing and validation, the five-method dispatch table, and translation
// of registry results into protocol responses (§4.4).
package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/scriptkit/scriptkit-bridge/protocol"
)

// parsed is a validated request envelope ready for dispatch.
type parsed struct {
	id     json.RawMessage
	method string
	params json.RawMessage
}

// parseEnvelope runs the five-step parse stage of §4.4. On any failure it
// returns a ready-to-serialize error Response instead of an error value,
// since every failure mode here already has a fixed JSON-RPC shape.
func parseEnvelope(raw []byte) (*parsed, *protocol.Response) {
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, protocol.NewError(nil, protocol.CodeParseError, fmt.Sprintf("Parse error: %s", err), nil)
	}

	id := generic["id"]

	var version string
	if raw, ok := generic["jsonrpc"]; !ok {
		return nil, protocol.NewError(id, protocol.CodeInvalidRequest, "Missing 'jsonrpc' field", nil)
	} else if err := json.Unmarshal(raw, &version); err != nil {
		return nil, protocol.NewError(id, protocol.CodeInvalidRequest, "Missing 'jsonrpc' field", nil)
	}
	if version != "2.0" {
		return nil, protocol.NewError(id, protocol.CodeInvalidRequest,
			fmt.Sprintf("Invalid jsonrpc version: expected '2.0', got '%s'", version), nil)
	}

	var method string
	if raw, ok := generic["method"]; !ok {
		return nil, protocol.NewError(id, protocol.CodeInvalidRequest, "Missing 'method' field", nil)
	} else if err := json.Unmarshal(raw, &method); err != nil {
		return nil, protocol.NewError(id, protocol.CodeInvalidRequest, "Missing 'method' field", nil)
	}

	params := generic["params"]
	if params == nil {
		params = json.RawMessage("{}")
	}

	return &parsed{id: id, method: method, params: params}, nil
}

// paramsObject decodes params into a generic map, enforcing the "params
// must be an object" rule shared by tools/call and resources/read.
func paramsObject(params json.RawMessage) (map[string]interface{}, bool) {
	var obj map[string]interface{}
	if err := json.Unmarshal(params, &obj); err != nil {
		return nil, false
	}
	return obj, true
}
