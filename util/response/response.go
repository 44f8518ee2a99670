// Package response builds ToolResult content lists, the common shape
// every tools/call handler returns.
package response

import (
	"encoding/json"
	"fmt"

	"github.com/scriptkit/scriptkit-bridge/protocol"
)

// Error builds an error ToolResult carrying a single text content item
// and IsError set (§4.2: application-level tool failures, never a
// JSON-RPC protocol error).
func Error(msg string) protocol.ToolResult {
	return protocol.ToolResult{
		Content: []protocol.ContentItem{protocol.TextContent(msg)},
		IsError: true,
	}
}

// JSON builds a successful ToolResult whose single content item's text is
// the JSON encoding of v. Content items are always {type: "text", ...};
// JSON payloads are carried as JSON-encoded text, not a distinct type.
func JSON(v interface{}) protocol.ToolResult {
	b, err := json.Marshal(v)
	if err != nil {
		return Error(fmt.Sprintf("failed to marshal response: %s", err))
	}
	return Text(string(b))
}

// Text builds a successful single-item text ToolResult.
func Text(msg string) protocol.ToolResult {
	return protocol.ToolResult{
		Content: []protocol.ContentItem{protocol.TextContent(msg)},
	}
}
