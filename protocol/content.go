package protocol

// ContentItem is a single item of a ToolResult's content list, per §3 of
// the bridge spec: a {type, text} pair. The bridge only ever emits the
// "text" content type — tool execution is a pending hand-off, so there is
// no image/audio/embedded-resource output to represent yet.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TextContent builds a ContentItem carrying plain or JSON-encoded text.
func TextContent(text string) ContentItem {
	return ContentItem{Type: "text", Text: text}
}

// ToolResult is the envelope returned from a tools/call, carried as the
// JSON-RPC response's result. Unknown tools and tool-level failures are
// represented here with IsError set, never as a JSON-RPC protocol error
// (§7: application errors are a JSON-RPC success with is_error=true).
type ToolResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ResourceContent is a single resource body returned from resources/read.
type ResourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// ReadResourceResult wraps the resource body list per the MCP wire shape.
type ReadResourceResult struct {
	Contents []ResourceContent `json:"contents"`
}
