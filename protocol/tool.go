package protocol

import "github.com/google/jsonschema-go/jsonschema"

// ToolDefinition is a single catalog entry returned from tools/list.
// InputSchema is a real JSON Schema (draft-2020-12 subset) object, built
// fresh per request from a script's parsed schema or, for the kit
// namespace, a fixed empty-object schema.
type ToolDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// EmptyObjectSchema is the input schema shared by all kit/* tools: an
// object with no declared properties and no required fields.
func EmptyObjectSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
		Required:   []string{},
	}
}

// ToolsListResult is the result payload of a tools/list response.
type ToolsListResult struct {
	Tools []ToolDefinition `json:"tools"`
}
