// Package schema parses the permissive JavaScript-object dialect Script
// Kit scripts use to declare a `schema = { ... }` or `defineSchema({ ... })`
// block, and turns it into a typed Schema model.
package schema

// FieldType is one of the six value kinds a FieldDef may declare.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"
	TypeAny     FieldType = "any"
)

func (t FieldType) valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeArray, TypeObject, TypeAny:
		return true
	default:
		return false
	}
}

// FieldDef describes one field of a schema's input or output half (§3).
type FieldDef struct {
	Type        FieldType            `json:"type" mapstructure:"type"`
	Required    bool                 `json:"required" mapstructure:"required"`
	Description string               `json:"description,omitempty" mapstructure:"description"`
	Default     interface{}          `json:"default,omitempty" mapstructure:"default"`
	Example     interface{}          `json:"example,omitempty" mapstructure:"example"`
	EnumValues  []string             `json:"enum_values,omitempty" mapstructure:"enum_values"`
	Min         *float64             `json:"min,omitempty" mapstructure:"min"`
	Max         *float64             `json:"max,omitempty" mapstructure:"max"`
	Pattern     string               `json:"pattern,omitempty" mapstructure:"pattern"`
	Items       FieldType            `json:"items,omitempty" mapstructure:"items"`
	Properties  map[string]*FieldDef `json:"properties,omitempty" mapstructure:"properties"`
}

// Fields is a mapping of field name to FieldDef. It keeps no order:
// Go map iteration order is randomized, which matches the spec's
// "order need not be stable across runs" invariant; callers that need a
// single internally-consistent enumeration order for one response must
// sort once and reuse that order for every array derived from it.
type Fields map[string]*FieldDef

// Schema is a pair of input/output field mappings (§3). A Schema with
// both halves empty is equivalent to "no schema" for tool-emission
// purposes, though it may still be returned distinctly by Parse.
type Schema struct {
	Input  Fields `json:"input"`
	Output Fields `json:"output"`
}

// HasInput reports whether the schema declares at least one input field.
// Only schemas with a non-empty input half generate a catalog tool (§3).
func (s *Schema) HasInput() bool {
	return s != nil && len(s.Input) > 0
}

// Span is a byte range [Start, End) within the source the schema
// declaration was extracted from.
type Span struct {
	Start int
	End   int
}

// Result is the outcome of parsing one script's source for a schema
// declaration: either a Schema with a Span, or none, plus any
// diagnostics accumulated along the way. No error ever propagates out of
// Parse — callers inspect Result instead (§4.1).
type Result struct {
	Schema      *Schema
	Span        *Span
	Diagnostics []string
}

// Found reports whether a schema declaration was located and
// successfully parsed.
func (r *Result) Found() bool {
	return r != nil && r.Schema != nil
}
