package registry

import (
	"encoding/json"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/scriptkit/scriptkit-bridge/schema"
)

// buildInputSchema turns a schema.Fields input half into the top-level
// JSON Schema object emitted for a catalog tool (§4.2): an object schema
// whose properties are the per-field fragments and whose required array
// lists every required field, sorted for a stable per-response order.
func buildInputSchema(fields schema.Fields) *jsonschema.Schema {
	names := sortedFieldNames(fields)

	properties := make(map[string]*jsonschema.Schema, len(fields))
	required := make([]string, 0, len(fields))
	for _, name := range names {
		fd := fields[name]
		properties[name] = buildFieldSchema(fd)
		if fd.Required {
			required = append(required, name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// buildFieldSchema converts one FieldDef into a JSON Schema fragment
// (§4.2's FieldDef-to-JSON-Schema mapping).
func buildFieldSchema(fd *schema.FieldDef) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: string(fd.Type)}

	if fd.Description != "" {
		s.Description = fd.Description
	}
	if fd.Default != nil {
		if b, err := json.Marshal(fd.Default); err == nil {
			s.Default = b
		}
	}
	if fd.Example != nil {
		s.Examples = []any{fd.Example}
	}
	if len(fd.EnumValues) > 0 {
		s.Enum = make([]any, len(fd.EnumValues))
		for i, v := range fd.EnumValues {
			s.Enum[i] = v
		}
	}
	if fd.Pattern != "" {
		s.Pattern = fd.Pattern
	}

	if fd.Min != nil || fd.Max != nil {
		if fd.Type == schema.TypeNumber {
			s.Minimum = fd.Min
			s.Maximum = fd.Max
		} else {
			if fd.Min != nil {
				s.MinLength = jsonschema.Ptr(int(*fd.Min))
			}
			if fd.Max != nil {
				s.MaxLength = jsonschema.Ptr(int(*fd.Max))
			}
		}
	}

	if fd.Type == schema.TypeArray && fd.Items != "" {
		s.Items = &jsonschema.Schema{Type: string(fd.Items)}
	}

	if fd.Type == schema.TypeObject && len(fd.Properties) > 0 {
		nestedFields := make(schema.Fields, len(fd.Properties))
		for name, nested := range fd.Properties {
			nestedFields[name] = nested
		}
		nested := buildInputSchema(nestedFields)
		s.Properties = nested.Properties
		s.Required = nested.Required
	}

	return s
}

func sortedFieldNames(fields schema.Fields) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
