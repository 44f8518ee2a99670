package schema

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Parse scans src for a schema/defineSchema declaration, extracts and
// normalizes its object literal, and decodes it into a Schema (§4.1). It
// never returns a Go error: every failure mode is surfaced as a
// diagnostic on the returned Result, with Schema left nil.
func Parse(src []byte) *Result {
	decl, ok := findDeclaration(src)
	if !ok {
		return &Result{}
	}

	start, end, err := extractObjectLiteral(src, decl.braceAt)
	if err != nil {
		return &Result{Diagnostics: []string{err.Error()}}
	}

	literal := src[start:end]
	normalized := normalizeToJSON(literal)

	var raw map[string]interface{}
	if err := json.Unmarshal(normalized, &raw); err != nil {
		return &Result{Diagnostics: []string{fmt.Sprintf("schema JSON parse error: %s", err)}}
	}

	sch, diag := decodeSchema(raw)
	if sch == nil {
		return &Result{Diagnostics: diag}
	}

	spanEnd := end
	if decl.kind == declCall {
		spanEnd = closingParenAfter(src, end)
	}

	return &Result{
		Schema:      sch,
		Span:        &Span{Start: decl.keywordAt, End: spanEnd},
		Diagnostics: diag,
	}
}

// closingParenAfter returns the index one past the first ')' found at or
// after objEnd, or objEnd itself if none is found (defensive default; the
// call pattern that led here already matched an opening '(').
func closingParenAfter(src []byte, objEnd int) int {
	for i := objEnd; i < len(src); i++ {
		if src[i] == ')' {
			return i + 1
		}
	}
	return objEnd
}

// decodeSchema decodes a generic JSON object into a Schema, rejecting the
// whole schema if any field anywhere in it carries an unrecognized type
// (§4.1 "Deserialization").
func decodeSchema(raw map[string]interface{}) (*Schema, []string) {
	sch := &Schema{}

	if v, ok := raw["input"]; ok {
		fields, diag := decodeFields(v)
		if diag != nil {
			return nil, diag
		}
		sch.Input = fields
	}

	if v, ok := raw["output"]; ok {
		fields, diag := decodeFields(v)
		if diag != nil {
			return nil, diag
		}
		sch.Output = fields
	}

	return sch, nil
}

func decodeFields(v interface{}) (Fields, []string) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, []string{"schema field group must be an object"}
	}

	fields := make(Fields, len(m))
	for name, def := range m {
		fd, diag := decodeFieldDef(def)
		if diag != nil {
			return nil, append([]string{fmt.Sprintf("field %q: ", name)}, diag...)
		}
		fields[name] = fd
	}
	return fields, nil
}

func decodeFieldDef(v interface{}) (*FieldDef, []string) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, []string{"field definition must be an object"}
	}

	fd := &FieldDef{Type: TypeString}

	props, hasProps := m["properties"]
	decodable := m
	if hasProps {
		decodable = make(map[string]interface{}, len(m)-1)
		for k, v := range m {
			if k != "properties" {
				decodable[k] = v
			}
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           fd,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      false,
		ZeroFields:       false,
	})
	if err != nil {
		return nil, []string{fmt.Sprintf("internal decoder error: %s", err)}
	}
	if err := decoder.Decode(decodable); err != nil {
		return nil, []string{fmt.Sprintf("malformed field definition: %s", err)}
	}

	if !fd.Type.valid() {
		return nil, []string{fmt.Sprintf("unknown field type %q", fd.Type)}
	}

	if hasProps && fd.Type == TypeObject {
		nested, diag := decodeFields(props)
		if diag != nil {
			return nil, diag
		}
		fd.Properties = nested
	}

	return fd, nil
}
