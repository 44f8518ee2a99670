package schema

import "regexp"

// declKind distinguishes the two spellings a schema declaration may take.
type declKind int

const (
	declAssignment declKind = iota // schema = { ... }
	declCall                       // defineSchema({ ... })
)

// declaration records where a schema keyword was found and where its
// object literal begins.
type declaration struct {
	kind      declKind
	keywordAt int // byte offset of the start of "schema"/"defineSchema"
	braceAt   int // byte offset of the opening '{'
}

var (
	// "schema", optional intra-line whitespace, '=', optional whitespace, '{'.
	assignmentPattern = regexp.MustCompile(`\bschema\b[ \t]*=[ \t\r\n]*\{`)
	// "defineSchema", optional whitespace, '(', optional whitespace, '{'.
	callPattern = regexp.MustCompile(`\bdefineSchema\b[ \t\r\n]*\([ \t\r\n]*\{`)
)

// findDeclaration scans src for the earliest schema declaration of either
// family (§4.1 "Finding the declaration"). It returns false if neither
// pattern occurs anywhere in src.
func findDeclaration(src []byte) (declaration, bool) {
	assign := assignmentPattern.FindIndex(src)
	call := callPattern.FindIndex(src)

	switch {
	case assign == nil && call == nil:
		return declaration{}, false
	case call == nil || (assign != nil && assign[0] <= call[0]):
		return declaration{kind: declAssignment, keywordAt: assign[0], braceAt: assign[1] - 1}, true
	default:
		return declaration{kind: declCall, keywordAt: call[0], braceAt: call[1] - 1}, true
	}
}
