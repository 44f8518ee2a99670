package schema

import "errors"

// errUnbalancedBraces is the diagnostic text for brace-balanced extraction
// failures, verbatim as spec'd in §4.1.
var errUnbalancedBraces = errors.New("Unbalanced braces in schema object")

// extractObjectLiteral performs brace-balanced extraction of the object
// literal starting at src[braceAt] (which must be '{'). It returns the
// literal's byte range [braceAt, end) inclusive of both braces.
//
// Inside strings delimited by ", ', or `, only the matching delimiter
// closes the string, and a backslash escapes the following byte. Outside
// strings, brace depth is tracked; extraction stops the instant depth
// returns to zero.
func extractObjectLiteral(src []byte, braceAt int) (start, end int, err error) {
	depth := 0
	var inString byte // 0 when not inside a string

	for i := braceAt; i < len(src); i++ {
		c := src[i]

		if inString != 0 {
			switch c {
			case '\\':
				i++ // skip the escaped byte
			case inString:
				inString = 0
			}
			continue
		}

		switch c {
		case '"', '\'', '`':
			inString = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return braceAt, i + 1, nil
			}
		}
	}

	return 0, 0, errUnbalancedBraces
}
