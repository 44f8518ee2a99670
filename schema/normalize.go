package schema

// normalizeToJSON rewrites a permissive-dialect object literal into strict
// JSON in a single forward pass (§4.1 "Normalizing to JSON" / §9
// "Permissive-to-strict object rewriter"). It:
//
//   - converts single-quoted and backtick-delimited strings to
//     double-quoted strings, preserving escape pairs and content;
//   - drops // line comments and /* block */ comments outside strings;
//   - drops a trailing comma immediately followed (through whitespace and
//     comments) by ']' or '}';
//   - quotes unquoted identifier keys (next non-whitespace byte is ':').
//
// All other bytes pass through unchanged.
func normalizeToJSON(literal []byte) []byte {
	out := make([]byte, 0, len(literal))
	n := len(literal)
	i := 0

	for i < n {
		c := literal[i]

		switch {
		case c == '"':
			j := copyStringVerbatim(literal, i)
			out = append(out, literal[i:j]...)
			i = j

		case c == '\'' || c == '`':
			j, rewritten := rewriteStringToDoubleQuoted(literal, i)
			out = append(out, rewritten...)
			i = j

		case c == '/' && i+1 < n && literal[i+1] == '/':
			i = skipLineComment(literal, i)

		case c == '/' && i+1 < n && literal[i+1] == '*':
			i = skipBlockComment(literal, i)

		case c == ',':
			if trailingCommaFollows(literal, i+1) {
				i++
			} else {
				out = append(out, c)
				i++
			}

		case isIdentStart(c):
			j := i + 1
			for j < n && isIdentPart(literal[j]) {
				j++
			}
			ident := literal[i:j]
			if nextNonSpaceIs(literal, j, ':') {
				out = append(out, '"')
				out = append(out, ident...)
				out = append(out, '"')
			} else {
				out = append(out, ident...)
			}
			i = j

		default:
			out = append(out, c)
			i++
		}
	}

	return out
}

// copyStringVerbatim returns the index one past the end of the
// double-quoted string starting at literal[start].
func copyStringVerbatim(literal []byte, start int) int {
	n := len(literal)
	j := start + 1
	for j < n {
		if literal[j] == '\\' && j+1 < n {
			j += 2
			continue
		}
		if literal[j] == '"' {
			return j + 1
		}
		j++
	}
	return n
}

// rewriteStringToDoubleQuoted converts a single- or backtick-delimited
// string starting at literal[start] into a double-quoted string, escaping
// any embedded double quote. It returns the index past the closing
// delimiter and the rewritten bytes.
func rewriteStringToDoubleQuoted(literal []byte, start int) (int, []byte) {
	delim := literal[start]
	n := len(literal)
	out := []byte{'"'}

	j := start + 1
	for j < n {
		c := literal[j]
		switch {
		case c == '\\' && j+1 < n:
			next := literal[j+1]
			switch next {
			case delim:
				// an escape that exists only to avoid ending the original
				// string; the character itself needs no escaping here
				// unless it happens to be a double quote.
				if next == '"' {
					out = append(out, '\\', '"')
				} else {
					out = append(out, next)
				}
			case '"':
				out = append(out, '\\', '"')
			default:
				out = append(out, c, next)
			}
			j += 2
		case c == delim:
			j++
			return j, append(out, '"')
		case c == '"':
			out = append(out, '\\', '"')
			j++
		default:
			out = append(out, c)
			j++
		}
	}
	return j, append(out, '"')
}

func skipLineComment(literal []byte, start int) int {
	j := start + 2
	for j < len(literal) && literal[j] != '\n' {
		j++
	}
	return j
}

func skipBlockComment(literal []byte, start int) int {
	n := len(literal)
	j := start + 2
	for j+1 < n && !(literal[j] == '*' && literal[j+1] == '/') {
		j++
	}
	if j+1 < n {
		return j + 2
	}
	return n
}

// trailingCommaFollows reports whether, skipping whitespace and comments
// starting at literal[from], the next significant byte is ']' or '}'.
func trailingCommaFollows(literal []byte, from int) bool {
	n := len(literal)
	i := from
	for i < n {
		switch {
		case isSpace(literal[i]):
			i++
		case literal[i] == '/' && i+1 < n && literal[i+1] == '/':
			i = skipLineComment(literal, i)
		case literal[i] == '/' && i+1 < n && literal[i+1] == '*':
			i = skipBlockComment(literal, i)
		default:
			return literal[i] == ']' || literal[i] == '}'
		}
	}
	return false
}

func nextNonSpaceIs(literal []byte, from int, want byte) bool {
	n := len(literal)
	i := from
	for i < n && isSpace(literal[i]) {
		i++
	}
	return i < n && literal[i] == want
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
