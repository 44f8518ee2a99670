package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStrictJSONIsIdentity(t *testing.T) {
	strict := `{"a":1,"b":"two","c":[1,2,3],"d":{"e":true}}`
	got := normalizeToJSON([]byte(strict))
	assert.Equal(t, strict, string(got))
}

func TestNormalizeDropsLineAndBlockComments(t *testing.T) {
	src := `{
		"a": 1, // trailing line comment
		/* a block
		   comment */
		"b": 2
	}`
	got := normalizeToJSON([]byte(src))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &parsed))
	assert.Equal(t, 1.0, parsed["a"])
	assert.Equal(t, 2.0, parsed["b"])
}

func TestNormalizeDropsTrailingCommas(t *testing.T) {
	src := `{"a": [1, 2, 3,], "b": 2,}`
	got := normalizeToJSON([]byte(src))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &parsed))
	assert.Equal(t, 2.0, parsed["b"])
}

func TestNormalizeConvertsSingleQuotedStrings(t *testing.T) {
	src := `{'type': 'string', 'description': 'it\'s fine'}`
	got := normalizeToJSON([]byte(src))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &parsed))
	assert.Equal(t, "string", parsed["type"])
	assert.Equal(t, "it's fine", parsed["description"])
}

func TestNormalizeConvertsBacktickStrings(t *testing.T) {
	src := "{`type`: `string`}"
	got := normalizeToJSON([]byte(src))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &parsed))
	assert.Equal(t, "string", parsed["type"])
}

func TestNormalizeQuotesUnquotedIdentifierKeys(t *testing.T) {
	src := `{type: "string", required: true, min_length2: 3}`
	got := normalizeToJSON([]byte(src))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &parsed))
	assert.Equal(t, "string", parsed["type"])
	assert.Equal(t, true, parsed["required"])
	assert.Equal(t, 3.0, parsed["min_length2"])
}

func TestNormalizeLeavesDoubleQuotedStringsUntouched(t *testing.T) {
	src := `{"note": "a comment // is not a comment inside a string"}`
	got := normalizeToJSON([]byte(src))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &parsed))
	assert.Equal(t, "a comment // is not a comment inside a string", parsed["note"])
}

func TestTrailingCommaFollowsSkipsCommentsAndWhitespace(t *testing.T) {
	src := []byte(", // trailing\n  }")
	assert.True(t, trailingCommaFollows(src, 1))
}
