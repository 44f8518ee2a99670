package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSetsIsErrorAndTextType(t *testing.T) {
	r := Error("boom")
	require.Len(t, r.Content, 1)
	assert.Equal(t, "text", r.Content[0].Type)
	assert.Equal(t, "boom", r.Content[0].Text)
	assert.True(t, r.IsError)
}

func TestJSONEncodesAsTextContent(t *testing.T) {
	r := JSON(map[string]int{"a": 1})
	require.Len(t, r.Content, 1)
	assert.Equal(t, "text", r.Content[0].Type)
	assert.False(t, r.IsError)

	var parsed map[string]int
	require.NoError(t, json.Unmarshal([]byte(r.Content[0].Text), &parsed))
	assert.Equal(t, 1, parsed["a"])
}

func TestTextBuildsPlainContent(t *testing.T) {
	r := Text("hello")
	require.Len(t, r.Content, 1)
	assert.Equal(t, "hello", r.Content[0].Text)
	assert.False(t, r.IsError)
}
