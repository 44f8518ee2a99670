package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDeclarationAssignment(t *testing.T) {
	src := []byte("const x = 1\nschema = {\n  input: {}\n}\n")
	d, ok := findDeclaration(src)
	require.True(t, ok)
	assert.Equal(t, declAssignment, d.kind)
	assert.Equal(t, byte('{'), src[d.braceAt])
}

func TestFindDeclarationCall(t *testing.T) {
	src := []byte("defineSchema({ input: {} })")
	d, ok := findDeclaration(src)
	require.True(t, ok)
	assert.Equal(t, declCall, d.kind)
	assert.Equal(t, byte('{'), src[d.braceAt])
}

func TestFindDeclarationNoneFound(t *testing.T) {
	_, ok := findDeclaration([]byte("console.log('no schema here')"))
	assert.False(t, ok)
}

func TestFindDeclarationPicksEarliestOccurrence(t *testing.T) {
	src := []byte("defineSchema({a:1})\nschema = {b:2}")
	d, ok := findDeclaration(src)
	require.True(t, ok)
	assert.Equal(t, declCall, d.kind)
}

func TestFindDeclarationDoesNotMatchSubstringIdentifiers(t *testing.T) {
	src := []byte("myschema = { input: {} }\nmySchema2 = {}")
	_, ok := findDeclaration(src)
	assert.False(t, ok)
}
