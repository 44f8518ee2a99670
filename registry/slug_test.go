package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugLowercasesAndHyphenates(t *testing.T) {
	assert.Equal(t, "create-note", slug("Create Note"))
	assert.Equal(t, "my-script", slug("My Script!"))
	assert.Equal(t, "my-script", slug("  --My__Script--  "))
	assert.Equal(t, "a-b-c", slug("A.B.C"))
	assert.Equal(t, "", slug("!!!"))
}
