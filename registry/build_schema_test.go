package registry

import (
	"testing"

	"github.com/scriptkit/scriptkit-bridge/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInputSchemaNumericBounds(t *testing.T) {
	min, max := 1.0, 10.0
	fields := schema.Fields{
		"count": &schema.FieldDef{Type: schema.TypeNumber, Min: &min, Max: &max},
	}
	s := buildInputSchema(fields)
	count := s.Properties["count"]
	require.NotNil(t, count.Minimum)
	require.NotNil(t, count.Maximum)
	assert.Equal(t, 1.0, *count.Minimum)
	assert.Equal(t, 10.0, *count.Maximum)
}

func TestBuildInputSchemaStringLengthBounds(t *testing.T) {
	min, max := 2.0, 20.0
	fields := schema.Fields{
		"title": &schema.FieldDef{Type: schema.TypeString, Min: &min, Max: &max},
	}
	s := buildInputSchema(fields)
	title := s.Properties["title"]
	require.NotNil(t, title.MinLength)
	require.NotNil(t, title.MaxLength)
	assert.Equal(t, 2, *title.MinLength)
	assert.Equal(t, 20, *title.MaxLength)
}

func TestBuildInputSchemaArrayItems(t *testing.T) {
	fields := schema.Fields{
		"tags": &schema.FieldDef{Type: schema.TypeArray, Items: schema.TypeString},
	}
	s := buildInputSchema(fields)
	tags := s.Properties["tags"]
	require.NotNil(t, tags.Items)
	assert.Equal(t, "string", tags.Items.Type)
}

func TestBuildInputSchemaAnyTypeIsLiteral(t *testing.T) {
	fields := schema.Fields{"x": &schema.FieldDef{Type: schema.TypeAny}}
	s := buildInputSchema(fields)
	assert.Equal(t, "any", s.Properties["x"].Type)
}

func TestBuildInputSchemaNestedObjectProperties(t *testing.T) {
	fields := schema.Fields{
		"address": &schema.FieldDef{
			Type: schema.TypeObject,
			Properties: map[string]*schema.FieldDef{
				"city": {Type: schema.TypeString, Required: true},
			},
		},
	}
	s := buildInputSchema(fields)
	addr := s.Properties["address"]
	require.NotNil(t, addr)
	require.Contains(t, addr.Properties, "city")
	assert.Equal(t, []string{"city"}, addr.Required)
}

func TestBuildInputSchemaRequiredArrayAlwaysPresent(t *testing.T) {
	s := buildInputSchema(schema.Fields{})
	assert.NotNil(t, s.Required)
	assert.Empty(t, s.Required)
}
