package registry

import (
	"testing"

	"github.com/scriptkit/scriptkit-bridge/schema"
	"github.com/stretchr/testify/assert"
)

func TestValidateArgumentsRequiredFieldMissing(t *testing.T) {
	fields := schema.Fields{"title": &schema.FieldDef{Type: schema.TypeString, Required: true}}
	errs := ValidateArguments(fields, map[string]interface{}{})
	assert.NotEmpty(t, errs)
}

func TestValidateArgumentsTypeMismatch(t *testing.T) {
	fields := schema.Fields{"count": &schema.FieldDef{Type: schema.TypeNumber}}
	errs := ValidateArguments(fields, map[string]interface{}{"count": "not a number"})
	assert.NotEmpty(t, errs)
}

func TestValidateArgumentsEnumViolation(t *testing.T) {
	fields := schema.Fields{"color": &schema.FieldDef{Type: schema.TypeString, EnumValues: []string{"red", "blue"}}}
	errs := ValidateArguments(fields, map[string]interface{}{"color": "green"})
	assert.NotEmpty(t, errs)
}

func TestValidateArgumentsWithinBoundsPasses(t *testing.T) {
	min, max := 1.0, 5.0
	fields := schema.Fields{"rating": &schema.FieldDef{Type: schema.TypeNumber, Min: &min, Max: &max}}
	errs := ValidateArguments(fields, map[string]interface{}{"rating": 3.0})
	assert.Empty(t, errs)
}

func TestValidateArgumentsAnyTypeAlwaysPasses(t *testing.T) {
	fields := schema.Fields{"x": &schema.FieldDef{Type: schema.TypeAny}}
	errs := ValidateArguments(fields, map[string]interface{}{"x": []interface{}{1, 2}})
	assert.Empty(t, errs)
}
