package registry

import (
	"fmt"
	"regexp"

	"github.com/scriptkit/scriptkit-bridge/schema"
	"github.com/scriptkit/scriptkit-bridge/util/conversion"
)

// ValidateArguments checks a tools/call arguments map against a script's
// declared input schema. It is opt-in (§9 open question: the bridge does
// not validate arguments before dispatch by default; a deployment may
// enable it via configuration to fail fast instead of deferring every
// mistake to the execution collaborator).
func ValidateArguments(fields schema.Fields, arguments map[string]interface{}) []string {
	v := &validator{}
	for name, fd := range fields {
		value, present := arguments[name]
		if !present {
			if fd.Required {
				v.fail("Field '%s' is required", name)
			}
			continue
		}
		v.checkField(name, value, fd)
	}
	return v.errors
}

type validator struct {
	errors []string
}

func (v *validator) fail(format string, args ...interface{}) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *validator) checkField(name string, value interface{}, fd *schema.FieldDef) {
	if !matchesType(value, fd.Type) {
		v.fail("Field '%s' must be of type '%s'", name, fd.Type)
		return
	}

	switch fd.Type {
	case schema.TypeString:
		s := value.(string)
		if fd.Min != nil && float64(len(s)) < *fd.Min {
			v.fail("Field '%s' must have length at least %.0f", name, *fd.Min)
		}
		if fd.Max != nil && float64(len(s)) > *fd.Max {
			v.fail("Field '%s' must have length at most %.0f", name, *fd.Max)
		}
		if fd.Pattern != "" {
			if matched, err := regexp.MatchString(fd.Pattern, s); err == nil && !matched {
				v.fail("Field '%s' does not match pattern '%s'", name, fd.Pattern)
			}
		}
		if len(fd.EnumValues) > 0 && !contains(fd.EnumValues, s) {
			v.fail("Field '%s' must be one of %v", name, fd.EnumValues)
		}

	case schema.TypeNumber:
		n := asFloat64(value)
		if fd.Min != nil && n < *fd.Min {
			v.fail("Field '%s' must be at least %v", name, *fd.Min)
		}
		if fd.Max != nil && n > *fd.Max {
			v.fail("Field '%s' must be at most %v", name, *fd.Max)
		}

	case schema.TypeArray:
		items, _ := value.([]interface{})
		if fd.Items != "" {
			for i, item := range items {
				if !matchesType(item, fd.Items) {
					v.fail("Item at index %d in field '%s' must be of type '%s'", i, name, fd.Items)
				}
			}
		}

	case schema.TypeObject:
		obj, ok := value.(map[string]interface{})
		if ok && len(fd.Properties) > 0 {
			for _, err := range ValidateArguments(fd.Properties, obj) {
				v.fail("In field '%s': %s", name, err)
			}
		}
	}
}

func matchesType(value interface{}, t schema.FieldType) bool {
	if t == schema.TypeAny {
		return true
	}
	switch t {
	case schema.TypeString:
		_, ok := value.(string)
		return ok
	case schema.TypeNumber:
		switch value.(type) {
		case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		default:
			return false
		}
	case schema.TypeBoolean:
		_, ok := value.(bool)
		return ok
	case schema.TypeArray:
		_, ok := value.([]interface{})
		return ok
	case schema.TypeObject:
		_, ok := value.(map[string]interface{})
		return ok
	default:
		return true
	}
}

func asFloat64(value interface{}) float64 {
	f, err := conversion.ToFloat64(value)
	if err != nil {
		return 0
	}
	return f
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
