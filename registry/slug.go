package registry

import (
	"regexp"
	"strings"
)

var nonAlphanumericRun = regexp.MustCompile(`[^a-z0-9]+`)

// slug lowercases name, replaces any run of non-alphanumeric characters
// with a single hyphen, and strips leading/trailing hyphens (§4.2
// "Scripts namespace — tool emission").
func slug(name string) string {
	lowered := strings.ToLower(name)
	hyphenated := nonAlphanumericRun.ReplaceAllString(lowered, "-")
	return strings.Trim(hyphenated, "-")
}
