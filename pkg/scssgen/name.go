package scssgen

import (
	"regexp"

	"github.com/iancoleman/strcase"
)

var trailingDigits = regexp.MustCompile(`([a-z])([0-9]+)$`)

// FormatTokenName converts an internal camelCase token identifier into its
// public hyphenated declaration name, separating any trailing digit group:
// interactive01 -> interactive-01, uiBackground -> ui-background. The
// conversion is stable over already-formatted names.
func FormatTokenName(id string) string {
	name := strcase.ToKebab(id)

	return trailingDigits.ReplaceAllString(name, "$1-$2")
}
