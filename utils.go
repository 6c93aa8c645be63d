package scs

import (
	"fmt"
	"strings"
)

// replace substitutes "{key}" placeholders in template with the
// corresponding values from params.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}

// isDigit reports whether r is one of the ASCII digits this module's
// non-goals restrict numbers to.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isNameStart reports whether r may begin a schema-DSL property name.
func isNameStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// isNameChar reports whether r may continue a schema-DSL property name.
func isNameChar(r rune) bool {
	return isNameStart(r) || isDigit(r)
}

// isASCIISpace reports whether r is whitespace under this module's JSON
// dialect.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
