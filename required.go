package scs

import (
	"fmt"
	"sort"
	"strings"
)

// missingRequiredError builds a ParseFailure naming every required key a
// ConstrainedObjectParser saw close before without, singular or plural depending on count.
func missingRequiredError(remaining stringSet) *ParseFailure {
	missing := remaining.toSlice()
	sort.Strings(missing)

	if len(missing) == 1 {
		return NewParseFailure(ErrMissingRequiredKeys, "missing_required_property",
			"required property {property} is missing",
			map[string]any{"property": fmt.Sprintf("'%s'", missing[0])})
	}

	quoted := make([]string, len(missing))
	for i, k := range missing {
		quoted[i] = fmt.Sprintf("'%s'", k)
	}
	return NewParseFailure(ErrMissingRequiredKeys, "missing_required_properties",
		"required properties {properties} are missing",
		map[string]any{"properties": strings.Join(quoted, ", ")})
}
