package cssdrift

import "regexp"

// validClassNameRe matches a CSS class identifier: an optional leading
// hyphen, then a letter or underscore, then letters, digits, underscores
// and hyphens. Matching is case-sensitive.
var validClassNameRe = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// IsValidClassName reports whether s is a well-formed CSS class name.
func IsValidClassName(s string) bool {
	return validClassNameRe.MatchString(s)
}
