package cssdrift

import (
	"regexp"
	"strings"
)

var (
	// Static class attributes. The attribute value is delimited by the same
	// quote character that opened it and may span newlines. The leading
	// character class keeps :class= (and v-bind:class=) out of the static
	// matcher; those are handled by dynamicClassRe.
	staticClassRe = regexp.MustCompile(`(?s)(?:^|[^:\w-])class=("[^"]*"|'[^']*')`)

	// Dynamic Vue class bindings: :class="..." or :class='...', which also
	// covers the long form v-bind:class=.
	dynamicClassRe = regexp.MustCompile(`(?s):class=("[^"]*"|'[^']*')`)

	// Twig control constructs and interpolation expressions inside
	// attribute values.
	twigStatementRe     = regexp.MustCompile(`(?s)\{%.*?%\}`)
	twigInterpolationRe = regexp.MustCompile(`(?s)\{\{.*?\}\}`)

	// Bracketed subscript expressions left over after interpolation
	// handling, e.g. item[0].
	subscriptRe = regexp.MustCompile(`\[[^\]]*\]`)

	// Quoted string literals inside expressions.
	quotedLiteralRe       = regexp.MustCompile(`"[^"]*"|'[^']*'`)
	singleQuotedLiteralRe = regexp.MustCompile(`'[^']*'`)
)

// ExtractTemplateClasses returns the set of CSS class names found in raw
// template content, combining static class attributes with dynamic Vue
// class bindings. It never fails: malformed or unbalanced input degrades to
// best-effort substring extraction.
func ExtractTemplateClasses(content string) *ClassSet {
	set := NewClassSet()

	for _, match := range staticClassRe.FindAllStringSubmatch(content, -1) {
		collectStaticValue(unquote(match[1]), set)
	}
	for _, match := range dynamicClassRe.FindAllStringSubmatch(content, -1) {
		collectBindingValue(unquote(match[1]), set)
	}

	return set
}

// collectStaticValue handles one class="..." attribute value. Twig
// statements are harvested for quoted literals and blanked, interpolation
// expressions are replaced by their candidate literals, subscripts are
// stripped, and whatever remains is split on whitespace.
func collectStaticValue(value string, set *ClassSet) {
	value = twigStatementRe.ReplaceAllStringFunc(value, func(stmt string) string {
		// Classes written inside conditional/loop directives, e.g.
		// {% if error %} with a 'form--error' literal, are still real
		// candidates: harvest them before blanking the construct.
		for _, lit := range quotedLiteralRe.FindAllString(stmt, -1) {
			for _, token := range strings.Fields(unquote(lit)) {
				set.Add(token)
			}
		}
		return " "
	})

	value = twigInterpolationRe.ReplaceAllStringFunc(value, func(expr string) string {
		expr = strings.TrimPrefix(expr, "{{")
		expr = strings.TrimSuffix(expr, "}}")
		return resolveInterpolation(expr)
	})

	value = subscriptRe.ReplaceAllString(value, "")

	for _, token := range strings.Fields(value) {
		set.Add(token)
	}
}

// resolveInterpolation substitutes an interpolation expression with the
// string literals it could produce. A ternary contributes the literals of
// both branches: classes that are never simultaneously reachable are still
// reported, trading precision for recall.
func resolveInterpolation(expr string) string {
	if strings.Contains(expr, "?") {
		var sides []string
		for _, side := range strings.Split(expr, ":") {
			if lits := harvestLiterals(side); len(lits) > 0 {
				sides = append(sides, strings.Join(lits, " "))
			}
		}
		return strings.Join(sides, " ")
	}
	return strings.Join(harvestLiterals(expr), " ")
}

// harvestLiterals returns the unquoted content of every string literal in
// expr, skipping empty ones.
func harvestLiterals(expr string) []string {
	var out []string
	for _, lit := range quotedLiteralRe.FindAllString(expr, -1) {
		if s := unquote(lit); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// collectBindingValue handles one :class="..." binding value, classified by
// its leading character into object, array, or bare-expression form.
func collectBindingValue(value string, set *ClassSet) {
	trimmed := strings.TrimSpace(value)

	switch {
	case strings.HasPrefix(trimmed, "{"):
		collectObjectBinding(trimmed, set)
	case strings.HasPrefix(trimmed, "["):
		collectArrayBinding(trimmed, set)
	default:
		// Bare expression: every quoted literal is a candidate class.
		for _, lit := range harvestLiterals(trimmed) {
			set.Add(strings.TrimSpace(lit))
		}
	}
}

// collectObjectBinding extracts the keys of { key: expr, ... } pairs.
// Computed keys ([expr]: ...) are not statically resolvable and are skipped.
func collectObjectBinding(value string, set *ClassSet) {
	inner := strings.TrimPrefix(value, "{")
	inner = strings.TrimSuffix(inner, "}")

	for _, pair := range splitTopLevel(inner) {
		key := pair
		if idx := strings.Index(pair, ":"); idx >= 0 {
			key = pair[:idx]
		}
		key = strings.TrimSpace(key)
		if key == "" || strings.HasPrefix(key, "[") {
			continue
		}
		set.Add(strings.Trim(key, `"':`))
	}
}

// collectArrayBinding extracts candidates from [ elem, ... ]. Quoted
// elements contribute their content directly; object elements contribute
// their single-quoted literals; anything else (ternaries, concatenations)
// contributes every quoted literal it holds.
func collectArrayBinding(value string, set *ClassSet) {
	inner := strings.TrimPrefix(value, "[")
	inner = strings.TrimSuffix(inner, "]")

	for _, elem := range splitOutsideBraces(inner) {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}

		if isQuoted(elem) {
			set.Add(strings.TrimSpace(elem[1 : len(elem)-1]))
			continue
		}

		if strings.HasPrefix(elem, "{") {
			for _, lit := range singleQuotedLiteralRe.FindAllString(elem, -1) {
				set.Add(strings.TrimSpace(unquote(lit)))
			}
			continue
		}

		for _, lit := range harvestLiterals(elem) {
			set.Add(strings.TrimSpace(lit))
		}
	}
}

// splitTopLevel splits on commas that are not nested inside braces,
// brackets, parentheses, or quotes.
func splitTopLevel(s string) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	var quote rune

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			current.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			current.WriteRune(r)
		case r == '{' || r == '[' || r == '(':
			depth++
			current.WriteRune(r)
		case r == '}' || r == ']' || r == ')':
			depth--
			current.WriteRune(r)
		case r == ',' && depth == 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// splitOutsideBraces splits on commas that are not nested inside braces.
// Brackets and parentheses do not nest here: array elements are separated
// at their commas even when they contain ternaries or calls.
func splitOutsideBraces(s string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	for _, r := range s {
		switch r {
		case '{':
			depth++
			current.WriteRune(r)
		case '}':
			depth--
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// unquote strips one layer of matching quotes from s.
func unquote(s string) string {
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// isQuoted reports whether s is wrapped in a single matching pair of
// quote characters.
func isQuoted(s string) bool {
	return len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0]
}
