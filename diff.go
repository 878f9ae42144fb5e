package cssdrift

import (
	"fmt"
	"regexp"
)

// Diff computes the two one-directional differences between the flattened
// template-side and stylesheet-side class sets. Elements matching any
// ignore pattern are excluded from the report; both output lists follow
// the iteration order of their source set. Diff is pure: it performs no
// I/O and does not mutate its inputs.
func Diff(templateClasses, cssClasses *ClassSet, ignore []*regexp.Regexp) Report {
	report := Report{
		CSSClassesNotFoundInTemplates: []string{},
		TemplateClassesNotFoundInCSS:  []string{},
	}

	for _, name := range cssClasses.Values() {
		if templateClasses.Has(name) || matchesAny(name, ignore) {
			continue
		}
		report.CSSClassesNotFoundInTemplates = append(report.CSSClassesNotFoundInTemplates, name)
	}

	for _, name := range templateClasses.Values() {
		if cssClasses.Has(name) || matchesAny(name, ignore) {
			continue
		}
		report.TemplateClassesNotFoundInCSS = append(report.TemplateClassesNotFoundInCSS, name)
	}

	return report
}

// matchesAny reports whether name matches at least one pattern,
// short-circuiting on the first match.
func matchesAny(name string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// CompileIgnorePatterns compiles the configured ignore expressions,
// failing on the first invalid one.
func CompileIgnorePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
