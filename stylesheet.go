package cssdrift

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ExtractMode selects what the stylesheet extractor collects.
type ExtractMode string

const (
	// ModeClasses collects class names from .foo selectors.
	ModeClasses ExtractMode = "classes"
	// ModeSelectors collects raw selectors. Results are best-effort and may
	// include malformed or partial selectors: nested at-rules, multi-line
	// selectors, and pseudo-selector edge cases are not fully resolved.
	ModeSelectors ExtractMode = "selectors"
)

// ErrInvalidMode is returned when an extraction mode is neither
// ModeClasses nor ModeSelectors. It is a configuration error and aborts a
// run before any file is processed.
var ErrInvalidMode = errors.New("invalid extraction mode")

var (
	cssCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// background/background-image declarations carrying a url() reference,
	// including the terminating semicolon. Removed before tokenizing so
	// path segments are never matched as selectors.
	backgroundURLRe = regexp.MustCompile(`(?i)background(?:-image)?\s*:[^;{}]*url\([^)]*\)[^;{}]*;?`)

	// Any url() reference left over outside background declarations.
	cssURLRe = regexp.MustCompile(`(?i)url\([^)]*\)`)

	// A dot followed by a class identifier.
	classSelectorRe = regexp.MustCompile(`\.(-?[A-Za-z_][A-Za-z0-9_-]*)`)

	// A run of non-brace characters immediately followed by an opening
	// brace: the selector list of one rule.
	selectorRunRe = regexp.MustCompile(`([^{}]+)\{`)
)

// ExtractStylesheetClasses returns the set of class names (ModeClasses) or
// raw selectors (ModeSelectors) found in raw CSS content. Comments and
// url()-bearing declarations are stripped first so their content is never
// mis-tokenized. An unknown mode returns ErrInvalidMode.
func ExtractStylesheetClasses(content string, mode ExtractMode) (*ClassSet, error) {
	switch mode {
	case ModeClasses, ModeSelectors:
	default:
		return nil, fmt.Errorf("%w %q (want %q or %q)", ErrInvalidMode, string(mode), ModeClasses, ModeSelectors)
	}

	content = cssCommentRe.ReplaceAllString(content, "")
	content = backgroundURLRe.ReplaceAllString(content, "")
	content = cssURLRe.ReplaceAllString(content, "")

	set := NewClassSet()

	if mode == ModeClasses {
		for _, match := range classSelectorRe.FindAllStringSubmatch(content, -1) {
			if IsValidClassName(match[1]) {
				set.Add(match[1])
			}
		}
		return set, nil
	}

	for _, match := range selectorRunRe.FindAllStringSubmatch(content, -1) {
		for _, part := range strings.Split(match[1], ",") {
			set.Add(strings.TrimSpace(part))
		}
	}
	return set, nil
}
