package cssdrift

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// StylesheetStats summarizes one stylesheet. Counts come from a single
// lexer pass and are approximate where the input is malformed: a final
// declaration without a terminating semicolon is not counted, and at-rule
// blocks count as rules like any other.
type StylesheetStats struct {
	Path         string `json:"path"`
	Rules        int    `json:"rules"`
	Declarations int    `json:"declarations"`
	AtRules      int    `json:"atRules"`
	Classes      int    `json:"classes"` // Distinct class selectors
}

// AnalyzeStylesheet tokenizes CSS content and collects per-file statistics
// for the stats artifact and the verbose report.
func AnalyzeStylesheet(content, path string) StylesheetStats {
	stats := StylesheetStats{Path: path}
	classes := make(map[string]struct{})

	lexer := css.NewLexer(parse.NewInputString(content))
	depth := 0

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		switch tt {
		case css.LeftBraceToken:
			depth++
			stats.Rules++
		case css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		case css.SemicolonToken:
			if depth > 0 {
				stats.Declarations++
			}
		case css.AtKeywordToken:
			stats.AtRules++
		case css.DelimToken:
			if len(text) > 0 && text[0] == '.' {
				tt2, name := lexer.Next()
				if tt2 == css.ErrorToken {
					stats.Classes = len(classes)
					return stats
				}
				if tt2 == css.IdentToken {
					classes[string(name)] = struct{}{}
				}
			}
		}
	}

	stats.Classes = len(classes)
	return stats
}
