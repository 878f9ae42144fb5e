// Package cssdrift detects drift between CSS class names declared in
// stylesheets and class names referenced in templates.
//
// It scans a template tree (Twig templates and Vue single-file components)
// and a stylesheet tree, extracts class-name tokens from each side, and
// reports classes present in one set but absent from the other.
//
// # Extraction
//
// Extraction is pattern-driven, not grammar-driven: class-bearing syntax is
// matched out of semi-structured text with composable regular expressions.
// This is deliberate — the extractors tolerate malformed input by best-effort
// matching instead of rejecting it, and their blind spots (selector-mode CSS
// extraction in particular) are documented on the functions themselves.
//
//	classes := cssdrift.ExtractTemplateClasses(`<div class="btn btn--sm">`)
//	// classes: {btn, btn--sm}
//
//	classes, err := cssdrift.ExtractStylesheetClasses(".btn { color: red; }", cssdrift.ModeClasses)
//	// classes: {btn}
//
// # Pipeline
//
// The full scan is a synchronous batch pipeline: discover files → extract
// per file → persist per-file records → flatten into two global sets →
// diff → persist the report.
//
//	config := cssdrift.DefaultConfig()
//	config.TwigRoot = "templates"
//	config.CSSRoot = "assets/css"
//	result, err := cssdrift.NewPipeline(afero.NewOsFs(), config, logger).Run()
//
// # CLI Tool
//
// cssdrift also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssdrift/cmd/cssdrift@latest
package cssdrift
