package cssdrift

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export schema for one run.
type JSONOutput struct {
	Version     string            `json:"version"`
	Timestamp   string            `json:"timestamp"`
	Summary     JSONSummary       `json:"summary"`
	Report      Report            `json:"report"`
	Stylesheets []StylesheetStats `json:"stylesheets"`
	Skipped     []SkippedFile     `json:"skipped"`
}

// JSONSummary contains high-level counts.
type JSONSummary struct {
	TemplateClasses   int `json:"template_classes"`
	StylesheetClasses int `json:"stylesheet_classes"`
	CSSNotInTemplates int `json:"css_not_in_templates"`
	TemplatesNotInCSS int `json:"templates_not_in_css"`
	FilesScanned      int `json:"files_scanned"`
	FilesSkipped      int `json:"files_skipped"`
}

// WriteResultJSON writes the run result as indented JSON.
func WriteResultJSON(w io.Writer, result *RunResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts a RunResult to the export schema.
func buildJSONOutput(result *RunResult) JSONOutput {
	scanned := result.TwigStats.FilesScanned + result.VueStats.FilesScanned + result.CSSStats.FilesScanned

	skipped := result.Skipped
	if skipped == nil {
		skipped = []SkippedFile{}
	}
	stylesheets := result.Stylesheets
	if stylesheets == nil {
		stylesheets = []StylesheetStats{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TemplateClasses:   result.TemplateClassCount,
			StylesheetClasses: result.StylesheetClassCount,
			CSSNotInTemplates: len(result.Report.CSSClassesNotFoundInTemplates),
			TemplatesNotInCSS: len(result.Report.TemplateClassesNotFoundInCSS),
			FilesScanned:      scanned,
			FilesSkipped:      len(result.Skipped),
		},
		Report:      result.Report,
		Stylesheets: stylesheets,
		Skipped:     skipped,
	}
}
