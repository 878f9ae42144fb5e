package cssdrift

// Config holds the full pipeline configuration. Every option is enumerated
// and defaulted explicitly at the call site (see DefaultConfig and the CLI's
// buildConfig); nothing is read from ambient state.
type Config struct {
	OutputDir string // Directory for persisted artifacts (default: ./uncss-stats)

	TwigRoot    string // Root of the Twig template tree
	TwigPattern string // File-name pattern for Twig templates, e.g. "*.twig"
	VueRoot     string // Root of the Vue component tree
	VuePattern  string // File-name pattern for Vue components, e.g. "*.vue"
	CSSRoot     string // Root of the stylesheet tree
	CSSPattern  string // File-name pattern for stylesheets, e.g. "*.css"

	// IgnorePatterns are regular expressions; a class matching any of them
	// is excluded from the diff report only, never from extraction.
	IgnorePatterns []string

	Selectors bool   // Also persist the raw selector inventory per stylesheet
	Verbose   bool   // Enable debug logging
	Strict    bool   // Exit 1 when the report is non-empty (CI mode)
	Quiet     bool   // Suppress all console output (exit code only)
	UseColors bool   // Force color output
	Format    string // Console output format: "text" or "json"

	Files ArtifactFiles // Output file names for intermediate and final artifacts
}

// ArtifactFiles names the JSON artifacts written under Config.OutputDir.
type ArtifactFiles struct {
	TwigRecords       string // Per-file Twig extraction records
	VueRecords        string // Per-file Vue extraction records
	CSSRecords        string // Per-file stylesheet class records
	CSSSelectors      string // Per-file raw selector records (when Selectors is set)
	CSSStats          string // Per-file stylesheet statistics
	TemplateClasses   string // Flattened template-side class set
	StylesheetClasses string // Flattened stylesheet-side class set
	Report            string // Final diff report
}

// DefaultConfig returns the documented defaults for every option.
func DefaultConfig() Config {
	return Config{
		OutputDir:      "./uncss-stats",
		TwigRoot:       "templates",
		TwigPattern:    "*.twig",
		VueRoot:        "assets/js",
		VuePattern:     "*.vue",
		CSSRoot:        "assets/css",
		CSSPattern:     "*.css",
		IgnorePatterns: []string{"^js-"},
		Format:         "text",
		Files: ArtifactFiles{
			TwigRecords:       "twig-classes.json",
			VueRecords:        "vue-classes.json",
			CSSRecords:        "css-classes.json",
			CSSSelectors:      "css-selectors.json",
			CSSStats:          "css-stats.json",
			TemplateClasses:   "template-classes.json",
			StylesheetClasses: "stylesheet-classes.json",
			Report:            "report.json",
		},
	}
}

// TemplateRecord is the persisted extraction result for one template file.
// Data holds the classes found in that file joined by a single space.
// Records are created once during extraction and never mutated afterward.
type TemplateRecord struct {
	Data string `json:"data"`
	Path string `json:"path"`
}

// StylesheetRecord is the persisted extraction result for one stylesheet.
// Data holds the distinct class names (or raw selectors, in selector mode)
// found in that file.
type StylesheetRecord struct {
	Data []string `json:"data"`
	Path string `json:"path"`
}

// Report is the final diff output, recomputed fully on each run.
type Report struct {
	CSSClassesNotFoundInTemplates []string `json:"cssClassesNotFoundInTemplates"`
	TemplateClassesNotFoundInCSS  []string `json:"templateClassesNotFoundInCss"`
}

// Empty reports whether the diff found nothing on either side.
func (r Report) Empty() bool {
	return len(r.CSSClassesNotFoundInTemplates) == 0 &&
		len(r.TemplateClassesNotFoundInCSS) == 0
}

// ScanStats tracks file discovery statistics for one input category.
type ScanStats struct {
	FilesDiscovered int // Files matched by the name pattern
	FilesScanned    int // Files actually read and extracted
	FilesSkipped    int // Files dropped by filtering or read failures
}

// RunResult aggregates everything a single pipeline run produced.
type RunResult struct {
	Report Report

	TemplateClassCount   int // Size of the flattened template-side set
	StylesheetClassCount int // Size of the flattened stylesheet-side set

	TwigStats ScanStats
	VueStats  ScanStats
	CSSStats  ScanStats

	Skipped     []SkippedFile     // Files dropped with their reasons
	Stylesheets []StylesheetStats // Per-file analyzer statistics
}
