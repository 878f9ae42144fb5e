package cssdrift

import (
	"fmt"
	"io"
)

// OutputFormat represents the console output format.
type OutputFormat string

const (
	// OutputText renders the human-readable drift report.
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data for tooling integration.
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the format flag.
// Unknown values fall back to the text report; quiet mode keeps the text
// format since output is suppressed entirely by the caller.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputText
	}
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}

// WriteOutput writes the run result in the given format.
func WriteOutput(w io.Writer, result *RunResult, format OutputFormat, config Config) error {
	if format == OutputJSON {
		return WriteResultJSON(w, result)
	}

	writeTextReport(w, result, shouldUseColors(config), config.Verbose)
	return nil
}

// writeTextReport renders the drift report for humans.
func writeTextReport(w io.Writer, result *RunResult, useColors, verbose bool) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, RenderStyle(StyleCyan, "CSS Drift Report", useColors))
	fmt.Fprintln(w, RenderStyle(StyleCyan, "================", useColors))

	cssDrift := result.Report.CSSClassesNotFoundInTemplates
	templateDrift := result.Report.TemplateClassesNotFoundInCSS

	if len(cssDrift) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintf(w, "%s (%d)\n",
			RenderStyle(StyleRed, "Stylesheet classes never referenced in templates", useColors),
			len(cssDrift))
		for _, name := range cssDrift {
			fmt.Fprintf(w, "  • %s\n", name)
		}
	}

	if len(templateDrift) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintf(w, "%s (%d)\n",
			RenderStyle(StyleYellow, "Template classes missing from stylesheets", useColors),
			len(templateDrift))
		for _, name := range templateDrift {
			fmt.Fprintf(w, "  • %s\n", name)
		}
	}

	if len(cssDrift) == 0 && len(templateDrift) == 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, RenderStyle(StyleGreen, "✓ No drift: every class is declared and referenced.", useColors))
	}

	if len(result.Skipped) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintf(w, "%s (%d)\n", RenderStyle(StyleYellow, "⚠ Skipped files", useColors), len(result.Skipped))
		for _, skip := range result.Skipped {
			fmt.Fprintf(w, "  • %s: %s\n", skip.Path, skip.Reason)
		}
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, RenderStyle(StyleCyan, "Statistics", useColors))
	fmt.Fprintln(w, "----------")
	fmt.Fprintf(w, "Twig files scanned:   %d (skipped %d)\n", result.TwigStats.FilesScanned, result.TwigStats.FilesSkipped)
	fmt.Fprintf(w, "Vue files scanned:    %d (skipped %d)\n", result.VueStats.FilesScanned, result.VueStats.FilesSkipped)
	fmt.Fprintf(w, "CSS files scanned:    %d (skipped %d)\n", result.CSSStats.FilesScanned, result.CSSStats.FilesSkipped)
	fmt.Fprintf(w, "Template classes:     %d\n", result.TemplateClassCount)
	fmt.Fprintf(w, "Stylesheet classes:   %d\n", result.StylesheetClassCount)

	if verbose && len(result.Stylesheets) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, RenderStyle(StyleCyan, "Stylesheet breakdown", useColors))
		fmt.Fprintln(w, "--------------------")
		for _, stats := range result.Stylesheets {
			fmt.Fprintf(w, "  %s\n", RenderStyle(StyleGray, stats.Path, useColors))
			fmt.Fprintf(w, "    rules: %d  declarations: %d  at-rules: %d  classes: %d\n",
				stats.Rules, stats.Declarations, stats.AtRules, stats.Classes)
		}
	}

	fmt.Fprintln(w, "")
}
