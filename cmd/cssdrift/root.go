package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssdrift"
)

var rootCmd = &cobra.Command{
	Use:   "cssdrift",
	Short: "Detect drift between stylesheet classes and template references",
	Long: `Scan Twig templates, Vue single-file components, and stylesheets, then
report CSS classes that are declared but never referenced and classes that
are referenced but never declared. Intermediate artifacts are written as
JSON under the output directory.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runScan()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.String("output-dir", "./uncss-stats", "Directory for persisted JSON artifacts")
	f.String("twig-root", "templates", "Root of the Twig template tree")
	f.String("twig-pattern", "*.twig", "File-name pattern for Twig templates")
	f.String("vue-root", "assets/js", "Root of the Vue component tree")
	f.String("vue-pattern", "*.vue", "File-name pattern for Vue components")
	f.String("css-root", "assets/css", "Root of the stylesheet tree")
	f.String("css-pattern", "*.css", "File-name pattern for stylesheets")
	f.StringSlice("ignore", []string{"^js-"}, "Regular expressions excluding classes from the report")
	f.Bool("selectors", false, "Also persist the raw selector inventory per stylesheet")
	f.Bool("strict", false, "Exit 1 when the report is non-empty (CI mode)")
	f.String("format", "text", "Console output format: text|json")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssdrift.yaml", "Config file path")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// runScan runs the pipeline and applies the exit-code policy: strict mode
// fails on any drift, otherwise the exit code is always 0 for a run that
// completed.
func runScan() error {
	config := buildConfig()

	level := zerolog.WarnLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	result, err := cssdrift.NewPipeline(afero.NewOsFs(), config, logger).Run()
	if err != nil {
		return err
	}

	if !config.Quiet {
		format := cssdrift.DetermineOutputFormat(config.Format, config.Quiet)
		if err := cssdrift.WriteOutput(os.Stdout, result, format, config); err != nil {
			return err
		}
	}

	if config.Strict && !result.Report.Empty() {
		os.Exit(1)
	}
	return nil
}
