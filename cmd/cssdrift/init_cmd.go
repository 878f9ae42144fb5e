package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssdrift.yaml config file",
	Long:  `Create a .cssdrift.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssdrift.yaml"); err == nil && !force {
			return fmt.Errorf(".cssdrift.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssdrift.yaml", []byte(defaultConfigFile), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssdrift.yaml")
		return nil
	},
}

const defaultConfigFile = `# cssdrift configuration
# Docs: https://github.com/yacobolo/cssdrift

output-dir: ./uncss-stats
verbose: false
strict: false
format: text             # text | json

twig:
  root: templates
  pattern: "*.twig"

vue:
  root: assets/js
  pattern: "*.vue"

css:
  root: assets/css
  pattern: "*.css"

# Classes matching any of these regular expressions are excluded from the
# report (they are still extracted and persisted).
ignore:
  - "^js-"

# Also persist the raw selector inventory per stylesheet.
selectors: false

# Output file names under output-dir.
files:
  twig-records: twig-classes.json
  vue-records: vue-classes.json
  css-records: css-classes.json
  css-selectors: css-selectors.json
  css-stats: css-stats.json
  template-classes: template-classes.json
  css-classes-flat: stylesheet-classes.json
  report: report.json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
