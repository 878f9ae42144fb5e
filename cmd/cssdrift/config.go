package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssdrift"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssdrift.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Environment variables (CSSDRIFT_* prefix):
	// CSSDRIFT_TWIG_ROOT -> twig.root
	// CSSDRIFT_VERBOSE   -> verbose
	if err := k.Load(env.Provider("CSSDRIFT_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSDRIFT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the library's Config struct from koanf state,
// enumerating every option with its default at the call site.
func buildConfig() cssdrift.Config {
	config := cssdrift.DefaultConfig()

	config.OutputDir = getStringWithFallback("output-dir", "output-dir", config.OutputDir)
	config.TwigRoot = getStringWithFallback("twig-root", "twig.root", config.TwigRoot)
	config.TwigPattern = getStringWithFallback("twig-pattern", "twig.pattern", config.TwigPattern)
	config.VueRoot = getStringWithFallback("vue-root", "vue.root", config.VueRoot)
	config.VuePattern = getStringWithFallback("vue-pattern", "vue.pattern", config.VuePattern)
	config.CSSRoot = getStringWithFallback("css-root", "css.root", config.CSSRoot)
	config.CSSPattern = getStringWithFallback("css-pattern", "css.pattern", config.CSSPattern)
	config.Selectors = getBoolWithFallback("selectors", "selectors", config.Selectors)
	config.Strict = getBoolWithFallback("strict", "strict", config.Strict)
	config.Format = getStringWithFallback("format", "format", config.Format)
	config.Verbose = getBoolWithFallback("verbose", "verbose", config.Verbose)
	config.Quiet = getBoolWithFallback("quiet", "quiet", config.Quiet)
	config.UseColors = getBoolWithFallback("color", "color", config.UseColors)

	if patterns := k.Strings("ignore"); len(patterns) > 0 {
		config.IgnorePatterns = patterns
	}

	config.Files.TwigRecords = getStringWithFallback("", "files.twig-records", config.Files.TwigRecords)
	config.Files.VueRecords = getStringWithFallback("", "files.vue-records", config.Files.VueRecords)
	config.Files.CSSRecords = getStringWithFallback("", "files.css-records", config.Files.CSSRecords)
	config.Files.CSSSelectors = getStringWithFallback("", "files.css-selectors", config.Files.CSSSelectors)
	config.Files.CSSStats = getStringWithFallback("", "files.css-stats", config.Files.CSSStats)
	config.Files.TemplateClasses = getStringWithFallback("", "files.template-classes", config.Files.TemplateClasses)
	config.Files.StylesheetClasses = getStringWithFallback("", "files.css-classes-flat", config.Files.StylesheetClasses)
	config.Files.Report = getStringWithFallback("", "files.report", config.Files.Report)

	return config
}

// getStringWithFallback checks the flag key first, then the config file
// key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if flagKey != "" {
		if v := k.String(flagKey); v != "" {
			return v
		}
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
