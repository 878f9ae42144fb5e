package cssdrift

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Pipeline runs the full scan: discover input files, extract classes per
// file, persist per-file records, flatten both sides into global sets,
// diff them, and persist the report. Runs are single-threaded and
// synchronous; all intermediate sets stay function-local until the final
// flatten/diff step.
type Pipeline struct {
	fs     afero.Fs
	config Config
	log    zerolog.Logger
}

// NewPipeline creates a pipeline over the given filesystem and
// configuration.
func NewPipeline(fsys afero.Fs, config Config, logger zerolog.Logger) *Pipeline {
	return &Pipeline{fs: fsys, config: config, log: logger}
}

// Run executes the pipeline to completion. Per-file read failures are
// recovered by skipping the file; configuration errors and artifact write
// failures are fatal.
func (p *Pipeline) Run() (*RunResult, error) {
	ignore, err := CompileIgnorePatterns(p.config.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	if err := p.fs.MkdirAll(p.config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", p.config.OutputDir, err)
	}

	result := &RunResult{}

	// Template side: Twig and Vue trees share one extractor.
	twigRecords, twigStats, twigSkipped := p.collectTemplates(p.config.TwigRoot, p.config.TwigPattern)
	vueRecords, vueStats, vueSkipped := p.collectTemplates(p.config.VueRoot, p.config.VuePattern)
	result.TwigStats = twigStats
	result.VueStats = vueStats
	result.Skipped = append(result.Skipped, twigSkipped...)
	result.Skipped = append(result.Skipped, vueSkipped...)

	// Stylesheet side.
	cssRecords, cssStats, cssSkipped, fileStats := p.collectStylesheets()
	result.CSSStats = cssStats
	result.Skipped = append(result.Skipped, cssSkipped...)
	result.Stylesheets = fileStats

	if err := p.persist(p.config.Files.TwigRecords, twigRecords); err != nil {
		return nil, err
	}
	if err := p.persist(p.config.Files.VueRecords, vueRecords); err != nil {
		return nil, err
	}
	if err := p.persist(p.config.Files.CSSRecords, cssRecords); err != nil {
		return nil, err
	}
	if err := p.persist(p.config.Files.CSSStats, fileStats); err != nil {
		return nil, err
	}

	if p.config.Selectors {
		selectorRecords, err := p.collectSelectors()
		if err != nil {
			return nil, err
		}
		if err := p.persist(p.config.Files.CSSSelectors, selectorRecords); err != nil {
			return nil, err
		}
	}

	// Flatten, sorted so the artifacts and the diff order do not depend on
	// file discovery order.
	templateClasses := NewClassSet(FlattenTemplateRecords(append(twigRecords, vueRecords...)).Sorted()...)
	cssClasses := NewClassSet(FlattenStylesheetRecords(cssRecords).Sorted()...)
	result.TemplateClassCount = templateClasses.Len()
	result.StylesheetClassCount = cssClasses.Len()

	if err := p.persist(p.config.Files.TemplateClasses, templateClasses.Values()); err != nil {
		return nil, err
	}
	if err := p.persist(p.config.Files.StylesheetClasses, cssClasses.Values()); err != nil {
		return nil, err
	}

	result.Report = Diff(templateClasses, cssClasses, ignore)
	if err := p.persist(p.config.Files.Report, result.Report); err != nil {
		return nil, err
	}

	p.log.Debug().
		Int("templateClasses", result.TemplateClassCount).
		Int("stylesheetClasses", result.StylesheetClassCount).
		Int("cssNotFound", len(result.Report.CSSClassesNotFoundInTemplates)).
		Int("templateNotFound", len(result.Report.TemplateClassesNotFoundInCSS)).
		Msg("run complete")

	return result, nil
}

// collectTemplates extracts classes from every template under root.
func (p *Pipeline) collectTemplates(root, pattern string) ([]TemplateRecord, ScanStats, []SkippedFile) {
	records := []TemplateRecord{}
	var skipped []SkippedFile

	files, stats, err := FindFiles(p.fs, root, pattern)
	if err != nil {
		p.log.Warn().Err(err).Str("root", root).Msg("discovery failed, tree skipped")
		skipped = append(skipped, SkippedFile{Path: root, Reason: err.Error()})
		return records, stats, skipped
	}

	for _, file := range files {
		content, err := afero.ReadFile(p.fs, file.Path)
		if err != nil {
			p.log.Warn().Err(err).Str("file", file.Path).Msg("unreadable file skipped")
			skipped = append(skipped, SkippedFile{Path: file.Path, Reason: err.Error()})
			stats.FilesScanned--
			stats.FilesSkipped++
			continue
		}

		classes := ExtractTemplateClasses(string(content))
		records = append(records, TemplateRecord{
			Data: strings.Join(classes.Values(), " "),
			Path: file.Path,
		})
		p.log.Debug().Str("file", file.Path).Int("classes", classes.Len()).Msg("template extracted")
	}

	return records, stats, skipped
}

// collectStylesheets extracts class names and statistics from every
// stylesheet under the configured root.
func (p *Pipeline) collectStylesheets() ([]StylesheetRecord, ScanStats, []SkippedFile, []StylesheetStats) {
	records := []StylesheetRecord{}
	fileStats := []StylesheetStats{}
	var skipped []SkippedFile

	files, stats, err := FindFiles(p.fs, p.config.CSSRoot, p.config.CSSPattern)
	if err != nil {
		p.log.Warn().Err(err).Str("root", p.config.CSSRoot).Msg("discovery failed, tree skipped")
		skipped = append(skipped, SkippedFile{Path: p.config.CSSRoot, Reason: err.Error()})
		return records, stats, skipped, fileStats
	}

	for _, file := range files {
		content, err := afero.ReadFile(p.fs, file.Path)
		if err != nil {
			p.log.Warn().Err(err).Str("file", file.Path).Msg("unreadable file skipped")
			skipped = append(skipped, SkippedFile{Path: file.Path, Reason: err.Error()})
			stats.FilesScanned--
			stats.FilesSkipped++
			continue
		}

		classes, err := ExtractStylesheetClasses(string(content), ModeClasses)
		if err != nil {
			p.log.Warn().Err(err).Str("file", file.Path).Msg("extraction failed, file skipped")
			skipped = append(skipped, SkippedFile{Path: file.Path, Reason: err.Error()})
			stats.FilesScanned--
			stats.FilesSkipped++
			continue
		}

		records = append(records, StylesheetRecord{Data: classes.Values(), Path: file.Path})
		fileStats = append(fileStats, AnalyzeStylesheet(string(content), file.Path))
		p.log.Debug().Str("file", file.Path).Int("classes", classes.Len()).Msg("stylesheet extracted")
	}

	return records, stats, skipped, fileStats
}

// collectSelectors builds the raw selector inventory for every stylesheet.
// Unreadable files were already reported during class extraction and are
// silently dropped here.
func (p *Pipeline) collectSelectors() ([]StylesheetRecord, error) {
	records := []StylesheetRecord{}

	files, _, err := FindFiles(p.fs, p.config.CSSRoot, p.config.CSSPattern)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		content, err := afero.ReadFile(p.fs, file.Path)
		if err != nil {
			continue
		}
		selectors, err := ExtractStylesheetClasses(string(content), ModeSelectors)
		if err != nil {
			return nil, err
		}
		records = append(records, StylesheetRecord{Data: selectors.Values(), Path: file.Path})
	}

	return records, nil
}

// persist writes one artifact into the output directory.
func (p *Pipeline) persist(name string, value any) error {
	return WriteJSON(p.fs, filepath.Join(p.config.OutputDir, name), value)
}

// FlattenTemplateRecords collapses per-file template records into one
// deduplicated set. Flattening is a pure union: re-flattening identical
// input yields an identical set regardless of file order.
func FlattenTemplateRecords(records []TemplateRecord) *ClassSet {
	set := NewClassSet()
	for _, record := range records {
		for _, name := range strings.Fields(record.Data) {
			set.Add(name)
		}
	}
	return set
}

// FlattenStylesheetRecords collapses per-file stylesheet records into one
// deduplicated set.
func FlattenStylesheetRecords(records []StylesheetRecord) *ClassSet {
	set := NewClassSet()
	for _, record := range records {
		for _, name := range record.Data {
			set.Add(name)
		}
	}
	return set
}
