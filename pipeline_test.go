package cssdrift

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipelineFixture(t *testing.T) (afero.Fs, Config) {
	t.Helper()
	fsys := afero.NewMemMapFs()

	require.NoError(t, fsys.MkdirAll("templates", 0o755))
	require.NoError(t, fsys.MkdirAll("assets/js", 0o755))
	require.NoError(t, fsys.MkdirAll("assets/css", 0o755))

	files := map[string]string{
		"templates/index.twig": `<div class="home js-scroll"><a class="link">go</a></div>`,
		"assets/js/App.vue":    `<div :class="{ active: isOn, 'has-error': hasError }">`,
		"assets/css/main.css":  `.home { } .link { } .active { } .orphan { color: red; }`,
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}

	config := DefaultConfig()
	config.OutputDir = "out"
	return fsys, config
}

func readArtifact(t *testing.T, fsys afero.Fs, path string, v any) {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestPipelineRun_EndToEnd(t *testing.T) {
	fsys, config := newPipelineFixture(t)

	result, err := NewPipeline(fsys, config, zerolog.Nop()).Run()
	require.NoError(t, err)

	// Drift: orphan is styled but never referenced; has-error is referenced
	// but never styled; js-scroll is suppressed by the default ignore list.
	assert.Equal(t, []string{"orphan"}, result.Report.CSSClassesNotFoundInTemplates)
	assert.Equal(t, []string{"has-error"}, result.Report.TemplateClassesNotFoundInCSS)

	assert.Equal(t, 1, result.TwigStats.FilesScanned)
	assert.Equal(t, 1, result.VueStats.FilesScanned)
	assert.Equal(t, 1, result.CSSStats.FilesScanned)
	assert.Empty(t, result.Skipped)

	// The persisted report matches the returned one.
	var report Report
	readArtifact(t, fsys, "out/report.json", &report)
	assert.Equal(t, result.Report, report)
}

func TestPipelineRun_RecordShapes(t *testing.T) {
	fsys, config := newPipelineFixture(t)

	_, err := NewPipeline(fsys, config, zerolog.Nop()).Run()
	require.NoError(t, err)

	var twigRecords []TemplateRecord
	readArtifact(t, fsys, "out/twig-classes.json", &twigRecords)
	require.Len(t, twigRecords, 1)
	assert.Equal(t, "templates/index.twig", twigRecords[0].Path)
	assert.Equal(t, "home js-scroll link", twigRecords[0].Data)

	var cssRecords []StylesheetRecord
	readArtifact(t, fsys, "out/css-classes.json", &cssRecords)
	require.Len(t, cssRecords, 1)
	assert.Equal(t, "assets/css/main.css", cssRecords[0].Path)
	assert.ElementsMatch(t, []string{"home", "link", "active", "orphan"}, cssRecords[0].Data)
}

func TestPipelineRun_FlattenedArtifactsAreSortedAndDeduplicated(t *testing.T) {
	fsys, config := newPipelineFixture(t)
	require.NoError(t, afero.WriteFile(fsys, "templates/dup.twig",
		[]byte(`<div class="link home">`), 0o644))

	_, err := NewPipeline(fsys, config, zerolog.Nop()).Run()
	require.NoError(t, err)

	var templateClasses []string
	readArtifact(t, fsys, "out/template-classes.json", &templateClasses)
	assert.Equal(t, []string{"active", "has-error", "home", "js-scroll", "link"}, templateClasses)

	var cssClasses []string
	readArtifact(t, fsys, "out/stylesheet-classes.json", &cssClasses)
	assert.Equal(t, []string{"active", "home", "link", "orphan"}, cssClasses)
}

func TestPipelineRun_IgnoreAppliedOnlyAtDiffTime(t *testing.T) {
	fsys, config := newPipelineFixture(t)

	result, err := NewPipeline(fsys, config, zerolog.Nop()).Run()
	require.NoError(t, err)

	// js-scroll survives extraction and flattening...
	var templateClasses []string
	readArtifact(t, fsys, "out/template-classes.json", &templateClasses)
	assert.Contains(t, templateClasses, "js-scroll")

	// ...and is dropped from the report only.
	assert.NotContains(t, result.Report.TemplateClassesNotFoundInCSS, "js-scroll")
}

func TestPipelineRun_SelectorInventory(t *testing.T) {
	fsys, config := newPipelineFixture(t)
	config.Selectors = true

	_, err := NewPipeline(fsys, config, zerolog.Nop()).Run()
	require.NoError(t, err)

	var selectorRecords []StylesheetRecord
	readArtifact(t, fsys, "out/css-selectors.json", &selectorRecords)
	require.Len(t, selectorRecords, 1)
	assert.ElementsMatch(t, []string{".home", ".link", ".active", ".orphan"}, selectorRecords[0].Data)
}

func TestPipelineRun_InvalidIgnorePatternIsFatal(t *testing.T) {
	fsys, config := newPipelineFixture(t)
	config.IgnorePatterns = []string{"["}

	_, err := NewPipeline(fsys, config, zerolog.Nop()).Run()
	require.Error(t, err)

	// Fatal before any file is processed: no artifacts were written.
	exists, _ := afero.Exists(fsys, "out/report.json")
	assert.False(t, exists)
}

func TestPipelineRun_ReadOnlyOutputIsFatal(t *testing.T) {
	fsys, config := newPipelineFixture(t)

	_, err := NewPipeline(afero.NewReadOnlyFs(fsys), config, zerolog.Nop()).Run()
	require.Error(t, err)
}

func TestFlattenTemplateRecords_OrderIndependent(t *testing.T) {
	records := []TemplateRecord{
		{Data: "a b", Path: "one.twig"},
		{Data: "b c", Path: "two.twig"},
		{Data: "c d a", Path: "three.twig"},
	}
	permuted := []TemplateRecord{records[2], records[0], records[1]}

	assert.Equal(t,
		FlattenTemplateRecords(records).Sorted(),
		FlattenTemplateRecords(permuted).Sorted())
	assert.Equal(t, []string{"a", "b", "c", "d"}, FlattenTemplateRecords(records).Sorted())
}

func TestFlattenStylesheetRecords_OrderIndependent(t *testing.T) {
	records := []StylesheetRecord{
		{Data: []string{"x", "y"}, Path: "a.css"},
		{Data: []string{"y", "z"}, Path: "b.css"},
	}
	permuted := []StylesheetRecord{records[1], records[0]}

	assert.Equal(t,
		FlattenStylesheetRecords(records).Sorted(),
		FlattenStylesheetRecords(permuted).Sorted())
	assert.Equal(t, []string{"x", "y", "z"}, FlattenStylesheetRecords(records).Sorted())
}
