package cssdrift

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScannerFixture(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()

	files := map[string]string{
		"templates/index.twig":          `<div class="home">`,
		"templates/partials/nav.twig":   `<nav class="nav">`,
		"templates/partials/README.md":  `not a template`,
		"assets/css/main.css":           `.home { }`,
		"assets/css/components/btn.css": `.btn { }`,
	}
	require.NoError(t, fsys.MkdirAll("templates/partials", 0o755))
	require.NoError(t, fsys.MkdirAll("assets/css/components", 0o755))
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	}
	return fsys
}

func TestFindFiles_MatchesByBaseName(t *testing.T) {
	fsys := newScannerFixture(t)

	files, stats, err := FindFiles(fsys, "templates", "*.twig")
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.ElementsMatch(t, []string{
		"templates/index.twig",
		"templates/partials/nav.twig",
	}, paths)
	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 0, stats.FilesSkipped)
}

func TestFindFiles_RecursesNestedDirectories(t *testing.T) {
	fsys := newScannerFixture(t)

	files, _, err := FindFiles(fsys, "assets/css", "*.css")
	require.NoError(t, err)
	require.Len(t, files, 2)
}

func TestFindFiles_MissingRootYieldsEmptyResult(t *testing.T) {
	fsys := afero.NewMemMapFs()

	files, stats, err := FindFiles(fsys, "does/not/exist", "*.vue")
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, ScanStats{}, stats)
}

func TestFindFiles_NoMatches(t *testing.T) {
	fsys := newScannerFixture(t)

	files, stats, err := FindFiles(fsys, "templates", "*.vue")
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, 0, stats.FilesDiscovered)
}

func TestFindFiles_PopulatesBaseName(t *testing.T) {
	fsys := newScannerFixture(t)

	files, _, err := FindFiles(fsys, "assets/css", "main.css")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "main.css", files[0].Name)
	assert.Equal(t, "assets/css/main.css", files[0].Path)
}
