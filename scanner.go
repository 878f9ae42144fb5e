package cssdrift

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
)

// FoundFile is one discovered input file.
type FoundFile struct {
	Name string // Base name, e.g. "header.twig"
	Path string // Full path within the scanned filesystem
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// No .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a discovered file is excluded from
// scanning. Gitignore rules only apply to relative paths (paths within the
// project); absolute paths are never affected by the project gitignore.
func shouldSkipFile(path string) bool {
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// FindFiles walks root recursively and returns every file whose base name
// matches pattern (doublestar syntax), together with discovery statistics.
// A missing root yields an empty result rather than an error, so a project
// without one of the input trees still produces a report from the rest.
// No ordering of the results is guaranteed.
func FindFiles(fsys afero.Fs, root, pattern string) ([]FoundFile, ScanStats, error) {
	stats := ScanStats{}

	if ok, _ := afero.DirExists(fsys, root); !ok {
		return nil, stats, nil
	}

	var files []FoundFile
	walkErr := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		matched, err := doublestar.Match(pattern, info.Name())
		if err != nil {
			return fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if !matched {
			return nil
		}

		stats.FilesDiscovered++
		if shouldSkipFile(path) {
			stats.FilesSkipped++
			return nil
		}

		stats.FilesScanned++
		files = append(files, FoundFile{Name: info.Name(), Path: path})
		return nil
	})
	if walkErr != nil {
		return nil, stats, fmt.Errorf("walking %s: %w", root, walkErr)
	}

	return files, stats, nil
}
