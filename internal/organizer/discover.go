package organizer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"docsort/internal/extract"
	"docsort/internal/services"
)

// Discover walks inputDir recursively and returns the supported files in
// deterministic (lexicographic) order. A missing or non-directory input is a
// fatal configuration error, not a per-file failure.
func Discover(inputDir string) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return nil, services.Wrap(services.ErrConfiguration, "discover", "stat input",
			fmt.Sprintf("Input folder does not exist or is not a directory: %s", inputDir), err)
	}

	var files []string
	err = filepath.WalkDir(inputDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if extract.IsSupported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "discover", "walk input", "", err)
	}
	sort.Strings(files)
	return files, nil
}
