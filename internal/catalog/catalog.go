// Package catalog discovers languages, regions, and image/annotation
// sample pairs in a snippet dataset tree shaped
// <root>/<language>/<region>/{images,jsons}.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ListLanguages returns the lexicographically sorted names of the
// immediate subdirectories of root. A missing root yields an empty slice,
// not an error: "no dataset yet" is a normal state for the viewer.
func ListLanguages(root string) ([]string, error) {
	return listDirs(root)
}

// ListRegions returns the sorted region directories under root/language,
// with the same empty-for-absent behavior as ListLanguages.
func ListRegions(root, language string) ([]string, error) {
	return listDirs(filepath.Join(root, language))
}

func listDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}
