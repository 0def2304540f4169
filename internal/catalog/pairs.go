package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// AnnotationExt is the fixed sidecar extension in the dataset contract.
const AnnotationExt = ".json"

// DefaultExtensions are the raster image extensions scanned when the
// caller passes none (lowercase, with leading dot).
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// Pair associates an image file with the annotation sidecar sharing its
// filename stem.
type Pair struct {
	ImagePath      string `json:"image_path"`
	AnnotationPath string `json:"annotation_path"`
}

// Stem returns the join key: the image filename without its extension.
func (p Pair) Stem() string {
	base := filepath.Base(p.ImagePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ImageName returns the image filename including its extension.
func (p Pair) ImageName() string {
	return filepath.Base(p.ImagePath)
}

// LoadPairs scans <root>/<language>/<region>/images for files matching
// exts (DefaultExtensions when nil) and pairs each with
// jsons/<stem>.json when that sidecar exists. Images without a sidecar
// are skipped silently; a missing images or jsons directory yields an
// empty result. Output is sorted lexicographically by image filename and
// is stable across calls for an unchanged tree.
func LoadPairs(root, language, region string, exts []string) ([]Pair, error) {
	regionDir := filepath.Join(root, language, region)
	imgDir := filepath.Join(regionDir, "images")
	jsDir := filepath.Join(regionDir, "jsons")

	if !dirExists(imgDir) || !dirExists(jsDir) {
		return nil, nil
	}

	entries, err := os.ReadDir(imgDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read images directory %s: %w", imgDir, err)
	}

	if exts == nil {
		exts = DefaultExtensions
	}
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if allowed[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var pairs []Pair
	for _, name := range names {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		sidecar := filepath.Join(jsDir, stem+AnnotationExt)
		if _, err := os.Stat(sidecar); err != nil {
			// Unpaired image, not an error.
			continue
		}
		pairs = append(pairs, Pair{
			ImagePath:      filepath.Join(imgDir, name),
			AnnotationPath: sidecar,
		})
	}

	return pairs, nil
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
