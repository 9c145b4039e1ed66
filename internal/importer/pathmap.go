// internal/importer/pathmap.go
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CommonDir returns the deepest directory shared by every path.
// Paths are compared by their containing directories, so a single
// input yields that input's own directory. Paths sharing nothing but
// the filesystem root yield the root.
func CommonDir(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	common := splitSegments(filepath.Dir(paths[0]))
	for _, p := range paths[1:] {
		segs := splitSegments(filepath.Dir(p))
		if len(segs) < len(common) {
			common = common[:len(segs)]
		}
		for i := range common {
			if common[i] != segs[i] {
				common = common[:i]
				break
			}
		}
	}

	if len(common) <= 1 {
		return string(filepath.Separator)
	}
	return strings.Join(common, string(filepath.Separator))
}

func splitSegments(dir string) []string {
	return strings.Split(filepath.Clean(dir), string(filepath.Separator))
}

// relToCommon returns path relative to the common ancestor directory.
// Paths outside the common directory produce ".." segments.
func (i *Importer) relToCommon(path string) (string, error) {
	rel, err := filepath.Rel(i.commonDir, path)
	if err != nil {
		return "", fmt.Errorf("%w: relativize %s: %v", ErrFileAccess, path, err)
	}
	return rel, nil
}

// mapToOutput maps a source file to its destination in the output tree,
// creating intermediate destination directories as needed.
func (i *Importer) mapToOutput(path string) (string, error) {
	rel, err := i.relToCommon(path)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(i.outputDir, rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("%w: create directory %s: %v", ErrFileAccess, filepath.Dir(dest), err)
	}
	return dest, nil
}
