// internal/importer/validate.go
package importer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmunix/kconfmerge/pkg/suggest"
)

// NormalizeSources makes every source path absolute and verifies each
// one exists and is a regular file, preserving input order. It runs
// before any output is written, so a bad input never leaves a partial
// tree behind. A missing file's error carries a did-you-mean hint when
// a similarly named file sits in the same directory.
func NormalizeSources(sources []string) ([]string, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	out := make([]string, 0, len(sources))
	for _, src := range sources {
		abs, err := filepath.Abs(src)
		if err != nil {
			return nil, fmt.Errorf("%w: resolve %s: %v", ErrFileAccess, src, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			if os.IsNotExist(err) {
				if hint := suggestAlternative(abs); hint != "" {
					return nil, fmt.Errorf("%w: %s (did you mean %s?)", ErrSourceNotFound, abs, hint)
				}
				return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, abs)
			}
			return nil, fmt.Errorf("%w: stat %s: %v", ErrFileAccess, abs, err)
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, abs)
		}

		out = append(out, abs)
	}

	return out, nil
}

// suggestAlternative looks for a similarly named file next to the
// missing path. Returns "" when nothing is close enough.
func suggestAlternative(path string) string {
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		return ""
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	m := suggest.BestMatch(filepath.Base(path), names)
	if m.Confidence < suggest.ConfidenceMedium {
		return ""
	}
	return m.Name
}
