// internal/importer/testutil_test.go
package importer

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTree writes files relative to dir and returns their absolute paths
// in the order given.
func writeTree(t *testing.T, dir string, files map[string]string, order ...string) []string {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "create parent dir")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "write %s", rel)
	}

	paths := make([]string, 0, len(order))
	for _, rel := range order {
		paths = append(paths, filepath.Join(dir, filepath.FromSlash(rel)))
	}
	return paths
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "read %s", path)
	return string(data)
}
