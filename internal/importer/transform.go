// internal/importer/transform.go
package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmunix/kconfmerge/pkg/kconfig"
)

// frame is one open file pair on the transform stack.
type frame struct {
	src  *os.File
	dst  *os.File
	r    *bufio.Reader
	w    *bufio.Writer
	path string // absolute source path
	dir  string // directory of path, resolves relative references
}

// Transform copies src into the output tree, rewriting every source
// directive to be relative to the common ancestor directory. Each
// referenced file is processed depth-first before the rest of the
// current file. Returns the copied file's path relative to the common
// directory.
//
// Called by Import once the path mapping is prepared. The walk uses an
// explicit stack of open files, so reference depth is not limited by
// the call stack; a directive chain that reaches a file already on the
// stack fails with ErrCircularSource.
func (i *Importer) Transform(src string) (string, error) {
	rel, err := i.relToCommon(src)
	if err != nil {
		return "", err
	}

	root, err := i.openFrame(src)
	if err != nil {
		return "", err
	}

	stack := []*frame{root}
	inProgress := map[string]bool{src: true}

	// Close everything without flushing when the walk aborts.
	abort := func() {
		for _, f := range stack {
			_ = f.src.Close()
			_ = f.dst.Close()
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		line, readErr := top.r.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			abort()
			return "", fmt.Errorf("%w: read %s: %v", ErrFileAccess, top.path, readErr)
		}

		if line != "" {
			if ref, ok := kconfig.ParseDirective(line); ok {
				child := resolveReference(top.dir, ref)

				if inProgress[child] {
					abort()
					return "", fmt.Errorf("%w: %s (referenced from %s)", ErrCircularSource, child, top.path)
				}

				childRel, err := i.relToCommon(child)
				if err != nil {
					abort()
					return "", err
				}

				cf, err := i.openFrame(child)
				if err != nil {
					abort()
					return "", err
				}

				// Rewritten directive replaces the whole line and
				// carries exactly one trailing newline.
				if _, err := top.w.WriteString(kconfig.Directive(childRel)); err != nil {
					_ = cf.src.Close()
					_ = cf.dst.Close()
					abort()
					return "", fmt.Errorf("%w: write %s: %v", ErrFileAccess, top.dst.Name(), err)
				}

				inProgress[child] = true
				stack = append(stack, cf)
				continue
			}

			// Everything else passes through verbatim, including
			// malformed and empty directives.
			if _, err := top.w.WriteString(line); err != nil {
				abort()
				return "", fmt.Errorf("%w: write %s: %v", ErrFileAccess, top.dst.Name(), err)
			}
		}

		if readErr == io.EOF {
			stack = stack[:len(stack)-1]
			delete(inProgress, top.path)
			if err := closeFrame(top); err != nil {
				abort()
				return "", err
			}
		}
	}

	return rel, nil
}

// resolveReference resolves a directive path against the referring
// file's directory. Absolute references stand alone.
func resolveReference(dir, ref string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Join(dir, ref)
}

// openFrame opens a source file and its mapped destination, appending
// the pair to the record list. The record stays even when a later step
// fails.
func (i *Importer) openFrame(path string) (*frame, error) {
	dest, err := i.mapToOutput(path)
	if err != nil {
		return nil, err
	}

	i.records = append(i.records, SourceRecord{Source: path, Dest: dest})
	i.log.Debug("importing kconfig", "src", path, "dest", dest)

	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrFileAccess, path, err)
	}

	dst, err := i.createOutput(dest)
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	return &frame{
		src:  src,
		dst:  dst,
		r:    bufio.NewReader(src),
		w:    bufio.NewWriter(dst),
		path: path,
		dir:  filepath.Dir(path),
	}, nil
}

func closeFrame(f *frame) error {
	if err := f.w.Flush(); err != nil {
		_ = f.src.Close()
		_ = f.dst.Close()
		return fmt.Errorf("%w: write %s: %v", ErrFileAccess, f.dst.Name(), err)
	}
	_ = f.src.Close()
	if err := f.dst.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrFileAccess, f.dst.Name(), err)
	}
	return nil
}

// createOutput creates dest according to the overwrite policy.
// Returns ErrOutputExists when overwriting is disabled and dest exists.
func (i *Importer) createOutput(dest string) (*os.File, error) {
	if i.cfg.Overwrite == OverwriteNever {
		if _, err := os.Stat(dest); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrOutputExists, dest)
		}
	}

	f, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrFileAccess, dest, err)
	}
	return f, nil
}
