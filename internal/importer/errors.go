// internal/importer/errors.go
package importer

import "errors"

var (
	// ErrNoSources indicates the import was started with no input files.
	ErrNoSources = errors.New("no source files given")

	// ErrSourceNotFound indicates an input path does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrNotRegularFile indicates an input path exists but is not a regular file.
	ErrNotRegularFile = errors.New("source is not a regular file")

	// ErrFileAccess indicates a file could not be opened, read, or written.
	ErrFileAccess = errors.New("file access failed")

	// ErrCircularSource indicates a file reaches itself through a chain of source directives.
	ErrCircularSource = errors.New("circular source reference")

	// ErrOutputExists indicates a destination file already exists and overwriting is disabled.
	ErrOutputExists = errors.New("output file already exists")
)
