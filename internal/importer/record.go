package importer

import "context"

// SourceRecord pairs an input file with the path its copy was written to.
// Records are appended in processing order; a file reached through two
// different parents appears twice.
type SourceRecord struct {
	Source string `json:"source"` // Absolute path of the original file
	Dest   string `json:"dest"`   // Absolute path of the written copy
}

// Run describes one completed import for recording.
type Run struct {
	Title   string
	Kconfig string
	Records []SourceRecord
}

// Recorder receives the outcome of a completed import.
// Implementations persist run provenance (see internal/history).
type Recorder interface {
	RecordRun(ctx context.Context, run Run) error
}
