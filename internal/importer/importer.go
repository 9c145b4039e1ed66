// Package importer merges independent Kconfig source trees into a
// single generated root file, copying every referenced file into a
// mirrored output tree and rewriting source directives so the merged
// tree resolves from its new location.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vmunix/kconfmerge/pkg/kconfig"
)

// OverwritePolicy controls what happens when a destination file
// already exists.
type OverwritePolicy string

const (
	// OverwriteAlways replaces existing destination files.
	OverwriteAlways OverwritePolicy = "always"

	// OverwriteNever fails the import when any destination exists.
	OverwriteNever OverwritePolicy = "never"
)

// Config holds the parameters of one import run.
type Config struct {
	Title     string          // Mainmenu title for the generated root
	Kconfig   string          // Output root file path
	Overwrite OverwritePolicy // Destination overwrite policy
}

// Importer merges Kconfig trees. Single-threaded and single-use:
// create one per run.
type Importer struct {
	cfg       Config
	recorder  Recorder // nil if history is disabled
	commonDir string
	outputDir string
	records   []SourceRecord
	log       *slog.Logger
}

// New creates an importer for one run. A nil recorder disables run
// recording; a nil logger falls back to slog.Default.
func New(cfg Config, recorder Recorder, log *slog.Logger) *Importer {
	if cfg.Overwrite == "" {
		cfg.Overwrite = OverwriteAlways
	}
	if log == nil {
		log = slog.Default()
	}

	return &Importer{
		cfg:      cfg,
		recorder: recorder,
		log:      log,
	}
}

// Import merges the given source files into the configured root file.
// Sources should be absolute paths to existing regular files; see
// NormalizeSources. The root file is written first, then each source
// tree is transformed in order. Recording the run is best effort.
//
// All errors are fatal. Files already written stay on disk.
func (i *Importer) Import(ctx context.Context, sources []string) error {
	if len(sources) == 0 {
		return ErrNoSources
	}

	i.log.Info("import started", "kconfig", i.cfg.Kconfig, "sources", len(sources))

	root, err := i.prepare(sources)
	if err != nil {
		return err
	}

	for _, src := range sources {
		rel, err := i.Transform(src)
		if err != nil {
			_ = root.Close()
			return err
		}
		if _, err := root.WriteString(kconfig.Directive(rel)); err != nil {
			_ = root.Close()
			return fmt.Errorf("%w: write %s: %v", ErrFileAccess, i.cfg.Kconfig, err)
		}
	}

	if err := root.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrFileAccess, i.cfg.Kconfig, err)
	}

	i.notifyRecorder(ctx)

	i.log.Info("import complete", "kconfig", i.cfg.Kconfig, "records", len(i.records))
	return nil
}

// prepare computes the path mapping and opens the root file with its
// banner and mainmenu lines written.
func (i *Importer) prepare(sources []string) (*os.File, error) {
	kconfigPath, err := filepath.Abs(i.cfg.Kconfig)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %v", ErrFileAccess, i.cfg.Kconfig, err)
	}
	i.cfg.Kconfig = kconfigPath

	i.commonDir = CommonDir(sources)
	i.outputDir = filepath.Dir(kconfigPath)
	i.log.Debug("resolved common directory", "dir", i.commonDir)

	if err := os.MkdirAll(i.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create directory %s: %v", ErrFileAccess, i.outputDir, err)
	}

	root, err := i.createOutput(kconfigPath)
	if err != nil {
		return nil, err
	}

	if _, err := root.WriteString(kconfig.RootHeader + "\n" + kconfig.Mainmenu(i.cfg.Title)); err != nil {
		_ = root.Close()
		return nil, fmt.Errorf("%w: write %s: %v", ErrFileAccess, kconfigPath, err)
	}

	return root, nil
}

// notifyRecorder persists the run outcome. This is best-effort and
// failures are logged but don't fail the import.
func (i *Importer) notifyRecorder(ctx context.Context) {
	if i.recorder == nil {
		return
	}

	run := Run{
		Title:   i.cfg.Title,
		Kconfig: i.cfg.Kconfig,
		Records: i.Records(),
	}
	if err := i.recorder.RecordRun(ctx, run); err != nil {
		i.log.Warn("history recording failed", "error", err)
	} else {
		i.log.Debug("run recorded", "records", len(run.Records))
	}
}

// Records returns the source records in processing order.
func (i *Importer) Records() []SourceRecord {
	out := make([]SourceRecord, len(i.records))
	copy(out, i.records)
	return out
}

// Summary logs the outcome of a completed import.
func (i *Importer) Summary() {
	i.log.Info("imported kconfig sources", "count", len(i.records))
	i.log.Info("generated kconfig", "path", i.cfg.Kconfig)
}
