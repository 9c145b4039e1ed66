package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/kconfmerge/internal/config"
	"github.com/vmunix/kconfmerge/internal/history"
	"github.com/vmunix/kconfmerge/internal/importer"
)

var version = "dev"

var (
	configPath  string
	kconfigPath string
	title       string
	sources     []string
	silent      bool
	overwrite   string
)

var rootCmd = &cobra.Command{
	Use:   "kconfmerge",
	Short: "Merge Kconfig source trees into a single generated root",
	Long: `kconfmerge - Kconfig tree importer

Copies a set of Kconfig source trees below a generated root file,
rewriting source directives so the merged tree resolves from its
new location.`,
	RunE: runMerge,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")

	rootCmd.Flags().StringVar(&kconfigPath, "kconfig", "", "Output root Kconfig path")
	rootCmd.Flags().StringVar(&title, "title", "", "Mainmenu title for the generated root")
	rootCmd.Flags().StringArrayVar(&sources, "sources", nil, "Source Kconfig file (repeatable, order preserved)")
	rootCmd.Flags().BoolVarP(&silent, "silent", "s", false, "Suppress all log output")
	rootCmd.Flags().StringVar(&overwrite, "overwrite", "", "Overwrite policy: always or never (default from config)")

	_ = rootCmd.MarkFlagRequired("kconfig")
	_ = rootCmd.MarkFlagRequired("title")
	_ = rootCmd.MarkFlagRequired("sources")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("kconfmerge {{.Version}}\n")
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg.Log.Level, silent)

	policy, err := resolveOverwrite(cfg)
	if err != nil {
		return err
	}

	normalized, err := importer.NormalizeSources(sources)
	if err != nil {
		return err
	}

	recorder, cleanup := openRecorder(cfg, log)
	defer cleanup()

	imp := importer.New(importer.Config{
		Title:     title,
		Kconfig:   kconfigPath,
		Overwrite: policy,
	}, recorder, log)

	if err := imp.Import(cmd.Context(), normalized); err != nil {
		return err
	}

	imp.Summary()
	return nil
}

// loadConfig loads the explicit --config file or falls back to
// discovery. Not finding a config file anywhere is fine: defaults
// apply.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	path, err := config.Discover()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(level string, silent bool) *slog.Logger {
	if silent {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// resolveOverwrite picks the policy from the flag, falling back to the
// config file.
func resolveOverwrite(cfg *config.Config) (importer.OverwritePolicy, error) {
	mode := overwrite
	if mode == "" {
		mode = cfg.Output.Overwrite
	}

	switch mode {
	case "", string(importer.OverwriteAlways):
		return importer.OverwriteAlways, nil
	case string(importer.OverwriteNever):
		return importer.OverwriteNever, nil
	default:
		return "", fmt.Errorf("invalid overwrite policy %q: must be always or never", mode)
	}
}

// openRecorder opens the history store when enabled. Failures disable
// recording with a warning rather than failing the run.
func openRecorder(cfg *config.Config, log *slog.Logger) (importer.Recorder, func()) {
	if !cfg.History.Enabled {
		return nil, func() {}
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		log.Warn("history disabled", "error", err)
		return nil, func() {}
	}
	return store, func() { _ = store.Close() }
}
