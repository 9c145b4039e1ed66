package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/kconfmerge/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded import runs",
	RunE:  runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().Bool("json", false, "Output as JSON")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled; set history.enabled = true in the config")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	entries, err := store.List(limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if jsonOutput {
		printJSON(entries)
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	fmt.Printf("Recent Runs (%d):\n\n", len(entries))
	fmt.Printf("  %-20s %-24s %-8s %s\n", "TIME", "TITLE", "SOURCES", "KCONFIG")
	fmt.Println("  " + strings.Repeat("-", 70))

	for _, e := range entries {
		title := e.Title
		if len(title) > 24 {
			title = title[:21] + "..."
		}
		fmt.Printf("  %-20s %-24s %-8d %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), title, e.SourceCount, e.Kconfig)
	}

	return nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
