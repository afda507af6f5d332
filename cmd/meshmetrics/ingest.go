package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/printforge/meshmetrics/internal/config"
	"github.com/printforge/meshmetrics/internal/ingest"
)

var (
	configPath string
	watchFlag  bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Batch-ingest a directory of STL design files",
	Long: `Scan a directory for STL files, skip exact duplicates by content hash,
track new versions of changed files, and analyze each mesh. With --watch the
directory is monitored and changed files are re-ingested automatically.`,
	Args: cobra.ExactArgs(1),
	Run:  runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&configPath, "config", "", "TOML config file with analysis thresholds")
	ingestCmd.Flags().BoolVar(&watchFlag, "watch", false, "keep watching the directory for changes")
}

func runIngest(cmd *cobra.Command, args []string) {
	root := args[0]

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ingest",
	})

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	ingester := ingest.NewIngester(cfg.Analysis.Thresholds(), cfg.Ingest.Extensions, logger)

	stats, err := ingester.Run(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error ingesting directory: %v\n", err)
		os.Exit(1)
	}
	stats.LogSummary(logger)

	if !watchFlag {
		return
	}

	debounce := time.Duration(cfg.Ingest.DebounceMS) * time.Millisecond
	watcher, err := ingest.NewWatcher(debounce, cfg.Ingest.Extensions,
		func(path string) {
			if err := ingester.IngestPath(root, path); err != nil {
				logger.Error("re-ingest failed", "file", path, "err", err)
			}
		},
		func(err error) {
			logger.Error("watcher error", "err", err)
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	if err := watcher.Watch(root); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching directory: %v\n", err)
		os.Exit(1)
	}
	watcher.Start()
	logger.Info("watching for changes", "dir", root)

	select {}
}
