package ingest

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/printforge/meshmetrics/pkg/analysis"
	"github.com/printforge/meshmetrics/pkg/stl"
)

// Stats tallies the outcome of an ingestion run
type Stats struct {
	Scanned           int
	SkippedDuplicates int
	NewDesigns        int
	NewVersions       int
	Errors            int
}

// LogSummary reports the run totals
func (s Stats) LogSummary(logger *log.Logger) {
	logger.Info("ingestion summary",
		"scanned", s.Scanned,
		"duplicates_skipped", s.SkippedDuplicates,
		"new_designs", s.NewDesigns,
		"new_versions", s.NewVersions,
		"errors", s.Errors,
	)
}

// Ingester runs the mesh ingestion pipeline: scan a directory, hash and
// dedup each file, parse and analyze the mesh, and record the result in the
// catalog. Parse failures are counted and logged, never fatal to the batch.
// Safe for concurrent use: watch mode ingests files from independent
// debounce timer goroutines.
type Ingester struct {
	catalog    *Catalog
	thresholds analysis.Thresholds
	extensions []string
	logger     *log.Logger

	mu    sync.Mutex
	stats Stats
}

// NewIngester creates an ingester over a fresh catalog
func NewIngester(thresholds analysis.Thresholds, extensions []string, logger *log.Logger) *Ingester {
	return &Ingester{
		catalog:    NewCatalog(),
		thresholds: thresholds,
		extensions: extensions,
		logger:     logger,
	}
}

// Catalog exposes the accumulated catalog
func (ing *Ingester) Catalog() *Catalog {
	return ing.catalog
}

// Stats returns a snapshot of the run counters
func (ing *Ingester) Stats() Stats {
	ing.mu.Lock()
	defer ing.mu.Unlock()
	return ing.stats
}

// record applies a counter update under the stats lock
func (ing *Ingester) record(update func(*Stats)) {
	ing.mu.Lock()
	defer ing.mu.Unlock()
	update(&ing.stats)
}

// Run scans root and ingests every design file found
func (ing *Ingester) Run(root string) (Stats, error) {
	files, err := Scan(root, ing.extensions)
	if err != nil {
		return ing.stats, err
	}
	ing.logger.Info("scan complete", "dir", root, "files", len(files))

	for _, file := range files {
		if err := ing.IngestFile(file); err != nil {
			ing.logger.Error("ingest failed", "file", file.RelPath, "err", err)
			ing.record(func(s *Stats) { s.Errors++ })
		}
	}
	return ing.Stats(), nil
}

// IngestFile processes a single scanned file
func (ing *Ingester) IngestFile(file DesignFile) error {
	ing.record(func(s *Stats) { s.Scanned++ })

	if existing, ok := ing.catalog.LookupHash(file.ContentHash); ok {
		ing.logger.Debug("skipped exact duplicate", "file", file.RelPath, "design", existing.DesignID)
		ing.record(func(s *Stats) { s.SkippedDuplicates++ })
		return nil
	}

	data, err := os.ReadFile(file.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file.Path, err)
	}

	result, err := stl.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", file.RelPath, err)
	}

	metrics := analysis.AnalyzeWith(result.Triangles, ing.thresholds)
	entry, outcome := ing.catalog.Add(file, metrics)

	switch outcome {
	case OutcomeDuplicate:
		ing.record(func(s *Stats) { s.SkippedDuplicates++ })
	case OutcomeNewVersion:
		ing.record(func(s *Stats) { s.NewVersions++ })
		ing.logger.Info("new version",
			"title", entry.Title,
			"version", entry.Version,
			"triangles", metrics.TriangleCount,
		)
	default:
		ing.record(func(s *Stats) { s.NewDesigns++ })
		ing.logger.Info("new design",
			"title", entry.Title,
			"slug", entry.Slug,
			"dimensions", analysis.FormatDimensions(metrics),
			"volume", analysis.FormatVolume(metrics),
			"complexity", metrics.Complexity,
		)
	}
	return nil
}

// IngestPath hashes and ingests one file outside of a batch scan, as the
// watcher does on change events.
func (ing *Ingester) IngestPath(root, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	hash, err := hashFile(path)
	if err != nil {
		return err
	}
	file := DesignFile{
		Path:        path,
		RelPath:     relOrSelf(root, path),
		ContentHash: hash,
		SizeBytes:   info.Size(),
		FileType:    fileType(path),
	}
	return ing.IngestFile(file)
}
