package ingest

import (
	"sync"

	"github.com/google/uuid"

	"github.com/printforge/meshmetrics/pkg/analysis"
)

// Outcome describes what happened when a file was offered to the catalog
type Outcome int

const (
	// OutcomeDuplicate means a file with the same content hash already
	// exists; nothing was recorded.
	OutcomeDuplicate Outcome = iota
	// OutcomeNewDesign means a brand-new design entry was created
	OutcomeNewDesign
	// OutcomeNewVersion means the source path was seen before with
	// different contents, so the entry was recorded as the next version.
	OutcomeNewVersion
)

// Entry is one cataloged design version
type Entry struct {
	ID          string
	DesignID    string
	Title       string
	Slug        string
	SourcePath  string
	ContentHash string
	SizeBytes   int64
	FileType    string
	Version     int
	Metrics     *analysis.GeometryMetrics
}

// Catalog is an in-memory design registry with exact-duplicate detection by
// content hash and per-source-path version tracking. Safe for concurrent
// use.
type Catalog struct {
	mu       sync.Mutex
	byHash   map[string]*Entry
	bySource map[string]*Entry // latest version per source path
	entries  []*Entry
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		byHash:   make(map[string]*Entry),
		bySource: make(map[string]*Entry),
	}
}

// Add records a scanned file and its metrics. Exact duplicates (same
// content hash) return the existing entry with OutcomeDuplicate. A known
// source path with new contents becomes the next version of that design;
// otherwise a new design is created.
func (c *Catalog) Add(file DesignFile, metrics *analysis.GeometryMetrics) (*Entry, Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.byHash[file.ContentHash]; ok {
		return existing, OutcomeDuplicate
	}

	entry := &Entry{
		ID:          uuid.NewString(),
		Title:       TitleFromFilename(file.Path),
		SourcePath:  file.RelPath,
		ContentHash: file.ContentHash,
		SizeBytes:   file.SizeBytes,
		FileType:    file.FileType,
		Metrics:     metrics,
	}
	entry.Slug = Slugify(entry.Title)

	outcome := OutcomeNewDesign
	if prev, ok := c.bySource[file.RelPath]; ok {
		entry.DesignID = prev.DesignID
		entry.Version = prev.Version + 1
		outcome = OutcomeNewVersion
	} else {
		entry.DesignID = uuid.NewString()
		entry.Version = 1
	}

	c.byHash[file.ContentHash] = entry
	c.bySource[file.RelPath] = entry
	c.entries = append(c.entries, entry)
	return entry, outcome
}

// LookupHash returns the entry with the given content hash, if any
func (c *Catalog) LookupHash(hash string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.byHash[hash]
	return entry, ok
}

// Current returns the latest version recorded for a source path
func (c *Catalog) Current(sourcePath string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.bySource[sourcePath]
	return entry, ok
}

// Len returns the number of cataloged entries across all versions
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
