package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DesignFile is one mesh file discovered by a scan, identified by the
// SHA-256 of its contents.
type DesignFile struct {
	Path        string
	RelPath     string
	ContentHash string
	SizeBytes   int64
	FileType    string
}

// Scan walks root for design files with one of the given extensions
// (lowercase, with leading dot). Paths that differ only by case are
// reported once, and results are sorted for deterministic processing.
func Scan(root string, extensions []string) ([]DesignFile, error) {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var files []DesignFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := allowed[ext]; !ok {
			return nil
		}
		key := strings.ToLower(path)
		if _, dup := seen[key]; dup {
			return nil
		}
		seen[key] = struct{}{}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hash, err := hashFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		files = append(files, DesignFile{
			Path:        path,
			RelPath:     rel,
			ContentHash: hash,
			SizeBytes:   info.Size(),
			FileType:    strings.TrimPrefix(ext, "."),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func relOrSelf(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

func fileType(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// hashFile computes the SHA-256 content hash used for exact-duplicate
// detection.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
