package ingest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a design directory and re-ingests files as they change.
// Events are debounced per file so editors that write in multiple bursts
// trigger a single ingestion.
type Watcher struct {
	watcher    *fsnotify.Watcher
	mu         sync.Mutex
	timers     map[string]*time.Timer
	debounce   time.Duration
	extensions map[string]struct{}
	onChange   func(path string)
	onError    func(err error)
}

// NewWatcher creates a watcher that calls onChange with the path of every
// created or modified file carrying one of the given extensions.
func NewWatcher(debounce time.Duration, extensions []string, onChange func(string), onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	return &Watcher{
		watcher:    fsw,
		timers:     make(map[string]*time.Timer),
		debounce:   debounce,
		extensions: allowed,
		onChange:   onChange,
		onError:    onError,
	}, nil
}

// Watch registers root and all of its subdirectories
func (w *Watcher) Watch(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// Start begins dispatching file change events
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					w.handleChange(event.Name)
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				if w.onError != nil {
					w.onError(err)
				}
			}
		}
	}()
}

// handleChange debounces one file's events before dispatching
func (w *Watcher) handleChange(path string) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := w.extensions[ext]; !ok {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.onChange(path)
	})
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
