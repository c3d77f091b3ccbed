// Package watcher implements hot-folder ingest: it watches a directory
// and reports STL files that are created or written, debounced per
// file so half-written uploads settle before they are handled.
package watcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DirWatcher watches one ingest directory for STL files
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	handler  func(string)
	debounce time.Duration
	errOut   io.Writer // diagnostics only, never reports

	mu     sync.Mutex
	timers map[string]*time.Timer
	done   chan struct{}
}

// New creates a watcher for dir. handler is called with the absolute
// path of each .stl file once its events have settled for the debounce
// interval.
func New(dir string, debounce time.Duration, handler func(string)) (*DirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}
	if err := fsw.Add(absDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absDir, err)
	}

	return &DirWatcher{
		watcher:  fsw,
		handler:  handler,
		debounce: debounce,
		errOut:   os.Stderr,
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}, nil
}

// Start begins dispatching events until Close is called
func (w *DirWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if !IsSTLPath(event.Name) {
					continue
				}
				w.schedule(event.Name)

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logError(err)

			case <-w.done:
				return
			}
		}
	}()
}

// logError writes a watch diagnostic; stdout is reserved for reports
func (w *DirWatcher) logError(err error) {
	fmt.Fprintf(w.errOut, "Watcher error: %v\n", err)
}

// IsSTLPath reports whether a path names an STL file
func IsSTLPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".stl")
}

// schedule arms (or re-arms) the debounce timer for one file
func (w *DirWatcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.handler(path)
	})
}

// Pending returns the number of files waiting out their debounce interval
func (w *DirWatcher) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

// Close stops the watcher
func (w *DirWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
