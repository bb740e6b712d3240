// Package watcher polls a directory for newly saved bet-history pages and
// feeds them through an import callback. Users drop exported pages into a
// folder; Scribe picks them up on the next tick.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ImportFunc processes one saved page file
type ImportFunc func(ctx context.Context, path string) error

// Watcher monitors a directory and imports files it has not seen yet
type Watcher struct {
	dir          string
	pollInterval time.Duration
	importFn     ImportFunc
	seen         map[string]time.Time
	stopChan     chan struct{}
}

// NewWatcher creates a new directory watcher
func NewWatcher(dir string, pollInterval time.Duration, importFn ImportFunc) *Watcher {
	return &Watcher{
		dir:          dir,
		pollInterval: pollInterval,
		importFn:     importFn,
		seen:         make(map[string]time.Time),
		stopChan:     make(chan struct{}),
	}
}

// Start begins polling for new files
func (w *Watcher) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	fmt.Println("✓ Import watcher started")

	// Initial sweep immediately
	if err := w.sweep(ctx); err != nil {
		fmt.Printf("[Watcher] initial sweep error: %v\n", err)
	}

	for {
		select {
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				fmt.Printf("[Watcher] sweep error: %v\n", err)
			}
		case <-w.stopChan:
			fmt.Println("✓ Import watcher stopped")
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop gracefully stops the watcher
func (w *Watcher) Stop() {
	close(w.stopChan)
}

// sweep imports every unseen .html file in the directory. A file is retried
// on the next sweep if it changed since last time (still being written).
func (w *Watcher) sweep(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", w.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".html") &&
			!strings.HasSuffix(strings.ToLower(name), ".htm") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		path := filepath.Join(w.dir, name)
		if last, ok := w.seen[path]; ok && !info.ModTime().After(last) {
			continue
		}

		if err := w.importFn(ctx, path); err != nil {
			fmt.Printf("[Watcher] error importing %s: %v\n", name, err)
			continue
		}

		w.seen[path] = info.ModTime()
		fmt.Printf("[Watcher] imported %s\n", name)
	}

	return nil
}
