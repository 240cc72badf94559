// Package watcher emits debounced change notifications for a fixed set
// of source files, driving the CLI's --watch regeneration loop.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 200 * time.Millisecond

// Watcher watches a fixed set of files and reports debounced writes.
type Watcher struct {
	files map[string]bool // absolute paths

	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	closed bool
}

// New creates a watcher for the given files. Paths are resolved to
// absolute form so events can be matched regardless of how the caller
// spelled them.
func New(files []string) (*Watcher, error) {
	set := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", f, err)
		}
		set[abs] = true
	}
	return &Watcher{files: set}, nil
}

// Start begins watching and returns a channel of changed file paths.
// Editors often replace files on save, so the parent directories are
// watched and create/rename events on a watched path count as changes.
func (w *Watcher) Start(ctx context.Context) (<-chan string, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	dirs := map[string]bool{}
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	out := make(chan string, 16)
	go w.eventLoop(ctx, fsw, out)
	return out, nil
}

// Close shuts down the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

func (w *Watcher) eventLoop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- string) {
	defer close(out)

	// Debounce state: path to pending flush timer.
	pending := make(map[string]*time.Timer)
	var mu sync.Mutex

	emit := func(path string) {
		select {
		case out <- path:
		case <-ctx.Done():
		}
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			for _, timer := range pending {
				timer.Stop()
			}
			mu.Unlock()
			return

		case fsEvent, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !fsEvent.Op.Has(fsnotify.Write) && !fsEvent.Op.Has(fsnotify.Create) && !fsEvent.Op.Has(fsnotify.Rename) {
				continue
			}
			path, err := filepath.Abs(fsEvent.Name)
			if err != nil || !w.files[path] {
				continue
			}

			// Debounce: reset the timer for this path.
			mu.Lock()
			if timer, exists := pending[path]; exists {
				timer.Stop()
			}
			pending[path] = time.AfterFunc(debounceWindow, func() {
				mu.Lock()
				delete(pending, path)
				mu.Unlock()
				emit(path)
			})
			mu.Unlock()

		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
			// Keep watching through transient errors.
		}
	}
}
