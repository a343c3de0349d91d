// Package watch re-runs a callback whenever a puzzle input file changes on
// disk. The directory is watched rather than the file itself so editors
// that replace the file (rename-over-write) keep triggering.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches rapid saves of the same file.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a single input file and invokes a callback after changes
// settle.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	onChange func(path string)
	logger   *zap.Logger
	debounce time.Duration
	pending  bool
	lastSeen time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// New creates a watcher for the given file. onChange runs on the watcher
// goroutine once per settled burst of events.
func New(path string, logger *zap.Logger, onChange func(path string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		path:     filepath.Clean(path),
		onChange: onChange,
		logger:   logger,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the settle window. Only valid before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine
// until Stop or context cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		// The run loop never started; undo Start so a later Stop does not
		// block on doneCh, and release the fsnotify handle.
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		if cerr := w.watcher.Close(); cerr != nil {
			w.logger.Warn("error closing watcher", zap.Error(cerr))
		}
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.logger.Info("watching input file", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
// Idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("error closing watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-ticker.C:
			w.fireIfSettled()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("input changed", zap.String("op", event.Op.String()))

	w.mu.Lock()
	w.pending = true
	w.lastSeen = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) fireIfSettled() {
	w.mu.Lock()
	ready := w.pending && time.Since(w.lastSeen) >= w.debounce
	if ready {
		w.pending = false
	}
	w.mu.Unlock()

	if ready {
		w.onChange(w.path)
	}
}
