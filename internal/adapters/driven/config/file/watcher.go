package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/radar/internal/core/ports/driven"
	"github.com/custodia-labs/radar/internal/logger"
)

// SlangTarget receives a freshly loaded custom slang table.
type SlangTarget interface {
	ReplaceCustomSlang(entries map[string]string) error
}

// DefaultDebounce collapses the burst of events an editor emits on save.
const DefaultDebounce = 250 * time.Millisecond

// WatcherStats tracks reload activity.
type WatcherStats struct {
	Reloads   int
	Rejected  int
	LastError error
}

// SlangWatcher reloads a slang dictionary into a target whenever the file
// changes. The parent directory is watched so that editors which replace
// the file by rename are handled.
type SlangWatcher struct {
	mu       sync.RWMutex
	watcher  *fsnotify.Watcher
	dict     driven.SlangDictionary
	target   SlangTarget
	debounce time.Duration
	pending  time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	stats    WatcherStats
}

// NewSlangWatcher creates a watcher for dict. Call Start to begin.
func NewSlangWatcher(dict driven.SlangDictionary, target SlangTarget, debounce time.Duration) (*SlangWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &SlangWatcher{
		watcher:  w,
		dict:     dict,
		target:   target,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Reload loads the dictionary once and pushes it to the target.
// A dictionary the target rejects leaves the previous table in place.
func (sw *SlangWatcher) Reload() error {
	entries, err := sw.dict.Load()
	if err == nil {
		err = sw.target.ReplaceCustomSlang(entries)
	}

	sw.mu.Lock()
	defer sw.mu.Unlock()
	if err != nil {
		sw.stats.Rejected++
		sw.stats.LastError = err
		return fmt.Errorf("reload slang %s: %w", sw.dict.Path(), err)
	}
	sw.stats.Reloads++
	sw.stats.LastError = nil
	logger.Infow("slang dictionary loaded", "path", sw.dict.Path(), "entries", len(entries))
	return nil
}

// Start performs an initial load and then watches in the background.
// It is non-blocking; call Stop to release the watcher.
func (sw *SlangWatcher) Start(ctx context.Context) error {
	sw.mu.Lock()
	if sw.running {
		sw.mu.Unlock()
		return nil
	}
	sw.running = true
	sw.mu.Unlock()

	if err := sw.Reload(); err != nil {
		logger.Warn("%v", err)
	}

	if err := sw.watcher.Add(filepath.Dir(sw.dict.Path())); err != nil {
		sw.mu.Lock()
		sw.running = false
		sw.mu.Unlock()
		return fmt.Errorf("watch %s: %w", sw.dict.Path(), err)
	}

	go sw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the loop to exit.
func (sw *SlangWatcher) Stop() {
	sw.mu.Lock()
	wasRunning := sw.running
	sw.running = false
	sw.mu.Unlock()

	if wasRunning {
		close(sw.stopCh)
		<-sw.doneCh
	}
	if err := sw.watcher.Close(); err != nil {
		logger.Warn("slang watcher close: %v", err)
	}
}

// Stats returns a snapshot of reload counters.
func (sw *SlangWatcher) Stats() WatcherStats {
	sw.mu.RLock()
	defer sw.mu.RUnlock()
	return sw.stats
}

func (sw *SlangWatcher) run(ctx context.Context) {
	defer close(sw.doneCh)

	tick := time.NewTicker(sw.debounce / 2)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-sw.stopCh:
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			sw.handleEvent(event)

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("slang watcher: %v", err)

		case <-tick.C:
			sw.flush()
		}
	}
}

func (sw *SlangWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(sw.dict.Path()) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	logger.Debug("slang watcher: %s %s", event.Op, event.Name)

	sw.mu.Lock()
	sw.pending = time.Now()
	sw.mu.Unlock()
}

// flush reloads once events have been quiet for the debounce window.
func (sw *SlangWatcher) flush() {
	sw.mu.Lock()
	due := !sw.pending.IsZero() && time.Since(sw.pending) >= sw.debounce
	if due {
		sw.pending = time.Time{}
	}
	sw.mu.Unlock()

	if due {
		if err := sw.Reload(); err != nil {
			logger.Warn("%v", err)
		}
	}
}
