// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watch.go - Preference file change watching.
//
// RELIABILITY: debounced reloads survive partial editor writes
//
// Editors and atomic saves emit bursts of filesystem events for one
// logical change. Reloading on the first event of a burst would read a
// half-written file, so events only mark the document dirty and the
// reload happens after a quiet period. A rate limiter caps sustained
// reload frequency on top of that.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

const (
	// debounceDelay is the quiet period after the last event before
	// the document is re-read.
	debounceDelay = 200 * time.Millisecond

	// reloadInterval caps sustained reload frequency. A process
	// rewriting the file in a loop must not turn the watcher into a
	// parse loop.
	reloadInterval = 2 * time.Second
)

// Watcher re-reads the preference document when it changes on disk and
// hands each fresh snapshot to a callback. Consumers rebuild their
// rendering state from the snapshot; nothing mutates in place. A nil
// snapshot means the preference files are gone.
type Watcher struct {
	dir     string
	logger  *slog.Logger
	onload  func(*Config)
	watcher *fsnotify.Watcher
	limiter *rate.Limiter

	mu        sync.Mutex
	dirty     bool
	lastEvent time.Time
}

// NewWatcher watches dir for preference file changes. A nil logger
// means slog.Default().
func NewWatcher(dir string, logger *slog.Logger, fn func(*Config)) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{
		dir:     dir,
		logger:  logger,
		onload:  fn,
		watcher: fsw,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
	}, nil
}

// Watch is the one-call form: it watches dir and delivers snapshots
// to fn until ctx is done. Setup failures are returned; reload
// failures are logged and survived, as in Run.
func Watch(ctx context.Context, dir string, fn func(*Config)) error {
	w, err := NewWatcher(dir, nil, fn)
	if err != nil {
		return err
	}
	w.Run(ctx)
	return nil
}

// Run processes filesystem events until ctx is done or the watcher is
// closed. Call it in a goroutine; the callback runs on that goroutine.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isPreferenceFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.mu.Lock()
			w.dirty = true
			w.lastEvent = time.Now()
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)

		case <-ticker.C:
			w.reloadIfSettled()
		}
	}
}

// Close stops the watcher. Run returns once the event stream drains.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// reloadIfSettled re-reads the document once the event burst has gone
// quiet and the rate limiter permits.
func (w *Watcher) reloadIfSettled() {
	w.mu.Lock()
	ready := w.dirty && time.Since(w.lastEvent) >= debounceDelay
	if ready {
		w.dirty = false
	}
	w.mu.Unlock()
	if !ready {
		return
	}

	if !w.limiter.Allow() {
		// Stay dirty; the next tick retries once the limiter refills.
		w.mu.Lock()
		w.dirty = true
		w.mu.Unlock()
		return
	}

	cfg, err := LoadFrom(w.dir)
	if err != nil {
		// A transient decode failure (mid-edit save) is not fatal;
		// the watcher keeps running and the old snapshot stays live.
		w.logger.Warn("config reload failed", "dir", w.dir, "error", err)
		return
	}
	w.logger.Info("config reloaded", "dir", w.dir)
	w.onload(cfg)
}

func isPreferenceFile(path string) bool {
	base := filepath.Base(path)
	return base == tomlName || base == yamlName
}
