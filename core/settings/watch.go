// Copyright (c) 2026 Trainer Team
// Trainer - feature settings toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/toeirei/trainer/internal/logging"
)

// DefaultDebounce is the quiet period after the last file event before a
// reload is triggered.
const DefaultDebounce = 250 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	// Debounce defaults to DefaultDebounce when zero.
	Debounce time.Duration
	// OnReload is called after every reload attempt with its result.
	OnReload func(error)
}

// Watcher reloads a settings file into a feature set whenever it changes.
type Watcher struct {
	store    *Store
	path     string
	features []Feature
	opts     WatchOptions

	watcher *fsnotify.Watcher
	mu      sync.Mutex // serialises reloads
	timerMu sync.Mutex
	timer   *time.Timer
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path and reloads features through store on every
// write, create or rename of the file. The watcher stops when ctx is done or
// Close is called.
//
// Reloads run on their own goroutine; callers reading the features
// concurrently must synchronise with OnReload.
func Watch(ctx context.Context, store *Store, path string, features []Feature, opts WatchOptions) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("settings: resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings: create watcher: %w", err)
	}
	// watch the directory, editors often replace the file instead of writing it
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("settings: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		store:    store,
		path:     abs,
		features: features,
		opts:     opts,
		watcher:  fw,
		done:     make(chan struct{}),
	}
	logging.Debugf("watching %s for changes", abs)
	go w.loop(ctx)
	return w, nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logging.Debugf("settings file changed (%s)", event.Op)
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Errorf("settings watcher error: %v", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.opts.Debounce, w.Reload)
}

// Reload loads the file immediately. A missing file is ignored.
func (w *Watcher) Reload() {
	select {
	case <-w.done:
		return
	default:
	}
	w.mu.Lock()
	err := w.store.Load(w.path, w.features, false)
	w.mu.Unlock()
	if err != nil {
		logging.Errorf("reloading %s: %v", w.path, err)
	}
	if w.opts.OnReload != nil {
		w.opts.OnReload(err)
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.stop()
	return nil
}

func (w *Watcher) stop() {
	w.once.Do(func() {
		close(w.done)
		w.timerMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.timerMu.Unlock()
		_ = w.watcher.Close()
	})
}
