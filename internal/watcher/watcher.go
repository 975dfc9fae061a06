// Package watcher re-runs a callback when the settings database changes on
// disk, e.g. after shellctl wrote to it.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// DefaultDelay coalesces the burst of writes a single SQLite commit makes
const DefaultDelay = 500 * time.Millisecond

// Watcher watches one file through its parent directory, so atomic
// replaces and SQLite journal files are seen.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	names     map[string]struct{}
	debounced func(f func())
	onChange  func()
	done      chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

// New creates a watcher for path. onChange runs at most once per delay
// window, on the debounce timer goroutine.
func New(path string, delay time.Duration, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	return &Watcher{
		fsWatcher: fsWatcher,
		dir:       filepath.Dir(path),
		names: map[string]struct{}{
			base:              {},
			base + "-wal":     {},
			base + "-journal": {},
		},
		debounced: debounce.New(delay),
		onChange:  onChange,
		done:      make(chan struct{}),
	}, nil
}

// Start starts the watcher.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}
	log.Printf("[Watcher] Watching %s", w.dir)

	w.wg.Add(1)
	go w.processEvents()
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()
		w.wg.Wait()
	})
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[Watcher] Error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if _, ok := w.names[filepath.Base(event.Name)]; !ok {
		return
	}
	w.debounced(func() {
		select {
		case <-w.done:
			return
		default:
		}
		log.Printf("[Watcher] %s changed", filepath.Base(event.Name))
		w.onChange()
	})
}
