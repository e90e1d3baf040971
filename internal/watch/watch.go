// Package watch reloads the document template when its file changes
// and triggers a synchronize pass.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/blockstorm/internal/action"
	"github.com/dshills/blockstorm/internal/document/template"
	"github.com/dshills/blockstorm/internal/effect"
)

// debounceDelay coalesces the event bursts editors produce on save.
const debounceDelay = 100 * time.Millisecond

// Watcher monitors one template file. On change it reloads the
// template, installs it on the store, and dispatches a
// synchronizeTemplate action. A reload that fails to parse keeps the
// previous template installed.
type Watcher struct {
	path       string
	dispatcher *effect.Dispatcher
	fsw        *fsnotify.Watcher

	// OnError receives reload failures; nil discards them.
	OnError func(error)

	// OnReload runs after a successful reload and synchronize.
	OnReload func()
}

// New creates a watcher for the template file at path. The parent
// directory is watched rather than the file itself so rename-based
// saves keep delivering events.
func New(path string, d *effect.Dispatcher) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, dispatcher: d, fsw: fsw}, nil
}

// Run processes file events until the context is cancelled. Dispatches
// happen on this goroutine; run it from the goroutine that owns the
// dispatcher.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				fire = timer.C
			} else {
				timer.Reset(debounceDelay)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.report(fmt.Errorf("watch: %w", err))

		case <-fire:
			timer = nil
			fire = nil
			w.reload()
		}
	}
}

// Close stops event delivery.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	tpl, lock, err := template.Load(w.path)
	if err != nil {
		w.report(err)
		return
	}
	w.dispatcher.Store().SetTemplate(tpl, lock)
	w.dispatcher.Dispatch(action.SynchronizeTemplate())
	if w.OnReload != nil {
		w.OnReload()
	}
}

func (w *Watcher) report(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
