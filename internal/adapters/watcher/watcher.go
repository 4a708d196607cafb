// Package watcher reports changes to the bundle descriptor and installed
// package metadata so a long-running session can be rebuilt.
package watcher

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"unique"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/flowpack/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify. Files are watched through
// their parent directory and events for sibling files are dropped.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[unique.Handle[string]]struct{}
	dirs      map[unique.Handle[string]]struct{}
	events    chan ports.WatchEvent
	onError   func(error)
}

// NewWatcher creates a new file system watcher. onError receives fsnotify
// errors and may be nil.
func NewWatcher(onError func(error)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: w,
		files:     make(map[unique.Handle[string]]struct{}),
		dirs:      make(map[unique.Handle[string]]struct{}),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		onError:   onError,
	}, nil
}

// Start watches paths. Paths that do not exist yet are watched through their
// closest existing parent directory so their creation is observed.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	added := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)

		dir := p
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			w.files[unique.Make(p)] = struct{}{}
			dir = existingParent(filepath.Dir(p))
		} else {
			w.dirs[unique.Make(p)] = struct{}{}
		}

		if dir == "" || added[dir] {
			continue
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
		added[dir] = true
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func existingParent(dir string) string {
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// relevant reports whether path is a watched file, lies directly inside a
// watched directory, or is an ancestor of a watched file that is being created.
func (w *Watcher) relevant(path string) bool {
	if _, ok := w.files[unique.Make(path)]; ok {
		return true
	}
	if _, ok := w.dirs[unique.Make(filepath.Dir(path))]; ok {
		return true
	}
	for f := range w.files {
		if rel, err := filepath.Rel(path, f.Value()); err == nil && filepath.IsLocal(rel) {
			return true
		}
	}
	return false
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event)
			if !ok || !w.relevant(filepath.Clean(event.Name)) {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

			if watchEvent.Operation == ports.OpCreate {
				w.watchCreatedDir(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// watchCreatedDir follows a newly created ancestor of a watched file, such as
// a package directory appearing during an install.
func (w *Watcher) watchCreatedDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	_ = w.fsWatcher.Add(path)
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
