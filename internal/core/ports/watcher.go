package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of file system change.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent is a single change observed under a watched path.
type WatchEvent struct {
	// Path is the absolute path that changed.
	Path string
	// Operation is the type of change.
	Operation WatchOp
}

// Watcher observes the descriptor and installed package metadata so a
// running session can be rebuilt when dependencies change.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given paths. Directories are watched
	// non-recursively; files are watched through their parent directory.
	Start(ctx context.Context, paths []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates a Watcher. Watchers hold OS resources, so they are
// only created by commands that run in watch mode.
type WatcherFactory func() (Watcher, error)
