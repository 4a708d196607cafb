// Package fs provides file system adapters for enumerating and fingerprinting build output.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker walks a directory tree in lexical order.
type Walker struct {
	skipDirs map[string]bool
}

// NewWalker creates a new Walker that never descends into VCS metadata.
func NewWalker() *Walker {
	return &Walker{skipDirs: map[string]bool{".git": true}}
}

// WalkFiles yields every non-directory entry below root. Entries whose base
// name matches one of ignores are skipped, directories included. A walk error
// is yielded once and ends the iteration.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var stopped bool
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root && w.ignored(d, ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

func (w *Walker) ignored(d fs.DirEntry, ignores []string) bool {
	name := d.Name()
	if d.IsDir() && w.skipDirs[name] {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
