package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.OutputEnumerator = (*Enumerator)(nil)

// Enumerator lists build output files with their sizes and content hashes.
type Enumerator struct {
	walker *Walker
	hasher *Hasher
	limit  int
}

// NewEnumerator creates an Enumerator hashing up to GOMAXPROCS files at once.
func NewEnumerator(walker *Walker, hasher *Hasher) *Enumerator {
	return &Enumerator{walker: walker, hasher: hasher, limit: runtime.GOMAXPROCS(0)}
}

// Enumerate walks root and fingerprints every file. Paths in the result are
// relative to root, use forward slashes and are sorted.
func (e *Enumerator) Enumerate(ctx context.Context, root string) ([]domain.OutputFile, error) {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return nil, zerr.With(zerr.Wrap(domain.ErrOutputDirNotFound, "enumerate output"), "dir", root)
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWalkFailed.Error()), "dir", root)
	case !info.IsDir():
		return nil, zerr.With(zerr.Wrap(domain.ErrOutputDirNotFound, "not a directory"), "dir", root)
	}

	var paths []string
	for path, err := range e.walker.WalkFiles(root, nil) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWalkFailed.Error()), "dir", root)
		}
		paths = append(paths, path)
	}

	files := make([]domain.OutputFile, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			hash, size, err := e.hasher.ComputeFileHash(path)
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrOutputWalkFailed.Error()), "path", path)
			}

			files[i] = domain.OutputFile{
				Path:        filepath.ToSlash(rel),
				Size:        size,
				ContentHash: Revision(hash),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b domain.OutputFile) int {
		return strings.Compare(a.Path, b.Path)
	})
	return files, nil
}
