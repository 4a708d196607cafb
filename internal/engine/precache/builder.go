// Package precache derives the offline precache manifest from build output and
// injects it into the service worker script.
package precache

import (
	"fmt"
	"path"
	"regexp"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Builder turns finalized output files into a PrecacheManifest.
type Builder struct {
	entryDocument string
	shellURL      string
	maxFileSize   int64
	exclude       []string
	dontCacheBust *regexp.Regexp
}

// NewBuilder validates cfg and creates a Builder. The service worker script
// and its source map are always excluded.
func NewBuilder(cfg domain.PrecacheConfig) (*Builder, error) {
	exclude := make([]string, 0, len(cfg.Exclude)+2)
	exclude = append(exclude, cfg.Exclude...)
	if cfg.ServiceWorker != "" {
		exclude = append(exclude, cfg.ServiceWorker, cfg.ServiceWorker+".map")
	}

	for _, pattern := range exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, err.Error()), "pattern", pattern)
		}
	}

	b := &Builder{
		entryDocument: cfg.EntryDocument,
		shellURL:      cfg.ShellURL,
		maxFileSize:   cfg.MaxFileSize,
		exclude:       exclude,
	}

	if cfg.DontCacheBust != "" {
		re, err := regexp.Compile(cfg.DontCacheBust)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, err.Error()), "pattern", cfg.DontCacheBust)
		}
		b.dontCacheBust = re
	}

	return b, nil
}

// Build creates one entry per file, in input order. Excluded files are
// dropped silently; oversized files are dropped with a warning.
func (b *Builder) Build(files []domain.OutputFile) domain.PrecacheManifest {
	manifest := domain.PrecacheManifest{Entries: make([]domain.ManifestEntry, 0, len(files))}

	for _, f := range files {
		if b.excluded(f.Path) {
			continue
		}

		if b.maxFileSize > 0 && f.Size > b.maxFileSize {
			manifest.Warnings = append(manifest.Warnings, fmt.Sprintf(
				"%s is %d bytes, and won't be precached (limit %d bytes)", f.Path, f.Size, b.maxFileSize))
			continue
		}

		url := f.Path
		if url == b.entryDocument {
			url = b.shellURL
		}

		entry := domain.ManifestEntry{URL: url, Size: f.Size}
		if b.dontCacheBust == nil || !b.dontCacheBust.MatchString(f.Path) {
			revision := f.ContentHash
			entry.Revision = &revision
		}
		manifest.Entries = append(manifest.Entries, entry)
	}

	return manifest
}

func (b *Builder) excluded(rel string) bool {
	base := path.Base(rel)
	for _, pattern := range b.exclude {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
