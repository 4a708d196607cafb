// Package npm reads installed package versions from the dependency install root.
package npm

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionLookup = (*Lookup)(nil)

type packageMetadata struct {
	Version string `json:"version"`
}

// Lookup implements ports.VersionLookup by reading <root>/<pkg>/package.json.
type Lookup struct {
	root string
}

// New creates a Lookup rooted at the dependency install directory.
func New(root string) *Lookup {
	return &Lookup{root: root}
}

// InstalledVersion returns the version field of the package's metadata file.
func (l *Lookup) InstalledVersion(pkg string) (string, error) {
	path := filepath.Join(l.root, filepath.FromSlash(pkg), domain.PackageMetadataFile)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the dependency root
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrPackageNotInstalled, "lookup version"), "package", pkg)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrPackageMetadataInvalid.Error()), "package", pkg)
	}

	var meta packageMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrPackageMetadataInvalid, err.Error()), "package", pkg)
	}
	if meta.Version == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrPackageMetadataInvalid, "missing version field"), "package", pkg)
	}
	return meta.Version, nil
}
