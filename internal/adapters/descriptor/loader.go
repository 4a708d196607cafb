// Package descriptor reads the shared bundle descriptor from disk.
package descriptor

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DescriptorLoader = (*Loader)(nil)

// Loader implements ports.DescriptorLoader for JSON descriptors.
type Loader struct{}

// New creates a new Loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses the descriptor at path.
func (l *Loader) Load(path string) (*domain.BundleDescriptor, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from project configuration
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDescriptorNotFound, "load descriptor"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDescriptorReadFailed.Error()), "path", path)
	}

	var d domain.BundleDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDescriptorParseFailed, err.Error()), "path", path)
	}
	if d.Packages == nil {
		d.Packages = map[string]domain.PackageInfo{}
	}
	return &d, nil
}
