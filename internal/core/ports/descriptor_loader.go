// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/flowpack/internal/core/domain"

// DescriptorLoader reads the shared bundle descriptor.
//
//go:generate mockgen -source=descriptor_loader.go -destination=mocks/mock_descriptor_loader.go -package=mocks
type DescriptorLoader interface {
	// Load parses the descriptor at path. A missing file is reported as
	// domain.ErrDescriptorNotFound.
	Load(path string) (*domain.BundleDescriptor, error)
}
