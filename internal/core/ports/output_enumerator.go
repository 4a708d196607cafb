package ports

import (
	"context"

	"go.trai.ch/flowpack/internal/core/domain"
)

// OutputEnumerator lists the finalized files of a build output directory.
//
//go:generate mockgen -source=output_enumerator.go -destination=mocks/mock_output_enumerator.go -package=mocks
type OutputEnumerator interface {
	// Enumerate walks root and returns every regular file with its size and
	// content hash, sorted by path.
	Enumerate(ctx context.Context, root string) ([]domain.OutputFile, error)
}
