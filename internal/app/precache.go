package app

import (
	"context"
	"fmt"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/engine/precache"
)

// PrecacheResult summarizes an injected manifest.
type PrecacheResult struct {
	ServiceWorker string
	Entries       int
	TotalSize     int64
	Warnings      []string
}

// Precache builds the precache manifest from the finalized build output and
// injects it into the service worker. It must only run after the build has
// written every output file.
func (a *App) Precache(ctx context.Context, cfg *domain.Config) (PrecacheResult, error) {
	ctx, span := a.tracer.Start(ctx, "precache")
	defer span.End()

	builder, err := precache.NewBuilder(cfg.Precache)
	if err != nil {
		span.RecordError(err)
		return PrecacheResult{}, err
	}

	files, err := a.enumerate(ctx, cfg.Precache.OutputDir)
	if err != nil {
		span.RecordError(err)
		return PrecacheResult{}, err
	}

	manifest := builder.Build(files)
	for _, w := range manifest.Warnings {
		a.logger.Warn(w)
	}

	sw := cfg.ServiceWorkerPath()
	if err := a.inject(ctx, sw, cfg.Precache.InjectionPoint, manifest); err != nil {
		span.RecordError(err)
		return PrecacheResult{}, err
	}

	result := PrecacheResult{
		ServiceWorker: sw,
		Entries:       len(manifest.Entries),
		TotalSize:     manifest.TotalSize(),
		Warnings:      manifest.Warnings,
	}
	span.SetAttribute("entries", result.Entries)
	span.SetAttribute("bytes", result.TotalSize)

	a.logger.Info(fmt.Sprintf(
		"precached %d files (%d bytes) into %s",
		result.Entries, result.TotalSize, cfg.Precache.ServiceWorker,
	))
	return result, nil
}

func (a *App) enumerate(ctx context.Context, root string) ([]domain.OutputFile, error) {
	ctx, span := a.tracer.Start(ctx, "precache.enumerate")
	defer span.End()

	files, err := a.outputs.Enumerate(ctx, root)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("files", len(files))
	return files, nil
}

func (a *App) inject(ctx context.Context, script, marker string, manifest domain.PrecacheManifest) error {
	_, span := a.tracer.Start(ctx, "precache.inject")
	defer span.End()

	if err := precache.Inject(script, marker, manifest); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
