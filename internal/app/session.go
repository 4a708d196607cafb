package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/engine/guard"
	"go.trai.ch/flowpack/internal/engine/resolver"
	"go.trai.ch/flowpack/internal/engine/rewrite"
)

// Session is the immutable state of one build or dev-server session. The
// guard runs once per session; a reload builds a new Session.
type Session struct {
	Config      *domain.Config
	Descriptor  *domain.BundleDescriptor
	Decision    guard.Decision
	Resolver    *resolver.Resolver
	Interceptor *rewrite.Interceptor
}

// OpenSession loads the bundle descriptor and runs the version guard. It never
// fails: a missing or broken descriptor disables substitution instead.
func (a *App) OpenSession(ctx context.Context, cfg *domain.Config) *Session {
	_, span := a.tracer.Start(ctx, "session.open")
	defer span.End()
	span.SetAttribute("descriptor", cfg.DescriptorPath)

	descriptor := a.loadDescriptor(cfg)

	decision := guard.ShouldEnable(descriptor, a.versions(cfg.DependencyRoot))
	a.reportDecision(cfg, descriptor, decision)
	span.SetAttribute("enabled", decision.Enabled)
	span.SetAttribute("reason", decision.Reason.String())

	res := resolver.New(descriptor)
	return &Session{
		Config:      cfg,
		Descriptor:  descriptor,
		Decision:    decision,
		Resolver:    res,
		Interceptor: rewrite.New(cfg.DependencyRoot, cfg.BundleImport, decision, res, a.logger),
	}
}

func (a *App) loadDescriptor(cfg *domain.Config) *domain.BundleDescriptor {
	descriptor, err := a.descriptors.Load(cfg.DescriptorPath)
	switch {
	case err == nil:
		return descriptor
	case errors.Is(err, domain.ErrDescriptorNotFound):
		return nil
	default:
		a.logger.Warn(fmt.Sprintf("ignoring bundle descriptor: %v", err))
		return nil
	}
}

func (a *App) reportDecision(cfg *domain.Config, descriptor *domain.BundleDescriptor, decision guard.Decision) {
	switch decision.Reason {
	case guard.ReasonEnabled:
		a.logger.Info(fmt.Sprintf(
			"using shared bundle for %d packages from %s",
			len(descriptor.Packages), cfg.DescriptorPath,
		))
	case guard.ReasonDescriptorUnavailable:
		a.logger.Info("shared bundle disabled: no bundle descriptor at " + cfg.DescriptorPath)
	case guard.ReasonDescriptorEmpty:
		a.logger.Info("shared bundle disabled: bundle descriptor declares no packages")
	case guard.ReasonVersionMismatch:
		for _, m := range decision.Mismatches {
			a.logger.Warn("dependency version mismatch, " + m.String())
		}
		a.logger.Warn("shared bundle disabled: installed dependencies differ from the bundle")
	}
}
