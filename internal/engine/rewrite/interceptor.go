// Package rewrite substitutes installed dependency modules with imports from
// the shared runtime bundle.
package rewrite

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/core/ports"
	"go.trai.ch/flowpack/internal/engine/guard"
	"go.trai.ch/flowpack/internal/engine/resolver"
)

// Interceptor decides, per module load, whether to substitute the module with
// generated source. It is safe for concurrent use.
type Interceptor struct {
	rootPrefix    string
	bundleImport  string
	bundlePackage string
	enabled       bool
	resolver      *resolver.Resolver
	logger        ports.Logger
}

// New creates an Interceptor for modules under dependencyRoot. bundleImport is
// the specifier the generated source imports the bundle from.
func New(
	dependencyRoot string,
	bundleImport string,
	decision guard.Decision,
	res *resolver.Resolver,
	logger ports.Logger,
) *Interceptor {
	root := strings.TrimSuffix(filepath.ToSlash(dependencyRoot), "/")
	return &Interceptor{
		rootPrefix:    root + "/",
		bundleImport:  bundleImport,
		bundlePackage: domain.ParseModuleID(bundleImport).Package,
		enabled:       decision.Enabled,
		resolver:      res,
		logger:        logger,
	}
}

// Enabled reports whether the session allows substitution at all.
func (i *Interceptor) Enabled() bool {
	return i.enabled
}

// TryRewrite returns replacement source for requestedID, or false to let the
// host load the module normally.
func (i *Interceptor) TryRewrite(requestedID string) (string, bool) {
	if !i.enabled {
		return "", false
	}

	id, query := splitQuery(filepath.ToSlash(requestedID))
	if !strings.HasPrefix(id, i.rootPrefix) {
		return "", false
	}

	rel := path.Clean(strings.TrimPrefix(id, i.rootPrefix))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}

	module := domain.ParseModuleID(rel)
	if module.Package == i.bundlePackage {
		return "", false
	}

	res, ok := i.resolver.ResolveModule(module)
	if !ok {
		return "", false
	}
	for _, w := range res.Warnings {
		i.logger.Warn(w)
	}

	src, err := render(moduleSource{
		BundleURL: i.bundleImport + query,
		ScopeKey:  "./" + domain.DependencyRootName + "/" + rel,
		Bindings:  bindings(res.Exports),
	})
	if err != nil {
		i.logger.Error(err)
		return "", false
	}
	return src, true
}

// splitQuery separates a trailing "?query" used by the host for cache keys.
func splitQuery(id string) (string, string) {
	if idx := strings.IndexByte(id, '?'); idx >= 0 {
		return id[:idx], id[idx:]
	}
	return id, ""
}
