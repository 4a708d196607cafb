// Package resolver flattens the export lists of the shared bundle descriptor.
package resolver

import (
	"fmt"

	"go.trai.ch/flowpack/internal/core/domain"
)

// Resolution is the flattened export set of one module.
type Resolution struct {
	// Exports holds every exported binding in first-seen order.
	Exports []string
	// Warnings holds descriptor integrity problems met while resolving.
	Warnings []string
}

// Resolver resolves module identifiers against an immutable descriptor.
// It is safe for concurrent use.
type Resolver struct {
	descriptor *domain.BundleDescriptor
}

// New creates a Resolver over descriptor. A nil descriptor resolves nothing.
func New(descriptor *domain.BundleDescriptor) *Resolver {
	return &Resolver{descriptor: descriptor}
}

// Resolve returns the export set of moduleID. The boolean is false when the
// descriptor does not expose the module; a resolved module may still have
// zero exports.
func (r *Resolver) Resolve(moduleID string) (Resolution, bool) {
	return r.ResolveModule(domain.ParseModuleID(moduleID))
}

// ResolveModule is Resolve for an already parsed identifier.
func (r *Resolver) ResolveModule(id domain.ModuleID) (Resolution, bool) {
	expose, ok := r.descriptor.Lookup(id)
	if !ok {
		return Resolution{}, false
	}

	w := &walk{
		descriptor: r.descriptor,
		seen:       make(map[string]struct{}),
		done:       make(map[string]struct{}),
	}
	w.merge(id, expose, map[string]struct{}{id.Key(): {}})

	return Resolution{Exports: w.exports, Warnings: w.warnings}, true
}

// walk is the per-call accumulator.
type walk struct {
	descriptor *domain.BundleDescriptor

	exports  []string
	seen     map[string]struct{}
	warnings []string

	// done holds modules already merged through another branch.
	done map[string]struct{}
}

func (w *walk) add(name string) {
	if _, ok := w.seen[name]; ok {
		return
	}
	w.seen[name] = struct{}{}
	w.exports = append(w.exports, name)
}

// merge appends the exports of id. path holds the modules on the current
// DFS branch.
func (w *walk) merge(id domain.ModuleID, expose domain.ExposeInfo, path map[string]struct{}) {
	for _, entry := range expose.Exports {
		switch entry.Kind {
		case domain.ExportName, domain.ExportNamespace:
			w.add(entry.Name)
		case domain.ExportSource:
			w.follow(id, entry.Source, path)
		}
	}
	w.done[id.Key()] = struct{}{}
}

func (w *walk) follow(from domain.ModuleID, ref string, path map[string]struct{}) {
	target, ok := from.ResolveRef(ref)
	if !ok {
		w.warnings = append(w.warnings,
			fmt.Sprintf("%s: source %q escapes package %s", from, ref, from.Package))
		return
	}

	key := target.Key()
	if _, onPath := path[key]; onPath {
		w.warnings = append(w.warnings,
			fmt.Sprintf("%s: cyclic source reference to %s", from, target))
		return
	}
	if _, merged := w.done[key]; merged {
		return
	}

	expose, ok := w.descriptor.Lookup(target)
	if !ok {
		w.warnings = append(w.warnings,
			fmt.Sprintf("%s: source %s is not exposed by the bundle", from, target))
		return
	}

	path[key] = struct{}{}
	defer delete(path, key)
	w.merge(target, expose, path)
}
