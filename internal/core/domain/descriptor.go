package domain

import (
	"encoding/json"
	"slices"
)

// BundleDescriptor describes the packages exposed by the shared runtime bundle.
// It is loaded once per session and never mutated afterwards.
type BundleDescriptor struct {
	// Packages maps package names (optionally scoped, e.g. "@vaadin/button") to their metadata.
	Packages map[string]PackageInfo `json:"packages"`
}

// PackageInfo is the version the bundle was built against plus the modules it exposes.
type PackageInfo struct {
	Version string                `json:"version"`
	Exposes map[string]ExposeInfo `json:"exposes"`
}

// ExposeInfo lists the exports of a single exposed sub-module, in declaration order.
type ExposeInfo struct {
	Exports []ExportEntry `json:"exports"`
}

// ExportKind tags the variant held by an ExportEntry.
type ExportKind uint8

const (
	// ExportName is a plain exported symbol.
	ExportName ExportKind = iota
	// ExportNamespace re-exports another module under a single namespace binding.
	ExportNamespace
	// ExportSource merges the export set of another module.
	ExportSource
)

// ExportEntry is one element of an exposed module's export list.
//
// For ExportName and ExportNamespace, Name holds the binding. For ExportSource,
// Source holds the module identifier whose exports are merged in. A namespace
// entry may also carry its Source for diagnostics; it is never followed.
type ExportEntry struct {
	Kind   ExportKind
	Name   string
	Source string
}

// Name returns a plain export entry.
func Name(symbol string) ExportEntry {
	return ExportEntry{Kind: ExportName, Name: symbol}
}

// Namespace returns a namespace export entry.
func Namespace(name, source string) ExportEntry {
	return ExportEntry{Kind: ExportNamespace, Name: name, Source: source}
}

// Source returns an indirection export entry.
func Source(moduleID string) ExportEntry {
	return ExportEntry{Kind: ExportSource, Source: moduleID}
}

type exportEntryObject struct {
	Namespace string `json:"namespace,omitempty"`
	Source    string `json:"source,omitempty"`
}

// UnmarshalJSON accepts either a JSON string or an object with namespace and/or source.
func (e *ExportEntry) UnmarshalJSON(data []byte) error {
	var symbol string
	if err := json.Unmarshal(data, &symbol); err == nil {
		*e = Name(symbol)
		return nil
	}

	var obj exportEntryObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	switch {
	case obj.Namespace != "":
		*e = Namespace(obj.Namespace, obj.Source)
	case obj.Source != "":
		*e = Source(obj.Source)
	default:
		return ErrInvalidExportEntry
	}
	return nil
}

// MarshalJSON writes the entry back in the descriptor's wire shape.
func (e ExportEntry) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case ExportNamespace:
		return json.Marshal(exportEntryObject{Namespace: e.Name, Source: e.Source})
	case ExportSource:
		return json.Marshal(exportEntryObject{Source: e.Source})
	default:
		return json.Marshal(e.Name)
	}
}

// Lookup returns the exposed module addressed by id.
func (d *BundleDescriptor) Lookup(id ModuleID) (ExposeInfo, bool) {
	if d == nil {
		return ExposeInfo{}, false
	}
	pkg, ok := d.Packages[id.Package]
	if !ok {
		return ExposeInfo{}, false
	}
	expose, ok := pkg.Exposes[id.SubPath]
	return expose, ok
}

// PackageNames returns the descriptor's package names in sorted order.
func (d *BundleDescriptor) PackageNames() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Packages))
	for name := range d.Packages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
