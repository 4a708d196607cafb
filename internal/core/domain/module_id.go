package domain

import (
	"path"
	"strings"
)

// RootSubPath is the sub-module path of a package's root entry.
const RootSubPath = "./"

// ModuleID is a module identifier split into its package name and sub-module path.
type ModuleID struct {
	// Package is "name" or "@scope/name".
	Package string
	// SubPath always starts with "./"; the package root is "./".
	SubPath string
}

// ParseModuleID splits a bare module identifier such as "@vaadin/button/src/vaadin-button.js".
func ParseModuleID(id string) ModuleID {
	segments := 1
	if strings.HasPrefix(id, "@") {
		segments = 2
	}

	parts := strings.SplitN(id, "/", segments+1)
	if len(parts) <= segments {
		return ModuleID{Package: strings.Join(parts, "/"), SubPath: RootSubPath}
	}

	return ModuleID{
		Package: strings.Join(parts[:segments], "/"),
		SubPath: RootSubPath + parts[segments],
	}
}

// String joins the package name and sub-path back into a bare identifier.
func (m ModuleID) String() string {
	rest := strings.TrimPrefix(m.SubPath, RootSubPath)
	if rest == "" {
		return m.Package
	}
	return m.Package + "/" + rest
}

// Key is a stable map key for the module.
func (m ModuleID) Key() string {
	return m.Package + "\x00" + m.SubPath
}

// IsRelativeRef reports whether ref is relative to the referring module ("./x", "../x").
func IsRelativeRef(ref string) bool {
	return strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "../")
}

// ResolveRef resolves a source reference against the module that declares it.
// Bare references are parsed as-is; relative references are joined to the
// referring module's directory and must stay inside its package.
func (m ModuleID) ResolveRef(ref string) (ModuleID, bool) {
	if !IsRelativeRef(ref) {
		return ParseModuleID(ref), true
	}

	dir := path.Dir(strings.TrimPrefix(m.SubPath, RootSubPath))
	joined := path.Join(dir, ref)
	if joined == ".." || strings.HasPrefix(joined, "../") {
		return ModuleID{}, false
	}
	if joined == "." {
		joined = ""
	}
	return ModuleID{Package: m.Package, SubPath: RootSubPath + joined}, true
}
