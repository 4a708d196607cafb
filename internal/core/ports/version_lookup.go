package ports

// VersionLookup reports the version of an installed dependency.
//
//go:generate mockgen -source=version_lookup.go -destination=mocks/mock_version_lookup.go -package=mocks
type VersionLookup interface {
	// InstalledVersion returns the installed version of pkg, or an error when
	// the package is absent or its metadata is unreadable.
	InstalledVersion(pkg string) (string, error)
}

// VersionLookupFactory creates a VersionLookup for a dependency install root.
// The root is only known once the project configuration has been loaded.
type VersionLookupFactory func(dependencyRoot string) VersionLookup
