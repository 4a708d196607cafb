package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "flowpack.yaml"

	// DependencyRootName is the default dependency install directory.
	DependencyRootName = "node_modules"

	// PackageMetadataFile is the per-package metadata file read for installed versions.
	PackageMetadataFile = "package.json"

	// DefaultDescriptorPath is the default location of the bundle descriptor, relative to the project root.
	DefaultDescriptorPath = "node_modules/@vaadin/bundles/vaadin-bundle.json"

	// DefaultBundleImport is the module specifier of the shared runtime bundle.
	DefaultBundleImport = "@vaadin/bundles/vaadin-bundle.js"

	// DefaultOutputDir is the default build output directory, relative to the project root.
	DefaultOutputDir = "target/classes/META-INF/VAADIN/webapp"

	// DefaultServiceWorker is the default service worker script, relative to the output directory.
	DefaultServiceWorker = "sw.js"

	// DefaultEntryDocument is the generated entry document served at the application root.
	DefaultEntryDocument = "index.html"

	// ShellURL is the application shell marker that replaces the entry document URL.
	ShellURL = "."

	// DefaultInjectionPoint is the marker replaced by the serialized manifest.
	DefaultInjectionPoint = "self.__WB_MANIFEST"

	// DefaultMaxFileSize is the size ceiling for precached files (100 MiB).
	DefaultMaxFileSize int64 = 100 * 1024 * 1024

	// DefaultDontCacheBust matches output files that already embed a content hash.
	DefaultDontCacheBust = `.*-[a-z0-9]{20}\.cache\.js`

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultExcludes returns the default precache exclusion patterns: compressed siblings
// of other outputs.
func DefaultExcludes() []string {
	return []string{"*.gz", "*.br"}
}
