package domain

import "path/filepath"

// Config is the resolved project configuration. All paths are absolute once
// returned by a ConfigLoader.
type Config struct {
	// Root is the project root directory.
	Root string
	// DependencyRoot is the dependency install directory (node_modules).
	DependencyRoot string
	// DescriptorPath is the bundle descriptor file.
	DescriptorPath string
	// BundleImport is the module specifier the generated code imports the shared bundle from.
	BundleImport string

	Precache PrecacheConfig
}

// PrecacheConfig configures the precache manifest builder and injector.
type PrecacheConfig struct {
	// OutputDir is the finalized build output directory.
	OutputDir string
	// ServiceWorker is the worker script, relative to OutputDir.
	ServiceWorker string
	// EntryDocument is the output file served dynamically at the shell URL.
	EntryDocument string
	// ShellURL replaces the entry document URL in the manifest.
	ShellURL string
	// MaxFileSize excludes larger files from the manifest.
	MaxFileSize int64
	// Exclude holds glob patterns matched against relative paths and base names.
	Exclude []string
	// DontCacheBust matches URLs that already carry a content hash.
	DontCacheBust string
	// InjectionPoint is the marker replaced by the serialized manifest.
	InjectionPoint string
}

// DefaultConfig returns the configuration used when no flowpack.yaml is present.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:           root,
		DependencyRoot: filepath.Join(root, DependencyRootName),
		DescriptorPath: filepath.Join(root, filepath.FromSlash(DefaultDescriptorPath)),
		BundleImport:   DefaultBundleImport,
		Precache: PrecacheConfig{
			OutputDir:      filepath.Join(root, filepath.FromSlash(DefaultOutputDir)),
			ServiceWorker:  DefaultServiceWorker,
			EntryDocument:  DefaultEntryDocument,
			ShellURL:       ShellURL,
			MaxFileSize:    DefaultMaxFileSize,
			Exclude:        DefaultExcludes(),
			DontCacheBust:  DefaultDontCacheBust,
			InjectionPoint: DefaultInjectionPoint,
		},
	}
}

// ServiceWorkerPath returns the absolute path of the worker script.
func (c *Config) ServiceWorkerPath() string {
	return filepath.Join(c.Precache.OutputDir, filepath.FromSlash(c.Precache.ServiceWorker))
}
