package config

// Schema is the structure of flowpack.yaml.
type Schema struct {
	Version        string          `yaml:"version"`
	Root           string          `yaml:"root"`
	DependencyRoot string          `yaml:"dependencyRoot"`
	Descriptor     string          `yaml:"descriptor"`
	BundleImport   string          `yaml:"bundleImport"`
	Precache       *PrecacheSchema `yaml:"precache"`
}

// PrecacheSchema is the precache section of flowpack.yaml. Unset fields keep
// their defaults; an explicit empty exclude list disables the default exclusions.
type PrecacheSchema struct {
	OutputDir      string   `yaml:"outputDir"`
	ServiceWorker  string   `yaml:"serviceWorker"`
	EntryDocument  string   `yaml:"entryDocument"`
	ShellURL       string   `yaml:"shellURL"`
	MaxFileSize    *int64   `yaml:"maximumFileSizeToCacheInBytes"`
	Exclude        []string `yaml:"exclude"`
	DontCacheBust  *string  `yaml:"dontCacheBustURLsMatching"`
	InjectionPoint string   `yaml:"injectionPoint"`
}

// SupportedVersion is the only schema version understood by the loader.
const SupportedVersion = "1"
