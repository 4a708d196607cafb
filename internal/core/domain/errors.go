package domain

import "go.trai.ch/zerr"

var (
	// ErrDescriptorNotFound is returned when the bundle descriptor file does not exist.
	ErrDescriptorNotFound = zerr.New("bundle descriptor not found")

	// ErrDescriptorReadFailed is returned when the bundle descriptor file cannot be read.
	ErrDescriptorReadFailed = zerr.New("failed to read bundle descriptor")

	// ErrDescriptorParseFailed is returned when the bundle descriptor is not valid JSON
	// or does not match the expected shape.
	ErrDescriptorParseFailed = zerr.New("failed to parse bundle descriptor")

	// ErrInvalidExportEntry is returned when an export entry object has neither a namespace nor a source.
	ErrInvalidExportEntry = zerr.New("export entry must be a name or an object with namespace or source")

	// ErrPackageNotInstalled is returned when an installed package's metadata cannot be found.
	ErrPackageNotInstalled = zerr.New("package not installed")

	// ErrPackageMetadataInvalid is returned when an installed package's package.json cannot be parsed.
	ErrPackageMetadataInvalid = zerr.New("invalid package metadata")

	// ErrInjectionPointNotFound is returned when the service worker script has no injection marker.
	ErrInjectionPointNotFound = zerr.New("injection point not found in service worker script")

	// ErrMultipleInjectionPoints is returned when the injection marker occurs more than once.
	ErrMultipleInjectionPoints = zerr.New("injection point occurs more than once in service worker script")

	// ErrServiceWorkerReadFailed is returned when the service worker script cannot be read.
	ErrServiceWorkerReadFailed = zerr.New("failed to read service worker script")

	// ErrServiceWorkerWriteFailed is returned when the service worker script cannot be rewritten.
	ErrServiceWorkerWriteFailed = zerr.New("failed to write service worker script")

	// ErrManifestMarshalFailed is returned when the precache manifest cannot be serialized.
	ErrManifestMarshalFailed = zerr.New("failed to marshal precache manifest")

	// ErrOutputDirNotFound is returned when the build output directory does not exist.
	ErrOutputDirNotFound = zerr.New("build output directory not found")

	// ErrOutputWalkFailed is returned when the build output directory cannot be walked.
	ErrOutputWalkFailed = zerr.New("failed to walk build output directory")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidPattern is returned when an exclusion glob or cache-bust pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid pattern")

	// ErrMissingModuleID is returned when a command requires a module identifier and none is given.
	ErrMissingModuleID = zerr.New("module identifier is required")

	// ErrModuleNotExposed is returned when a module is not part of the shared bundle.
	ErrModuleNotExposed = zerr.New("module is not exposed by the shared bundle")

	// ErrInvalidRequest is returned when a host protocol request cannot be decoded.
	ErrInvalidRequest = zerr.New("invalid rewrite request")

	// ErrRequestTooLarge is returned when a host protocol line exceeds the read buffer.
	ErrRequestTooLarge = zerr.New("rewrite request exceeds maximum line length")

	// ErrWatchFailed is returned when the dependency watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch dependencies")
)
