package domain

// OutputFile is one finalized file of the build output.
type OutputFile struct {
	// Path is relative to the output root and always uses forward slashes.
	Path string
	// Size is the file size in bytes.
	Size int64
	// ContentHash is the content fingerprint used as the cache-busting revision.
	ContentHash string
}

// ManifestEntry is one cacheable asset of the precache manifest.
type ManifestEntry struct {
	URL string `json:"url"`
	// Revision is nil when the URL is already self-versioning.
	Revision *string `json:"revision"`
	Size     int64   `json:"-"`
}

// PrecacheManifest is the manifest derived from one build. Warnings are build
// diagnostics only and are never written into the service worker.
type PrecacheManifest struct {
	Entries  []ManifestEntry
	Warnings []string
}

// TotalSize returns the combined size of all manifest entries.
func (m PrecacheManifest) TotalSize() int64 {
	var total int64
	for _, e := range m.Entries {
		total += e.Size
	}
	return total
}
