package precache

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Serialize encodes the manifest entries as the JSON array literal written
// into the service worker. Warnings are not part of the artifact.
func Serialize(manifest domain.PrecacheManifest) ([]byte, error) {
	entries := manifest.Entries
	if entries == nil {
		entries = []domain.ManifestEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error())
	}
	return data, nil
}

// Inject replaces the single occurrence of injectionPoint in the script at
// scriptPath with the serialized manifest. The script is replaced atomically.
func Inject(scriptPath, injectionPoint string, manifest domain.PrecacheManifest) error {
	info, err := os.Stat(scriptPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServiceWorkerReadFailed.Error()), "file", scriptPath)
	}

	script, err := os.ReadFile(scriptPath) //nolint:gosec // path comes from project configuration
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServiceWorkerReadFailed.Error()), "file", scriptPath)
	}

	marker := []byte(injectionPoint)
	switch count := bytes.Count(script, marker); {
	case count == 0:
		err := zerr.Wrap(domain.ErrInjectionPointNotFound, "cannot inject precache manifest")
		return zerr.With(zerr.With(err, "marker", injectionPoint), "file", scriptPath)
	case count > 1:
		err := zerr.Wrap(domain.ErrMultipleInjectionPoints, "cannot inject precache manifest")
		err = zerr.With(zerr.With(err, "marker", injectionPoint), "file", scriptPath)
		return zerr.With(err, "count", count)
	}

	data, err := Serialize(manifest)
	if err != nil {
		return err
	}

	out := bytes.Replace(script, marker, data, 1)
	if err := atomicWriteFile(scriptPath, out, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServiceWorkerWriteFailed.Error()), "file", scriptPath)
	}
	return nil
}

// atomicWriteFile writes data to a temp file next to path and renames it over path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".flowpack-sw-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
