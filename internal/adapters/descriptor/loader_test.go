package descriptor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/flowpack/internal/adapters/descriptor"
	"go.trai.ch/flowpack/internal/core/domain"
)

const sample = `{
  "packages": {
    "@vaadin/button": {
      "version": "24.4.0",
      "exposes": {
        "./": { "exports": [{ "source": "./src/vaadin-button.js" }] },
        "./src/vaadin-button.js": { "exports": ["Button", { "namespace": "ButtonMixin", "source": "./src/mixin.js" }] }
      }
    }
  }
}`

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "vaadin-bundle.json")
	require.NoError(t, os.WriteFile(p, []byte(content), domain.PrivateFilePerm))
	return p
}

func TestLoader_Load(t *testing.T) {
	d, err := descriptor.New().Load(writeDescriptor(t, sample))
	require.NoError(t, err)

	pkg, ok := d.Packages["@vaadin/button"]
	require.True(t, ok)
	assert.Equal(t, "24.4.0", pkg.Version)
	assert.Equal(t, []domain.ExportEntry{domain.Source("./src/vaadin-button.js")}, pkg.Exposes["./"].Exports)
	assert.Equal(t, []domain.ExportEntry{
		domain.Name("Button"),
		domain.Namespace("ButtonMixin", "./src/mixin.js"),
	}, pkg.Exposes["./src/vaadin-button.js"].Exports)
}

func TestLoader_Missing(t *testing.T) {
	_, err := descriptor.New().Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, domain.ErrDescriptorNotFound)
}

func TestLoader_Malformed(t *testing.T) {
	_, err := descriptor.New().Load(writeDescriptor(t, `{"packages": [`))
	require.ErrorIs(t, err, domain.ErrDescriptorParseFailed)
}

func TestLoader_InvalidExportEntry(t *testing.T) {
	_, err := descriptor.New().Load(writeDescriptor(t,
		`{"packages": {"p": {"version": "1", "exposes": {"./": {"exports": [{}]}}}}}`))
	require.ErrorIs(t, err, domain.ErrDescriptorParseFailed)
}

func TestLoader_EmptyDescriptor(t *testing.T) {
	d, err := descriptor.New().Load(writeDescriptor(t, `{}`))
	require.NoError(t, err)
	assert.Empty(t, d.PackageNames())
}
