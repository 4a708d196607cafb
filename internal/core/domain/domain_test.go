package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/flowpack/internal/core/domain"
)

func TestParseModuleID(t *testing.T) {
	tests := []struct {
		id      string
		pkg     string
		subPath string
	}{
		{id: "lit", pkg: "lit", subPath: "./"},
		{id: "lit/", pkg: "lit", subPath: "./"},
		{id: "lit/decorators.js", pkg: "lit", subPath: "./decorators.js"},
		{id: "@vaadin/button", pkg: "@vaadin/button", subPath: "./"},
		{id: "@vaadin/button/src/vaadin-button.js", pkg: "@vaadin/button", subPath: "./src/vaadin-button.js"},
		{id: "@scope", pkg: "@scope", subPath: "./"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := domain.ParseModuleID(tt.id)
			assert.Equal(t, tt.pkg, got.Package)
			assert.Equal(t, tt.subPath, got.SubPath)
		})
	}
}

func TestModuleID_String(t *testing.T) {
	assert.Equal(t, "lit", domain.ParseModuleID("lit").String())
	assert.Equal(t, "@vaadin/button/src/x.js", domain.ParseModuleID("@vaadin/button/src/x.js").String())
}

func TestModuleID_ResolveRef(t *testing.T) {
	from := domain.ParseModuleID("@vaadin/grid/src/vaadin-grid.js")

	got, ok := from.ResolveRef("./vaadin-grid-column.js")
	require.True(t, ok)
	assert.Equal(t, domain.ModuleID{Package: "@vaadin/grid", SubPath: "./src/vaadin-grid-column.js"}, got)

	got, ok = from.ResolveRef("../index.js")
	require.True(t, ok)
	assert.Equal(t, "./index.js", got.SubPath)

	got, ok = from.ResolveRef("lit")
	require.True(t, ok)
	assert.Equal(t, domain.ModuleID{Package: "lit", SubPath: "./"}, got)

	_, ok = from.ResolveRef("../../escape.js")
	assert.False(t, ok, "relative refs must not leave the package")
}

func TestExportEntry_UnmarshalJSON(t *testing.T) {
	var entries []domain.ExportEntry
	data := `["Button", {"namespace": "icons", "source": "@vaadin/icons"}, {"source": "@vaadin/button/src/b.js"}]`
	require.NoError(t, json.Unmarshal([]byte(data), &entries))

	require.Len(t, entries, 3)
	assert.Equal(t, domain.Name("Button"), entries[0])
	assert.Equal(t, domain.Namespace("icons", "@vaadin/icons"), entries[1])
	assert.Equal(t, domain.Source("@vaadin/button/src/b.js"), entries[2])
}

func TestExportEntry_UnmarshalJSON_EmptyObject(t *testing.T) {
	var entry domain.ExportEntry
	err := json.Unmarshal([]byte(`{}`), &entry)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidExportEntry))
}

func TestExportEntry_MarshalJSON(t *testing.T) {
	entries := []domain.ExportEntry{
		domain.Name("a"),
		domain.Namespace("ns", "pkg"),
		domain.Source("pkg/x.js"),
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `["a", {"namespace":"ns","source":"pkg"}, {"source":"pkg/x.js"}]`, string(data))
}

func TestBundleDescriptor_Lookup(t *testing.T) {
	d := &domain.BundleDescriptor{Packages: map[string]domain.PackageInfo{
		"lit": {Version: "3.0.0", Exposes: map[string]domain.ExposeInfo{
			"./": {Exports: []domain.ExportEntry{domain.Name("html")}},
		}},
	}}

	_, ok := d.Lookup(domain.ParseModuleID("lit"))
	assert.True(t, ok)

	_, ok = d.Lookup(domain.ParseModuleID("lit/missing.js"))
	assert.False(t, ok)

	_, ok = d.Lookup(domain.ParseModuleID("react"))
	assert.False(t, ok)

	var nilDescriptor *domain.BundleDescriptor
	_, ok = nilDescriptor.Lookup(domain.ParseModuleID("lit"))
	assert.False(t, ok)
}

func TestBundleDescriptor_PackageNames(t *testing.T) {
	d := &domain.BundleDescriptor{Packages: map[string]domain.PackageInfo{
		"lit":            {},
		"@vaadin/button": {},
		"@polymer/poly":  {},
	}}
	assert.Equal(t, []string{"@polymer/poly", "@vaadin/button", "lit"}, d.PackageNames())
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig("/project")
	assert.Equal(t, "/project/node_modules", cfg.DependencyRoot)
	assert.Equal(t, "/project/node_modules/@vaadin/bundles/vaadin-bundle.json", cfg.DescriptorPath)
	assert.Equal(t, int64(100*1024*1024), cfg.Precache.MaxFileSize)
	assert.Equal(t, "/project/target/classes/META-INF/VAADIN/webapp/sw.js", cfg.ServiceWorkerPath())
}
