package rewrite_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/core/ports/mocks"
	"go.trai.ch/flowpack/internal/engine/guard"
	"go.trai.ch/flowpack/internal/engine/resolver"
	"go.trai.ch/flowpack/internal/engine/rewrite"
	"go.uber.org/mock/gomock"
)

const (
	dependencyRoot = "/project/node_modules"
	bundleImport   = "@vaadin/bundles/vaadin-bundle.js"
)

func testDescriptor() *domain.BundleDescriptor {
	return &domain.BundleDescriptor{Packages: map[string]domain.PackageInfo{
		"lit": {Version: "3.1.0", Exposes: map[string]domain.ExposeInfo{
			"./": {Exports: []domain.ExportEntry{
				domain.Name("html"), domain.Name("css"), domain.Name("default"),
			}},
		}},
		"@vaadin/button": {Version: "24.4.0", Exposes: map[string]domain.ExposeInfo{
			"./src/vaadin-button.js": {Exports: []domain.ExportEntry{domain.Name("Button")}},
		}},
		"side-effects": {Version: "1.0.0", Exposes: map[string]domain.ExposeInfo{
			"./register.js": {},
		}},
		"odd-names": {Version: "1.0.0", Exposes: map[string]domain.ExposeInfo{
			"./": {Exports: []domain.ExportEntry{
				domain.Name("my-name"), domain.Name("class"), domain.Name("ok"),
			}},
		}},
		"cyclic": {Version: "1.0.0", Exposes: map[string]domain.ExposeInfo{
			"./": {Exports: []domain.ExportEntry{domain.Name("a"), domain.Source("cyclic")}},
		}},
		"@vaadin/bundles": {Version: "24.4.0", Exposes: map[string]domain.ExposeInfo{
			"./vaadin-bundle.js": {Exports: []domain.ExportEntry{domain.Name("init")}},
		}},
	}}
}

func newInterceptor(t *testing.T, decision guard.Decision) (*rewrite.Interceptor, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	d := testDescriptor()
	return rewrite.New(dependencyRoot, bundleImport, decision, resolver.New(d), logger), logger
}

func enabled() guard.Decision {
	return guard.Decision{Enabled: true, Reason: guard.ReasonEnabled}
}

func TestTryRewrite_Golden(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		goldenName string
	}{
		{
			name:       "package root with default export",
			id:         "/project/node_modules/lit",
			goldenName: "package_root",
		},
		{
			name:       "query is appended to the bundle URL only",
			id:         "/project/node_modules/@vaadin/button/src/vaadin-button.js?v=3f2a",
			goldenName: "with_query",
		},
		{
			name:       "empty export set",
			id:         "/project/node_modules/side-effects/register.js",
			goldenName: "empty_exports",
		},
		{
			name:       "names that need aliases",
			id:         "/project/node_modules/odd-names",
			goldenName: "aliased_names",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interceptor, _ := newInterceptor(t, enabled())

			src, ok := interceptor.TryRewrite(tt.id)
			require.True(t, ok)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(src))
		})
	}
}

func TestTryRewrite_FallsThrough(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "application source", id: "/project/src/main.ts"},
		{name: "relative import", id: "./views/main-view.ts"},
		{name: "sibling directory sharing the prefix", id: "/project/node_modules_cache/lit"},
		{name: "dependency root itself", id: "/project/node_modules/"},
		{name: "unknown package", id: "/project/node_modules/react/index.js"},
		{name: "unknown sub-module", id: "/project/node_modules/lit/directives/repeat.js"},
		{name: "bundle package", id: "/project/node_modules/@vaadin/bundles/vaadin-bundle.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interceptor, _ := newInterceptor(t, enabled())

			src, ok := interceptor.TryRewrite(tt.id)
			assert.False(t, ok)
			assert.Empty(t, src)
		})
	}
}

func TestTryRewrite_DisabledAlwaysFallsThrough(t *testing.T) {
	for _, decision := range []guard.Decision{
		guard.Disabled(),
		{Reason: guard.ReasonDescriptorEmpty},
		{Reason: guard.ReasonVersionMismatch, Mismatches: []domain.VersionMismatch{
			{Package: "lit", Declared: "3.1.0", Installed: "3.0.0"},
		}},
	} {
		t.Run(decision.Reason.String(), func(t *testing.T) {
			interceptor, _ := newInterceptor(t, decision)
			assert.False(t, interceptor.Enabled())

			for _, id := range []string{
				"/project/node_modules/lit",
				"/project/node_modules/@vaadin/button/src/vaadin-button.js",
				"/project/src/main.ts",
			} {
				_, ok := interceptor.TryRewrite(id)
				assert.False(t, ok, id)
			}
		})
	}
}

func TestTryRewrite_LogsResolverWarnings(t *testing.T) {
	interceptor, logger := newInterceptor(t, enabled())
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	src, ok := interceptor.TryRewrite("/project/node_modules/cyclic")
	require.True(t, ok)
	assert.Contains(t, src, "const { a } = __flowpackModule;")
}

func TestTryRewrite_TrailingSlashOnRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	interceptor := rewrite.New(dependencyRoot+"/", bundleImport, enabled(), resolver.New(testDescriptor()), logger)

	_, ok := interceptor.TryRewrite("/project/node_modules/lit")
	assert.True(t, ok)
}
