package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/flowpack/cmd/flowpack/commands"
	"go.trai.ch/flowpack/internal/adapters/telemetry"
	"go.trai.ch/flowpack/internal/app"
	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/core/ports"
	"go.trai.ch/flowpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	root        string
	cfg         *domain.Config
	app         *app.App
	loader      *mocks.MockConfigLoader
	descriptors *mocks.MockDescriptorLoader
	lookup      *mocks.MockVersionLookup
	outputs     *mocks.MockOutputEnumerator
	logger      *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	h := &harness{
		root:        root,
		cfg:         domain.DefaultConfig(root),
		loader:      mocks.NewMockConfigLoader(ctrl),
		descriptors: mocks.NewMockDescriptorLoader(ctrl),
		lookup:      mocks.NewMockVersionLookup(ctrl),
		outputs:     mocks.NewMockOutputEnumerator(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
	}
	versions := func(string) ports.VersionLookup { return h.lookup }
	watchers := func() (ports.Watcher, error) { return nil, errors.New("watch disabled in tests") }
	h.app = app.New(h.loader, h.descriptors, versions, h.outputs, watchers, telemetry.NewNoOpTracer(), h.logger)

	h.loader.EXPECT().Load(root).Return(h.cfg, nil).AnyTimes()
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return h
}

func (h *harness) withBundle(installed string) {
	h.descriptors.EXPECT().Load(h.cfg.DescriptorPath).Return(&domain.BundleDescriptor{Packages: map[string]domain.PackageInfo{
		"lit": {Version: "3.0.0", Exposes: map[string]domain.ExposeInfo{
			"./": {Exports: []domain.ExportEntry{domain.Name("html"), domain.Name("css")}},
		}},
	}}, nil)
	h.lookup.EXPECT().InstalledVersion("lit").Return(installed, nil)
}

func (h *harness) execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cli := commands.New(h.app)
	var stdout, stderr bytes.Buffer
	cli.SetOutput(&stdout, &stderr)
	cli.SetArgs(append([]string{"-C", h.root}, args...))
	err := cli.Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCheck_Enabled(t *testing.T) {
	h := newHarness(t)
	h.withBundle("3.0.0")

	stdout, _, err := h.execute(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "✓ shared bundle enabled: 1 packages\n", stdout)
}

func TestCheck_Mismatch(t *testing.T) {
	h := newHarness(t)
	h.withBundle("3.1.0")
	h.logger.EXPECT().Warn(gomock.Any()).Times(2)

	stdout, _, err := h.execute(t, "check")
	require.NoError(t, err, "a disabled bundle is not a failure")
	assert.Equal(t,
		"✗ shared bundle disabled: version mismatch\n  → lit: bundle has 3.0.0, installed 3.1.0\n",
		stdout)
}

func TestCheck_DescriptorOverride(t *testing.T) {
	h := newHarness(t)
	custom := filepath.Join(h.root, "bundle.json")
	h.descriptors.EXPECT().Load(custom).Return(nil, domain.ErrDescriptorNotFound)

	stdout, _, err := h.execute(t, "check", "--descriptor", custom)
	require.NoError(t, err)
	assert.Equal(t, "✗ shared bundle disabled: descriptor unavailable\n", stdout)
}

func TestResolve(t *testing.T) {
	h := newHarness(t)
	h.withBundle("3.0.0")

	stdout, _, err := h.execute(t, "resolve", "lit")
	require.NoError(t, err)
	assert.Equal(t, "html\ncss\n", stdout)
}

func TestResolve_NotExposed(t *testing.T) {
	h := newHarness(t)
	h.withBundle("3.0.0")

	_, _, err := h.execute(t, "resolve", "react")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModuleNotExposed))
}

func TestResolve_MissingArgument(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.execute(t, "resolve")
	require.ErrorIs(t, err, domain.ErrMissingModuleID)
}

func TestRewrite(t *testing.T) {
	h := newHarness(t)
	h.withBundle("3.0.0")

	stdout, _, err := h.execute(t, "rewrite", "lit")
	require.NoError(t, err)
	assert.Contains(t, stdout, `const __flowpackModule = (await __flowpackGet("./node_modules/lit"))();`)
	assert.Contains(t, stdout, "export { html, css };")
}

func TestRewrite_FallThrough(t *testing.T) {
	h := newHarness(t)
	h.withBundle("3.0.0")

	stdout, _, err := h.execute(t, "rewrite", filepath.Join(h.root, "src", "main.ts"))
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestServe(t *testing.T) {
	h := newHarness(t)
	h.withBundle("3.0.0")

	cli := commands.New(h.app)
	var stdout bytes.Buffer
	cli.SetOutput(&stdout, new(bytes.Buffer))
	cli.SetInput(strings.NewReader(`{"id":7,"module":"` + filepath.ToSlash(filepath.Join(h.root, "src", "main.ts")) + `"}` + "\n"))
	cli.SetArgs([]string{"-C", h.root, "serve", "--concurrency", "1"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.JSONEq(t, `{"id":7,"fallthrough":true}`, stdout.String())
}

func writeServiceWorker(t *testing.T, dir, name string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	sw := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(sw, []byte("const manifest = self.__WB_MANIFEST;\n"), 0o644))
	return sw
}

func TestPrecache_Flags(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(h.root, "dist")
	sw := writeServiceWorker(t, out, "service-worker.js")

	h.outputs.EXPECT().Enumerate(gomock.Any(), out).Return([]domain.OutputFile{
		{Path: "index.html", Size: 5, ContentHash: "0000000000000001"},
	}, nil)

	_, _, err := h.execute(t, "precache", "--out", out, "--sw", "service-worker.js")
	require.NoError(t, err)

	data, err := os.ReadFile(sw)
	require.NoError(t, err)
	assert.Equal(t, `const manifest = [{"url":".","revision":"0000000000000001"}];`+"\n", string(data))
}

func TestPrecache_EnvOverride(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(h.root, "build")
	sw := writeServiceWorker(t, out, "sw.js")
	t.Setenv("FLOWPACK_OUT", out)

	h.outputs.EXPECT().Enumerate(gomock.Any(), out).Return(nil, nil)

	_, _, err := h.execute(t, "precache")
	require.NoError(t, err)

	data, err := os.ReadFile(sw)
	require.NoError(t, err)
	assert.Equal(t, "const manifest = [];\n", string(data))
}

func TestPrecache_MissingInjectionPoint(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(h.cfg.Precache.OutputDir, 0o750))
	require.NoError(t, os.WriteFile(h.cfg.ServiceWorkerPath(), []byte("// no marker\n"), 0o644))

	h.outputs.EXPECT().Enumerate(gomock.Any(), h.cfg.Precache.OutputDir).Return(nil, nil)

	_, _, err := h.execute(t, "precache")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInjectionPointNotFound))
	assert.ErrorContains(t, err, "cannot inject precache manifest")
}

type recordingApp struct {
	*app.App
	verbose    bool
	jsonOutput bool
}

func (r *recordingApp) ConfigureLogging(verbose, jsonOutput bool) {
	r.verbose = verbose
	r.jsonOutput = jsonOutput
}

func TestRoot_LoggingFlags(t *testing.T) {
	h := newHarness(t)
	rec := &recordingApp{App: h.app}

	cli := commands.New(rec)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--verbose", "--json", "version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, rec.verbose)
	assert.True(t, rec.jsonOutput)
}

func TestRoot_LoggingEnv(t *testing.T) {
	h := newHarness(t)
	rec := &recordingApp{App: h.app}
	t.Setenv("FLOWPACK_VERBOSE", "true")

	cli := commands.New(rec)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, rec.verbose)
	assert.False(t, rec.jsonOutput)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	stdout, _, err := h.execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "flowpack version dev (commit: none, date: unknown)\n", stdout)
}

func TestRoot_Help(t *testing.T) {
	h := newHarness(t)

	stdout, _, err := h.execute(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"check", "resolve", "rewrite", "serve", "precache", "version"} {
		assert.Contains(t, stdout, name)
	}
}
