package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/flowpack/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("bundle descriptor loaded") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("lit: bundle has 3.1.0, installed 3.0.0") },
			goldenName: "warn_basic",
		},
		{
			name:       "error chain",
			log:        func(l *logger.Logger) { l.Error(zerr.Wrap(errors.New("disk full"), "write failed")) },
			goldenName: "error_chain",
		},
		{
			name: "error metadata",
			log: func(l *logger.Logger) {
				err := zerr.Wrap(errors.New("no such marker"), "cannot inject precache manifest")
				l.Error(zerr.With(zerr.With(err, "marker", "self.__WB_MANIFEST"), "file", "sw.js"))
			},
			goldenName: "error_metadata",
		},
		{
			name:       "plain error",
			log:        func(l *logger.Logger) { l.Error(errors.New("boom")) },
			goldenName: "error_plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_DebugRequiresVerbose(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.Debug("shown")
	assert.Equal(t, "· shown\n", buf.String())

	lg.SetVerbose(false)
	buf.Reset()
	lg.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_NilErrorIsIgnored(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Warn("careful")

	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	l := slog.New(logger.NewPrettyHandler(buf, slog.LevelInfo)).
		With("file", "sw.js").
		WithGroup("manifest")
	l.Info("injected", "entries", 3)

	require.Equal(t, "injected manifest.file=sw.js manifest.entries=3\n", buf.String())
}
