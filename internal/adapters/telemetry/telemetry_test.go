package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/flowpack/internal/adapters/telemetry"
	"go.trai.ch/flowpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_SpansAreLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var lines []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { lines = append(lines, msg) }).Times(2)

	tp := telemetry.NewProvider(log)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracer(tp)

	ctx, span := tracer.Start(context.Background(), "precache")
	span.SetAttribute("entries", 3)
	span.SetAttribute("dir", "webapp")

	_, child := tracer.Start(ctx, "inject")
	child.RecordError(errors.New("marker missing"))
	child.End()
	span.End()

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "inject took")
	assert.Contains(t, lines[0], "failed: marker missing")
	assert.Contains(t, lines[1], "precache took")
	assert.Contains(t, lines[1], "entries=3")
	assert.Contains(t, lines[1], "dir=webapp")
}

func TestOTelSpan_RecordNilError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		assert.NotContains(t, msg, "failed")
	})

	tp := telemetry.NewProvider(log)
	_, span := telemetry.NewOTelTracer(tp).Start(context.Background(), "session")
	span.RecordError(nil)
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "anything")
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
