package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/bubbles/internal/adapters/telemetry"
	"go.trai.ch/bubbles/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_LogsEndedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	var infos, warns []string
	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) }).Times(1)
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warns = append(warns, msg) }).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(logger)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := tp.Tracer("test")

	_, ok := tracer.Start(t.Context(), "layout")
	ok.SetAttributes(attribute.Int("nodes", 6), attribute.String("format", "svg"))
	ok.End()

	_, failed := tracer.Start(t.Context(), "load_rows")
	failed.RecordError(errors.New("missing file"))
	failed.SetStatus(codes.Error, "missing file")
	failed.End()

	require.Len(t, infos, 1)
	assert.Regexp(t, `^layout \S+ format=svg nodes=6$`, infos[0])
	require.Len(t, warns, 1)
	assert.Regexp(t, `^load_rows \S+ failed: missing file$`, warns[0])
}

func TestBridge_NilLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(t.Context(), "render")
	span.End()

	b := telemetry.NewBridge(nil)
	assert.NoError(t, b.ForceFlush(t.Context()))
	assert.NoError(t, b.Shutdown(t.Context()))
}
