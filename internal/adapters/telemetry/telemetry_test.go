package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/warmboot/internal/adapters/telemetry"
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	prev := otel.GetTracerProvider()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func attrMap(kvs []attribute.KeyValue) map[string]any {
	m := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value.AsInterface()
	}
	return m
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "cache.restore",
		ports.WithAttribute("artifact", "/var/lib/warmboot/instance/obj.blob"),
		ports.WithAttribute("boot_count", 3),
	)
	span.SetAttribute("verdict", domain.VerdictCompatible)
	span.SetAttribute("purged", false)
	span.SetAttribute("facts", []string{"hostname", "os"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "cache.restore", spans[0].Name())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "/var/lib/warmboot/instance/obj.blob", attrs["artifact"])
	assert.Equal(t, int64(3), attrs["boot_count"])
	assert.Equal(t, domain.VerdictCompatible.String(), attrs["verdict"])
	assert.Equal(t, false, attrs["purged"])
	assert.Equal(t, []string{"hostname", "os"}, attrs["facts"])
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "cache.persist")
	span.RecordError(nil)
	span.RecordError(errors.New("disk full"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "disk full", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	ctx, parent := tracer.Start(context.Background(), "boot")
	_, child := tracer.Start(ctx, "instance.initialize")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	gotCtx, span := tracer.Start(ctx, "anything", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, gotCtx)

	span.SetAttribute("k", 1)
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestNewSpanExporter(t *testing.T) {
	exp, err := telemetry.NewSpanExporter(domain.ExporterNone, nil)
	require.NoError(t, err)
	assert.Nil(t, exp)

	exp, err = telemetry.NewSpanExporter(domain.ExporterStdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NotNil(t, exp)

	_, err = telemetry.NewSpanExporter("jaeger", nil)
	require.ErrorIs(t, err, domain.ErrUnknownExporter)
}

func TestSetup_StdoutExportsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	buf := &bytes.Buffer{}
	shutdown, err := telemetry.Setup(domain.ExporterStdout, buf)
	require.NoError(t, err)

	_, span := telemetry.NewOTelTracer(telemetry.InstrumentationName).Start(context.Background(), "cache.persist")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"cache.persist"`)
}
