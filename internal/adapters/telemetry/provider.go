package telemetry

import (
	"context"
	"errors"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/zerr"
)

// ShutdownFunc flushes and stops a tracer provider.
type ShutdownFunc func(ctx context.Context) error

// NewSpanExporter returns the span exporter for name, or nil when spans are not exported.
// Exported spans are written as JSON to w, defaulting to stderr.
func NewSpanExporter(name string, w io.Writer) (sdktrace.SpanExporter, error) {
	if w == nil {
		w = os.Stderr
	}

	switch name {
	case domain.ExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, zerr.Wrap(err, "create stdout exporter")
		}
		return exp, nil
	case domain.ExporterNone, "":
		return nil, nil
	default:
		return nil, errors.Join(domain.ErrUnknownExporter, zerr.With(zerr.New("invalid exporter"), "exporter", name))
	}
}

// Setup installs a global tracer provider that exports through the named exporter.
func Setup(name string, w io.Writer) (ShutdownFunc, error) {
	exp, err := NewSpanExporter(name, w)
	if err != nil {
		return nil, err
	}

	var opts []sdktrace.TracerProviderOption
	if exp != nil {
		opts = append(opts, sdktrace.WithSyncer(exp))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
