// Package telemetry installs OpenTelemetry tracing when an OTLP endpoint is
// configured through the standard OTEL_* environment variables.
package telemetry

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	endpointEnv    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	serviceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName = "noted"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Setup installs a global tracer provider exporting over OTLP/HTTP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Without it, tracing stays on the
// no-op provider and the returned shutdown does nothing.
func Setup(ctx context.Context) (ShutdownFunc, error) {
	endpoint := os.Getenv(endpointEnv)
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	// Export failures would otherwise be printed over the TUI.
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		slog.Warn("telemetry error", slog.String("error", err.Error()))
	}))

	// The variable holds a URL such as http://localhost:4318; the scheme
	// decides whether TLS is used.
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", ServiceName()),
		)),
	)
	otel.SetTracerProvider(provider)
	slog.Debug("tracing enabled", slog.String("endpoint", endpoint))

	return provider.Shutdown, nil
}

// ServiceName returns OTEL_SERVICE_NAME or "noted".
func ServiceName() string {
	if name := os.Getenv(serviceNameEnv); name != "" {
		return name
	}
	return defaultServiceName
}
