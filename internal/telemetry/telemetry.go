// Package telemetry wires OpenTelemetry tracing to an OTLP/HTTP collector.
// Tracing is off unless an endpoint is configured; the global provider then
// stays the no-op default and spans cost nothing.
package telemetry

import (
	"context"
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
)

// Config points the exporter at a collector.
type Config struct {
	Endpoint    string `yaml:"endpoint"` // host:port; OTEL_EXPORTER_OTLP_ENDPOINT (a URL) when empty
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// ShutdownFunc flushes and stops the provider.
type ShutdownFunc func(context.Context) error

// Setup installs a batching tracer provider as the global provider.
// It returns a no-op shutdown and false when no endpoint is configured.
func Setup(ctx context.Context, cfg Config) (ShutdownFunc, bool, error) {
	if cfg.Endpoint == "" && os.Getenv(endpointEnv) == "" {
		return func(context.Context) error { return nil }, false, nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(cfg)...)
	if err != nil {
		return nil, false, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName(cfg)),
		)),
	)
	otel.SetTracerProvider(provider)
	return provider.Shutdown, true, nil
}

// exporterOptions points the exporter at cfg.Endpoint. Without one the
// exporter reads OTEL_EXPORTER_OTLP_ENDPOINT itself, which is a URL
// (http://host:port) rather than host:port.
func exporterOptions(cfg Config) []otlptracehttp.Option {
	var opts []otlptracehttp.Option
	if cfg.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

func serviceName(cfg Config) string {
	if cfg.ServiceName != "" {
		return cfg.ServiceName
	}
	if env := os.Getenv(serviceNameEnv); env != "" {
		return env
	}
	return "linkbird"
}
