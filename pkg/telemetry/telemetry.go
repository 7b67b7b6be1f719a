// Package telemetry wires OpenTelemetry metrics for the pipeline.
//
// Metrics are off by default; enable them via telemetry.enabled in sni.yaml
// or SNI_TELEMETRY=1. When disabled, Init installs a no-op meter provider so
// instrumented call sites cost nothing.
//
// Supported exporters:
//
//   - stdout: prints metrics to stdout on every export interval (dev mode)
//   - otlp: OTLP/HTTP push to a collector (telemetry.otlp_endpoint)
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/version"
)

const instrumentationScope = "github.com/design4music/sni-platform-sub000"

// Init configures the global meter provider from cfg and returns a shutdown
// function that flushes pending exports. When telemetry is disabled the
// shutdown function is a no-op and no exporter is created.
func Init(ctx context.Context, cfg *config.TelemetryConfig) (func(context.Context) error, error) {
	if cfg == nil || !cfg.Enabled {
		otel.SetMeterProvider(metricnoop.NewMeterProvider())
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(version.AppName),
			semconv.ServiceVersionKey.String(version.GitCommit),
		),
		resource.WithHost(),
		resource.WithProcess(),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: resource: %w", err)
	}

	exporter, err := buildExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.Interval)),
		),
	)
	otel.SetMeterProvider(provider)
	return provider.Shutdown, nil
}

func buildExporter(ctx context.Context, cfg *config.TelemetryConfig) (sdkmetric.Exporter, error) {
	switch cfg.Exporter {
	case "otlp":
		exporter, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(cfg.OTLPEndpoint),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("telemetry: otlp exporter: %w", err)
		}
		return exporter, nil
	default:
		exporter, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("telemetry: stdout exporter: %w", err)
		}
		return exporter, nil
	}
}
