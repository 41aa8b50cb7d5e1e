package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"

	centralcfg "github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
)

// Config holds observability configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string

	// OTLP HTTP trace exporter, e.g. "localhost:4318"
	OTLPEndpoint string
	OTLPInsecure bool

	// 0.0 to 1.0, default 1.0 (sample all)
	SamplingRate float64
}

// FromCentralConfig converts central config to package Config.
func FromCentralConfig(c *centralcfg.Config) Config {
	return Config{
		ServiceName:    c.Observability.ServiceName,
		ServiceVersion: c.Observability.ServiceVersion,
		Environment:    c.Server.Environment,
		OTLPEndpoint:   c.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   c.Observability.Tracing.OTLPInsecure,
		SamplingRate:   c.Observability.Tracing.SamplingRate,
	}
}

// Provider holds the OpenTelemetry providers.
type Provider struct {
	TracerProvider     *trace.TracerProvider
	MeterProvider      *metric.MeterProvider
	PrometheusExporter *prometheus.Exporter
}

// InitTelemetry initializes OpenTelemetry tracing and metrics and registers
// the global providers and W3C propagator.
func InitTelemetry(ctx context.Context, cfg Config) (*Provider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			"", // inherit schema URL from Default()
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironmentName(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tracerProvider, err := initTracing(ctx, res, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	meterProvider, promExporter, err := initMetrics(res)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Provider{
		TracerProvider:     tracerProvider,
		MeterProvider:      meterProvider,
		PrometheusExporter: promExporter,
	}, nil
}

func initTracing(ctx context.Context, res *resource.Resource, cfg Config) (*trace.TracerProvider, error) {
	samplingRate := cfg.SamplingRate
	if samplingRate == 0 {
		samplingRate = 1.0
	}

	var exporter trace.SpanExporter
	var err error

	// Only configure the OTLP exporter when an endpoint is provided.
	if cfg.OTLPEndpoint != "" {
		opts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		}
		if cfg.OTLPInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}

		exporter, err = otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
	}

	tp := trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithSampler(trace.TraceIDRatioBased(samplingRate)),
	)

	if exporter != nil {
		tp.RegisterSpanProcessor(trace.NewBatchSpanProcessor(exporter))
	}

	return tp, nil
}

func initMetrics(res *resource.Resource) (*metric.MeterProvider, *prometheus.Exporter, error) {
	promExporter, err := prometheus.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(promExporter),
	)

	return meterProvider, promExporter, nil
}

// Shutdown gracefully shuts down the telemetry providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.TracerProvider.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}
	if err := p.MeterProvider.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}

	return nil
}
