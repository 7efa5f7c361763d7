package metrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "hoopster"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Telemetry bundles the recorder with its exporters.
type Telemetry struct {
	Recorder *Recorder
	handler  http.Handler
	gatherer prometheus.Gatherer
	shutdown func(context.Context) error
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and an
// optional OTLP exporter. When disabled, the Recorder only keeps in-memory stats.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{
			Recorder: NewRecorder(),
			shutdown: func(context.Context) error { return nil },
		}, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, reg, err := promReaderFactory()
	if err != nil {
		return nil, fmt.Errorf("metrics: prometheus exporter: %w", err)
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, fmt.Errorf("metrics: otlp exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: resource: %w", err)
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, fmt.Errorf("metrics: instruments: %w", err)
	}

	return &Telemetry{
		Recorder: newRecorder(otelInst),
		handler:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		gatherer: reg,
		shutdown: provider.Shutdown,
	}, nil
}

// Handler serves the Prometheus exposition, or nil when telemetry is disabled.
func (t *Telemetry) Handler() http.Handler {
	return t.handler
}

// WriteText writes the current Prometheus text exposition to w.
// It writes nothing when telemetry is disabled.
func (t *Telemetry) WriteText(w io.Writer) error {
	if t.gatherer == nil {
		return nil
	}
	families, err := t.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Shutdown flushes and stops the exporters.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx       context.Context
	requests  metric.Int64Counter
	errors    metric.Int64Counter
	latencyMs metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)

	requests, err := meter.Int64Counter("api_requests_total")
	if err != nil {
		return nil, err
	}
	errs, err := meter.Int64Counter("api_request_errors_total")
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram("api_request_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:       context.Background(),
		requests:  requests,
		errors:    errs,
		latencyMs: latency,
	}, nil
}

func (o *otelInstruments) recordRequest(method, endpoint string, status int, duration time.Duration, failed bool) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrEndpoint, endpoint),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.latencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
	if failed {
		o.errors.Add(o.ctx, 1, attrs)
	}
}
