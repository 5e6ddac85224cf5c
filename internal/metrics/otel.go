package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "mlb-fanbot"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
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

type otelInstruments struct {
	ctx             context.Context
	meter           metric.Meter
	feedFetches     metric.Int64Counter
	feedErrors      metric.Int64Counter
	feedLatencyMs   metric.Float64Histogram
	dialogTrips     metric.Int64Counter
	dialogErrors    metric.Int64Counter
	dialogLatencyMs metric.Float64Histogram
	toneCalls       metric.Int64Counter
	toneErrors      metric.Int64Counter
	messagesSent    metric.Int64Counter
	messageErrors   metric.Int64Counter
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("mlb-fanbot")
	ctx := context.Background()

	feedFetches, err := meter.Int64Counter("feed_fetches_total")
	if err != nil {
		return nil, err
	}
	feedErrors, err := meter.Int64Counter("feed_errors_total")
	if err != nil {
		return nil, err
	}
	feedLatency, err := meter.Float64Histogram("feed_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	dialogTrips, err := meter.Int64Counter("dialog_round_trips_total")
	if err != nil {
		return nil, err
	}
	dialogErrors, err := meter.Int64Counter("dialog_errors_total")
	if err != nil {
		return nil, err
	}
	dialogLatency, err := meter.Float64Histogram("dialog_round_trip_duration_ms")
	if err != nil {
		return nil, err
	}
	toneCalls, err := meter.Int64Counter("tone_calls_total")
	if err != nil {
		return nil, err
	}
	toneErrors, err := meter.Int64Counter("tone_errors_total")
	if err != nil {
		return nil, err
	}
	messagesSent, err := meter.Int64Counter("messages_sent_total")
	if err != nil {
		return nil, err
	}
	messageErrors, err := meter.Int64Counter("message_errors_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:             ctx,
		meter:           meter,
		feedFetches:     feedFetches,
		feedErrors:      feedErrors,
		feedLatencyMs:   feedLatency,
		dialogTrips:     dialogTrips,
		dialogErrors:    dialogErrors,
		dialogLatencyMs: dialogLatency,
		toneCalls:       toneCalls,
		toneErrors:      toneErrors,
		messagesSent:    messagesSent,
		messageErrors:   messageErrors,
	}, nil
}

func (o *otelInstruments) recordFeedFetch(feed string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrFeed, feed)}
	o.recordCounter(o.feedFetches, 1, attrs...)
	o.recordHistogram(o.feedLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.feedErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordDialogRoundTrip(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.dialogTrips, 1)
	o.recordHistogram(o.dialogLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.dialogErrors, 1)
	}
}

func (o *otelInstruments) recordToneCall(duration time.Duration, err error) {
	if o == nil {
		return
	}
	_ = duration
	o.recordCounter(o.toneCalls, 1)
	if err != nil {
		o.recordCounter(o.toneErrors, 1)
	}
}

func (o *otelInstruments) recordMessageSent(err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.messagesSent, 1)
	if err != nil {
		o.recordCounter(o.messageErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
