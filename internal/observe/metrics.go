// Package observe holds the OpenTelemetry metric instruments of the server
// and the Prometheus bridge that exposes them on /metrics.
package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "safelink/backend"

var latencyBuckets = []float64{
	0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
}

// Metrics is nil-safe: every Record method on a nil *Metrics is a no-op.
type Metrics struct {
	TranslationRequests  metric.Int64Counter
	FallbackTranslations metric.Int64Counter
	SpeechRequests       metric.Int64Counter
	HubDeliveries        metric.Int64Counter
	HubConnections       metric.Int64UpDownCounter
	UpstreamDuration     metric.Float64Histogram
	HTTPRequestDuration  metric.Float64Histogram
}

func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.TranslationRequests, err = m.Int64Counter("safelink.translation.requests",
		metric.WithDescription("Translation requests by provider and result."),
	); err != nil {
		return nil, err
	}
	if met.FallbackTranslations, err = m.Int64Counter("safelink.translation.fallbacks",
		metric.WithDescription("Translations answered by the offline glossary translator."),
	); err != nil {
		return nil, err
	}
	if met.SpeechRequests, err = m.Int64Counter("safelink.tts.requests",
		metric.WithDescription("Speech synthesis requests by source."),
	); err != nil {
		return nil, err
	}
	if met.HubDeliveries, err = m.Int64Counter("safelink.hub.deliveries",
		metric.WithDescription("Broadcast frames delivered to connected clients."),
	); err != nil {
		return nil, err
	}
	if met.HubConnections, err = m.Int64UpDownCounter("safelink.hub.connections",
		metric.WithDescription("Live broadcast connections by role."),
	); err != nil {
		return nil, err
	}
	if met.UpstreamDuration, err = m.Float64Histogram("safelink.upstream.duration",
		metric.WithDescription("Latency of remote translation and speech calls."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("safelink.http.request.duration",
		metric.WithDescription("HTTP request latency by method, route and status."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

func (m *Metrics) RecordTranslation(ctx context.Context, provider, result string) {
	if m == nil {
		return
	}
	m.TranslationRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("result", result),
	))
}

func (m *Metrics) RecordFallback(ctx context.Context, lang string) {
	if m == nil {
		return
	}
	m.FallbackTranslations.Add(ctx, 1, metric.WithAttributes(attribute.String("lang", lang)))
}

func (m *Metrics) RecordSpeech(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.SpeechRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

func (m *Metrics) RecordDelivery(ctx context.Context, role string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.HubDeliveries.Add(ctx, int64(n), metric.WithAttributes(attribute.String("role", role)))
}

func (m *Metrics) AddConnection(ctx context.Context, role string, delta int64) {
	if m == nil {
		return
	}
	m.HubConnections.Add(ctx, delta, metric.WithAttributes(attribute.String("role", role)))
}

// ObserveUpstream records how long a call to provider took.
func (m *Metrics) ObserveUpstream(ctx context.Context, kind, provider string, started time.Time) {
	if m == nil {
		return
	}
	m.UpstreamDuration.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("provider", provider),
	))
}
