package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records condlang metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEvaluation records one evaluation with its outcome status.
	RecordEvaluation(ctx context.Context, status string, duration time.Duration)

	// RecordIntrinsicCall records one predicate invocation.
	RecordIntrinsicCall(ctx context.Context, name string, result bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	evaluations    metric.Int64Counter
	evalErrors     metric.Int64Counter
	evalLatency    metric.Float64Histogram
	intrinsicCalls metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the default OTel metrics instance.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("condlang")

	evaluations, err := meter.Int64Counter("condlang.evaluations",
		metric.WithDescription("Number of condition evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalErrors, err := meter.Int64Counter("condlang.evaluation.errors",
		metric.WithDescription("Number of condition evaluations that failed"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("condlang.evaluation.latency_ms",
		metric.WithDescription("Condition evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	intrinsicCalls, err := meter.Int64Counter("condlang.intrinsic.calls",
		metric.WithDescription("Number of intrinsic predicate invocations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		evaluations:    evaluations,
		evalErrors:     evalErrors,
		evalLatency:    evalLatency,
		intrinsicCalls: intrinsicCalls,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEvaluation records an evaluation.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, status string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.evaluations.Add(ctx, 1, attrs)
	m.evalLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if status != "success" {
		m.evalErrors.Add(ctx, 1, attrs)
	}
}

// RecordIntrinsicCall records a predicate invocation.
func (m *otelMetrics) RecordIntrinsicCall(ctx context.Context, name string, result bool) {
	m.intrinsicCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("intrinsic", name),
		attribute.Bool("result", result),
	))
}
