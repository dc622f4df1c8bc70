// Package observability provides logging, metrics, and tracing for
// condlang evaluations.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds the evaluation ID to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "3f2c...")
//	enriched.Debug("evaluating") // includes eval_id
func EnrichLogger(logger *slog.Logger, evalID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("eval_id", evalID))
}

// LogEvalStart logs the start of an evaluation.
func LogEvalStart(logger *slog.Logger, evalID, source string) {
	if logger == nil {
		return
	}
	logger.Debug("condition evaluation starting",
		slog.String("eval_id", evalID),
		slog.String("source", source),
	)
}

// LogEvalComplete logs a successful evaluation.
func LogEvalComplete(logger *slog.Logger, evalID string, value bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("condition evaluated",
		slog.String("eval_id", evalID),
		slog.Bool("value", value),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEvalError logs a failed evaluation.
func LogEvalError(logger *slog.Logger, evalID, source, status string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("condition evaluation failed",
		slog.String("eval_id", evalID),
		slog.String("source", source),
		slog.String("status", status),
		slog.String("error", err.Error()),
	)
}

// LogIntrinsicCall logs a single predicate invocation.
func LogIntrinsicCall(logger *slog.Logger, name string, result bool) {
	if logger == nil {
		return
	}
	logger.Debug("intrinsic called",
		slog.String("intrinsic", name),
		slog.Bool("result", result),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
