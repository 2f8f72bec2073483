// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package calibration

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level meter for calibration operations.
var meter = otel.Meter("aleutian.chainscore.calibration")

// Metrics for calibration operations.
var (
	feedbackTotal       metric.Int64Counter
	feedbackRejected    metric.Int64Counter
	adjustmentHistogram metric.Float64Histogram
	windowSizeGauge     metric.Int64Gauge

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		feedbackTotal, err = meter.Int64Counter(
			"chainscore_feedback_total",
			metric.WithDescription("Total accepted calibration feedback events by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		feedbackRejected, err = meter.Int64Counter(
			"chainscore_feedback_rejected_total",
			metric.WithDescription("Total rejected calibration feedback events by reason"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		adjustmentHistogram, err = meter.Float64Histogram(
			"chainscore_calibration_adjustment",
			metric.WithDescription("Signed calibration adjustment distribution"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		windowSizeGauge, err = meter.Int64Gauge(
			"chainscore_calibration_window_size",
			metric.WithDescription("Current calibration history length"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordFeedback records metrics for one accepted feedback event.
//
// Thread Safety: Safe for concurrent use.
func recordFeedback(ctx context.Context, outcome bool, adjustment float64, windowLen int) {
	if err := initMetrics(); err != nil {
		return
	}

	result := "success"
	if !outcome {
		result = "failure"
	}

	feedbackTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", result)))
	adjustmentHistogram.Record(ctx, adjustment)
	windowSizeGauge.Record(ctx, int64(windowLen))
}

// recordFeedbackRejected records one dropped feedback event.
//
// Thread Safety: Safe for concurrent use.
func recordFeedbackRejected(ctx context.Context, reason string) {
	if err := initMetrics(); err != nil {
		return
	}

	feedbackRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
