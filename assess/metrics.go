// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package assess

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for assessment operations.
var (
	tracer = otel.Tracer("aleutian.chainscore.assess")
	meter  = otel.Meter("aleutian.chainscore.assess")
)

// Metrics for assessment operations.
var (
	assessmentsTotal   metric.Int64Counter
	assessmentDuration metric.Float64Histogram
	overallHistogram   metric.Float64Histogram
	dimensionHistogram metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		assessmentsTotal, err = meter.Int64Counter(
			"chainscore_assessments_total",
			metric.WithDescription("Total chain assessments by method and outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		assessmentDuration, err = meter.Float64Histogram(
			"chainscore_assessment_duration_seconds",
			metric.WithDescription("Assessment duration by outcome"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		overallHistogram, err = meter.Float64Histogram(
			"chainscore_overall_confidence",
			metric.WithDescription("Overall confidence score distribution"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		dimensionHistogram, err = meter.Float64Histogram(
			"chainscore_dimension_score",
			metric.WithDescription("Per-dimension diagnostic score distribution"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordAssessment records metrics for a single assessment call.
//
// Thread Safety: Safe for concurrent use.
func recordAssessment(ctx context.Context, method string, degraded bool, duration time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}

	outcome := "ok"
	if degraded {
		outcome = "degraded"
	}

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("outcome", outcome),
	)

	assessmentsTotal.Add(ctx, 1, attrs)
	assessmentDuration.Record(ctx, duration.Seconds(), attrs)
}

// recordScores records the score distributions for a completed
// analysis.
//
// Thread Safety: Safe for concurrent use.
func recordScores(ctx context.Context, analysis *ConfidenceAnalysis) {
	if err := initMetrics(); err != nil {
		return
	}
	if analysis == nil {
		return
	}

	overallHistogram.Record(ctx, analysis.Overall)

	dims := []struct {
		name  string
		score float64
	}{
		{"reasoning", analysis.ReasoningConfidence},
		{"evidence", analysis.EvidenceConfidence},
		{"coherence", analysis.ReasoningCoherence},
		{"assumption_certainty", analysis.AssumptionCertainty},
		{"source_reliability", analysis.SourceReliability},
	}
	for _, d := range dims {
		dimensionHistogram.Record(ctx, d.score,
			metric.WithAttributes(attribute.String("dimension", d.name)))
	}
}

// startAssessSpan creates a span for one assessment.
//
// Thread Safety: Safe for concurrent use.
func startAssessSpan(ctx context.Context, chainID string, stepCount int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "chainscore.assess",
		trace.WithAttributes(
			attribute.String("chain.id", chainID),
			attribute.Int("chain.steps", stepCount),
		),
	)
}

// setAssessSpanResult sets result attributes on an assessment span.
//
// Thread Safety: Safe for concurrent use.
func setAssessSpanResult(span trace.Span, analysis *ConfidenceAnalysis) {
	if analysis == nil {
		return
	}

	span.SetAttributes(
		attribute.Float64("assess.overall", analysis.Overall),
		attribute.Float64("assess.reasoning", analysis.ReasoningConfidence),
		attribute.Float64("assess.evidence", analysis.EvidenceConfidence),
		attribute.Float64("assess.coherence", analysis.ReasoningCoherence),
		attribute.Float64("assess.assumption_certainty", analysis.AssumptionCertainty),
		attribute.Bool("assess.degraded", analysis.Degraded),
	)
}
