// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package calibration tracks prediction/outcome pairs for the
// confidence engine and derives adjustment signals from them.
//
// The Tracker owns a bounded in-memory history (sliding window, oldest
// evicted first) and computes rolling calibration metrics on demand.
// Recording feedback is best-effort learning, not a correctness
// critical path: clearly invalid input is dropped with a warning
// rather than surfaced as an error.
package calibration

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Default tracker parameters.
const (
	// DefaultCapacity is the sliding-window record cap.
	DefaultCapacity = 100

	// DefaultMetricsWindow is how many recent records Metrics
	// aggregates over.
	DefaultMetricsWindow = 20

	// DefaultRecentAdjustments is how many raw adjustments Metrics
	// echoes back.
	DefaultRecentAdjustments = 5

	// DefaultRatingMin and DefaultRatingMax bound accepted user
	// ratings.
	DefaultRatingMin = 1.0
	DefaultRatingMax = 5.0
)

// Adjustment rule parameters.
const (
	// maxAdjustment caps the magnitude of any single nudge.
	maxAdjustment = 0.02

	// underTrustCeiling: successes predicted below this were
	// under-trusted and earn an upward nudge.
	underTrustCeiling = 0.90

	// overTrustFloor: failures predicted above this were over-trusted
	// and earn a downward nudge.
	overTrustFloor = 0.75

	// adjustmentRate scales the prediction gap into a nudge.
	adjustmentRate = 0.1

	// wellCalibratedThreshold splits predictions for the accuracy
	// metric: above it we expected success, at or below we did not.
	wellCalibratedThreshold = 0.8
)

// Record is one feedback event.
type Record struct {
	// ID uniquely identifies this record.
	ID string `json:"id"`

	// ChainID identifies the chain the prediction was made for.
	ChainID string `json:"chain_id,omitempty"`

	// PredictedConfidence is the overall value previously produced for
	// the chain.
	PredictedConfidence float64 `json:"predicted_confidence"`

	// ActualOutcome reports whether the conclusion proved correct.
	ActualOutcome bool `json:"actual_outcome"`

	// UserRating is the caller's rating on the configured scale.
	UserRating float64 `json:"user_rating"`

	// Adjustment is the signed correction computed at record time.
	Adjustment float64 `json:"adjustment"`

	// Timestamp is the record creation time.
	Timestamp time.Time `json:"timestamp"`
}

// Metrics summarizes recent calibration behavior.
type Metrics struct {
	// HasData is false when no feedback has been recorded yet; the
	// remaining fields are zero in that case.
	HasData bool `json:"has_data"`

	// Status is a human-readable summary, set when HasData is false.
	Status string `json:"status,omitempty"`

	// SampleSize is how many records the aggregates cover.
	SampleSize int `json:"sample_size"`

	// CalibrationAccuracy is the fraction of recent records where the
	// prediction and outcome agreed across the 0.8 threshold.
	CalibrationAccuracy float64 `json:"calibration_accuracy"`

	// AverageAdjustment is the mean absolute adjustment.
	AverageAdjustment float64 `json:"average_adjustment"`

	// AverageUserRating is the mean user rating.
	AverageUserRating float64 `json:"average_user_rating"`

	// RecentAdjustments lists the most recent raw adjustments in
	// chronological order.
	RecentAdjustments []float64 `json:"recent_adjustments"`

	// TotalRecords is the current window length (<= capacity).
	TotalRecords int `json:"total_records"`
}

// Tracker records prediction/outcome pairs in a bounded history.
//
// Thread Safety: Safe for concurrent use. Writers are serialized by a
// single lock so the sliding-window invariant holds: exactly the last
// <= capacity records, no loss or duplication.
type Tracker struct {
	mu      sync.RWMutex
	records []Record

	capacity    int
	window      int
	recentCount int
	ratingMin   float64
	ratingMax   float64

	logger *slog.Logger
}

// Config configures the Tracker.
type Config struct {
	// Capacity is the sliding-window cap. Default: 100.
	Capacity int

	// MetricsWindow is the aggregation window for Metrics. Default: 20.
	MetricsWindow int

	// RecentAdjustments is how many raw adjustments Metrics returns.
	// Default: 5.
	RecentAdjustments int

	// RatingMin and RatingMax bound accepted user ratings.
	// Defaults: 1 and 5.
	RatingMin float64
	RatingMax float64

	// Logger for diagnostics. If nil, uses slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default tracker configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity:          DefaultCapacity,
		MetricsWindow:     DefaultMetricsWindow,
		RecentAdjustments: DefaultRecentAdjustments,
		RatingMin:         DefaultRatingMin,
		RatingMax:         DefaultRatingMax,
		Logger:            nil,
	}
}

// NewTracker creates a tracker with the default configuration.
//
// Outputs:
//
//	*Tracker - The tracker instance.
func NewTracker() *Tracker {
	return NewTrackerWithConfig(DefaultConfig())
}

// NewTrackerWithConfig creates a tracker with the given configuration.
//
// Inputs:
//
//	config - The configuration. If nil, uses default.
//
// Outputs:
//
//	*Tracker - The tracker instance.
func NewTrackerWithConfig(config *Config) *Tracker {
	if config == nil {
		config = DefaultConfig()
	}

	capacity := config.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	window := config.MetricsWindow
	if window <= 0 {
		window = DefaultMetricsWindow
	}

	recent := config.RecentAdjustments
	if recent <= 0 {
		recent = DefaultRecentAdjustments
	}

	ratingMin := config.RatingMin
	ratingMax := config.RatingMax
	if ratingMax <= ratingMin {
		ratingMin = DefaultRatingMin
		ratingMax = DefaultRatingMax
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Tracker{
		records:     make([]Record, 0, capacity),
		capacity:    capacity,
		window:      window,
		recentCount: recent,
		ratingMin:   ratingMin,
		ratingMax:   ratingMax,
		logger:      logger,
	}
}

// RecordFeedback appends one feedback event to the history.
//
// Description:
//
//	Computes the adjustment signal for the prediction/outcome pair and
//	appends the record, evicting the oldest entry when the window is
//	full. Invalid input (non-finite prediction outside [0,1], rating
//	off the configured scale) is dropped with a warning: calibration
//	is best-effort and must never fail the caller.
//
// Inputs:
//
//	ctx - Context for metric recording.
//	chainID - The assessed chain's ID, or empty.
//	predicted - The overall confidence previously produced.
//	outcome - Whether the conclusion proved correct.
//	rating - The user rating on the configured scale.
//
// Outputs:
//
//	bool - True if the record was accepted.
//
// Thread Safety: Safe for concurrent use.
func (t *Tracker) RecordFeedback(ctx context.Context, chainID string, predicted float64, outcome bool, rating float64) bool {
	if math.IsNaN(predicted) || math.IsInf(predicted, 0) || predicted < 0 || predicted > 1 {
		t.logger.Warn("dropping calibration feedback: invalid prediction",
			slog.String("chain_id", chainID),
			slog.Float64("predicted", predicted),
		)
		recordFeedbackRejected(ctx, "invalid_prediction")
		return false
	}
	if math.IsNaN(rating) || rating < t.ratingMin || rating > t.ratingMax {
		t.logger.Warn("dropping calibration feedback: rating out of scale",
			slog.String("chain_id", chainID),
			slog.Float64("rating", rating),
		)
		recordFeedbackRejected(ctx, "rating_out_of_scale")
		return false
	}

	rec := Record{
		ID:                  uuid.NewString(),
		ChainID:             chainID,
		PredictedConfidence: predicted,
		ActualOutcome:       outcome,
		UserRating:          rating,
		Adjustment:          computeAdjustment(predicted, outcome),
		Timestamp:           time.Now(),
	}

	t.mu.Lock()
	t.records = append(t.records, rec)
	if len(t.records) > t.capacity {
		// Evict oldest; copy so the backing array does not pin evicted
		// records indefinitely.
		trimmed := make([]Record, t.capacity)
		copy(trimmed, t.records[len(t.records)-t.capacity:])
		t.records = trimmed
	}
	windowLen := len(t.records)
	t.mu.Unlock()

	recordFeedback(ctx, outcome, rec.Adjustment, windowLen)

	return true
}

// computeAdjustment derives the signed correction for one
// prediction/outcome pair.
//
// A success predicted below 0.90 was under-trusted: nudge up. A
// failure predicted above 0.75 was over-trusted: nudge down. Both
// nudges are capped at 0.02.
func computeAdjustment(predicted float64, outcome bool) float64 {
	if outcome && predicted < underTrustCeiling {
		return math.Min(maxAdjustment, (underTrustCeiling-predicted)*adjustmentRate)
	}
	if !outcome && predicted > overTrustFloor {
		return -math.Min(maxAdjustment, (predicted-overTrustFloor)*adjustmentRate)
	}
	return 0
}

// Metrics computes rolling calibration metrics over the most recent
// records.
//
// Description:
//
//	Aggregates over the last MetricsWindow records (default 20):
//	accuracy against the 0.8 threshold, mean absolute adjustment, mean
//	user rating, and the most recent raw adjustments in chronological
//	order. Returns an explanatory no-data result when the history is
//	empty.
//
// Outputs:
//
//	Metrics - A consistent snapshot of the tracker's recent behavior.
//
// Thread Safety: Safe for concurrent use; readers observe a consistent
// snapshot under the same lock writers serialize on.
func (t *Tracker) Metrics() Metrics {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.records) == 0 {
		return Metrics{
			HasData: false,
			Status:  "no calibration feedback recorded",
		}
	}

	recent := t.records
	if len(recent) > t.window {
		recent = recent[len(recent)-t.window:]
	}

	aligned := 0
	var adjSum, ratingSum float64
	for _, r := range recent {
		expectedSuccess := r.PredictedConfidence > wellCalibratedThreshold
		if expectedSuccess == r.ActualOutcome {
			aligned++
		}
		adjSum += math.Abs(r.Adjustment)
		ratingSum += r.UserRating
	}

	tail := recent
	if len(tail) > t.recentCount {
		tail = tail[len(tail)-t.recentCount:]
	}
	adjustments := make([]float64, len(tail))
	for i, r := range tail {
		adjustments[i] = r.Adjustment
	}

	n := float64(len(recent))
	return Metrics{
		HasData:             true,
		SampleSize:          len(recent),
		CalibrationAccuracy: float64(aligned) / n,
		AverageAdjustment:   adjSum / n,
		AverageUserRating:   ratingSum / n,
		RecentAdjustments:   adjustments,
		TotalRecords:        len(t.records),
	}
}

// Len returns the current history length.
//
// Thread Safety: Safe for concurrent use.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.records)
}

// Snapshot returns a copy of the current history, oldest first.
//
// Thread Safety: Safe for concurrent use.
func (t *Tracker) Snapshot() []Record {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Reset clears the history.
//
// Thread Safety: Safe for concurrent use.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = t.records[:0]
}
