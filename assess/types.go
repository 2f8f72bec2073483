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
	"time"

	"github.com/google/uuid"
)

// Confidence range bounds enforced on actionable scores.
const (
	// MinConfidence is the floor for overall and reasoning confidence.
	MinConfidence = 0.70

	// MaxConfidence is the ceiling for overall and reasoning confidence.
	MaxConfidence = 0.95
)

// Dimension weights for the combined overall score.
const (
	weightReasoning  = 0.35
	weightEvidence   = 0.25
	weightCoherence  = 0.20
	weightAssumption = 0.20
)

// ConfidenceAnalysis is the engine output for one assessment call.
//
// Overall is the actionable number; the other dimension scores are
// explanatory diagnostics.
type ConfidenceAnalysis struct {
	// AnalysisID uniquely identifies this analysis.
	AnalysisID string `json:"analysis_id"`

	// ChainID echoes the assessed chain's ID when present.
	ChainID string `json:"chain_id,omitempty"`

	// Overall is the combined confidence, clamped to
	// [MinConfidence, MaxConfidence].
	Overall float64 `json:"overall"`

	// ReasoningConfidence is the step quality rollup, clamped to
	// [MinConfidence, MaxConfidence].
	ReasoningConfidence float64 `json:"reasoning_confidence"`

	// EvidenceConfidence is the aggregate evidence score in [0,1].
	EvidenceConfidence float64 `json:"evidence_confidence"`

	// SourceReliability is a derived diagnostic:
	// min(1.0, EvidenceConfidence * 1.1).
	SourceReliability float64 `json:"source_reliability"`

	// AssumptionCertainty is the assumption-risk certainty in [0,1].
	AssumptionCertainty float64 `json:"assumption_certainty"`

	// ReasoningCoherence is the internal-consistency score in [0,1].
	ReasoningCoherence float64 `json:"reasoning_coherence"`

	// Level is the human-readable band for Overall.
	Level ConfidenceLevel `json:"level"`

	// Degraded is true when the engine returned the safe default
	// because the input was malformed or scoring faulted.
	Degraded bool `json:"degraded,omitempty"`

	// AnalyzedAt records when the analysis was produced.
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// ConfidenceLevel categorizes confidence into human-readable levels.
type ConfidenceLevel string

const (
	// LevelVeryHigh indicates very high confidence (>= 0.9).
	LevelVeryHigh ConfidenceLevel = "very_high"

	// LevelHigh indicates high confidence (>= 0.8).
	LevelHigh ConfidenceLevel = "high"

	// LevelModerate indicates moderate confidence (>= MinConfidence).
	LevelModerate ConfidenceLevel = "moderate"

	// LevelFloor indicates the score sits at the clamped floor, which
	// usually means the chain scored poorly on several dimensions.
	LevelFloor ConfidenceLevel = "floor"
)

// LevelFor converts a clamped overall confidence to a level.
//
// The bands are narrower than a generic 0-1 scale because overall
// scores only occupy [MinConfidence, MaxConfidence].
func LevelFor(confidence float64) ConfidenceLevel {
	switch {
	case confidence >= 0.9:
		return LevelVeryHigh
	case confidence >= 0.8:
		return LevelHigh
	case confidence > MinConfidence:
		return LevelModerate
	default:
		return LevelFloor
	}
}

// SafeDefault returns the fixed fallback analysis used when assessment
// cannot complete.
//
// Description:
//
//	The values are deliberately conservative: overall and reasoning sit
//	at the range floor and every diagnostic sits at its neutral point,
//	so a gating consumer treats the chain as barely trustworthy rather
//	than failing outright.
//
// Inputs:
//
//	chainID - The assessed chain's ID, or empty if unavailable.
//
// Outputs:
//
//	*ConfidenceAnalysis - The safe-default analysis.
func SafeDefault(chainID string) *ConfidenceAnalysis {
	return &ConfidenceAnalysis{
		AnalysisID:          uuid.NewString(),
		ChainID:             chainID,
		Overall:             MinConfidence,
		ReasoningConfidence: MinConfidence,
		EvidenceConfidence:  0.50,
		SourceReliability:   0.50,
		AssumptionCertainty: 0.50,
		ReasoningCoherence:  0.50,
		Level:               LevelFor(MinConfidence),
		Degraded:            true,
		AnalyzedAt:          time.Now(),
	}
}

// clampConfidence clamps v to [MinConfidence, MaxConfidence].
func clampConfidence(v float64) float64 {
	if v < MinConfidence {
		return MinConfidence
	}
	if v > MaxConfidence {
		return MaxConfidence
	}
	return v
}

// clampUnit clamps v to [0,1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
