// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package chain defines the reasoning-chain data model scored by the
// confidence engine.
//
// A ReasoningChain is produced by an upstream reasoning process and
// passed read-only into the engine. The engine never mutates a chain;
// the summary fields the producer sets (overall_confidence,
// evidence_quality, assumption_risk) are informational only and are
// recomputed during assessment.
package chain

import (
	"time"

	"github.com/google/uuid"
)

// ReasoningMethod identifies the inference style used by a chain.
type ReasoningMethod string

const (
	// MethodDeductive derives conclusions that necessarily follow from premises.
	MethodDeductive ReasoningMethod = "deductive"

	// MethodInductive generalizes from observed instances.
	MethodInductive ReasoningMethod = "inductive"

	// MethodAbductive infers the best available explanation.
	MethodAbductive ReasoningMethod = "abductive"

	// MethodComparative reasons by weighing alternatives against each other.
	MethodComparative ReasoningMethod = "comparative"

	// MethodCausal reasons over cause-effect relationships.
	MethodCausal ReasoningMethod = "causal"
)

// Known reports whether m is one of the supported reasoning methods.
func (m ReasoningMethod) Known() bool {
	switch m {
	case MethodDeductive, MethodInductive, MethodAbductive,
		MethodComparative, MethodCausal:
		return true
	default:
		return false
	}
}

// ReasoningStep is one unit of reasoning within a chain.
type ReasoningStep struct {
	// StepNumber is a positive integer, unique within a chain. It
	// defines step ordering and doubles as a recency weight: later
	// steps matter more during rollup.
	StepNumber int `json:"step_number" validate:"gt=0"`

	// Description is a short free-text label for the step.
	Description string `json:"description"`

	// Reasoning is the step's natural-language justification.
	Reasoning string `json:"reasoning" validate:"required"`

	// Confidence is the producer's self-reported confidence in [0,1].
	// Zero means "not reported"; positive values are blended into the
	// step quality score.
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`

	// Evidence is an ordered list of free-text evidence citations.
	// May be empty.
	Evidence []string `json:"evidence,omitempty"`

	// Assumptions is an ordered list of free-text assumption
	// statements. May be empty.
	Assumptions []string `json:"assumptions,omitempty"`
}

// ReasoningChain is the object submitted for assessment.
type ReasoningChain struct {
	// ID correlates the chain with its analysis and later calibration
	// feedback.
	ID string `json:"id"`

	// Query is the original question or goal the chain addresses.
	Query string `json:"query"`

	// Steps is the non-empty ordered step sequence. Step numbers must
	// be non-decreasing.
	Steps []ReasoningStep `json:"steps" validate:"required,min=1,dive"`

	// FinalConclusion is the chain's free-text conclusion.
	FinalConclusion string `json:"final_conclusion"`

	// ReasoningMethod is the inference style used by the producer.
	ReasoningMethod ReasoningMethod `json:"reasoning_method" validate:"required,reasoning_method"`

	// OverallConfidence is the producer's own summary estimate.
	// Informational only; the engine recomputes its own.
	OverallConfidence float64 `json:"overall_confidence,omitempty"`

	// EvidenceQuality is the producer's own evidence estimate.
	// Informational only.
	EvidenceQuality float64 `json:"evidence_quality,omitempty"`

	// AssumptionRisk is the producer's own assumption-risk estimate.
	// Informational only.
	AssumptionRisk float64 `json:"assumption_risk,omitempty"`

	// CreatedAt records when the chain was constructed.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// New constructs a chain with a generated ID and creation timestamp.
//
// Description:
//
//	Convenience constructor for producers and tests. The engine does
//	not require chains to be built this way; any well-formed
//	ReasoningChain value is accepted.
//
// Inputs:
//
//	query - The original question or goal.
//	method - The reasoning method used.
//	steps - The ordered reasoning steps.
//
// Outputs:
//
//	*ReasoningChain - The constructed chain.
func New(query string, method ReasoningMethod, steps ...ReasoningStep) *ReasoningChain {
	return &ReasoningChain{
		ID:              uuid.NewString(),
		Query:           query,
		Steps:           steps,
		ReasoningMethod: method,
		CreatedAt:       time.Now(),
	}
}

// TotalEvidence returns the number of evidence citations across all
// steps.
func (c *ReasoningChain) TotalEvidence() int {
	total := 0
	for _, s := range c.Steps {
		total += len(s.Evidence)
	}
	return total
}

// TotalAssumptions returns the number of assumption statements across
// all steps.
func (c *ReasoningChain) TotalAssumptions() int {
	total := 0
	for _, s := range c.Steps {
		total += len(s.Assumptions)
	}
	return total
}

// StepsWithEvidence returns how many steps carry at least one evidence
// citation.
func (c *ReasoningChain) StepsWithEvidence() int {
	count := 0
	for _, s := range c.Steps {
		if len(s.Evidence) > 0 {
			count++
		}
	}
	return count
}
