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
	"math"

	"github.com/AleutianAI/chainscore/chain"
	"github.com/AleutianAI/chainscore/lexicon"
)

const (
	// singleStepCoherence: one step cannot contradict itself across
	// steps, so it is coherent by definition.
	singleStepCoherence = 0.8

	// coherenceFloor bounds how far confidence spread alone can drag
	// the base score down.
	coherenceFloor = 0.5

	progressionBonus     = 0.02
	contradictionPenalty = 0.01
)

// CoherenceAssessor measures the internal consistency and logical flow
// of a chain.
//
// Thread Safety: Safe for concurrent use; holds only an immutable
// lexicon.
type CoherenceAssessor struct {
	lex *lexicon.Lexicon
}

// NewCoherenceAssessor creates a coherence assessor.
//
// Inputs:
//
//	lex - The keyword tables to score against. Nil uses the default
//	lexicon.
func NewCoherenceAssessor(lex *lexicon.Lexicon) *CoherenceAssessor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &CoherenceAssessor{lex: lex}
}

// AssessChain scores the chain's coherence.
//
// Description:
//
//	The base score derives from the population standard deviation of
//	the steps' self-reported confidences: low spread means the
//	producer's certainty was stable across the argument. Each step
//	from the second onward that opens with a logical connector earns a
//	progression bonus; each step containing both members of a
//	contradiction pair pays a penalty. The result is a [0,1]
//	diagnostic.
//
// Outputs:
//
//	float64 - The coherence score in [0,1].
func (a *CoherenceAssessor) AssessChain(c *chain.ReasoningChain) float64 {
	if c == nil || len(c.Steps) == 0 {
		return singleStepCoherence
	}
	if len(c.Steps) == 1 {
		return singleStepCoherence
	}

	score := math.Max(coherenceFloor, 1.0-confidenceStdDev(c.Steps))

	for _, step := range c.Steps[1:] {
		if lexicon.ContainsAny(step.Reasoning, a.lex.Coherence.Connectors) {
			score += progressionBonus
		}
	}

	for _, step := range c.Steps {
		for _, pair := range a.lex.Coherence.Contradictions {
			if pair.BothPresent(step.Reasoning) {
				score -= contradictionPenalty
			}
		}
	}

	return clampUnit(score)
}

// confidenceStdDev computes the population standard deviation of the
// steps' self-reported confidences.
func confidenceStdDev(steps []chain.ReasoningStep) float64 {
	n := float64(len(steps))

	var mean float64
	for _, s := range steps {
		mean += s.Confidence
	}
	mean /= n

	var variance float64
	for _, s := range steps {
		d := s.Confidence - mean
		variance += d * d
	}
	variance /= n

	return math.Sqrt(variance)
}
