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

// Per-step scoring increments.
const (
	strongConnectorBonus   = 0.03
	moderateConnectorBonus = 0.02
	weakConnectorPenalty   = 0.02

	lengthBonus           = 0.02 // per threshold crossed
	lengthBonusThreshold  = 100
	lengthBonusThreshold2 = 200

	evidenceBonusPerItem = 0.02
	evidenceBonusCap     = 0.05

	assumptionAckBonus       = 0.02
	assumptionPenaltyPerItem = 0.01
	assumptionPenaltyCap     = 0.03
)

// Chain-level rollup bonuses.
const (
	stepCountBonusAt4 = 0.03
	stepCountBonusAt6 = 0.05

	// recencyWeightSlope makes later steps matter more:
	// weight = 1 + slope * step_number.
	recencyWeightSlope = 0.1
)

// methodBonus rewards more structured reasoning methods.
var methodBonus = map[chain.ReasoningMethod]float64{
	chain.MethodDeductive:   0.05,
	chain.MethodInductive:   0.03,
	chain.MethodAbductive:   0.02,
	chain.MethodComparative: 0.04,
	chain.MethodCausal:      0.04,
}

// StepQualityAssessor scores the textual and structural quality of
// reasoning steps.
//
// Thread Safety: Safe for concurrent use; holds only an immutable
// lexicon.
type StepQualityAssessor struct {
	lex *lexicon.Lexicon
}

// NewStepQualityAssessor creates a step quality assessor.
//
// Inputs:
//
//	lex - The keyword tables to score against. Nil uses the default
//	lexicon.
func NewStepQualityAssessor(lex *lexicon.Lexicon) *StepQualityAssessor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &StepQualityAssessor{lex: lex}
}

// AssessStep scores a single reasoning step.
//
// Description:
//
//	Starts from the minimum confidence and adjusts for reasoning
//	connector strength, text length, evidence count, and assumption
//	handling. When the step carries a positive self-reported
//	confidence, the heuristic score is blended with it (simple mean).
//	The result is clamped to [MinConfidence, MaxConfidence] because it
//	feeds the reasoning dimension directly.
//
// Outputs:
//
//	float64 - The step quality score.
func (a *StepQualityAssessor) AssessStep(step chain.ReasoningStep) float64 {
	score := float64(MinConfidence)

	score += strongConnectorBonus * float64(lexicon.CountMatches(step.Reasoning, a.lex.Reasoning.Strong))
	score += moderateConnectorBonus * float64(lexicon.CountMatches(step.Reasoning, a.lex.Reasoning.Moderate))
	score -= weakConnectorPenalty * float64(lexicon.CountMatches(step.Reasoning, a.lex.Reasoning.Weak))

	if len(step.Reasoning) > lengthBonusThreshold {
		score += lengthBonus
	}
	if len(step.Reasoning) > lengthBonusThreshold2 {
		score += lengthBonus
	}

	score += math.Min(evidenceBonusCap, evidenceBonusPerItem*float64(len(step.Evidence)))

	if len(step.Assumptions) > 0 {
		// Naming assumptions at all is a good sign; carrying many of
		// them is not.
		score += assumptionAckBonus
		score -= math.Min(assumptionPenaltyCap, assumptionPenaltyPerItem*float64(len(step.Assumptions)))
	}

	if step.Confidence > 0 {
		score = (score + step.Confidence) / 2
	}

	return clampConfidence(score)
}

// AssessChain rolls per-step scores up into the reasoning dimension.
//
// Description:
//
//	Computes a recency-weighted mean of the per-step scores (weight
//	1 + 0.1*step_number), then adds a method-specific bonus and a
//	step-count bonus. Only the largest applicable step-count bonus is
//	applied: a six-step chain gets +0.05, not +0.08. The result is
//	clamped to [MinConfidence, MaxConfidence].
//
// Outputs:
//
//	float64 - The chain-level reasoning confidence.
func (a *StepQualityAssessor) AssessChain(c *chain.ReasoningChain) float64 {
	if c == nil || len(c.Steps) == 0 {
		return MinConfidence
	}

	var weighted, weights float64
	for _, step := range c.Steps {
		w := 1.0 + recencyWeightSlope*float64(step.StepNumber)
		weighted += w * a.AssessStep(step)
		weights += w
	}
	score := weighted / weights

	score += methodBonus[c.ReasoningMethod]

	switch {
	case len(c.Steps) >= 6:
		score += stepCountBonusAt6
	case len(c.Steps) >= 4:
		score += stepCountBonusAt4
	}

	return clampConfidence(score)
}
