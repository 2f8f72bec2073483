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
	"github.com/AleutianAI/chainscore/chain"
	"github.com/AleutianAI/chainscore/lexicon"
)

const (
	// noAssumptionCertainty applies when a chain states no assumptions:
	// high but not perfect, since unstated assumptions may still exist.
	noAssumptionCertainty = 0.8

	assumptionBaseRisk = 0.3

	highRiskBonus    = 0.10
	lowRiskReduction = 0.10
	uncertaintyBonus = 0.15

	// Density penalty: chains leaning on more than two assumptions per
	// step pay for each additional assumption-per-step of density.
	densityThreshold   = 2.0
	densityPenaltyRate = 0.05
)

// AssumptionRiskAssessor scores how certain a chain can be given the
// assumptions it relies on. Higher output means fewer or safer
// assumptions.
//
// Thread Safety: Safe for concurrent use; holds only an immutable
// lexicon.
type AssumptionRiskAssessor struct {
	lex *lexicon.Lexicon
}

// NewAssumptionRiskAssessor creates an assumption risk assessor.
//
// Inputs:
//
//	lex - The keyword tables to score against. Nil uses the default
//	lexicon.
func NewAssumptionRiskAssessor(lex *lexicon.Lexicon) *AssumptionRiskAssessor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &AssumptionRiskAssessor{lex: lex}
}

// AssessChain scores assumption certainty across the whole chain.
//
// Description:
//
//	Each stated assumption gets a risk score from its wording; the
//	chain's certainty is one minus the mean risk. Chains that lean on
//	many assumptions per step pay an additional density penalty. A
//	chain with no assumptions at all returns 0.8. The result is a
//	[0,1] diagnostic.
//
// Outputs:
//
//	float64 - The assumption certainty in [0,1].
func (a *AssumptionRiskAssessor) AssessChain(c *chain.ReasoningChain) float64 {
	if c == nil || len(c.Steps) == 0 {
		return noAssumptionCertainty
	}

	var riskSum float64
	count := 0
	for _, step := range c.Steps {
		for _, assumption := range step.Assumptions {
			riskSum += a.scoreAssumption(assumption)
			count++
		}
	}
	if count == 0 {
		return noAssumptionCertainty
	}

	certainty := 1.0 - riskSum/float64(count)

	density := float64(count) / float64(len(c.Steps))
	if density > densityThreshold {
		certainty -= densityPenaltyRate * (density - densityThreshold)
	}

	return clampUnit(certainty)
}

// scoreAssumption applies the per-assumption risk heuristic.
func (a *AssumptionRiskAssessor) scoreAssumption(text string) float64 {
	risk := float64(assumptionBaseRisk)

	risk += highRiskBonus * float64(lexicon.CountMatches(text, a.lex.Assumption.HighRisk))
	risk -= lowRiskReduction * float64(lexicon.CountMatches(text, a.lex.Assumption.LowRisk))
	risk += uncertaintyBonus * float64(lexicon.CountMatches(text, a.lex.Assumption.Uncertainty))

	return clampUnit(risk)
}
