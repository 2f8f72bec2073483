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

// Per-evidence scoring increments.
const (
	evidenceBase = 0.5

	highQualityBonus   = 0.15
	mediumQualityBonus = 0.08
	lowQualityPenalty  = 0.10

	empiricalBonus = 0.10
	citationBonus  = 0.05

	evidenceLengthBonus      = 0.05
	evidenceLengthThreshold  = 50
	evidenceLengthThreshold2 = 100

	// distributionBonusCap rewards evidence spread across steps rather
	// than concentrated in one.
	distributionBonusCap = 0.1
)

// neutralEvidenceScore is returned when the chain carries no evidence
// at all: nothing to reward, nothing to penalize.
const neutralEvidenceScore = 0.5

// EvidenceQualityAssessor scores the aggregate evidentiary support of
// a chain.
//
// Thread Safety: Safe for concurrent use; holds only an immutable
// lexicon.
type EvidenceQualityAssessor struct {
	lex *lexicon.Lexicon
}

// NewEvidenceQualityAssessor creates an evidence quality assessor.
//
// Inputs:
//
//	lex - The keyword tables to score against. Nil uses the default
//	lexicon.
func NewEvidenceQualityAssessor(lex *lexicon.Lexicon) *EvidenceQualityAssessor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &EvidenceQualityAssessor{lex: lex}
}

// AssessChain scores evidentiary support across the whole chain.
//
// Description:
//
//	Averages the per-evidence heuristic score over every citation in
//	every step, then adds a distribution bonus proportional to the
//	fraction of steps that carry evidence. A chain with no evidence
//	anywhere returns the neutral 0.50. The result is a [0,1]
//	diagnostic, not clamped to the confidence range.
//
// Outputs:
//
//	float64 - The aggregate evidence score in [0,1].
func (a *EvidenceQualityAssessor) AssessChain(c *chain.ReasoningChain) float64 {
	if c == nil || len(c.Steps) == 0 {
		return neutralEvidenceScore
	}

	var sum float64
	count := 0
	for _, step := range c.Steps {
		for _, ev := range step.Evidence {
			sum += a.scoreEvidence(ev)
			count++
		}
	}
	if count == 0 {
		return neutralEvidenceScore
	}

	score := sum / float64(count)

	spread := float64(c.StepsWithEvidence()) / float64(len(c.Steps))
	score += math.Min(distributionBonusCap, spread*distributionBonusCap)

	return clampUnit(score)
}

// scoreEvidence applies the per-evidence heuristic to one citation.
func (a *EvidenceQualityAssessor) scoreEvidence(text string) float64 {
	score := float64(evidenceBase)

	score += highQualityBonus * float64(lexicon.CountMatches(text, a.lex.Evidence.High))
	score += mediumQualityBonus * float64(lexicon.CountMatches(text, a.lex.Evidence.Medium))
	score -= lowQualityPenalty * float64(lexicon.CountMatches(text, a.lex.Evidence.Low))

	if lexicon.ContainsAny(text, a.lex.Evidence.Empirical) {
		score += empiricalBonus
	}
	if lexicon.ContainsAny(text, a.lex.Evidence.Citation) {
		score += citationBonus
	}

	if len(text) > evidenceLengthThreshold {
		score += evidenceLengthBonus
	}
	if len(text) > evidenceLengthThreshold2 {
		score += evidenceLengthBonus
	}

	return clampUnit(score)
}
