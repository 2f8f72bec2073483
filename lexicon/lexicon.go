// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package lexicon provides the classified keyword tables used by the
// confidence assessors.
//
// Each assessor consumes a slice of the Lexicon rather than hard-coded
// globals, so tests can substitute a controlled vocabulary and future
// deployments can tune the tables without touching scoring code.
// All matching is case-insensitive substring matching over free text.
package lexicon

import "strings"

// ReasoningIndicators classifies reasoning-connector keywords by the
// strength of the logical commitment they signal.
type ReasoningIndicators struct {
	// Strong words signal a firm logical step ("therefore", "proves").
	Strong []string

	// Moderate words signal a supported but softer step ("suggests").
	Moderate []string

	// Weak words signal hedging or speculation ("maybe", "possibly").
	Weak []string
}

// EvidenceIndicators classifies evidence-quality keywords.
type EvidenceIndicators struct {
	// High words mark rigorous, externally checked evidence.
	High []string

	// Medium words mark evidence with some process behind it.
	Medium []string

	// Low words mark unreliable or unverified evidence.
	Low []string

	// Empirical words mark evidence grounded in data or research.
	Empirical []string

	// Citation words mark evidence that points at a source.
	Citation []string
}

// AssumptionIndicators classifies assumption-risk keywords.
type AssumptionIndicators struct {
	// HighRisk words mark speculative assumptions ("assume", "estimate").
	HighRisk []string

	// LowRisk words mark assumptions resting on settled ground.
	LowRisk []string

	// Uncertainty words mark open unknowns ("uncertain", "depends").
	Uncertainty []string
}

// ContradictionPair is a pair of antonyms whose co-occurrence inside a
// single reasoning step suggests internal inconsistency.
type ContradictionPair [2]string

// BothPresent reports whether both members of the pair occur in text.
//
// Matching is case-insensitive substring matching, consistent with the
// rest of the lexicon.
func (p ContradictionPair) BothPresent(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, strings.ToLower(p[0])) &&
		strings.Contains(lower, strings.ToLower(p[1]))
}

// CoherenceIndicators holds the vocabulary used by the coherence
// assessor: logical-flow connectors and contradiction pairs.
type CoherenceIndicators struct {
	// Connectors are logical-progression words expected from the second
	// step onward ("therefore", "building on").
	Connectors []string

	// Contradictions are antonym pairs penalized when both members
	// appear in the same step.
	Contradictions []ContradictionPair
}

// Lexicon bundles all classified keyword tables consumed by the
// assessors.
//
// A Lexicon is immutable by convention: construct it once and share it.
// The assessors never modify it, so a single instance is safe for
// concurrent use.
type Lexicon struct {
	Reasoning  ReasoningIndicators
	Evidence   EvidenceIndicators
	Assumption AssumptionIndicators
	Coherence  CoherenceIndicators
}

// Default returns the canonical keyword tables.
//
// Outputs:
//
//	*Lexicon - The default vocabulary used in production scoring.
func Default() *Lexicon {
	return &Lexicon{
		Reasoning: ReasoningIndicators{
			Strong: []string{
				"therefore", "consequently", "proves", "demonstrates",
				"establishes", "confirms", "necessarily", "it follows",
			},
			Moderate: []string{
				"suggests", "indicates", "implies", "supports the",
				"points to", "consistent with",
			},
			Weak: []string{
				"maybe", "perhaps", "possibly", "might", "could be",
				"unclear", "speculate",
			},
		},
		Evidence: EvidenceIndicators{
			High: []string{
				"peer-reviewed", "verified", "measured", "replicated",
				"audited",
			},
			Medium: []string{
				"reported", "analyzed", "observed", "documented",
			},
			Low: []string{
				"alleged", "rumored", "anecdotal", "unverified",
				"hearsay",
			},
			Empirical: []string{"study", "research", "data", "statistics"},
			Citation:  []string{"citation", "reference", "source"},
		},
		Assumption: AssumptionIndicators{
			HighRisk: []string{
				"assume", "likely", "estimate", "probably", "expect",
			},
			LowRisk: []string{
				"established", "verified", "standard", "proven",
				"well-known",
			},
			Uncertainty: []string{
				"uncertain", "unknown", "depends", "unpredictable",
			},
		},
		Coherence: CoherenceIndicators{
			Connectors: []string{
				"therefore", "thus", "consequently", "hence",
				"building on", "following from", "as a result",
				"it follows",
			},
			Contradictions: []ContradictionPair{
				{"positive", "negative"},
				{"increase", "decrease"},
				{"support", "oppose"},
				{"always", "never"},
				{"improve", "worsen"},
			},
		},
	}
}

// CountMatches returns the total number of case-insensitive substring
// occurrences of the given words in text.
//
// Inputs:
//
//	text - The free text to scan.
//	words - The keyword table to count against.
//
// Outputs:
//
//	int - Total occurrences across all words (a word appearing twice
//	counts twice).
func CountMatches(text string, words []string) int {
	if text == "" || len(words) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	total := 0
	for _, w := range words {
		total += strings.Count(lower, strings.ToLower(w))
	}
	return total
}

// ContainsAny reports whether text contains at least one of the given
// words, case-insensitively.
func ContainsAny(text string, words []string) bool {
	if text == "" {
		return false
	}

	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}
