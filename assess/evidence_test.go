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
	"testing"

	"github.com/AleutianAI/chainscore/chain"
)

func TestEvidenceQualityAssessor_AssessChain(t *testing.T) {
	a := NewEvidenceQualityAssessor(nil)

	t.Run("no evidence anywhere is neutral", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: neutralSteps(3)}
		if got := a.AssessChain(c); !almostEqual(got, 0.50) {
			t.Errorf("got %f, want 0.50", got)
		}
	})

	t.Run("high quality keywords raise the score", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber: 1,
				Reasoning:  "The premise holds.",
				Evidence:   []string{"a peer-reviewed and verified measurement"},
			},
		}}
		// 0.5 + 2*0.15, plus the full distribution bonus for a single
		// fully covered step.
		if got := a.AssessChain(c); !almostEqual(got, 0.90) {
			t.Errorf("got %f, want 0.90", got)
		}
	})

	t.Run("low quality keywords lower the score", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber: 1,
				Reasoning:  "The premise holds.",
				Evidence:   []string{"alleged and rumored hearsay"},
			},
		}}
		// 0.5 - 3*0.10 + distribution bonus 0.1
		if got := a.AssessChain(c); !almostEqual(got, 0.30) {
			t.Errorf("got %f, want 0.30", got)
		}
	})

	t.Run("empirical and citation markers add bonuses", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber: 1,
				Reasoning:  "The premise holds.",
				Evidence:   []string{"the data is in the cited reference"},
			},
		}}
		// 0.5 + 0.10 + 0.05 + distribution bonus 0.1
		if got := a.AssessChain(c); !almostEqual(got, 0.75) {
			t.Errorf("got %f, want 0.75", got)
		}
	})

	t.Run("spread evidence beats concentrated evidence", func(t *testing.T) {
		ev := "preliminary figures from the pilot"

		concentrated := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{StepNumber: 1, Reasoning: "The premise holds.", Evidence: []string{ev}},
			{StepNumber: 2, Reasoning: "The premise holds."},
		}}
		spread := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{StepNumber: 1, Reasoning: "The premise holds.", Evidence: []string{ev}},
			{StepNumber: 2, Reasoning: "The premise holds.", Evidence: []string{ev}},
		}}

		gotConcentrated := a.AssessChain(concentrated)
		gotSpread := a.AssessChain(spread)

		if !almostEqual(gotConcentrated, 0.55) {
			t.Errorf("concentrated: got %f, want 0.55", gotConcentrated)
		}
		if !almostEqual(gotSpread, 0.60) {
			t.Errorf("spread: got %f, want 0.60", gotSpread)
		}
	})

	t.Run("monotonicity: adding strong evidence strictly increases the score", func(t *testing.T) {
		base := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{StepNumber: 1, Reasoning: "The premise holds.", Evidence: []string{"preliminary figures"}},
		}}
		enriched := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{StepNumber: 1, Reasoning: "The premise holds.", Evidence: []string{
				"preliminary figures",
				"a peer-reviewed and independently verified measurement study",
			}},
		}}

		if a.AssessChain(enriched) <= a.AssessChain(base) {
			t.Error("expected strictly higher evidence confidence after adding strong evidence")
		}
	})

	t.Run("score is clamped to one", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber: 1,
				Reasoning:  "The premise holds.",
				Evidence:   []string{"peer-reviewed verified measured replicated audited study citation"},
			},
		}}
		if got := a.AssessChain(c); !almostEqual(got, 1.0) {
			t.Errorf("got %f, want 1.0", got)
		}
	})
}
