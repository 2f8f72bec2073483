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

func TestAssumptionRiskAssessor_AssessChain(t *testing.T) {
	a := NewAssumptionRiskAssessor(nil)

	t.Run("no assumptions defaults high", func(t *testing.T) {
		if got := a.AssessChain(nil); !almostEqual(got, 0.8) {
			t.Errorf("nil: got %f, want 0.8", got)
		}
		c := &chain.ReasoningChain{Steps: neutralSteps(3)}
		if got := a.AssessChain(c); !almostEqual(got, 0.8) {
			t.Errorf("no assumptions: got %f, want 0.8", got)
		}
	})

	t.Run("neutral assumption carries the base risk", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber:  1,
				Reasoning:   "The premise holds.",
				Assumptions: []string{"the workload is stable"},
			},
		}}
		if got := a.AssessChain(c); !almostEqual(got, 0.70) {
			t.Errorf("got %f, want 0.70", got)
		}
	})

	t.Run("low-risk wording cancels the base risk", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber:  1,
				Reasoning:   "The premise holds.",
				Assumptions: []string{"an established and proven standard applies"},
			},
		}}
		if got := a.AssessChain(c); !almostEqual(got, 1.0) {
			t.Errorf("got %f, want 1.0", got)
		}
	})

	t.Run("high-risk wording raises the risk", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber:  1,
				Reasoning:   "The premise holds.",
				Assumptions: []string{"we assume the load will likely grow"},
			},
		}}
		// 1 - (0.3 + 2*0.10)
		if got := a.AssessChain(c); !almostEqual(got, 0.50) {
			t.Errorf("got %f, want 0.50", got)
		}
	})

	t.Run("uncertainty wording is the heaviest signal", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber:  1,
				Reasoning:   "The premise holds.",
				Assumptions: []string{"the outcome is uncertain and depends on demand"},
			},
		}}
		// 1 - (0.3 + 2*0.15)
		if got := a.AssessChain(c); !almostEqual(got, 0.40) {
			t.Errorf("got %f, want 0.40", got)
		}
	})

	t.Run("density above two per step is penalized", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber: 1,
				Reasoning:  "The premise holds.",
				Assumptions: []string{
					"the workload is stable",
					"the hardware is homogeneous",
					"the clock drift is negligible",
				},
			},
		}}
		// Mean risk 0.3 gives 0.7; three assumptions over one step is a
		// density of 3, one over the threshold, so minus 0.05.
		if got := a.AssessChain(c); !almostEqual(got, 0.65) {
			t.Errorf("got %f, want 0.65", got)
		}
	})

	t.Run("per-assumption risk is clamped", func(t *testing.T) {
		c := &chain.ReasoningChain{Steps: []chain.ReasoningStep{
			{
				StepNumber:  1,
				Reasoning:   "The premise holds.",
				Assumptions: []string{"assume assume assume assume assume assume assume assume"},
			},
		}}
		if got := a.AssessChain(c); !almostEqual(got, 0.0) {
			t.Errorf("got %f, want 0.0", got)
		}
	})
}
