// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package chain

import (
	"errors"
	"math"
	"testing"
)

func validChain() *ReasoningChain {
	return New("does the cache invalidate correctly", MethodDeductive,
		ReasoningStep{
			StepNumber: 1,
			Reasoning:  "The cache key includes the schema version.",
			Confidence: 0.8,
			Evidence:   []string{"verified in the integration test logs"},
		},
		ReasoningStep{
			StepNumber:  2,
			Reasoning:   "Therefore stale entries cannot survive a schema bump.",
			Confidence:  0.85,
			Assumptions: []string{"schema version is bumped on every migration"},
		},
	)
}

func TestReasoningMethod_Known(t *testing.T) {
	known := []ReasoningMethod{
		MethodDeductive, MethodInductive, MethodAbductive,
		MethodComparative, MethodCausal,
	}
	for _, m := range known {
		if !m.Known() {
			t.Errorf("method %q should be known", m)
		}
	}

	if ReasoningMethod("astrological").Known() {
		t.Error("unknown method accepted")
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid chain passes", func(t *testing.T) {
		if err := validChain().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("nil chain", func(t *testing.T) {
		var c *ReasoningChain
		if err := c.Validate(); !errors.Is(err, ErrNilChain) {
			t.Errorf("expected ErrNilChain, got %v", err)
		}
	})

	t.Run("no steps", func(t *testing.T) {
		c := New("q", MethodDeductive)
		if err := c.Validate(); !errors.Is(err, ErrNoSteps) {
			t.Errorf("expected ErrNoSteps, got %v", err)
		}
	})

	t.Run("NaN confidence", func(t *testing.T) {
		c := validChain()
		c.Steps[0].Confidence = math.NaN()
		if err := c.Validate(); !errors.Is(err, ErrBadConfidence) {
			t.Errorf("expected ErrBadConfidence, got %v", err)
		}
	})

	t.Run("infinite confidence", func(t *testing.T) {
		c := validChain()
		c.Steps[1].Confidence = math.Inf(1)
		if err := c.Validate(); !errors.Is(err, ErrBadConfidence) {
			t.Errorf("expected ErrBadConfidence, got %v", err)
		}
	})

	t.Run("confidence above one", func(t *testing.T) {
		c := validChain()
		c.Steps[0].Confidence = 1.5
		if err := c.Validate(); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		c := validChain()
		c.ReasoningMethod = "astrological"
		if err := c.Validate(); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("empty reasoning text", func(t *testing.T) {
		c := validChain()
		c.Steps[0].Reasoning = ""
		if err := c.Validate(); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("decreasing step numbers", func(t *testing.T) {
		c := validChain()
		c.Steps[0].StepNumber = 3
		if err := c.Validate(); !errors.Is(err, ErrStepOrder) {
			t.Errorf("expected ErrStepOrder, got %v", err)
		}
	})

	t.Run("repeated step numbers are allowed", func(t *testing.T) {
		// The enforced invariant is non-decreasing, not strictly
		// increasing.
		c := validChain()
		c.Steps[1].StepNumber = 1
		if err := c.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestChainHelpers(t *testing.T) {
	c := validChain()

	if got := c.TotalEvidence(); got != 1 {
		t.Errorf("TotalEvidence = %d, want 1", got)
	}
	if got := c.TotalAssumptions(); got != 1 {
		t.Errorf("TotalAssumptions = %d, want 1", got)
	}
	if got := c.StepsWithEvidence(); got != 1 {
		t.Errorf("StepsWithEvidence = %d, want 1", got)
	}
}

func TestNew(t *testing.T) {
	c := New("q", MethodCausal, ReasoningStep{StepNumber: 1, Reasoning: "r"})

	if c.ID == "" {
		t.Error("expected generated ID")
	}
	if c.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}
	if c.ReasoningMethod != MethodCausal {
		t.Errorf("method = %q, want causal", c.ReasoningMethod)
	}
}
