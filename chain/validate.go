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
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Validation errors for reasoning chains.
var (
	// ErrNilChain is returned when the chain pointer is nil.
	ErrNilChain = errors.New("chain is nil")

	// ErrNoSteps is returned when the chain has no steps.
	ErrNoSteps = errors.New("chain has no steps")

	// ErrStepOrder is returned when step numbers decrease.
	ErrStepOrder = errors.New("step numbers must be non-decreasing")

	// ErrBadConfidence is returned when a self-reported confidence is
	// not a finite number in [0,1].
	ErrBadConfidence = errors.New("step confidence must be a finite value in [0,1]")
)

// chainValidate is the shared validator instance for chain datatypes.
// Initialized in init() with custom validators.
var chainValidate *validator.Validate

func init() {
	chainValidate = validator.New()

	// Register custom validator for the reasoning method enum.
	_ = chainValidate.RegisterValidation("reasoning_method", validateReasoningMethod)
}

// validateReasoningMethod checks that the field holds a known
// ReasoningMethod value.
func validateReasoningMethod(fl validator.FieldLevel) bool {
	return ReasoningMethod(fl.Field().String()).Known()
}

// Validate checks that the chain is well-formed.
//
// Description:
//
//	Performs struct-tag validation plus the cross-field checks the
//	tags cannot express: non-decreasing step numbers and finite
//	self-reported confidences. The engine calls this at its boundary
//	and degrades to a safe default analysis when it fails; producers
//	can call it earlier to surface problems at construction time.
//
// Outputs:
//
//	error - Nil if the chain is valid, otherwise the first problem
//	found.
func (c *ReasoningChain) Validate() error {
	if c == nil {
		return ErrNilChain
	}
	if len(c.Steps) == 0 {
		return ErrNoSteps
	}

	// NaN fails every numeric comparison, so check explicitly before
	// struct-tag validation to report a clearer error.
	for i, s := range c.Steps {
		if math.IsNaN(s.Confidence) || math.IsInf(s.Confidence, 0) {
			return fmt.Errorf("%w: step %d", ErrBadConfidence, i+1)
		}
	}

	if err := chainValidate.Struct(c); err != nil {
		return fmt.Errorf("chain validation: %w", err)
	}

	prev := 0
	for i, s := range c.Steps {
		if s.StepNumber < prev {
			return fmt.Errorf("%w: step index %d has number %d after %d",
				ErrStepOrder, i, s.StepNumber, prev)
		}
		prev = s.StepNumber
	}

	return nil
}
