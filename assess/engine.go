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
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/chainscore/chain"
	"github.com/AleutianAI/chainscore/lexicon"
)

// Engine is the public entry point for confidence assessment.
//
// Description:
//
//	Combines the four dimension assessors with fixed weights:
//
//	  reasoning .35, evidence .25, coherence .20, assumption .20
//
//	Overall and reasoning confidence are clamped to
//	[MinConfidence, MaxConfidence]; the remaining dimensions stay in
//	their natural [0,1] range as diagnostics.
//
// Thread Safety: Engine is safe for concurrent use. It holds no
// mutable state; every assessment is a pure function of its chain.
type Engine struct {
	step       *StepQualityAssessor
	evidence   *EvidenceQualityAssessor
	coherence  *CoherenceAssessor
	assumption *AssumptionRiskAssessor

	logger *slog.Logger
}

// Config configures the Engine.
type Config struct {
	// Lexicon supplies the keyword tables for all assessors.
	// Nil uses lexicon.Default().
	Lexicon *lexicon.Lexicon

	// Logger for diagnostics. If nil, uses slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Lexicon: lexicon.Default(),
		Logger:  nil,
	}
}

// NewEngine creates an engine with the default configuration.
//
// Outputs:
//
//	*Engine - The engine instance.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an engine with the given configuration.
//
// Inputs:
//
//	config - The configuration. If nil, uses default.
//
// Outputs:
//
//	*Engine - The engine instance.
func NewEngineWithConfig(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}

	lex := config.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		step:       NewStepQualityAssessor(lex),
		evidence:   NewEvidenceQualityAssessor(lex),
		coherence:  NewCoherenceAssessor(lex),
		assumption: NewAssumptionRiskAssessor(lex),
		logger:     logger,
	}
}

// Assess produces a confidence analysis for the chain.
//
// Description:
//
//	Runs the four dimension assessors, combines their scores, and
//	packages the result. Assess never fails: malformed input and
//	internal computation faults are logged and converted into the
//	fixed safe-default analysis, so a gating consumer always receives
//	a bounded number.
//
// Inputs:
//
//	ctx - Context for tracing and metric recording. Assessment itself
//	is bounded and in-memory; ctx is not used for cancellation.
//	c - The chain to assess. Read-only; never mutated.
//
// Outputs:
//
//	*ConfidenceAnalysis - The analysis. Never nil.
//
// Thread Safety: Safe for concurrent use.
func (e *Engine) Assess(ctx context.Context, c *chain.ReasoningChain) *ConfidenceAnalysis {
	start := time.Now()

	chainID := ""
	steps := 0
	method := "unknown"
	if c != nil {
		chainID = c.ID
		steps = len(c.Steps)
		method = string(c.ReasoningMethod)
	}

	ctx, span := startAssessSpan(ctx, chainID, steps)
	defer span.End()

	analysis, err := e.assess(c)
	if err != nil {
		e.logger.Warn("assessment degraded to safe default",
			slog.String("chain_id", chainID),
			slog.String("error", err.Error()),
		)
		analysis = SafeDefault(chainID)
	}

	recordAssessment(ctx, method, analysis.Degraded, time.Since(start))
	recordScores(ctx, analysis)
	setAssessSpanResult(span, analysis)

	return analysis
}

// assess runs the scoring pipeline and reports faults as errors.
//
// The public Assess converts any error into the safe default; keeping
// the fallible path separate makes the fault taxonomy testable.
func (e *Engine) assess(c *chain.ReasoningChain) (analysis *ConfidenceAnalysis, err error) {
	// Scoring is plain arithmetic over validated input, so a panic here
	// means a genuine bug. Contain it at the boundary.
	defer func() {
		if r := recover(); r != nil {
			analysis = nil
			err = fmt.Errorf("%w: panic: %v", ErrComputationFault, r)
		}
	}()

	if vErr := c.Validate(); vErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedChain, vErr)
	}

	reasoning := e.step.AssessChain(c)
	evidence := e.evidence.AssessChain(c)
	coherence := e.coherence.AssessChain(c)
	certainty := e.assumption.AssessChain(c)

	overall := reasoning*weightReasoning +
		evidence*weightEvidence +
		coherence*weightCoherence +
		certainty*weightAssumption

	for _, v := range []float64{reasoning, evidence, coherence, certainty, overall} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite dimension score", ErrComputationFault)
		}
	}

	overall = clampConfidence(overall)

	return &ConfidenceAnalysis{
		AnalysisID:          uuid.NewString(),
		ChainID:             c.ID,
		Overall:             overall,
		ReasoningConfidence: clampConfidence(reasoning),
		EvidenceConfidence:  clampUnit(evidence),
		SourceReliability:   math.Min(1.0, evidence*1.1),
		AssumptionCertainty: clampUnit(certainty),
		ReasoningCoherence:  clampUnit(coherence),
		Level:               LevelFor(overall),
		AnalyzedAt:          time.Now(),
	}, nil
}
