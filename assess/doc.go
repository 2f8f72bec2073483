// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package assess produces calibrated multi-dimensional confidence
// analyses for reasoning chains.
//
// The Engine combines four independent quality dimensions:
//
//   - Step quality: textual and structural quality of each step
//   - Evidence quality: aggregate evidentiary support
//   - Coherence: internal consistency and logical flow
//   - Assumption certainty: risk carried by stated assumptions
//
// The combined score is clamped to [MinConfidence, MaxConfidence] so
// downstream gating always receives a bounded, actionable number. The
// remaining dimension scores are raw [0,1] diagnostics.
//
// Assessment never fails from the caller's perspective: malformed
// input and internal computation faults are caught at the Engine
// boundary, logged, and converted into a fixed safe-default analysis.
//
// All assessors are pure functions of their input chain and a shared
// immutable lexicon, so a single Engine is safe for concurrent use
// across many chains with no coordination.
package assess
