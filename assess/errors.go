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

import "errors"

// Internal fault kinds. These never cross the Engine boundary: Assess
// converts both into the safe-default analysis and logs the cause.
var (
	// ErrMalformedChain indicates the input chain failed validation.
	ErrMalformedChain = errors.New("malformed reasoning chain")

	// ErrComputationFault indicates scoring panicked or produced a
	// non-finite result.
	ErrComputationFault = errors.New("internal computation fault")
)
