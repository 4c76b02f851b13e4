// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import "errors"

// Arithmetic domain errors. MultInverse deliberately has no sentinel: per
// spec it signals "no inverse" by returning 0, not by erroring.
var (
	ErrNegativeExponent  = errors.New("numtheory: exponent must be non-negative")
	ErrZeroModulus       = errors.New("numtheory: modulus must be >= 1")
	ErrExceedsCacheLimit = errors.New("numtheory: limit exceeds prime cache limit (PCL)")
)
