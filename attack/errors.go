// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package attack

import "errors"

var (
	ErrNeedsTwoPrimes   = errors.New("attack: weak-key attack requires a two-prime key")
	ErrOracleNeverFired = errors.New("attack: oracle never returned a conforming answer")
)
