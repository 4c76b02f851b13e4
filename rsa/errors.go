// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package rsa

import "errors"

var (
	ErrTooFewPrimes      = errors.New("rsa: a key needs at least two distinct primes")
	ErrDuplicatePrime    = errors.New("rsa: primes must be distinct")
	ErrNoValidExponent   = errors.New("rsa: could not find an e coprime to phi")
	ErrMessageOutOfRange = errors.New("rsa: message must satisfy 0 <= m < n")
	ErrMessageTooLarge   = errors.New("rsa: message does not fit in the PKCS#1 data field")
	ErrBitLengthMismatch = errors.New("rsa: generated modulus does not have the requested bit length")
	ErrModulusTooSmall   = errors.New("rsa: modulus too small to hold the PKCS#1 block overhead")
)
