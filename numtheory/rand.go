// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"crypto/rand"
	"math/big"
)

// cryptoRandIntn returns a uniform random int in [0, n) using a
// cryptographic RNG.
func cryptoRandIntn(n int) (int, error) {
	bi, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(bi.Int64()), nil
}

// CryptoRandBits returns a uniform random non-negative integer with exactly
// `bits` random bits (i.e. in [0, 2**bits)), using a cryptographic RNG.
func CryptoRandBits(bits int) (*big.Int, error) {
	if bits <= 0 {
		return big.NewInt(0), nil
	}
	return rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
}
