// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package rsa

import (
	"fmt"
	"math/big"

	"github.com/rsalab/rsalab/numtheory"
)

// Key is an RSA key pair: n = Π primes, phi = Π (p_i - 1), e coprime to
// phi, d = e^-1 mod phi. Immutable after construction.
type Key struct {
	N      *big.Int
	E      *big.Int
	D      *big.Int
	Phi    *big.Int
	Primes []*big.Int
}

// String renders the key as the hex triple (n, e, d), matching the
// original demo driver's output format. There is no binary
// serialisation; this is for eyeballing during a demo run.
func (k *Key) String() string {
	return fmt.Sprintf("n=0x%x e=0x%x d=0x%x", k.N, k.E, k.D)
}

// defaultExponent picks the public exponent the original demo driver uses
// by default, based on the requested key size.
func defaultExponent(bits int) *big.Int {
	switch {
	case bits >= 14:
		return big.NewInt(0x1001)
	case bits >= 10:
		return big.NewInt(0x101)
	default:
		return big.NewInt(0x11)
	}
}

// CreateKeyFromPrimes builds a Key from caller-supplied primes and a
// starting exponent e. The smallest e' >= e coprime to phi(n) is found by
// incrementing e one at a time; d = (e')^-1 mod phi(n).
func CreateKeyFromPrimes(primes []*big.Int, e *big.Int) (*Key, error) {
	if len(primes) < 2 {
		return nil, ErrTooFewPrimes
	}
	for i := 0; i < len(primes); i++ {
		for j := i + 1; j < len(primes); j++ {
			if primes[i].Cmp(primes[j]) == 0 {
				return nil, ErrDuplicatePrime
			}
		}
	}

	n := big.NewInt(1)
	phi := big.NewInt(1)
	one := big.NewInt(1)
	for _, p := range primes {
		n.Mul(n, p)
		phi.Mul(phi, new(big.Int).Sub(p, one))
	}

	ee := new(big.Int).Set(e)
	var d *big.Int
	for attempts := 0; ; attempts++ {
		if attempts > 1_000_000 {
			return nil, ErrNoValidExponent
		}
		d = numtheory.MultInverse(ee, phi)
		if d.Sign() != 0 {
			break
		}
		ee.Add(ee, one)
	}

	key := &Key{N: n, E: ee, D: d, Phi: phi, Primes: append([]*big.Int(nil), primes...)}
	logger.Debugf("built key: bits=%d e=0x%x primes=%d", n.BitLen(), ee, len(primes))
	return key, nil
}

// RandomPrime returns an odd integer with exactly `bits` bits (the top and
// bottom bits forced set), advanced by 2 until it passes ProbablyPrime.
// bits <= 2 returns 2; bits <= 3 returns 3.
func RandomPrime(bits int) *big.Int {
	if bits <= 2 {
		return big.NewInt(2)
	}
	if bits <= 3 {
		return big.NewInt(3)
	}
	n, err := numtheory.CryptoRandBits(bits)
	if err != nil {
		panic(err) // crypto/rand failure is not recoverable by this core
	}
	n.SetBit(n, bits-1, 1)
	n.SetBit(n, 0, 1)
	for !numtheory.ProbablyPrime(n) {
		n.Add(n, big.NewInt(2))
	}
	return n
}

const createKeyBitsMaxAttempts = 64

// CreateKeyBits generates rCount distinct primes whose product has exactly
// `bits` bits and builds a Key from them. rCount <= 1 defaults to 2. e == nil
// picks the default exponent for the requested size.
//
// Each attempt draws a fresh set of primes sized off a budget split across
// the remaining factors; if the product doesn't land on the requested bit
// length exactly, the whole draw is discarded and retried, up to
// createKeyBitsMaxAttempts times. An over- or under-sized product is never
// patched after the fact; the primes are redrawn until n.BitLen() == bits.
func CreateKeyBits(bits int, rCount int, e *big.Int) (*Key, error) {
	if rCount < 2 {
		rCount = 2
	}
	if e == nil {
		e = defaultExponent(bits)
	}

	for attempt := 0; attempt < createKeyBitsMaxAttempts; attempt++ {
		primes := make([]*big.Int, 0, rCount)
		n := big.NewInt(1)

		for i := 0; i < rCount; i++ {
			denom := rCount - i
			pBits := (bits - n.BitLen()) / denom
			if pBits < 2 {
				pBits = 2
			}
			p := RandomPrime(pBits)
			for containsPrime(primes, p) {
				p = numtheory.NextProbablyPrime(p)
			}
			primes = append(primes, p)
			n.Mul(n, p)
		}

		if n.BitLen() == bits {
			return CreateKeyFromPrimes(primes, e)
		}
		logger.Debugf("create key bits: attempt %d produced %d bits (want %d), redrawing", attempt, n.BitLen(), bits)
	}
	return nil, ErrBitLengthMismatch
}

func containsPrime(primes []*big.Int, p *big.Int) bool {
	for _, q := range primes {
		if q.Cmp(p) == 0 {
			return true
		}
	}
	return false
}
