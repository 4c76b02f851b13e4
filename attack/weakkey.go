// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package attack

import (
	"math/big"

	"github.com/rsalab/rsalab/numtheory"
	"github.com/rsalab/rsalab/rsa"
)

// weakKeyFactorLimit bounds the trial-division phase used to find the
// shared small factors of p-1 and q-1, per spec.
var weakKeyFactorLimit = big.NewInt(50000)

// weakKeyAbortThreshold: AttackWeakKey aborts enumeration (but still
// reports A) once the count of equivalent private exponents would exceed
// this.
const weakKeyAbortThreshold = 1000

// WeakKeyResult reports the shared-factor product A and, unless the
// enumeration was aborted, every equivalent private exponent d_k.
type WeakKeyResult struct {
	A       *big.Int
	Ds      []*big.Int
	Aborted bool
}

// AttackWeakKey exploits a key whose p-1 and q-1 share small prime
// factors: it computes A, the product of the shared prime powers, and
// enumerates the A equivalent private exponents d_k = (d + k*phi/A) mod phi
// that all decrypt correctly.
func AttackWeakKey(cache *numtheory.Cache, key *rsa.Key) (*WeakKeyResult, error) {
	if len(key.Primes) != 2 {
		return nil, ErrNeedsTwoPrimes
	}
	one := big.NewInt(1)
	p, q := key.Primes[0], key.Primes[1]
	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)

	fp := cache.Factor(pMinus1, weakKeyFactorLimit)
	fq := cache.Factor(qMinus1, weakKeyFactorLimit)
	shared := intersectFactors(fp, fq)

	A := big.NewInt(1)
	for _, f := range shared {
		pw, err := numtheory.Power(f.Prime, big.NewInt(int64(f.Exp)))
		if err != nil {
			return nil, err
		}
		A.Mul(A, pw)
	}

	if A.Cmp(big.NewInt(weakKeyAbortThreshold)) > 0 {
		logger.Warnf("weak-key attack aborted: A=%s exceeds %d", A, weakKeyAbortThreshold)
		return &WeakKeyResult{A: A, Aborted: true}, nil
	}

	phiOverA := new(big.Int).Div(key.Phi, A)
	aInt := A.Int64()
	ds := make([]*big.Int, 0, aInt)
	for k := int64(0); k < aInt; k++ {
		dk := new(big.Int).Mul(big.NewInt(k), phiOverA)
		dk.Add(dk, key.D)
		dk.Mod(dk, key.Phi)
		ds = append(ds, dk)
	}
	logger.Debugf("weak-key attack: A=%s, %d equivalent exponents", A, len(ds))
	return &WeakKeyResult{A: A, Ds: ds}, nil
}

// intersectFactors returns, for every prime common to both factorisations,
// the (prime, min(exponents)) pair.
func intersectFactors(a, b []numtheory.FactorTerm) []numtheory.FactorTerm {
	var out []numtheory.FactorTerm
	for _, fa := range a {
		for _, fb := range b {
			if fa.Prime.Cmp(fb.Prime) != 0 {
				continue
			}
			exp := fa.Exp
			if fb.Exp < exp {
				exp = fb.Exp
			}
			out = append(out, numtheory.FactorTerm{Exp: exp, Prime: fa.Prime})
			break
		}
	}
	return out
}

// CreateWeakPrime builds a prime p = 1 + Π(small random primes drawn from
// [2, maxPrimeFactor]) where the product has at least `bits` bits, retrying
// until the result is itself prime. This manufactures keys vulnerable to
// AttackWeakKey for demonstration purposes.
func CreateWeakPrime(cache *numtheory.Cache, bits int, maxPrimeFactor *big.Int) (*big.Int, error) {
	for {
		product := big.NewInt(1)
		for product.BitLen() < bits {
			r, err := cache.RandomPrimeTo(maxPrimeFactor)
			if err != nil {
				return nil, err
			}
			product.Mul(product, r)
		}
		candidate := new(big.Int).Add(product, big.NewInt(1))
		if numtheory.ProbablyPrime(candidate) {
			return candidate, nil
		}
	}
}
