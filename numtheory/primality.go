// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import "math/big"

// smallPrimes holds every prime <= 53: enough for both the trial-division
// pass (min(53, floor(sqrt(n)))) and every published Miller-Rabin witness
// set in the table below (the largest named bound is primes_to(47)). Using
// a fixed table here, rather than the growing Cache, avoids a circular
// dependency between Sieve (which needs a primality test to pick its
// trailing "one further prime") and ProbablyPrime.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

func smallPrimesUpTo(limit int64) []int64 {
	out := make([]int64, 0, len(smallPrimes))
	for _, p := range smallPrimes {
		if p > limit {
			break
		}
		out = append(out, p)
	}
	return out
}

// ProbablyPrime reports whether n passes trial division by small primes
// followed by a deterministic (for the ranges in the table below) or
// probabilistic Miller-Rabin test.
func ProbablyPrime(n *big.Int) bool {
	two := big.NewInt(2)
	if n.Cmp(two) < 0 {
		return false
	}

	// Trial division by primes <= min(53, floor(sqrt(n))).
	sqrtN := new(big.Int).Sqrt(n)
	upTo := int64(53)
	if sqrtN.IsInt64() && sqrtN.Int64() < upTo {
		upTo = sqrtN.Int64()
	}
	for _, p := range smallPrimesUpTo(upTo) {
		pb := big.NewInt(p)
		if n.Cmp(pb) == 0 {
			return true
		}
		if new(big.Int).Mod(n, pb).Sign() == 0 {
			return false
		}
	}
	if n.IsInt64() && n.Int64() <= 53*53 {
		// Small enough that trial division alone decided it.
		return true
	}

	return millerRabin(n, witnessesFor(n))
}

// witnessesFor returns the exact Miller-Rabin witness set needed for a
// deterministic result at n's magnitude, per the published sharp bounds.
// Two buckets (9,080,191 and 4,759,123,141) are defined by a specific named
// pair/triple of bases rather than "every prime up to X"; the rest are
// defined as "every prime up to X" and are expressed with smallPrimesUpTo.
func witnessesFor(n *big.Int) []int64 {
	bound := func(s string) *big.Int {
		b, _ := new(big.Int).SetString(s, 10)
		return b
	}
	switch {
	case n.Cmp(bound("1373653")) < 0:
		return smallPrimesUpTo(3)
	case n.Cmp(bound("9080191")) < 0:
		return []int64{31, 73}
	case n.Cmp(bound("4759123141")) < 0:
		return []int64{2, 7, 61}
	case n.Cmp(bound("2152302898747")) < 0:
		return smallPrimesUpTo(11)
	case n.Cmp(bound("3474749660383")) < 0:
		return smallPrimesUpTo(13)
	case n.Cmp(bound("341550071728321")) < 0:
		return smallPrimesUpTo(17)
	case n.Cmp(bound("3825123056546413051")) < 0:
		return smallPrimesUpTo(23)
	case n.Cmp(bound("3317044064679887385961981")) < 0:
		return smallPrimesUpTo(41)
	default:
		return smallPrimesUpTo(47)
	}
}

// millerRabin runs the Miller-Rabin test on n against every given witness
// base. n is assumed odd and > smallest witness.
func millerRabin(n *big.Int, witnesses []int64) bool {
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	for _, a := range witnesses {
		ab := big.NewInt(a)
		if ab.Cmp(n) >= 0 {
			continue
		}
		x := new(big.Int).Exp(ab, d, n)
		if x.Cmp(big.NewInt(1)) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		composite := true
		for i := 0; i < r-1; i++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// NextProbablyPrime returns the smallest odd m > n with ProbablyPrime(m).
// n <= 1 is handled by starting the search at 3.
func NextProbablyPrime(n *big.Int) *big.Int {
	if n.Cmp(big.NewInt(1)) <= 0 {
		return big.NewInt(3)
	}
	m := new(big.Int).Add(n, big.NewInt(1))
	if m.Bit(0) == 0 {
		m.Add(m, big.NewInt(1))
	}
	for !ProbablyPrime(m) {
		m.Add(m, big.NewInt(2))
	}
	return m
}

// nextProbablyPrimeSmall is Sieve's internal "one further prime" step. It is
// identical to NextProbablyPrime; the distinct name documents that callers
// inside Cache never need cache access to answer it (see smallPrimes above).
func nextProbablyPrimeSmall(n *big.Int) *big.Int {
	return NextProbablyPrime(n)
}
