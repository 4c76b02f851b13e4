// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package attack

import (
	"math/big"
	"sort"

	"github.com/rsalab/rsalab/rsa"
)

// interval is a closed integer interval [A, B].
type interval struct {
	A, B *big.Int
}

// PKCS1Result is the outcome of a successful AttackPKCS1 run.
type PKCS1Result struct {
	Found       *big.Int
	OracleCalls int
	Rounds      int
}

// AttackPKCS1 recovers the plaintext m such that c = m^e mod n, using only
// the decrypt_pkcs1 oracle's conforming/non-conforming signal. This is the
// classic Bleichenbacher adaptive-chosen-ciphertext attack.
func AttackPKCS1(key *rsa.Key, c *big.Int) (*PKCS1Result, error) {
	_, _, cmdOffset := key.BlockParams()
	n := key.N
	e := key.E

	two := big.NewInt(2)
	three := big.NewInt(3)
	one := big.NewInt(1)

	B := new(big.Int).Lsh(one, uint(cmdOffset))
	lo := new(big.Int).Mul(two, B)
	hi := new(big.Int).Sub(new(big.Int).Mul(three, B), one)

	M := []interval{{A: lo, B: hi}}
	s := []*big.Int{one}

	oracleCalls := 0
	oracle := func(ci *big.Int) bool {
		oracleCalls++
		return key.DecryptPKCS1(ci).Sign() != 0
	}

	for round := 1; ; round++ {
		if len(M) == 1 && M[0].A.Cmp(M[0].B) == 0 {
			logger.Debugf("pkcs1 attack converged after %d rounds, %d oracle calls", round-1, oracleCalls)
			return &PKCS1Result{Found: M[0].A, OracleCalls: oracleCalls, Rounds: round - 1}, nil
		}

		si, err := nextMultiplier(M, s, n)
		if err != nil {
			return nil, err
		}
		for {
			ci := new(big.Int).Exp(si, e, n)
			ci.Mul(ci, c)
			ci.Mod(ci, n)
			if oracle(ci) {
				break
			}
			si.Add(si, one)
		}
		s = append(s, new(big.Int).Set(si))

		M = tighten(M, si, n, B)
		logger.Debugf("round %d: si=%s intervals=%d", round, si.String(), len(M))
	}
}

// nextMultiplier proposes the next s_i per spec: 11*n/span, bumped forward
// if it would not exceed the previous multiplier.
func nextMultiplier(M []interval, s []*big.Int, n *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(M[len(M)-1].B, M[0].A)
	if span.Sign() == 0 {
		return nil, ErrOracleNeverFired
	}
	si := new(big.Int).Mul(big.NewInt(11), n)
	si.Div(si, span)

	prev := s[len(s)-1]
	if si.Cmp(prev) <= 0 {
		si = new(big.Int).Mul(prev, big.NewInt(53))
		si.Div(si, big.NewInt(47))
		si.Add(si, big.NewInt(1))
	}
	return si, nil
}

// tighten narrows M given that c*si^e mod n decrypts to a conforming
// message: every (a, b) in M is intersected against the set of m with
// 2B <= m*si - r*n < 3B for some integer r.
func tighten(M []interval, si, n, B *big.Int) []interval {
	two := big.NewInt(2)
	three := big.NewInt(3)
	one := big.NewInt(1)

	var next []interval
	for _, iv := range M {
		num := new(big.Int).Mul(iv.A, si)
		num.Sub(num, new(big.Int).Mul(three, B))
		num.Add(num, one)
		r := ceilDiv(num, n)

		for {
			rn := new(big.Int).Mul(r, n)

			lowNum := new(big.Int).Add(new(big.Int).Mul(two, B), rn)
			mMin := ceilDiv(lowNum, si)
			if mMin.Cmp(iv.A) < 0 {
				mMin = new(big.Int).Set(iv.A)
			}
			if mMin.Cmp(iv.B) > 0 {
				break
			}

			highNum := new(big.Int).Add(new(big.Int).Mul(three, B), rn)
			highNum.Sub(highNum, one)
			mMax := new(big.Int).Div(highNum, si)
			if mMax.Cmp(iv.B) > 0 {
				mMax = new(big.Int).Set(iv.B)
			}

			if mMin.Cmp(mMax) <= 0 {
				next = append(next, interval{A: mMin, B: mMax})
			}
			r = new(big.Int).Add(r, one)
		}
	}
	return mergeIntervals(next)
}

func mergeIntervals(in []interval) []interval {
	if len(in) == 0 {
		return in
	}
	sort.Slice(in, func(i, j int) bool { return in[i].A.Cmp(in[j].A) < 0 })

	out := []interval{in[0]}
	one := big.NewInt(1)
	for _, iv := range in[1:] {
		last := &out[len(out)-1]
		if new(big.Int).Add(last.B, one).Cmp(iv.A) >= 0 {
			if iv.B.Cmp(last.B) > 0 {
				last.B = iv.B
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// ceilDiv returns ceil(a/b) for b > 0, correct for any sign of a (big.Int's
// Div implements Euclidean/floor division when the divisor is positive).
func ceilDiv(a, b *big.Int) *big.Int {
	num := new(big.Int).Add(a, new(big.Int).Sub(b, big.NewInt(1)))
	return new(big.Int).Div(num, b)
}
