// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import "math/big"

// FactorTerm is one (exponent, prime) pair of a factorisation.
type FactorTerm struct {
	Exp   int
	Prime *big.Int
}

// Factor decomposes n into its prime factors by trial division against the
// prime cache, extending it lazily as needed, up to floor(sqrt(n)). When
// upto is non-nil and positive, the trial phase additionally stops once the
// candidate prime reaches upto, and the remaining cofactor (which may then
// be composite) is appended as the final term.
func (c *Cache) Factor(n *big.Int, upto *big.Int) []FactorTerm {
	n = new(big.Int).Set(n)
	var terms []FactorTerm

	for {
		if n.Cmp(big.NewInt(1)) <= 0 {
			return terms
		}
		if ProbablyPrime(n) {
			terms = append(terms, FactorTerm{Exp: 1, Prime: new(big.Int).Set(n)})
			return terms
		}

		limit := new(big.Int).Sqrt(n)
		it := c.PrimesTo(limit)
		foundFactor := false
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			if upto != nil && upto.Sign() > 0 && p.Cmp(upto) >= 0 {
				terms = append(terms, FactorTerm{Exp: 1, Prime: new(big.Int).Set(n)})
				return terms
			}
			if new(big.Int).Mod(n, p).Sign() != 0 {
				continue
			}
			cnt := 0
			for new(big.Int).Mod(n, p).Sign() == 0 {
				n.Div(n, p)
				cnt++
			}
			terms = append(terms, FactorTerm{Exp: cnt, Prime: new(big.Int).Set(p)})
			foundFactor = true
			break
		}
		if !foundFactor {
			terms = append(terms, FactorTerm{Exp: 1, Prime: new(big.Int).Set(n)})
			return terms
		}
	}
}

// Divisors enumerates all positive divisors of n, via cartesian expansion
// over the prime-power basis of its factorisation. n = 1 yields [1].
func (c *Cache) Divisors(n *big.Int) []*big.Int {
	factors := c.Factor(n, nil)
	divs := []*big.Int{big.NewInt(1)}
	for _, f := range factors {
		next := make([]*big.Int, 0, len(divs)*(f.Exp+1))
		for _, d := range divs {
			acc := new(big.Int).Set(d)
			for e := 0; e <= f.Exp; e++ {
				next = append(next, new(big.Int).Set(acc))
				acc.Mul(acc, f.Prime)
			}
		}
		divs = next
	}
	return divs
}

// ProperDivisors returns every divisor of n except n itself. n = 1 yields
// the empty list.
func (c *Cache) ProperDivisors(n *big.Int) []*big.Int {
	all := c.Divisors(n)
	out := make([]*big.Int, 0, len(all))
	for _, d := range all {
		if d.Cmp(n) != 0 {
			out = append(out, d)
		}
	}
	return out
}
