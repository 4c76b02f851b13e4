// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"math/big"
	"sync"
)

// sumDivisorsMemo is a process-lifetime memo of SumProperDivisors results,
// keyed by decimal string since big.Int is not a valid map key.
var sumDivisorsMemo = struct {
	mu    sync.Mutex
	cache map[string]*big.Int
}{cache: make(map[string]*big.Int)}

// SumProperDivisors returns the sum of n's proper divisors, memoised for the
// lifetime of the process.
func (c *Cache) SumProperDivisors(n *big.Int) *big.Int {
	key := n.String()

	sumDivisorsMemo.mu.Lock()
	if v, ok := sumDivisorsMemo.cache[key]; ok {
		sumDivisorsMemo.mu.Unlock()
		return new(big.Int).Set(v)
	}
	sumDivisorsMemo.mu.Unlock()

	sum := big.NewInt(0)
	for _, d := range c.ProperDivisors(n) {
		sum.Add(sum, d)
	}

	sumDivisorsMemo.mu.Lock()
	sumDivisorsMemo.cache[key] = new(big.Int).Set(sum)
	sumDivisorsMemo.mu.Unlock()

	return sum
}

// IsPerfect reports whether n equals the sum of its proper divisors.
func (c *Cache) IsPerfect(n *big.Int) bool {
	return n.Cmp(c.SumProperDivisors(n)) == 0
}

// IsDeficient reports whether n exceeds the sum of its proper divisors.
func (c *Cache) IsDeficient(n *big.Int) bool {
	return n.Cmp(c.SumProperDivisors(n)) > 0
}

// IsAbundant reports whether n is less than the sum of its proper divisors.
func (c *Cache) IsAbundant(n *big.Int) bool {
	return n.Cmp(c.SumProperDivisors(n)) < 0
}

// IsAmicable reports whether n and s(n) form an amicable pair: s(n) != n and
// s(s(n)) == n.
func (c *Cache) IsAmicable(n *big.Int) bool {
	s := c.SumProperDivisors(n)
	if s.Cmp(n) == 0 {
		return false
	}
	return c.SumProperDivisors(s).Cmp(n) == 0
}

// EulerPhi returns Euler's totient of n, computed from its factorisation:
// phi(n) = Π p^(e-1) * (p-1).
func (c *Cache) EulerPhi(n *big.Int) *big.Int {
	phi := big.NewInt(1)
	for _, f := range c.Factor(n, nil) {
		pMinus1 := new(big.Int).Sub(f.Prime, big.NewInt(1))
		if f.Exp > 1 {
			pPow, _ := Power(f.Prime, big.NewInt(int64(f.Exp-1)))
			pMinus1.Mul(pPow, pMinus1)
		}
		phi.Mul(phi, pMinus1)
	}
	return phi
}

// CarmichaelLambda returns the Carmichael function of n, computed from its
// factorisation: lambda(p^e) = p^(e-1)(p-1), except lambda(2^e) = 2^(e-2)
// for e >= 3; composite lambda is the LCM of the prime-power values.
func (c *Cache) CarmichaelLambda(n *big.Int) *big.Int {
	lambda := big.NewInt(1)
	for _, f := range c.Factor(n, nil) {
		lambda = LCM(lambda, carmichaelPrimePower(f))
	}
	return lambda
}

func carmichaelPrimePower(f FactorTerm) *big.Int {
	two := big.NewInt(2)
	if f.Prime.Cmp(two) == 0 && f.Exp >= 3 {
		v, _ := Power(two, big.NewInt(int64(f.Exp-2)))
		return v
	}
	pMinus1 := new(big.Int).Sub(f.Prime, big.NewInt(1))
	if f.Exp > 1 {
		pPow, _ := Power(f.Prime, big.NewInt(int64(f.Exp-1)))
		pMinus1.Mul(pPow, pMinus1)
	}
	return pMinus1
}

// CarmichaelLambdaList applies CarmichaelLambda to every element of ns.
func (c *Cache) CarmichaelLambdaList(ns []*big.Int) []*big.Int {
	out := make([]*big.Int, len(ns))
	for i, n := range ns {
		out[i] = c.CarmichaelLambda(n)
	}
	return out
}
