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

// PCL is the default Prime Cache Limit: the upper bound on values that may
// live in the process-wide prime cache. It is a build-time constant, per
// spec; callers who need a different bound construct their own Cache with
// NewCache instead of mutating this one.
const PCL = 500_000_000

// Cache is a monotonically growing, ordered sequence of primes, seeded with
// [2, 3] and capped at a configurable limit. It is safe for concurrent use:
// Sieve is internally serialised and idempotent, and readers observe a
// consistent, ever-growing view.
type Cache struct {
	mu     sync.Mutex
	primes []*big.Int
	limit  *big.Int
}

// NewCache returns a fresh prime cache capped at limit.
func NewCache(limit *big.Int) *Cache {
	return &Cache{
		primes: []*big.Int{big.NewInt(2), big.NewInt(3)},
		limit:  new(big.Int).Set(limit),
	}
}

var defaultCache = NewCache(big.NewInt(PCL))

// Default returns the process-wide prime cache, capped at PCL.
func Default() *Cache {
	return defaultCache
}

// snapshot returns a copy of the current primes slice, taken under c.mu.
// Callers must not already hold c.mu. Since primes only ever grows by
// append, the copy stays a valid (if possibly stale) prefix of the cache.
func (c *Cache) snapshot() []*big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*big.Int, len(c.primes))
	copy(out, c.primes)
	return out
}

func (c *Cache) last() *big.Int {
	return c.primes[len(c.primes)-1]
}

// Sieve extends the cache so that it contains every prime <= min(u, c.limit)
// plus one further prime beyond the largest sieved value. It is a no-op if
// the cache already extends past u.
func (c *Cache) Sieve(u *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sieveLocked(u)
	// Each sieveLocked pass covers at most (last, 2*last]; repeat until the
	// cache reaches min(u, c.limit).
	for c.last().Cmp(u) < 0 && c.last().Cmp(c.limit) < 0 {
		c.sieveLocked(u)
	}
}

func (c *Cache) sieveLocked(u *big.Int) {
	last := c.last()
	if last.Cmp(u) >= 0 {
		return
	}

	clipped := new(big.Int).Set(u)
	if clipped.Cmp(c.limit) > 0 {
		clipped.Set(c.limit)
	}
	twiceLast := new(big.Int).Lsh(last, 1)
	target := clipped
	if twiceLast.Cmp(target) < 0 {
		target = twiceLast
	}
	if target.Cmp(last) <= 0 {
		// The cache is already at its limit; still append one probable
		// prime beyond it so the "peek one past" invariant holds.
		c.primes = append(c.primes, nextProbablyPrimeSmall(last))
		return
	}

	lastI := last.Int64()
	targetI := target.Int64()

	start := lastI + 1
	if start%2 == 0 {
		start++
	}
	size := (targetI-start)/2 + 1
	if start > targetI {
		size = 0
	}
	composite := make([]bool, size)

	existing := len(c.primes)
	for i := 0; i < existing; i++ {
		p := c.primes[i]
		if p.Cmp(big.NewInt(2)) == 0 {
			continue // 2 has no odd multiples
		}
		pI := p.Int64()
		if pI*pI > targetI {
			break
		}
		k0 := lastI/pI + 1
		if k0%2 == 0 {
			k0++
		}
		multiple := k0 * pI
		for m := multiple; m <= targetI; m += 2 * pI {
			idx := (m - start) / 2
			composite[idx] = true
		}
	}

	for i := int64(0); i < size; i++ {
		if !composite[i] {
			c.primes = append(c.primes, big.NewInt(start+2*i))
		}
	}
	c.primes = append(c.primes, nextProbablyPrimeSmall(c.last()))

	logger.Debugf("sieve extended cache to %s (%d odd candidates sieved)", target.String(), size)
}

// PrimeIter is a finite, restartable, pull-style sequence over the primes
// <= some limit. There is no suspension contract beyond "produce the next
// value or report exhaustion".
type PrimeIter struct {
	limit     *big.Int
	cache     []*big.Int
	idx       int
	overflow  *big.Int // nil until we've walked past the cached slice
	exhausted bool
}

// PrimesTo returns an iterator over the primes p with p <= u, in ascending
// order. When u <= c.limit the sequence is drawn entirely from the cache
// (sieving it first if needed); beyond that it continues by incrementing
// odd candidates and testing them with ProbablyPrime.
func (c *Cache) PrimesTo(u *big.Int) *PrimeIter {
	if u.Cmp(c.limit) <= 0 {
		c.Sieve(u)
	} else {
		c.Sieve(c.limit)
	}
	return &PrimeIter{limit: new(big.Int).Set(u), cache: c.snapshot()}
}

// Next returns the next prime in the sequence, or (nil, false) when the
// sequence is exhausted.
func (it *PrimeIter) Next() (*big.Int, bool) {
	if it.exhausted {
		return nil, false
	}
	if it.overflow == nil {
		if it.idx < len(it.cache) {
			p := it.cache[it.idx]
			if p.Cmp(it.limit) > 0 {
				it.exhausted = true
				return nil, false
			}
			it.idx++
			return p, true
		}
		// Ran off the end of the cached slice; continue past it.
		it.overflow = new(big.Int).Add(it.cache[len(it.cache)-1], big.NewInt(2))
		if it.overflow.Bit(0) == 0 {
			it.overflow.Add(it.overflow, big.NewInt(1))
		}
	}
	for {
		if it.overflow.Cmp(it.limit) > 0 {
			it.exhausted = true
			return nil, false
		}
		if ProbablyPrime(it.overflow) {
			p := new(big.Int).Set(it.overflow)
			it.overflow.Add(it.overflow, big.NewInt(2))
			return p, true
		}
		it.overflow.Add(it.overflow, big.NewInt(2))
	}
}

// Collect drains the iterator into a slice. Intended for small bounds
// (tests, demos); large bounds should use Next directly.
func (it *PrimeIter) Collect() []*big.Int {
	var out []*big.Int
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

// NotPrimeIter is the analogous restartable sequence over the composite
// positive integers (including 1).
type NotPrimeIter struct {
	primes *PrimeIter
	nextP  *big.Int
	l      *big.Int
	limit  *big.Int
	done   bool
}

// NotPrimesTo returns an iterator over the positive integers n <= u that are
// not prime, including 1, in ascending order.
func (c *Cache) NotPrimesTo(u *big.Int) *NotPrimeIter {
	pit := c.PrimesTo(u)
	it := &NotPrimeIter{primes: pit, l: big.NewInt(1), limit: new(big.Int).Set(u)}
	it.nextP, _ = pit.Next()
	return it
}

// Next returns the next composite (or 1), or (nil, false) when exhausted.
func (it *NotPrimeIter) Next() (*big.Int, bool) {
	if it.done {
		return nil, false
	}
	for {
		if it.l.Cmp(it.limit) > 0 {
			it.done = true
			return nil, false
		}
		if it.nextP != nil && it.l.Cmp(it.nextP) == 0 {
			it.l = new(big.Int).Add(it.l, big.NewInt(1))
			it.nextP, _ = it.primes.Next()
			continue
		}
		out := new(big.Int).Set(it.l)
		it.l.Add(it.l, big.NewInt(1))
		return out, true
	}
}

// Collect drains the iterator into a slice. Intended for small bounds
// (tests, demos); large bounds should use Next directly.
func (it *NotPrimeIter) Collect() []*big.Int {
	var out []*big.Int
	for {
		n, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, n)
	}
}

// RandomPrimeTo selects a uniformly random prime p <= u from the cache,
// using a cryptographic RNG. Requires u <= c.limit.
func (c *Cache) RandomPrimeTo(u *big.Int) (*big.Int, error) {
	if u.Cmp(c.limit) > 0 {
		return nil, ErrExceedsCacheLimit
	}
	c.Sieve(u)
	entries := c.snapshot()
	var candidates []*big.Int
	for _, p := range entries {
		if p.Cmp(u) <= 0 {
			candidates = append(candidates, p)
		}
	}
	idx, err := cryptoRandIntn(len(candidates))
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(candidates[idx]), nil
}
