// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import "math/big"

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) = 0, GCD(a, 0) = |a|.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// LCM returns |a*b| / GCD(a, b). LCM(0, x) = 0.
func LCM(a, b *big.Int) *big.Int {
	g := GCD(a, b)
	if g.Sign() == 0 {
		return big.NewInt(0)
	}
	prod := new(big.Int).Mul(a, b)
	prod.Abs(prod)
	return prod.Div(prod, g)
}

// Power returns n**e for e >= 0. Power(_, 0) = 1.
func Power(n *big.Int, e *big.Int) (*big.Int, error) {
	if e.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	result := big.NewInt(1)
	base := new(big.Int).Set(n)
	exp := new(big.Int).Set(e)
	for exp.Sign() > 0 {
		if exp.Bit(0) == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		exp.Rsh(exp, 1)
	}
	return result, nil
}

// PowMod returns (n**e) mod m, in [0, m). Requires e >= 0 and m >= 1.
func PowMod(n, e, m *big.Int) (*big.Int, error) {
	if e.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if m.Sign() < 1 {
		return nil, ErrZeroModulus
	}
	return new(big.Int).Exp(n, e, m), nil
}

// MultInverse returns the inverse of a mod n in [1, n-1], or 0 when
// GCD(a, n) != 1.
func MultInverse(a, n *big.Int) *big.Int {
	t1 := big.NewInt(0)
	t2 := big.NewInt(1)
	r1 := new(big.Int).Set(n)
	r2 := new(big.Int).Set(a)

	q := new(big.Int)
	tmp := new(big.Int)

	for r2.Sign() != 0 {
		q.Div(r1, r2)

		t3 := new(big.Int).Mul(q, t2)
		t3.Sub(t1, t3)
		t1, t2 = t2, t3

		r3 := tmp.Mul(q, r2)
		r3 = new(big.Int).Sub(r1, r3)
		r1, r2 = r2, r3
	}

	if r1.Cmp(big.NewInt(1)) > 0 {
		return big.NewInt(0)
	}
	if t1.Sign() < 0 {
		t1.Add(t1, n)
	}
	return t1
}
