// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCDLCM_KnownValues(t *testing.T) {
	a, b := big.NewInt(462), big.NewInt(1071)
	assert.Equal(t, big.NewInt(21), GCD(a, b))
	assert.Equal(t, big.NewInt(23562), LCM(a, b))
}

func TestGCD_ZeroEdgeCases(t *testing.T) {
	assert.Equal(t, big.NewInt(0), GCD(big.NewInt(0), big.NewInt(0)))
	assert.Equal(t, big.NewInt(7), GCD(big.NewInt(-7), big.NewInt(0)))
}

func TestLCM_ZeroEdgeCase(t *testing.T) {
	assert.Equal(t, big.NewInt(0), LCM(big.NewInt(0), big.NewInt(5)))
}

func TestPowMod_KnownValue(t *testing.T) {
	got, err := PowMod(big.NewInt(4), big.NewInt(13), big.NewInt(497))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(445), got)
}

func TestPowMod_Errors(t *testing.T) {
	_, err := PowMod(big.NewInt(2), big.NewInt(-1), big.NewInt(5))
	assert.ErrorIs(t, err, ErrNegativeExponent)

	_, err = PowMod(big.NewInt(2), big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrZeroModulus)
}

func TestMultInverse_KnownValue(t *testing.T) {
	assert.Equal(t, big.NewInt(23), MultInverse(big.NewInt(7), big.NewInt(40)))
}

func TestMultInverse_NoInverse(t *testing.T) {
	assert.Equal(t, big.NewInt(0), MultInverse(big.NewInt(4), big.NewInt(8)))
}

func TestPowMod_CrossCheckAgainstPower(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := big.NewInt(int64(r.Intn(1000) + 1))
		e := big.NewInt(int64(r.Intn(20)))
		m := big.NewInt(int64(r.Intn(1000) + 1))

		viaPow, err := Power(n, e)
		require.NoError(t, err)
		viaPow.Mod(viaPow, m)

		viaPowMod, err := PowMod(n, e, m)
		require.NoError(t, err)

		assert.Equal(t, viaPow, viaPowMod)
	}
}

func TestMultInverse_Property(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		m := big.NewInt(int64(r.Intn(500) + 2))
		a := big.NewInt(int64(r.Intn(500)))

		inv := MultInverse(a, m)
		g := GCD(a, m)
		if g.Cmp(big.NewInt(1)) == 0 {
			prod := new(big.Int).Mul(inv, a)
			prod.Mod(prod, m)
			assert.Equal(t, big.NewInt(1), prod)
		} else {
			assert.Equal(t, big.NewInt(0), inv)
		}
	}
}

func TestGCDLCM_Property(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a := big.NewInt(int64(r.Intn(10000)))
		b := big.NewInt(int64(r.Intn(10000)))

		lhs := new(big.Int).Mul(GCD(a, b), LCM(a, b))
		rhs := new(big.Int).Mul(a, b)
		rhs.Abs(rhs)
		assert.Equal(t, rhs, lhs)
	}
}
