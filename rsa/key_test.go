// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package rsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateKeyFromPrimes_TextbookExample(t *testing.T) {
	// The standard p=61, q=53, e=17 textbook RSA walkthrough.
	key, err := CreateKeyFromPrimes([]*big.Int{big.NewInt(61), big.NewInt(53)}, big.NewInt(17))
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(3233), key.N)
	assert.Equal(t, big.NewInt(3120), key.Phi)
	assert.Equal(t, big.NewInt(17), key.E)
	assert.Equal(t, big.NewInt(2753), key.D)
}

func TestCreateKeyFromPrimes_TooFewPrimes(t *testing.T) {
	_, err := CreateKeyFromPrimes([]*big.Int{big.NewInt(61)}, big.NewInt(17))
	assert.ErrorIs(t, err, ErrTooFewPrimes)
}

func TestCreateKeyFromPrimes_DuplicatePrime(t *testing.T) {
	_, err := CreateKeyFromPrimes([]*big.Int{big.NewInt(61), big.NewInt(61)}, big.NewInt(17))
	assert.ErrorIs(t, err, ErrDuplicatePrime)
}

func TestCreateKeyFromPrimes_BumpsToNextValidExponent(t *testing.T) {
	// e=16 is not coprime with phi=3120 (both even); the smallest valid e'
	// at or above 16 is 17.
	key, err := CreateKeyFromPrimes([]*big.Int{big.NewInt(61), big.NewInt(53)}, big.NewInt(16))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(17), key.E)
}

func TestKey_String(t *testing.T) {
	key, err := CreateKeyFromPrimes([]*big.Int{big.NewInt(61), big.NewInt(53)}, big.NewInt(17))
	require.NoError(t, err)
	assert.Equal(t, "n=0xca1 e=0x11 d=0xac1", key.String())
}

func TestRandomPrime_TinyBitSizes(t *testing.T) {
	assert.Equal(t, big.NewInt(2), RandomPrime(1))
	assert.Equal(t, big.NewInt(2), RandomPrime(2))
	assert.Equal(t, big.NewInt(3), RandomPrime(3))
}

func TestRandomPrime_RespectsBitLength(t *testing.T) {
	for i := 0; i < 20; i++ {
		p := RandomPrime(32)
		assert.Equal(t, 32, p.BitLen())
		assert.Equal(t, uint(1), p.Bit(0))
	}
}

func TestCreateKeyBits_ProducesKeyOfRequestedSize(t *testing.T) {
	key, err := CreateKeyBits(64, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 64, key.N.BitLen())
	assert.Len(t, key.Primes, 2)
	assert.NotEqual(t, 0, key.Primes[0].Cmp(key.Primes[1]))
}

func TestCreateKeyBits_MultiPrime(t *testing.T) {
	key, err := CreateKeyBits(96, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 96, key.N.BitLen())
	assert.Len(t, key.Primes, 3)
}

func TestDefaultExponent_SizeThresholds(t *testing.T) {
	assert.Equal(t, big.NewInt(0x11), defaultExponent(8))
	assert.Equal(t, big.NewInt(0x101), defaultExponent(10))
	assert.Equal(t, big.NewInt(0x1001), defaultExponent(14))
}
