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

func textbookKey(t *testing.T) *Key {
	t.Helper()
	key, err := CreateKeyFromPrimes([]*big.Int{big.NewInt(61), big.NewInt(53)}, big.NewInt(17))
	require.NoError(t, err)
	return key
}

func TestEncryptDecryptRaw_TextbookExample(t *testing.T) {
	key := textbookKey(t)
	c, err := key.EncryptRaw(big.NewInt(65))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2790), c)
	assert.Equal(t, big.NewInt(65), key.DecryptRaw(c))
}

func TestEncryptRaw_OutOfRange(t *testing.T) {
	key := textbookKey(t)
	_, err := key.EncryptRaw(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrMessageOutOfRange)

	_, err = key.EncryptRaw(key.N)
	assert.ErrorIs(t, err, ErrMessageOutOfRange)
}

func TestPKCS1_RoundTrip(t *testing.T) {
	key, err := CreateKeyBits(256, 2, nil)
	require.NoError(t, err)

	m := big.NewInt(0x123456789abcdef)
	c, err := key.EncryptPKCS1(m)
	require.NoError(t, err)

	got := key.DecryptPKCS1(c)
	assert.Equal(t, m, got)
}

func TestPKCS1_NonConformingCiphertextReturnsZeroSentinel(t *testing.T) {
	key, err := CreateKeyBits(256, 2, nil)
	require.NoError(t, err)

	// A raw-encrypted small value is extremely unlikely to decrypt to a
	// block beginning with the 0x02 command byte.
	c, err := key.EncryptRaw(big.NewInt(7))
	require.NoError(t, err)
	got := key.DecryptPKCS1(c)
	assert.Equal(t, big.NewInt(0), got)
}

func TestEncryptPKCS1_MessageTooLarge(t *testing.T) {
	key, err := CreateKeyBits(256, 2, nil)
	require.NoError(t, err)
	dataBits, _, _ := key.blockParams()
	tooLarge := new(big.Int).Lsh(big.NewInt(1), uint(dataBits))
	_, err = key.EncryptPKCS1(tooLarge)
	assert.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestEncryptPKCS1_ModulusTooSmallForBlockOverhead(t *testing.T) {
	key := textbookKey(t) // ~12-bit modulus, far smaller than the 88-bit block overhead
	_, err := key.EncryptPKCS1(big.NewInt(1))
	assert.ErrorIs(t, err, ErrModulusTooSmall)
	assert.Equal(t, big.NewInt(0), key.DecryptPKCS1(big.NewInt(5)))
}

func TestBlockParams_ExposedConsistently(t *testing.T) {
	key, err := CreateKeyBits(256, 2, nil)
	require.NoError(t, err)
	a, b, c := key.blockParams()
	d, e, f := key.BlockParams()
	assert.Equal(t, a, d)
	assert.Equal(t, b, e)
	assert.Equal(t, c, f)
}
