// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package attack

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsalab/rsalab/rsa"
)

func textbookKey(t *testing.T) *rsa.Key {
	t.Helper()
	key, err := rsa.CreateKeyFromPrimes([]*big.Int{big.NewInt(61), big.NewInt(53)}, big.NewInt(17))
	require.NoError(t, err)
	return key
}

func TestAttackRawMultiply_RecoversScaledPlaintext(t *testing.T) {
	key := textbookKey(t)
	steps, err := AttackRawMultiply(key, big.NewInt(2))
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	for _, s := range steps {
		assert.Equal(t, s.Want, s.Got, "m=%s", s.M)
	}
}

func TestAttackRawDivide_RecoversScaledPlaintext(t *testing.T) {
	key := textbookKey(t)
	steps, err := AttackRawDivide(key, big.NewInt(3))
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	for _, s := range steps {
		assert.Equal(t, s.Want, s.Got, "m=%s", s.M)
	}
}

func TestAttackRawMultiply_SweepsFullDemoRange(t *testing.T) {
	key := textbookKey(t)
	steps, err := AttackRawMultiply(key, big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, demoPlaintextHigh-demoPlaintextLow, len(steps))
	assert.Equal(t, big.NewInt(demoPlaintextLow), steps[0].M)
}
