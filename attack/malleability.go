// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package attack

import (
	"math/big"

	"github.com/rsalab/rsalab/numtheory"
	"github.com/rsalab/rsalab/rsa"
)

// demoPlaintextLow and demoPlaintextHigh bound the sweep of plaintexts used
// to demonstrate raw-RSA malleability, matching rsa_attack.py's
// `range(2, 24)`.
const (
	demoPlaintextLow  = 2
	demoPlaintextHigh = 24
)

// MalleabilityStep is one (m, recovered) pair from a malleability demo: the
// recovered value should equal t*m mod n (multiply) or t^-1 * m mod n
// (divide), demonstrating that ciphertexts can be scaled without knowing
// the private key.
type MalleabilityStep struct {
	M    *big.Int
	Want *big.Int
	Got  *big.Int
}

// AttackRawMultiply demonstrates that multiplying a raw ciphertext by
// t^e mod n, then decrypting, recovers t*m mod n without ever decrypting
// the original ciphertext.
func AttackRawMultiply(key *rsa.Key, t *big.Int) ([]MalleabilityStep, error) {
	factor, err := numtheory.PowMod(t, key.E, key.N)
	if err != nil {
		return nil, err
	}
	return sweep(key, factor, t, false)
}

// AttackRawDivide demonstrates the same trick in reverse: multiplying by
// (t^-1)^e mod n recovers m/t mod n.
func AttackRawDivide(key *rsa.Key, t *big.Int) ([]MalleabilityStep, error) {
	tInv := numtheory.MultInverse(t, key.N)
	factor, err := numtheory.PowMod(tInv, key.E, key.N)
	if err != nil {
		return nil, err
	}
	return sweep(key, factor, t, true)
}

func sweep(key *rsa.Key, factor, t *big.Int, divide bool) ([]MalleabilityStep, error) {
	var steps []MalleabilityStep
	for m := int64(demoPlaintextLow); m < demoPlaintextHigh; m++ {
		mb := big.NewInt(m)
		c, err := key.EncryptRaw(mb)
		if err != nil {
			return nil, err
		}
		c.Mul(c, factor)
		c.Mod(c, key.N)
		got := key.DecryptRaw(c)

		var want *big.Int
		if divide {
			tInv := numtheory.MultInverse(t, key.N)
			want = new(big.Int).Mul(mb, tInv)
		} else {
			want = new(big.Int).Mul(mb, t)
		}
		want.Mod(want, key.N)

		steps = append(steps, MalleabilityStep{M: mb, Want: want, Got: got})
	}
	logger.Debugf("malleability sweep: %d plaintexts, divide=%v", len(steps), divide)
	return steps, nil
}
