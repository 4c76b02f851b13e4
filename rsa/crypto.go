// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package rsa

import (
	"math/big"

	"github.com/rsalab/rsalab/numtheory"
)

// Block layout constants, derived from the modulus size. k is the usable
// bit width (one below the modulus bit length, so raw values always reduce
// mod n without ambiguity). See original_source/rsa.py for the exact
// constant widths this mirrors: an 8-byte random padding field and a
// 2-byte command field.
func (k *Key) blockParams() (dataBits, paddingOffset, cmdOffset int) {
	kBits := k.N.BitLen() - 1
	dataBits = kBits - 11*8
	paddingOffset = dataBits + 1*8
	cmdOffset = dataBits + 9*8
	return
}

// BlockParams exposes the PKCS#1 block layout offsets for this key's
// modulus size: the data field width, the offset of the random padding
// field, and the offset of the 0x02 command field. The attack package
// needs these to compute B = 1 << cmdOffset without duplicating the
// layout math.
func (k *Key) BlockParams() (dataBits, paddingOffset, cmdOffset int) {
	return k.blockParams()
}

// EncryptRaw returns m^e mod n. Requires 0 <= m < n.
func (k *Key) EncryptRaw(m *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(k.N) >= 0 {
		return nil, ErrMessageOutOfRange
	}
	c, err := numtheory.PowMod(m, k.E, k.N)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DecryptRaw returns c^d mod n.
func (k *Key) DecryptRaw(c *big.Int) *big.Int {
	m, err := numtheory.PowMod(c, k.D, k.N)
	if err != nil {
		panic(err) // D and N are key invariants; this cannot fail
	}
	return m
}

// EncryptPKCS1 packs m into a PKCS#1 v1.5-style plaintext block
// (0x02 || 64 random padding bits || m) and encrypts it. Requires
// m < 2^dataBits.
func (k *Key) EncryptPKCS1(m *big.Int) (*big.Int, error) {
	dataBits, paddingOffset, cmdOffset := k.blockParams()
	if dataBits <= 0 {
		return nil, ErrModulusTooSmall
	}
	dataLimit := new(big.Int).Lsh(big.NewInt(1), uint(dataBits))
	if m.Sign() < 0 || m.Cmp(dataLimit) >= 0 {
		return nil, ErrMessageTooLarge
	}

	padding, err := numtheory.CryptoRandBits(64)
	if err != nil {
		return nil, err
	}

	raw := new(big.Int).Lsh(big.NewInt(2), uint(cmdOffset))
	raw.Or(raw, new(big.Int).Lsh(padding, uint(paddingOffset)))
	raw.Or(raw, m)

	c, err := numtheory.PowMod(raw, k.E, k.N)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DecryptPKCS1 decrypts c and checks the 0x02 command prefix. On a
// malformed block it returns big.NewInt(0) rather than an error: this
// sentinel is the padding-oracle signal the attack package consumes, and
// per spec no valid plaintext may legitimately be 0.
func (k *Key) DecryptPKCS1(c *big.Int) *big.Int {
	dataBits, _, cmdOffset := k.blockParams()
	if dataBits <= 0 {
		return big.NewInt(0)
	}
	raw, err := numtheory.PowMod(c, k.D, k.N)
	if err != nil {
		panic(err)
	}

	cmd := new(big.Int).Rsh(raw, uint(cmdOffset))
	if cmd.Cmp(big.NewInt(2)) != 0 {
		return big.NewInt(0)
	}
	mask := new(big.Int).Lsh(big.NewInt(1), uint(dataBits))
	mask.Sub(mask, big.NewInt(1))
	return raw.And(raw, mask)
}
