// Copyright © 2026 rsalab contributors
//
// This file is part of rsalab. The full rsalab license notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Command rsaattack is a minimal demo driver for the attack package: it
// builds a key, runs one of the classical attacks against it, and prints
// the result in hex. Argument parsing is intentionally thin; this is a
// teaching demo, not a production CLI.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"

	logging "github.com/ipfs/go-log"

	"github.com/rsalab/rsalab/attack"
	"github.com/rsalab/rsalab/numtheory"
	"github.com/rsalab/rsalab/rsa"
)

var logger = logging.Logger("rsalab-cmd")

const demoPlaintext = 0x123456789abcdef

// subsystems lists every go-log subsystem name this module's packages
// register, in the order -loglevel applies them.
var subsystems = []string{"rsalab-numtheory", "rsalab-rsa", "rsalab-attack", "rsalab-cmd"}

func usage() {
	fmt.Println("usage: rsaattack [-loglevel level] <cmd> [<key-bits> [<max-factor-p-and-q>]]")
	fmt.Println("  <cmd>:")
	fmt.Println("    mul   - demo multiplying a ciphertext's plaintext without decrypting")
	fmt.Println("    div   - demo dividing a ciphertext's plaintext without decrypting")
	fmt.Println("    pkcs1 - demo Bleichenbacher's padding-oracle attack on PKCS#1 v1.5")
	fmt.Println("    weak  - demo recovering equivalent private exponents from a weak key")
	fmt.Println("  <key-bits>            defaults to 256 (the pkcs1 demo needs enough data bits to hold its fixed demo plaintext)")
	fmt.Println("  <max-factor-p-and-q>  if present, build p and q from small factors below this bound")
	fmt.Println("  -loglevel level       debug|info|warn|error|dpanic|panic|fatal, applied to every rsalab-* subsystem")
}

func main() {
	loglevel := flag.String("loglevel", "", "log level for every rsalab-* subsystem (debug|info|warn|error)")
	flag.Usage = usage
	flag.Parse()

	if *loglevel != "" {
		for _, s := range subsystems {
			if err := logging.SetLogLevel(s, *loglevel); err != nil {
				panic(err)
			}
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return
	}

	keyBits := 256
	if len(args) >= 2 {
		b, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: invalid key-bits %q\n", args[1])
			os.Exit(1)
		}
		keyBits = b
	}

	cache := numtheory.Default()
	var key *rsa.Key
	var err error

	if len(args) >= 3 {
		maxFactor, perr := strconv.ParseInt(args[2], 10, 64)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: invalid max-factor-p-and-q %q\n", args[2])
			os.Exit(1)
		}
		key, err = weakKey(cache, keyBits, big.NewInt(maxFactor))
	} else {
		key, err = rsa.CreateKeyBits(keyBits, 2, nil)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not build key: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(key.String())

	cmd := args[0]
	switch cmd {
	case "mul":
		runMultiply(key)
	case "div":
		runDivide(key)
	case "pkcs1":
		runPKCS1(key)
	case "weak":
		runWeak(cache, key)
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown command %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func weakKey(cache *numtheory.Cache, bits int, maxFactor *big.Int) (*rsa.Key, error) {
	p, err := attack.CreateWeakPrime(cache, bits/2, maxFactor)
	if err != nil {
		return nil, err
	}
	q, err := attack.CreateWeakPrime(cache, bits/2, maxFactor)
	if err != nil {
		return nil, err
	}
	for q.Cmp(p) == 0 {
		q, err = attack.CreateWeakPrime(cache, bits/2, maxFactor)
		if err != nil {
			return nil, err
		}
	}
	return rsa.CreateKeyFromPrimes([]*big.Int{p, q}, big.NewInt(0x1001))
}

func runMultiply(key *rsa.Key) {
	for _, t := range []int64{2, 3} {
		fmt.Printf("raw attack, multiply by %d\n", t)
		steps, err := attack.AttackRawMultiply(key, big.NewInt(t))
		if err != nil {
			logger.Errorf("attack failed: %v", err)
			return
		}
		for _, s := range steps {
			fmt.Printf("%s -> %s\n", s.M, s.Got)
		}
	}
}

func runDivide(key *rsa.Key) {
	for _, t := range []int64{2, 3} {
		fmt.Printf("raw attack, divide by %d\n", t)
		steps, err := attack.AttackRawDivide(key, big.NewInt(t))
		if err != nil {
			logger.Errorf("attack failed: %v", err)
			return
		}
		for _, s := range steps {
			fmt.Printf("%s -> %s\n", s.M, s.Got)
		}
	}
}

func runPKCS1(key *rsa.Key) {
	m := big.NewInt(demoPlaintext)
	c, err := key.EncryptPKCS1(m)
	if err != nil {
		logger.Errorf("encrypt failed: %v", err)
		return
	}
	result, err := attack.AttackPKCS1(key, c)
	if err != nil {
		logger.Errorf("attack failed: %v", err)
		return
	}
	fmt.Printf("found=0x%x\n", result.Found)
	fmt.Printf("   m0=0x%x\n", m)
	fmt.Printf("decrypt op count=%d\n", result.OracleCalls)
}

func runWeak(cache *numtheory.Cache, key *rsa.Key) {
	result, err := attack.AttackWeakKey(cache, key)
	if err != nil {
		logger.Errorf("attack failed: %v", err)
		return
	}
	if result.Aborted {
		fmt.Printf("A=%s exceeds the enumeration threshold; aborting\n", result.A)
		return
	}
	fmt.Printf("A=%s, %d equivalent private exponents\n", result.A, len(result.Ds))
	for i, d := range result.Ds {
		fmt.Printf("  d_%d=0x%x\n", i, d)
	}
}
