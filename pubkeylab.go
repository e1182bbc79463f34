// Package pubkeylab implements the number-theoretic core of two classroom
// public-key protocols: textbook RSA and Diffie-Hellman key exchange over a
// prime field. It provides modular exponentiation and inverses, trial-division
// factorization, primitive-root search (generic and safe-prime specialized)
// and safe-prime generation on top of math/big.
//
// None of this is hardened cryptography. Messages are raw residues, there is
// no padding, and timing is observable. The package exists to make the
// arithmetic behind the protocols inspectable, not to protect data.
package pubkeylab

import (
	"math/big"

	"github.com/pkg/errors"
)

// Miller-Rabin rounds for internal defensive primality checks.
const c = 25

var zero = big.NewInt(0)
var one = big.NewInt(1)
var two = big.NewInt(2)

var (
	ErrInvalidModulus   = errors.New("modulus must be positive")
	ErrNegativeExponent = errors.New("exponent must not be negative")
	ErrNonPositive      = errors.New("value must be positive")
	ErrNoInverse        = errors.New("no modular inverse exists")
	ErrNotPrime         = errors.New("modulus is not prime")
	ErrNotSafePrime     = errors.New("prime is not a safe prime")
	ErrSearchExhausted  = errors.New("search exhausted its candidate budget")
)
