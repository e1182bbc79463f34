package pubkeylab

import (
	"math/big"

	"github.com/pkg/errors"
)

// KeyPair is a textbook RSA key: modulus N = p*q, public exponent E, private
// exponent D with E*D == 1 (mod Totient), Totient = (p-1)(q-1). The factors
// are not retained.
type KeyPair struct {
	N       *big.Int
	E       *big.Int
	D       *big.Int
	Totient *big.Int
}

// NewKeyPair derives an RSA key pair from two distinct probable primes p, q
// and a public exponent e > 1. It fails with ErrNoInverse when e is not
// coprime to (p-1)(q-1).
func NewKeyPair(p, q, e *big.Int) (kp *KeyPair, err error) {
	if !p.ProbablyPrime(c) {
		err = errors.Wrapf(ErrNotPrime, "p = %s", p)
		return
	}
	if !q.ProbablyPrime(c) {
		err = errors.Wrapf(ErrNotPrime, "q = %s", q)
		return
	}
	if p.Cmp(q) == 0 {
		err = errors.Errorf("p and q must be distinct, both are %s", p)
		return
	}
	if e.Cmp(one) <= 0 {
		err = errors.Errorf("public exponent should be greater than 1, but it is %s", e)
		return
	}

	n := new(big.Int).Mul(p, q)
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	totient := new(big.Int).Mul(pMinusOne, qMinusOne)

	d, err := ModInverse(e, totient)
	if err != nil {
		return
	}

	kp = &KeyPair{
		N:       n,
		E:       new(big.Int).Set(e),
		D:       d,
		Totient: totient,
	}
	return
}

// Encrypt returns m^E mod N. The message must already be a residue,
// 0 <= m < N; there is no padding.
func (kp *KeyPair) Encrypt(m *big.Int) (ct *big.Int, err error) {
	if m.Sign() < 0 || m.Cmp(kp.N) >= 0 {
		err = errors.Errorf("message must be between 0 (inclusive) and N (exclusive), but it is %s", m)
		return
	}
	return ModPow(m, kp.E, kp.N)
}

// Decrypt returns ct^D mod N, recovering the message for any valid
// ciphertext produced by Encrypt.
func (kp *KeyPair) Decrypt(ct *big.Int) (m *big.Int, err error) {
	if ct.Sign() < 0 || ct.Cmp(kp.N) >= 0 {
		err = errors.Errorf("ciphertext must be between 0 (inclusive) and N (exclusive), but it is %s", ct)
		return
	}
	return ModPow(ct, kp.D, kp.N)
}
