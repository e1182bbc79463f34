package pubkeylab

import (
	"math/big"

	"github.com/pkg/errors"
)

// ModPow returns base^exp mod m, computed by iterative square-and-multiply:
// the exponent is consumed bit by bit from the low end, the running base is
// squared each step, and the accumulator picks up the current base power
// whenever the bit is set. exp must be non-negative and m positive.
func ModPow(base, exp, m *big.Int) (res *big.Int, err error) {
	if m.Sign() <= 0 {
		err = errors.Wrapf(ErrInvalidModulus, "got %s", m)
		return
	}
	if exp.Sign() < 0 {
		err = errors.Wrapf(ErrNegativeExponent, "got %s", exp)
		return
	}
	res = big.NewInt(1)
	res.Mod(res, m)
	b := new(big.Int).Mod(base, m)
	e := new(big.Int).Set(exp)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			res.Mul(res, b)
			res.Mod(res, m)
		}
		b.Mul(b, b)
		b.Mod(b, m)
		e.Rsh(e, 1)
	}
	return
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y == g == gcd(a, b).
// The classic recursion bottoms out at a == 0 with (b, 0, 1); here it runs as
// an explicit loop over the (r, s, t) accumulator triples, so there is no
// recursion depth to worry about for large inputs.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		oldR.Sub(oldR, tmp)
		oldR, r = r, oldR

		tmp.Mul(q, s)
		oldS.Sub(oldS, tmp)
		oldS, s = s, oldS

		tmp.Mul(q, t)
		oldT.Sub(oldT, tmp)
		oldT, t = t, oldT
	}
	return oldR, oldS, oldT
}

// ModInverse returns d with e*d == 1 (mod m) and 0 < d < m, using the
// extended Euclidean algorithm. It fails with ErrNoInverse when
// gcd(e, m) != 1 and with ErrInvalidModulus when m <= 1.
func ModInverse(e, m *big.Int) (d *big.Int, err error) {
	if m.Cmp(one) <= 0 {
		err = errors.Wrapf(ErrInvalidModulus, "modulus %s must be greater than 1", m)
		return
	}
	g, x, _ := ExtendedGCD(new(big.Int).Mod(e, m), m)
	if g.Cmp(one) != 0 {
		err = errors.Wrapf(ErrNoInverse, "gcd(%s, %s) = %s", e, m, g)
		return
	}
	d = x.Mod(x, m)
	return
}

// ModInverseBruteForce scans d upward from 2 until e*d == 1 (mod m). It is
// O(m) and only reasonable for small demo moduli; ModInverse is the general
// tool. Kept because the RSA walkthrough deliberately shows both.
func ModInverseBruteForce(e, m *big.Int) (d *big.Int, err error) {
	if m.Cmp(one) <= 0 {
		err = errors.Wrapf(ErrInvalidModulus, "modulus %s must be greater than 1", m)
		return
	}
	prod := new(big.Int)
	for d = big.NewInt(2); d.Cmp(m) < 0; d.Add(d, one) {
		prod.Mul(e, d)
		prod.Mod(prod, m)
		if prod.Cmp(one) == 0 {
			return
		}
	}
	d = nil
	err = errors.Wrapf(ErrNoInverse, "no d in [2, %s) inverts %s", m, e)
	return
}
