package pubkeylab

import (
	"math/big"

	"github.com/pkg/errors"
)

// FactorSet is an ascending list of distinct prime factors. Multiplicities
// are not tracked; the primitive-root test only needs the distinct primes.
type FactorSet []*big.Int

// DistinctPrimeFactors factors n by trial division and returns its distinct
// prime factors in ascending order: 2 is extracted and divided out fully,
// then odd candidates i = 3, 5, ... are tried while i*i does not exceed the
// remaining cofactor, and a surviving cofactor > 1 is itself prime and is
// appended last.
//
// Cost grows with the square root of the second-largest prime factor, which
// is fine for demo-scale numbers and hopeless for cryptographic semiprimes.
// The safe-prime path exists precisely to avoid this routine.
func DistinctPrimeFactors(n *big.Int) (factors FactorSet, err error) {
	if n.Sign() <= 0 {
		err = errors.Wrapf(ErrNonPositive, "cannot factor %s", n)
		return
	}
	rem := new(big.Int).Set(n)

	if rem.Bit(0) == 0 {
		factors = append(factors, big.NewInt(2))
		for rem.Bit(0) == 0 {
			rem.Rsh(rem, 1)
		}
	}

	i := big.NewInt(3)
	sq := new(big.Int)
	mod := new(big.Int)
	for rem.Cmp(one) > 0 {
		sq.Mul(i, i)
		if sq.Cmp(rem) > 0 {
			break
		}
		if mod.Mod(rem, i).Sign() == 0 {
			factors = append(factors, new(big.Int).Set(i))
			for mod.Mod(rem, i).Sign() == 0 {
				rem.Div(rem, i)
			}
		}
		i.Add(i, two)
	}

	if rem.Cmp(one) > 0 {
		factors = append(factors, rem)
	}
	return
}
