package pubkeylab

import (
	"math/big"

	"github.com/pkg/errors"
)

// IsGenerator reports whether g is a primitive root modulo the prime p, given
// the distinct prime factors of p-1: g generates the full multiplicative
// group iff g^((p-1)/q) != 1 (mod p) for every factor q.
func IsGenerator(g, p *big.Int, factors FactorSet) (bool, error) {
	pMinusOne := new(big.Int).Sub(p, one)
	exp := new(big.Int)
	for _, q := range factors {
		exp.Div(pMinusOne, q)
		t, err := ModPow(g, exp, p)
		if err != nil {
			return false, err
		}
		if t.Cmp(one) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// IsGeneratorSafePrime reports whether g is a primitive root modulo the safe
// prime p = 2r+1. The factors of p-1 are exactly {2, r}, so the test is two
// exponentiations regardless of the size of p. This is the whole point of
// preferring safe primes for the exchange.
func IsGeneratorSafePrime(g, p, r *big.Int) (bool, error) {
	pMinusOne := new(big.Int).Sub(p, one)

	exp := new(big.Int).Rsh(pMinusOne, 1)
	t, err := ModPow(g, exp, p)
	if err != nil {
		return false, err
	}
	if t.Cmp(one) == 0 {
		return false, nil
	}

	exp.Div(pMinusOne, r)
	t, err = ModPow(g, exp, p)
	if err != nil {
		return false, err
	}
	if t.Cmp(one) == 0 {
		return false, nil
	}
	return true, nil
}

// FindGenerator scans candidates upward from start and returns the smallest
// primitive root of p, given the distinct prime factors of p-1. Candidates
// below 2 are skipped. maxCandidates caps how many candidates are tried;
// 0 means unbounded, matching the reference behavior. The scan also stops
// with ErrSearchExhausted if it reaches p, since every residue repeats from
// there on.
//
// p is checked with a probabilistic primality test first: a composite p turns
// the scan into a useless infinite loop, so that precondition is enforced
// rather than assumed.
func FindGenerator(p *big.Int, factors FactorSet, start *big.Int, maxCandidates uint64) (*big.Int, error) {
	if !p.ProbablyPrime(c) {
		return nil, errors.Wrapf(ErrNotPrime, "%s", p)
	}
	return scanGenerators(p, start, maxCandidates, func(g *big.Int) (bool, error) {
		return IsGenerator(g, p, factors)
	})
}

// FindGeneratorSafePrime is FindGenerator specialized to a safe prime
// p = 2r+1, using the two-exponentiation test instead of a factor list.
func FindGeneratorSafePrime(p, r *big.Int, start *big.Int, maxCandidates uint64) (*big.Int, error) {
	if !p.ProbablyPrime(c) {
		return nil, errors.Wrapf(ErrNotPrime, "%s", p)
	}
	return scanGenerators(p, start, maxCandidates, func(g *big.Int) (bool, error) {
		return IsGeneratorSafePrime(g, p, r)
	})
}

func scanGenerators(p, start *big.Int, maxCandidates uint64, test func(*big.Int) (bool, error)) (*big.Int, error) {
	g := new(big.Int)
	if start == nil || start.Cmp(two) < 0 {
		g.Set(two)
	} else {
		g.Set(start)
	}

	var tried uint64
	for {
		if g.Cmp(p) >= 0 {
			return nil, errors.Wrapf(ErrSearchExhausted, "no primitive root in [%s, %s)", start, p)
		}
		if maxCandidates > 0 && tried >= maxCandidates {
			return nil, errors.Wrapf(ErrSearchExhausted, "no primitive root among %d candidates from %s", maxCandidates, start)
		}
		tried++

		ok, err := test(g)
		if err != nil {
			return nil, err
		}
		if ok {
			return g, nil
		}
		g.Add(g, one)
	}
}
