package pubkeylab

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// Bits per decimal digit, log2(10).
const bitsPerDigit = 3.3219280948873626

// RandomInt generates a uniform random number of at most bitLen bits from
// randSource. A nil randSource falls back to crypto/rand.
func RandomInt(bitLen int, randSource io.Reader) (randNum *big.Int, err error) {
	if bitLen <= 0 {
		err = errors.Wrapf(ErrNonPositive, "bit length %d", bitLen)
		return
	}
	if randSource == nil {
		randSource = rand.Reader
	}
	max := new(big.Int)
	max.SetBit(max, bitLen, 1)
	return rand.Int(randSource, max)
}

// NextProbablePrime returns the smallest probable prime >= n, stepping
// through odd candidates and testing each with confidence Miller-Rabin
// rounds. Values below 2 map to 2.
func NextProbablePrime(n *big.Int, confidence int) *big.Int {
	if n.Cmp(two) <= 0 {
		return big.NewInt(2)
	}
	p := new(big.Int).Set(n)
	if p.Bit(0) == 0 {
		p.Add(p, one)
	}
	for !p.ProbablyPrime(confidence) {
		p.Add(p, two)
	}
	return p
}

// DecimalDigits returns the number of decimal digits of x.
func DecimalDigits(x *big.Int) int {
	if x.Sign() < 0 {
		return len(x.Text(10)) - 1
	}
	return len(x.Text(10))
}

// GenerateSafePrime produces a safe prime p = 2r+1 with r prime, where p has
// at least minDecimalDigits decimal digits and at least minBitLength bits
// (whichever bound is larger wins). Each attempt samples a random candidate
// of the target bit length with the top bit forced set, advances it to the
// next probable prime to get r, and accepts when p = 2r+1 passes
// confidence rounds of Miller-Rabin and meets the digit minimum.
//
// maxAttempts caps the rejection sampling; 0 means keep going until a safe
// prime turns up, which terminates with probability 1 but has no deadline.
// A nil randSource falls back to crypto/rand.
func GenerateSafePrime(minDecimalDigits, minBitLength, confidence int, maxAttempts uint64, randSource io.Reader) (p, r *big.Int, err error) {
	if confidence <= 0 {
		err = errors.Wrapf(ErrNonPositive, "primality confidence %d", confidence)
		return
	}
	if randSource == nil {
		randSource = rand.Reader
	}

	bits := digitsToBits(minDecimalDigits)
	if bits < minBitLength {
		bits = minBitLength
	}
	if bits < 4 {
		bits = 4
	}

	p = new(big.Int)
	var attempts uint64
	for {
		if maxAttempts > 0 && attempts >= maxAttempts {
			p, r = nil, nil
			err = errors.Wrapf(ErrSearchExhausted, "no %d-digit safe prime after %d attempts", minDecimalDigits, maxAttempts)
			return
		}
		attempts++

		var candidate *big.Int
		candidate, err = RandomInt(bits-1, randSource)
		if err != nil {
			p, r = nil, nil
			return
		}
		candidate.SetBit(candidate, bits-2, 1)
		r = NextProbablePrime(candidate, confidence)

		// p = 2r + 1
		p.Lsh(r, 1)
		p.SetBit(p, 0, 1)
		if p.ProbablyPrime(confidence) && DecimalDigits(p) >= minDecimalDigits {
			return
		}
	}
}

// ValidateSafePrime checks that p is a probable prime of the form 2r+1 with
// r itself a probable prime, at confidence Miller-Rabin rounds. Used when a
// caller supplies a fixed prime instead of generating one.
func ValidateSafePrime(p, r *big.Int, confidence int) error {
	if !p.ProbablyPrime(confidence) {
		return errors.Wrapf(ErrNotSafePrime, "%s is not prime", p)
	}
	expected := new(big.Int).Lsh(r, 1)
	expected.Add(expected, one)
	if p.Cmp(expected) != 0 {
		return errors.Wrapf(ErrNotSafePrime, "%s != 2*%s + 1", p, r)
	}
	if !r.ProbablyPrime(confidence) {
		return errors.Wrapf(ErrNotSafePrime, "(p-1)/2 = %s is not prime", r)
	}
	return nil
}

func digitsToBits(digits int) int {
	bits := int(float64(digits)*bitsPerDigit + 0.5)
	if bits < 3 {
		bits = 3
	}
	return bits
}
