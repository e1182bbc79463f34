// Package config holds the shared knobs of the demo commands. Values ride in
// a yaml file; anything not set keeps the defaults from the original
// assignment write-up.
package config

import (
	"math/big"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Demo configures the demo drivers.
type Demo struct {
	// Safe prime sizing: P gets at least this many decimal digits and bits.
	MinDecimalDigits int `yaml:"mindigits"`
	MinBitLength     int `yaml:"minbits"`

	// Miller-Rabin repetitions for every probabilistic primality check.
	PrimalityConfidence int `yaml:"confidence"`

	// Smallest candidate tried in the primitive-root search.
	GeneratorFloor int64 `yaml:"generatorfloor"`

	// Secret exponents of the two parties, decimal.
	PrivateExponentA string `yaml:"xa"`
	PrivateExponentB string `yaml:"xb"`

	// Opt-in caps on the unbounded searches. 0 keeps them unbounded.
	MaxCandidates uint64 `yaml:"maxcandidates"`
	MaxAttempts   uint64 `yaml:"maxattempts"`

	// Optional fixed prime, decimal. When set, the safe-prime demo validates
	// it instead of generating one.
	Prime string `yaml:"prime"`
}

// Default returns the constants the original assignment used: a safe prime of
// more than 50 digits (about 170 bits), 30 Miller-Rabin rounds, a generator
// of at least 3 digits, and the two sample secret exponents.
func Default() Demo {
	return Demo{
		MinDecimalDigits:    51,
		MinBitLength:        170,
		PrimalityConfidence: 30,
		GeneratorFloor:      100,
		PrivateExponentA:    "51015",
		PrivateExponentB:    "51016",
	}
}

// Load overlays the yaml file at path onto the defaults. An empty path just
// returns the defaults.
func Load(path string) (Demo, error) {
	d := Default()
	if path == "" {
		return d, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return d, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&d); err != nil {
		return d, errors.Wrapf(err, "decode config %s", path)
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// Validate rejects settings no demo can run with.
func (d *Demo) Validate() error {
	if d.MinDecimalDigits <= 0 {
		return errors.Errorf("mindigits should be positive, but it is %d", d.MinDecimalDigits)
	}
	if d.MinBitLength <= 0 {
		return errors.Errorf("minbits should be positive, but it is %d", d.MinBitLength)
	}
	if d.PrimalityConfidence <= 0 {
		return errors.Errorf("confidence should be positive, but it is %d", d.PrimalityConfidence)
	}
	if d.GeneratorFloor < 2 {
		return errors.Errorf("generatorfloor should be at least 2, but it is %d", d.GeneratorFloor)
	}
	if _, err := parseBig(d.PrivateExponentA, "xa"); err != nil {
		return err
	}
	if _, err := parseBig(d.PrivateExponentB, "xb"); err != nil {
		return err
	}
	if d.Prime != "" {
		if _, err := parseBig(d.Prime, "prime"); err != nil {
			return err
		}
	}
	return nil
}

// ExponentA returns the first party's secret exponent.
func (d *Demo) ExponentA() (*big.Int, error) {
	return parseBig(d.PrivateExponentA, "xa")
}

// ExponentB returns the second party's secret exponent.
func (d *Demo) ExponentB() (*big.Int, error) {
	return parseBig(d.PrivateExponentB, "xb")
}

// FixedPrime returns the configured prime and whether one was set.
func (d *Demo) FixedPrime() (*big.Int, bool, error) {
	if d.Prime == "" {
		return nil, false, nil
	}
	p, err := parseBig(d.Prime, "prime")
	return p, err == nil, err
}

func parseBig(s, name string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("%s is not a decimal integer: %q", name, s)
	}
	return v, nil
}
