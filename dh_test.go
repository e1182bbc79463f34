package pubkeylab

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"
)

// The small worked example: P = 23, alpha = 5, XA = 6, XB = 15.
func TestExchange_smallPrime(t *testing.T) {
	alpha, err := FindGenerator(p23, factors22, big.NewInt(2), 0)
	if err != nil {
		t.Fatalf("generator search failed: %v", err)
	}
	if alpha.Int64() != 5 {
		t.Fatalf("alpha = %s, want 5", alpha)
	}

	g := &Group{P: p23, Alpha: alpha}
	res, err := Exchange(g, big.NewInt(6), big.NewInt(15))
	if err != nil {
		t.Fatalf("exchange failed: %v", err)
	}
	if res.YA.Int64() != 8 {
		t.Errorf("YA = %s, want 8", res.YA)
	}
	if res.YB.Int64() != 19 {
		t.Errorf("YB = %s, want 19", res.YB)
	}
	if !res.Match() {
		t.Errorf("shared secrets differ: SA = %s, SB = %s", res.SA, res.SB)
	}
	if res.SA.Int64() != 2 {
		t.Errorf("SA = %s, want 2", res.SA)
	}
}

func TestExchange_matchesManualParties(t *testing.T) {
	g := &Group{P: p23, Alpha: big.NewInt(5)}

	alice, err := NewParty(g, big.NewInt(6))
	if err != nil {
		t.Fatalf("NewParty failed: %v", err)
	}
	bob, err := NewParty(g, big.NewInt(15))
	if err != nil {
		t.Fatalf("NewParty failed: %v", err)
	}

	sa, err := alice.SharedSecret(bob.Y)
	if err != nil {
		t.Fatalf("SharedSecret failed: %v", err)
	}
	sb, err := bob.SharedSecret(alice.Y)
	if err != nil {
		t.Fatalf("SharedSecret failed: %v", err)
	}
	if sa.Cmp(sb) != 0 {
		t.Errorf("shared secrets differ: %s vs %s", sa, sb)
	}

	res, err := Exchange(g, big.NewInt(6), big.NewInt(15))
	if err != nil {
		t.Fatalf("exchange failed: %v", err)
	}
	if res.SA.Cmp(sa) != 0 {
		t.Errorf("Exchange secret %s differs from manual %s", res.SA, sa)
	}
}

func TestNewParty_rejectsNonPositiveSecret(t *testing.T) {
	g := &Group{P: p23, Alpha: big.NewInt(5)}
	if _, err := NewParty(g, big.NewInt(0)); !errors.Is(err, ErrNonPositive) {
		t.Errorf("zero secret: got %v, want ErrNonPositive", err)
	}
	if _, err := NewParty(g, big.NewInt(-6)); !errors.Is(err, ErrNonPositive) {
		t.Errorf("negative secret: got %v, want ErrNonPositive", err)
	}
}

// Full safe-prime pipeline: generate, find a generator, exchange.
func TestExchange_generatedSafePrime(t *testing.T) {
	p, r, err := GenerateSafePrime(10, 34, safePrimeTestC, 0, nil)
	if err != nil {
		t.Fatalf("safe prime generation failed: %v", err)
	}
	alpha, err := FindGeneratorSafePrime(p, r, big.NewInt(100), 0)
	if err != nil {
		t.Fatalf("generator search failed: %v", err)
	}

	xa, err := rand.Int(rand.Reader, new(big.Int).Sub(p, two))
	if err != nil {
		t.Fatalf("exponent generation failed: %v", err)
	}
	xa.Add(xa, one)
	xb, err := rand.Int(rand.Reader, new(big.Int).Sub(p, two))
	if err != nil {
		t.Fatalf("exponent generation failed: %v", err)
	}
	xb.Add(xb, one)

	res, err := Exchange(&Group{P: p, Alpha: alpha}, xa, xb)
	if err != nil {
		t.Fatalf("exchange failed: %v", err)
	}
	if !res.Match() {
		t.Errorf("shared secrets differ: SA = %s, SB = %s", res.SA, res.SB)
	}
}
