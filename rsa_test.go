package pubkeylab

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"
)

// The walkthrough's fixed scenario: p = 1013, q = 1019, e = 3, M = 51010.
func TestNewKeyPair_fixedScenario(t *testing.T) {
	kp, err := NewKeyPair(big.NewInt(1013), big.NewInt(1019), big.NewInt(3))
	if err != nil {
		t.Fatalf("key derivation failed: %v", err)
	}
	if kp.N.Int64() != 1032247 {
		t.Errorf("n = %s, want 1032247", kp.N)
	}
	if kp.Totient.Int64() != 1030216 {
		t.Errorf("totient = %s, want 1030216", kp.Totient)
	}
	if kp.D.Int64() != 686811 {
		t.Errorf("d = %s, want 686811", kp.D)
	}

	check := new(big.Int).Mul(kp.E, kp.D)
	check.Mod(check, kp.Totient)
	if check.Cmp(one) != 0 {
		t.Errorf("e*d mod totient = %s, want 1", check)
	}

	m := big.NewInt(51010)
	ct, err := kp.Encrypt(m)
	if err != nil {
		t.Fatalf("encryption failed: %v", err)
	}
	if ct.Int64() != 908920 {
		t.Errorf("C = %s, want 908920", ct)
	}
	recovered, err := kp.Decrypt(ct)
	if err != nil {
		t.Fatalf("decryption failed: %v", err)
	}
	if recovered.Cmp(m) != 0 {
		t.Errorf("decrypt(encrypt(%s)) = %s", m, recovered)
	}
}

func TestNewKeyPair_rejectsBadInputs(t *testing.T) {
	if _, err := NewKeyPair(big.NewInt(1000), big.NewInt(1019), big.NewInt(3)); !errors.Is(err, ErrNotPrime) {
		t.Errorf("composite p: got %v, want ErrNotPrime", err)
	}
	if _, err := NewKeyPair(big.NewInt(1013), big.NewInt(1020), big.NewInt(3)); !errors.Is(err, ErrNotPrime) {
		t.Errorf("composite q: got %v, want ErrNotPrime", err)
	}
	if _, err := NewKeyPair(big.NewInt(1013), big.NewInt(1013), big.NewInt(3)); err == nil {
		t.Errorf("equal primes should be rejected")
	}
	if _, err := NewKeyPair(big.NewInt(1013), big.NewInt(1019), big.NewInt(1)); err == nil {
		t.Errorf("exponent 1 should be rejected")
	}
	// totient is even, so e = 2 has no inverse.
	if _, err := NewKeyPair(big.NewInt(1013), big.NewInt(1019), big.NewInt(2)); !errors.Is(err, ErrNoInverse) {
		t.Errorf("even exponent: got %v, want ErrNoInverse", err)
	}
}

func TestKeyPair_rejectsOutOfRangeResidues(t *testing.T) {
	kp, err := NewKeyPair(big.NewInt(1013), big.NewInt(1019), big.NewInt(3))
	if err != nil {
		t.Fatalf("key derivation failed: %v", err)
	}
	if _, err := kp.Encrypt(kp.N); err == nil {
		t.Errorf("m = n should be rejected")
	}
	if _, err := kp.Encrypt(big.NewInt(-1)); err == nil {
		t.Errorf("negative m should be rejected")
	}
	if _, err := kp.Decrypt(kp.N); err == nil {
		t.Errorf("ct = n should be rejected")
	}
}

// Round trips with fresh random primes and random messages.
func TestKeyPair_roundTripRandom(t *testing.T) {
	p, err := rand.Prime(rand.Reader, 128)
	if err != nil {
		t.Fatalf("prime generation failed: %v", err)
	}
	q, err := rand.Prime(rand.Reader, 128)
	if err != nil {
		t.Fatalf("prime generation failed: %v", err)
	}
	kp, err := NewKeyPair(p, q, big.NewInt(65537))
	if err != nil {
		t.Fatalf("key derivation failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		m, err := rand.Int(rand.Reader, kp.N)
		if err != nil {
			t.Fatalf("message generation failed: %v", err)
		}
		ct, err := kp.Encrypt(m)
		if err != nil {
			t.Fatalf("encryption failed: %v", err)
		}
		recovered, err := kp.Decrypt(ct)
		if err != nil {
			t.Fatalf("decryption failed: %v", err)
		}
		if recovered.Cmp(m) != 0 {
			t.Errorf("decrypt(encrypt(m)) != m for m = %s", m)
		}
	}
}
