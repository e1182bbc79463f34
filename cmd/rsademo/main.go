// Command rsademo walks one textbook RSA round trip with fixed small
// parameters: p = 1013, q = 1019, e = 3, message 51010. It prints every
// intermediate value so the arithmetic can be checked by hand.
package main

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/numlabs/pubkeylab"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	p := big.NewInt(1013)
	q := big.NewInt(1019)
	e := big.NewInt(3)
	m := big.NewInt(51010)

	kp, err := pubkeylab.NewKeyPair(p, q, e)
	if err != nil {
		logger.Fatal("key derivation failed", zap.Error(err))
	}
	g, _, _ := pubkeylab.ExtendedGCD(e, kp.Totient)

	ct, err := kp.Encrypt(m)
	if err != nil {
		logger.Fatal("encryption failed", zap.Error(err))
	}
	recovered, err := kp.Decrypt(ct)
	if err != nil {
		logger.Fatal("decryption failed", zap.Error(err))
	}

	check := new(big.Int).Mul(kp.E, kp.D)
	check.Mod(check, kp.Totient)

	fmt.Printf("n               = %s\n", kp.N)
	fmt.Printf("totient         = %s\n", kp.Totient)
	fmt.Printf("e               = %s\n", kp.E)
	fmt.Printf("d               = %s\n", kp.D)
	fmt.Printf("gcd(e, totient) = %s\n", g)
	fmt.Printf("e*d mod totient = %s\n", check)
	fmt.Printf("M               = %s\n", m)
	fmt.Printf("C = M^e mod n   = %s\n", ct)
	fmt.Printf("M'              = %s\n", recovered)
	fmt.Printf("M == M'         ? %s\n", yesNo(recovered.Cmp(m) == 0))
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
