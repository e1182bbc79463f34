// Command dhsafedemo runs a Diffie-Hellman exchange over a freshly generated
// safe prime P = 2r+1. The factors of P-1 are just {2, r}, so each candidate
// in the primitive-root search costs exactly two exponentiations and no
// factoring is needed at all, no matter how large P gets.
//
// A fixed safe prime can be supplied via the config file's prime field; it is
// validated before use.
package main

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/numlabs/pubkeylab"
	"github.com/numlabs/pubkeylab/config"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Fatal("bad config", zap.Error(err))
	}
	xa, err := cfg.ExponentA()
	if err != nil {
		logger.Fatal("bad exponent", zap.Error(err))
	}
	xb, err := cfg.ExponentB()
	if err != nil {
		logger.Fatal("bad exponent", zap.Error(err))
	}

	fixed, ok, err := cfg.FixedPrime()
	if err != nil {
		logger.Fatal("bad prime", zap.Error(err))
	}

	var p, r *big.Int
	if ok {
		p = fixed
		r = new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
		if err := pubkeylab.ValidateSafePrime(p, r, cfg.PrimalityConfidence); err != nil {
			logger.Fatal("configured prime is not a safe prime", zap.Error(err))
		}
		logger.Info("using configured safe prime")
	} else {
		start := time.Now()
		p, r, err = pubkeylab.GenerateSafePrime(cfg.MinDecimalDigits, cfg.MinBitLength,
			cfg.PrimalityConfidence, cfg.MaxAttempts, nil)
		if err != nil {
			logger.Fatal("safe prime generation failed", zap.Error(err))
		}
		logger.Info("generated safe prime",
			zap.Int("digits", pubkeylab.DecimalDigits(p)),
			zap.Duration("elapsed", time.Since(start)))
	}

	start := time.Now()
	alpha, err := pubkeylab.FindGeneratorSafePrime(p, r, big.NewInt(cfg.GeneratorFloor), cfg.MaxCandidates)
	if err != nil {
		logger.Fatal("primitive root search failed", zap.Error(err))
	}
	elapsed := time.Since(start)
	logger.Info("found primitive root", zap.Duration("elapsed", elapsed))

	res, err := pubkeylab.Exchange(&pubkeylab.Group{P: p, Alpha: alpha}, xa, xb)
	if err != nil {
		logger.Fatal("exchange failed", zap.Error(err))
	}

	fmt.Printf("P (prime, %d digits) = %s\n", pubkeylab.DecimalDigits(p), p)
	fmt.Printf("r ( (P-1)/2, prime ) = %s\n", r)
	fmt.Printf("alpha (generator)    = %s\n", alpha)
	fmt.Printf("Primitive root search time: %.6f s\n", elapsed.Seconds())
	fmt.Printf("XA  = %s\n", xa)
	fmt.Printf("XB  = %s\n", xb)
	fmt.Printf("YA  = %s\n", res.YA)
	fmt.Printf("YB  = %s\n", res.YB)
	fmt.Printf("S_A = %s\n", res.SA)
	fmt.Printf("S_B = %s\n", res.SB)
	fmt.Printf("Keys match? %s\n", yesNo(res.Match()))
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
