// Command dhdemo runs a Diffie-Hellman exchange over a fixed 30-digit prime.
// The generator is found the slow, general way: trial-division factoring of
// P-1 followed by the full primitive-root test against every factor. Compare
// with dhsafedemo, which sidesteps the factoring by using a safe prime.
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

// 30-digit prime from the assignment sheet.
const demoPrime = "982451653173961852241334935997"

// The assignment asks for a generator just above a two-digit threshold.
const generatorFloor = 16

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg := config.Default()
	cfg.GeneratorFloor = generatorFloor
	cfg.Prime = demoPrime
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Load(os.Args[1])
		if err != nil {
			logger.Fatal("bad config", zap.Error(err))
		}
	}

	p, ok, err := cfg.FixedPrime()
	if err != nil {
		logger.Fatal("bad prime", zap.Error(err))
	}
	if !ok {
		p, _ = new(big.Int).SetString(demoPrime, 10)
	}
	xa, err := cfg.ExponentA()
	if err != nil {
		logger.Fatal("bad exponent", zap.Error(err))
	}
	xb, err := cfg.ExponentB()
	if err != nil {
		logger.Fatal("bad exponent", zap.Error(err))
	}

	pMinusOne := new(big.Int).Sub(p, big.NewInt(1))
	factors, err := pubkeylab.DistinctPrimeFactors(pMinusOne)
	if err != nil {
		logger.Fatal("factoring P-1 failed", zap.Error(err))
	}
	logger.Info("factored P-1", zap.Int("distinct factors", len(factors)))

	start := time.Now()
	alpha, err := pubkeylab.FindGenerator(p, factors, big.NewInt(cfg.GeneratorFloor), cfg.MaxCandidates)
	if err != nil {
		logger.Fatal("primitive root search failed", zap.Error(err))
	}
	elapsed := time.Since(start)
	logger.Info("found primitive root", zap.Duration("elapsed", elapsed))

	res, err := pubkeylab.Exchange(&pubkeylab.Group{P: p, Alpha: alpha}, xa, xb)
	if err != nil {
		logger.Fatal("exchange failed", zap.Error(err))
	}

	fmt.Printf("P (prime)   = %s\n", p)
	fmt.Printf("alpha (g)   = %s\n", alpha)
	fmt.Printf("Primitive root search time: %.6f s\n", elapsed.Seconds())
	fmt.Printf("XA          = %s\n", xa)
	fmt.Printf("XB          = %s\n", xb)
	fmt.Printf("YA          = %s\n", res.YA)
	fmt.Printf("YB          = %s\n", res.YB)
	fmt.Printf("S_A         = %s\n", res.SA)
	fmt.Printf("S_B         = %s\n", res.SB)
	fmt.Printf("Keys match? %s\n", yesNo(res.Match()))
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
