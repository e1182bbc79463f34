package pubkeylab

import (
	"math/big"

	"github.com/pkg/errors"
)

// Group is the public half of a Diffie-Hellman exchange: a prime modulus P
// and a primitive root Alpha of P.
type Group struct {
	P     *big.Int
	Alpha *big.Int
}

// Party is one side of an exchange. It keeps its secret exponent private and
// publishes Y = Alpha^x mod P.
type Party struct {
	Group *Group
	Y     *big.Int
	x     *big.Int
}

// NewParty creates a party from its secret exponent x > 0 and computes its
// public value.
func NewParty(g *Group, x *big.Int) (party *Party, err error) {
	if x.Sign() <= 0 {
		err = errors.Wrapf(ErrNonPositive, "secret exponent %s", x)
		return
	}
	y, err := ModPow(g.Alpha, x, g.P)
	if err != nil {
		return
	}
	party = &Party{
		Group: g,
		Y:     y,
		x:     new(big.Int).Set(x),
	}
	return
}

// SharedSecret combines the other party's public value with this party's
// secret: theirY^x mod P. Both sides land on the same value when they used
// the same group.
func (p *Party) SharedSecret(theirY *big.Int) (*big.Int, error) {
	return ModPow(theirY, p.x, p.Group.P)
}

// ExchangeResult holds the four values of one complete exchange.
type ExchangeResult struct {
	YA, YB *big.Int
	SA, SB *big.Int
}

// Match reports whether both parties derived the same shared secret.
func (r *ExchangeResult) Match() bool {
	return r.SA.Cmp(r.SB) == 0
}

// Exchange runs a full two-party exchange over g with secret exponents
// xa and xb: YA = Alpha^xa, YB = Alpha^xb, SA = YB^xa, SB = YA^xb, all mod P.
func Exchange(g *Group, xa, xb *big.Int) (res *ExchangeResult, err error) {
	alice, err := NewParty(g, xa)
	if err != nil {
		return
	}
	bob, err := NewParty(g, xb)
	if err != nil {
		return
	}
	sa, err := alice.SharedSecret(bob.Y)
	if err != nil {
		return
	}
	sb, err := bob.SharedSecret(alice.Y)
	if err != nil {
		return
	}
	res = &ExchangeResult{
		YA: alice.Y,
		YB: bob.Y,
		SA: sa,
		SB: sb,
	}
	return
}
