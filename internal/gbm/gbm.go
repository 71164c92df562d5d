// Package gbm produces discretized Geometric Brownian Motion price steps
// from an injectable, seedable shock source.
package gbm

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ShockSource yields one standard-normal draw per call. Implementations
// must be deterministic for a fixed seed so that simulations can be
// replayed; nothing in this package touches a global random source.
type ShockSource interface {
	Shock() float64
}

// ShockFunc adapts a plain function to a ShockSource. Handy for tests that
// pin the shock sequence.
type ShockFunc func() float64

func (f ShockFunc) Shock() float64 { return f() }

type normalShocks struct {
	dist distuv.Normal
}

// NewNormalShocks returns a standard-normal ShockSource seeded with seed.
// Two sources built from the same seed produce identical draw sequences.
func NewNormalShocks(seed uint64) ShockSource {
	return &normalShocks{dist: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}}
}

func (n *normalShocks) Shock() float64 { return n.dist.Rand() }

// Generator advances a spot price along a risk-neutral GBM discretization.
type Generator struct {
	shocks ShockSource
}

func NewGenerator(shocks ShockSource) *Generator { return &Generator{shocks: shocks} }

// Next returns the next spot given the current spot s, drift r, volatility
// sigma and step size dt:
//
//	S' = s * exp((r - sigma^2/2)*dt + sigma*sqrt(dt)*z),  z ~ N(0,1)
//
// The drift is the same risk-free rate the pricer discounts with, keeping
// path dynamics consistent with the valuation model.
func (g *Generator) Next(s, r, sigma, dt float64) float64 {
	z := g.shocks.Shock()
	return s * math.Exp((r-0.5*sigma*sigma)*dt+sigma*math.Sqrt(dt)*z)
}
