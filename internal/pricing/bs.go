// Package pricing implements closed-form Black-Scholes valuation for
// European call options.
//
// All methods are pure and operate on double-precision floats. The
// standard normal CDF and PDF come from gonum's distuv package rather than
// a hand-rolled approximation, so repeated evaluation inside a hedging loop
// does not accumulate approximation error.
package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal provides Φ (CDF) and φ (PDF) for the standard normal
// distribution.
var stdNormal = distuv.UnitNormal

// BlackScholes values European calls on one instrument. Strike and Vol must
// be positive whenever a method is called with positive time to expiry;
// the T <= 0 branches are the only tolerated degenerate inputs and return
// the expiry-boundary values instead of failing.
type BlackScholes struct {
	Strike float64 // strike price K
	Rate   float64 // risk-free interest rate r (annual)
	Vol    float64 // volatility sigma (annual, as a decimal)
}

// d1d2 returns the two Black-Scholes quantiles at spot s with t years
// left. Callers guarantee t > 0.
func (bs BlackScholes) d1d2(s, t float64) (float64, float64) {
	volSqrtT := bs.Vol * math.Sqrt(t)
	d1 := (math.Log(s/bs.Strike) + (bs.Rate+0.5*bs.Vol*bs.Vol)*t) / volSqrtT
	return d1, d1 - volSqrtT
}

// Price returns the fair value of the call at spot s with t years to
// expiry.
//
// At t <= 0 the option is worth exactly its intrinsic value max(s-K, 0).
// This branch is load-bearing: the hedging engine marks its final step
// against it, so it must stay a silent, valid case rather than an error.
func (bs BlackScholes) Price(s, t float64) float64 {
	if t <= 0 {
		return math.Max(s-bs.Strike, 0)
	}
	d1, d2 := bs.d1d2(s, t)
	return s*stdNormal.CDF(d1) - bs.Strike*math.Exp(-bs.Rate*t)*stdNormal.CDF(d2)
}

// Delta returns the call's sensitivity to the underlying, Φ(d1), which the
// hedging engine uses directly as its hedge ratio. It is 0 at t <= 0 and
// always lies in [0, 1].
func (bs BlackScholes) Delta(s, t float64) float64 {
	if t <= 0 {
		return 0
	}
	d1, _ := bs.d1d2(s, t)
	return stdNormal.CDF(d1)
}

// Gamma returns the rate of change of delta with respect to the
// underlying: φ(d1) / (s*sigma*sqrt(t)).
//
// Gamma is mathematically undefined at expiry. This implementation returns
// 0 at t <= 0 so risk snapshots stay finite; callers that need a live
// gamma must reject expired instruments themselves.
func (bs BlackScholes) Gamma(s, t float64) float64 {
	if t <= 0 {
		return 0
	}
	d1, _ := bs.d1d2(s, t)
	return stdNormal.Prob(d1) / (s * bs.Vol * math.Sqrt(t))
}

// Theta returns the call's time decay per year. Like Gamma it is undefined
// at expiry and returns 0 at t <= 0.
func (bs BlackScholes) Theta(s, t float64) float64 {
	if t <= 0 {
		return 0
	}
	d1, d2 := bs.d1d2(s, t)
	return -(s*stdNormal.Prob(d1)*bs.Vol)/(2*math.Sqrt(t)) -
		bs.Rate*bs.Strike*math.Exp(-bs.Rate*t)*stdNormal.CDF(d2)
}

// Vega returns the call's sensitivity to volatility, s*φ(d1)*sqrt(t), or 0
// at t <= 0.
func (bs BlackScholes) Vega(s, t float64) float64 {
	if t <= 0 {
		return 0
	}
	d1, _ := bs.d1d2(s, t)
	return s * stdNormal.Prob(d1) * math.Sqrt(t)
}
