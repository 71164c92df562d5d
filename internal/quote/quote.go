// Package quote derives two-sided option markets from Black-Scholes fair
// value.
package quote

import "github.com/contactkeval/hedgesim/internal/pricing"

// DefaultSpread is the quoted width in currency units used when a scenario
// does not configure one.
const DefaultSpread = 0.04

// Quote is one bid/ask market with a risk snapshot. It is transient: no
// state survives the call that produced it.
//
// Spread carries the configured width verbatim; Ask-Bid agrees with it but
// only to within float rounding, so consumers wanting the exact width read
// Spread rather than subtracting.
type Quote struct {
	Fair   float64 `json:"fair"`
	Bid    float64 `json:"bid"`
	Ask    float64 `json:"ask"`
	Spread float64 `json:"spread"`
	Delta  float64 `json:"delta"`
	Gamma  float64 `json:"gamma"`
	Theta  float64 `json:"theta"`
}

// Make quotes the call at spot s with t years to expiry, centering spread
// on fair value.
//
// At t <= 0 the quote degenerates: fair value collapses to intrinsic, bid
// equals ask, and the Greeks are zero (gamma and theta are undefined at
// expiry). Callers that need a live market must reject expired instruments
// before quoting.
func Make(bs pricing.BlackScholes, s, t, spread float64) Quote {
	fair := bs.Price(s, t)
	if t <= 0 {
		return Quote{Fair: fair, Bid: fair, Ask: fair}
	}
	return Quote{
		Fair:   fair,
		Bid:    fair - spread/2,
		Ask:    fair + spread/2,
		Spread: spread,
		Delta:  bs.Delta(s, t),
		Gamma:  bs.Gamma(s, t),
		Theta:  bs.Theta(s, t),
	}
}
