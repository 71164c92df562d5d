package data

import "fmt"

// Replay feeds a recorded close series to the hedging engine in place of a
// stochastic generator. It satisfies hedging.PathGenerator; the model
// arguments to Next are ignored because the path is already realized.
//
// A Replay is consumed by exactly one run: Next advances an internal
// cursor and is not safe for concurrent use.
type Replay struct {
	closes []float64
	next   int
}

// NewReplay builds a Replay over the bar closes. At least two bars are
// required, one for the initial spot and one per transition.
func NewReplay(bars []Bar) (*Replay, error) {
	if len(bars) < 2 {
		return nil, fmt.Errorf("replay needs at least two bars, got %d", len(bars))
	}
	return &Replay{closes: Closes(bars), next: 1}, nil
}

// Spot returns the first close. Engine configs for a replay run should use
// it as the initial spot so the path is continuous.
func (rp *Replay) Spot() float64 { return rp.closes[0] }

// Steps returns the number of transitions the series supports.
func (rp *Replay) Steps() int { return len(rp.closes) - 1 }

// Next returns the next recorded close. Once the series is exhausted it
// holds the final close, so an engine configured with more steps than bars
// sees a flat tail rather than an error.
func (rp *Replay) Next(_, _, _, _ float64) float64 {
	if rp.next >= len(rp.closes) {
		return rp.closes[len(rp.closes)-1]
	}
	c := rp.closes[rp.next]
	rp.next++
	return c
}
