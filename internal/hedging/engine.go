// Package hedging simulates the economics of delta-hedging a short
// European call against an evolving underlying.
//
// One Engine run is a bounded, synchronous batch computation: it sells one
// call at t=0, then for each step rebalances the stock hedge to the
// option's delta, lets the market move, and marks the book to market.
// Every run owns a private portfolio and output series, so independent
// runs may execute in parallel as long as each uses its own path source.
package hedging

import (
	"errors"
	"fmt"

	"github.com/contactkeval/hedgesim/internal/logger"
	"github.com/contactkeval/hedgesim/internal/pricing"
)

// ErrInvalidParameter reports a simulation parameter rejected up front,
// before any state was mutated.
var ErrInvalidParameter = errors.New("invalid parameter")

// PathGenerator produces the next underlying price from the current one.
// gbm.Generator is the stochastic implementation; data.Replay walks
// recorded closes and ignores the model arguments.
type PathGenerator interface {
	Next(s, r, sigma, dt float64) float64
}

// Config holds the model parameters for one simulation run.
type Config struct {
	Spot   float64 `json:"spot"`           // initial underlying price S0
	Strike float64 `json:"strike"`         // option strike K
	Expiry float64 `json:"expiry_years"`   // time to expiry T in years
	Rate   float64 `json:"rate"`           // risk-free rate r
	Vol    float64 `json:"vol"`            // volatility sigma
	Steps  int     `json:"steps"`          // number of re-hedge steps
	Seed   uint64  `json:"seed,omitempty"` // shock source seed, 0 = derive from clock
}

// Validate rejects parameters the closed-form pricer or the step loop
// cannot handle. Expiry exactly zero is allowed: every pricing call then
// takes the intrinsic-value branch.
func (c *Config) Validate() error {
	switch {
	case c.Vol <= 0:
		return fmt.Errorf("%w: volatility must be positive, got %v", ErrInvalidParameter, c.Vol)
	case c.Steps <= 0:
		return fmt.Errorf("%w: step count must be positive, got %d", ErrInvalidParameter, c.Steps)
	case c.Expiry < 0:
		return fmt.Errorf("%w: time to expiry must be non-negative, got %v", ErrInvalidParameter, c.Expiry)
	case c.Spot <= 0:
		return fmt.Errorf("%w: spot must be positive, got %v", ErrInvalidParameter, c.Spot)
	case c.Strike <= 0:
		return fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidParameter, c.Strike)
	}
	return nil
}

// portfolio is the hedger's book: premium cash received and hedge shares
// held. Owned by exactly one Run invocation.
type portfolio struct {
	cash      float64
	inventory float64
}

// Result carries the structured outputs of one run. The engine never
// formats or renders anything; presentation is the caller's concern.
type Result struct {
	Path    []float64 `json:"price_path"` // Steps+1 prices, starting at S0
	PnL     []float64 `json:"pnl"`        // Steps mark-to-market entries
	Premium float64   `json:"premium"`    // cash credited for selling the call
}

// Engine runs the discrete re-hedging loop for one short-call position.
type Engine struct {
	cfg  *Config
	bs   pricing.BlackScholes
	path PathGenerator
}

func NewEngine(cfg *Config, path PathGenerator) *Engine {
	return &Engine{
		cfg:  cfg,
		bs:   pricing.BlackScholes{Strike: cfg.Strike, Rate: cfg.Rate, Vol: cfg.Vol},
		path: path,
	}
}

// Run executes all configured steps and returns the price path, the PnL
// series and the initial premium. It either completes every step or fails
// during validation with no state mutated; there are no partial results.
func (e *Engine) Run() (*Result, error) {
	cfg := e.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dt := cfg.Expiry / float64(cfg.Steps)
	s := cfg.Spot

	res := &Result{
		Path: make([]float64, 0, cfg.Steps+1),
		PnL:  make([]float64, 0, cfg.Steps),
	}
	res.Path = append(res.Path, s)

	// Sell one call up front. The premium is the cash the hedge must
	// defend; its value is also the liability marked against below.
	var book portfolio
	res.Premium = e.bs.Price(s, cfg.Expiry)
	book.cash += res.Premium
	logger.Infof("sold call for %.4f, hedging over %d steps", res.Premium, cfg.Steps)

	for k := 0; k < cfg.Steps; k++ {
		// Remaining time is derived from the step index, not by repeated
		// subtraction, so the final mark lands exactly on the expiry
		// boundary and takes the pricer's intrinsic branch.
		timeLeft := cfg.Expiry * float64(cfg.Steps-k) / float64(cfg.Steps)
		timeNext := cfg.Expiry * float64(cfg.Steps-k-1) / float64(cfg.Steps)

		// Rebalance the hedge to the option's delta at the pre-shock price.
		// Short the call means long delta in stock to stay neutral.
		target := e.bs.Delta(s, timeLeft)
		trade := target - book.inventory
		book.cash -= trade * s
		book.inventory += trade

		// Market move.
		s = e.path.Next(s, cfg.Rate, cfg.Vol, dt)
		res.Path = append(res.Path, s)

		// Mark to market: cash plus stock held minus the liability from
		// the short call, revalued at the post-shock price.
		value := e.bs.Price(s, timeNext)
		pnl := book.cash + book.inventory*s - value
		res.PnL = append(res.PnL, pnl)

		logger.Tracef("step %d spot=%.4f target_delta=%.4f cash=%.4f pnl=%.4f",
			k, s, target, book.cash, pnl)
	}

	logger.Infof("run complete: final spot=%.4f final pnl=%.4f",
		s, res.PnL[len(res.PnL)-1])
	return res, nil
}
