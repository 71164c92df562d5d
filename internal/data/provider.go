// Package data supplies historical daily bars so a hedge can be replayed
// over a realized price path instead of a simulated one.
package data

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Provider supplies market data.
type Provider interface {
	GetDailyBars(underlying string, fromDate, toDate time.Time) ([]Bar, error)
}

// Bar simplified OHLC
type Bar struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
	Vol   float64
}

// Closes extracts the close series from bars.
func Closes(bars []Bar) []float64 {
	out := make([]float64, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Close)
	}
	return out
}

// AnnualizedVolatility estimates sigma from daily closes via the sample
// standard deviation of log returns and a 252-day year. With fewer than
// two closes there is nothing to estimate and it falls back to 30%.
func AnnualizedVolatility(closes []float64) float64 {
	if len(closes) < 2 {
		return 0.30
	}
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		rets = append(rets, math.Log(closes[i]/closes[i-1]))
	}
	return stat.StdDev(rets, nil) * math.Sqrt(252.0)
}
