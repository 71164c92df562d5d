package data

import (
	"math"
	"time"

	"github.com/contactkeval/hedgesim/internal/gbm"
)

// synthDataProvider implements Provider by generating a random-walk bar
// series. It draws from an injected shock source, so synthetic runs are as
// reproducible as simulated ones.
type synthDataProvider struct {
	shocks gbm.ShockSource
	start  float64
}

// NewSyntheticProvider returns a Provider backed by shocks, starting its
// walk at start (first bar's open). A non-positive start falls back to 100.
func NewSyntheticProvider(shocks gbm.ShockSource, start float64) Provider {
	if start <= 0 {
		start = 100
	}
	return &synthDataProvider{shocks: shocks, start: start}
}

func (synthDataProv *synthDataProvider) GetDailyBars(underlying string, fromDate, toDate time.Time) ([]Bar, error) {
	price := synthDataProv.start
	var out []Bar
	for cur := fromDate; !cur.After(toDate); cur = cur.AddDate(0, 0, 1) {
		if cur.Weekday() == time.Saturday || cur.Weekday() == time.Sunday {
			continue
		}
		delta := synthDataProv.shocks.Shock() * 0.01 * price
		open := price
		close := price + delta
		high := math.Max(open, close) + math.Abs(synthDataProv.shocks.Shock()*0.3)
		low := math.Min(open, close) - math.Abs(synthDataProv.shocks.Shock()*0.3)
		vol := 1000 + math.Abs(synthDataProv.shocks.Shock())*5000
		out = append(out, Bar{Date: cur, Open: open, High: high, Low: low, Close: close, Vol: vol})
		price = close
	}
	return out, nil
}
