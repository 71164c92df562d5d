package quote

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contactkeval/hedgesim/internal/pricing"
)

func TestMakeCentersSpreadOnFair(t *testing.T) {
	bs := pricing.BlackScholes{Strike: 100, Rate: 0.05, Vol: 0.3}

	q := Make(bs, 100, 30.0/365.0, DefaultSpread)

	require.Equal(t, bs.Price(100, 30.0/365.0), q.Fair)
	require.Equal(t, DefaultSpread, q.Spread)
	require.InDelta(t, DefaultSpread, q.Ask-q.Bid, 1e-12)
	require.Less(t, q.Bid, q.Fair)
	require.Greater(t, q.Ask, q.Fair)
}

func TestMakeSpreadWidths(t *testing.T) {
	bs := pricing.BlackScholes{Strike: 250, Rate: 0.02, Vol: 0.55}

	for _, spread := range []float64{0.01, 0.04, 0.5, 2} {
		q := Make(bs, 240, 0.1, spread)
		require.Equal(t, spread, q.Spread)
		require.InDelta(t, spread, q.Ask-q.Bid, 1e-12)
	}
}

func TestMakeRiskSnapshot(t *testing.T) {
	bs := pricing.BlackScholes{Strike: 100, Rate: 0.05, Vol: 0.3}
	spot, expiry := 100.0, 30.0/365.0

	q := Make(bs, spot, expiry, DefaultSpread)

	require.Equal(t, bs.Delta(spot, expiry), q.Delta)
	require.Equal(t, bs.Gamma(spot, expiry), q.Gamma)
	require.Equal(t, bs.Theta(spot, expiry), q.Theta)
	require.InDelta(t, 0.5362, q.Delta, 1e-3)
	require.Negative(t, q.Theta)
}

// At expiry the quote degenerates to intrinsic value on both sides with no
// live Greeks. Callers needing risk must reject this case themselves.
func TestMakeDegenerateAtExpiry(t *testing.T) {
	bs := pricing.BlackScholes{Strike: 100, Rate: 0.05, Vol: 0.3}

	q := Make(bs, 110, 0, DefaultSpread)

	require.Equal(t, 10.0, q.Fair)
	require.Equal(t, q.Fair, q.Bid)
	require.Equal(t, q.Fair, q.Ask)
	require.Zero(t, q.Spread)
	require.Zero(t, q.Delta)
	require.Zero(t, q.Gamma)
	require.Zero(t, q.Theta)
}
