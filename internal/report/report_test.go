package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/contactkeval/hedgesim/internal/hedging"
)

func sampleResult() *hedging.Result {
	return &hedging.Result{
		Path:    []float64{100, 101.5, 99.25},
		PnL:     []float64{0.12, -0.34},
		Premium: 3.6351,
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	res := sampleResult()

	require.NoError(t, WriteJSON(res, dir))

	b, err := os.ReadFile(filepath.Join(dir, "result.json"))
	require.NoError(t, err)

	var got hedging.Result
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, res.Path, got.Path)
	require.Equal(t, res.PnL, got.PnL)
	require.Equal(t, res.Premium, got.Premium)
}

func TestWriteCSVSeries(t *testing.T) {
	dir := t.TempDir()
	res := sampleResult()

	require.NoError(t, WriteCSV(res, dir))

	f, err := os.Open(filepath.Join(dir, "series.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header plus one row per path entry; the first data row has no pnl.
	require.Len(t, rows, len(res.Path)+1)
	require.Equal(t, []string{"step", "price", "pnl"}, rows[0])
	require.Equal(t, []string{"0", "100.000000", ""}, rows[1])
	require.Equal(t, []string{"1", "101.500000", "0.120000"}, rows[2])
	require.Equal(t, []string{"2", "99.250000", "-0.340000"}, rows[3])
}
