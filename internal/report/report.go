// Package report materializes simulation results as files for plotting or
// inspection. The engine itself returns structured values only; all
// formatting lives here.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contactkeval/hedgesim/internal/hedging"
)

// WriteJSON writes the full result (path, pnl, premium) to
// <outdir>/result.json.
func WriteJSON(res *hedging.Result, outdir string) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "result.json"), b, 0644)
}

// WriteCSV writes the per-step series to <outdir>/series.csv. The first
// row carries the initial spot with an empty pnl cell: the price path has
// one more entry than the PnL series.
func WriteCSV(res *hedging.Result, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "series.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"step", "price", "pnl"}); err != nil {
		return err
	}
	for i, p := range res.Path {
		pnl := ""
		if i > 0 {
			pnl = fmt.Sprintf("%.6f", res.PnL[i-1])
		}
		if err := w.Write([]string{fmt.Sprintf("%d", i), fmt.Sprintf("%.6f", p), pnl}); err != nil {
			return err
		}
	}
	return nil
}
