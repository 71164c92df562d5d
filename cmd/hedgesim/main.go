package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/contactkeval/hedgesim/internal/data"
	"github.com/contactkeval/hedgesim/internal/gbm"
	"github.com/contactkeval/hedgesim/internal/hedging"
	"github.com/contactkeval/hedgesim/internal/logger"
	"github.com/contactkeval/hedgesim/internal/pricing"
	"github.com/contactkeval/hedgesim/internal/quote"
	"github.com/contactkeval/hedgesim/internal/report"
)

// replaySpec selects a historical window to hedge over instead of GBM.
type replaySpec struct {
	Underlying string `json:"underlying"`
	From       string `json:"from"` // YYYY-MM-DD
	To         string `json:"to"`
}

type appConfig struct {
	Mode        string         `json:"mode"` // sim | compare | quote
	Sim         hedging.Config `json:"sim"`
	CompareVols []float64      `json:"compare_vols,omitempty"` // vol per scenario in compare mode
	Spread      float64        `json:"spread,omitempty"`       // quoted width in quote mode
	Replay      *replaySpec    `json:"replay,omitempty"`
	ReportDir   string         `json:"report_dir,omitempty"`
	Verbosity   int            `json:"verbosity,omitempty"` // 0=errors,1=info,2=debug,3=trace
}

func main() {
	configPath := flag.String("config", filepath.Join("scenarios", "base.json"), "path to JSON scenario config")
	rest := flag.Bool("rest", false, "run as REST server (accept simulation jobs)")
	port := flag.String("port", ":8080", "REST server listen address")
	flag.Parse()

	cfgData, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	var cfg appConfig
	if err := json.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	applyDefaults(&cfg)
	logger.SetVerbosity(cfg.Verbosity)

	if *rest {
		serve(&cfg, *port)
		return
	}

	start := time.Now()
	switch cfg.Mode {
	case "quote":
		runQuote(&cfg)
	case "compare":
		runCompare(&cfg)
	default:
		res, err := runSim(&cfg, cfg.Sim)
		if err != nil {
			log.Fatalf("simulation failed: %v", err)
		}
		writeReports(res, cfg.ReportDir)
		fmt.Printf("premium=%.4f final_spot=%.4f final_pnl=%.4f\n",
			res.Premium, res.Path[len(res.Path)-1], res.PnL[len(res.PnL)-1])
	}
	logger.Infof("finished in %v", time.Since(start))
}

func applyDefaults(cfg *appConfig) {
	if cfg.Mode == "" {
		cfg.Mode = "sim"
	}
	if cfg.Spread == 0 {
		cfg.Spread = quote.DefaultSpread
	}
	if cfg.Sim.Seed == 0 {
		cfg.Sim.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "./out"
	}
}

// provider picks historical data backing for replay runs: Polygon when an
// API key is configured, a seeded synthetic walk otherwise.
func provider(seed uint64, start float64) data.Provider {
	if apiKey := os.Getenv("POLYGON_API_KEY"); apiKey != "" {
		logger.Infof("polygon provider enabled")
		return data.NewPolygonDataProvider(apiKey)
	}
	logger.Infof("synthetic provider enabled")
	return data.NewSyntheticProvider(gbm.NewNormalShocks(seed), start)
}

// runSim executes one hedging run, over GBM or, when cfg.Replay is set,
// over a historical close series.
func runSim(cfg *appConfig, sim hedging.Config) (*hedging.Result, error) {
	var path hedging.PathGenerator

	if cfg.Replay != nil {
		from, err := time.Parse("2006-01-02", cfg.Replay.From)
		if err != nil {
			return nil, fmt.Errorf("replay from date: %w", err)
		}
		to, err := time.Parse("2006-01-02", cfg.Replay.To)
		if err != nil {
			return nil, fmt.Errorf("replay to date: %w", err)
		}
		bars, err := provider(sim.Seed, sim.Spot).GetDailyBars(cfg.Replay.Underlying, from, to)
		if err != nil {
			return nil, fmt.Errorf("fetching bars for %s: %w", cfg.Replay.Underlying, err)
		}
		rp, err := data.NewReplay(bars)
		if err != nil {
			return nil, err
		}
		// The realized path dictates spot and step count; estimate vol
		// from the same closes unless the scenario pins one.
		sim.Spot = rp.Spot()
		sim.Steps = rp.Steps()
		if sim.Vol == 0 {
			sim.Vol = data.AnnualizedVolatility(data.Closes(bars))
			logger.Infof("estimated vol = %.2f%%", sim.Vol*100)
		}
		path = rp
	} else {
		path = gbm.NewGenerator(gbm.NewNormalShocks(sim.Seed))
	}

	return hedging.NewEngine(&sim, path).Run()
}

// runCompare hedges the same option under each configured volatility.
// Runs are independent (own config, own seeded source), so they execute
// concurrently.
func runCompare(cfg *appConfig) {
	vols := cfg.CompareVols
	if len(vols) == 0 {
		vols = []float64{0.15, 0.80}
	}

	type outcome struct {
		res *hedging.Result
		err error
	}
	outcomes := make([]outcome, len(vols))

	var wg sync.WaitGroup
	for i, vol := range vols {
		sim := cfg.Sim
		sim.Vol = vol
		sim.Seed = cfg.Sim.Seed + uint64(i)
		wg.Add(1)
		go func(i int, sim hedging.Config) {
			defer wg.Done()
			res, err := runSim(cfg, sim)
			outcomes[i] = outcome{res: res, err: err}
		}(i, sim)
	}
	wg.Wait()

	for i, vol := range vols {
		if outcomes[i].err != nil {
			log.Fatalf("scenario vol=%.2f failed: %v", vol, outcomes[i].err)
		}
		res := outcomes[i].res
		dir := filepath.Join(cfg.ReportDir, fmt.Sprintf("vol_%02.0f", vol*100))
		writeReports(res, dir)
		fmt.Printf("vol=%.0f%%: premium=%.4f final_pnl=%.4f\n",
			vol*100, res.Premium, res.PnL[len(res.PnL)-1])
	}
}

func runQuote(cfg *appConfig) {
	bs := pricing.BlackScholes{Strike: cfg.Sim.Strike, Rate: cfg.Sim.Rate, Vol: cfg.Sim.Vol}
	q := quote.Make(bs, cfg.Sim.Spot, cfg.Sim.Expiry, cfg.Spread)
	b, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		log.Fatalf("marshal quote: %v", err)
	}
	fmt.Println(string(b))
}

func writeReports(res *hedging.Result, dir string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Errorf("could not create output dir %s: %v", dir, err)
		return
	}
	if err := report.WriteJSON(res, dir); err != nil {
		logger.Errorf("writing result.json: %v", err)
	}
	if err := report.WriteCSV(res, dir); err != nil {
		logger.Errorf("writing series.csv: %v", err)
	}
	logger.Infof("wrote %d steps to %s", len(res.PnL), dir)
}

func serve(cfg *appConfig, port string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/run", func(w http.ResponseWriter, r *http.Request) {
		logger.Infof("received /run request")
		res, err := runSim(cfg, cfg.Sim)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	logger.Infof("starting REST server on %s", port)
	log.Fatal(http.ListenAndServe(port, mux))
}
