package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"fractal-life/internal/app"
	"fractal-life/pkg/sims/life"
)

type densitySet struct {
	min float64
	max float64
}

func (d densitySet) String() string {
	return fmt.Sprintf("density=[%.2f,%.2f]", d.min, d.max)
}

type scenarioResult struct {
	params       densitySet
	seed         int64
	initialAlive float64
	finalAlive   float64
}

type summary struct {
	params      densitySet
	initialMean float64
	initialStd  float64
	finalMean   float64
	finalStd    float64
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	size := flag.String("size", "128x128", "grid size as WxH")
	steps := flag.Int("steps", 200, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 8, "seeds per density setting")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	w, h, err := app.ParseSize(*size)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	base := life.DefaultConfig()
	base.Width = w
	base.Height = h

	minOptions := []float64{0.01, 0.05, 0.1}
	maxOptions := []float64{0.2, 0.3, 0.4, 0.5}

	var sets []densitySet
	for _, lo := range minOptions {
		for _, hi := range maxOptions {
			sets = append(sets, densitySet{min: lo, max: hi})
		}
	}

	fmt.Printf("Sweeping %d density settings x %d seeds (%d workers, %d steps, %dx%d)\n",
		len(sets), *seeds, *workers, *steps, w, h)

	start := time.Now()
	results, err := sweep(context.Background(), base, sets, *seeds, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	summaries := summarize(sets, results)
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].finalMean > summaries[j].finalMean })

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, s := range summaries {
		fmt.Printf("%2d) %s initial=%.4f±%.4f final=%.4f±%.4f\n",
			i+1, s.params, s.initialMean, s.initialStd, s.finalMean, s.finalStd)
	}
}

// sweep runs every (setting, seed) pair on its own board. Boards share no
// state, so they are stepped in parallel.
func sweep(ctx context.Context, base life.Config, sets []densitySet, seeds, steps, workers int) ([]scenarioResult, error) {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	var results []scenarioResult
	for _, params := range sets {
		for seed := int64(1); seed <= int64(seeds); seed++ {
			g.Go(func() error {
				res, err := runScenario(ctx, base, params, seed, steps)
				if err != nil {
					return err
				}
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, base life.Config, params densitySet, seed int64, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Noise.MinDensity = params.min
	cfg.Noise.MaxDensity = params.max

	sim := life.NewWithConfig(cfg)
	sim.Reset(seed)
	total := float64(cfg.Width * cfg.Height)
	if total == 0 {
		total = 1
	}
	initial := float64(sim.Grid().Alive()) / total

	for step := 0; step < steps; step++ {
		if err := ctx.Err(); err != nil {
			return scenarioResult{}, err
		}
		sim.Step()
	}

	return scenarioResult{
		params:       params,
		seed:         seed,
		initialAlive: initial,
		finalAlive:   float64(sim.Grid().Alive()) / total,
	}, nil
}

func summarize(sets []densitySet, results []scenarioResult) []summary {
	initial := make(map[densitySet][]float64, len(sets))
	final := make(map[densitySet][]float64, len(sets))
	for _, res := range results {
		initial[res.params] = append(initial[res.params], res.initialAlive)
		final[res.params] = append(final[res.params], res.finalAlive)
	}

	out := make([]summary, 0, len(sets))
	for _, params := range sets {
		if len(initial[params]) == 0 {
			continue
		}
		iMean, iStd := stat.MeanStdDev(initial[params], nil)
		fMean, fStd := stat.MeanStdDev(final[params], nil)
		out = append(out, summary{
			params:      params,
			initialMean: iMean,
			initialStd:  iStd,
			finalMean:   fMean,
			finalStd:    fStd,
		})
	}
	return out
}
