package app

import (
	"context"
	"log"
	"time"

	"fractal-life/pkg/core"
)

// Runner advances a simulation at a fixed rate and periodically logs the
// stats an on-screen overlay would show.
type Runner struct {
	sim    core.Sim
	limit  uint64
	report time.Duration
	pace   *FixedStep
	meter  *RateMeter
	logger *log.Logger
}

// NewRunner constructs a Runner for sim using the pacing and reporting
// settings in cfg.
func NewRunner(sim core.Sim, cfg *Config, logger *log.Logger) *Runner {
	report := cfg.Report
	if report <= 0 {
		report = time.Second
	}
	return &Runner{
		sim:    sim,
		limit:  cfg.Generations,
		report: report,
		pace:   NewFixedStep(cfg.TPS),
		meter:  NewRateMeter(),
		logger: logger,
	}
}

// Run steps the simulation until ctx is done or the generation limit is
// reached. It returns ctx.Err() when cancelled and nil on reaching the limit.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.pace.Interval())
	defer ticker.Stop()
	reports := time.NewTicker(r.report)
	defer reports.Stop()

	r.logStats(true)
	for {
		if r.done() {
			r.logStats(false)
			return nil
		}
		select {
		case <-ctx.Done():
			r.logStats(false)
			return ctx.Err()
		case <-reports.C:
			r.logStats(true)
		case now := <-ticker.C:
			for n := r.pace.Due(now); n > 0 && !r.done(); n-- {
				r.sim.Step()
				r.meter.Tick(now)
			}
		}
	}
}

func (r *Runner) done() bool {
	return r.limit > 0 && r.sim.Generation() >= r.limit
}

func (r *Runner) logStats(running bool) {
	size := r.sim.Size()
	state := "no"
	if running {
		state = "yes"
	}
	r.logger.Printf("generation=%d rate=%.1f/s width=%d height=%d alive=%d running=%s",
		r.sim.Generation(), r.meter.Rate(), size.W, size.H, r.sim.Grid().Alive(), state)
}
