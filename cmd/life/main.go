package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fractal-life/internal/app"
	"fractal-life/pkg/core"
	_ "fractal-life/pkg/sims/life"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	simCfg, err := cfg.SimMap()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := factory(simCfg)
	start := time.Now()
	sim.Reset(seed)
	size := sim.Size()
	log.Printf("seeded %s %dx%d (seed %d) in %s", sim.Name(), size.W, size.H, seed, time.Since(start).Round(time.Millisecond))

	if provider, ok := sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			parts := make([]string, 0, len(group.Params))
			for _, p := range group.Params {
				parts = append(parts, p.Key+"="+p.Value)
			}
			log.Printf("%s: %s", group.Name, strings.Join(parts, " "))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := app.NewRunner(sim, cfg, log.Default())
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
