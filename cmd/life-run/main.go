package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"sparselife/internal/app"
	"sparselife/internal/core"
	lifesim "sparselife/internal/sims/life"
)

// runStats accumulates throughput figures for a headless run.
type runStats struct {
	start         time.Time
	ticksPerSec   float64
	avgPopulation float64
}

func newRunStats() *runStats {
	return &runStats{start: time.Now()}
}

func (s *runStats) update(population int) {
	// Moving average keeps the figure readable on noisy boards.
	if s.avgPopulation == 0 {
		s.avgPopulation = float64(population)
	} else {
		s.avgPopulation = s.avgPopulation*0.9 + float64(population)*0.1
	}
}

func (s *runStats) finish(ticks int) {
	elapsed := time.Since(s.start).Seconds()
	if elapsed > 0 {
		s.ticksPerSec = float64(ticks) / elapsed
	}
}

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "optional JSON config file (overrides flags)")
	quiet := flag.Bool("quiet", false, "suppress the final cell dump")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("%+v", err)
		}
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)
	fmt.Printf("seeded %q with %d cells (seed %d, region %dx%d)\n",
		sim.Name(), sim.Population(), cfg.Seed, cfg.Width, cfg.Height)

	stats := newRunStats()
	for i := 0; i < cfg.Ticks; i++ {
		sim.Step()
		stats.update(sim.Population())
	}
	stats.finish(cfg.Ticks)

	fmt.Printf("generation %d, population %d, avg population %.1f, %.0f ticks/sec\n",
		sim.Generation(), sim.Population(), stats.avgPopulation, stats.ticksPerSec)
	if min, max, ok := sim.Bounds(); ok {
		fmt.Printf("bounds (%d,%d)..(%d,%d)\n", min.X, min.Y, max.X, max.Y)
	} else {
		fmt.Println("board is extinct")
	}

	if l, ok := sim.(*lifesim.Life); ok && !*quiet {
		fmt.Println(l.Grid())
	}
}
