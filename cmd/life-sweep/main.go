package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"sparselife/internal/core"
	_ "sparselife/internal/sims/life"
)

type scenario struct {
	seed int64
	size int64
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d region=%dx%d", s.seed, s.size, s.size)
}

type scenarioResult struct {
	params     scenario
	population int
	generation uint64
	boxArea    int64
	extinctAt  int
	elapsed    time.Duration
}

func main() {
	steps := flag.Int("steps", 500, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel scenario evaluations")
	flag.Parse()

	seedOptions := []int64{1, 7, 42, 99, 256, 1337}
	sizeOptions := []int64{32, 64, 128}

	var sets []scenario
	for _, seed := range seedOptions {
		for _, size := range sizeOptions {
			sets = append(sets, scenario{seed: seed, size: size})
		}
	}

	// Scenarios run concurrently; each grid is owned by exactly one
	// goroutine, so every individual tick stays single-threaded.
	results := make([]scenarioResult, len(sets))
	var eg errgroup.Group
	eg.SetLimit(*workers)
	for i, set := range sets {
		i, set := i, set
		eg.Go(func() error {
			results[i] = evaluate(set, *steps)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].population > results[j].population
	})

	fmt.Printf("%-24s %10s %10s %10s %10s %10s\n",
		"scenario", "pop", "gen", "box", "extinct@", "elapsed")
	for _, r := range results {
		extinct := "-"
		if r.extinctAt >= 0 {
			extinct = strconv.Itoa(r.extinctAt)
		}
		fmt.Printf("%-24s %10d %10d %10d %10s %10s\n",
			r.params, r.population, r.generation, r.boxArea, extinct, r.elapsed.Round(time.Millisecond))
	}
}

func evaluate(set scenario, steps int) scenarioResult {
	factory := core.Sims()["life"]
	opts := map[string]string{
		"w": strconv.FormatInt(set.size, 10),
		"h": strconv.FormatInt(set.size, 10),
	}
	sim := factory(opts)
	sim.Reset(set.seed)

	start := time.Now()
	extinctAt := -1
	for i := 0; i < steps; i++ {
		sim.Step()
		if extinctAt < 0 && sim.Population() == 0 {
			extinctAt = i + 1
		}
	}

	res := scenarioResult{
		params:     set,
		population: sim.Population(),
		generation: sim.Generation(),
		extinctAt:  extinctAt,
		elapsed:    time.Since(start),
	}
	if min, max, ok := sim.Bounds(); ok {
		res.boxArea = (max.X - min.X + 1) * (max.Y - min.Y + 1)
	}
	return res
}
