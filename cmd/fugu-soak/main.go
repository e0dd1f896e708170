package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/fugufall/puzzle"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for pair colors and player input.")
	step := flag.Duration("step", 50*time.Millisecond, "Simulated time advanced per frame.")
	pairs := flag.Int("pairs", 120, "Pairs generated per game.")
	undoRate := flag.Float64("undo-rate", 0.02, "Probability that a player command is an undo.")
	debug := flag.Bool("debug", false, "Enable development logging.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting soak",
		zap.Duration("duration", *duration),
		zap.Uint64("seed", *seed),
		zap.Duration("step", *step))

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	cfg := puzzle.DefaultConfig()

	p, err := puzzle.New(cfg, puzzle.RandomColors(rng, *pairs), puzzle.WithLogger(logger.Named("puzzle")))
	if err != nil {
		logger.Fatal("invalid puzzle config", zap.Error(err))
	}

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Step:           *step,
		PairsPerGame:   *pairs,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	scheduler := puzzle.NewScheduler(p)
	scheduler.Register(&RandomPlayerSystem{rng: rng, undoRate: *undoRate})
	scheduler.Register(&puzzle.TickSystem{})
	scheduler.Register(&InvariantSystem{log: logger, report: report})
	scheduler.Register(&GameOverSystem{
		log:    logger,
		report: report,
		next:   func() puzzle.Generator { return puzzle.RandomColors(rng, *pairs) },
	})

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	dt := step.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SimulatedTime = time.Duration(totalUpdates) * *step
	report.UpdateTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("soak finished",
		zap.Int("games", report.Games),
		zap.Int("violations", report.Violations))

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}
