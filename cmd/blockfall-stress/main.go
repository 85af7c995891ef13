package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/blockfall/game"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the bag and the random input stream.")
	inputRate := flag.Float64("input-rate", 0.3, "Probability of a random input on each frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting blockfall stress test", zap.Duration("duration", *duration), zap.Uint64("seed", *seed))

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	session, err := game.NewSession(cfg)
	if err != nil {
		logger.Fatal("Failed to start session", zap.Error(err))
	}

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		InputRate:      *inputRate,
		GCPauseMetrics: *gcPauseMetrics,
		StepTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	session.Subscribe(report.Record)

	rng := rand.New(rand.NewPCG(*seed, *seed+1))
	actions := game.Actions()

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			var inputs []game.Input
			if rng.Float64() < *inputRate {
				inputs = append(inputs, randomInput(rng, actions))
			}

			stepStart := time.Now()
			session.Step(inputs...)
			report.StepTime.Samples = append(report.StepTime.Samples, time.Since(stepStart))
			report.TotalSteps++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.StepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("Simulation finished",
		zap.Int64("steps", report.TotalSteps),
		zap.Int("locks", report.Locks),
		zap.Int("gameOvers", report.GameOvers),
	)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("Failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

// randomInput picks an action uniformly. Soft drop is released as often as it
// is pressed so the step delay does not stay pinned.
func randomInput(rng *rand.Rand, actions []game.Action) game.Input {
	a := actions[rng.IntN(len(actions))]
	if a == game.SoftDrop && rng.IntN(2) == 0 {
		return game.Released(a)
	}
	return game.Pressed(a)
}
