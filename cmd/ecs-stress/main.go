// Command ecs-stress runs a synthetic ECS workload for a fixed duration and
// prints a report of frame timings, memory and process usage.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/plus3/hades/ecs"
	"github.com/plus3/hades/internal/config"
	"github.com/plus3/hades/internal/logging"
	"github.com/spf13/pflag"
)

type options struct {
	Duration       time.Duration
	Entities       int
	Churn          float64
	Seed           uint64
	Profile        string
	ProfilePath    string
	Format         string
	GCPauseMetrics bool
	LogLevel       string
}

func parseOptions(args []string) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("ecs-stress", pflag.ContinueOnError)
	fs.DurationVar(&opts.Duration, "duration", 10*time.Second, "The total duration the test should run for.")
	fs.IntVar(&opts.Entities, "entities", 10000, "The initial number of entities to create.")
	fs.Float64Var(&opts.Churn, "churn", 0.01, "Fraction of positioned entities that gain or lose a velocity each frame.")
	fs.Uint64Var(&opts.Seed, "seed", 1, "Random seed for entity composition.")
	fs.StringVar(&opts.Profile, "profile", "", "Write a profile for the run: cpu, mem or empty for none.")
	fs.StringVar(&opts.ProfilePath, "profile-path", ".", "Directory the profile is written to.")
	fs.StringVar(&opts.Format, "format", "markdown", "Report format: markdown or json.")
	fs.BoolVar(&opts.GCPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "Log level.")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch {
	case opts.Duration <= 0:
		return opts, fmt.Errorf("duration must be positive, got %s", opts.Duration)
	case opts.Entities < 0:
		return opts, fmt.Errorf("entities must not be negative, got %d", opts.Entities)
	case opts.Churn < 0 || opts.Churn > 1:
		return opts, fmt.Errorf("churn must be within [0, 1], got %v", opts.Churn)
	}
	switch opts.Format {
	case "markdown", "json":
	default:
		return opts, fmt.Errorf("unknown report format %q", opts.Format)
	}
	switch opts.Profile {
	case "", "cpu", "mem":
	default:
		return opts, fmt.Errorf("unknown profile %q", opts.Profile)
	}
	return opts, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ecs-stress:", err)
		os.Exit(2)
	}

	logger, closer, err := logging.New(config.LogConfig{Level: opts.LogLevel, Format: "text"}, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ecs-stress:", err)
		os.Exit(2)
	}
	defer closer.Close()

	switch opts.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.ProfilePath), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(opts.ProfilePath), profile.Quiet).Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Duration)
	defer cancel()

	report, err := runStress(ctx, opts, logger)
	if err != nil {
		logger.Error("stress test failed", slog.Any("error", err))
		os.Exit(1)
	}

	if opts.Format == "json" {
		err = report.WriteJSON(os.Stdout)
	} else {
		fmt.Println("\n\n--- Stress Test Report ---")
		err = report.Generate(os.Stdout)
		fmt.Println("--- End of Report ---")
	}
	if err != nil {
		logger.Error("failed to generate report", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("stress test complete", slog.String("run_id", report.RunID))
}

// runStress populates a world and updates it as fast as possible until ctx is
// done. Frame errors abort the run.
func runStress(ctx context.Context, opts options, logger *slog.Logger) (*Report, error) {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	// 1. Setup registry, world and systems
	registry := ecs.NewComponentRegistry()
	if err := registerStressComponents(registry); err != nil {
		return nil, err
	}
	w := ecs.NewWorld(registry)
	stress, err := registerStressSystems(w, rng, opts.Churn)
	if err != nil {
		return nil, err
	}

	// 2. Populate the world with initial entities
	logger.Info("populating world", slog.Int("entities", opts.Entities))
	for i := 0; i < opts.Entities; i++ {
		if err := spawnRandomEntity(w, rng); err != nil {
			return nil, err
		}
	}

	// 3. Run the simulation loop
	report := &Report{
		RunID:          uuid.NewString(),
		StartedAt:      time.Now(),
		Duration:       opts.Duration,
		Entities:       opts.Entities,
		ComponentTypes: registry.Len(),
		Systems:        w.Systems().Len(),
		Churn:          opts.Churn,
		Seed:           opts.Seed,
		GCPauseMetrics: opts.GCPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	processStart, err := sampleProcess()
	if err != nil {
		logger.Warn("process metrics unavailable", slog.Any("error", err))
	}

	logger.Info("running simulation", slog.Duration("duration", report.Duration), slog.String("run_id", report.RunID))
	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			if err := w.Update(deltaTime.Seconds()); err != nil {
				return nil, fmt.Errorf("update %d: %w", report.TotalUpdates, err)
			}
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Memory = summarizeMemory(&report.MemStatsStart, &report.MemStatsEnd)

	if processEnd, err := sampleProcess(); err == nil && processStart != nil {
		report.Process = processEnd.Since(processStart, report.TotalTime)
	}

	stats := w.CollectStats()
	report.FinalEntities = stats.EntityCount
	report.Destroyed = stress.lifetime.destroyed
	report.Toggled = stress.toggle.toggled
	report.DrawCalls = stress.renderer.calls
	report.SystemStats = w.Systems().Stats().Systems

	logger.Info("simulation finished",
		slog.Int64("updates", report.TotalUpdates),
		slog.Int("final_entities", report.FinalEntities),
	)
	return report, nil
}
