// Command donut-bench compares SPSC queue implementations through the same
// non-blocking push/pop loops.
//
// Usage:
//
//	go run ./cmd/donut-bench -n 10000000 -size 1024 -mode pipeline -kinds array,slab,channel
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/randomizedcoder/donut/internal/harness"
	"github.com/randomizedcoder/donut/internal/queue"
)

type runFunc func(ctx context.Context, name string, q queue.Queue[int], cfg harness.Config) (harness.Result, error)

var modes = map[string]runFunc{
	"pingpong": func(_ context.Context, name string, q queue.Queue[int], cfg harness.Config) (harness.Result, error) {
		return harness.PingPong(name, q, cfg)
	},
	"burst": func(_ context.Context, name string, q queue.Queue[int], cfg harness.Config) (harness.Result, error) {
		return harness.Burst(name, q, cfg)
	},
	"pipeline": harness.Pipeline,
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(colorable.NewColorableStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}

func main() {
	cfg := harness.DefaultConfig()

	flag.IntVar(&cfg.Iterations, "n", cfg.Iterations, "number of elements per run")
	flag.IntVar(&cfg.Size, "size", cfg.Size, "queue capacity")
	flag.IntVar(&cfg.ProducerCPU, "producer-cpu", cfg.ProducerCPU, "pin producer thread to this CPU (-1 = no pin)")
	flag.IntVar(&cfg.ConsumerCPU, "consumer-cpu", cfg.ConsumerCPU, "pin consumer thread to this CPU (-1 = no pin)")
	flag.DurationVar(&cfg.Report, "report", cfg.Report, "progress interval in pipeline mode (0 = off)")
	kindsFlag := flag.String("kinds", "all", "comma separated queue kinds: array,slab,channel,lfring")
	mode := flag.String("mode", "pipeline", "pingpong | burst | pipeline")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := newLogger(*verbose)
	cfg.Logger = log

	if err := run(cfg, *kindsFlag, *mode); err != nil {
		log.Error("benchmark failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg harness.Config, kindsFlag, mode string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	runner, ok := modes[mode]
	if !ok {
		return fmt.Errorf("unknown mode %q", mode)
	}
	kinds, err := queue.ParseKinds(kindsFlag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Benchmarking SPSC queues (%d elements, size=%d, mode=%s)\n", cfg.Iterations, cfg.Size, mode)
	fmt.Printf("Architecture: %s/%s, GOMAXPROCS=%d\n", runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0))
	fmt.Println("─────────────────────────────────────────────────")

	results := make([]harness.Result, 0, len(kinds))
	for _, kind := range kinds {
		q, err := queue.New[int](kind, cfg.Size)
		if err != nil {
			return err
		}
		res, err := runner(ctx, string(kind), q, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		results = append(results, res)
	}

	// Results
	fmt.Printf("\nResults:\n")
	baseline := results[0].NsPerOp()
	for _, res := range results {
		speedup := 0.0
		if ns := res.NsPerOp(); ns > 0 {
			speedup = baseline / ns
		}
		fmt.Printf("  %s  %6.2fx\n", res, speedup)
	}
	fmt.Printf("\nSpeedup is relative to %s.\n", results[0].Name)
	return nil
}
