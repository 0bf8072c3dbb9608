// Package harness measures queues through the non-blocking queue.Queue
// contract only, so every implementation is driven by identical loops.
//
// Three shapes are provided:
//   - PingPong: one goroutine, push then pop, N times
//   - Burst: one goroutine, fill Size then drain Size, until N elements
//   - Pipeline: a producer and a consumer goroutine, each on its own
//     (optionally pinned) OS thread, spinning on full/empty
package harness

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/randomizedcoder/donut/internal/queue"
)

// Result summarises one run.
type Result struct {
	Name    string
	Mode    string
	Ops     int
	Elapsed time.Duration

	// Rejected counts pushes refused because the queue was full.
	Rejected uint64
	// Empty counts pops that found the queue empty.
	Empty uint64
	// Violations counts elements that arrived out of order.
	Violations int
}

// NsPerOp returns the mean time per element.
func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}

// MOpsPerSec returns the throughput in millions of elements per second.
func (r Result) MOpsPerSec() float64 {
	ns := r.NsPerOp()
	if ns == 0 {
		return 0
	}
	return 1000 / ns
}

func (r Result) String() string {
	return fmt.Sprintf("%-10s %-9s %12v  %8.2f ns/op  %8.2f M/s  rejected=%d empty=%d violations=%d",
		r.Name, r.Mode, r.Elapsed, r.NsPerOp(), r.MOpsPerSec(), r.Rejected, r.Empty, r.Violations)
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("queue", r.Name),
		slog.String("mode", r.Mode),
		slog.Int("ops", r.Ops),
		slog.Duration("elapsed", r.Elapsed),
		slog.Float64("ns_per_op", r.NsPerOp()),
		slog.Uint64("rejected", r.Rejected),
		slog.Uint64("empty", r.Empty),
		slog.Int("violations", r.Violations),
	)
}

// PingPong pushes and immediately pops Iterations elements on the calling
// goroutine.
func PingPong(name string, q queue.Queue[int], cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Name: name, Mode: "pingpong", Ops: cfg.Iterations}

	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		if !q.Push(i) {
			res.Rejected++
		}
		v, ok := q.Pop()
		if !ok {
			res.Empty++
			continue
		}
		if v != i {
			res.Violations++
		}
	}
	res.Elapsed = time.Since(start)

	cfg.logger().Info("run complete", slog.Any("result", res))
	return res, nil
}

// Burst fills the queue with Size elements and drains it again until
// Iterations elements have passed through.
func Burst(name string, q queue.Queue[int], cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Name: name, Mode: "burst"}

	start := time.Now()
	next, expected := 0, 0
	for next < cfg.Iterations {
		batch := min(cfg.Size, cfg.Iterations-next)
		for range batch {
			if !q.Push(next) {
				res.Rejected++
				break
			}
			next++
		}
		for expected < next {
			v, ok := q.Pop()
			if !ok {
				res.Empty++
				break
			}
			if v != expected {
				res.Violations++
			}
			expected++
		}
		if res.Rejected > 0 || res.Empty > 0 {
			// A queue smaller than Size: the run is not comparable.
			break
		}
	}
	res.Elapsed = time.Since(start)
	res.Ops = expected

	if res.Rejected > 0 || res.Empty > 0 {
		return res, fmt.Errorf("harness: %s cannot hold a burst of %d", name, cfg.Size)
	}

	cfg.logger().Info("run complete", slog.Any("result", res))
	return res, nil
}

// Pipeline moves Iterations elements from a producer goroutine to a
// consumer goroutine. Each side locks its OS thread and is pinned when
// configured. Cancelling ctx stops both sides and returns the partial
// result with ctx.Err().
func Pipeline(ctx context.Context, name string, q queue.Queue[int], cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	log := cfg.logger().With(slog.String("queue", name))

	var stop stopFlag
	detach := stop.watch(ctx)
	defer detach()

	var (
		wg                  sync.WaitGroup
		rejected, empty     uint64
		received, violation int
		prodErr, consErr    error
	)
	ready := make(chan struct{})

	wg.Add(2)

	// Producer (single goroutine - SPSC contract)
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		prodErr = pin(cfg.ProducerCPU)

		<-ready
		for i := 0; i < cfg.Iterations; i++ {
			for !q.Push(i) {
				rejected++
				if stop.Done() {
					return
				}
			}
		}
	}()

	// Consumer (single goroutine - SPSC contract)
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		consErr = pin(cfg.ConsumerCPU)

		tick := newProgress(cfg.Report)
		expected := 0

		<-ready
		for received < cfg.Iterations {
			v, ok := q.Pop()
			if !ok {
				empty++
				if stop.Done() {
					return
				}
				continue
			}
			if v != expected {
				violation++
				expected = v
			}
			expected++
			received++

			if tick.Tick() {
				log.Debug("progress", slog.Int("received", received), slog.Int("total", cfg.Iterations))
			}
		}
	}()

	start := time.Now()
	close(ready)
	wg.Wait()
	elapsed := time.Since(start)

	res := Result{
		Name:       name,
		Mode:       "pipeline",
		Ops:        received,
		Elapsed:    elapsed,
		Rejected:   rejected,
		Empty:      empty,
		Violations: violation,
	}

	if err := ctx.Err(); err != nil && received < cfg.Iterations {
		log.Warn("run cancelled", slog.Int("received", received))
		return res, err
	}
	for _, err := range []error{prodErr, consErr} {
		if err != nil {
			// Pinning is best effort; the numbers are still valid.
			log.Warn("thread pinning failed", slog.Any("error", err))
		}
	}

	log.Info("run complete", slog.Any("result", res))
	return res, nil
}
