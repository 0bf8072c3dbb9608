package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("harness: invalid config")

// Default configuration values.
const (
	DefaultIterations = 10_000_000
	DefaultSize       = 1024
	DefaultReport     = time.Second

	// NoPin leaves a goroutine's thread unpinned.
	NoPin = -1
)

// Config controls a harness run.
type Config struct {
	// Iterations is the number of elements moved through the queue.
	Iterations int

	// Size is the queue capacity the runs were built with. Burst uses it as
	// the fill depth.
	Size int

	// ProducerCPU and ConsumerCPU pin the pipeline goroutines' threads.
	// NoPin disables pinning for that side.
	ProducerCPU int
	ConsumerCPU int

	// Report is the progress logging interval of Pipeline; zero disables it.
	Report time.Duration

	// Logger receives progress (Debug) and summaries (Info). Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with default values and no pinning.
func DefaultConfig() Config {
	return Config{
		Iterations:  DefaultIterations,
		Size:        DefaultSize,
		ProducerCPU: NoPin,
		ConsumerCPU: NoPin,
		Report:      DefaultReport,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.ProducerCPU < NoPin || c.ConsumerCPU < NoPin {
		return fmt.Errorf("%w: cpu must be >= %d", ErrInvalidConfig, NoPin)
	}
	if c.Report < 0 {
		return fmt.Errorf("%w: report interval must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
