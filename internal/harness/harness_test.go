package harness_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/donut/internal/harness"
	"github.com/randomizedcoder/donut/internal/queue"
)

func testConfig(iterations, size int) harness.Config {
	cfg := harness.DefaultConfig()
	cfg.Iterations = iterations
	cfg.Size = size
	return cfg
}

func newQueue(t *testing.T, kind queue.Kind, size int) queue.Queue[int] {
	t.Helper()
	q, err := queue.New[int](kind, size)
	require.NoError(t, err)
	return q
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, harness.DefaultConfig().Validate())

	testCases := []struct {
		name   string
		mutate func(*harness.Config)
	}{
		{"iterations", func(c *harness.Config) { c.Iterations = 0 }},
		{"size", func(c *harness.Config) { c.Size = -1 }},
		{"producer cpu", func(c *harness.Config) { c.ProducerCPU = -2 }},
		{"consumer cpu", func(c *harness.Config) { c.ConsumerCPU = -5 }},
		{"report", func(c *harness.Config) { c.Report = -time.Second }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := harness.DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), harness.ErrInvalidConfig)
		})
	}
}

func TestPingPong(t *testing.T) {
	for _, kind := range queue.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			res, err := harness.PingPong(string(kind), newQueue(t, kind, 16), testConfig(10_000, 16))
			require.NoError(t, err)

			assert.Equal(t, 10_000, res.Ops)
			assert.Zero(t, res.Rejected)
			assert.Zero(t, res.Empty)
			assert.Zero(t, res.Violations)
			assert.Positive(t, res.Elapsed)
		})
	}
}

func TestBurst(t *testing.T) {
	for _, kind := range []queue.Kind{queue.KindArray, queue.KindSlab, queue.KindChannel} {
		t.Run(string(kind), func(t *testing.T) {
			// 1000 is not a multiple of 256: the last burst is partial.
			res, err := harness.Burst(string(kind), newQueue(t, kind, 256), testConfig(1_000, 256))
			require.NoError(t, err)

			assert.Equal(t, 1_000, res.Ops)
			assert.Zero(t, res.Violations)
		})
	}
}

func TestBurst_QueueTooSmall(t *testing.T) {
	q := newQueue(t, queue.KindArray, 4)
	res, err := harness.Burst("array", q, testConfig(100, 8))
	assert.Error(t, err)
	assert.Positive(t, res.Rejected)
}

func TestPipeline(t *testing.T) {
	for _, kind := range queue.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			cfg := testConfig(50_000, 64)
			res, err := harness.Pipeline(context.Background(), string(kind), newQueue(t, kind, 64), cfg)
			require.NoError(t, err)

			assert.Equal(t, 50_000, res.Ops)
			assert.Zero(t, res.Violations, "FIFO violation")
			assert.Equal(t, "pipeline", res.Mode)
		})
	}
}

func TestPipeline_Pinned(t *testing.T) {
	cfg := testConfig(10_000, 16)
	cfg.ProducerCPU = 0
	cfg.ConsumerCPU = 0

	// Pinning failures are logged, not fatal.
	res, err := harness.Pipeline(context.Background(), "array", newQueue(t, queue.KindArray, 16), cfg)
	require.NoError(t, err)
	assert.Equal(t, 10_000, res.Ops)
}

func TestPipeline_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig(1_000_000_000, 16)
	res, err := harness.Pipeline(ctx, "slab", newQueue(t, queue.KindSlab, 16), cfg)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Less(t, res.Ops, cfg.Iterations)
}

func TestPipeline_InvalidConfig(t *testing.T) {
	_, err := harness.Pipeline(context.Background(), "array", newQueue(t, queue.KindArray, 4), harness.Config{})
	assert.ErrorIs(t, err, harness.ErrInvalidConfig)
}

func TestResult(t *testing.T) {
	res := harness.Result{Name: "array", Mode: "pingpong", Ops: 1000, Elapsed: time.Microsecond}
	assert.InDelta(t, 1.0, res.NsPerOp(), 1e-9)
	assert.InDelta(t, 1000.0, res.MOpsPerSec(), 1e-9)
	assert.Contains(t, res.String(), "array")

	var zero harness.Result
	assert.Zero(t, zero.NsPerOp())
	assert.Zero(t, zero.MOpsPerSec())
}

func TestPipeline_Logs(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(1_000, 16)
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	_, err := harness.Pipeline(context.Background(), "channel", newQueue(t, queue.KindChannel, 16), cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "run complete"), out)
	assert.Contains(t, out, "queue=channel")
}
