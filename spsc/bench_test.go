package spsc_test

import (
	"testing"

	"github.com/randomizedcoder/donut/spsc"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkU64 uint64
var sinkBool bool

func BenchmarkArray_PushPop(b *testing.B) {
	prod, cons, _ := spsc.Bounded[uint64](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val uint64
	var ok bool
	for i := 0; i < b.N; i++ {
		prod.Push(uint64(i))
		val, ok = cons.Pop()
	}
	sinkU64 = val
	sinkBool = ok
}

func BenchmarkSlab_PushPop(b *testing.B) {
	prod, cons, _ := spsc.BoundedSlab[uint64](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val uint64
	var ok bool
	for i := 0; i < b.N; i++ {
		prod.Push(uint64(i))
		val, ok = cons.Pop()
	}
	sinkU64 = val
	sinkBool = ok
}

// 256 x 1_000: fill, then drain, a thousand times per iteration.

func benchBurst(b *testing.B, prod *spsc.Producer[uint64], cons *spsc.Consumer[uint64]) {
	b.ReportAllocs()
	b.ResetTimer()

	var val uint64
	for i := 0; i < b.N; i++ {
		for range 1_000 {
			for j := uint64(0); j < 256; j++ {
				prod.Push(j)
			}
			for range 256 {
				val, _ = cons.Pop()
			}
		}
	}
	sinkU64 = val
}

func BenchmarkArray_256x1000(b *testing.B) {
	prod, cons, _ := spsc.Bounded[uint64](256)
	benchBurst(b, prod, cons)
}

func BenchmarkSlab_256x1000(b *testing.B) {
	prod, cons, _ := spsc.BoundedSlab[uint64](256)
	benchBurst(b, prod, cons)
}

// Two-goroutine pipeline: this goroutine produces, a second one consumes.

func benchPipeline(b *testing.B, prod *spsc.Producer[uint64], cons *spsc.Consumer[uint64]) {
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			default:
				cons.Pop()
			}
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for {
			if _, ok := prod.Push(uint64(i)); ok {
				break
			}
		}
	}

	b.StopTimer()
	close(done)
}

func BenchmarkArray_Pipeline(b *testing.B) {
	prod, cons, _ := spsc.Bounded[uint64](1024)
	benchPipeline(b, prod, cons)
}

func BenchmarkSlab_Pipeline(b *testing.B) {
	prod, cons, _ := spsc.BoundedSlab[uint64](1024)
	benchPipeline(b, prod, cons)
}
