// Package gemm provides a synthetic dense matrix-multiply workload for
// model-category benchmarks. Every run performs a fixed number of GEMM steps
// and records the per-step latencies as raw data.
package gemm

import (
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/polarG/superbenchmark/pkg/benchmark"
)

type Workload struct{}

func New() *Workload {
	return &Workload{}
}

func (w *Workload) RegisterArguments(parser *benchmark.ArgumentParser) {
	flags := parser.Flags()
	flags.Int("size", 64, "The matrix dimension of one GEMM step.")
	flags.Int("steps", 8, "The number of GEMM steps per run.")
}

func (w *Workload) RunIteration(result *benchmark.Result, args *benchmark.Arguments, runIndex int) error {
	size, err := args.GetInt("size")
	if err != nil {
		return err
	}
	steps, err := args.GetInt("steps")
	if err != nil {
		return err
	}
	if size <= 0 || steps <= 0 {
		return fmt.Errorf("gemm: size and steps must be positive, got size=%d steps=%d", size, steps)
	}

	// seeded per run index so repeated runs stay deterministic
	rng := mrand.New(mrand.NewSource(int64(runIndex) + 1))
	a := randomMatrix(rng, size)
	b := randomMatrix(rng, size)

	latencies := make([]float64, 0, steps)
	var totalMs float64
	for s := 0; s < steps; s++ {
		start := time.Now()
		multiply(a, b, size)
		elapsed := float64(time.Since(start).Nanoseconds()) / 1e6
		latencies = append(latencies, elapsed)
		totalMs += elapsed
	}

	result.AddRawData("step_latency_ms", latencies)
	result.AddResult("avg_latency_ms", totalMs/float64(steps))
	if totalMs > 0 {
		result.AddResult("throughput_steps_per_sec", float64(steps)/(totalMs/1000))
	}
	return nil
}

func randomMatrix(rng *mrand.Rand, size int) []float64 {
	m := make([]float64, size*size)
	for i := range m {
		m[i] = rng.Float64()
	}
	return m
}

func multiply(a, b []float64, size int) []float64 {
	c := make([]float64, size*size)
	for i := 0; i < size; i++ {
		for k := 0; k < size; k++ {
			aik := a[i*size+k]
			for j := 0; j < size; j++ {
				c[i*size+j] += aik * b[k*size+j]
			}
		}
	}
	return c
}
