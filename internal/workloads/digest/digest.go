// Package digest provides a SHA-256 hashing workload for micro-category
// benchmarks. Every run hashes a buffer repeatedly and records the raw
// textual output line as raw data, the way a wrapped external tool's stdout
// would be captured.
package digest

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/polarG/superbenchmark/pkg/benchmark"
)

type Workload struct{}

func New() *Workload {
	return &Workload{}
}

func (w *Workload) RegisterArguments(parser *benchmark.ArgumentParser) {
	flags := parser.Flags()
	flags.Int("bytes", 1<<20, "The buffer size in bytes hashed per round.")
	flags.Int("rounds", 32, "The number of hashing rounds per run.")
}

func (w *Workload) RunIteration(result *benchmark.Result, args *benchmark.Arguments, runIndex int) error {
	size, err := args.GetInt("bytes")
	if err != nil {
		return err
	}
	rounds, err := args.GetInt("rounds")
	if err != nil {
		return err
	}
	if size <= 0 || rounds <= 0 {
		return fmt.Errorf("digest: bytes and rounds must be positive, got bytes=%d rounds=%d", size, rounds)
	}

	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(i)
	}

	// duration, when set, caps how long this run may hash
	var deadline time.Time
	if args.Duration > 0 {
		deadline = time.Now().Add(time.Duration(args.Duration) * time.Second)
	}

	start := time.Now()
	hashed := 0
	for r := 0; r < rounds; r++ {
		sum := sha256.Sum256(buf)
		buf[0] = sum[0]
		hashed += size
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}
	elapsed := time.Since(start)

	elapsedMs := float64(elapsed.Nanoseconds()) / 1e6
	mbps := 0.0
	if elapsed > 0 {
		mbps = float64(hashed) / (1 << 20) / elapsed.Seconds()
	}

	result.AddRawData("output", fmt.Sprintf(
		"run %d: hashed %d bytes in %.3f ms (%.2f MB/s)",
		runIndex, hashed, elapsedMs, mbps,
	))
	result.AddResult("throughput_mb_per_sec", mbps)
	result.AddResult("elapsed_ms", elapsedMs)
	return nil
}
