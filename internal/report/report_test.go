package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/polarG/superbenchmark/internal/report"
	"github.com/polarG/superbenchmark/pkg/benchmark"
)

func sampleResults() []*benchmark.Result {
	r := benchmark.NewResult("gemm", benchmark.TypeModel, benchmark.ReturnCodeSuccess, 2)
	r.AddResult("avg_latency_ms", 1.5)
	r.AddResult("avg_latency_ms", 2.0)
	r.SetTimestamp(time.Now(), time.Now())

	failed := benchmark.NewResult("digest", benchmark.TypeMicro, benchmark.ReturnCodeInvalidBenchmarkResult, 1)

	return []*benchmark.Result{r, failed}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Generate(&buf, sampleResults()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"## Benchmark Results",
		"| gemm | model | 2 | success |",
		"| digest | micro | 1 | invalid_benchmark_result |",
		"| gemm | avg_latency_ms | 1.500, 2.000 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Generate(&buf, nil); err == nil {
		t.Fatal("Generate succeeded with no results")
	}
}

func TestGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := report.GenerateJSON(&buf, sampleResults()); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("decoded %d records, want 2", len(decoded))
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	if err := report.Write(dir, sampleResults()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	for _, name := range []string{"gemm.json", "digest.json"} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Errorf("%s is not valid JSON: %v", name, err)
		}
	}
}
