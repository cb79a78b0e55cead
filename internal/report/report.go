// Package report formats completed benchmark records into comparison tables
// and persists them as JSON files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/polarG/superbenchmark/pkg/benchmark"
)

// Generate writes a markdown summary table for the given records.
func Generate(w io.Writer, results []*benchmark.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Benchmark | Type | Runs | Return Code | Start | End |")
	fmt.Fprintln(w, "|-----------|------|------|-------------|-------|-----|")

	for _, r := range results {
		fmt.Fprintf(w, "| %s | %s | %d | %s | %s | %s |\n",
			r.Name,
			r.Type,
			r.RunCount,
			r.ReturnCode,
			r.StartTime,
			r.EndTime,
		)
	}

	fmt.Fprintln(w)

	// Summary metrics, one row per metric.
	fmt.Fprintln(w, "| Benchmark | Metric | Values |")
	fmt.Fprintln(w, "|-----------|--------|--------|")

	for _, r := range results {
		for _, metric := range sortedMetrics(r.Summary) {
			fmt.Fprintf(w, "| %s | %s | %s |\n",
				r.Name, metric, formatValues(r.Summary[metric]))
		}
	}

	return nil
}

// GenerateJSON writes the records as indented JSON to w.
func GenerateJSON(w io.Writer, results []*benchmark.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

// Write persists every record as <name>.json under dir, creating dir when
// missing. Records are written whole; a failed benchmark's partial record is
// still worth keeping for inspection.
func Write(dir string, results []*benchmark.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir %s: %w", dir, err)
	}

	for _, r := range results {
		path := filepath.Join(dir, r.Name+".json")
		if err := os.WriteFile(path, []byte(r.ToString()), 0o644); err != nil {
			return fmt.Errorf("write report %s: %w", path, err)
		}
	}

	return nil
}

func sortedMetrics(m map[string]any) []string {
	metrics := make([]string, 0, len(m))
	for metric := range m {
		metrics = append(metrics, metric)
	}
	sort.Strings(metrics)

	return metrics
}

func formatValues(v any) string {
	switch values := v.(type) {
	case []float64:
		parts := make([]string, len(values))
		for i, f := range values {
			parts[i] = fmt.Sprintf("%.3f", f)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
