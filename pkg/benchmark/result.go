package benchmark

import (
	"encoding/json"
	"time"
)

// TimestampFormat is the wall-clock rendering used for the start and end
// timestamps of a run.
const TimestampFormat = "2006-01-02 15:04:05"

// Result is the container a lifecycle produces: the benchmark identity, the
// status code, the configured run count, and the measured data. Summary maps
// a metric name to an ordered sequence of numbers; RawData maps a metric
// name to per-run samples whose shape depends on the benchmark category.
// Both maps are mutated by the measurement step while the lifecycle runs and
// structurally validated afterwards.
type Result struct {
	Name       string         `json:"name"`
	Type       BenchmarkType  `json:"type"`
	RunCount   int            `json:"run_count"`
	ReturnCode ReturnCode     `json:"return_code"`
	StartTime  string         `json:"start_time"`
	EndTime    string         `json:"end_time"`
	RawData    map[string]any `json:"raw_data"`
	Summary    map[string]any `json:"result"`
}

// NewResult creates a result container for one lifecycle invocation.
func NewResult(name string, benchType BenchmarkType, code ReturnCode, runCount int) *Result {
	return &Result{
		Name:       name,
		Type:       benchType,
		RunCount:   runCount,
		ReturnCode: code,
		RawData:    make(map[string]any),
		Summary:    make(map[string]any),
	}
}

// AddResult appends a summarized value to the named metric.
func (r *Result) AddResult(metric string, value float64) {
	seq, _ := r.Summary[metric].([]float64)
	r.Summary[metric] = append(seq, value)
}

// AddRawData appends one per-run sample to the named metric. For model and
// docker benchmarks the sample must be a numeric sequence, for micro
// benchmarks a raw output string; the post-run validation enforces this.
func (r *Result) AddRawData(metric string, sample any) {
	seq, _ := r.RawData[metric].([]any)
	r.RawData[metric] = append(seq, sample)
}

func (r *Result) SetReturnCode(code ReturnCode) {
	r.ReturnCode = code
}

// SetTimestamp records the wall-clock boundaries of the run loop.
func (r *Result) SetTimestamp(start, end time.Time) {
	r.StartTime = start.UTC().Format(TimestampFormat)
	r.EndTime = end.UTC().Format(TimestampFormat)
}

// ToString serializes the whole record to a JSON string.
func (r *Result) ToString() string {
	b, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return string(b)
}
