package benchmark_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/Jeffail/gabs/v2"

	"github.com/polarG/superbenchmark/pkg/benchmark"
)

func TestAddResultAppends(t *testing.T) {
	r := benchmark.NewResult("fake", benchmark.TypeModel, benchmark.ReturnCodeSuccess, 2)
	r.AddResult("latency_ms", 1.5)
	r.AddResult("latency_ms", 2.5)

	got, ok := r.Summary["latency_ms"].([]float64)
	if !ok {
		t.Fatalf("summary value has type %T, want []float64", r.Summary["latency_ms"])
	}
	if !reflect.DeepEqual(got, []float64{1.5, 2.5}) {
		t.Errorf("summary = %v, want [1.5 2.5]", got)
	}
}

func TestAddRawDataAppends(t *testing.T) {
	r := benchmark.NewResult("fake", benchmark.TypeMicro, benchmark.ReturnCodeSuccess, 2)
	r.AddRawData("output", "run 0")
	r.AddRawData("output", "run 1")

	got, ok := r.RawData["output"].([]any)
	if !ok {
		t.Fatalf("raw data value has type %T, want []any", r.RawData["output"])
	}
	if len(got) != 2 || got[0] != "run 0" || got[1] != "run 1" {
		t.Errorf("raw data = %v, want [run 0, run 1]", got)
	}
}

func TestSetTimestampFormat(t *testing.T) {
	r := benchmark.NewResult("fake", benchmark.TypeModel, benchmark.ReturnCodeSuccess, 1)
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	r.SetTimestamp(start, start.Add(3*time.Second))

	if r.StartTime != "2026-08-30 12:00:00" {
		t.Errorf("start time = %q", r.StartTime)
	}
	if r.EndTime != "2026-08-30 12:00:03" {
		t.Errorf("end time = %q", r.EndTime)
	}
}

func TestToStringSerializesWholeRecord(t *testing.T) {
	r := benchmark.NewResult("fake", benchmark.TypeModel, benchmark.ReturnCodeSuccess, 2)
	r.AddResult("latency_ms", 1.5)
	r.AddRawData("latency_ms", []float64{1.5, 2.5})
	r.SetTimestamp(time.Now(), time.Now())

	parsed, err := gabs.ParseJSON([]byte(r.ToString()))
	if err != nil {
		t.Fatalf("serialized record is not valid JSON: %v", err)
	}

	if name, ok := parsed.Path("name").Data().(string); !ok || name != "fake" {
		t.Errorf("name = %v, want fake", parsed.Path("name").Data())
	}
	if typ, ok := parsed.Path("type").Data().(string); !ok || typ != "model" {
		t.Errorf("type = %v, want model", parsed.Path("type").Data())
	}
	if count, ok := parsed.Path("run_count").Data().(float64); !ok || count != 2 {
		t.Errorf("run_count = %v, want 2", parsed.Path("run_count").Data())
	}
	if code, ok := parsed.Path("return_code").Data().(string); !ok || code != "success" {
		t.Errorf("return_code = %v, want success", parsed.Path("return_code").Data())
	}
	if !parsed.Exists("result", "latency_ms") {
		t.Error("summary metric latency_ms missing from serialized record")
	}
	if !parsed.Exists("raw_data", "latency_ms") {
		t.Error("raw data metric latency_ms missing from serialized record")
	}
	values := parsed.Path("result.latency_ms").Children()
	if len(values) != 1 {
		t.Fatalf("result.latency_ms has %d values, want 1", len(values))
	}
	if v, ok := values[0].Data().(float64); !ok || v != 1.5 {
		t.Errorf("result.latency_ms[0] = %v, want 1.5", values[0].Data())
	}
}
