package benchmark

import (
	"fmt"
	"log/slog"
	"reflect"
)

// checkResultFormat runs the three structural checks over the result record:
// the record kind itself, the summary shape, and the category-dependent raw
// data shape. Any violation downgrades the return code to
// invalid_benchmark_result; the record is kept for inspection. Content is
// never inspected, only shape; a record with no metrics at all is valid.
func (b *Benchmark) checkResultFormat() bool {
	if !b.checkResultType() {
		return false
	}
	if !b.checkSummarizedResult() || !b.checkRawData() {
		b.result.SetReturnCode(ReturnCodeInvalidBenchmarkResult)
		return false
	}
	return true
}

// checkResultType guards against the measurement step discarding the record.
func (b *Benchmark) checkResultType() bool {
	if b.result == nil {
		b.logger.Error("Invalid benchmark result type", slog.String("got", "nil"))
		return false
	}
	return true
}

// checkSummarizedResult verifies every summary metric holds an ordered
// sequence of numbers.
func (b *Benchmark) checkSummarizedResult() bool {
	for metric, value := range b.result.Summary {
		if !isNumericSequence(value) {
			b.logger.Error("Invalid summarized result",
				slog.String("metric", metric),
				slog.String("expect", "[]number"),
				slog.String("got", typeName(value)),
			)
			return false
		}
	}
	return true
}

// checkRawData verifies every raw-data metric holds an ordered sequence of
// per-run samples: nested numeric sequences for model and docker benchmarks,
// raw output strings for micro benchmarks.
func (b *Benchmark) checkRawData() bool {
	for metric, value := range b.result.RawData {
		runs, valid := asSequence(value)
		if valid {
			for i := 0; i < runs.Len(); i++ {
				sample := runs.Index(i).Interface()
				switch b.benchType {
				case TypeModel, TypeDocker:
					valid = isNumericSequence(sample)
				case TypeMicro:
					_, valid = sample.(string)
				}
				if !valid {
					break
				}
			}
		}
		if !valid {
			expect := "[][]number"
			if b.benchType == TypeMicro {
				expect = "[]string"
			}
			b.logger.Error("Invalid raw data",
				slog.String("metric", metric),
				slog.String("expect", expect),
				slog.String("got", typeName(value)),
			)
			return false
		}
	}
	return true
}

// asSequence reports whether v is an ordered sequence, returning its
// reflected value for element walks. The walk is reflective because metric
// values enter the record as any from workload code.
func asSequence(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return rv, false
	}
	kind := rv.Kind()
	return rv, kind == reflect.Slice || kind == reflect.Array
}

func isNumericSequence(v any) bool {
	rv, ok := asSequence(v)
	if !ok {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !isNumber(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func isNumber(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
