// Package benchmark implements the execution lifecycle every benchmark
// follows: argument parsing, repeated invocation of a measurement step,
// wall-clock timestamping, structural validation of the produced result, and
// read-only views over it.
package benchmark

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Workload is the measurement step of a benchmark, the only extension point
// of the lifecycle. RunIteration is invoked once per configured run with the
// 0-based run index and is expected to extend the result's summary and raw
// data for whichever metrics it measures; a returned error aborts the
// remaining iterations.
type Workload interface {
	// RegisterArguments lets the workload declare additional options on the
	// parser before any parsing happens.
	RegisterArguments(parser *ArgumentParser)
	RunIteration(result *Result, args *Arguments, runIndex int) error
}

// Benchmark orchestrates one workload through the fixed lifecycle. It owns
// the result record exclusively; nothing is shared between instances.
type Benchmark struct {
	name      string
	benchType BenchmarkType
	argv      []string
	parser    *ArgumentParser
	args      *Arguments
	workload  Workload
	logger    *slog.Logger

	currRunIndex int
	result       *Result
}

// New creates a benchmark from its identity, its raw parameter string and
// its measurement step. The parameter string is split on spaces with empty
// tokens discarded. The workload's extra options are registered immediately
// so ConfigurableSettings is complete before Run.
func New(name string, benchType BenchmarkType, parameters string, workload Workload, logger *slog.Logger) *Benchmark {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Benchmark{
		name:      name,
		benchType: benchType,
		argv:      SplitParameters(parameters),
		parser:    NewArgumentParser(name),
		workload:  workload,
		logger: logger.With(
			slog.String("benchmark", name),
			slog.String("run_id", uuid.NewString()),
		),
	}
	b.workload.RegisterArguments(b.parser)
	return b
}

// preprocess parses the arguments and constructs the result record. The
// record exists after preprocess returns, even on failure, so the status
// is always inspectable.
func (b *Benchmark) preprocess() bool {
	args, err := b.parser.Parse(b.argv)
	if err != nil {
		b.logger.Error("Invalid benchmark arguments", "error", err.Error())
		b.result = NewResult(b.name, b.benchType, ReturnCodeInvalidArgument, 0)
		return false
	}
	b.args = args

	if len(args.Unknown) > 0 {
		b.logger.Warn("Benchmark has unknown arguments", "unknown", strings.Join(args.Unknown, " "))
	}

	b.result = NewResult(b.name, b.benchType, ReturnCodeSuccess, args.RunCount)

	if !b.benchType.IsValid() {
		b.logger.Error("Invalid benchmark type", "type", b.benchType.String())
		b.result.SetReturnCode(ReturnCodeInvalidBenchmarkType)
		return false
	}

	return true
}

// Run launches the benchmark: parse, iterate, timestamp, validate. It
// reports overall success as a boolean; the cause of a failure is carried by
// the return code and the log output. No failure escapes as a panic.
func (b *Benchmark) Run() bool {
	if !b.preprocess() {
		return false
	}

	start := time.Now()
	for b.currRunIndex = 0; b.currRunIndex < b.args.RunCount; b.currRunIndex++ {
		if err := b.workload.RunIteration(b.result, b.args, b.currRunIndex); err != nil {
			b.logger.Error("Benchmark iteration failed",
				slog.Int("run_index", b.currRunIndex),
				slog.String("error", err.Error()),
			)
			if b.result.ReturnCode == ReturnCodeSuccess {
				b.result.SetReturnCode(CodeOf(err))
			}
			return false
		}
	}
	b.result.SetTimestamp(start, time.Now())

	if !b.checkResultFormat() {
		return false
	}

	b.logger.Info("Benchmark completed",
		slog.Int("run_count", b.result.RunCount),
		slog.String("start_time", b.result.StartTime),
		slog.String("end_time", b.result.EndTime),
	)
	return true
}

// ConfigurableSettings renders every declared option, including the ones the
// workload contributed.
func (b *Benchmark) ConfigurableSettings() string {
	return b.parser.ConfigurableSettings()
}

// The accessors below are pure reads over the owned result record; they
// return zero values before the record exists.

func (b *Benchmark) Name() string {
	if b.result == nil {
		return ""
	}
	return b.result.Name
}

func (b *Benchmark) Type() BenchmarkType {
	if b.result == nil {
		return ""
	}
	return b.result.Type
}

func (b *Benchmark) RunCount() int {
	if b.result == nil {
		return 0
	}
	return b.result.RunCount
}

func (b *Benchmark) ReturnCode() ReturnCode {
	if b.result == nil {
		return ""
	}
	return b.result.ReturnCode
}

func (b *Benchmark) StartTime() string {
	if b.result == nil {
		return ""
	}
	return b.result.StartTime
}

func (b *Benchmark) EndTime() string {
	if b.result == nil {
		return ""
	}
	return b.result.EndTime
}

func (b *Benchmark) RawData() map[string]any {
	if b.result == nil {
		return nil
	}
	return b.result.RawData
}

func (b *Benchmark) Summary() map[string]any {
	if b.result == nil {
		return nil
	}
	return b.result.Summary
}

// SerializedResult returns the whole record rendered as a JSON string.
func (b *Benchmark) SerializedResult() string {
	if b.result == nil {
		return ""
	}
	return b.result.ToString()
}

// Result exposes the owned record for downstream consumers such as report
// writers.
func (b *Benchmark) Result() *Result {
	return b.result
}
