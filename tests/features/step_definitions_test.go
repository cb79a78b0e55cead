package features

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cucumber/godog"

	"github.com/polarG/superbenchmark/pkg/benchmark"
)

// scenarioWorkload is a configurable measurement step driven by the Gherkin
// steps: it counts its invocations and can fail at a given iteration or emit
// raw data of the wrong shape.
type scenarioWorkload struct {
	invocations   int
	failAt        int
	numericMicro  bool
	unknownSeen   []string
	lastArguments *benchmark.Arguments
}

func (w *scenarioWorkload) RegisterArguments(_ *benchmark.ArgumentParser) {}

func (w *scenarioWorkload) RunIteration(result *benchmark.Result, args *benchmark.Arguments, runIndex int) error {
	w.invocations++
	w.lastArguments = args
	w.unknownSeen = args.Unknown
	if w.failAt >= 0 && runIndex == w.failAt {
		return errors.New("iteration failed")
	}
	result.AddResult("metric", float64(runIndex))
	if w.numericMicro {
		result.AddRawData("metric", []float64{float64(runIndex)})
	} else {
		switch result.Type {
		case benchmark.TypeMicro:
			result.AddRawData("metric", fmt.Sprintf("run %d", runIndex))
		default:
			result.AddRawData("metric", []float64{float64(runIndex)})
		}
	}
	return nil
}

type scenarioState struct {
	workload  *scenarioWorkload
	benchType string
	params    string
	bench     *benchmark.Benchmark
	succeeded bool
}

func (s *scenarioState) aBenchmarkWithParameters(benchType, params string) error {
	s.benchType = benchType
	s.params = params
	return nil
}

func (s *scenarioState) theStepFailsAtIteration(idx int) error {
	s.workload.failAt = idx
	return nil
}

func (s *scenarioState) theStepRecordsNumericRawData() error {
	s.workload.numericMicro = true
	return nil
}

func (s *scenarioState) theBenchmarkRuns() error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.bench = benchmark.New("scenario", benchmark.BenchmarkType(s.benchType), s.params, s.workload, logger)
	s.succeeded = s.bench.Run()
	return nil
}

func (s *scenarioState) theRunSucceeds() error {
	if !s.succeeded {
		return fmt.Errorf("run failed with return code %s", s.bench.ReturnCode())
	}
	return nil
}

func (s *scenarioState) theRunFailsWithReturnCode(code string) error {
	if s.succeeded {
		return errors.New("run succeeded, expected failure")
	}
	if string(s.bench.ReturnCode()) != code {
		return fmt.Errorf("return code = %s, want %s", s.bench.ReturnCode(), code)
	}
	return nil
}

func (s *scenarioState) theStepRanTimes(count int) error {
	if s.workload.invocations != count {
		return fmt.Errorf("measurement step ran %d times, want %d", s.workload.invocations, count)
	}
	return nil
}

func (s *scenarioState) thereAreNoUnknownArguments() error {
	if len(s.workload.unknownSeen) != 0 {
		return fmt.Errorf("unknown arguments = %v, want none", s.workload.unknownSeen)
	}
	return nil
}

func (s *scenarioState) theUnknownArgumentsAre(expected string) error {
	got := strings.Join(s.workload.unknownSeen, " ")
	if got != expected {
		return fmt.Errorf("unknown arguments = %q, want %q", got, expected)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	s := &scenarioState{workload: &scenarioWorkload{failAt: -1}}

	ctx.Step(`^a "([^"]*)" benchmark with parameters "([^"]*)"$`, s.aBenchmarkWithParameters)
	ctx.Step(`^the measurement step fails at iteration (\d+)$`, s.theStepFailsAtIteration)
	ctx.Step(`^the measurement step records numeric raw data samples$`, s.theStepRecordsNumericRawData)
	ctx.Step(`^the benchmark runs$`, s.theBenchmarkRuns)
	ctx.Step(`^the run succeeds$`, s.theRunSucceeds)
	ctx.Step(`^the run fails with return code "([^"]*)"$`, s.theRunFailsWithReturnCode)
	ctx.Step(`^the measurement step ran (\d+) times$`, s.theStepRanTimes)
	ctx.Step(`^there are no unknown arguments$`, s.thereAreNoUnknownArguments)
	ctx.Step(`^the unknown arguments are "([^"]*)"$`, s.theUnknownArgumentsAre)
}
