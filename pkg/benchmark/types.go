package benchmark

import "fmt"

// BenchmarkType represents the benchmark category enum. The category is
// fixed when a benchmark is constructed and alone decides which raw-data
// shape the validator accepts.
type BenchmarkType string

const (
	TypeModel  BenchmarkType = "model"
	TypeMicro  BenchmarkType = "micro"
	TypeDocker BenchmarkType = "docker"
)

func (t BenchmarkType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the recognized categories.
func (t BenchmarkType) IsValid() bool {
	switch t {
	case TypeModel, TypeMicro, TypeDocker:
		return true
	default:
		return false
	}
}

// GetBenchmarkType parses a category name into a BenchmarkType.
func GetBenchmarkType(s string) (BenchmarkType, error) {
	switch s {
	case string(TypeModel):
		return TypeModel, nil
	case string(TypeMicro):
		return TypeMicro, nil
	case string(TypeDocker):
		return TypeDocker, nil
	default:
		return BenchmarkType(s), fmt.Errorf("invalid benchmark type: %s", s)
	}
}

// ReturnCode represents the benchmark status enum.
type ReturnCode string

const (
	ReturnCodeSuccess              ReturnCode = "success"
	ReturnCodeInvalidArgument      ReturnCode = "invalid_argument"
	ReturnCodeInvalidBenchmarkType ReturnCode = "invalid_benchmark_type"
	// ReturnCodeInvalidBenchmarkResult is set when all iterations succeeded
	// but the produced result failed structural validation.
	ReturnCodeInvalidBenchmarkResult ReturnCode = "invalid_benchmark_result"
	// ReturnCodeExecutionFailure is set when a measurement step reports
	// failure without recording a more specific code of its own.
	ReturnCodeExecutionFailure ReturnCode = "benchmark_execution_failure"
)

func (c ReturnCode) String() string {
	return string(c)
}

// GetReturnCode parses a status name into a ReturnCode.
func GetReturnCode(s string) (ReturnCode, error) {
	switch s {
	case string(ReturnCodeSuccess):
		return ReturnCodeSuccess, nil
	case string(ReturnCodeInvalidArgument):
		return ReturnCodeInvalidArgument, nil
	case string(ReturnCodeInvalidBenchmarkType):
		return ReturnCodeInvalidBenchmarkType, nil
	case string(ReturnCodeInvalidBenchmarkResult):
		return ReturnCodeInvalidBenchmarkResult, nil
	case string(ReturnCodeExecutionFailure):
		return ReturnCodeExecutionFailure, nil
	default:
		return ReturnCode(s), fmt.Errorf("invalid return code: %s", s)
	}
}
