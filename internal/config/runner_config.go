package config

// RunnerConfig describes a batch of benchmarks to execute and where reports
// end up.
type RunnerConfig struct {
	OutputDir  string           `mapstructure:"output_dir,omitempty"`
	Benchmarks []BenchmarkEntry `mapstructure:"benchmarks" validate:"dive"`
}

// BenchmarkEntry is one benchmark in the runner config: its name, its
// category, and the raw parameter string handed to the argument parser.
type BenchmarkEntry struct {
	Name       string `mapstructure:"name" validate:"required"`
	Type       string `mapstructure:"type" validate:"required,oneof=model micro docker"`
	Parameters string `mapstructure:"parameters,omitempty"`
}
