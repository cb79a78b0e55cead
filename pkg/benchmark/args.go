package benchmark

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

// Arguments holds the parsed benchmark options. Options contributed by a
// workload are reachable through the typed getters; tokens that matched no
// declared option are surfaced in Unknown and never abort parsing.
type Arguments struct {
	RunCount int `validate:"gte=1"`
	Duration int `validate:"gte=0"`
	Unknown  []string

	flags *pflag.FlagSet
}

func (a *Arguments) GetInt(name string) (int, error) {
	return a.flags.GetInt(name)
}

func (a *Arguments) GetString(name string) (string, error) {
	return a.flags.GetString(name)
}

func (a *Arguments) GetFloat64(name string) (float64, error) {
	return a.flags.GetFloat64(name)
}

func (a *Arguments) GetBool(name string) (bool, error) {
	return a.flags.GetBool(name)
}

// ArgumentParser declares the options a benchmark recognizes and turns a
// pre-split argument list into Arguments. Workloads contribute their own
// options through Flags before parsing happens.
type ArgumentParser struct {
	flags    *pflag.FlagSet
	validate *validator.Validate
}

func NewArgumentParser(name string) *ArgumentParser {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Int("run_count", 1, "The run count of benchmark.")
	flags.Int("duration", 0, "The elapsed time of benchmark in seconds.")
	return &ArgumentParser{
		flags:    flags,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Flags exposes the underlying flag set so workloads can declare additional
// options.
func (p *ArgumentParser) Flags() *pflag.FlagSet {
	return p.flags
}

// ConfigurableSettings renders all declared options (name, type, default,
// help text) for help surfaces. Metadata only, no behavior.
func (p *ArgumentParser) ConfigurableSettings() string {
	return strings.TrimSpace(p.flags.FlagUsages())
}

// SplitParameters splits a raw parameter string on spaces, discarding empty
// tokens.
func SplitParameters(parameters string) []string {
	var argv []string
	for _, tok := range strings.Split(parameters, " ") {
		if tok != "" {
			argv = append(argv, tok)
		}
	}
	return argv
}

// Parse parses the given argument list. Tokens matching no declared option
// are collected in Arguments.Unknown instead of failing the parse; a value
// that cannot be converted to its declared type, or that violates an option's
// range, fails the whole list with an invalid-argument error.
func (p *ArgumentParser) Parse(argv []string) (*Arguments, error) {
	known, unknown := p.splitKnown(argv)

	if err := p.flags.Parse(known); err != nil {
		return nil, newError(ReturnCodeInvalidArgument, "parse arguments: %v", err)
	}

	runCount, err := p.flags.GetInt("run_count")
	if err != nil {
		return nil, newError(ReturnCodeInvalidArgument, "parse arguments: %v", err)
	}
	duration, err := p.flags.GetInt("duration")
	if err != nil {
		return nil, newError(ReturnCodeInvalidArgument, "parse arguments: %v", err)
	}

	args := &Arguments{
		RunCount: runCount,
		Duration: duration,
		Unknown:  unknown,
		flags:    p.flags,
	}

	if err := p.validate.Struct(args); err != nil {
		return nil, newError(ReturnCodeInvalidArgument, "validate arguments: %v", err)
	}

	return args, nil
}

// splitKnown partitions argv into tokens destined for the flag set and
// tokens no declared option claims. A known non-boolean option written
// without "=" consumes the following token as its value.
func (p *ArgumentParser) splitKnown(argv []string) (known, unknown []string) {
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		if !strings.HasPrefix(tok, "--") {
			unknown = append(unknown, tok)
			continue
		}

		name := strings.TrimPrefix(tok, "--")
		if eq := strings.Index(name, "="); eq >= 0 {
			name = name[:eq]
		}

		flag := p.flags.Lookup(name)
		if flag == nil {
			unknown = append(unknown, tok)
			continue
		}

		known = append(known, tok)
		if !strings.Contains(tok, "=") && flag.NoOptDefVal == "" && i+1 < len(argv) {
			i++
			known = append(known, argv[i])
		}
	}
	return known, unknown
}
