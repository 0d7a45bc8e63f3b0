package reginfer

import (
	"fmt"
	"go/token"

	"github.com/KromDaniel/reginfer/internal/codegen"
)

// GenerateOptions configures Go source generation for an inferred pattern.
type GenerateOptions struct {
	// Examples are the strings to infer the pattern from
	Examples []string

	// Name is the prefix for generated identifiers (e.g., "Fruit" generates "FruitPattern" and "FruitMatchString")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile also writes <OutputFile>_test.go asserting that every example matches
	GenerateTestFile bool

	// Verbose logs inference and generation decisions to stderr
	Verbose bool

	// Logger receives inference and generation logs; it takes precedence over Verbose
	Logger *Logger
}

// Validate checks if the options are valid.
func (o GenerateOptions) Validate() error {
	if len(o.Examples) == 0 {
		return fmt.Errorf("examples cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !token.IsIdentifier(o.Name) || !token.IsExported(o.Name) {
		return fmt.Errorf("name %q is not an exported Go identifier", o.Name)
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a Go identifier", o.Package)
	}
	return nil
}

// Generate infers a pattern from the examples and writes Go code exposing it.
// Examples the inferred pattern does not match under RE2 semantics are logged
// as warnings; the generated test file would fail on them.
func Generate(opts GenerateOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(opts.Verbose)
	}
	result := Infer(opts.Examples, WithLogger(logger))

	matches, err := result.Check()
	if err != nil {
		return nil, fmt.Errorf("inferred pattern does not compile: %w", err)
	}
	for _, m := range matches {
		if !m.Matched {
			logger.Log("Warning: %q does not match %s (RE2 classes are ASCII-only)", m.Example, result.Merged)
		}
	}

	gen := codegen.New(codegen.Config{
		Pattern:          result.Merged,
		Examples:         result.Examples,
		Name:             opts.Name,
		Package:          opts.Package,
		OutputFile:       opts.OutputFile,
		GenerateTestFile: opts.GenerateTestFile,
	}, logger)

	if err := gen.Generate(); err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	return result, nil
}
