// Package reginfer infers compact regular expressions from example strings.
//
// Each example is reduced to a run-length encoded sequence of character
// classes ("apple" becomes [a-z]{5}), and a batch of such patterns is merged
// into one anchored alternation where single-class patterns collapse into a
// length range ([a-z]{5}, [a-z]{7} become [a-z]{5,7}).
package reginfer

import (
	"fmt"

	"github.com/KromDaniel/reginfer/internal/charclass"
	"github.com/KromDaniel/reginfer/internal/engine"
	"github.com/KromDaniel/reginfer/internal/logging"
	"github.com/KromDaniel/reginfer/internal/pattern"
)

// Run is one (class rendering, count) pair of a per-string pattern.
type Run = pattern.Run

// Regexp is a compiled inferred pattern.
type Regexp = engine.Regexp

// Logger traces inference decisions when verbose output is enabled.
type Logger = logging.Logger

// NewLogger creates a logger writing to stderr.
func NewLogger(enabled bool) *Logger {
	return logging.New(enabled)
}

// CharType returns the class rendering for a single character.
func CharType(r rune) string {
	return charclass.Classify(r).String()
}

// StringToRegex returns the run-length encoded class pattern of s.
func StringToRegex(s string) string {
	return pattern.Build(s)
}

// SlidingWindowRegex returns one pattern per input, in input order.
func SlidingWindowRegex(inputs []string) []string {
	return pattern.BuildAll(inputs)
}

// MergeRegexPatterns merges per-string patterns into "^alt1|alt2|...$".
// Patterns that are not a single run are passed through unchanged after the
// merged groups.
func MergeRegexPatterns(patterns []string) string {
	return pattern.Merge(patterns)
}

type config struct {
	logger *logging.Logger
}

// Option configures Infer.
type Option func(*config)

// WithVerbose enables logging of inference decisions to stderr.
func WithVerbose(verbose bool) Option {
	return func(c *config) {
		c.logger = logging.New(verbose)
	}
}

// WithLogger sets the logger used to trace inference decisions.
func WithLogger(l *Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Result holds every stage of an inference run.
type Result struct {
	Examples []string
	Patterns []string
	Merged   string
}

// Infer runs the whole pipeline over examples.
func Infer(examples []string, opts ...Option) *Result {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger

	log.Section("Per-String Patterns")
	patterns := pattern.BuildAll(examples)
	for i, p := range patterns {
		log.Log("%q -> %s", examples[i], p)
	}

	log.Section("Merge")
	m := pattern.NewMerger()
	for _, p := range patterns {
		m.Add(p)
	}
	for _, g := range m.Groups() {
		log.Log("group %s: lengths %v -> %s", g.Base, g.Lengths, g.Render())
	}
	for _, p := range m.Leftovers() {
		log.Log("leftover: %s", p)
	}

	merged := m.String()
	log.Log("Merged: %s", merged)

	return &Result{
		Examples: append([]string(nil), examples...),
		Patterns: patterns,
		Merged:   merged,
	}
}

// Compile compiles the merged pattern.
func (r *Result) Compile() (*Regexp, error) {
	return engine.Compile(r.Merged)
}

// Compile compiles a user-supplied pattern. Patterns using lookaround,
// backreferences or atomic groups run on a PCRE-compatible engine; everything
// else runs on an RE2-compatible one.
func Compile(pattern string) (*Regexp, error) {
	return engine.Compile(pattern)
}

// Explanation breaks one example down into its runs.
type Explanation struct {
	Example string
	Pattern string
	Runs    []Run
}

// Explain decodes every per-string pattern back into its runs.
func (r *Result) Explain() ([]Explanation, error) {
	out := make([]Explanation, len(r.Patterns))
	for i, p := range r.Patterns {
		runs, err := pattern.ParseRuns(p)
		if err != nil {
			return nil, fmt.Errorf("failed to explain %q: %w", r.Examples[i], err)
		}
		out[i] = Explanation{Example: r.Examples[i], Pattern: p, Runs: runs}
	}
	return out, nil
}

// Match reports whether a pattern matches one example.
type Match struct {
	Example string
	Matched bool
}

// Check matches every example against the compiled merged pattern.
//
// The merged pattern runs with RE2 semantics, where \d, \s and [a-z] only
// cover ASCII. Examples containing non-ASCII letters or digits are classified
// into those classes but are reported as not matching.
func (r *Result) Check() ([]Match, error) {
	re, err := r.Compile()
	if err != nil {
		return nil, err
	}
	return r.CheckAgainst(re), nil
}

// CheckAgainst matches every example against re.
func (r *Result) CheckAgainst(re *Regexp) []Match {
	out := make([]Match, len(r.Examples))
	for i, e := range r.Examples {
		out[i] = Match{Example: e, Matched: re.MatchString(e)}
	}
	return out
}
