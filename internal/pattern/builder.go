// Package pattern builds run-length encoded character-class patterns from
// example strings and merges batches of them into a single alternation.
package pattern

import (
	"strconv"
	"strings"

	"github.com/KromDaniel/reginfer/internal/charclass"
)

// Run is a maximal repetition of one token rendering.
type Run struct {
	Base  string
	Count int
}

// String renders the run as base, or base{count} when count > 1.
func (r Run) String() string {
	if r.Count > 1 {
		return r.Base + "{" + strconv.Itoa(r.Count) + "}"
	}
	return r.Base
}

// Runs returns the run-length encoding of the class renderings of s, left to
// right. Runs are compared by rendering, so two different literal characters
// never share a run.
func Runs(s string) []Run {
	var runs []Run
	for _, r := range s {
		base := charclass.Classify(r).String()
		if n := len(runs); n > 0 && runs[n-1].Base == base {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, Run{Base: base, Count: 1})
	}
	return runs
}

// Build returns the per-string pattern for s. The empty string yields the
// empty pattern.
func Build(s string) string {
	var sb strings.Builder
	for _, run := range Runs(s) {
		sb.WriteString(run.String())
	}
	return sb.String()
}

// BuildAll applies Build to every input, preserving order and count.
func BuildAll(inputs []string) []string {
	patterns := make([]string, 0, len(inputs))
	for _, s := range inputs {
		patterns = append(patterns, Build(s))
	}
	return patterns
}
