package pattern

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KromDaniel/reginfer/internal/charclass"
)

// ParseError reports a position in a pattern that is not a run.
type ParseError struct {
	Pattern string
	Offset  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pattern %q: expected run at offset %d", e.Pattern, e.Offset)
}

// ParseRun parses p as exactly one run: a base rendering optionally followed
// by {N}. A missing suffix means a count of 1.
func ParseRun(p string) (Run, bool) {
	run, end, ok := scanRun(p, 0)
	if !ok || end != len(p) {
		return Run{}, false
	}
	return run, true
}

// ParseRuns decodes a whole per-string pattern back into its runs. The empty
// pattern decodes to no runs.
func ParseRuns(p string) ([]Run, error) {
	var runs []Run
	for i := 0; i < len(p); {
		run, end, ok := scanRun(p, i)
		if !ok {
			return nil, &ParseError{Pattern: p, Offset: i}
		}
		runs = append(runs, run)
		i = end
	}
	return runs, nil
}

// Length returns the number of characters described by runs.
func Length(runs []Run) int {
	n := 0
	for _, r := range runs {
		n += r.Count
	}
	return n
}

// scanRun reads one run starting at p[i:] and returns it together with the
// offset just past it.
func scanRun(p string, i int) (Run, int, bool) {
	base, end, ok := scanBase(p, i)
	if !ok {
		return Run{}, 0, false
	}

	count, end, ok := scanCount(p, end)
	if !ok {
		return Run{}, 0, false
	}
	return Run{Base: base, Count: count}, end, true
}

func scanBase(p string, i int) (string, int, bool) {
	rest := p[i:]
	if rest == "" {
		return "", 0, false
	}

	for _, b := range charclass.Bases() {
		if strings.HasPrefix(rest, b) {
			return b, i + len(b), true
		}
	}

	r, size := utf8.DecodeRuneInString(rest)
	if r == '\\' {
		next, n := utf8.DecodeRuneInString(rest[size:])
		if n == 0 || (next == utf8.RuneError && n == 1) {
			return "", 0, false
		}
		return rest[:size+n], i + size + n, true
	}

	if r == utf8.RuneError && size == 1 {
		return "", 0, false
	}
	if !charclass.IsPlain(r) {
		return "", 0, false
	}
	return rest[:size], i + size, true
}

// scanCount reads an optional {N} quantifier at p[i:].
func scanCount(p string, i int) (int, int, bool) {
	if i >= len(p) || p[i] != '{' {
		return 1, i, true
	}

	j := i + 1
	for j < len(p) && p[j] >= '0' && p[j] <= '9' {
		j++
	}
	if j == i+1 || j >= len(p) || p[j] != '}' {
		return 0, 0, false
	}

	n, err := strconv.Atoi(p[i+1 : j])
	if err != nil {
		return 0, 0, false
	}
	return n, j + 1, true
}
