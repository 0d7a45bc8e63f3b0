// Package engine compiles inferred patterns for matching.
//
// Patterns are compiled with coregex, an accelerated RE2-compatible engine.
// Patterns that need PCRE-only constructs fall back to [regexp2].
package engine

import (
	"fmt"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Backend names reported by Engine.
const (
	Core = "coregex"
	PCRE = "regexp2"
)

// Regexp is a compiled pattern backed by either coregex or regexp2.
type Regexp struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses pattern and returns a compiled Regexp.
func Compile(pattern string) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q: %w", pattern, err)
		}
		return &Regexp{pattern: pattern, pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", pattern, err)
	}
	return &Regexp{pattern: pattern, core: re}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the source pattern.
func (r *Regexp) String() string {
	return r.pattern
}

// Engine returns the name of the backend executing the pattern.
func (r *Regexp) Engine() string {
	if r.core != nil {
		return Core
	}
	return PCRE
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}
