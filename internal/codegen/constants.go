// Package codegen emits Go source for inferred patterns.
package codegen

import (
	"unicode"
	"unicode/utf8"
)

// Identifier suffixes and names used in generated code
const (
	PatternSuffix     = "Pattern"
	ExamplesSuffix    = "Examples"
	RegexpSuffix      = "Regexp"
	MatchStringSuffix = "MatchString"
	InputName         = "input"
	TestingName       = "t"
)

// LowerFirst converts the first rune of a string to lowercase.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
