// Package charclass maps single characters to the regex character class
// they belong to.
package charclass

import (
	"unicode"

	"github.com/coregx/coregex"
)

// Kind identifies a character class.
type Kind uint8

const (
	// Literal is any character not covered by another class.
	Literal Kind = iota
	Digit
	Lower
	Upper
	// Letter is a letter that has no case (e.g. CJK ideographs).
	Letter
	Space
)

// Renderings of the fixed classes.
const (
	DigitClass  = `\d`
	LowerClass  = `[a-z]`
	UpperClass  = `[A-Z]`
	LetterClass = `[a-zA-Z]`
	SpaceClass  = `\s`
)

var kindNames = [...]string{
	Literal: "Literal",
	Digit:   "Digit",
	Lower:   "Lower",
	Upper:   "Upper",
	Letter:  "Letter",
	Space:   "Space",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is the class assigned to one character. Text holds the escaped
// character for Literal tokens and is empty otherwise.
type Token struct {
	Kind Kind
	Text string
}

// String returns the canonical regex rendering of the token. The rendering
// doubles as the grouping key used when runs and patterns are compared.
func (t Token) String() string {
	switch t.Kind {
	case Digit:
		return DigitClass
	case Lower:
		return LowerClass
	case Upper:
		return UpperClass
	case Letter:
		return LetterClass
	case Space:
		return SpaceClass
	}
	return t.Text
}

// Classify returns the token for r. Every rune maps to exactly one token.
func Classify(r rune) Token {
	switch {
	case unicode.IsDigit(r):
		return Token{Kind: Digit}
	case unicode.IsLetter(r):
		switch {
		case unicode.IsLower(r):
			return Token{Kind: Lower}
		case unicode.IsUpper(r):
			return Token{Kind: Upper}
		}
		return Token{Kind: Letter}
	case unicode.IsSpace(r):
		return Token{Kind: Space}
	}
	return Token{Kind: Literal, Text: Escape(r)}
}

// Escape returns r as a regex fragment matching exactly r.
func Escape(r rune) string {
	return coregex.QuoteMeta(string(r))
}

// IsPlain reports whether r matches itself when used unescaped in a pattern.
func IsPlain(r rune) bool {
	return Escape(r) == string(r)
}

// Bases returns the renderings of the fixed (non-literal) classes, longest
// first.
func Bases() []string {
	return []string{LetterClass, LowerClass, UpperClass, DigitClass, SpaceClass}
}
