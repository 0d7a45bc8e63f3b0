package engine

import "strings"

// pcreOnly lists constructs RE2 rejects but regexp2 executes.
var pcreOnly = []string{
	// lookaround
	"(?=", "(?!", "(?<=", "(?<!",
	// atomic, branch reset, conditional, comment
	"(?>", "(?|", "(?(", "(?#",
	// recursion and named calls
	"(?R)", "(?P>", "(?&",
	// named backreferences
	`\k<`, `\k'`, `\k{`, "(?P=",
	// anchors and escapes Go does not know
	`\A`, `\Z`, `\G`, `\h`, `\H`, `\R`, `\K`, `\e`,
}

// needsPCRE reports whether pattern uses a construct only regexp2 supports.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// numbered backreferences: \1 .. \9 outside an escaped backslash
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// .NET style named groups
	return !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'"))
}
