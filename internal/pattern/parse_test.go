package pattern

import (
	"errors"
	"testing"
)

func TestParseRun(t *testing.T) {
	tests := []struct {
		input  string
		want   Run
		wantOK bool
	}{
		{`[a-z]{5}`, Run{`[a-z]`, 5}, true},
		{`[A-Z]{12}`, Run{`[A-Z]`, 12}, true},
		{`[a-zA-Z]{3}`, Run{`[a-zA-Z]`, 3}, true},
		{`\d{4}`, Run{`\d`, 4}, true},
		{`\s{2}`, Run{`\s`, 2}, true},
		{`\.{3}`, Run{`\.`, 3}, true},
		{`!{2}`, Run{`!`, 2}, true},
		{`[a-z]`, Run{`[a-z]`, 1}, true},
		{`x`, Run{`x`, 1}, true},
		{`\*`, Run{`\*`, 1}, true},
		{`é{2}`, Run{`é`, 2}, true},
		{"", Run{}, false},
		{`[A-Z]\d{2}!{2}`, Run{}, false},
		{`[a-z]{5}{6}`, Run{}, false},
		{`[a-z]{}`, Run{}, false},
		{`[a-z]{5`, Run{}, false},
		{`[a-z]{5,7}`, Run{}, false},
		{`[abc]{3}`, Run{}, false},
		{`.{3}`, Run{}, false},
		{`\`, Run{}, false},
		{`ab`, Run{}, false},
		{`a{99999999999999999999999}`, Run{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseRun(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseRun(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseRun(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRunsError(t *testing.T) {
	_, err := ParseRuns(`[a-z]{5}(`)
	if err == nil {
		t.Fatal("expected error for trailing group")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if perr.Offset != 8 {
		t.Errorf("Offset = %d, want 8", perr.Offset)
	}
}

func TestParseRunsEmpty(t *testing.T) {
	runs, err := ParseRuns("")
	if err != nil {
		t.Fatalf("ParseRuns(\"\") error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("ParseRuns(\"\") = %v, want no runs", runs)
	}
}

func TestRunString(t *testing.T) {
	tests := []struct {
		run  Run
		want string
	}{
		{Run{`\d`, 1}, `\d`},
		{Run{`\d`, 2}, `\d{2}`},
		{Run{`!`, 10}, `!{10}`},
	}

	for _, tt := range tests {
		if got := tt.run.String(); got != tt.want {
			t.Errorf("Run%v.String() = %q, want %q", tt.run, got, tt.want)
		}
	}
}
