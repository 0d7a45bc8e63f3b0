package logging

import (
	"bytes"
	"testing"
)

func TestLoggerEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(true)
	l.SetOutput(&buf)

	l.Section("Merge")
	l.Log("groups: %d", 2)

	want := "\n[reginfer] === Merge ===\n[reginfer] groups: 2\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(false)
	l.SetOutput(&buf)

	l.Section("Merge")
	l.Log("groups: %d", 2)

	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	if l.Enabled() {
		t.Error("nil logger reports enabled")
	}
	l.Log("ignored")
	l.Section("ignored")
}
