package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Debug("hidden debug message")
	logger.Noticef("visible %s", "notice")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "visible notice") {
		t.Fatalf("expected only the notice message to be logged; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("now %d", 42)
	if out := buf.String(); !strings.Contains(out, "now 42") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected debug message with module name; got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	type spec struct {
		in       string
		expLevel Level
		expErr   bool
	}
	specs := []spec{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"notice", Notice, false},
		{"warn", Warning, false},
		{"error", Error, false},
		{"chatty", Notice, true},
	}

	for _, s := range specs {
		level, err := ParseLevel(s.in)
		if (err != nil) != s.expErr {
			t.Fatalf("[%s] expected error to be %t; got %v", s.in, s.expErr, err)
		}
		if level != s.expLevel {
			t.Fatalf("[%s] expected level %d; got %d", s.in, s.expLevel, level)
		}
	}
}
