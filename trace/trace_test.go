package trace

import (
	"bytes"
	"strings"
	"testing"
)

func TestDiscardSinkDropsOutput(t *testing.T) {
	// Discard must never panic and must produce nothing observable; there's
	// nothing to assert against its writer (io.Discard), so this just
	// exercises every method for a nil pointer dereference.
	Discard.RecordHeader(0, 0x0001, 6)
	Discard.Typef("EOF")
	Discard.Status(Supported)
	Discard.Warnf("too many records, stopping after %d", 1)
}

func TestSinkPlainWriterUncolored(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.RecordHeader(1, 0x041B, 14)
	s.Typef("RECTANGLE (%d,%d)-(%d,%d)", 0, 0, 10, 10)
	s.Status(Supported)

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Sink over a plain bytes.Buffer emitted ANSI codes: %q", out)
	}
	if !strings.Contains(out, "RECTANGLE") || !strings.Contains(out, "SUPPORTED") {
		t.Errorf("Sink output missing expected content: %q", out)
	}
}

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Warnf("too many records, stopping after %d", 100000)
	if got := buf.String(); got != "Warning: too many records, stopping after 100000\n" {
		t.Errorf("Warnf output = %q", got)
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		Supported: "SUPPORTED",
		Partial:   "PARTIAL SUPPORT",
		Ignored:   "IGNORED",
		Unknown:   "UNKNOWN",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
