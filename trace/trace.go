// Package trace provides the per-record verbose diagnostics a conversion
// can optionally emit: one line naming the record number, its function
// number and size, one line naming what the interpreter recognized it as,
// and one line classifying how well it was honored. It is injected as a
// plain io.Writer (defaulting to io.Discard) rather than hard-wired to a
// process stream, so a conversion running inside a service never fights
// over the host's stdout.
package trace

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Status classifies how an interpreted record was handled.
type Status int

const (
	// Supported records are fully translated into equivalent SVG.
	Supported Status = iota
	// Partial records are acted on but only approximately (e.g. ROP2,
	// tracked but never actually composited).
	Partial
	// Ignored records are recognized but deliberately not acted on
	// (palette operations, which have no SVG analogue).
	Ignored
	// Unknown records are not recognized at all.
	Unknown
)

func (s Status) String() string {
	switch s {
	case Supported:
		return "SUPPORTED"
	case Partial:
		return "PARTIAL SUPPORT"
	case Ignored:
		return "IGNORED"
	default:
		return "UNKNOWN"
	}
}

// ANSI SGR codes, used only when the sink decides the destination is a
// color-capable terminal.
const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func (s Status) ansiColor() string {
	switch s {
	case Supported:
		return ansiGreen
	case Partial:
		return ansiYellow
	default:
		return ansiRed
	}
}

// Sink is a verbose diagnostics destination for a single conversion.
type Sink struct {
	w     io.Writer
	color bool
}

// New wraps w. When w is an *os.File attached to a terminal, status lines
// are colorized; any other writer (a bytes.Buffer in tests, a log file)
// gets plain text.
func New(w io.Writer) *Sink {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &Sink{w: w, color: color}
}

// Discard is a Sink that drops everything, used as the default when
// verbose tracing is off.
var Discard = &Sink{w: io.Discard}

// RecordHeader announces a new record: its index, its full 16-bit
// function number and its declared size in bytes.
func (s *Sink) RecordHeader(recnum int, funcNum uint16, size uint32) {
	fmt.Fprintf(s.w, "\n%-4d Record: 0x%04X (size=%d)\n", recnum, funcNum, size)
}

// Typef announces what the interpreter recognized the current record as.
func (s *Sink) Typef(format string, args ...any) {
	fmt.Fprint(s.w, "   Type: ")
	fmt.Fprintf(s.w, format, args...)
	fmt.Fprint(s.w, "\n")
}

// Warnf emits a free-form warning line outside the per-record cadence,
// e.g. when the record-count safety cap stops a runaway file.
func (s *Sink) Warnf(format string, args ...any) {
	fmt.Fprint(s.w, "Warning: ")
	fmt.Fprintf(s.w, format, args...)
	fmt.Fprint(s.w, "\n")
}

// Status emits the classification line for the current record.
func (s *Sink) Status(status Status) {
	if s.color {
		fmt.Fprintf(s.w, "   Status:         %s%s%s\n", status.ansiColor(), status, ansiReset)
		return
	}
	fmt.Fprintf(s.w, "   Status:         %s\n", status)
}
