// Package svg streams an SVG document to an io.Writer one element at a
// time. It knows nothing about WMF; it only knows how to format the
// handful of shape and style primitives a metafile interpreter needs:
// plain fmt.Fprintf calls against a single open stream, no DOM, no
// buffering beyond what the underlying writer does.
package svg

import (
	"fmt"
	"io"
	"strings"
)

// Color is an 8-bit-per-channel RGB color.
type Color struct{ R, G, B uint8 }

// Pen dash styles, the low nibble of a WMF pen style field.
const (
	PenSolid = iota
	PenDash
	PenDot
	PenDashDot
	PenDashDotDot
	PenNull
)

// Stroke describes the stroke (pen) attributes of a shape. A zero Stroke
// (Set == false) renders as stroke="none".
type Stroke struct {
	Set   bool
	Style int // one of the Pen* constants
	Color Color
	Width float64 // already in device units; scaling is the caller's job
}

// Fill describes the fill (brush) attributes of a shape. A zero Fill
// (Set == false) renders as fill="none".
type Fill struct {
	Set     bool
	Color   Color
	Nonzero bool // true selects fill-rule="nonzero", false "evenodd"
}

// Point is a device-space (already transformed) coordinate.
type Point struct{ X, Y float64 }

// Writer emits SVG markup to an underlying stream. It is not safe for
// concurrent use: a WMF record stream is processed strictly in order, and
// so is the SVG it produces.
type Writer struct {
	w      io.Writer
	prefix string // e.g. "ns:", or "" for no namespace prefix
	err    error
}

// New returns a Writer that tags every element with namespacePrefix (empty
// for none).
func New(w io.Writer, namespacePrefix string) *Writer {
	p := ""
	if namespacePrefix != "" {
		p = namespacePrefix + ":"
	}
	return &Writer{w: w, prefix: p}
}

// Err returns the first write error encountered, if any. Once a Writer has
// failed every subsequent method becomes a no-op.
func (w *Writer) Err() error { return w.err }

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// Prologue writes the XML declaration and the opening <svg> tag sized to
// width x height device units.
func (w *Writer) Prologue(width, height float64, rootNamespace string) {
	w.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sep := ""
	if rootNamespace != "" {
		sep = ":"
	}
	w.printf("<%ssvg xmlns%s%s=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		w.prefix, sep, rootNamespace, width, height, width, height)
}

// Epilogue writes the closing </svg> tag.
func (w *Writer) Epilogue() {
	w.printf("</%ssvg>\n", w.prefix)
}

func (w *Writer) strokeAttrs(s Stroke) {
	if !s.Set || s.Style == PenNull {
		w.printf("stroke=\"none\" ")
		return
	}
	w.printf("stroke=\"#%02X%02X%02X\" ", s.Color.R, s.Color.G, s.Color.B)

	width := s.Width
	if width < 1.0 {
		width = 1.0
	}
	w.printf("stroke-width=\"%.2f\" ", width)

	switch s.Style {
	case PenDash:
		w.printf("stroke-dasharray=\"%.0f,%.0f\" ", width*3, width)
	case PenDot:
		w.printf("stroke-dasharray=\"%.0f,%.0f\" ", width, width)
	case PenDashDot:
		w.printf("stroke-dasharray=\"%.0f,%.0f,%.0f,%.0f\" ", width*3, width, width, width)
	case PenDashDotDot:
		w.printf("stroke-dasharray=\"%.0f,%.0f,%.0f,%.0f,%.0f,%.0f\" ", width*3, width, width, width, width, width)
	}
}

func (w *Writer) fillAttrs(f Fill) {
	if !f.Set {
		w.printf("fill=\"none\" ")
		return
	}
	w.printf("fill=\"#%02X%02X%02X\" ", f.Color.R, f.Color.G, f.Color.B)
	if f.Nonzero {
		w.printf("fill-rule=\"nonzero\" ")
	} else {
		w.printf("fill-rule=\"evenodd\" ")
	}
}

// Line emits a <line> element.
func (w *Writer) Line(x1, y1, x2, y2 float64, stroke Stroke) {
	w.printf("<%sline x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" ", w.prefix, x1, y1, x2, y2)
	w.strokeAttrs(stroke)
	w.printf("/>\n")
}

// Rect emits a <rect> element, with rounded corners when rx or ry is
// nonzero.
func (w *Writer) Rect(x, y, width, height, rx, ry float64, fill Fill, stroke Stroke) {
	w.printf("<%srect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" ", w.prefix, x, y, width, height)
	if rx != 0 || ry != 0 {
		w.printf("rx=\"%.2f\" ry=\"%.2f\" ", rx, ry)
	}
	w.fillAttrs(fill)
	w.strokeAttrs(stroke)
	w.printf("/>\n")
}

// Ellipse emits an <ellipse> element.
func (w *Writer) Ellipse(cx, cy, rx, ry float64, fill Fill, stroke Stroke) {
	w.printf("<%sellipse cx=\"%.2f\" cy=\"%.2f\" rx=\"%.2f\" ry=\"%.2f\" ", w.prefix, cx, cy, rx, ry)
	w.fillAttrs(fill)
	w.strokeAttrs(stroke)
	w.printf("/>\n")
}

func (w *Writer) pointsAttr(points []Point) {
	w.printf("points=\"")
	for _, p := range points {
		w.printf("%.2f,%.2f ", p.X, p.Y)
	}
	w.printf("\" ")
}

// Polygon emits a <polygon> element.
func (w *Writer) Polygon(points []Point, fill Fill, stroke Stroke) {
	w.printf("<%spolygon ", w.prefix)
	w.pointsAttr(points)
	w.fillAttrs(fill)
	w.strokeAttrs(stroke)
	w.printf("/>\n")
}

// Polyline emits a <polyline> element. WMF polylines are never filled.
func (w *Writer) Polyline(points []Point, stroke Stroke) {
	w.printf("<%spolyline ", w.prefix)
	w.pointsAttr(points)
	w.printf("fill=\"none\" ")
	w.strokeAttrs(stroke)
	w.printf("/>\n")
}

// ArcPath emits a <path> for an ARC, CHORD or PIE record. rx/ry are the
// ellipse radii; start/end are the already-projected points on its
// circumference; pieCenter, when non-nil, adds the leading "move to
// center, line to start" segment a PIE slice needs; closed appends a Z
// (CHORD and PIE). The sweep flag is always 1 (clockwise in SVG's
// Y-down space); the opposite sweep is never emitted.
func (w *Writer) ArcPath(start, end Point, rx, ry float64, largeArc bool, pieCenter *Point, closed bool, fill Fill, stroke Stroke) {
	var d strings.Builder
	if pieCenter != nil {
		fmt.Fprintf(&d, "M %.2f,%.2f L %.2f,%.2f ", pieCenter.X, pieCenter.Y, start.X, start.Y)
	} else {
		fmt.Fprintf(&d, "M %.2f,%.2f ", start.X, start.Y)
	}
	large := 0
	if largeArc {
		large = 1
	}
	fmt.Fprintf(&d, "A %.2f,%.2f 0 %d,1 %.2f,%.2f ", rx, ry, large, end.X, end.Y)
	if closed {
		d.WriteString("Z")
	}

	w.printf("<%spath d=\"%s\" ", w.prefix, d.String())
	w.fillAttrs(fill)
	w.strokeAttrs(stroke)
	w.printf("/>\n")
}

// TextStyle carries the presentation attributes of a <text> element.
type TextStyle struct {
	Color      Color
	FontSize   float64
	Anchor     string // "start", "middle" or "end"
	FontFamily string // empty to omit font-family
	Italic     bool
	Bold       bool
}

// Text emits a <text> element with its content XML-escaped.
func (w *Writer) Text(x, y float64, text string, style TextStyle) {
	w.printf("<%stext x=\"%.2f\" y=\"%.2f\" ", w.prefix, x, y)
	w.printf("fill=\"#%02X%02X%02X\" ", style.Color.R, style.Color.G, style.Color.B)
	w.printf("font-size=\"%.2f\" ", style.FontSize)
	w.printf("text-anchor=\"%s\" ", style.Anchor)
	if style.FontFamily != "" {
		w.printf("font-family=\"%s\" ", Escape(style.FontFamily))
	}
	if style.Italic {
		w.printf("font-style=\"italic\" ")
	}
	if style.Bold {
		w.printf("font-weight=\"bold\" ")
	}
	w.printf(">%s</%stext>\n", Escape(text), w.prefix)
}

// Escape escapes '<', '>', '&' and '"' character by character, making s
// safe both as element content and inside a double-quoted attribute
// value.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
