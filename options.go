package wmf2svg

import "io"

// Options controls a single Convert call. The zero value is not generally
// useful; start from DefaultOptions and override the fields that matter.
type Options struct {
	// NamespacePrefix, when non-empty, is used as the XML namespace prefix
	// for every emitted element ("prefix:rect" instead of "rect").
	NamespacePrefix string

	// Verbose enables per-record tracing to TraceWriter.
	Verbose bool

	// SVGDelimiter controls whether the XML prologue and the enclosing
	// <svg>...</svg> delimiters are emitted, or just the painted elements.
	SVGDelimiter bool

	// ImgWidth and ImgHeight request a specific output size in pixels. A
	// value of 0 means "derive from the WMF header" (see the scaling table
	// in the coordinate-transform design).
	ImgWidth  float64
	ImgHeight float64

	// TraceWriter receives verbose diagnostics when Verbose is set. It
	// defaults to io.Discard, never to os.Stdout, so the library stays
	// usable from services that do not own their process's stdout.
	TraceWriter io.Writer
}

// DefaultOptions is a reasonable starting point: no namespace, no tracing,
// a full SVG document, and original-size output.
var DefaultOptions = Options{
	SVGDelimiter: true,
}
