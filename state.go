package wmf2svg

import (
	"math"

	"github.com/undisker/libxmf2svg/svg"
	"github.com/undisker/libxmf2svg/trace"
)

// Map modes (SETMAPMODE). Only tracked, never acted on: the interpreter
// always derives its transform from the window/viewport extents directly.
const (
	mmText        uint16 = 1
	mmLometric    uint16 = 2
	mmHimetric    uint16 = 3
	mmLoenglish   uint16 = 4
	mmHienglish   uint16 = 5
	mmTwips       uint16 = 6
	mmIsotropic   uint16 = 7
	mmAnisotropic uint16 = 8
)

// interpreterState is everything a conversion accumulates while walking a
// record stream: the current and saved device contexts, the object table,
// the window/viewport coordinate system, and the cursor position that
// MOVETO/LINETO thread through. It is built once per Convert call and
// never shared across calls, so a process can run any number of
// conversions concurrently on distinct states.
type interpreterState struct {
	dc      deviceContext
	dcStack dcStack
	objects *objectTable

	windowOrgX, windowOrgY     int16
	windowExtX, windowExtY     int16
	viewportOrgX, viewportOrgY int16
	viewportExtX, viewportExtY int16
	mapMode                    uint16
	scaling                    float64

	placeable *PlaceableHeader

	imgWidth, imgHeight float64

	curX, curY float64 // device-space cursor, already transformed

	uniqID int

	svg   *svg.Writer
	trace *trace.Sink
}

// transform returns the window-to-viewport-to-device affine transform for
// the state's current window/viewport extents. It is recomputed on demand
// rather than cached: a SETWINDOWORG between two drawing records must take
// effect immediately.
func (st *interpreterState) transform() coordTransform {
	return newCoordTransform(
		st.windowOrgX, st.windowOrgY, st.windowExtX, st.windowExtY,
		st.viewportOrgX, st.viewportOrgY, st.viewportExtX, st.viewportExtY,
		st.scaling,
	)
}

// svgStroke renders the current device context's pen as an svg.Stroke, in
// device units.
func (st *interpreterState) svgStroke() svg.Stroke {
	return svg.Stroke{
		Set:   st.dc.strokeSet,
		Style: int(st.dc.strokeStyle & 0x0F),
		Color: svg.Color(st.dc.strokeColor),
		Width: st.dc.strokeWidth * st.scaling,
	}
}

// svgFill renders the current device context's brush as an svg.Fill.
func (st *interpreterState) svgFill() svg.Fill {
	set := st.dc.fillSet && st.dc.fillStyle != bsNull && st.dc.fillStyle != bsHollow
	return svg.Fill{
		Set:     set,
		Color:   svg.Color(st.dc.fillColor),
		Nonzero: st.dc.fillPolyMode == fillWinding,
	}
}

// fontSize derives the SVG font-size from the current device context's
// font height: the absolute value scaled to device units, falling back to
// 12 when that comes out below 1.0 (no CREATEFONTINDIRECT/SELECTOBJECT
// happened yet, or the height was zero or too small once scaled).
func (st *interpreterState) fontSize() float64 {
	size := math.Abs(float64(st.dc.fontHeight)) * st.scaling
	if size < 1.0 {
		size = 12.0
	}
	return size
}

// textAnchor derives the SVG text-anchor from the current text alignment
// flags. CENTER (0x6) is tested before RIGHT (0x2) because CENTER's bit
// pattern also sets the RIGHT bit.
func (st *interpreterState) textAnchor() string {
	switch {
	case st.dc.textAlign&taCenter == taCenter:
		return "middle"
	case st.dc.textAlign&taRight != 0:
		return "end"
	default:
		return "start"
	}
}
