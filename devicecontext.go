package wmf2svg

// Polygon fill modes (SETPOLYFILLMODE / the fill mode carried on a DC).
const (
	fillAlternate uint16 = 1
	fillWinding   uint16 = 2
)

// Background modes (SETBKMODE).
const (
	bkTransparent uint16 = 1
	bkOpaque      uint16 = 2
)

// Pen styles, low nibble of a LOGPEN.Style field.
const (
	psSolid       uint16 = 0
	psDash        uint16 = 1
	psDot         uint16 = 2
	psDashDot     uint16 = 3
	psDashDotDot  uint16 = 4
	psNull        uint16 = 5
	psInsideFrame uint16 = 6
)

// Brush styles.
const (
	bsSolid  uint16 = 0
	bsNull   uint16 = 1
	bsHollow uint16 = 1
)

// Text alignment flags (SETTEXTALIGN).
const (
	taLeft   uint16 = 0x0000
	taRight  uint16 = 0x0002
	taCenter uint16 = 0x0006
	taTop    uint16 = 0x0000
	taBottom uint16 = 0x0008
)

// deviceContext is the mutable graphics state a WMF record stream paints
// against: pen, brush, font, text and background color, and the bookkeeping
// fields (ROP2, fill mode) that are tracked for completeness even where the
// SVG renderer cannot honor them.
type deviceContext struct {
	fontSet         bool
	fontName        string
	fontHeight      int16
	fontWidth       int16
	fontEscapement  int16
	fontOrientation int16
	fontWeight      int16
	fontItalic      bool
	fontUnderline   bool
	fontStrikeout   bool
	fontCharset     uint8

	strokeSet   bool
	strokeStyle uint16
	strokeColor ColorRGB
	strokeWidth float64

	fillSet   bool
	fillStyle uint16
	fillHatch uint16
	fillColor ColorRGB

	fillPolyMode uint16

	textColor ColorRGB
	textAlign uint16

	bkColor ColorRGB
	bkMode  uint16

	rop2Mode uint16
}

// newDeviceContext returns a device context with the defaults a fresh GDI
// DC carries before any SETxxx or CREATExxxINDIRECT/SELECTOBJECT record
// touches it: a solid black 1-unit pen, a solid white brush, black opaque
// text on white, alternate fill, and ROP2_COPYPEN.
func newDeviceContext() deviceContext {
	return deviceContext{
		strokeSet:   true,
		strokeStyle: psSolid,
		strokeColor: colorBlack,
		strokeWidth: 1.0,

		fillSet:   true,
		fillStyle: bsSolid,
		fillColor: colorWhite,

		textColor: colorBlack,
		textAlign: taLeft | taTop,

		bkColor: colorWhite,
		bkMode:  bkOpaque,

		fillPolyMode: fillAlternate,

		rop2Mode: 13, // R2_COPYPEN
	}
}

// dcStack is a LIFO of saved device contexts (SAVEDC/RESTOREDC).
type dcStack struct {
	frames []deviceContext
}

func (s *dcStack) push(dc deviceContext) {
	s.frames = append(s.frames, dc)
}

// pop restores n frames, where n's sign is not honored: RESTOREDC(-1) and
// RESTOREDC(1) both pop exactly one frame. The record's signed index is
// treated as a plain frame count, not GDI's documented "restore to the Nth
// saved state" (absolute) versus "restore N states back" (relative)
// distinction. n == 0 is a no-op.
// The returned bool reports whether a frame was available to restore into
// dc; on false the stack was already empty and dc is left as given.
func (s *dcStack) pop(n int16, dc *deviceContext) bool {
	if n == 0 {
		return false
	}
	count := int(n)
	if count < 0 {
		count = -count
	}
	restored := false
	for i := 0; i < count && len(s.frames) > 0; i++ {
		last := len(s.frames) - 1
		*dc = s.frames[last]
		s.frames = s.frames[:last]
		restored = true
	}
	return restored
}
