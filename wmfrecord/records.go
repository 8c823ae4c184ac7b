package wmfrecord

// Pen is the payload of a CREATEPENINDIRECT record: a LOGPEN whose width
// is a POINT16 on the wire. Only the X component carries meaning; the Y
// component is present but unused by every known producer.
type Pen struct {
	Style uint16
	Width int16
	Color Color
}

// DecodePen decodes a CREATEPENINDIRECT payload.
func DecodePen(payload []byte) (Pen, error) {
	c := newCursor(payload)
	style, err := c.u16()
	if err != nil {
		return Pen{}, err
	}
	width, err := c.i16()
	if err != nil {
		return Pen{}, err
	}
	if err := c.skip(2); err != nil { // Width.y, unused
		return Pen{}, err
	}
	color, err := c.color()
	if err != nil {
		return Pen{}, err
	}
	return Pen{Style: style, Width: width, Color: color}, nil
}

// Brush is the payload of a CREATEBRUSHINDIRECT record.
type Brush struct {
	Style uint16
	Color Color
	Hatch uint16
}

// DecodeBrush decodes a CREATEBRUSHINDIRECT payload.
func DecodeBrush(payload []byte) (Brush, error) {
	c := newCursor(payload)
	style, err := c.u16()
	if err != nil {
		return Brush{}, err
	}
	color, err := c.color()
	if err != nil {
		return Brush{}, err
	}
	hatch, err := c.u16()
	if err != nil {
		return Brush{}, err
	}
	return Brush{Style: style, Color: color, Hatch: hatch}, nil
}

// Font is the payload of a CREATEFONTINDIRECT record.
type Font struct {
	Height      int16
	Width       int16
	Escapement  int16
	Orientation int16
	Weight      int16
	Italic      uint8
	Underline   uint8
	StrikeOut   uint8
	CharSet     uint8
	FaceName    string
}

// DecodeFont decodes a CREATEFONTINDIRECT payload. The fixed part is 18
// bytes (five int16 fields, then four flag bytes, then four more
// precision/quality/pitch bytes this package does not surface); FaceName is
// whatever follows, up to the first NUL or the end of the payload.
func DecodeFont(payload []byte) (Font, error) {
	c := newCursor(payload)
	height, err := c.i16()
	if err != nil {
		return Font{}, err
	}
	width, err := c.i16()
	if err != nil {
		return Font{}, err
	}
	escapement, err := c.i16()
	if err != nil {
		return Font{}, err
	}
	orientation, err := c.i16()
	if err != nil {
		return Font{}, err
	}
	weight, err := c.i16()
	if err != nil {
		return Font{}, err
	}
	flags, err := c.bytes(4) // Italic, Underline, StrikeOut, CharSet
	if err != nil {
		return Font{}, err
	}
	if err := c.skip(4); err != nil { // OutPrecision, ClipPrecision, Quality, PitchAndFamily
		return Font{}, err
	}

	name := c.data[c.pos:]
	if nul := indexByte(name, 0); nul >= 0 {
		name = name[:nul]
	}

	return Font{
		Height:      height,
		Width:       width,
		Escapement:  escapement,
		Orientation: orientation,
		Weight:      weight,
		Italic:      flags[0],
		Underline:   flags[1],
		StrikeOut:   flags[2],
		CharSet:     flags[3],
		FaceName:    string(name),
	}, nil
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// DecodeColor decodes a 4-byte COLORREF payload, used by SETBKCOLOR and
// SETTEXTCOLOR.
func DecodeColor(payload []byte) (Color, error) {
	return newCursor(payload).color()
}

// DecodeUint16 decodes a single 2-byte mode/flag word, used by SETBKMODE,
// SETMAPMODE, SETROP2, SETPOLYFILLMODE, SETTEXTALIGN, SELECTOBJECT and
// DELETEOBJECT.
func DecodeUint16(payload []byte) (uint16, error) {
	return newCursor(payload).u16()
}

// DecodeInt16 decodes a single signed 2-byte word, used by RESTOREDC.
func DecodeInt16(payload []byte) (int16, error) {
	return newCursor(payload).i16()
}

// DecodePoint decodes a single POINT16, used by SETWINDOWORG, SETWINDOWEXT,
// SETVIEWPORTORG, SETVIEWPORTEXT, MOVETO and LINETO.
func DecodePoint(payload []byte) (Point, error) {
	return newCursor(payload).point()
}

// DecodeRect decodes a single RECT16, used by RECTANGLE and ELLIPSE.
func DecodeRect(payload []byte) (Rect, error) {
	return newCursor(payload).rect()
}

// RoundRect is the payload of a ROUNDRECT record.
type RoundRect struct {
	Width, Height int16
	Rect          Rect
}

// DecodeRoundRect decodes a ROUNDRECT payload: the corner width and height
// followed by the rectangle.
func DecodeRoundRect(payload []byte) (RoundRect, error) {
	c := newCursor(payload)
	width, err := c.i16()
	if err != nil {
		return RoundRect{}, err
	}
	height, err := c.i16()
	if err != nil {
		return RoundRect{}, err
	}
	rect, err := c.rect()
	if err != nil {
		return RoundRect{}, err
	}
	return RoundRect{Width: width, Height: height, Rect: rect}, nil
}

// DecodePolyPoints decodes a POLYGON or POLYLINE payload: a point count
// followed by that many POINT16 values.
func DecodePolyPoints(payload []byte) ([]Point, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i], err = c.point()
		if err != nil {
			return nil, err
		}
	}
	return pts, nil
}

// PolyPolygon is the payload of a POLYPOLYGON record: one or more closed
// point rings.
type PolyPolygon struct {
	Polygons [][]Point
}

// DecodePolyPolygon decodes a POLYPOLYGON payload: a polygon count, that
// many point counts, then the concatenated point data.
func DecodePolyPolygon(payload []byte) (PolyPolygon, error) {
	c := newCursor(payload)
	nPolys, err := c.u16()
	if err != nil {
		return PolyPolygon{}, err
	}
	counts := make([]uint16, nPolys)
	for i := range counts {
		counts[i], err = c.u16()
		if err != nil {
			return PolyPolygon{}, err
		}
	}
	polys := make([][]Point, nPolys)
	for p, n := range counts {
		pts := make([]Point, n)
		for i := range pts {
			pts[i], err = c.point()
			if err != nil {
				return PolyPolygon{}, err
			}
		}
		polys[p] = pts
	}
	return PolyPolygon{Polygons: polys}, nil
}

// Arc is the shared payload shape of ARC, CHORD and PIE: a start and end
// radial point and the bounding rectangle of the ellipse the arc is cut
// from.
type Arc struct {
	Start, End Point
	Rect       Rect
}

// DecodeArc decodes an ARC, CHORD or PIE payload; all three share this
// layout.
func DecodeArc(payload []byte) (Arc, error) {
	c := newCursor(payload)
	start, err := c.point()
	if err != nil {
		return Arc{}, err
	}
	end, err := c.point()
	if err != nil {
		return Arc{}, err
	}
	rect, err := c.rect()
	if err != nil {
		return Arc{}, err
	}
	return Arc{Start: start, End: end, Rect: rect}, nil
}

// TextOut is the payload of a TEXTOUT record.
type TextOut struct {
	Dst  Point
	Text string
}

// DecodeTextOut decodes a TEXTOUT payload: the anchor point, a string
// length, then that many bytes of (ANSI-encoded) text. An embedded NUL
// ends the string early, whatever the declared length says.
func DecodeTextOut(payload []byte) (TextOut, error) {
	c := newCursor(payload)
	dst, err := c.point()
	if err != nil {
		return TextOut{}, err
	}
	length, err := c.i16()
	if err != nil {
		return TextOut{}, err
	}
	if length <= 0 {
		return TextOut{Dst: dst}, nil
	}
	text, err := c.bytes(int(length))
	if err != nil {
		return TextOut{}, err
	}
	return TextOut{Dst: dst, Text: string(truncateAtNUL(text))}, nil
}

// truncateAtNUL cuts b at its first NUL byte, if any.
func truncateAtNUL(b []byte) []byte {
	if nul := indexByte(b, 0); nul >= 0 {
		return b[:nul]
	}
	return b
}

// Extended text-out option flags (the bits of ExtTextOut.Opts this package
// interprets; the rest are carried but not acted on).
const (
	ETOOpaque  uint16 = 0x0002
	ETOClipped uint16 = 0x0004
)

// ExtTextOut is the payload of an EXTTEXTOUT record. Rect is only present
// on the wire when Opts has ETOOpaque or ETOClipped set; the inter-character
// spacing array that may follow the string is not surfaced, as nothing in
// this package's renderer consumes it.
type ExtTextOut struct {
	Dst  Point
	Opts uint16
	Rect Rect
	Text string
}

// DecodeExtTextOut decodes an EXTTEXTOUT payload.
func DecodeExtTextOut(payload []byte) (ExtTextOut, error) {
	c := newCursor(payload)
	dst, err := c.point()
	if err != nil {
		return ExtTextOut{}, err
	}
	length, err := c.i16()
	if err != nil {
		return ExtTextOut{}, err
	}
	opts, err := c.u16()
	if err != nil {
		return ExtTextOut{}, err
	}

	var rect Rect
	if opts&(ETOOpaque|ETOClipped) != 0 {
		rect, err = c.rect()
		if err != nil {
			return ExtTextOut{}, err
		}
	}

	if length <= 0 {
		return ExtTextOut{Dst: dst, Opts: opts, Rect: rect}, nil
	}
	text, err := c.bytes(int(length))
	if err != nil {
		return ExtTextOut{}, err
	}
	return ExtTextOut{Dst: dst, Opts: opts, Rect: rect, Text: string(truncateAtNUL(text))}, nil
}
