package wmf2svg

// Point16 is a point in WMF logical coordinates. Both axes are signed
// 16-bit integers, matching the on-disk representation used throughout a
// WMF record stream.
type Point16 struct {
	X, Y int16
}

// Rect16 is an axis-aligned rectangle in WMF logical coordinates. For
// rectangle-shaped primitives Right/Bottom are exclusive; for the bounding
// box of an ellipse or arc they are inclusive. The interpreter does not
// normalize this distinction.
type Rect16 struct {
	Left, Top, Right, Bottom int16
}

// Dx returns the signed horizontal extent of the rectangle.
func (r Rect16) Dx() int16 { return r.Right - r.Left }

// Dy returns the signed vertical extent of the rectangle.
func (r Rect16) Dy() int16 { return r.Bottom - r.Top }

// ColorRGB is an 8-bit-per-channel color, the only color representation
// WMF records carry.
type ColorRGB struct {
	R, G, B uint8
}

// White, Black and the stock gray levels used by the predefined brushes
// and pens (see the stock-object table in SELECTOBJECT).
var (
	colorWhite  = ColorRGB{0xFF, 0xFF, 0xFF}
	colorLtGray = ColorRGB{0xC0, 0xC0, 0xC0}
	colorGray   = ColorRGB{0x80, 0x80, 0x80}
	colorDkGray = ColorRGB{0x40, 0x40, 0x40}
	colorBlack  = ColorRGB{0x00, 0x00, 0x00}
)
