// Package wmfrecord decodes the payload of a single WMF metafile record.
//
// Every WMF record shares a 6-byte prologue (a little-endian size in
// 16-bit words, a 1-byte function number and a 1-byte extra byte); this
// package starts from the bytes that follow the prologue and returns a
// typed Go value for the subset of record kinds a renderer needs to act
// on. Decoders never allocate more than the fixed-size struct they
// return (variable-length payloads like point arrays and strings are
// copied once into a plain slice/string); all of them report a short
// read by returning ErrShortRecord instead of panicking, so a caller can
// skip a truncated record rather than crash.
package wmfrecord

import "encoding/binary"

// Type is the record-type byte (iType) found at offset 4 of every record's
// 6-byte prologue. It is the low byte of the record's full 16-bit function
// number; the high byte (at offset 5) historically counted the number of
// 16-bit parameters and plays no part in dispatch.
type Type uint8

// Record types this package has a decoder for, plus the ones the
// interpreter recognizes only to classify as ignored. Values are the
// documented low byte of each record's function number.
const (
	EOF                 Type = 0x00
	SAVEDC              Type = 0x1E
	SETBKCOLOR          Type = 0x01
	SETBKMODE           Type = 0x02
	SETMAPMODE          Type = 0x03
	SETROP2             Type = 0x04
	SETRELABS           Type = 0x05
	SETPOLYFILLMODE     Type = 0x06
	SETSTRETCHBLTMODE   Type = 0x07
	SETTEXTCOLOR        Type = 0x09
	SETWINDOWORG        Type = 0x0B
	SETWINDOWEXT        Type = 0x0C
	SETVIEWPORTORG      Type = 0x0D
	SETVIEWPORTEXT      Type = 0x0E
	LINETO              Type = 0x13
	MOVETO              Type = 0x14
	ARC                 Type = 0x17
	ELLIPSE             Type = 0x18
	PIE                 Type = 0x1A
	RECTANGLE           Type = 0x1B
	ROUNDRECT           Type = 0x1C
	TEXTOUT             Type = 0x21
	POLYGON             Type = 0x24
	POLYLINE            Type = 0x25
	ESCAPE              Type = 0x26
	RESTOREDC           Type = 0x27
	SELECTOBJECT        Type = 0x2D
	SETTEXTALIGN        Type = 0x2E
	CHORD               Type = 0x30
	SETMAPPERFLAGS      Type = 0x31
	EXTTEXTOUT          Type = 0x32
	SELECTPALETTE       Type = 0x34
	REALIZEPALETTE      Type = 0x35
	ANIMATEPALETTE      Type = 0x36
	SETPALENTRIES       Type = 0x37
	POLYPOLYGON         Type = 0x38
	RESIZEPALETTE       Type = 0x39
	DELETEOBJECT        Type = 0xF0
	CREATEPALETTE       Type = 0xF7
	CREATEPENINDIRECT   Type = 0xFA
	CREATEFONTINDIRECT  Type = 0xFB
	CREATEBRUSHINDIRECT Type = 0xFC
)

// Point is a WMF logical-space point: two signed 16-bit coordinates.
type Point struct{ X, Y int16 }

// Rect is a WMF logical-space rectangle: Left/Top/Right/Bottom, read in
// that order off the wire.
type Rect struct{ Left, Top, Right, Bottom int16 }

// Color is an RGB triple, the only color representation a WMF record
// carries (the reserved fourth COLORREF byte is discarded).
type Color struct{ R, G, B uint8 }

// cursor is an unexported little-endian byte reader local to this
// package; wmf2svg has its own, used for header parsing, and the two are
// intentionally not shared so that wmfrecord stays a self-contained,
// independently testable codec.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(b []byte) *cursor { return &cursor{data: b} }

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) u16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, ErrShortRecord
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) i16() (int16, error) {
	v, err := c.u16()
	return int16(v), err
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, ErrShortRecord
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) skip(n int) error {
	if n < 0 || c.remaining() < n {
		return ErrShortRecord
	}
	c.pos += n
	return nil
}

func (c *cursor) point() (Point, error) {
	x, err := c.i16()
	if err != nil {
		return Point{}, err
	}
	y, err := c.i16()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func (c *cursor) rect() (Rect, error) {
	left, err := c.i16()
	if err != nil {
		return Rect{}, err
	}
	top, err := c.i16()
	if err != nil {
		return Rect{}, err
	}
	right, err := c.i16()
	if err != nil {
		return Rect{}, err
	}
	bottom, err := c.i16()
	if err != nil {
		return Rect{}, err
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

func (c *cursor) color() (Color, error) {
	b, err := c.bytes(4)
	if err != nil {
		return Color{}, err
	}
	return Color{R: b[0], G: b[1], B: b[2]}, nil
}
