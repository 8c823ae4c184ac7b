package wmf2svg

import "encoding/binary"

// byteReader is a cursor over a little-endian WMF byte stream. Every read
// is bounds-checked against the end of the slice; a failed read returns
// errShortRecord, so the caller can abandon the current record cleanly.
// A failed single-field read leaves the cursor at its prior position;
// point16 and rect16 keep the fields they consumed before the failing one.
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

// remaining reports how many unread bytes are left.
func (r *byteReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *byteReader) u16() (uint16, error) {
	if r.remaining() < 2 {
		return 0, errShortRecord
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *byteReader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *byteReader) u32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, errShortRecord
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// bytes returns the next n bytes without copying; the returned slice
// aliases the reader's backing array and must not be retained past the
// lifetime of the input buffer.
func (r *byteReader) bytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, errShortRecord
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) skip(n int) error {
	if n < 0 || r.remaining() < n {
		return errShortRecord
	}
	r.pos += n
	return nil
}

func (r *byteReader) point16() (Point16, error) {
	x, err := r.i16()
	if err != nil {
		return Point16{}, err
	}
	y, err := r.i16()
	if err != nil {
		return Point16{}, err
	}
	return Point16{X: x, Y: y}, nil
}

func (r *byteReader) rect16() (Rect16, error) {
	left, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	top, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	right, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	bottom, err := r.i16()
	if err != nil {
		return Rect16{}, err
	}
	return Rect16{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

func (r *byteReader) colorRef() (ColorRGB, error) {
	b, err := r.bytes(4)
	if err != nil {
		return ColorRGB{}, err
	}
	return ColorRGB{R: b[0], G: b[1], B: b[2]}, nil
}
