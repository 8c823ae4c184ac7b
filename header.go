package wmf2svg

import "encoding/binary"

// placeableMagic identifies the 22-byte Aldus placeable header that
// precedes some WMF files.
const placeableMagic = 0x9AC6CDD7

const (
	placeableHeaderSize = 22
	standardHeaderSize  = 18
)

// PlaceableHeader carries the bounding box and DPI metadata of the
// optional Aldus placeable header. It is retained on the interpreter state
// for the whole conversion; Convert returns only the SVG bytes, not this
// header.
type PlaceableHeader struct {
	Dst  Rect16
	Inch uint16
}

// checkStandardHeader validates the 18-byte standard header located at the
// given offset within contents. It is the shared validation logic used by
// both IsWMF and decodeHeader.
func checkStandardHeader(contents []byte, offset int) bool {
	if len(contents) < offset+standardHeaderSize {
		return false
	}
	iType := contents[offset]
	version := binary.LittleEndian.Uint16(contents[offset+4:])
	return iType == 1 && (version == 0x0100 || version == 0x0300)
}

// IsWMF reports whether contents begins with a well-formed WMF header,
// with or without a placeable header in front of it. It never returns an
// error: malformed or truncated input simply yields false.
func IsWMF(contents []byte) bool {
	if len(contents) < standardHeaderSize {
		return false
	}

	if binary.LittleEndian.Uint32(contents) == placeableMagic {
		return checkStandardHeader(contents, placeableHeaderSize)
	}
	return checkStandardHeader(contents, 0)
}

// decodedHeader is the result of a full header decode: everything the
// interpreter needs to locate the first record and size its object table.
type decodedHeader struct {
	placeable   *PlaceableHeader
	nObjects    uint16
	recordStart int
}

// decodeHeader parses the placeable header (if present) and the standard
// WMF header, and computes the byte offset of the first record.
func decodeHeader(contents []byte) (*decodedHeader, error) {
	if len(contents) < standardHeaderSize {
		return nil, &HeaderError{Err: errShortRecord}
	}

	hasPlaceable := binary.LittleEndian.Uint32(contents) == placeableMagic

	headerOffset := 0
	if hasPlaceable {
		headerOffset = placeableHeaderSize
	}
	if !checkStandardHeader(contents, headerOffset) {
		return nil, &HeaderError{Err: errBadHeader, Offset: int64(headerOffset)}
	}

	r := newByteReader(contents[headerOffset:])
	if _, err := r.u16(); err != nil { // FileType (low byte is iType)
		return nil, &HeaderError{Err: err, Offset: int64(headerOffset)}
	}
	size16w, err := r.u16() // HeaderSize, in 16-bit words
	if err != nil {
		return nil, &HeaderError{Err: err, Offset: int64(headerOffset)}
	}
	if _, err := r.u16(); err != nil { // Version
		return nil, &HeaderError{Err: err, Offset: int64(headerOffset)}
	}
	if err := r.skip(4); err != nil { // FileSize, in 16-bit words
		return nil, &HeaderError{Err: err, Offset: int64(headerOffset)}
	}
	nObjects, err := r.u16()
	if err != nil {
		return nil, &HeaderError{Err: err, Offset: int64(headerOffset)}
	}

	h := &decodedHeader{nObjects: nObjects}

	if hasPlaceable {
		pr := newByteReader(contents[4:]) // skip the magic
		if err := pr.skip(2); err != nil { // Handle
			return nil, &HeaderError{Err: err}
		}
		dst, err := pr.rect16()
		if err != nil {
			return nil, &HeaderError{Err: err}
		}
		inch, err := pr.u16()
		if err != nil {
			return nil, &HeaderError{Err: err}
		}
		h.placeable = &PlaceableHeader{Dst: dst, Inch: inch}
		h.recordStart = placeableHeaderSize + int(size16w)*2
	} else {
		h.recordStart = int(size16w) * 2
	}

	return h, nil
}
