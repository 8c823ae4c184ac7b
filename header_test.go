package wmf2svg

import (
	"encoding/binary"
	"testing"
)

func standardHeader(nObjects uint16) []byte {
	h := make([]byte, standardHeaderSize)
	h[0] = 1 // iType
	binary.LittleEndian.PutUint16(h[4:], 0x0300) // version
	binary.LittleEndian.PutUint16(h[2:], standardHeaderSize/2)
	binary.LittleEndian.PutUint16(h[10:], nObjects)
	return h
}

func TestIsWMFBareHeader(t *testing.T) {
	h := standardHeader(0)
	if !IsWMF(h) {
		t.Fatal("IsWMF on a well-formed bare header = false, want true")
	}
}

func TestIsWMFTooShort(t *testing.T) {
	if IsWMF([]byte{1, 2, 3}) {
		t.Fatal("IsWMF on a too-short buffer = true, want false")
	}
}

func TestIsWMFBadFileType(t *testing.T) {
	h := standardHeader(0)
	h[0] = 2 // wrong iType
	if IsWMF(h) {
		t.Fatal("IsWMF with wrong iType = true, want false")
	}
}

func TestIsWMFWithPlaceable(t *testing.T) {
	placeable := make([]byte, placeableHeaderSize)
	binary.LittleEndian.PutUint32(placeable, placeableMagic)
	full := append(placeable, standardHeader(0)...)
	if !IsWMF(full) {
		t.Fatal("IsWMF with placeable header = false, want true")
	}
}

func TestDecodeHeaderBareDefaults(t *testing.T) {
	h := standardHeader(5)
	hdr, err := decodeHeader(h)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if hdr.placeable != nil {
		t.Errorf("decodeHeader on bare header: placeable = %+v, want nil", hdr.placeable)
	}
	if hdr.nObjects != 5 {
		t.Errorf("decodeHeader nObjects = %d, want 5", hdr.nObjects)
	}
	if hdr.recordStart != standardHeaderSize {
		t.Errorf("decodeHeader recordStart = %d, want %d", hdr.recordStart, standardHeaderSize)
	}
}

func TestDecodeHeaderPlaceable(t *testing.T) {
	placeable := make([]byte, placeableHeaderSize)
	binary.LittleEndian.PutUint32(placeable, placeableMagic)
	binary.LittleEndian.PutUint16(placeable[4:], 1) // Handle
	binary.LittleEndian.PutUint16(placeable[6:], 0) // Left
	binary.LittleEndian.PutUint16(placeable[8:], 0) // Top
	binary.LittleEndian.PutUint16(placeable[10:], 200) // Right
	binary.LittleEndian.PutUint16(placeable[12:], 100) // Bottom
	binary.LittleEndian.PutUint16(placeable[14:], 1440) // Inch

	full := append(placeable, standardHeader(0)...)
	hdr, err := decodeHeader(full)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if hdr.placeable == nil {
		t.Fatal("decodeHeader with placeable header: placeable = nil, want non-nil")
	}
	want := PlaceableHeader{Dst: Rect16{Left: 0, Top: 0, Right: 200, Bottom: 100}, Inch: 1440}
	if *hdr.placeable != want {
		t.Errorf("decodeHeader placeable = %+v, want %+v", *hdr.placeable, want)
	}
	if hdr.recordStart != placeableHeaderSize+standardHeaderSize {
		t.Errorf("decodeHeader recordStart = %d, want %d", hdr.recordStart, placeableHeaderSize+standardHeaderSize)
	}
}

func TestDecodeHeaderShort(t *testing.T) {
	if _, err := decodeHeader([]byte{1, 2, 3}); err == nil {
		t.Fatal("decodeHeader on short buffer: err = nil, want non-nil")
	}
}
