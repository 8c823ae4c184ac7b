package wmfrecord

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func le16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }

func TestDecodeColor(t *testing.T) {
	payload := []byte{0x11, 0x22, 0x33, 0x00}
	got, err := DecodeColor(payload)
	if err != nil {
		t.Fatalf("DecodeColor: %v", err)
	}
	want := Color{R: 0x11, G: 0x22, B: 0x33}
	if got != want {
		t.Errorf("DecodeColor = %+v, want %+v", got, want)
	}
}

func TestDecodeColorShort(t *testing.T) {
	if _, err := DecodeColor([]byte{0x01, 0x02}); err != ErrShortRecord {
		t.Errorf("DecodeColor on short payload: err = %v, want ErrShortRecord", err)
	}
}

func TestDecodeUint16(t *testing.T) {
	got, err := DecodeUint16(le16(0x1234))
	if err != nil {
		t.Fatalf("DecodeUint16: %v", err)
	}
	if got != 0x1234 {
		t.Errorf("DecodeUint16 = 0x%04X, want 0x1234", got)
	}
}

func TestDecodePoint(t *testing.T) {
	payload := append(append([]byte{}, le16(uint16(int16(-5)))...), le16(10)...)
	got, err := DecodePoint(payload)
	if err != nil {
		t.Fatalf("DecodePoint: %v", err)
	}
	want := Point{X: -5, Y: 10}
	if got != want {
		t.Errorf("DecodePoint = %+v, want %+v", got, want)
	}
}

func TestDecodeRect(t *testing.T) {
	var payload []byte
	for _, v := range []int16{1, 2, 30, 40} {
		payload = append(payload, le16(uint16(v))...)
	}
	got, err := DecodeRect(payload)
	if err != nil {
		t.Fatalf("DecodeRect: %v", err)
	}
	want := Rect{Left: 1, Top: 2, Right: 30, Bottom: 40}
	if got != want {
		t.Errorf("DecodeRect = %+v, want %+v", got, want)
	}
}

func TestDecodeRoundRect(t *testing.T) {
	var payload []byte
	for _, v := range []int16{5, 6, 0, 0, 100, 200} {
		payload = append(payload, le16(uint16(v))...)
	}
	got, err := DecodeRoundRect(payload)
	if err != nil {
		t.Fatalf("DecodeRoundRect: %v", err)
	}
	want := RoundRect{Width: 5, Height: 6, Rect: Rect{Left: 0, Top: 0, Right: 100, Bottom: 200}}
	if got != want {
		t.Errorf("DecodeRoundRect = %+v, want %+v", got, want)
	}
}

func TestDecodePen(t *testing.T) {
	var payload []byte
	payload = append(payload, le16(psDashForTest)...)
	payload = append(payload, le16(uint16(int16(3)))...) // Width.x
	payload = append(payload, le16(0)...)                // Width.y, unused
	payload = append(payload, 0x10, 0x20, 0x30, 0x00)     // COLORREF

	got, err := DecodePen(payload)
	if err != nil {
		t.Fatalf("DecodePen: %v", err)
	}
	want := Pen{Style: psDashForTest, Width: 3, Color: Color{R: 0x10, G: 0x20, B: 0x30}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodePen mismatch (-want +got):\n%s", diff)
	}
}

const psDashForTest uint16 = 1

func TestDecodeBrush(t *testing.T) {
	var payload []byte
	payload = append(payload, le16(0)...)
	payload = append(payload, 0xAA, 0xBB, 0xCC, 0x00)
	payload = append(payload, le16(2)...) // Hatch

	got, err := DecodeBrush(payload)
	if err != nil {
		t.Fatalf("DecodeBrush: %v", err)
	}
	want := Brush{Style: 0, Color: Color{R: 0xAA, G: 0xBB, B: 0xCC}, Hatch: 2}
	if got != want {
		t.Errorf("DecodeBrush = %+v, want %+v", got, want)
	}
}

func TestDecodeFont(t *testing.T) {
	var payload []byte
	for _, v := range []int16{-12, 0, 0, 0, 700} {
		payload = append(payload, le16(uint16(v))...)
	}
	payload = append(payload, 1, 0, 0, 0)    // Italic, Underline, StrikeOut, CharSet
	payload = append(payload, 0, 0, 0, 0)    // OutPrecision, ClipPrecision, Quality, PitchAndFamily
	payload = append(payload, []byte("Arial\x00")...)

	got, err := DecodeFont(payload)
	if err != nil {
		t.Fatalf("DecodeFont: %v", err)
	}
	if got.Height != -12 || got.Weight != 700 || got.Italic != 1 || got.FaceName != "Arial" {
		t.Errorf("DecodeFont = %+v", got)
	}
}

func TestDecodePolyPoints(t *testing.T) {
	var payload []byte
	payload = append(payload, le16(2)...)
	payload = append(payload, le16(uint16(int16(1)))...)
	payload = append(payload, le16(uint16(int16(2)))...)
	payload = append(payload, le16(uint16(int16(3)))...)
	payload = append(payload, le16(uint16(int16(4)))...)

	got, err := DecodePolyPoints(payload)
	if err != nil {
		t.Fatalf("DecodePolyPoints: %v", err)
	}
	want := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodePolyPoints mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePolyPointsShort(t *testing.T) {
	payload := append([]byte{}, le16(5)...) // claims 5 points, has none
	if _, err := DecodePolyPoints(payload); err != ErrShortRecord {
		t.Errorf("DecodePolyPoints on truncated payload: err = %v, want ErrShortRecord", err)
	}
}

func TestDecodePolyPolygon(t *testing.T) {
	var payload []byte
	payload = append(payload, le16(2)...) // nPolys
	payload = append(payload, le16(1)...) // first poly: 1 point
	payload = append(payload, le16(2)...) // second poly: 2 points
	payload = append(payload, le16(uint16(int16(9)))...)
	payload = append(payload, le16(uint16(int16(9)))...)
	payload = append(payload, le16(uint16(int16(1)))...)
	payload = append(payload, le16(uint16(int16(1)))...)
	payload = append(payload, le16(uint16(int16(2)))...)
	payload = append(payload, le16(uint16(int16(2)))...)

	got, err := DecodePolyPolygon(payload)
	if err != nil {
		t.Fatalf("DecodePolyPolygon: %v", err)
	}
	if len(got.Polygons) != 2 || len(got.Polygons[0]) != 1 || len(got.Polygons[1]) != 2 {
		t.Fatalf("DecodePolyPolygon shape = %+v", got)
	}
	if got.Polygons[1][1] != (Point{X: 2, Y: 2}) {
		t.Errorf("DecodePolyPolygon second polygon second point = %+v", got.Polygons[1][1])
	}
}

func TestDecodeArc(t *testing.T) {
	var payload []byte
	for _, v := range []int16{1, 2, 3, 4, 0, 0, 100, 100} {
		payload = append(payload, le16(uint16(v))...)
	}
	got, err := DecodeArc(payload)
	if err != nil {
		t.Fatalf("DecodeArc: %v", err)
	}
	want := Arc{Start: Point{1, 2}, End: Point{3, 4}, Rect: Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}}
	if got != want {
		t.Errorf("DecodeArc = %+v, want %+v", got, want)
	}
}

func TestDecodeTextOut(t *testing.T) {
	var payload []byte
	payload = append(payload, le16(uint16(int16(10)))...)
	payload = append(payload, le16(uint16(int16(20)))...)
	payload = append(payload, le16(uint16(int16(5)))...)
	payload = append(payload, []byte("hello")...)

	got, err := DecodeTextOut(payload)
	if err != nil {
		t.Fatalf("DecodeTextOut: %v", err)
	}
	want := TextOut{Dst: Point{10, 20}, Text: "hello"}
	if got != want {
		t.Errorf("DecodeTextOut = %+v, want %+v", got, want)
	}
}

func TestDecodeTextOutStopsAtNUL(t *testing.T) {
	var payload []byte
	payload = append(payload, le16(0)...)
	payload = append(payload, le16(0)...)
	payload = append(payload, le16(5)...)
	payload = append(payload, 'h', 'i', 0, 'x', 'x')

	got, err := DecodeTextOut(payload)
	if err != nil {
		t.Fatalf("DecodeTextOut: %v", err)
	}
	if got.Text != "hi" {
		t.Errorf("DecodeTextOut with embedded NUL: Text = %q, want %q", got.Text, "hi")
	}
}

func TestDecodeExtTextOutWithoutRect(t *testing.T) {
	var payload []byte
	payload = append(payload, le16(uint16(int16(1)))...)
	payload = append(payload, le16(uint16(int16(2)))...)
	payload = append(payload, le16(uint16(int16(2)))...) // Length
	payload = append(payload, le16(0)...)                // Opts: no OPAQUE/CLIPPED
	payload = append(payload, []byte("ab")...)

	got, err := DecodeExtTextOut(payload)
	if err != nil {
		t.Fatalf("DecodeExtTextOut: %v", err)
	}
	if got.Text != "ab" || got.Rect != (Rect{}) {
		t.Errorf("DecodeExtTextOut = %+v", got)
	}
}

func TestDecodeExtTextOutWithRect(t *testing.T) {
	var payload []byte
	payload = append(payload, le16(0)...)
	payload = append(payload, le16(0)...)
	payload = append(payload, le16(uint16(int16(2)))...) // Length
	payload = append(payload, le16(ETOClipped)...)
	for _, v := range []int16{0, 0, 10, 10} {
		payload = append(payload, le16(uint16(v))...)
	}
	payload = append(payload, []byte("xy")...)

	got, err := DecodeExtTextOut(payload)
	if err != nil {
		t.Fatalf("DecodeExtTextOut: %v", err)
	}
	want := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	if got.Rect != want || got.Text != "xy" {
		t.Errorf("DecodeExtTextOut = %+v", got)
	}
}
