package wmf2svg

// Stock-object codes, the low byte of the predefined GDI stock-object
// selectors (WHITE_BRUSH = 0x80000000, LTGRAY_BRUSH = 0x80000001, and so
// on up through SYSTEM_FIXED_FONT = 0x80000010).
const (
	stockWhiteBrush  uint8 = 0x00
	stockLtGrayBrush uint8 = 0x01
	stockGrayBrush   uint8 = 0x02
	stockDkGrayBrush uint8 = 0x03
	stockBlackBrush  uint8 = 0x04
	stockNullBrush   uint8 = 0x05
	stockWhitePen    uint8 = 0x06
	stockBlackPen    uint8 = 0x07
	stockNullPen     uint8 = 0x08
	// 0x09 is unused. 0x0A-0x10 name stock fonts and DEFAULT_PALETTE;
	// selecting any of them is a no-op (the emitter has no notion of a GDI
	// stock font, so the DC's current font fields are left untouched).
)

// objectSelector is a decoded SELECTOBJECT operand: either a reference to
// one of the fixed stock objects, or an index into the file's object
// table. Stock objects are nominally 0x80000000-prefixed 32-bit
// constants, but the record's operand is a 16-bit word, so bit 31 never
// survives the trip; testing the wire value against the 32-bit mask can
// never succeed. This type resolves the two cases off the 16-bit value
// instead: bit 15 (0x8000) marks a stock reference, with the low byte
// naming which one; any other value is a plain table index. The table is
// sized from the header's 16-bit nObjects field, so it can hold more than
// 0x8000 slots; an operand of 0x8000 or above is always read as a stock
// reference, and slots from 0x8000 up cannot be selected.
type objectSelector struct {
	stock bool
	code  uint8
	index uint16
}

// decodeSelector interprets a SELECTOBJECT record's raw 16-bit operand.
func decodeSelector(raw uint16) objectSelector {
	if raw&0x8000 != 0 {
		return objectSelector{stock: true, code: uint8(raw & 0xFF)}
	}
	return objectSelector{index: raw}
}

// IsStock reports whether sel names a stock object rather than a table index.
func (sel objectSelector) IsStock() bool {
	return sel.stock
}

// applyStockObject updates the device context for a stock object
// reference: solid-color brushes and pens at their fixed RGB values,
// NULL_BRUSH/NULL_PEN disabling fill/stroke, and every stock font plus
// DEFAULT_PALETTE as a no-op (the renderer has no stock-font concept to
// fall back to).
func (st *interpreterState) applyStockObject(code uint8) {
	switch code {
	case stockWhiteBrush:
		st.dc.fillSet, st.dc.fillStyle, st.dc.fillColor = true, bsSolid, colorWhite
	case stockLtGrayBrush:
		st.dc.fillSet, st.dc.fillStyle, st.dc.fillColor = true, bsSolid, colorLtGray
	case stockGrayBrush:
		st.dc.fillSet, st.dc.fillStyle, st.dc.fillColor = true, bsSolid, colorGray
	case stockDkGrayBrush:
		st.dc.fillSet, st.dc.fillStyle, st.dc.fillColor = true, bsSolid, colorDkGray
	case stockBlackBrush:
		st.dc.fillSet, st.dc.fillStyle, st.dc.fillColor = true, bsSolid, colorBlack
	case stockNullBrush:
		st.dc.fillSet = false
	case stockWhitePen:
		st.dc.strokeSet, st.dc.strokeStyle, st.dc.strokeColor, st.dc.strokeWidth = true, psSolid, colorWhite, 1.0
	case stockBlackPen:
		st.dc.strokeSet, st.dc.strokeStyle, st.dc.strokeColor, st.dc.strokeWidth = true, psSolid, colorBlack, 1.0
	case stockNullPen:
		st.dc.strokeSet = false
	}
}
