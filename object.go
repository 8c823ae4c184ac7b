package wmf2svg

// objectKind identifies which GDI object a table slot holds.
type objectKind int

const (
	objInvalid objectKind = iota
	objPen
	objBrush
	objFont
)

// graphicsObject is a GDI object as stored in the object table: a pen,
// brush or font. Only the fields relevant to Kind are meaningful, mirroring
// the tagged-union layout of the format's own object record.
type graphicsObject struct {
	kind objectKind

	// Pen fields.
	strokeSet   bool
	strokeStyle uint16
	strokeColor ColorRGB
	strokeWidth float64

	// Brush fields.
	fillSet   bool
	fillStyle uint16
	fillHatch uint16
	fillColor ColorRGB

	// Font fields.
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
}

// objectTable is a fixed-capacity slotted registry of graphics objects,
// sized from the file header's NumOfObjects field. CreateObject always
// fills the lowest-index Invalid slot, matching a linear first-fit scan
// rather than a growable container, so that object indices referenced later
// in the record stream stay stable and small.
type objectTable struct {
	slots []graphicsObject
}

func newObjectTable(size uint16) *objectTable {
	return &objectTable{slots: make([]graphicsObject, size)}
}

// create inserts obj into the lowest-index Invalid slot and returns its
// index, or -1 if the table is full.
func (t *objectTable) create(obj graphicsObject) int {
	for i := range t.slots {
		if t.slots[i].kind == objInvalid {
			t.slots[i] = obj
			return i
		}
	}
	return -1
}

// delete resets the slot at index to its zero (Invalid) value. An
// out-of-range index is silently ignored, matching the tolerance of the
// rest of the interpreter toward malformed record streams.
func (t *objectTable) delete(index uint16) {
	if int(index) >= len(t.slots) {
		return
	}
	t.slots[index] = graphicsObject{}
}

// get returns the object at index, or the zero (Invalid) value if index is
// out of range.
func (t *objectTable) get(index uint16) graphicsObject {
	if int(index) >= len(t.slots) {
		return graphicsObject{}
	}
	return t.slots[index]
}
