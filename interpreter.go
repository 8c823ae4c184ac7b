package wmf2svg

import (
	"math"

	"golang.org/x/text/encoding/charmap"

	"github.com/undisker/libxmf2svg/svg"
	"github.com/undisker/libxmf2svg/trace"
	"github.com/undisker/libxmf2svg/wmfrecord"
)

// ignoredRecords are recognized but have no SVG analogue: palette
// management and a handful of device-mode records that only matter to a
// real GDI surface. Spelled out explicitly (rather than "everything not in
// the switch") so that an unrecognized future record type is traced as
// UNKNOWN, not silently folded into IGNORED.
var ignoredRecords = map[wmfrecord.Type]bool{
	wmfrecord.SETRELABS:         true,
	wmfrecord.SETSTRETCHBLTMODE: true,
	wmfrecord.SETMAPPERFLAGS:    true,
	wmfrecord.ESCAPE:            true,
	wmfrecord.REALIZEPALETTE:    true,
	wmfrecord.SELECTPALETTE:     true,
	wmfrecord.CREATEPALETTE:     true,
	wmfrecord.SETPALENTRIES:     true,
	wmfrecord.RESIZEPALETTE:     true,
	wmfrecord.ANIMATEPALETTE:    true,
}

// processRecord interprets one record's payload (the bytes after its
// 6-byte prologue) against the interpreter state, emitting SVG as a side
// effect. It reports whether the record stream should stop, which only an
// EOF record does; a payload too short to decode skips just this record.
func (st *interpreterState) processRecord(typ wmfrecord.Type, funcNum uint16, payload []byte) (stop bool) {
	switch typ {
	case wmfrecord.EOF:
		st.trace.Typef("EOF")
		st.trace.Status(trace.Supported)
		return true

	case wmfrecord.SETBKCOLOR:
		color, err := wmfrecord.DecodeColor(payload)
		if err != nil {
			break
		}
		st.dc.bkColor = ColorRGB(color)
		st.trace.Typef("SETBKCOLOR (#%02X%02X%02X)", color.R, color.G, color.B)
		st.trace.Status(trace.Supported)

	case wmfrecord.SETBKMODE:
		mode, err := wmfrecord.DecodeUint16(payload)
		if err != nil {
			break
		}
		st.dc.bkMode = mode
		st.trace.Typef("SETBKMODE (%d)", mode)
		st.trace.Status(trace.Supported)

	case wmfrecord.SETMAPMODE:
		mode, err := wmfrecord.DecodeUint16(payload)
		if err != nil {
			break
		}
		st.mapMode = mode
		st.trace.Typef("SETMAPMODE (%d)", mode)
		st.trace.Status(trace.Supported)

	case wmfrecord.SETROP2:
		mode, err := wmfrecord.DecodeUint16(payload)
		if err != nil {
			break
		}
		st.dc.rop2Mode = mode
		st.trace.Typef("SETROP2 (%d)", mode)
		st.trace.Status(trace.Partial)

	case wmfrecord.SETPOLYFILLMODE:
		mode, err := wmfrecord.DecodeUint16(payload)
		if err != nil {
			break
		}
		st.dc.fillPolyMode = mode
		st.trace.Typef("SETPOLYFILLMODE (%d)", mode)
		st.trace.Status(trace.Supported)

	case wmfrecord.SETTEXTCOLOR:
		color, err := wmfrecord.DecodeColor(payload)
		if err != nil {
			break
		}
		st.dc.textColor = ColorRGB(color)
		st.trace.Typef("SETTEXTCOLOR (#%02X%02X%02X)", color.R, color.G, color.B)
		st.trace.Status(trace.Supported)

	case wmfrecord.SETTEXTALIGN:
		align, err := wmfrecord.DecodeUint16(payload)
		if err != nil {
			break
		}
		st.dc.textAlign = align
		st.trace.Typef("SETTEXTALIGN (0x%04X)", align)
		st.trace.Status(trace.Supported)

	case wmfrecord.SETWINDOWORG:
		pt, err := wmfrecord.DecodePoint(payload)
		if err != nil {
			break
		}
		st.windowOrgX, st.windowOrgY = pt.X, pt.Y
		st.trace.Typef("SETWINDOWORG (%d, %d)", pt.X, pt.Y)
		st.trace.Status(trace.Supported)

	case wmfrecord.SETWINDOWEXT:
		pt, err := wmfrecord.DecodePoint(payload)
		if err != nil {
			break
		}
		st.windowExtX, st.windowExtY = pt.X, pt.Y
		st.trace.Typef("SETWINDOWEXT (%d, %d)", pt.X, pt.Y)
		st.trace.Status(trace.Supported)

	case wmfrecord.SETVIEWPORTORG:
		pt, err := wmfrecord.DecodePoint(payload)
		if err != nil {
			break
		}
		st.viewportOrgX, st.viewportOrgY = pt.X, pt.Y
		st.trace.Typef("SETVIEWPORTORG (%d, %d)", pt.X, pt.Y)
		st.trace.Status(trace.Supported)

	case wmfrecord.SETVIEWPORTEXT:
		pt, err := wmfrecord.DecodePoint(payload)
		if err != nil {
			break
		}
		st.viewportExtX, st.viewportExtY = pt.X, pt.Y
		st.trace.Typef("SETVIEWPORTEXT (%d, %d)", pt.X, pt.Y)
		st.trace.Status(trace.Supported)

	case wmfrecord.SAVEDC:
		st.dcStack.push(st.dc)
		st.trace.Typef("SAVEDC")
		st.trace.Status(trace.Supported)

	case wmfrecord.RESTOREDC:
		n, err := wmfrecord.DecodeInt16(payload)
		if err != nil {
			break
		}
		st.dcStack.pop(n, &st.dc)
		st.trace.Typef("RESTOREDC (%d)", n)
		st.trace.Status(trace.Supported)

	case wmfrecord.SELECTOBJECT:
		idx, err := wmfrecord.DecodeUint16(payload)
		if err != nil {
			break
		}
		st.selectObject(idx)
		st.trace.Typef("SELECTOBJECT (%d)", idx)
		st.trace.Status(trace.Supported)

	case wmfrecord.DELETEOBJECT:
		idx, err := wmfrecord.DecodeUint16(payload)
		if err != nil {
			break
		}
		st.objects.delete(idx)
		st.trace.Typef("DELETEOBJECT (%d)", idx)
		st.trace.Status(trace.Supported)

	case wmfrecord.CREATEPENINDIRECT:
		pen, err := wmfrecord.DecodePen(payload)
		if err != nil {
			break
		}
		width := 1.0
		if pen.Width > 0 {
			width = float64(pen.Width)
		}
		obj := graphicsObject{
			kind:        objPen,
			strokeSet:   pen.Style != psNull,
			strokeStyle: pen.Style,
			strokeColor: ColorRGB(pen.Color),
			strokeWidth: width,
		}
		idx := st.objects.create(obj)
		st.trace.Typef("CREATEPENINDIRECT -> obj %d (style=%d, width=%.0f, color=#%02X%02X%02X)",
			idx, pen.Style, width, pen.Color.R, pen.Color.G, pen.Color.B)
		st.trace.Status(trace.Supported)

	case wmfrecord.CREATEBRUSHINDIRECT:
		brush, err := wmfrecord.DecodeBrush(payload)
		if err != nil {
			break
		}
		obj := graphicsObject{
			kind:      objBrush,
			fillSet:   brush.Style != bsNull && brush.Style != bsHollow,
			fillStyle: brush.Style,
			fillHatch: brush.Hatch,
			fillColor: ColorRGB(brush.Color),
		}
		idx := st.objects.create(obj)
		st.trace.Typef("CREATEBRUSHINDIRECT -> obj %d (style=%d, color=#%02X%02X%02X)",
			idx, brush.Style, brush.Color.R, brush.Color.G, brush.Color.B)
		st.trace.Status(trace.Supported)

	case wmfrecord.CREATEFONTINDIRECT:
		font, err := wmfrecord.DecodeFont(payload)
		if err != nil {
			break
		}
		obj := graphicsObject{
			kind:            objFont,
			fontSet:         true,
			fontName:        font.FaceName,
			fontHeight:      font.Height,
			fontWidth:       font.Width,
			fontEscapement:  font.Escapement,
			fontOrientation: font.Orientation,
			fontWeight:      font.Weight,
			fontItalic:      font.Italic != 0,
			fontUnderline:   font.Underline != 0,
			fontStrikeout:   font.StrikeOut != 0,
			fontCharset:     font.CharSet,
		}
		idx := st.objects.create(obj)
		st.trace.Typef("CREATEFONTINDIRECT -> obj %d (name=%s, height=%d)", idx, font.FaceName, font.Height)
		st.trace.Status(trace.Supported)

	case wmfrecord.MOVETO:
		pt, err := wmfrecord.DecodePoint(payload)
		if err != nil {
			break
		}
		st.curX, st.curY = st.transform().apply(pt.X, pt.Y)
		st.trace.Typef("MOVETO (%d, %d)", pt.X, pt.Y)
		st.trace.Status(trace.Supported)

	case wmfrecord.LINETO:
		pt, err := wmfrecord.DecodePoint(payload)
		if err != nil {
			break
		}
		x2, y2 := st.transform().apply(pt.X, pt.Y)
		st.svg.Line(st.curX, st.curY, x2, y2, st.svgStroke())
		st.curX, st.curY = x2, y2
		st.trace.Typef("LINETO (%d, %d)", pt.X, pt.Y)
		st.trace.Status(trace.Supported)

	case wmfrecord.RECTANGLE:
		rect, err := wmfrecord.DecodeRect(payload)
		if err != nil {
			break
		}
		tr := st.transform()
		x, y := tr.apply(rect.Left, rect.Top)
		w := tr.scaleX(rect.Right) - x
		h := tr.scaleY(rect.Bottom) - y
		st.svg.Rect(x, y, w, h, 0, 0, st.svgFill(), st.svgStroke())
		st.trace.Typef("RECTANGLE (%d,%d)-(%d,%d)", rect.Left, rect.Top, rect.Right, rect.Bottom)
		st.trace.Status(trace.Supported)

	case wmfrecord.ELLIPSE:
		rect, err := wmfrecord.DecodeRect(payload)
		if err != nil {
			break
		}
		tr := st.transform()
		x1, y1 := tr.apply(rect.Left, rect.Top)
		x2, y2 := tr.apply(rect.Right, rect.Bottom)
		cx, cy := (x1+x2)/2, (y1+y2)/2
		rx, ry := math.Abs(x2-x1)/2, math.Abs(y2-y1)/2
		st.svg.Ellipse(cx, cy, rx, ry, st.svgFill(), st.svgStroke())
		st.trace.Typef("ELLIPSE (%d,%d)-(%d,%d)", rect.Left, rect.Top, rect.Right, rect.Bottom)
		st.trace.Status(trace.Supported)

	case wmfrecord.ROUNDRECT:
		rr, err := wmfrecord.DecodeRoundRect(payload)
		if err != nil {
			break
		}
		tr := st.transform()
		x, y := tr.apply(rr.Rect.Left, rr.Rect.Top)
		w := tr.scaleX(rr.Rect.Right) - x
		h := tr.scaleY(rr.Rect.Bottom) - y
		rx := math.Abs(float64(rr.Width)*st.scaling) / 2.0
		ry := math.Abs(float64(rr.Height)*st.scaling) / 2.0
		st.svg.Rect(x, y, w, h, rx, ry, st.svgFill(), st.svgStroke())
		st.trace.Typef("ROUNDRECT (%d,%d)-(%d,%d) r=(%d,%d)", rr.Rect.Left, rr.Rect.Top, rr.Rect.Right, rr.Rect.Bottom, rr.Width, rr.Height)
		st.trace.Status(trace.Supported)

	case wmfrecord.POLYGON:
		pts, err := wmfrecord.DecodePolyPoints(payload)
		if err != nil || len(pts) == 0 {
			break
		}
		st.svg.Polygon(st.transformPoints(pts), st.svgFill(), st.svgStroke())
		st.trace.Typef("POLYGON (%d points)", len(pts))
		st.trace.Status(trace.Supported)

	case wmfrecord.POLYLINE:
		pts, err := wmfrecord.DecodePolyPoints(payload)
		if err != nil || len(pts) == 0 {
			break
		}
		st.svg.Polyline(st.transformPoints(pts), st.svgStroke())
		st.trace.Typef("POLYLINE (%d points)", len(pts))
		st.trace.Status(trace.Supported)

	case wmfrecord.POLYPOLYGON:
		pp, err := wmfrecord.DecodePolyPolygon(payload)
		if err != nil {
			break
		}
		for _, poly := range pp.Polygons {
			if len(poly) == 0 {
				continue
			}
			st.svg.Polygon(st.transformPoints(poly), st.svgFill(), st.svgStroke())
		}
		st.trace.Typef("POLYPOLYGON (%d polygons)", len(pp.Polygons))
		st.trace.Status(trace.Supported)

	case wmfrecord.ARC, wmfrecord.CHORD, wmfrecord.PIE:
		arc, err := wmfrecord.DecodeArc(payload)
		if err != nil {
			break
		}
		st.drawArc(typ, arc)
		names := map[wmfrecord.Type]string{wmfrecord.ARC: "ARC", wmfrecord.CHORD: "CHORD", wmfrecord.PIE: "PIE"}
		st.trace.Typef("%s", names[typ])
		st.trace.Status(trace.Supported)

	case wmfrecord.TEXTOUT:
		to, err := wmfrecord.DecodeTextOut(payload)
		if err != nil || len(to.Text) == 0 {
			break
		}
		x, y := st.transform().apply(to.Dst.X, to.Dst.Y)
		st.drawText(x, y, to.Text)
		st.trace.Typef("TEXTOUT at (%d,%d)", to.Dst.X, to.Dst.Y)
		st.trace.Status(trace.Supported)

	case wmfrecord.EXTTEXTOUT:
		eto, err := wmfrecord.DecodeExtTextOut(payload)
		if err != nil || len(eto.Text) == 0 {
			break
		}
		x, y := st.transform().apply(eto.Dst.X, eto.Dst.Y)
		st.drawText(x, y, eto.Text)
		st.trace.Typef("EXTTEXTOUT at (%d,%d)", eto.Dst.X, eto.Dst.Y)
		st.trace.Status(trace.Supported)

	default:
		if ignoredRecords[typ] {
			st.trace.Typef("(ignored record 0x%04X)", funcNum)
			st.trace.Status(trace.Ignored)
		} else {
			st.trace.Typef("UNKNOWN (0x%04X)", funcNum)
			st.trace.Status(trace.Unknown)
		}
	}

	return false
}

// selectObject resolves a SELECTOBJECT operand, which is either a stock
// object reference or a table index (see objectSelector), and applies it
// to the device context.
func (st *interpreterState) selectObject(raw uint16) {
	sel := decodeSelector(raw)
	if sel.stock {
		st.applyStockObject(sel.code)
		return
	}

	obj := st.objects.get(sel.index)
	switch obj.kind {
	case objPen:
		st.dc.strokeSet = obj.strokeSet
		st.dc.strokeStyle = obj.strokeStyle
		st.dc.strokeColor = obj.strokeColor
		st.dc.strokeWidth = obj.strokeWidth
	case objBrush:
		st.dc.fillSet = obj.fillSet
		st.dc.fillStyle = obj.fillStyle
		st.dc.fillHatch = obj.fillHatch
		st.dc.fillColor = obj.fillColor
	case objFont:
		st.dc.fontSet = obj.fontSet
		st.dc.fontName = obj.fontName
		st.dc.fontHeight = obj.fontHeight
		st.dc.fontWidth = obj.fontWidth
		st.dc.fontEscapement = obj.fontEscapement
		st.dc.fontOrientation = obj.fontOrientation
		st.dc.fontWeight = obj.fontWeight
		st.dc.fontItalic = obj.fontItalic
		st.dc.fontUnderline = obj.fontUnderline
		st.dc.fontStrikeout = obj.fontStrikeout
		st.dc.fontCharset = obj.fontCharset
	}
}

func (st *interpreterState) transformPoints(pts []wmfrecord.Point) []svg.Point {
	tr := st.transform()
	out := make([]svg.Point, len(pts))
	for i, p := range pts {
		x, y := tr.apply(p.X, p.Y)
		out[i] = svg.Point{X: x, Y: y}
	}
	return out
}

// drawArc renders an ARC, CHORD or PIE record as a single SVG path. The
// start/end angles are derived from the already-projected start/end
// points relative to the ellipse center (atan2 in device space, not
// logical space), and the sweep flag is always 1; a mirrored viewport
// (negative extent) therefore sweeps the wrong way.
func (st *interpreterState) drawArc(typ wmfrecord.Type, arc wmfrecord.Arc) {
	tr := st.transform()
	x1, y1 := tr.apply(arc.Rect.Left, arc.Rect.Top)
	x2, y2 := tr.apply(arc.Rect.Right, arc.Rect.Bottom)
	cx, cy := (x1+x2)/2, (y1+y2)/2
	rx, ry := math.Abs(x2-x1)/2, math.Abs(y2-y1)/2

	startX, startY := tr.apply(arc.Start.X, arc.Start.Y)
	endX, endY := tr.apply(arc.End.X, arc.End.Y)

	startAngle := math.Atan2(startY-cy, startX-cx)
	endAngle := math.Atan2(endY-cy, endX-cx)

	sx, sy := cx+rx*math.Cos(startAngle), cy+ry*math.Sin(startAngle)
	ex, ey := cx+rx*math.Cos(endAngle), cy+ry*math.Sin(endAngle)

	angleDiff := endAngle - startAngle
	if angleDiff < 0 {
		angleDiff += 2 * math.Pi
	}
	largeArc := angleDiff > math.Pi

	var pieCenter *svg.Point
	closed := false
	fill := svg.Fill{Set: false}
	switch typ {
	case wmfrecord.PIE:
		pieCenter = &svg.Point{X: cx, Y: cy}
		closed = true
		fill = st.svgFill()
	case wmfrecord.CHORD:
		closed = true
		fill = st.svgFill()
	}

	st.svg.ArcPath(svg.Point{X: sx, Y: sy}, svg.Point{X: ex, Y: ey}, rx, ry, largeArc, pieCenter, closed, fill, st.svgStroke())
}

// drawText renders a TEXTOUT or EXTTEXTOUT string at an already-projected
// anchor point, both records sharing identical presentation rules. WMF
// text is a single-byte ANSI encoding, not UTF-8; it is decoded as
// Windows-1252, the code page GDI's TEXTOUT/EXTTEXTOUT has always
// defaulted to in practice, before it reaches the SVG writer.
func (st *interpreterState) drawText(x, y float64, text string) {
	decoded, err := charmap.Windows1252.NewDecoder().String(text)
	if err != nil {
		decoded = text
	}
	style := svg.TextStyle{
		Color:      svg.Color(st.dc.textColor),
		FontSize:   st.fontSize(),
		Anchor:     st.textAnchor(),
		FontFamily: st.dc.fontName,
		Italic:     st.dc.fontItalic,
		Bold:       st.dc.fontWeight > 400,
	}
	st.svg.Text(x, y, decoded, style)
}
