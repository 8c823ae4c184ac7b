package wmf2svg

import (
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"
)

// coordTransform is the composed window-to-viewport-to-device transform:
// a per-axis scale and offset derived from the current SETWINDOWORG/EXT
// and SETVIEWPORTORG/EXT records, followed by the single global pixel
// scaling factor chosen when the header was decoded. It never has a
// rotation or shear term — WMF's own coordinate model doesn't either — but
// is carried as a full affine matrix.Matrix so it composes the same way
// the rest of the package's affine geometry does, and is flattened to an
// f64.Aff3 only at the point of use.
type coordTransform struct {
	m matrix.Matrix
}

// axisTransform returns the 1-D scale/offset for one axis: bare pixel
// scaling when the window extent on that axis is zero (a malformed or
// not-yet-initialized SETWINDOWEXT), otherwise the ratio of viewport to
// window extent composed with the global scaling.
func axisTransform(windowOrg, windowExt, viewportOrg, viewportExt int16, scaling float64) (scale, offset float64) {
	if windowExt == 0 {
		return scaling, 0
	}
	ratio := float64(viewportExt) / float64(windowExt)
	scale = ratio * scaling
	offset = (-float64(windowOrg)*ratio + float64(viewportOrg)) * scaling
	return scale, offset
}

// newCoordTransform builds the current transform from the device context's
// window/viewport fields and the global scaling factor fixed at startup.
func newCoordTransform(windowOrgX, windowOrgY, windowExtX, windowExtY,
	viewportOrgX, viewportOrgY, viewportExtX, viewportExtY int16, scaling float64) coordTransform {

	sx, ox := axisTransform(windowOrgX, windowExtX, viewportOrgX, viewportExtX, scaling)
	sy, oy := axisTransform(windowOrgY, windowExtY, viewportOrgY, viewportExtY, scaling)

	return coordTransform{m: matrix.Matrix{sx, 0, 0, sy, ox, oy}}
}

// aff3 flattens m to the x/image/math/f64 convention used to apply it to a
// point.
func (t coordTransform) aff3() f64.Aff3 {
	return f64.Aff3{t.m[0], t.m[2], t.m[4], t.m[1], t.m[3], t.m[5]}
}

// apply maps a WMF logical point to device (SVG) space.
func (t coordTransform) apply(x, y int16) (dx, dy float64) {
	a := t.aff3()
	fx, fy := float64(x), float64(y)
	return a[0]*fx + a[1]*fy + a[2], a[3]*fx + a[4]*fy + a[5]
}

// scaleX maps a single logical X coordinate, for callers that only need one
// axis (e.g. a width already expressed as a horizontal delta).
func (t coordTransform) scaleX(x int16) float64 {
	a := t.aff3()
	return a[0]*float64(x) + a[2]
}

// scaleY maps a single logical Y coordinate.
func (t coordTransform) scaleY(y int16) float64 {
	a := t.aff3()
	return a[3]*float64(y) + a[5]
}
