package wmf2svg

import "testing"

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestAxisTransformIdentityOnZeroExtent(t *testing.T) {
	scale, offset := axisTransform(10, 0, 0, 100, 2.0)
	if scale != 2.0 || offset != 0 {
		t.Errorf("axisTransform with zero window extent = (%v, %v), want (2, 0)", scale, offset)
	}
}

func TestAxisTransformIdentityMapping(t *testing.T) {
	scale, offset := axisTransform(0, 100, 0, 100, 1.0)
	if !approxEqual(scale, 1.0) || !approxEqual(offset, 0) {
		t.Errorf("identity axisTransform = (%v, %v), want (1, 0)", scale, offset)
	}
}

func TestAxisTransformScalingAndOrigin(t *testing.T) {
	// window [10, 110) -> viewport [0, 200), global scaling 1.0: ratio 2.
	scale, offset := axisTransform(10, 100, 0, 200, 1.0)
	if !approxEqual(scale, 2.0) {
		t.Errorf("scale = %v, want 2", scale)
	}
	// offset should map windowOrg (10) to viewportOrg (0).
	mapped := scale*10 + offset
	if !approxEqual(mapped, 0) {
		t.Errorf("windowOrg maps to %v, want 0 (viewportOrg)", mapped)
	}
}

func TestNewCoordTransformApply(t *testing.T) {
	tr := newCoordTransform(0, 0, 100, 100, 0, 0, 200, 200, 1.0)
	x, y := tr.apply(50, 50)
	if !approxEqual(x, 100) || !approxEqual(y, 100) {
		t.Errorf("apply(50,50) = (%v,%v), want (100,100)", x, y)
	}
}

func TestNewCoordTransformWithGlobalScaling(t *testing.T) {
	tr := newCoordTransform(0, 0, 100, 100, 0, 0, 100, 100, 2.0)
	x, y := tr.apply(10, 10)
	if !approxEqual(x, 20) || !approxEqual(y, 20) {
		t.Errorf("apply(10,10) with scaling=2 = (%v,%v), want (20,20)", x, y)
	}
}

func TestScaleXYDeltaIgnoresOffset(t *testing.T) {
	tr := newCoordTransform(10, 20, 100, 100, 5, 5, 200, 200, 1.0)
	x0, y0 := tr.apply(10, 20)
	w := tr.scaleX(110) - x0
	h := tr.scaleY(120) - y0
	if !approxEqual(w, 200) {
		t.Errorf("width delta = %v, want 200 (100 window units * ratio 2)", w)
	}
	if !approxEqual(h, 200) {
		t.Errorf("height delta = %v, want 200", h)
	}
}
