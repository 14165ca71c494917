package imgstack

import (
	"math"
	"testing"
)

const matrixEpsilon = 1e-9

func pointNear(x, y, wantX, wantY float64) bool {
	return math.Abs(x-wantX) < matrixEpsilon && math.Abs(y-wantY) < matrixEpsilon
}

func TestMatrixBasics(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity() is not identity")
	}
	if !Translate(3, 4).IsTranslation() {
		t.Error("Translate is not a translation")
	}
	if Scale(2, 2).IsTranslation() {
		t.Error("Scale reported as translation")
	}

	x, y := Translate(3, 4).TransformPoint(1, 1)
	if !pointNear(x, y, 4, 5) {
		t.Errorf("Translate point = (%v,%v), want (4,5)", x, y)
	}

	x, y = Scale(2, 3).TransformPoint(5, 5)
	if !pointNear(x, y, 10, 15) {
		t.Errorf("Scale point = (%v,%v), want (10,15)", x, y)
	}

	x, y = Rotate(math.Pi / 2).TransformPoint(1, 0)
	if !pointNear(x, y, 0, 1) {
		t.Errorf("Rotate point = (%v,%v), want (0,1)", x, y)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// m.Multiply(other) applies other first.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	if !pointNear(x, y, 12, 2) {
		t.Errorf("scale-then-translate = (%v,%v), want (12,2)", x, y)
	}

	m = Scale(2, 2).Multiply(Translate(10, 0))
	x, y = m.TransformPoint(1, 1)
	if !pointNear(x, y, 22, 2) {
		t.Errorf("translate-then-scale = (%v,%v), want (22,2)", x, y)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(7, -3).Multiply(Rotate(0.5)).Multiply(Scale(2, 0.5))
	inv := m.Invert()

	x, y := m.TransformPoint(3, 4)
	bx, by := inv.TransformPoint(x, y)
	if !pointNear(bx, by, 3, 4) {
		t.Errorf("round trip = (%v,%v), want (3,4)", bx, by)
	}

	// Singular matrices invert to identity.
	if got := (Matrix{}).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert = %+v, want identity", got)
	}
}

func TestRotateScaleAt(t *testing.T) {
	// The pivot point is a fixed point of the transform.
	m := RotateScaleAt(math.Pi/3, 2, 3, 50, 40)
	x, y := m.TransformPoint(50, 40)
	if !pointNear(x, y, 50, 40) {
		t.Errorf("pivot moved to (%v,%v), want (50,40)", x, y)
	}

	// A 180-degree rotation about the center mirrors a corner.
	m = RotateScaleAt(math.Pi, 1, 1, 50, 50)
	x, y = m.TransformPoint(0, 0)
	if !pointNear(x, y, 100, 100) {
		t.Errorf("rotated corner = (%v,%v), want (100,100)", x, y)
	}

	// Negative scale about the center flips an axis.
	m = RotateScaleAt(0, -1, 1, 50, 50)
	x, y = m.TransformPoint(0, 20)
	if !pointNear(x, y, 100, 20) {
		t.Errorf("flipped point = (%v,%v), want (100,20)", x, y)
	}
}
