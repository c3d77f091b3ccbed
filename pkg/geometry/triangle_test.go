package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleComputedNormal(t *testing.T) {
	// Counterclockwise in the XY plane, right-hand normal points +Z
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	n := tri.UnitNormal()
	expected := NewVector3(0, 0, 1)

	if n.Distance(expected) > 1e-10 {
		t.Errorf("UnitNormal failed: expected %v, got %v", expected, n)
	}
}

func TestTriangleComputedNormalReversed(t *testing.T) {
	// Swapping two vertices flips the right-hand normal
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(1, 0, 0),
	)

	n := tri.UnitNormal()
	expected := NewVector3(0, 0, -1)

	if n.Distance(expected) > 1e-10 {
		t.Errorf("UnitNormal failed: expected %v, got %v", expected, n)
	}
}

func TestTriangleIsDegenerate(t *testing.T) {
	collinear := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
	)
	if !collinear.IsDegenerate() {
		t.Error("collinear triangle should be degenerate")
	}

	proper := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)
	if proper.IsDegenerate() {
		t.Error("proper triangle should not be degenerate")
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Pythagorean triple: 3, 5, 4
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(-1, 5, 0))

	if bbox.Min != NewVector3(-1, 2, 0) {
		t.Errorf("Min failed: got %v", bbox.Min)
	}
	if bbox.Max != NewVector3(1, 5, 3) {
		t.Errorf("Max failed: got %v", bbox.Max)
	}

	size := bbox.Size()
	if size != NewVector3(2, 3, 3) {
		t.Errorf("Size failed: got %v", size)
	}
}
