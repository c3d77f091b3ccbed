package geometry

// Triangle represents a triangular facet: a stored normal plus three
// vertices in file order
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// ComputedNormal returns the right-hand-rule normal of the vertex
// traversal V1 -> V2 -> V3. The result is not normalized; it is the
// zero vector for degenerate triangles.
func (t Triangle) ComputedNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2)
}

// UnitNormal returns the normalized right-hand-rule normal, or the
// zero vector for degenerate triangles
func (t Triangle) UnitNormal() Vector3 {
	return t.ComputedNormal().Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.ComputedNormal().Length() / 2.0
}

// IsDegenerate reports whether the triangle has zero area
// (collinear or coincident vertices)
func (t Triangle) IsDegenerate() bool {
	n := t.ComputedNormal()
	return n.X == 0 && n.Y == 0 && n.Z == 0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Vertices returns the three vertices in stored order
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.V1, t.V2, t.V3}
}
