// Package analysis derives validity facts and measurements from a
// decoded STL model. All functions are pure and deterministic.
package analysis

import (
	"math"

	"github.com/hkoenig/stlmeta/pkg/geometry"
	"github.com/hkoenig/stlmeta/pkg/stl"
)

// normalTolerance is the per-component tolerance when comparing the
// stored unit normal against the computed one.
const normalTolerance = 1e-8

// Findings are the geometric validity facts for one model.
// Every boolean is vacuously true for an empty model.
type Findings struct {
	TriangleCount int

	// AllFacetsClockwise is true when every facet's stored normal
	// agrees with the right-hand traversal of its vertices, i.e. the
	// dot product of (V2-V1)x(V3-V1) with the stored normal is >= 0.
	// Degenerate facets satisfy the test vacuously.
	AllFacetsClockwise bool

	// AllCoordinatesNonNegative is true when every coordinate of every
	// vertex is >= 0.
	AllCoordinatesNonNegative bool

	// AllNormalsCorrect is true when every facet's stored normal is,
	// after normalization, approximately equal to the computed one.
	// Facets with a zero stored or computed normal pass vacuously.
	AllNormalsCorrect bool
}

// Inspect computes the findings in a single linear pass
func Inspect(m *stl.Model) Findings {
	f := Findings{
		TriangleCount:             m.TriangleCount(),
		AllFacetsClockwise:        true,
		AllCoordinatesNonNegative: true,
		AllNormalsCorrect:         true,
	}

	for _, tri := range m.Triangles {
		if !windingOK(tri) {
			f.AllFacetsClockwise = false
		}
		if !normalOK(tri) {
			f.AllNormalsCorrect = false
		}
		for _, v := range tri.Vertices() {
			if v.X < 0 || v.Y < 0 || v.Z < 0 {
				f.AllCoordinatesNonNegative = false
			}
		}
	}

	return f
}

func windingOK(tri geometry.Triangle) bool {
	cross := tri.ComputedNormal()
	if cross == (geometry.Vector3{}) {
		return true
	}
	return cross.Dot(tri.Normal) >= 0
}

func normalOK(tri geometry.Triangle) bool {
	computed := tri.UnitNormal()
	stored := tri.Normal.Normalize()
	if computed == (geometry.Vector3{}) || stored == (geometry.Vector3{}) {
		return true
	}
	return math.Abs(computed.X-stored.X) <= normalTolerance &&
		math.Abs(computed.Y-stored.Y) <= normalTolerance &&
		math.Abs(computed.Z-stored.Z) <= normalTolerance
}

// HasIsolatedTriangle reports whether any triangle shares fewer than
// two vertices with every other triangle. Quadratic in triangle count;
// callers gate it behind the extended-checks switch for large models.
func HasIsolatedTriangle(m *stl.Model) bool {
	if m.TriangleCount() < 2 {
		return m.TriangleCount() == 1
	}

	for i, a := range m.Triangles {
		isolated := true
		for j, b := range m.Triangles {
			if i == j {
				continue
			}
			if sharedVertices(a, b) >= 2 {
				isolated = false
				break
			}
		}
		if isolated {
			return true
		}
	}
	return false
}

func sharedVertices(a, b geometry.Triangle) int {
	count := 0
	for _, va := range a.Vertices() {
		for _, vb := range b.Vertices() {
			if va == vb {
				count++
				break
			}
		}
	}
	return count
}
