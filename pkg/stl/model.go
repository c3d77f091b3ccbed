package stl

import (
	"strings"

	"github.com/hkoenig/stlmeta/pkg/geometry"
)

// Format identifies one of the two STL encodings
type Format int

const (
	FormatASCII Format = iota
	FormatBinary
)

// Version returns the format label used in characterization reports
func (f Format) Version() string {
	if f == FormatBinary {
		return "Binary"
	}
	return "ASCII"
}

func (f Format) String() string {
	return f.Version()
}

// Model represents a decoded STL file
type Model struct {
	// Name is the solid name from the first line of an ASCII file.
	// Binary files never carry a usable name, even though the 80-byte
	// header may contain arbitrary text.
	Name      string
	Format    Format
	Triangles []geometry.Triangle
}

// NewModel creates a new model
func NewModel(name string, format Format) *Model {
	return &Model{
		Name:      name,
		Format:    format,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a triangle to the model, preserving file order
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// HasName reports whether the model carries a non-blank solid name
func (m *Model) HasName() bool {
	return strings.TrimSpace(m.Name) != ""
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
