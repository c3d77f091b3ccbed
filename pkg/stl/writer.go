package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hkoenig/stlmeta/pkg/geometry"
)

// EncodeASCII writes the model in the ASCII STL encoding. Coordinates
// are written with the shortest representation that round-trips
// through ParseFloat.
func EncodeASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "solid %s\n", m.Name); err != nil {
		return err
	}
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %s\n", formatVector(t.Normal))
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range t.Vertices() {
			fmt.Fprintf(bw, "      vertex %s\n", formatVector(v))
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	if _, err := fmt.Fprintf(bw, "endsolid %s\n", m.Name); err != nil {
		return err
	}

	return bw.Flush()
}

// %g prints the fewest digits that round-trip through ParseFloat
func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
}

// EncodeBinary writes the model in the binary STL encoding: 80-byte
// header, little-endian uint32 triangle count, 50-byte records.
// Coordinates are narrowed to float32 as the format requires.
func EncodeBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	var header [headerSize]byte
	copy(header[:], "exported by stlmeta")
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return err
	}

	var rec [recordSize]byte
	for _, t := range m.Triangles {
		encodeRecord(&rec, t)
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func encodeRecord(rec *[recordSize]byte, t geometry.Triangle) {
	vals := [12]float64{
		t.Normal.X, t.Normal.Y, t.Normal.Z,
		t.V1.X, t.V1.Y, t.V1.Z,
		t.V2.X, t.V2.Y, t.V2.Z,
		t.V3.X, t.V3.Y, t.V3.Z,
	}
	for i, v := range vals {
		binary.LittleEndian.PutUint32(rec[i*4:], math.Float32bits(float32(v)))
	}
	rec[48] = 0 // attribute byte count
	rec[49] = 0
}
