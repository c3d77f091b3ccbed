package stl

import (
	"encoding/binary"
	"math"

	"github.com/hkoenig/stlmeta/pkg/geometry"
)

// decodeBinary parses the binary STL layout: an 80-byte header, a
// 4-byte little-endian triangle count, then one 50-byte record per
// triangle. The header text is never used as a model name.
func decodeBinary(data []byte) (*Model, error) {
	if len(data) < headerSize+countSize {
		return nil, &TruncatedError{Declared: 0, Read: 0}
	}

	count := binary.LittleEndian.Uint32(data[headerSize : headerSize+countSize])
	body := data[headerSize+countSize:]

	model := NewModel("", FormatBinary)
	for i := uint32(0); i < count; i++ {
		offset := int(i) * recordSize
		if offset+recordSize > len(body) {
			return nil, &TruncatedError{Declared: int(count), Read: int(i)}
		}
		model.AddTriangle(decodeRecord(body[offset : offset+recordSize]))
	}

	return model, nil
}

// decodeRecord decodes one 50-byte triangle record: 12 little-endian
// IEEE-754 floats (normal, then three vertices) and 2 attribute bytes
// that are ignored.
func decodeRecord(rec []byte) geometry.Triangle {
	var f [12]float64
	for i := range f {
		bits := binary.LittleEndian.Uint32(rec[i*4:])
		f[i] = float64(math.Float32frombits(bits))
	}
	return geometry.NewTriangle(
		geometry.NewVector3(f[0], f[1], f[2]),
		geometry.NewVector3(f[3], f[4], f[5]),
		geometry.NewVector3(f[6], f[7], f[8]),
		geometry.NewVector3(f[9], f[10], f[11]),
	)
}
