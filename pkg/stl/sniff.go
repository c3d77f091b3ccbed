package stl

import (
	"bytes"
	"encoding/binary"
)

const (
	headerSize = 80
	countSize  = 4
	recordSize = 50 // 12 bytes normal + 36 bytes vertices + 2 bytes attribute
)

var solidToken = []byte("solid")

// DetectFormat classifies a complete STL byte buffer as ASCII or binary.
//
// A buffer is binary when the size equation holds exactly:
//
//	84 + 50*count == len(data)
//
// with count read little-endian from bytes 80..84. A buffer is ASCII
// when its leading bytes, trimmed of whitespace, start with the
// case-sensitive token "solid". A file that starts with "solid" and
// also satisfies the size equation is classified binary: the size
// equation is a stronger structural signal than a five-byte prefix,
// and the tie-break must be deterministic. A non-ASCII buffer whose
// declared count implies more bytes than are present is classified
// binary as well, so that truncation is reported as truncation.
func DetectFormat(data []byte) (Format, error) {
	if expected, ok := binaryExpectedSize(data); ok && expected == uint64(len(data)) {
		return FormatBinary, nil
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), solidToken) {
		return FormatASCII, nil
	}
	// A buffer shorter than its declared count implies is still binary;
	// the decoder reports the truncation with the record tally.
	if expected, ok := binaryExpectedSize(data); ok && expected > uint64(len(data)) {
		return FormatBinary, nil
	}
	return 0, &FormatError{Reason: `no "solid" token and size does not match the binary layout`}
}

// binaryExpectedSize returns the total file size implied by the
// declared binary triangle count, and whether the buffer is long
// enough to carry a header and count at all.
func binaryExpectedSize(data []byte) (uint64, bool) {
	if len(data) < headerSize+countSize {
		return 0, false
	}
	count := binary.LittleEndian.Uint32(data[headerSize : headerSize+countSize])
	return uint64(headerSize+countSize) + uint64(count)*recordSize, true
}
