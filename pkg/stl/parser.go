package stl

import (
	"fmt"
	"os"
)

// Parse reads an STL file and returns a Model.
// It automatically detects whether the file is ASCII or binary format.
func Parse(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(data)
}

// Decode sniffs the format of a complete STL byte buffer and decodes it
func Decode(data []byte) (*Model, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}

	if format == FormatBinary {
		return decodeBinary(data)
	}
	return decodeASCII(data)
}
