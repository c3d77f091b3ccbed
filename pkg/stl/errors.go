package stl

import "fmt"

// FormatError indicates a byte stream that matches neither the ASCII
// nor the binary STL layout.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized STL format: %s", e.Reason)
}

// ParseError indicates a violation of the ASCII STL grammar.
type ParseError struct {
	Line  int    // 1-based line number, 0 when unknown
	Facet int    // 0-based facet index, -1 when outside a facet block
	Msg   string // expected/got description
}

func (e *ParseError) Error() string {
	if e.Facet >= 0 {
		return fmt.Sprintf("parse error on line %d (facet %d): %s", e.Line, e.Facet, e.Msg)
	}
	return fmt.Sprintf("parse error on line %d: %s", e.Line, e.Msg)
}

// TruncatedError indicates a binary STL file that is shorter than its
// declared triangle count implies.
type TruncatedError struct {
	Declared int // triangle count from the header
	Read     int // complete records decoded before running out of bytes
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated binary STL: header declares %d triangles, only %d complete records present", e.Declared, e.Read)
}
