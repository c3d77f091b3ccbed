package characterize

import (
	"errors"

	"github.com/hkoenig/stlmeta/pkg/stl"
)

// Exit codes consumed by the host pipeline.
const (
	ExitOK      = 0   // characterized successfully
	ExitInvalid = 1   // malformed STL (format, grammar or truncation)
	ExitFatal   = 255 // unreadable file or unexpected defect
)

// ExitCode maps an error from Run to the process exit code contract
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var formatErr *stl.FormatError
	var parseErr *stl.ParseError
	var truncErr *stl.TruncatedError
	if errors.As(err, &formatErr) || errors.As(err, &parseErr) || errors.As(err, &truncErr) {
		return ExitInvalid
	}
	return ExitFatal
}
