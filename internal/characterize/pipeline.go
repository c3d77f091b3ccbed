package characterize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/hkoenig/stlmeta/pkg/analysis"
	"github.com/hkoenig/stlmeta/pkg/report"
	"github.com/hkoenig/stlmeta/pkg/stl"
)

// Run characterizes one STL file: the bytes are read once, sniffed,
// decoded and analyzed, and the result is combined with the file-level
// facts into an immutable report. A report is produced only on full
// success; any failure surfaces as an error.
func Run(path string, cfg *Config) (*report.Characterization, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	model, err := stl.Decode(data)
	if err != nil {
		return nil, err
	}

	findings := analysis.Inspect(model)

	sum := sha256.Sum256(data)
	created, modified := fileTimes(info)

	result := report.New(model, findings, int64(len(data)), hex.EncodeToString(sum[:]), created, modified)
	if cfg.ExtendedChecks {
		result = result.WithIsolatedTriangle(analysis.HasIsolatedTriangle(model))
	}
	return result, nil
}

// RunXML characterizes one file and serializes the report against the
// configured schema revision.
func RunXML(path string, cfg *Config) ([]byte, error) {
	result, err := Run(path, cfg)
	if err != nil {
		return nil, err
	}
	return report.EncodeXML(result, cfg.Schema(), cfg.Indent)
}
