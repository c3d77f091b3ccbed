// Package report assembles and serializes the characterization report
// for one STL asset.
package report

import (
	"strings"
	"time"

	"github.com/hkoenig/stlmeta/pkg/analysis"
	"github.com/hkoenig/stlmeta/pkg/stl"
)

// FormatName is the constant format identifier in every report
const FormatName = "STL (Standard Tessellation Language)"

// Characterization is the complete, immutable result of characterizing
// one STL file. No field is computed here; the pipeline supplies
// decoder output, analyzer findings and file-level facts, and this
// type only carries them to the serializer.
type Characterization struct {
	FormatVersion string // "ASCII" or "Binary"
	Size          int64
	SHA256        string
	Created       time.Time
	Modified      time.Time
	SolidName     string
	Findings      analysis.Findings

	// IsolatedTriangle is nil when the extended checks were skipped
	IsolatedTriangle *bool
}

// New assembles a characterization from the pipeline's parts
func New(model *stl.Model, findings analysis.Findings, size int64, sha256hex string, created, modified time.Time) *Characterization {
	return &Characterization{
		FormatVersion: model.Format.Version(),
		Size:          size,
		SHA256:        sha256hex,
		Created:       created,
		Modified:      modified,
		SolidName:     model.Name,
		Findings:      findings,
	}
}

// WithIsolatedTriangle returns a copy carrying the extended-check result
func (c *Characterization) WithIsolatedTriangle(isolated bool) *Characterization {
	copied := *c
	copied.IsolatedTriangle = &isolated
	return &copied
}

// HasName reports whether the solid name is non-blank
func (c *Characterization) HasName() bool {
	return strings.TrimSpace(c.SolidName) != ""
}
