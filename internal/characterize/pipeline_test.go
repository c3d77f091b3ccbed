package characterize

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// asciiCube is a 12-facet unit cube with a solid name, all-positive
// coordinates, outward normals and right-hand winding.
func asciiCube() string {
	quads := []struct {
		n    [3]float64
		tris [2][3][3]float64
	}{
		{[3]float64{0, 0, 1}, [2][3][3]float64{
			{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}},
			{{0, 0, 1}, {1, 1, 1}, {0, 1, 1}},
		}},
		{[3]float64{0, 0, -1}, [2][3][3]float64{
			{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
			{{0, 0, 0}, {1, 1, 0}, {1, 0, 0}},
		}},
		{[3]float64{1, 0, 0}, [2][3][3]float64{
			{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
			{{1, 0, 0}, {1, 1, 1}, {1, 0, 1}},
		}},
		{[3]float64{-1, 0, 0}, [2][3][3]float64{
			{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}},
			{{0, 0, 0}, {0, 1, 1}, {0, 1, 0}},
		}},
		{[3]float64{0, -1, 0}, [2][3][3]float64{
			{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}},
			{{0, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		}},
		{[3]float64{0, 1, 0}, [2][3][3]float64{
			{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}},
			{{0, 1, 0}, {1, 1, 1}, {1, 1, 0}},
		}},
	}

	var b strings.Builder
	b.WriteString("solid unit cube\n")
	for _, q := range quads {
		for _, t := range q.tris {
			fmt.Fprintf(&b, "  facet normal %g %g %g\n", q.n[0], q.n[1], q.n[2])
			b.WriteString("    outer loop\n")
			for _, v := range t {
				fmt.Fprintf(&b, "      vertex %g %g %g\n", v[0], v[1], v[2])
			}
			b.WriteString("    endloop\n")
			b.WriteString("  endfacet\n")
		}
	}
	b.WriteString("endsolid unit cube\n")
	return b.String()
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunASCIICube(t *testing.T) {
	content := []byte(asciiCube())
	path := writeTempFile(t, "cube.stl", content)

	result, err := Run(path, DefaultConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.FormatVersion != "ASCII" {
		t.Errorf("expected ASCII, got %q", result.FormatVersion)
	}
	if result.SolidName != "unit cube" {
		t.Errorf("expected solid name, got %q", result.SolidName)
	}
	if result.Findings.TriangleCount != 12 {
		t.Errorf("expected 12 triangles, got %d", result.Findings.TriangleCount)
	}
	if !result.Findings.AllFacetsClockwise {
		t.Error("cube winding should pass")
	}
	if !result.Findings.AllCoordinatesNonNegative {
		t.Error("cube coordinates are all non-negative")
	}
	if result.Size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), result.Size)
	}

	sum := sha256.Sum256(content)
	if result.SHA256 != hex.EncodeToString(sum[:]) {
		t.Errorf("checksum mismatch: %s", result.SHA256)
	}

	if result.IsolatedTriangle == nil {
		t.Fatal("extended checks are on by default")
	}
	if *result.IsolatedTriangle {
		t.Error("cube has no isolated triangle")
	}
	if result.Modified.IsZero() || result.Created.IsZero() {
		t.Error("timestamps must be populated")
	}
}

func TestRunExtendedChecksDisabled(t *testing.T) {
	path := writeTempFile(t, "cube.stl", []byte(asciiCube()))

	cfg := DefaultConfig()
	cfg.ExtendedChecks = false

	result, err := Run(path, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.IsolatedTriangle != nil {
		t.Error("isolated-triangle result must be absent when disabled")
	}
}

func TestRunXMLReport(t *testing.T) {
	path := writeTempFile(t, "cube.stl", []byte(asciiCube()))

	out, err := RunXML(path, DefaultConfig())
	if err != nil {
		t.Fatalf("RunXML failed: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		"<totalTriangleCount>12</totalTriangleCount>",
		"<allVerticesOfEachFacetAreOrderedClockwise>true</allVerticesOfEachFacetAreOrderedClockwise>",
		"<allVertexCoordinatesArePositive>true</allVertexCoordinatesArePositive>",
		"<solidName>unit cube</solidName>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("report missing %q:\n%s", want, doc)
		}
	}
}

func TestRunTruncatedBinary(t *testing.T) {
	data := make([]byte, 80)
	data = binary.LittleEndian.AppendUint32(data, 2)
	data = append(data, make([]byte, 50+20)...) // one record and a stub
	path := writeTempFile(t, "trunc.stl", data)

	_, err := Run(path, DefaultConfig())
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := ExitCode(err); code != ExitInvalid {
		t.Errorf("expected exit code %d, got %d", ExitInvalid, code)
	}
}

func TestRunMalformedFile(t *testing.T) {
	path := writeTempFile(t, "junk.stl", []byte("this is not an stl file"))

	_, err := Run(path, DefaultConfig())
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := ExitCode(err); code != ExitInvalid {
		t.Errorf("expected exit code %d, got %d", ExitInvalid, code)
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "missing.stl"), DefaultConfig())
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := ExitCode(err); code != ExitFatal {
		t.Errorf("expected exit code %d, got %d", ExitFatal, code)
	}
}

func TestExitCodeSuccess(t *testing.T) {
	if code := ExitCode(nil); code != ExitOK {
		t.Errorf("expected 0, got %d", code)
	}
	if code := ExitCode(errors.New("boom")); code != ExitFatal {
		t.Errorf("expected %d, got %d", ExitFatal, code)
	}
}

func TestWriteFailureNote(t *testing.T) {
	var buf bytes.Buffer
	WriteFailureNote(&buf, errors.New("bad facet"))

	out := buf.String()
	for _, want := range []string{
		`"eventOutcomeInformation":"fail"`,
		`"eventOutcomeDetailNote":"bad facet"`,
		`"stdout":null`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("note missing %q: %s", want, out)
		}
	}
}

func TestConfigDefaultsAndLoad(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SchemaVersion != 1 || !cfg.ExtendedChecks {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	path := writeTempFile(t, "stlmeta.yaml", []byte("schemaVersion: 2\nextendedChecks: false\n"))
	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.SchemaVersion != 2 {
		t.Errorf("expected schema 2, got %d", loaded.SchemaVersion)
	}
	if loaded.ExtendedChecks {
		t.Error("explicit false must override the default")
	}
	if loaded.Indent != "    " {
		t.Errorf("omitted keys keep their default, got %q", loaded.Indent)
	}

	bad := writeTempFile(t, "bad.yaml", []byte("schemaVersion: 7\n"))
	if _, err := LoadFromPath(bad); err == nil {
		t.Error("expected an error for an unsupported schema version")
	}
}
