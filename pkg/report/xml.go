package report

import (
	"encoding/xml"
	"fmt"
	"time"
)

// SchemaVersion selects which report schema revision to emit. Both
// revisions carry the same facts; only the names of the two validity
// booleans differ, so the mapping lives entirely in this file.
type SchemaVersion int

const (
	SchemaV1 SchemaVersion = 1
	SchemaV2 SchemaVersion = 2
)

const (
	xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

	namespaceV1 = "https://github.com/hkoenig/stlmeta/schema/v1"
	namespaceV2 = "https://github.com/hkoenig/stlmeta/schema/v2"

	// schemaLocation pairs the namespace with the XSD it validates against
	schemaLocationV1 = namespaceV1 + " " + namespaceV1 + "/stlmeta.xsd"
	schemaLocationV2 = namespaceV2 + " " + namespaceV2 + "/stlmeta.xsd"
)

// timestamp formats a time the way the report schema expects
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type xmlReportV1 struct {
	XMLName        xml.Name `xml:"STLMetadataExtractor"`
	Xmlns          string   `xml:"xmlns,attr"`
	XSI            string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`

	FormatName         string `xml:"formatName"`
	FormatVersion      string `xml:"formatVersion"`
	Size               int64  `xml:"size"`
	SHA256Checksum     string `xml:"SHA256Checksum"`
	CreationDate       string `xml:"creationDate"`
	ModificationDate   string `xml:"modificationDate"`
	SolidName          string `xml:"solidName"`
	TotalTriangleCount int    `xml:"totalTriangleCount"`

	Clockwise        bool  `xml:"allVerticesOfEachFacetAreOrderedClockwise"`
	NormalsCorrect   bool  `xml:"allFacetNormalsAreCorrect"`
	IsolatedTriangle *bool `xml:"hasIsolatedTriangle,omitempty"`
	PositiveCoords   bool  `xml:"allVertexCoordinatesArePositive"`
	HasName          bool  `xml:"hasName"`
}

type xmlReportV2 struct {
	XMLName        xml.Name `xml:"STLMetadataExtractor"`
	Xmlns          string   `xml:"xmlns,attr"`
	XSI            string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`

	FormatName         string `xml:"formatName"`
	FormatVersion      string `xml:"formatVersion"`
	Size               int64  `xml:"size"`
	SHA256Checksum     string `xml:"SHA256Checksum"`
	CreationDate       string `xml:"creationDate"`
	ModificationDate   string `xml:"modificationDate"`
	ModelName          string `xml:"modelName"`
	TotalTriangleCount int    `xml:"totalTriangleCount"`

	Clockwise        bool  `xml:"hasValidCounterclockwiseVertices"`
	NormalsCorrect   bool  `xml:"allFacetNormalsAreCorrect"`
	IsolatedTriangle *bool `xml:"hasIsolatedTriangle,omitempty"`
	PositiveCoords   bool  `xml:"hasValidPositiveVerticeCoordinates"`
	HasName          bool  `xml:"hasName"`
}

// EncodeXML serializes the characterization against the requested
// schema revision, indented with the given string, including the XML
// declaration.
func EncodeXML(c *Characterization, schema SchemaVersion, indent string) ([]byte, error) {
	var doc any
	switch schema {
	case SchemaV1:
		doc = &xmlReportV1{
			Xmlns:              namespaceV1,
			XSI:                xsiNamespace,
			SchemaLocation:     schemaLocationV1,
			FormatName:         FormatName,
			FormatVersion:      c.FormatVersion,
			Size:               c.Size,
			SHA256Checksum:     c.SHA256,
			CreationDate:       timestamp(c.Created),
			ModificationDate:   timestamp(c.Modified),
			SolidName:          c.SolidName,
			TotalTriangleCount: c.Findings.TriangleCount,
			Clockwise:          c.Findings.AllFacetsClockwise,
			NormalsCorrect:     c.Findings.AllNormalsCorrect,
			IsolatedTriangle:   c.IsolatedTriangle,
			PositiveCoords:     c.Findings.AllCoordinatesNonNegative,
			HasName:            c.HasName(),
		}
	case SchemaV2:
		doc = &xmlReportV2{
			Xmlns:              namespaceV2,
			XSI:                xsiNamespace,
			SchemaLocation:     schemaLocationV2,
			FormatName:         FormatName,
			FormatVersion:      c.FormatVersion,
			Size:               c.Size,
			SHA256Checksum:     c.SHA256,
			CreationDate:       timestamp(c.Created),
			ModificationDate:   timestamp(c.Modified),
			ModelName:          c.SolidName,
			TotalTriangleCount: c.Findings.TriangleCount,
			Clockwise:          c.Findings.AllFacetsClockwise,
			NormalsCorrect:     c.Findings.AllNormalsCorrect,
			IsolatedTriangle:   c.IsolatedTriangle,
			PositiveCoords:     c.Findings.AllCoordinatesNonNegative,
			HasName:            c.HasName(),
		}
	default:
		return nil, fmt.Errorf("unknown schema version %d", schema)
	}

	body, err := xml.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
