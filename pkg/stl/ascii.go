package stl

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hkoenig/stlmeta/pkg/geometry"
)

type token struct {
	text string
	line int // 1-based
}

// decodeASCII parses ASCII STL text into a model. Keywords are matched
// case-insensitively and whitespace is arbitrary, but every facet block
// must carry exactly one normal triple and exactly three vertex triples.
func decodeASCII(data []byte) (*Model, error) {
	name, toks, err := lexASCII(data)
	if err != nil {
		return nil, err
	}

	model := NewModel(name, FormatASCII)
	p := &asciiParser{toks: toks, facet: -1, lastLine: 1}

	for {
		tok, ok := p.peek()
		if !ok {
			return nil, &ParseError{Line: p.lastLine, Facet: -1, Msg: `expected "facet" or "endsolid", got end of file`}
		}
		if strings.EqualFold(tok.text, "endsolid") {
			// Tokens after endsolid (the optional closing name) are ignored.
			break
		}

		p.facet = model.TriangleCount()

		if err := p.expectKeyword("facet"); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("normal"); err != nil {
			return nil, err
		}
		normal, err := p.expectVector()
		if err != nil {
			return nil, err
		}

		if err := p.expectKeyword("outer"); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("loop"); err != nil {
			return nil, err
		}

		var verts [3]geometry.Vector3
		for i := range verts {
			if err := p.expectKeyword("vertex"); err != nil {
				return nil, err
			}
			if verts[i], err = p.expectVector(); err != nil {
				return nil, err
			}
		}
		if tok, ok := p.peek(); ok && strings.EqualFold(tok.text, "vertex") {
			return nil, &ParseError{Line: tok.line, Facet: p.facet, Msg: "facet has more than 3 vertices"}
		}

		if err := p.expectKeyword("endloop"); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("endfacet"); err != nil {
			return nil, err
		}

		model.AddTriangle(geometry.NewTriangle(normal, verts[0], verts[1], verts[2]))
		p.facet = -1
	}

	return model, nil
}

// lexASCII extracts the solid name from the opening line and flattens
// the remaining lines into a whitespace-delimited token stream.
func lexASCII(data []byte) (name string, toks []token, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	line := 0
	sawSolid := false
	for scanner.Scan() {
		line++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if !sawSolid {
			if !strings.EqualFold(fields[0], "solid") {
				return "", nil, &ParseError{Line: line, Facet: -1, Msg: fmt.Sprintf(`expected "solid", got %q`, fields[0])}
			}
			// The name is everything after the keyword, verbatim.
			rest := strings.TrimSpace(text)[len(fields[0]):]
			name = strings.TrimSpace(rest)
			sawSolid = true
			continue
		}

		for _, f := range fields {
			toks = append(toks, token{text: f, line: line})
		}
	}
	if serr := scanner.Err(); serr != nil {
		return "", nil, fmt.Errorf("error reading ASCII STL: %w", serr)
	}
	if !sawSolid {
		return "", nil, &ParseError{Line: 1, Facet: -1, Msg: `expected "solid", got end of file`}
	}
	return name, toks, nil
}

type asciiParser struct {
	toks     []token
	pos      int
	facet    int // index of the facet being parsed, -1 between blocks
	lastLine int
}

func (p *asciiParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *asciiParser) next() (token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
		p.lastLine = tok.line
	}
	return tok, ok
}

func (p *asciiParser) expectKeyword(keyword string) error {
	tok, ok := p.next()
	if !ok {
		return &ParseError{Line: p.lastLine, Facet: p.facet, Msg: fmt.Sprintf("expected %q, got end of file", keyword)}
	}
	if !strings.EqualFold(tok.text, keyword) {
		return &ParseError{Line: tok.line, Facet: p.facet, Msg: fmt.Sprintf("expected %q, got %q", keyword, tok.text)}
	}
	return nil
}

func (p *asciiParser) expectFloat() (float64, error) {
	tok, ok := p.next()
	if !ok {
		return 0, &ParseError{Line: p.lastLine, Facet: p.facet, Msg: "expected number, got end of file"}
	}
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return 0, &ParseError{Line: tok.line, Facet: p.facet, Msg: fmt.Sprintf("expected number, got %q", tok.text)}
	}
	return v, nil
}

func (p *asciiParser) expectVector() (geometry.Vector3, error) {
	x, err := p.expectFloat()
	if err != nil {
		return geometry.Vector3{}, err
	}
	y, err := p.expectFloat()
	if err != nil {
		return geometry.Vector3{}, err
	}
	z, err := p.expectFloat()
	if err != nil {
		return geometry.Vector3{}, err
	}
	return geometry.NewVector3(x, y, z), nil
}
