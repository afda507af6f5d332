package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/printforge/meshmetrics/pkg/geometry"
)

// Parse errors. Each failure mode is distinguishable with errors.Is so the
// ingestion layer can report what was wrong with an upload instead of
// silently working with a truncated mesh.
var (
	ErrEmptyInput      = errors.New("empty input buffer")
	ErrTruncated       = errors.New("buffer too short for binary STL")
	ErrCountMismatch   = errors.New("declared triangle count does not match buffer length")
	ErrMissingSolid    = errors.New("missing solid keyword")
	ErrMalformedFacet  = errors.New("malformed facet")
	ErrMissingEndSolid = errors.New("missing endsolid keyword")
)

const (
	// asciiProbeWindow bounds how far into the buffer format detection
	// looks for the "facet" keyword. Binary files whose header happens to
	// start with "solid" bytes almost never contain a textual "facet"
	// token this early.
	asciiProbeWindow = 1024

	binaryHeaderSize = 80
	binaryMinSize    = binaryHeaderSize + 4
	recordSize       = 50
)

// Parse decodes a raw byte buffer containing an STL model, auto-detecting
// the ASCII or binary variant, and returns the normalized triangle list.
// Vertex and normal components are passed through exactly as encoded; no
// coordinate conversion or reordering is performed.
func Parse(data []byte) (*ParseResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if looksASCII(data) {
		return parseASCII(data)
	}
	return parseBinary(data)
}

// ParseReader reads the full stream into memory and parses it. Format
// detection needs the buffer length up front, so streaming decode is not
// supported.
func ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL stream: %w", err)
	}
	return Parse(data)
}

// ParseFile parses an STL file from disk
func ParseFile(filename string) (*ParseResult, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// looksASCII reports whether the buffer carries textual STL. The content is
// treated as ASCII only when a lowercased prefix window starts with "solid"
// and also contains "facet"; a magic-number check alone misclassifies binary
// files whose header begins with "solid".
func looksASCII(data []byte) bool {
	window := data
	if len(window) > asciiProbeWindow {
		window = window[:asciiProbeWindow]
	}
	probe := strings.ToLower(string(window))
	if !strings.HasPrefix(strings.TrimLeft(probe, " \t\r\n"), "solid") {
		return false
	}
	return strings.Contains(probe, "facet")
}

// parseASCII tokenizes a textual STL case-insensitively. Whitespace and line
// breaks between tokens are insignificant. A malformed facet block fails the
// whole parse; a partial mesh is worse than no mesh for downstream area and
// volume sums.
func parseASCII(data []byte) (*ParseResult, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if scanner.Scan() {
			return strings.ToLower(scanner.Text()), true
		}
		return "", false
	}

	tok, ok := next()
	if !ok || tok != "solid" {
		return nil, fmt.Errorf("%w: got %q", ErrMissingSolid, tok)
	}

	// The solid name runs until the first facet (or endsolid for an empty
	// solid). Multi-word names are joined back with single spaces.
	var nameParts []string
	for {
		tok, ok = next()
		if !ok {
			return nil, ErrMissingEndSolid
		}
		if tok == "facet" || tok == "endsolid" {
			break
		}
		nameParts = append(nameParts, scanner.Text())
	}
	name := strings.Join(nameParts, " ")

	var triangles []geometry.Triangle
	for tok != "endsolid" {
		if tok != "facet" {
			return nil, fmt.Errorf("%w: unexpected token %q", ErrMalformedFacet, tok)
		}
		tri, err := parseFacet(next)
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, tri)

		tok, ok = next()
		if !ok {
			return nil, ErrMissingEndSolid
		}
	}

	return newParseResult(true, name, triangles), nil
}

// parseFacet consumes one facet block after the "facet" keyword has already
// been read:
//
//	facet normal nx ny nz
//	  outer loop
//	    vertex x y z   (exactly three)
//	  endloop
//	endfacet
func parseFacet(next func() (string, bool)) (geometry.Triangle, error) {
	var tri geometry.Triangle

	expect := func(keyword string) error {
		tok, ok := next()
		if !ok || tok != keyword {
			return fmt.Errorf("%w: expected %q, got %q", ErrMalformedFacet, keyword, tok)
		}
		return nil
	}
	point := func() (geometry.Point3, error) {
		var coords [3]float64
		for i := range coords {
			tok, ok := next()
			if !ok {
				return geometry.Point3{}, fmt.Errorf("%w: truncated coordinate list", ErrMalformedFacet)
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return geometry.Point3{}, fmt.Errorf("%w: non-numeric coordinate %q", ErrMalformedFacet, tok)
			}
			coords[i] = v
		}
		return geometry.NewPoint3(coords[0], coords[1], coords[2]), nil
	}

	if err := expect("normal"); err != nil {
		return tri, err
	}
	normal, err := point()
	if err != nil {
		return tri, err
	}
	if err := expect("outer"); err != nil {
		return tri, err
	}
	if err := expect("loop"); err != nil {
		return tri, err
	}

	var vertices [3]geometry.Point3
	for i := range vertices {
		if err := expect("vertex"); err != nil {
			return tri, err
		}
		vertices[i], err = point()
		if err != nil {
			return tri, err
		}
	}

	if err := expect("endloop"); err != nil {
		return tri, err
	}
	if err := expect("endfacet"); err != nil {
		return tri, err
	}

	return geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]), nil
}

// parseBinary decodes the fixed binary layout: an 80-byte header, a 4-byte
// little-endian triangle count, then 50 bytes per triangle (12 normal bytes,
// 36 vertex bytes, 2 attribute bytes which are ignored but not validated).
// The buffer must fit the declared count exactly; no recovery is attempted.
func parseBinary(data []byte) (*ParseResult, error) {
	if len(data) < binaryMinSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrTruncated, len(data), binaryMinSize)
	}

	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:binaryMinSize])
	payload := data[binaryMinSize:]
	if uint64(len(payload)) != uint64(count)*recordSize {
		return nil, fmt.Errorf("%w: declared %d triangles (%d bytes), buffer holds %d bytes",
			ErrCountMismatch, count, uint64(count)*recordSize, len(payload))
	}

	name := strings.TrimRight(string(bytes.TrimRight(data[:binaryHeaderSize], "\x00")), " ")

	triangles := make([]geometry.Triangle, 0, count)
	for i := uint32(0); i < count; i++ {
		rec := payload[i*recordSize : (i+1)*recordSize]
		f32 := func(off int) float64 {
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off : off+4])))
		}
		triangles = append(triangles, geometry.NewTriangle(
			geometry.NewPoint3(f32(0), f32(4), f32(8)),
			geometry.NewPoint3(f32(12), f32(16), f32(20)),
			geometry.NewPoint3(f32(24), f32(28), f32(32)),
			geometry.NewPoint3(f32(36), f32(40), f32(44)),
		))
	}

	return newParseResult(false, name, triangles), nil
}
