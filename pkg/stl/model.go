package stl

import (
	"github.com/printforge/meshmetrics/pkg/geometry"
)

// ParseResult is the normalized output of parsing an STL buffer. IsASCII
// records which decoding branch was taken. TriangleCount always equals
// len(Triangles); both are set together at construction and never updated
// independently.
type ParseResult struct {
	IsASCII       bool
	Name          string
	TriangleCount int
	Triangles     []geometry.Triangle
}

func newParseResult(isASCII bool, name string, triangles []geometry.Triangle) *ParseResult {
	return &ParseResult{
		IsASCII:       isASCII,
		Name:          name,
		TriangleCount: len(triangles),
		Triangles:     triangles,
	}
}
