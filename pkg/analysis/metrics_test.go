package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printforge/meshmetrics/pkg/geometry"
)

// boxMesh builds the 12-triangle closed box spanning the origin to
// (w, h, d), consistently wound outward.
func boxMesh(w, h, d float64) []geometry.Triangle {
	p := func(x, y, z float64) geometry.Point3 {
		return geometry.NewPoint3(x*w, y*h, z*d)
	}
	quads := [][4]geometry.Point3{
		{p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0)}, // bottom
		{p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)}, // top
		{p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1)}, // front
		{p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0)}, // back
		{p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0)}, // left
		{p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1)}, // right
	}
	var tris []geometry.Triangle
	for _, q := range quads {
		tris = append(tris,
			geometry.NewTriangle(geometry.Point3{}, q[0], q[1], q[2]),
			geometry.NewTriangle(geometry.Point3{}, q[0], q[2], q[3]),
		)
	}
	return tris
}

// flatFan builds n distinct triangles in the z=0 plane; useful for
// exercising count-driven classification without caring about geometry.
func flatFan(n int) []geometry.Triangle {
	tris := make([]geometry.Triangle, n)
	for i := range tris {
		x := float64(i)
		tris[i] = geometry.NewTriangle(
			geometry.NewPoint3(0, 0, 1),
			geometry.NewPoint3(x, 0, 0),
			geometry.NewPoint3(x+1, 0, 0),
			geometry.NewPoint3(x, 1, 0),
		)
	}
	return tris
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	metrics := Analyze(nil)

	assert.Equal(t, 0, metrics.TriangleCount)
	assert.Equal(t, 0, metrics.VertexCount)
	assert.Zero(t, metrics.SurfaceArea)
	assert.Zero(t, metrics.VolumeEstimate)
	assert.Equal(t, Dimensions{}, metrics.Dimensions)
	assert.Equal(t, UnitUnknown, metrics.DetectedUnit)
	assert.Equal(t, ComplexitySimple, metrics.Complexity)
	assert.Equal(t, "0.0:0.0:0.0", metrics.AspectRatio)
}

func TestAnalyzeUnitCube(t *testing.T) {
	metrics := Analyze(boxMesh(1, 1, 1))

	assert.Equal(t, 12, metrics.TriangleCount)
	assert.Equal(t, 8, metrics.VertexCount)
	assert.Equal(t, geometry.NewPoint3(0, 0, 0), metrics.BoundingBox.Min)
	assert.Equal(t, geometry.NewPoint3(1, 1, 1), metrics.BoundingBox.Max)
	assert.Equal(t, Dimensions{Width: 1, Height: 1, Depth: 1}, metrics.Dimensions)
	assert.InDelta(t, 6.0, metrics.SurfaceArea, 1e-10)
	assert.InDelta(t, 1.0, metrics.VolumeEstimate, 1e-10)
	assert.Equal(t, ComplexitySimple, metrics.Complexity)
	assert.Equal(t, "1.0:1.0:1.0", metrics.AspectRatio)
}

func TestAnalyzeSurfaceAreaRightTriangle(t *testing.T) {
	tris := []geometry.Triangle{
		geometry.NewTriangle(
			geometry.NewPoint3(0, 0, 1),
			geometry.NewPoint3(0, 0, 0),
			geometry.NewPoint3(1, 0, 0),
			geometry.NewPoint3(0, 1, 0),
		),
	}

	metrics := Analyze(tris)
	assert.InDelta(t, 0.5, metrics.SurfaceArea, 1e-10)
}

func TestAnalyzeVertexDedup(t *testing.T) {
	// Two triangles sharing an edge: 6 vertex slots, 4 distinct triples
	a := geometry.NewPoint3(0, 0, 0)
	b := geometry.NewPoint3(1, 0, 0)
	c := geometry.NewPoint3(0, 1, 0)
	d := geometry.NewPoint3(1, 1, 0)

	tris := []geometry.Triangle{
		geometry.NewTriangle(geometry.Point3{}, a, b, c),
		geometry.NewTriangle(geometry.Point3{}, b, d, c),
	}

	metrics := Analyze(tris)
	assert.Equal(t, 4, metrics.VertexCount)
}

func TestAnalyzeDegenerateMesh(t *testing.T) {
	// All triangles coincident at one point: zero spans, no NaN anywhere
	p := geometry.NewPoint3(2, 2, 2)
	tris := []geometry.Triangle{
		geometry.NewTriangle(geometry.Point3{}, p, p, p),
		geometry.NewTriangle(geometry.Point3{}, p, p, p),
	}

	metrics := Analyze(tris)

	assert.Equal(t, Dimensions{}, metrics.Dimensions)
	assert.Equal(t, 1, metrics.VertexCount)
	assert.False(t, math.IsNaN(metrics.SurfaceArea))
	assert.False(t, math.IsNaN(metrics.VolumeEstimate))
	assert.Zero(t, metrics.SurfaceArea)
}

func TestAnalyzeVolumeClosedBox(t *testing.T) {
	metrics := Analyze(boxMesh(2, 3, 4))
	assert.InDelta(t, 24.0, metrics.VolumeEstimate, 1e-9)
}

func TestComplexityBoundaries(t *testing.T) {
	th := DefaultThresholds()
	cases := []struct {
		count int
		want  Complexity
	}{
		{0, ComplexitySimple},
		{499, ComplexitySimple},
		{500, ComplexityModerate},
		{4999, ComplexityModerate},
		{5000, ComplexityComplex},
		{50000, ComplexityComplex},
		{50001, ComplexityHighlyComplex},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyComplexity(tc.count, th), "count %d", tc.count)
	}
}

func TestComplexityFromTriangleList(t *testing.T) {
	assert.Equal(t, ComplexitySimple, Analyze(flatFan(499)).Complexity)
	assert.Equal(t, ComplexityModerate, Analyze(flatFan(500)).Complexity)
	assert.Equal(t, ComplexityComplex, Analyze(flatFan(5000)).Complexity)
}

func TestUnitInference(t *testing.T) {
	cases := []struct {
		name     string
		dims     [3]float64
		wantUnit Unit
		wantConf Confidence
	}{
		{"printable mm part", [3]float64{100, 80, 50}, UnitMillimeters, ConfidenceHigh},
		{"low mm band edge", [3]float64{10, 5, 5}, UnitMillimeters, ConfidenceHigh},
		{"high mm band edge", [3]float64{300, 10, 10}, UnitMillimeters, ConfidenceHigh},
		{"small imperial part", [3]float64{5, 3, 1}, UnitInches, ConfidenceLow},
		{"oversized mm", [3]float64{800, 100, 100}, UnitMillimeters, ConfidenceLow},
		{"implausibly large", [3]float64{5000, 100, 100}, UnitUnknown, ConfidenceLow},
		{"pathologically small", [3]float64{0.01, 0.01, 0.01}, UnitUnknown, ConfidenceLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			metrics := Analyze(boxMesh(tc.dims[0], tc.dims[1], tc.dims[2]))
			assert.Equal(t, tc.wantUnit, metrics.DetectedUnit)
			assert.Equal(t, tc.wantConf, metrics.UnitConfidence)
		})
	}
}

func TestAspectRatio(t *testing.T) {
	metrics := Analyze(boxMesh(100, 80, 50))
	assert.Equal(t, "2.0:1.6:1.0", metrics.AspectRatio)

	require.Regexp(t, `^\d+(\.\d+)?:\d+(\.\d+)?:\d+(\.\d+)?$`, metrics.AspectRatio)
}

func TestAspectRatioFlatMesh(t *testing.T) {
	// A flat mesh keeps its zero axis at 0.0 instead of dividing by zero
	tris := []geometry.Triangle{
		geometry.NewTriangle(
			geometry.NewPoint3(0, 0, 1),
			geometry.NewPoint3(0, 0, 0),
			geometry.NewPoint3(10, 0, 0),
			geometry.NewPoint3(0, 5, 0),
		),
	}

	metrics := Analyze(tris)
	assert.Equal(t, "2.0:1.0:0.0", metrics.AspectRatio)
}

func TestAnalyzeWithCustomThresholds(t *testing.T) {
	th := DefaultThresholds()
	th.SimpleMax = 5

	metrics := AnalyzeWith(flatFan(6), th)
	assert.Equal(t, ComplexityModerate, metrics.Complexity)
}
