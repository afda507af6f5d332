package analysis

import (
	"fmt"
	"math"

	"github.com/printforge/meshmetrics/pkg/geometry"
)

// Unit is the inferred measurement system of a mesh
type Unit string

const (
	UnitMillimeters Unit = "mm"
	UnitInches      Unit = "inches"
	UnitUnknown     Unit = "unknown"
)

// Confidence qualifies a unit inference
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// Complexity classifies a mesh by triangle count
type Complexity string

const (
	ComplexitySimple        Complexity = "simple"
	ComplexityModerate      Complexity = "moderate"
	ComplexityComplex       Complexity = "complex"
	ComplexityHighlyComplex Complexity = "highly-complex"
)

// Dimensions are the per-axis spans of the bounding box
type Dimensions struct {
	Width  float64
	Height float64
	Depth  float64
}

// GeometryMetrics is the full analysis report for a triangle list. It is
// derived in a single pass and never mutated after construction.
type GeometryMetrics struct {
	BoundingBox    geometry.BoundingBox
	Dimensions     Dimensions
	TriangleCount  int
	VertexCount    int
	SurfaceArea    float64
	VolumeEstimate float64
	DetectedUnit   Unit
	UnitConfidence Confidence
	Complexity     Complexity
	AspectRatio    string
}

// Thresholds holds the tunable constants behind unit inference and
// complexity classification. The unit bands are inherently heuristic: the
// inch band overlaps the low end of the millimeter band, and the boundaries
// below are the documented contract rather than a claim of physical
// correctness. Adjust via config if requirements tighten.
type Thresholds struct {
	// Largest dimension inside [MMBandMin, MMBandMax] reads as millimeters
	// at high confidence: the plausible size range of printable/CNC parts.
	MMBandMin float64
	MMBandMax float64
	// Above MMBandMax but at most MMLooseMax still reads as millimeters,
	// at low confidence. Beyond that the scale is implausible for either
	// system and the unit is unknown.
	MMLooseMax float64
	// Largest dimension in [InchBandMin, MMBandMin) reads as inches at low
	// confidence: single-digit spans are plausible small imperial parts.
	InchBandMin float64

	// Complexity tier boundaries by triangle count. Each bound is the
	// first count of the next tier up, except ComplexMax which is the
	// last count still classified complex.
	SimpleMax   int
	ModerateMax int
	ComplexMax  int
}

// DefaultThresholds returns the standard band boundaries
func DefaultThresholds() Thresholds {
	return Thresholds{
		MMBandMin:   10,
		MMBandMax:   300,
		MMLooseMax:  1000,
		InchBandMin: 0.5,
		SimpleMax:   500,
		ModerateMax: 5000,
		ComplexMax:  50000,
	}
}

// Analyze computes GeometryMetrics from a triangle list using the default
// thresholds. It is a total function: empty and degenerate meshes yield
// sane all-zero metrics rather than errors.
func Analyze(triangles []geometry.Triangle) *GeometryMetrics {
	return AnalyzeWith(triangles, DefaultThresholds())
}

// AnalyzeWith computes GeometryMetrics with explicit thresholds
func AnalyzeWith(triangles []geometry.Triangle, th Thresholds) *GeometryMetrics {
	metrics := &GeometryMetrics{
		DetectedUnit:   UnitUnknown,
		UnitConfidence: ConfidenceLow,
		Complexity:     ComplexitySimple,
		AspectRatio:    "0.0:0.0:0.0",
	}
	if len(triangles) == 0 {
		return metrics
	}

	bbox := geometry.NewBoundingBox(triangles[0].V1)
	unique := make(map[geometry.Point3]struct{}, len(triangles))
	surfaceArea := 0.0
	signedVolume := 0.0

	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			bbox.Extend(v)
			unique[v] = struct{}{}
		}
		surfaceArea += tri.Area()
		signedVolume += tri.SignedVolume()
	}

	size := bbox.Size()
	metrics.BoundingBox = bbox
	metrics.Dimensions = Dimensions{Width: size.X, Height: size.Y, Depth: size.Z}
	metrics.TriangleCount = len(triangles)
	metrics.VertexCount = len(unique)
	metrics.SurfaceArea = surfaceArea
	// The signed-tetrahedron sum is only the enclosed volume for a closed,
	// consistently wound mesh; for arbitrary soup it is best-effort.
	metrics.VolumeEstimate = math.Abs(signedVolume)
	metrics.DetectedUnit, metrics.UnitConfidence = inferUnit(size, th)
	metrics.Complexity = classifyComplexity(len(triangles), th)
	metrics.AspectRatio = aspectRatio(metrics.Dimensions)

	return metrics
}

func inferUnit(size geometry.Point3, th Thresholds) (Unit, Confidence) {
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))

	switch {
	case maxDim >= th.MMBandMin && maxDim <= th.MMBandMax:
		return UnitMillimeters, ConfidenceHigh
	case maxDim >= th.InchBandMin && maxDim < th.MMBandMin:
		return UnitInches, ConfidenceLow
	case maxDim > th.MMBandMax && maxDim <= th.MMLooseMax:
		return UnitMillimeters, ConfidenceLow
	default:
		return UnitUnknown, ConfidenceLow
	}
}

func classifyComplexity(triangleCount int, th Thresholds) Complexity {
	switch {
	case triangleCount < th.SimpleMax:
		return ComplexitySimple
	case triangleCount < th.ModerateMax:
		return ComplexityModerate
	case triangleCount <= th.ComplexMax:
		return ComplexityComplex
	default:
		return ComplexityHighlyComplex
	}
}

// aspectRatio normalizes the three dimensions against the smallest nonzero
// one, so a 100 x 80 x 50 box reads "2.0:1.6:1.0". Fully flat meshes keep
// their zero axes at 0.0.
func aspectRatio(d Dimensions) string {
	ref := math.Inf(1)
	for _, v := range []float64{d.Width, d.Height, d.Depth} {
		if v > 0 && v < ref {
			ref = v
		}
	}
	if math.IsInf(ref, 1) {
		return "0.0:0.0:0.0"
	}
	return fmt.Sprintf("%.1f:%.1f:%.1f", d.Width/ref, d.Height/ref, d.Depth/ref)
}
