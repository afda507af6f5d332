package analysis

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Material and filament constants for mass estimation. Density is PLA;
// the filament cross-section assumes standard 1.75 mm stock.
const (
	CubicMMPerCubicInch   = 16387.064
	PLADensityGramsPerCm3 = 1.24
	FilamentDiameterMM    = 1.75

	// DefaultInfillPercent is applied when the caller does not choose an
	// infill level.
	DefaultInfillPercent = 20.0
)

// Display thresholds: millimeter magnitudes at or above these are shown in
// centimeter units for readability.
const (
	volumeCm3Threshold = 1000.0 // mm³ in one cm³
	areaCm2Threshold   = 100.0  // mm² in one cm²
)

// MaterialEstimate is the projected filament consumption for printing a
// model at a given infill level.
type MaterialEstimate struct {
	Grams          float64
	FilamentMeters float64
}

// FormatDimensions renders "width x height x depth <unit>" with one decimal
// for millimeter and unknown units, two for inches.
func FormatDimensions(m *GeometryMetrics) string {
	d := m.Dimensions
	switch m.DetectedUnit {
	case UnitInches:
		return fmt.Sprintf("%.2f x %.2f x %.2f in", d.Width, d.Height, d.Depth)
	case UnitMillimeters:
		return fmt.Sprintf("%.1f x %.1f x %.1f mm", d.Width, d.Height, d.Depth)
	default:
		return fmt.Sprintf("%.1f x %.1f x %.1f units", d.Width, d.Height, d.Depth)
	}
}

// FormatVolume renders the volume estimate in unit-appropriate notation,
// upscaling large millimeter volumes to cm³.
func FormatVolume(m *GeometryMetrics) string {
	v := m.VolumeEstimate
	switch m.DetectedUnit {
	case UnitInches:
		return fmt.Sprintf("%.2f in³", v)
	case UnitMillimeters:
		if v >= volumeCm3Threshold {
			return fmt.Sprintf("%.2f cm³", v/volumeCm3Threshold)
		}
		return fmt.Sprintf("%.1f mm³", v)
	default:
		return fmt.Sprintf("%.1f units³", v)
	}
}

// FormatSurfaceArea renders the surface area in unit-appropriate notation,
// upscaling large millimeter areas to cm².
func FormatSurfaceArea(m *GeometryMetrics) string {
	a := m.SurfaceArea
	switch m.DetectedUnit {
	case UnitInches:
		return fmt.Sprintf("%.2f in²", a)
	case UnitMillimeters:
		if a >= areaCm2Threshold {
			return fmt.Sprintf("%.2f cm²", a/areaCm2Threshold)
		}
		return fmt.Sprintf("%.1f mm²", a)
	default:
		return fmt.Sprintf("%.1f units²", a)
	}
}

// EstimateMaterialUsage estimates filament consumption at the default
// infill level.
func EstimateMaterialUsage(volume float64, unit Unit) MaterialEstimate {
	return EstimateMaterialUsageWithInfill(volume, unit, DefaultInfillPercent)
}

// EstimateMaterialUsageWithInfill converts the volume to cubic millimeters,
// scales by the infill fraction, and derives mass from the material density
// and filament length from a fixed cross-section. Unknown units are treated
// as millimeters, the most common STL convention.
func EstimateMaterialUsageWithInfill(volume float64, unit Unit, infillPercent float64) MaterialEstimate {
	volumeMM3 := volume
	if unit == UnitInches {
		volumeMM3 = volume * CubicMMPerCubicInch
	}

	solidMM3 := volumeMM3 * infillPercent / 100.0
	grams := solidMM3 / 1000.0 * PLADensityGramsPerCm3

	radius := FilamentDiameterMM / 2.0
	crossSectionMM2 := math.Pi * radius * radius
	meters := solidMM3 / crossSectionMM2 / 1000.0

	return MaterialEstimate{Grams: grams, FilamentMeters: meters}
}

// ComplexityDescription returns a human-readable sentence naming the
// complexity tier and the exact triangle count.
func ComplexityDescription(m *GeometryMetrics) string {
	count := humanize.Comma(int64(m.TriangleCount))
	switch m.Complexity {
	case ComplexityModerate:
		return fmt.Sprintf("Moderate model with %s triangles; previews and slicing remain fast.", count)
	case ComplexityComplex:
		return fmt.Sprintf("Complex model with %s triangles; expect slower slicing and preview generation.", count)
	case ComplexityHighlyComplex:
		return fmt.Sprintf("Highly complex model with %s triangles; consider decimating before processing.", count)
	default:
		return fmt.Sprintf("Simple model with %s triangles; quick to preview and slice.", count)
	}
}
