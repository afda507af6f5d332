package geometry

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Point3
	Max Point3
}

// NewBoundingBox creates a bounding box containing a single point.
// Extending from a seed point avoids infinity sentinels leaking into
// metrics for empty meshes; callers with no points should not construct
// a box at all.
func NewBoundingBox(seed Point3) BoundingBox {
	return BoundingBox{Min: seed, Max: seed}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Point3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Point3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Point3 {
	return Point3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}
