package geometry

import "math"

// Point3 represents a 3D point or direction vector. Coordinates carry no
// unit; the unit system is inferred later from magnitude.
type Point3 struct {
	X, Y, Z float64
}

// NewPoint3 creates a new 3D point
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the sum of two points
func (p Point3) Add(other Point3) Point3 {
	return Point3{
		X: p.X + other.X,
		Y: p.Y + other.Y,
		Z: p.Z + other.Z,
	}
}

// Sub returns the difference between two points
func (p Point3) Sub(other Point3) Point3 {
	return Point3{
		X: p.X - other.X,
		Y: p.Y - other.Y,
		Z: p.Z - other.Z,
	}
}

// Mul multiplies the point by a scalar
func (p Point3) Mul(scalar float64) Point3 {
	return Point3{
		X: p.X * scalar,
		Y: p.Y * scalar,
		Z: p.Z * scalar,
	}
}

// Dot returns the dot product of two vectors
func (p Point3) Dot(other Point3) float64 {
	return p.X*other.X + p.Y*other.Y + p.Z*other.Z
}

// Cross returns the cross product of two vectors
func (p Point3) Cross(other Point3) Point3 {
	return Point3{
		X: p.Y*other.Z - p.Z*other.Y,
		Y: p.Z*other.X - p.X*other.Z,
		Z: p.X*other.Y - p.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (p Point3) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the distance between two points
func (p Point3) Distance(other Point3) float64 {
	return p.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (p Point3) Normalize() Point3 {
	length := p.Length()
	if length == 0 {
		return Point3{}
	}
	return p.Mul(1.0 / length)
}

// Min returns a point with the minimum components of two points
func (p Point3) Min(other Point3) Point3 {
	return Point3{
		X: math.Min(p.X, other.X),
		Y: math.Min(p.Y, other.Y),
		Z: math.Min(p.Z, other.Z),
	}
}

// Max returns a point with the maximum components of two points
func (p Point3) Max(other Point3) Point3 {
	return Point3{
		X: math.Max(p.X, other.X),
		Y: math.Max(p.Y, other.Y),
		Z: math.Max(p.Z, other.Z),
	}
}
