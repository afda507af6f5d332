package geometry

// Triangle represents a single mesh facet: a face normal and three vertices
// in the winding order encoded by the source file. Triangles are value
// types; a mesh is an ordered slice of them.
type Triangle struct {
	Normal     Point3
	V1, V2, V3 Point3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Point3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// Vertices returns the three vertices in winding order
func (t Triangle) Vertices() [3]Point3 {
	return [3]Point3{t.V1, t.V2, t.V3}
}

// Area returns the surface area of the triangle. Degenerate triangles
// (collinear or coincident vertices) yield exactly zero.
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	cross := edge1.Cross(edge2)
	mag := cross.Length()
	if mag == 0 {
		return 0
	}
	return mag / 2.0
}

// SignedVolume returns the signed volume of the tetrahedron formed by the
// triangle and the origin. Summed over a closed, consistently wound mesh
// this gives the enclosed volume (up to sign).
func (t Triangle) SignedVolume() float64 {
	return t.V1.Dot(t.V2.Cross(t.V3)) / 6.0
}

// IsDegenerate reports whether the triangle has zero area
func (t Triangle) IsDegenerate() bool {
	return t.Area() == 0
}

// ComputeNormal derives the face normal from the vertex winding order.
// Degenerate triangles return the zero vector.
func (t Triangle) ComputeNormal() Point3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}
