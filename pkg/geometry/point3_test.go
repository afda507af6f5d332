package geometry

import (
	"math"
	"testing"
)

func TestPoint3Add(t *testing.T) {
	p1 := NewPoint3(1, 2, 3)
	p2 := NewPoint3(4, 5, 6)
	result := p1.Add(p2)

	expected := NewPoint3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestPoint3Sub(t *testing.T) {
	p1 := NewPoint3(5, 7, 9)
	p2 := NewPoint3(1, 2, 3)
	result := p1.Sub(p2)

	expected := NewPoint3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPoint3Cross(t *testing.T) {
	x := NewPoint3(1, 0, 0)
	y := NewPoint3(0, 1, 0)
	result := x.Cross(y)

	expected := NewPoint3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestPoint3Dot(t *testing.T) {
	p1 := NewPoint3(1, 2, 3)
	p2 := NewPoint3(4, -5, 6)
	result := p1.Dot(p2)

	expected := 12.0
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestPoint3Length(t *testing.T) {
	p := NewPoint3(3, 4, 0)
	length := p.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestPoint3Distance(t *testing.T) {
	p1 := NewPoint3(0, 0, 0)
	p2 := NewPoint3(3, 4, 0)
	distance := p1.Distance(p2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPoint3Normalize(t *testing.T) {
	p := NewPoint3(3, 4, 0)
	normalized := p.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected unit length, got %v", normalized.Length())
	}
}

func TestPoint3NormalizeZero(t *testing.T) {
	p := NewPoint3(0, 0, 0)
	normalized := p.Normalize()

	if normalized != (Point3{}) {
		t.Errorf("Normalize of zero vector failed: expected zero, got %v", normalized)
	}
}

func TestPoint3MinMax(t *testing.T) {
	p1 := NewPoint3(1, 5, 3)
	p2 := NewPoint3(4, 2, 6)

	minResult := p1.Min(p2)
	maxResult := p1.Max(p2)

	if minResult != NewPoint3(1, 2, 3) {
		t.Errorf("Min failed: got %v", minResult)
	}
	if maxResult != NewPoint3(4, 5, 6) {
		t.Errorf("Max failed: got %v", maxResult)
	}
}
