package gd

import "math"

// Point is a location in canvas space
type Point struct {
	X, Y float64
}

// Matrix is a 2D affine transformation in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// mapping x' = a*x + b*y + c and y' = d*x + e*y + f.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other), so other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse transformation. A singular matrix yields the identity.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if det == 0 || math.IsNaN(det) {
		return Identity()
	}
	return Matrix{
		A: m.E / det,
		B: -m.B / det,
		C: (m.B*m.F - m.E*m.C) / det,
		D: -m.D / det,
		E: m.A / det,
		F: (m.D*m.C - m.A*m.F) / det,
	}
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
