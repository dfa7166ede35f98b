package gd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	assert.True(t, m.IsIdentity())
	assertPoint(t, Point{3, 4}, m.TransformPoint(Point{3, 4}))
}

func TestMatrixMultiplyAppliesOtherFirst(t *testing.T) {
	translate := Matrix{A: 1, E: 1, C: 10, F: 20}
	scale := Matrix{A: 2, E: 3}

	// scale then translate
	m := translate.Multiply(scale)
	assertPoint(t, Point{12, 23}, m.TransformPoint(Point{1, 1}))

	// translate then scale
	m = scale.Multiply(translate)
	assertPoint(t, Point{22, 63}, m.TransformPoint(Point{1, 1}))
}

func TestMatrixInvert(t *testing.T) {
	cos, sin := math.Cos(0.3), math.Sin(0.3)
	m := Matrix{A: cos, B: -sin, C: 5, D: sin, E: cos, F: -7}
	p := Point{11, 13}
	assertPoint(t, p, m.Invert().TransformPoint(m.TransformPoint(p)))

	singular := Matrix{A: 1, B: 2, D: 2, E: 4}
	assert.True(t, singular.Invert().IsIdentity())
}
