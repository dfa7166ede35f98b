package gd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnits(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Degrees(90), 1e-12)
	assert.InDelta(t, math.Pi, Degrees(180), 1e-12)
	assert.InDelta(t, 270, ToDegrees(Degrees(270)), 1e-9)
	assert.Equal(t, 0.5, Percent(50))
	assert.Equal(t, 25.0, ToPercent(0.25))
}
