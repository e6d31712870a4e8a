package engine

import (
	"testing"

	"github.com/piwi3910/WaferDice/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFitsCorners_CenteredDieInsideCircle(t *testing.T) {
	// 50x50 die centered on a 147 mm circle: half-diagonal ~35.36 mm.
	assert.True(t, fitsCorners(0, 0, 25, 25, 147))
}

func TestFitsCorners_CornerJustOutside(t *testing.T) {
	// Push the die out until its far corner crosses the boundary.
	// At cx=100, the far corner is (125, 25): 125^2+25^2 = 16250 <= 147^2.
	assert.True(t, fitsCorners(100, 0, 25, 25, 147))
	// At cx=125 the far corner is (150, 25), outside a 147 mm circle.
	assert.False(t, fitsCorners(125, 0, 25, 25, 147))
}

func TestFitsArc_AgreesWithCornersForCenteredRects(t *testing.T) {
	// The bounding-arc point (|x|+w/2, |y|+h/2) is exactly the farthest of
	// the four corners, so the two predicates agree on every die.
	cases := []struct{ cx, cy, hw, hh, r float64 }{
		{0, 0, 25, 25, 147},
		{100, 50, 25, 25, 147},
		{-100, -50, 25, 25, 147},
		{120, 10, 25, 25, 147},
		{125, 0, 25, 25, 147},
		{96.9, 96.9, 5, 5, 147},
	}
	for _, c := range cases {
		assert.Equal(t,
			fitsCorners(c.cx, c.cy, c.hw, c.hh, c.r),
			fitsArc(c.cx, c.cy, c.hw, c.hh, c.r),
			"cx=%v cy=%v", c.cx, c.cy)
	}
}

func TestViolatesNotch(t *testing.T) {
	wafer := model.NewWaferSpec(3.0)
	wafer.Notch = true
	notchY := wafer.NotchY()
	assert.InDelta(t, -142.5, notchY, 1e-12)

	// Lower edge above the line: fine.
	assert.False(t, violatesNotch(-100, 25, notchY))
	// Lower edge crossing below the line: invalid.
	assert.True(t, violatesNotch(-120, 25, notchY))
	// Exactly on the line is allowed.
	assert.False(t, violatesNotch(notchY+25, 25, notchY))
}
