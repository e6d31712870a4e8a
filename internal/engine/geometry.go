// Package engine implements the wafer placement search: lattice position
// generation, layout scoring, and the offset sweep optimizer.
package engine

import (
	"github.com/piwi3910/WaferDice/internal/model"
)

// fitsCorners reports whether all four corners of a die centered at (cx, cy)
// lie inside the circle of the given radius.
func fitsCorners(cx, cy, halfW, halfH, radius float64) bool {
	r2 := radius * radius
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			x := cx + sx*halfW
			y := cy + sy*halfH
			if x*x+y*y > r2 {
				return false
			}
		}
	}
	return true
}

// fitsArc is the bounding variant of the circle test: it pushes the center
// outward by the half-dimensions and checks the resulting single point.
func fitsArc(cx, cy, halfW, halfH, radius float64) bool {
	x := abs(cx) + halfW
	y := abs(cy) + halfH
	return x*x+y*y <= radius*radius
}

// violatesNotch reports whether the die's lower edge crosses below the
// notch line. The notch restricts placement independent of the circular
// boundary.
func violatesNotch(cy, halfH, notchY float64) bool {
	return cy-halfH < notchY
}

// fitsBoundary dispatches on the configured circle predicate.
func fitsBoundary(test model.BoundaryTest, cx, cy, halfW, halfH, radius float64) bool {
	if test == model.BoundaryArc {
		return fitsArc(cx, cy, halfW, halfH, radius)
	}
	return fitsCorners(cx, cy, halfW, halfH, radius)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
