package engine

import (
	"math"

	"github.com/piwi3910/WaferDice/internal/model"
)

// coordTolerance absorbs floating-point noise when comparing lattice
// coordinates for symmetry and row grouping, in mm.
const coordTolerance = 1e-6

// quantize maps a coordinate onto the tolerance grid.
func quantize(v float64) int64 {
	return int64(math.Round(v / coordTolerance))
}

// Balance scores how evenly the bounding extents of a position set are
// centered on the wafer. A set symmetric about the origin scores exactly 1;
// fully one-sided sets score toward 0 or below. An empty set scores 1.
func Balance(ps model.PositionSet, effectiveRadius float64) float64 {
	if effectiveRadius <= 0 {
		return 0
	}
	minX, maxX, minY, maxY := ps.Extents()
	hDiff := abs(maxX + minX)
	vDiff := abs(maxY + minY)
	return 1 - (hDiff+vDiff)/(2*effectiveRadius)
}

// IsSymmetric reports whether the set is invariant under reflection across
// both axes: for every (x, y) both (-x, y) and (x, -y) must be members.
// Coordinates are compared on a fixed tolerance grid. The empty set is
// vacuously symmetric.
func IsSymmetric(ps model.PositionSet) bool {
	type key struct{ x, y int64 }
	members := make(map[key]struct{}, len(ps))
	for _, p := range ps {
		members[key{quantize(p.X), quantize(p.Y)}] = struct{}{}
	}
	for _, p := range ps {
		qx, qy := quantize(p.X), quantize(p.Y)
		if _, ok := members[key{-qx, qy}]; !ok {
			return false
		}
		if _, ok := members[key{qx, -qy}]; !ok {
			return false
		}
	}
	return true
}

// HasSingleDieRow reports whether any row of the set contains exactly one
// die. A lone die per row is operationally undesirable on the saw, so some
// flows reject such configurations outright.
func HasSingleDieRow(ps model.PositionSet) bool {
	rows := make(map[int64]int)
	for _, p := range ps {
		rows[quantize(p.Y)]++
	}
	for _, n := range rows {
		if n == 1 {
			return true
		}
	}
	return false
}
