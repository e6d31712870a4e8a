package engine

import (
	"math"

	"github.com/piwi3910/WaferDice/internal/model"
)

// GeneratePositions enumerates every valid die center for one lattice
// offset. The lattice index bounds are derived so that any center whose die
// could still touch the effective circle is visited; each candidate is then
// kept only if it passes the boundary test and, when the notch is enabled,
// stays above the notch line.
//
// An empty result is a valid outcome, not an error.
func GeneratePositions(off model.LatticeOffset, die model.Die, wafer model.WaferSpec, settings model.LayoutSettings) model.PositionSet {
	effR := wafer.EffectiveRadius()
	if effR <= 0 {
		return nil
	}

	halfW := die.Width / 2
	halfH := die.Height / 2
	periodX := settings.Period(die.Width)
	periodY := settings.Period(die.Height)

	maxX := effR - halfW
	maxY := effR - halfH
	if maxX < 0 || maxY < 0 {
		return nil
	}

	iMin := int(math.Ceil((-maxX - off.DX) / periodX))
	iMax := int(math.Floor((maxX - off.DX) / periodX))
	jMin := int(math.Ceil((-maxY - off.DY) / periodY))
	jMax := int(math.Floor((maxY - off.DY) / periodY))

	notchY := wafer.NotchY()

	var positions model.PositionSet
	for i := iMin; i <= iMax; i++ {
		x := off.DX + float64(i)*periodX
		for j := jMin; j <= jMax; j++ {
			y := off.DY + float64(j)*periodY
			if !fitsBoundary(settings.BoundaryTest, x, y, halfW, halfH, effR) {
				continue
			}
			if wafer.Notch && violatesNotch(y, halfH, notchY) {
				continue
			}
			positions = append(positions, model.Position{X: x, Y: y})
		}
	}
	return positions
}

// ComputeBuffers measures the clearance between the outermost die edges and
// the effective boundary on each side. All four values are zero for an
// empty set.
func ComputeBuffers(ps model.PositionSet, die model.Die, effectiveRadius float64) model.EdgeBuffers {
	if len(ps) == 0 {
		return model.EdgeBuffers{}
	}
	minX, maxX, minY, maxY := ps.Extents()
	halfW := die.Width / 2
	halfH := die.Height / 2
	return model.EdgeBuffers{
		Left:   effectiveRadius - (abs(minX) + halfW),
		Right:  effectiveRadius - (maxX + halfW),
		Top:    effectiveRadius - (maxY + halfH),
		Bottom: effectiveRadius - (abs(minY) + halfH),
	}
}
