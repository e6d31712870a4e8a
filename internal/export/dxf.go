package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/WaferDice/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// ExportDXF writes one layout of the set as a DXF wafer map. The drawing
// carries the wafer outline, the effective placement boundary, the notch
// line when enabled, every die outline, and the scribe street center lines
// between neighboring die rows and columns. Layers separate the entity
// groups so downstream CAD tooling can toggle them independently.
func ExportDXF(path string, set model.LayoutSet, layoutLabel string) error {
	lr, ok := set.Get(layoutLabel)
	if !ok {
		return fmt.Errorf("layout %q not found in result set", layoutLabel)
	}

	d := dxf.NewDrawing()

	// Physical wafer outline
	if _, err := d.AddLayer("WAFER", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add wafer layer: %w", err)
	}
	d.Circle(0, 0, 0, set.Wafer.Radius)

	// Effective placement boundary
	if _, err := d.AddLayer("EXCLUSION", color.Red, table.LT_DASHDOT, true); err != nil {
		return fmt.Errorf("failed to add exclusion layer: %w", err)
	}
	d.Circle(0, 0, 0, set.Wafer.EffectiveRadius())

	if set.Wafer.Notch {
		notchY := set.Wafer.NotchY()
		half := chordHalfLength(set.Wafer.Radius, notchY)
		d.Line(-half, notchY, 0, half, notchY, 0)
	}

	// Die outlines
	if _, err := d.AddLayer("DIES", color.Green, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add die layer: %w", err)
	}
	hw := set.Die.Width / 2
	hh := set.Die.Height / 2
	for _, p := range lr.Positions {
		drawRect(d, p.X-hw, p.Y-hh, p.X+hw, p.Y+hh)
	}

	// Scribe street center lines
	if _, err := d.AddLayer("SCRIBE", color.Cyan, table.LT_DASHDOT, true); err != nil {
		return fmt.Errorf("failed to add scribe layer: %w", err)
	}
	drawScribeStreets(d, lr.Positions, set.Wafer.EffectiveRadius())

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four LINE entities.
func drawRect(d *drawing.Drawing, x1, y1, x2, y2 float64) {
	d.Line(x1, y1, 0, x2, y1, 0)
	d.Line(x2, y1, 0, x2, y2, 0)
	d.Line(x2, y2, 0, x1, y2, 0)
	d.Line(x1, y2, 0, x1, y1, 0)
}

// drawScribeStreets draws the cut center lines midway between neighboring
// die columns and rows, clipped to the effective boundary circle.
func drawScribeStreets(d *drawing.Drawing, ps model.PositionSet, effR float64) {
	for _, x := range streetCoordinates(ps, func(p model.Position) float64 { return p.X }) {
		half := chordHalfLength(effR, x)
		if half > 0 {
			d.Line(x, -half, 0, x, half, 0)
		}
	}
	for _, y := range streetCoordinates(ps, func(p model.Position) float64 { return p.Y }) {
		half := chordHalfLength(effR, y)
		if half > 0 {
			d.Line(-half, y, 0, half, y, 0)
		}
	}
}

// streetCoordinates returns the midpoints between adjacent distinct die
// center coordinates along one axis. Coordinates are deduplicated at
// micron granularity to absorb float noise within a lattice row or column.
func streetCoordinates(ps model.PositionSet, axis func(model.Position) float64) []float64 {
	const tolerance = 1e-6

	seen := make(map[int64]float64, len(ps))
	for _, p := range ps {
		v := axis(p)
		seen[int64(math.Round(v/tolerance))] = v
	}

	distinct := make([]float64, 0, len(seen))
	for _, v := range seen {
		distinct = append(distinct, v)
	}
	sort.Float64s(distinct)

	streets := make([]float64, 0, len(distinct))
	for i := 1; i < len(distinct); i++ {
		streets = append(streets, (distinct[i-1]+distinct[i])/2)
	}
	return streets
}

// chordHalfLength returns half the length of the chord of a circle of the
// given radius at the given perpendicular distance from the center, or 0
// when the line misses the circle.
func chordHalfLength(radius, dist float64) float64 {
	rem := radius*radius - dist*dist
	if rem <= 0 {
		return 0
	}
	return math.Sqrt(rem)
}
