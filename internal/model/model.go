package model

import (
	"math"

	"github.com/google/uuid"
)

// WaferRadius is the physical radius of the substrate in mm. Every supported
// process runs on 300 mm wafers, so this is a domain constant rather than a
// user input.
const WaferRadius = 150.0

// NotchDepth is the height of the flat reference notch measured from the
// bottom edge of the wafer, in mm.
const NotchDepth = 7.5

// SpacingMode selects how the scribe width enters the lattice period.
// Two conventions are in circulation: the full scribe width between
// neighboring dies, or half the scribe width charged to each side.
type SpacingMode string

const (
	SpacingFull SpacingMode = "full" // period = size + scribe
	SpacingHalf SpacingMode = "half" // period = size + scribe/2
)

// BoundaryTest selects the circular boundary predicate used to decide
// whether a die fits inside the effective radius.
type BoundaryTest string

const (
	// BoundaryCorners checks each of the four die corners against the circle.
	BoundaryCorners BoundaryTest = "corners"
	// BoundaryArc checks the single farthest corner via
	// (|x|+w/2)^2 + (|y|+h/2)^2 <= r^2.
	BoundaryArc BoundaryTest = "arc"
)

// Die represents the repeated rectangular unit placed on the wafer.
type Die struct {
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// Area returns the die area in sq mm.
func (d Die) Area() float64 {
	return d.Width * d.Height
}

// WaferSpec describes the substrate and its placement restrictions.
type WaferSpec struct {
	Radius          float64 `json:"radius"`           // mm, physical wafer radius
	EdgeExclusion   float64 `json:"edge_exclusion"`   // mm, margin near the wafer edge
	ExclusionFactor float64 `json:"exclusion_factor"` // multiplier applied to the edge exclusion (1.0 or 1.10)
	Notch           bool    `json:"notch"`            // whether the flat reference notch restricts placement
	NotchDepth      float64 `json:"notch_depth"`      // mm, notch height from the wafer bottom
}

// NewWaferSpec returns a wafer spec for the standard 300 mm substrate with
// the given edge exclusion and no notch restriction.
func NewWaferSpec(edgeExclusion float64) WaferSpec {
	return WaferSpec{
		Radius:          WaferRadius,
		EdgeExclusion:   edgeExclusion,
		ExclusionFactor: 1.0,
		Notch:           false,
		NotchDepth:      NotchDepth,
	}
}

// EffectiveRadius returns the usable placement radius after the edge
// exclusion is applied.
func (w WaferSpec) EffectiveRadius() float64 {
	return w.Radius - w.EdgeExclusion*w.ExclusionFactor
}

// NotchY returns the y coordinate of the notch line. Dies whose lower edge
// crosses below this line are invalid when the notch is enabled.
func (w WaferSpec) NotchY() float64 {
	return -w.Radius + w.NotchDepth
}

// Area returns the physical wafer area in sq mm.
func (w WaferSpec) Area() float64 {
	return math.Pi * w.Radius * w.Radius
}

// DefaultOffsetSteps is the default subdivision count per axis for the
// offset sweep. Finer steps improve or preserve the best layout found at
// linear extra cost.
const DefaultOffsetSteps = 10

// LayoutSettings holds the tunables of the placement search.
type LayoutSettings struct {
	ScribeWidth         float64      `json:"scribe_width"`           // mm, minimum gap between adjacent die edges
	SpacingMode         SpacingMode  `json:"spacing_mode"`           // how the scribe enters the lattice period
	BoundaryTest        BoundaryTest `json:"boundary_test"`          // circle predicate variant
	OffsetSteps         int          `json:"offset_steps"`           // subdivisions per axis over [0, period/2]
	ForbidSingleDieRows bool         `json:"forbid_single_die_rows"` // reject searched offsets that leave a lone die in a row
}

func DefaultSettings() LayoutSettings {
	return LayoutSettings{
		ScribeWidth:         0.1,
		SpacingMode:         SpacingFull,
		BoundaryTest:        BoundaryCorners,
		OffsetSteps:         DefaultOffsetSteps,
		ForbidSingleDieRows: false,
	}
}

// Period returns the lattice period for a die dimension of the given size.
func (s LayoutSettings) Period(size float64) float64 {
	if s.SpacingMode == SpacingHalf {
		return size + s.ScribeWidth/2
	}
	return size + s.ScribeWidth
}

// LatticeOffset is the translation of the regular grid origin. By
// periodicity only one lattice period per axis is ever worth exploring.
type LatticeOffset struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Position is the center of one die instance on the wafer.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PositionSet is the ordered sequence of die centers produced for one
// lattice offset. Positions are unique by construction: lattice indices are
// unique and the index-to-coordinate mapping is injective for nonzero
// periods.
type PositionSet []Position

// Extents returns the coordinate extrema of the set. All four values are
// zero for an empty set.
func (ps PositionSet) Extents() (minX, maxX, minY, maxY float64) {
	if len(ps) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = ps[0].X, ps[0].X
	minY, maxY = ps[0].Y, ps[0].Y
	for _, p := range ps[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, maxX, minY, maxY
}

// EdgeBuffers holds the clearance between the outermost die edges and the
// effective boundary on each side, in mm.
type EdgeBuffers struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Stable layout labels present in every LayoutSet.
const (
	LabelMaxCount  = "max-count"
	LabelSymmetric = "symmetric"
	LabelCentered  = "centered"
)

// LayoutResult is one scored placement. It is derived data and never
// mutated after creation. Identical inputs always produce identical
// results, so the struct deliberately carries no random identity.
type LayoutResult struct {
	Label     string        `json:"label"`
	Offset    LatticeOffset `json:"offset"`
	Positions PositionSet   `json:"positions"`
	Count     int           `json:"count"`
	Balance   float64       `json:"balance"`
	Symmetric bool          `json:"symmetric"`
	Buffers   EdgeBuffers   `json:"buffers"`
}

// NewLayoutResult returns an empty layout under the given label.
func NewLayoutResult(label string) LayoutResult {
	return LayoutResult{Label: label}
}

// BalancePercent expresses the balance score as a percentage.
func (lr LayoutResult) BalancePercent() float64 {
	return lr.Balance * 100.0
}

// Utilization returns the percentage of the wafer area covered by dies.
func (lr LayoutResult) Utilization(die Die, wafer WaferSpec) float64 {
	waferArea := wafer.Area()
	if waferArea == 0 {
		return 0
	}
	return float64(lr.Count) * die.Area() / waferArea * 100.0
}

// LayoutSet is the final output of one planning run: the per-objective best
// layouts together with the inputs they were computed for.
type LayoutSet struct {
	Die      Die            `json:"die"`
	Wafer    WaferSpec      `json:"wafer"`
	Settings LayoutSettings `json:"settings"`
	Layouts  []LayoutResult `json:"layouts"`
}

// Get returns the layout with the given label.
func (ls LayoutSet) Get(label string) (LayoutResult, bool) {
	for _, lr := range ls.Layouts {
		if lr.Label == label {
			return lr, true
		}
	}
	return LayoutResult{}, false
}

// MaxCount returns the highest die count across all layouts in the set.
func (ls LayoutSet) MaxCount() int {
	best := 0
	for _, lr := range ls.Layouts {
		if lr.Count > best {
			best = lr.Count
		}
	}
	return best
}

// Plan ties a named planning run together for save/load.
type Plan struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Die      Die            `json:"die"`
	Wafer    WaferSpec      `json:"wafer"`
	Settings LayoutSettings `json:"settings"`
	Result   *LayoutSet     `json:"result,omitempty"`
}

func NewPlan(name string) Plan {
	return Plan{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Wafer:    NewWaferSpec(3.0),
		Settings: DefaultSettings(),
	}
}
