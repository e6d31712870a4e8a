package engine

import (
	"runtime"
	"sync"

	"github.com/piwi3910/WaferDice/internal/model"
)

// Optimizer runs the lattice offset search for one wafer configuration.
type Optimizer struct {
	Wafer    model.WaferSpec
	Settings model.LayoutSettings
}

func New(wafer model.WaferSpec, settings model.LayoutSettings) *Optimizer {
	return &Optimizer{Wafer: wafer, Settings: settings}
}

// evaluation is the scored outcome of one sampled offset.
type evaluation struct {
	offset    model.LatticeOffset
	positions model.PositionSet
	count     int
	balance   float64
	symmetric bool
	singleRow bool
	buffers   model.EdgeBuffers
}

// Plan validates the inputs, sweeps the offset domain, and returns the best
// layout per objective: the unconstrained maximum count, the maximum count
// among bilaterally symmetric layouts, and the centered baseline.
//
// The sweep covers one lattice period: OffsetSteps subdivisions per axis
// over [0, period/2], with all four sign-quadrant reflections of each
// sample, since the lattice is periodic and the boundary is symmetric about
// the origin. The centered offset (0, 0) is always evaluated.
func (o *Optimizer) Plan(die model.Die) (model.LayoutSet, error) {
	if err := model.ValidatePlan(die, o.Wafer, o.Settings); err != nil {
		return model.LayoutSet{}, err
	}

	offsets := o.sampleOffsets(die)
	evals := o.evaluateAll(die, offsets)

	// offsets[0] is always (0, 0): the baseline is part of the search space
	// by construction.
	centered := evals[0]

	rowFilter := o.Settings.ForbidSingleDieRows

	var bestCount, bestSym *evaluation
	for i := range evals {
		ev := &evals[i]
		if rowFilter && ev.singleRow {
			continue
		}
		if bestCount == nil || better(ev, bestCount) {
			bestCount = ev
		}
		if ev.symmetric && (bestSym == nil || better(ev, bestSym)) {
			bestSym = ev
		}
	}

	set := model.LayoutSet{
		Die:      die,
		Wafer:    o.Wafer,
		Settings: o.Settings,
		Layouts: []model.LayoutResult{
			o.assemble(model.LabelMaxCount, bestCount),
			o.assemble(model.LabelSymmetric, bestSym),
			o.assemble(model.LabelCentered, &centered),
		},
	}
	return set, nil
}

// better applies the objective tie-break rule: higher count wins, equal
// counts fall back to the higher balance score. Strict comparison keeps the
// reduction deterministic regardless of evaluation order, because samples
// are always reduced in their fixed generation order.
func better(a, b *evaluation) bool {
	if a.count != b.count {
		return a.count > b.count
	}
	return a.balance > b.balance
}

// sampleOffsets builds the offset candidates. The first entry is always the
// centered offset.
func (o *Optimizer) sampleOffsets(die model.Die) []model.LatticeOffset {
	steps := o.Settings.OffsetSteps
	if steps <= 0 {
		steps = model.DefaultOffsetSteps
	}

	halfX := o.Settings.Period(die.Width) / 2
	halfY := o.Settings.Period(die.Height) / 2

	offsets := []model.LatticeOffset{{DX: 0, DY: 0}}
	for sx := 0; sx <= steps; sx++ {
		dx := halfX * float64(sx) / float64(steps)
		for sy := 0; sy <= steps; sy++ {
			dy := halfY * float64(sy) / float64(steps)
			if dx == 0 && dy == 0 {
				continue
			}
			for _, signX := range [2]float64{1, -1} {
				if dx == 0 && signX < 0 {
					continue
				}
				for _, signY := range [2]float64{1, -1} {
					if dy == 0 && signY < 0 {
						continue
					}
					offsets = append(offsets, model.LatticeOffset{DX: signX * dx, DY: signY * dy})
				}
			}
		}
	}
	return offsets
}

// evaluateAll scores every sampled offset. Evaluations are independent of
// each other, so they fan out across a bounded worker pool; results land in
// a slice indexed by sample so the later reduction sees them in generation
// order.
func (o *Optimizer) evaluateAll(die model.Die, offsets []model.LatticeOffset) []evaluation {
	evals := make([]evaluation, len(offsets))

	workers := runtime.NumCPU()
	if workers > len(offsets) {
		workers = len(offsets)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				evals[i] = o.evaluate(die, offsets[i])
			}
		}()
	}
	for i := range offsets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return evals
}

// evaluate generates and scores the position set for a single offset.
func (o *Optimizer) evaluate(die model.Die, off model.LatticeOffset) evaluation {
	effR := o.Wafer.EffectiveRadius()
	positions := GeneratePositions(off, die, o.Wafer, o.Settings)
	return evaluation{
		offset:    off,
		positions: positions,
		count:     len(positions),
		balance:   Balance(positions, effR),
		symmetric: IsSymmetric(positions),
		singleRow: HasSingleDieRow(positions),
		buffers:   ComputeBuffers(positions, die, effR),
	}
}

// assemble packages an evaluation under its stable label. A nil evaluation
// (an objective no sampled offset could satisfy) becomes the degenerate
// empty layout with count zero.
func (o *Optimizer) assemble(label string, ev *evaluation) model.LayoutResult {
	lr := model.NewLayoutResult(label)
	if ev == nil {
		lr.Balance = 1
		lr.Symmetric = true
		return lr
	}
	lr.Offset = ev.offset
	lr.Positions = ev.positions
	lr.Count = ev.count
	lr.Balance = ev.balance
	lr.Symmetric = ev.symmetric
	lr.Buffers = ev.buffers
	return lr
}
