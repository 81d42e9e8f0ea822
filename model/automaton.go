package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-cavegen/rules"
)

// TransitionEvent describes a finished transition
type TransitionEvent struct {
	RuleIndex int // index into the rule sequence
	Iteration int // 0-based repetition of that rule
	Grid      *Grid
}

type runOptions struct {
	workers  int
	observer func(TransitionEvent)
}

// RunOption configures RunAutomaton
type RunOption func(*runOptions)

// WithParallel splits each transition across workers goroutines. A value below 1 uses runtime.NumCPU().
func WithParallel(workers int) RunOption {
	return func(o *runOptions) {
		if workers < 1 {
			workers = runtime.NumCPU()
		}
		o.workers = workers
	}
}

// WithObserver registers a callback run after every transition. The grid it receives must not be retained.
func WithObserver(fn func(TransitionEvent)) RunOption {
	return func(o *runOptions) {
		o.observer = fn
	}
}

// RunAutomaton applies each rule RepeatCount times, in order, and returns the final grid.
// current and next are mutated; the returned grid is one of the two.
func RunAutomaton(current, next *Grid, caveRules []rules.GenerationRule, width, height int, opts ...RunOption) (*Grid, error) {
	if err := validateRun(current, next, caveRules, width, height); err != nil {
		return nil, errors.Wrap(err, "[RunAutomaton]")
	}

	o := runOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	// the buffers swap roles every transition, so they must agree on the border
	next.copyBorder(current)

	for i, rule := range caveRules {
		for iter := range rule.RepeatCount {
			if o.workers > 1 {
				if err := current.TransitionParallel(next, rule, o.workers); err != nil {
					return nil, errors.Wrapf(err, "[RunAutomaton] rule %d iteration %d", i+1, iter)
				}
			} else {
				current.Transition(next, rule)
			}
			current, next = next, current

			if o.observer != nil {
				o.observer(TransitionEvent{RuleIndex: i, Iteration: iter, Grid: current})
			}
		}
	}
	return current, nil
}

func validateRun(current, next *Grid, caveRules []rules.GenerationRule, width, height int) error {
	if current == nil || next == nil {
		return errors.Wrap(ErrInvalidDimension, "nil grid")
	}
	if err := ValidateDimensions(width, height); err != nil {
		return err
	}
	for _, g := range []*Grid{current, next} {
		if g.width != width || g.height != height {
			return errors.Wrapf(ErrInvalidDimension, "grid is %dx%d, expected %dx%d", g.width, g.height, width, height)
		}
	}
	for i, rule := range caveRules {
		if err := rule.Validate(); err != nil {
			return errors.Wrapf(err, "rule %d", i+1)
		}
	}
	return nil
}

// Transition computes one application of rule from g into next, which must share g's dimensions.
// Only interior cells of next are written.
func (g *Grid) Transition(next *Grid, rule rules.GenerationRule) {
	g.transitionRows(next, rule, 1, g.height-1)
}

// TransitionParallel is Transition with the interior rows split into bands, one goroutine per band
func (g *Grid) TransitionParallel(next *Grid, rule rules.GenerationRule, workers int) error {
	var (
		eg            errgroup.Group
		interior      = g.height - 2
		rowsPerWorker = (interior + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = 1 + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height-1)
		)
		if startRow >= g.height-1 {
			break
		}

		eg.Go(func() error {
			g.transitionRows(next, rule, startRow, endRow)
			return nil
		})
	}

	return eg.Wait()
}

// transitionRows handles rows [startRow, endRow) of the interior
func (g *Grid) transitionRows(next *Grid, rule rules.GenerationRule, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 1; x < g.width-1; x++ {
			next.cells[y][x] = rules.ApplyCaveRules(g.CountWallsR1(x, y), g.CountWallsR2(x, y), rule)
		}
	}
}
