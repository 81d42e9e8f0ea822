package model

import "github.com/pkg/errors"

// InitializeGrids builds the working pair for a generation run. Both grids start as solid
// Wall; the interior of current is then seeded so that each cell is Wall with probability
// fillPercent/100. next is scratch space for the automaton.
func InitializeGrids(width, height, fillPercent int, rng RandomSource) (current, next *Grid, err error) {
	return InitializeGridsFromPool(nil, width, height, fillPercent, rng)
}

// InitializeGridsFromPool is InitializeGrids drawing both grids from pool when it is non-nil
func InitializeGridsFromPool(pool *GridPool, width, height, fillPercent int, rng RandomSource) (current, next *Grid, err error) {
	if err = ValidateDimensions(width, height); err != nil {
		return nil, nil, errors.Wrap(err, "[InitializeGrids]")
	}
	if rng == nil {
		return nil, nil, errors.Wrap(ErrRandomSource, "[InitializeGrids] nil random source")
	}

	current = newGrid(pool, width, height)
	if err = current.Randomize(fillPercent, rng); err != nil {
		GridToPool(current, pool)
		return nil, nil, errors.Wrap(err, "[InitializeGrids]")
	}
	return current, newGrid(pool, width, height), nil
}

// Randomize reseeds the interior, one draw per cell. The border is left untouched.
func (g *Grid) Randomize(fillPercent int, rng RandomSource) error {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			draw, err := rng.Percent()
			if err != nil {
				return errors.Wrapf(err, "[Randomize] cell (%d,%d)", x, y)
			}
			g.cells[y][x] = draw < fillPercent
		}
	}
	return nil
}
