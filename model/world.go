package model

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Rand is the uniform random source consumed by RandomWorld, satisfied
// by *math/rand.Rand
type Rand interface {
	Intn(n int) int
}

// neighbour positions are the cell's own position plus these offsets in
// each axis, minus the cell itself
var neighbourOffsets = [3]int{-1, 0, 1}

/*
World owns the simulated grid: a flat row-major slice of packed cells
holding the authoritative state, plus a scratch slice of the same length
that receives a snapshot of the previous generation during each advance.

Every live cell contributes exactly one to the cached neighbour count of
each in-bounds adjacent cell, at all times between advances. All
mutation goes through World methods to keep that bookkeeping true; the
grid never resizes and is not safe for concurrent use.
*/
type World struct {
	width   int
	height  int
	cells   []Cell
	scratch []Cell
}

// NewWorld creates an all-dead world with the given dimensions
func NewWorld(width, height int) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[NewWorld] degenerate grid dimensions: %dx%d", width, height)
	}
	cellCount := width * height
	return &World{
		width:   width,
		height:  height,
		cells:   make([]Cell, cellCount),
		scratch: make([]Cell, cellCount),
	}, nil
}

/*
RandomWorld seeds a new world with floor(width*height/2) uniform point
samples, bringing a sampled cell to life only if it is currently dead.

Duplicate samples are silently absorbed, so the live population usually
lands below half the grid.
*/
func RandomWorld(width, height int, rng Rand) (*World, error) {
	world, err := NewWorld(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[RandomWorld] failed to construct world")
	}
	sampleCount := (width * height) / 2
	for s := 0; s < sampleCount; s++ {
		i := rng.Intn(height)
		j := rng.Intn(width)
		if world.CellState(i, j) == 0 {
			world.setCell(i, j)
		}
	}
	return world, nil
}

// Width returns the width of the grid
func (w *World) Width() int {
	return w.width
}

// Height returns the height of the grid
func (w *World) Height() int {
	return w.height
}

// CellState returns the raw alive flag at (i, j): 1 alive, 0 dead
func (w *World) CellState(i, j int) uint8 {
	if w.cells[i*w.width+j].IsAlive() {
		return 1
	}
	return 0
}

// SetCell brings the cell at (i, j) to life, updating its neighbours'
// cached counts. Cells that are already alive are left untouched.
func (w *World) SetCell(i, j int) {
	if w.cells[i*w.width+j].IsAlive() {
		return
	}
	w.setCell(i, j)
}

// CountLivingCells returns the total number of living cells
func (w *World) CountLivingCells() (count int) {
	for idx := range w.cells {
		if w.cells[idx].IsAlive() {
			count++
		}
	}
	return
}

/*
AdvanceGeneration steps the world one generation, drawing the on/off
colour to the canvas once for every cell that changed state.

The authoritative grid is snapshotted into the scratch slice first; the
scan evaluates the rule against that snapshot only, so mutations made
while the scan runs are never visible to it.
*/
func (w *World) AdvanceGeneration(canvas Canvas) {
	copy(w.scratch, w.cells)
	for i := 0; i < w.height; i++ {
		for j := 0; j < w.width; j++ {
			curr := w.scratch[i*w.width+j]
			// skim past dead cells with no live neighbours: they cannot
			// be born this turn and carry no bookkeeping
			if curr.IsEmpty() {
				continue
			}
			alive := curr.IsAlive()
			if rules.ApplyConwayRules(w.mustNeighbours(curr, i, j), alive) {
				if !alive {
					w.setCell(i, j)
					canvas.Draw(i, j, ColourOn)
				}
			} else if alive {
				w.clearCell(i, j)
				canvas.Draw(i, j, ColourOff)
			}
		}
	}
}

// setCell marks (i, j) alive and increments the cached count of every
// in-bounds neighbour
func (w *World) setCell(i, j int) {
	w.cells[i*w.width+j].SetAlive()
	for _, iOff := range neighbourOffsets {
		for _, jOff := range neighbourOffsets {
			// skip self
			if iOff == 0 && jOff == 0 {
				continue
			}
			ni, nj, ok := w.validPosition(i+iOff, j+jOff)
			if !ok {
				continue
			}
			// a refusal means the neighbour already sees 8 live cells,
			// the physical ceiling; nothing to record
			w.cells[ni*w.width+nj].TryIncrement()
		}
	}
}

// clearCell marks (i, j) dead and decrements the cached count of every
// in-bounds neighbour
func (w *World) clearCell(i, j int) {
	w.cells[i*w.width+j].SetDead()
	for _, iOff := range neighbourOffsets {
		for _, jOff := range neighbourOffsets {
			// skip self
			if iOff == 0 && jOff == 0 {
				continue
			}
			ni, nj, ok := w.validPosition(i+iOff, j+jOff)
			if !ok {
				continue
			}
			// the cell being cleared was alive, so every in-bounds
			// neighbour counted it; a zero count here means the
			// bookkeeping went wrong somewhere earlier
			if !w.cells[ni*w.width+nj].TryDecrement() {
				panic(fmt.Sprintf("neighbour count underflow at (%d, %d)", ni, nj))
			}
		}
	}
}

// mustNeighbours unwraps a snapshot cell's cached count; failure means
// the count field was corrupted, a defect rather than an operational
// condition
func (w *World) mustNeighbours(c Cell, i, j int) int {
	count, err := c.Neighbours()
	if err != nil {
		panic(fmt.Sprintf("neighbour count invariant violated at (%d, %d): %+v", i, j, err))
	}
	return int(count.Get())
}

// validPosition reports whether (i, j) lies inside the grid. Positions
// outside are skipped by callers, never wrapped.
func (w *World) validPosition(i, j int) (int, int, bool) {
	if i < 0 || i >= w.height || j < 0 || j >= w.width {
		return 0, 0, false
	}
	return i, j, true
}
