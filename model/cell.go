package model

import "github.com/pkg/errors"

const (
	aliveMask      = 0x01
	neighbourMask  = 0x1e
	neighbourShift = 1

	// MaxCellValue is the largest byte a Cell can hold: the alive bit plus
	// a four-bit neighbour count field.
	MaxCellValue = 0x1f

	// MaxNeighbours is the physical ceiling for live neighbours of any
	// cell on a bounded grid.
	MaxNeighbours = 8
)

// NeighbourCount is a live-neighbour count validated to lie in [0, 8].
type NeighbourCount uint8

// NeighbourCountFromByte validates a raw count read out of a cell
func NeighbourCountFromByte(b uint8) (NeighbourCount, error) {
	if b > MaxNeighbours {
		return 0, errors.Errorf("[NeighbourCountFromByte] byte out of range for neighbour count: %d", b)
	}
	return NeighbourCount(b), nil
}

// Get returns the count as a plain byte
func (n NeighbourCount) Get() uint8 {
	return uint8(n)
}

/*
Cell packs one grid position's state into a single byte: bit 0 is the
alive flag, bits 1-4 cache the live-neighbour count.

The count is maintained incrementally by the world as neighbouring cells
are born and die, so rule evaluation never rescans adjacent cells.
*/
type Cell uint8

// CellFromByte validates a raw byte as a packed cell
func CellFromByte(b uint8) (Cell, error) {
	if b > MaxCellValue {
		return 0, errors.Errorf("[CellFromByte] byte out of range for cell: %d", b)
	}
	return Cell(b), nil
}

// IsAlive reports whether the alive bit is set
func (c Cell) IsAlive() bool {
	return c&aliveMask != 0
}

// IsEmpty reports whether the cell is dead with no live neighbours
func (c Cell) IsEmpty() bool {
	return c == 0
}

// SetAlive sets the alive bit, leaving the count field untouched
func (c *Cell) SetAlive() {
	*c |= aliveMask
}

// SetDead clears the alive bit, leaving the count field untouched
func (c *Cell) SetDead() {
	*c &^= aliveMask
}

// Neighbours extracts the cached count. An error here means the count
// field holds a value above 8, which only happens when the incremental
// bookkeeping has been corrupted.
func (c Cell) Neighbours() (NeighbourCount, error) {
	return NeighbourCountFromByte(uint8(c&neighbourMask) >> neighbourShift)
}

// TryIncrement bumps the count field, refusing at the ceiling of 8
func (c *Cell) TryIncrement() bool {
	count := uint8(*c&neighbourMask) >> neighbourShift
	if count >= MaxNeighbours {
		return false
	}
	*c = (*c &^ neighbourMask) | Cell((count+1)<<neighbourShift)
	return true
}

// TryDecrement drops the count field, refusing at the floor of 0
func (c *Cell) TryDecrement() bool {
	count := uint8(*c&neighbourMask) >> neighbourShift
	if count == 0 {
		return false
	}
	*c = (*c &^ neighbourMask) | Cell((count-1)<<neighbourShift)
	return true
}
