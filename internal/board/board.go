// Package board provides the grid occupancy store for mosaic placement.
package board

import (
	"errors"
	"fmt"
	"strings"

	"tetris-mosaic/internal/piece"
)

// Empty marks an unoccupied cell.
const Empty byte = ' '

var (
	// ErrInvalidCell reports a coordinate outside the board bounds.
	ErrInvalidCell = errors.New("cell out of bounds")

	// ErrOccupiedCell reports a placement onto a non-empty cell.
	ErrOccupiedCell = errors.New("cell already occupied")
)

// Board is a width x height grid of piece tags plus the ordered history of
// placed pieces. The zero value is not usable; construct with New.
type Board struct {
	cells  []byte
	pieces []piece.Piece
	width  int
	height int
}

// New returns an empty board of the given dimensions.
func New(width, height int) *Board {
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// Pieces returns the placement history, oldest first. The slice is shared;
// callers must not modify it.
func (b *Board) Pieces() []piece.Piece { return b.pieces }

// Get returns the tag at the cell, or ErrInvalidCell outside the bounds.
func (b *Board) Get(c piece.Cell) (byte, error) {
	if c.X < 0 || c.X >= b.width || c.Y < 0 || c.Y >= b.height {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrInvalidCell, c.X, c.Y, b.width, b.height)
	}
	return b.cells[c.Y*b.width+c.X], nil
}

// Set writes a tag directly into a cell, bounds-checked. It bypasses
// placement history; editing callers pair it with RemovePiece or
// UndoLastMove rather than the scheduler.
func (b *Board) Set(c piece.Cell, tag byte) error {
	if c.X < 0 || c.X >= b.width || c.Y < 0 || c.Y >= b.height {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrInvalidCell, c.X, c.Y, b.width, b.height)
	}
	b.cells[c.Y*b.width+c.X] = tag
	return nil
}

// EmptyAt reports whether the cell is in bounds and unoccupied.
func (b *Board) EmptyAt(c piece.Cell) bool {
	tag, err := b.Get(c)
	return err == nil && tag == Empty
}

// CanPlace reports whether every occupancy cell of the piece is in bounds
// and currently empty. Geometry errors count as unplaceable, not failures.
func (b *Board) CanPlace(p piece.Piece) bool {
	cells, err := p.Occupancy()
	if err != nil {
		return false
	}
	for _, c := range cells {
		if !b.EmptyAt(c) {
			return false
		}
	}
	return true
}

// Place writes the piece's tag into every occupancy cell and appends it to
// the history. The write is all-or-nothing: if any cell is out of bounds or
// occupied the board is left unchanged and the error identifies the cell.
func (b *Board) Place(p piece.Piece) error {
	cells, err := p.Occupancy()
	if err != nil {
		return err
	}

	for _, c := range cells {
		tag, err := b.Get(c)
		if err != nil {
			return err
		}
		if tag != Empty {
			return fmt.Errorf("%w: %s at (%d,%d)", ErrOccupiedCell, p.Kind, c.X, c.Y)
		}
	}

	for _, c := range cells {
		b.cells[c.Y*b.width+c.X] = byte(p.Kind)
	}
	b.pieces = append(b.pieces, p)
	return nil
}

// UndoLastMove removes the most recently placed piece and clears its cells.
// Supports reversible editing paths; the greedy scheduler never calls it.
func (b *Board) UndoLastMove() error {
	if len(b.pieces) == 0 {
		return errors.New("no moves to undo")
	}
	last := b.pieces[len(b.pieces)-1]
	b.pieces = b.pieces[:len(b.pieces)-1]

	cells, err := last.Occupancy()
	if err != nil {
		return err
	}
	for _, c := range cells {
		b.cells[c.Y*b.width+c.X] = Empty
	}
	return nil
}

// RemovePiece clears the given piece's cells and drops it from the history.
func (b *Board) RemovePiece(p piece.Piece) error {
	cells, err := p.Occupancy()
	if err != nil {
		return err
	}
	for _, c := range cells {
		if _, err := b.Get(c); err != nil {
			return err
		}
	}
	for _, c := range cells {
		b.cells[c.Y*b.width+c.X] = Empty
	}
	kept := b.pieces[:0]
	for _, placed := range b.pieces {
		if placed != p {
			kept = append(kept, placed)
		}
	}
	b.pieces = kept
	return nil
}

// String renders the grid for debugging, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", b.width) + "+\n"
	sb.WriteString(border)
	for y := 0; y < b.height; y++ {
		sb.WriteByte('|')
		sb.Write(b.cells[y*b.width : (y+1)*b.width])
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
