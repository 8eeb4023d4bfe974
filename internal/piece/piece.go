// Package piece defines the tetromino shape vocabulary: cells, orientations,
// the seven rotatable pieces plus the two single-cell fillers, and the
// occupancy computation that maps a placed piece to board cells.
package piece

import (
	"errors"
	"fmt"
)

// Cell is an integer grid coordinate. Cells order by (Y, X) ascending; the
// scheduler's priority queue depends on that ordering.
type Cell struct {
	X int
	Y int
}

// Before reports whether c precedes o in the (Y, X) ascending total order.
func (c Cell) Before(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Orientation is one of the four compass rotations. The set is closed.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Orientations returns the four orientations in their canonical candidate
// order. Callers iterate this slice when enumerating placements, so the
// order doubles as tie-break precedence.
func Orientations() []Orientation {
	return []Orientation{North, East, South, West}
}

// Kind identifies a piece variant. The tag byte for each kind is the value
// stored in board cells.
type Kind byte

const (
	KindI Kind = 'I'
	KindO Kind = 'O'
	KindT Kind = 'T'
	KindL Kind = 'L'
	KindJ Kind = 'J'
	KindS Kind = 'S'
	KindZ Kind = 'Z'

	// Fillers: single-cell pieces with no orientation.
	KindGray  Kind = 'G'
	KindBlack Kind = 'B'
)

// Kinds returns all nine kinds, tetrominoes first in candidate order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ, KindGray, KindBlack}
}

// Rotatable reports whether the kind is one of the seven tetrominoes.
func (k Kind) Rotatable() bool {
	switch k {
	case KindI, KindO, KindT, KindL, KindJ, KindS, KindZ:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(byte(k))
}

// Piece is a placed or candidate piece: a kind, its anchor cell, and (for
// tetrominoes) an orientation. Fillers ignore the orientation field.
type Piece struct {
	Kind        Kind
	Anchor      Cell
	Orientation Orientation
}

// ErrNegativeCell reports an occupancy that extends past the left or top
// board edge for the given anchor and orientation.
var ErrNegativeCell = errors.New("piece occupancy has negative coordinates")

type offset struct {
	dx int
	dy int
}

// Relative occupancy tables, indexed by orientation then block. Constants
// carried over from the reference shape set.
var shapeOffsets = map[Kind][4][4]offset{
	KindI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, -1}, {0, -2}, {0, -3}},
		{{0, 0}, {-1, 0}, {-2, 0}, {-3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	KindO: {
		{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}},
		{{0, 0}, {0, -1}, {-1, 0}, {-1, -1}},
		{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}},
		{{0, 0}, {0, -1}, {-1, 0}, {-1, -1}},
	},
	KindT: {
		{{0, 1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, 0}, {-1, 1}, {-1, 0}, {-1, -1}},
		{{-1, -1}, {0, 0}, {-1, 0}, {-2, 0}},
		{{-1, -1}, {0, -2}, {0, -1}, {0, 0}},
	},
	KindL: {
		{{-2, -1}, {-1, -1}, {0, -1}, {0, 0}},
		{{1, -1}, {0, 1}, {0, 0}, {0, -1}},
		{{0, 0}, {-1, 0}, {-2, 0}, {-2, -1}},
		{{-1, 0}, {0, 0}, {0, -1}, {0, -2}},
	},
	KindJ: {
		{{-1, 0}, {0, 0}, {1, 0}, {-1, -1}},
		{{-1, -2}, {0, 0}, {0, -1}, {0, -2}},
		{{0, 0}, {-1, 0}, {-2, 0}, {0, -1}},
		{{0, 0}, {-1, -2}, {-1, -1}, {-1, 0}},
	},
	KindS: {
		{{-2, -1}, {-1, -1}, {-1, 0}, {0, 0}},
		{{0, 1}, {0, 0}, {1, 0}, {1, -1}},
		{{0, 0}, {-1, 0}, {-1, -1}, {-2, -1}},
		{{1, -1}, {1, 0}, {0, 0}, {0, 1}},
	},
	KindZ: {
		{{1, 0}, {0, 0}, {0, 1}, {-1, 1}},
		{{-1, -2}, {-1, -1}, {0, -1}, {0, 0}},
		{{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		{{0, 0}, {0, -1}, {-1, -1}, {-1, -2}},
	},
}

// Occupancy returns the board cells the piece covers. Fillers occupy only
// their anchor. Tetromino occupancy is the anchor plus the orientation's
// offset row; any negative resulting coordinate fails with ErrNegativeCell.
func (p Piece) Occupancy() ([]Cell, error) {
	if !p.Kind.Rotatable() {
		return []Cell{p.Anchor}, nil
	}

	shape, ok := shapeOffsets[p.Kind]
	if !ok {
		panic(fmt.Sprintf("piece: unknown kind %q", p.Kind))
	}

	offs := shape[p.Orientation]
	cells := make([]Cell, 0, len(offs))
	for _, off := range offs {
		x := p.Anchor.X + off.dx
		y := p.Anchor.Y + off.dy
		if x < 0 || y < 0 {
			return nil, fmt.Errorf("%w: %s at (%d,%d) %s reaches (%d,%d)",
				ErrNegativeCell, p.Kind, p.Anchor.X, p.Anchor.Y, p.Orientation, x, y)
		}
		cells = append(cells, Cell{X: x, Y: y})
	}
	return cells, nil
}

// AllTetrominoes returns one candidate per rotatable shape at the given
// anchor and orientation, in the fixed order I, O, T, L, J, S, Z.
func AllTetrominoes(anchor Cell, o Orientation) []Piece {
	return []Piece{
		{Kind: KindI, Anchor: anchor, Orientation: o},
		{Kind: KindO, Anchor: anchor, Orientation: o},
		{Kind: KindT, Anchor: anchor, Orientation: o},
		{Kind: KindL, Anchor: anchor, Orientation: o},
		{Kind: KindJ, Anchor: anchor, Orientation: o},
		{Kind: KindS, Anchor: anchor, Orientation: o},
		{Kind: KindZ, Anchor: anchor, Orientation: o},
	}
}

// AllFillers returns the two filler candidates at the given anchor, gray
// before black.
func AllFillers(anchor Cell) []Piece {
	return []Piece{
		{Kind: KindGray, Anchor: anchor},
		{Kind: KindBlack, Anchor: anchor},
	}
}
