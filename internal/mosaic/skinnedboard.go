// Package mosaic implements the placement engine: it fills a board with
// tetromino and filler pieces so that, rendered through the loaded skins,
// the board approximates a target image.
package mosaic

import (
	"fmt"

	"tetris-mosaic/internal/board"
	"tetris-mosaic/internal/piece"
	"tetris-mosaic/internal/skin"
)

// invalidSkin marks a cell with no placement yet.
const invalidSkin = -1

// SkinnedBoard couples a Board with the skin id chosen for every cell and
// the read-only skin set placements draw from.
type SkinnedBoard struct {
	board    *board.Board
	cellSkin []int
	skins    []*skin.Skin
}

// NewSkinnedBoard returns an empty skinned board over the given skin set.
func NewSkinnedBoard(width, height int, skins []*skin.Skin) *SkinnedBoard {
	cellSkin := make([]int, width*height)
	for i := range cellSkin {
		cellSkin[i] = invalidSkin
	}
	return &SkinnedBoard{
		board:    board.New(width, height),
		cellSkin: cellSkin,
		skins:    skins,
	}
}

// Board exposes the underlying occupancy grid.
func (sb *SkinnedBoard) Board() *board.Board { return sb.board }

// Skins returns the skin set in catalog order.
func (sb *SkinnedBoard) Skins() []*skin.Skin { return sb.skins }

// Width returns the board width in cells.
func (sb *SkinnedBoard) Width() int { return sb.board.Width() }

// Height returns the board height in cells.
func (sb *SkinnedBoard) Height() int { return sb.board.Height() }

// BlockWidth returns the pixel width of one board cell.
func (sb *SkinnedBoard) BlockWidth() int { return sb.skins[0].Width() }

// BlockHeight returns the pixel height of one board cell.
func (sb *SkinnedBoard) BlockHeight() int { return sb.skins[0].Height() }

// EmptyAt reports whether the cell is in bounds and unoccupied.
func (sb *SkinnedBoard) EmptyAt(c piece.Cell) bool { return sb.board.EmptyAt(c) }

// SkinAt returns the skin id stored for a cell, or invalidSkin if the cell
// is unoccupied or out of bounds.
func (sb *SkinnedBoard) SkinAt(c piece.Cell) int {
	if c.X < 0 || c.X >= sb.Width() || c.Y < 0 || c.Y >= sb.Height() {
		return invalidSkin
	}
	return sb.cellSkin[c.Y*sb.Width()+c.X]
}

// Place commits a piece with the skin it was scored against. The board
// write and the skin id writes succeed or fail together.
func (sb *SkinnedBoard) Place(p piece.Piece, skinID int) error {
	if skinID < 0 || skinID >= len(sb.skins) {
		return fmt.Errorf("skin id %d out of range [0,%d)", skinID, len(sb.skins))
	}
	if err := sb.board.Place(p); err != nil {
		return err
	}
	cells, err := p.Occupancy()
	if err != nil {
		return err
	}
	for _, c := range cells {
		sb.cellSkin[c.Y*sb.Width()+c.X] = skinID
	}
	return nil
}
