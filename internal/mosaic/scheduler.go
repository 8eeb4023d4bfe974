package mosaic

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"tetris-mosaic/internal/piece"
)

// ErrExhausted reports that a filler-eligible pass found no legal placement
// for a cell. A single-cell filler is always legal on an empty cell, so
// this is a contract violation, not a recoverable condition.
var ErrExhausted = errors.New("no legal placement for cell")

// cellHeap pops the cell with the largest (y, x) first. The pop order is a
// deliberate contract of the placement algorithm: filling from the bottom
// row upward, right to left.
type cellHeap []piece.Cell

func (h cellHeap) Len() int { return len(h) }

func (h cellHeap) Less(i, j int) bool {
	// Reverse of the (y, x) ascending order, so the heap surfaces the
	// maximum element.
	return h[j].Before(h[i])
}

func (h cellHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *cellHeap) Push(x any) { *h = append(*h, x.(piece.Cell)) }

func (h *cellHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// seedHeap enqueues every board cell.
func seedHeap(width, height int) *cellHeap {
	h := make(cellHeap, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			h = append(h, piece.Cell{X: x, Y: y})
		}
	}
	heap.Init(&h)
	return &h
}

// runPass drains the heap, committing the best-scoring legal candidate at
// each still-empty cell. Candidate enumeration order is fixed: each skin in
// catalog order, fillers (gray, black) when permitted, then tetrominoes by
// orientation (N, E, S, W) and shape (I, O, T, L, J, S, Z). Ties keep the
// first-encountered candidate.
//
// With fillers disallowed a cell may have no legal candidate; it is left
// empty for a follow-up pass. With fillers allowed an empty-handed cell is
// an ErrExhausted contract violation.
func runPass(h *cellHeap, sb *SkinnedBoard, sc *scorer, allowFillers bool) error {
	for h.Len() > 0 {
		cell := heap.Pop(h).(piece.Cell)

		// A previously committed multi-cell piece may have covered this
		// cell already; there is no rework.
		if !sb.EmptyAt(cell) {
			continue
		}

		var bestPiece piece.Piece
		bestScore := math.MaxFloat64
		bestSkin := invalidSkin

		consider := func(p piece.Piece, skinID int, score float64) {
			if score < bestScore {
				bestPiece = p
				bestScore = score
				bestSkin = skinID
			}
		}

		// Skin ids here are positions in the run's skin set, which is
		// what SkinnedBoard and the renderer index by.
		for skinID, s := range sb.Skins() {
			if allowFillers {
				for _, p := range piece.AllFillers(cell) {
					score, err := sc.pieceDiff(p, s)
					if err != nil {
						return err
					}
					consider(p, skinID, score)
				}
			}

			for _, o := range piece.Orientations() {
				for _, p := range piece.AllTetrominoes(cell, o) {
					if !sb.Board().CanPlace(p) {
						continue
					}
					score, err := sc.pieceDiff(p, s)
					if err != nil {
						return err
					}
					consider(p, skinID, score)
				}
			}
		}

		if bestSkin == invalidSkin {
			if allowFillers {
				return fmt.Errorf("%w: (%d,%d)", ErrExhausted, cell.X, cell.Y)
			}
			// Tetromino-only pass: leave the cell for the filler pass.
			continue
		}

		if err := sb.Place(bestPiece, bestSkin); err != nil {
			return err
		}
	}
	return nil
}

// reseedEmpty enqueues every still-empty cell for a follow-up pass.
func reseedEmpty(h *cellHeap, sb *SkinnedBoard) {
	for y := 0; y < sb.Height(); y++ {
		for x := 0; x < sb.Width(); x++ {
			c := piece.Cell{X: x, Y: y}
			if sb.EmptyAt(c) {
				heap.Push(h, c)
			}
		}
	}
}
