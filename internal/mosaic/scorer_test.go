package mosaic

import (
	"math"
	"testing"

	"tetris-mosaic/internal/piece"
	"tetris-mosaic/internal/skin"
	"tetris-mosaic/pkg/colorutil"
)

// contextFixture builds a single-row board over a target the same color as
// the gray filler block, so the basic term of a gray candidate is 0 and any
// score movement comes from the context term alone.
func contextFixture(t *testing.T, boardWidth int) (*SkinnedBoard, *scorer) {
	t.Helper()
	const k = 2
	skins := []*skin.Skin{skin.Solid(0, k, k)}
	sb := NewSkinnedBoard(boardWidth, 1, skins)
	gray := skins[0].BlockForTag(byte(piece.KindGray)).Average()
	sc, err := newScorer(uniformImage(gray, boardWidth*k, k), sb, true)
	if err != nil {
		t.Fatal(err)
	}
	return sb, sc
}

func TestContextTermAddsWeightedDistance(t *testing.T) {
	sb, sc := contextFixture(t, 12)
	cand := piece.Piece{Kind: piece.KindBlack, Anchor: piece.Cell{X: 0, Y: 0}}

	before, err := sc.pieceDiff(cand, sb.Skins()[0])
	if err != nil {
		t.Fatal(err)
	}

	neighbor := piece.Piece{Kind: piece.KindGray, Anchor: piece.Cell{X: 1, Y: 0}}
	if err := sb.Place(neighbor, 0); err != nil {
		t.Fatal(err)
	}
	after, err := sc.pieceDiff(cand, sb.Skins()[0])
	if err != nil {
		t.Fatal(err)
	}

	// One context cell: the board-side step is black minus gray, the
	// target-side step is zero on a uniform target, so the averaged
	// context term is exactly the weighted distance between the two.
	black := sb.Skins()[0].BlockForTag(byte(piece.KindBlack)).Average()
	gray := sb.Skins()[0].BlockForTag(byte(piece.KindGray)).Average()
	want := colorutil.WeightedDistance(colorutil.Delta(black, gray), [3]int{})
	if got := after - before; math.Abs(got-want) > 1e-9 {
		t.Errorf("context term = %v, want %v", got, want)
	}
}

func TestContextSkipsCandidateOccupancy(t *testing.T) {
	sb, sc := contextFixture(t, 12)
	occupied := piece.Piece{Kind: piece.KindGray, Anchor: piece.Cell{X: 1, Y: 0}}
	if err := sb.Place(occupied, 0); err != nil {
		t.Fatal(err)
	}

	// Re-scoring a gray candidate over the occupied cell itself: the only
	// occupied window cell is the candidate's own occupancy, so no context
	// comparison survives and the gray-on-gray basic term is exactly 0.
	score, err := sc.pieceDiff(occupied, sb.Skins()[0])
	if err != nil {
		t.Fatal(err)
	}
	if score != 0 {
		t.Errorf("score = %v, want 0 with own occupancy excluded from context", score)
	}
}

func TestContextWindowIsForwardAndBounded(t *testing.T) {
	tests := []struct {
		name     string
		neighbor piece.Cell
		cand     piece.Cell
	}{
		{"dx past the window", piece.Cell{X: 8, Y: 0}, piece.Cell{X: 0, Y: 0}},
		{"negative dx behind the candidate", piece.Cell{X: 0, Y: 0}, piece.Cell{X: 1, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb, sc := contextFixture(t, 12)
			if err := sb.Place(piece.Piece{Kind: piece.KindGray, Anchor: tt.neighbor}, 0); err != nil {
				t.Fatal(err)
			}

			cand := piece.Piece{Kind: piece.KindBlack, Anchor: tt.cand}
			score, err := sc.pieceDiff(cand, sb.Skins()[0])
			if err != nil {
				t.Fatal(err)
			}

			// No context cell in range: the score is the basic term alone,
			// black against the uniform gray target.
			black := sb.Skins()[0].BlockForTag(byte(piece.KindBlack)).Average()
			gray := sb.Skins()[0].BlockForTag(byte(piece.KindGray)).Average()
			want := colorutil.WeightedSquares(colorutil.Delta(gray, black))
			if math.Abs(score-want) > 1e-9 {
				t.Errorf("score = %v, want basic term %v with no context in range", score, want)
			}
		})
	}
}
