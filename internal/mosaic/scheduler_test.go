package mosaic

import (
	"container/heap"
	"testing"

	"tetris-mosaic/internal/piece"
)

func TestHeapPopOrder(t *testing.T) {
	h := seedHeap(3, 2)

	want := []piece.Cell{
		{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0},
	}
	var got []piece.Cell
	for h.Len() > 0 {
		got = append(got, heap.Pop(h).(piece.Cell))
	}

	if len(got) != len(want) {
		t.Fatalf("popped %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop %d: got %v, want %v (full order %v)", i, got[i], want[i], got)
		}
	}
}

func TestHeapPopOrderSquare(t *testing.T) {
	h := seedHeap(2, 2)
	want := []piece.Cell{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	for i, w := range want {
		if got := heap.Pop(h).(piece.Cell); got != w {
			t.Fatalf("pop %d: got %v, want %v", i, got, w)
		}
	}
}

func TestReseedEmpty(t *testing.T) {
	sb := newTestBoard(t, 3, 2)
	if err := sb.Place(piece.Piece{Kind: piece.KindGray, Anchor: piece.Cell{X: 0, Y: 0}}, 0); err != nil {
		t.Fatal(err)
	}

	h := &cellHeap{}
	heap.Init(h)
	reseedEmpty(h, sb)
	if h.Len() != 5 {
		t.Fatalf("reseeded %d cells, want 5", h.Len())
	}
	for h.Len() > 0 {
		c := heap.Pop(h).(piece.Cell)
		if c == (piece.Cell{X: 0, Y: 0}) {
			t.Error("occupied cell re-enqueued")
		}
	}
}
