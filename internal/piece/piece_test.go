package piece

import (
	"errors"
	"testing"
)

func TestOccupancyCounts(t *testing.T) {
	anchor := Cell{X: 4, Y: 4}
	for _, o := range Orientations() {
		for _, p := range AllTetrominoes(anchor, o) {
			cells, err := p.Occupancy()
			if err != nil {
				t.Fatalf("%s %s: unexpected error: %v", p.Kind, o, err)
			}
			if len(cells) != 4 {
				t.Errorf("%s %s: got %d cells, want 4", p.Kind, o, len(cells))
			}
		}
	}
	for _, p := range AllFillers(anchor) {
		cells, err := p.Occupancy()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", p.Kind, err)
		}
		if len(cells) != 1 || cells[0] != anchor {
			t.Errorf("%s: got %v, want [%v]", p.Kind, cells, anchor)
		}
	}
}

func TestOccupancyDistinctCells(t *testing.T) {
	anchor := Cell{X: 5, Y: 5}
	for _, o := range Orientations() {
		for _, p := range AllTetrominoes(anchor, o) {
			cells, err := p.Occupancy()
			if err != nil {
				t.Fatalf("%s %s: %v", p.Kind, o, err)
			}
			seen := map[Cell]bool{}
			for _, c := range cells {
				if seen[c] {
					t.Errorf("%s %s: duplicate cell %v", p.Kind, o, c)
				}
				seen[c] = true
			}
		}
	}
}

func TestOccupancyNegative(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
	}{
		{"I East underflows y", Piece{Kind: KindI, Anchor: Cell{X: 0, Y: 0}, Orientation: East}},
		{"I South underflows x", Piece{Kind: KindI, Anchor: Cell{X: 0, Y: 0}, Orientation: South}},
		{"O North underflows both", Piece{Kind: KindO, Anchor: Cell{X: 0, Y: 0}, Orientation: North}},
		{"T North underflows x", Piece{Kind: KindT, Anchor: Cell{X: 0, Y: 1}, Orientation: North}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.piece.Occupancy(); !errors.Is(err, ErrNegativeCell) {
				t.Errorf("got %v, want ErrNegativeCell", err)
			}
		})
	}
}

func TestCandidateOrder(t *testing.T) {
	want := []Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}
	got := AllTetrominoes(Cell{X: 2, Y: 2}, North)
	for i, p := range got {
		if p.Kind != want[i] {
			t.Fatalf("tetromino %d: got %s, want %s", i, p.Kind, want[i])
		}
	}

	fillers := AllFillers(Cell{X: 2, Y: 2})
	if fillers[0].Kind != KindGray || fillers[1].Kind != KindBlack {
		t.Fatalf("filler order: got %s,%s want G,B", fillers[0].Kind, fillers[1].Kind)
	}

	orients := Orientations()
	wantO := []Orientation{North, East, South, West}
	for i, o := range orients {
		if o != wantO[i] {
			t.Fatalf("orientation %d: got %s, want %s", i, o, wantO[i])
		}
	}
}

func TestCellBefore(t *testing.T) {
	tests := []struct {
		a, b Cell
		want bool
	}{
		{Cell{0, 0}, Cell{1, 0}, true},
		{Cell{1, 0}, Cell{0, 0}, false},
		{Cell{5, 0}, Cell{0, 1}, true},
		{Cell{0, 1}, Cell{5, 0}, false},
		{Cell{3, 3}, Cell{3, 3}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Before(tt.b); got != tt.want {
			t.Errorf("%v.Before(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
