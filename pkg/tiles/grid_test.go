package tiles

import "testing"

func TestGrid_RemoveLeavesHole(t *testing.T) {
	a, b, c := NewTileID(), NewTileID(), NewTileID()
	g := NewGrid([]TileID{a, b, c})

	g.RemoveChild(b)

	slots := g.Slots()
	if len(slots) != 3 {
		t.Fatalf("len(Slots()) = %d, want 3", len(slots))
	}
	if !slots[1].IsNil() {
		t.Errorf("Slots()[1] = %v, want hole", slots[1])
	}
	if slots[2] != c {
		t.Errorf("Slots()[2] = %v, want %v (cell must not shift)", slots[2], c)
	}
	if g.NumChildren() != 2 {
		t.Errorf("NumChildren() = %d, want 2", g.NumChildren())
	}
}

func TestGrid_InsertFillsHole(t *testing.T) {
	a, b, c, d := NewTileID(), NewTileID(), NewTileID(), NewTileID()
	g := NewGrid([]TileID{a, b, c})
	g.RemoveChild(b)

	g.InsertChildAt(1, d)

	slots := g.Slots()
	if len(slots) != 3 {
		t.Fatalf("len(Slots()) = %d, want 3 (hole reused, no reflow)", len(slots))
	}
	if slots[1] != d {
		t.Errorf("Slots()[1] = %v, want %v", slots[1], d)
	}
}

func TestGrid_InsertOccupiedSlotReflows(t *testing.T) {
	a, b, c := NewTileID(), NewTileID(), NewTileID()
	g := NewGrid([]TileID{a, b})

	g.InsertChildAt(1, c)

	want := []TileID{a, c, b}
	slots := g.Slots()
	for i, id := range want {
		if slots[i] != id {
			t.Errorf("Slots()[%d] = %v, want %v", i, slots[i], id)
		}
	}
}

func TestGrid_TrimTrailingHoles(t *testing.T) {
	a, b := NewTileID(), NewTileID()
	g := NewGrid([]TileID{a, b})
	g.RemoveChild(b)

	g.trimTrailingHoles()

	if got := len(g.Slots()); got != 1 {
		t.Errorf("len(Slots()) = %d, want 1", got)
	}
}

func TestGrid_CollapseHoles(t *testing.T) {
	a, b, c := NewTileID(), NewTileID(), NewTileID()
	g := NewGrid([]TileID{a, b, c})
	g.RemoveChild(a)
	g.RemoveChild(b)

	g.collapseHoles()

	slots := g.Slots()
	if len(slots) != 1 || slots[0] != c {
		t.Errorf("Slots() = %v, want [%v]", slots, c)
	}
}

func TestColumnCountHeuristic(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		width, height float64
		want          int
	}{
		{"wide area", 4, 400, 100, 4},
		{"tall area", 4, 100, 400, 1},
		{"square area", 4, 200, 200, 2},
		{"single child", 1, 300, 300, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnCountHeuristic(tt.n, tt.width, tt.height, 0, 4.0/3.0)
			if got != tt.want {
				t.Errorf("ColumnCountHeuristic(%d, %vx%v) = %d, want %d",
					tt.n, tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestColumnCountHeuristic_SkipsOrphanColumn(t *testing.T) {
	// With four or more children, n-1 columns always strands a single
	// child on the last row and is never chosen.
	for _, n := range []int{4, 5, 6, 9} {
		for _, width := range []float64{100, 300, 800, 2000} {
			if got := ColumnCountHeuristic(n, width, 300, 0, 4.0/3.0); got == n-1 {
				t.Errorf("ColumnCountHeuristic(%d, %vx300) = %d, must never pick n-1", n, width, got)
			}
		}
	}
}
