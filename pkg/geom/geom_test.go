package geom

import "testing"

func TestRectDimensions(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	if got := r.Width(); got != 100 {
		t.Errorf("Width() = %v, want 100", got)
	}
	if got := r.Height(); got != 50 {
		t.Errorf("Height() = %v, want 50", got)
	}
	if got := r.Center(); got != P(60, 45) {
		t.Errorf("Center() = %v, want {60 45}", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		p    Pos
		want bool
	}{
		{"center", P(5, 5), true},
		{"min corner inclusive", P(0, 0), true},
		{"max corner exclusive", P(10, 10), false},
		{"right edge exclusive", P(10, 5), false},
		{"outside left", P(-1, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectSplits(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	left, right := r.SplitLeftRightAtFraction(0.5)
	if left != NewRect(0, 0, 50, 50) {
		t.Errorf("left half = %v", left)
	}
	if right != NewRect(50, 0, 50, 50) {
		t.Errorf("right half = %v", right)
	}

	top, bottom := r.SplitTopBottomAtY(20)
	if top.Height() != 20 || bottom.Height() != 30 {
		t.Errorf("SplitTopBottomAtY(20): top height %v, bottom height %v", top.Height(), bottom.Height())
	}
}

func TestRectShrinkExpand(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if got := r.Shrink(2); got != NewRect(2, 2, 6, 6) {
		t.Errorf("Shrink(2) = %v", got)
	}
	if got := r.Shrink(2).Expand(2); got != r {
		t.Errorf("Shrink then Expand = %v, want %v", got, r)
	}
}

func TestPosDistanceSq(t *testing.T) {
	if got := P(0, 0).DistanceSq(P(3, 4)); got != 25 {
		t.Errorf("DistanceSq = %v, want 25", got)
	}
	if got := P(0, 0).Distance(P(3, 4)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if !a.Intersects(NewRect(5, 5, 10, 10)) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(NewRect(10, 0, 5, 5)) {
		t.Error("edge-touching rects should not intersect")
	}
}

func TestRectIsEmpty(t *testing.T) {
	if NewRect(0, 0, 10, 10).IsEmpty() {
		t.Error("positive-area rect reported empty")
	}
	if !NewRect(0, 0, 0, 10).IsEmpty() {
		t.Error("zero-width rect not reported empty")
	}
}
