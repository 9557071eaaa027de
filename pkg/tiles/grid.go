package tiles

import "slices"

// span is a 1D interval, used for the transient column/row extents a grid
// computes during layout.
type span struct {
	min, max float64
}

func (s span) length() float64          { return s.max - s.min }
func (s span) contains(v float64) bool  { return s.min <= v && v < s.max }
func (s span) center() float64          { return (s.min + s.max) / 2 }

// Grid lays its children out in row-major cells.
//
// The children slice may contain holes (nil IDs), which makes drag-dropping
// into a specific cell cheap: the dragged tile just fills the hole. Holes
// are collapsed once they outnumber the smaller grid dimension, so the grid
// can shrink again.
type Grid struct {
	// children in row-major order. A nil ID is a hole.
	children []TileID

	// Columns fixes the column count. Zero means auto: the count is chosen
	// per frame by the column heuristic (see [Behavior.GridAutoColumnCount]).
	Columns int

	// ColShares and RowShares proportion the cell widths and heights, like
	// [Shares] for linear containers. They are resized to match the current
	// grid dimensions during layout.
	ColShares []float64
	RowShares []float64

	// Cell extents recomputed during layout; used for hit-testing resize
	// handles and drop zones in the same frame.
	colRanges []span
	rowRanges []span
}

// NewGrid creates a grid with an automatic column count.
func NewGrid(children []TileID) *Grid {
	return &Grid{children: slices.Clone(children)}
}

// Kind implements [Container].
func (g *Grid) Kind() ContainerKind { return KindGrid }

// ChildIDs implements [Container]. Holes are skipped.
func (g *Grid) ChildIDs() []TileID {
	ids := make([]TileID, 0, len(g.children))
	for _, id := range g.children {
		if !id.IsNil() {
			ids = append(ids, id)
		}
	}
	return ids
}

// Slots returns the raw row-major slots including holes (nil IDs).
// The returned slice is a copy.
func (g *Grid) Slots() []TileID { return slices.Clone(g.children) }

// NumChildren implements [Container]. Holes do not count.
func (g *Grid) NumChildren() int {
	n := 0
	for _, id := range g.children {
		if !id.IsNil() {
			n++
		}
	}
	return n
}

// IsEmpty implements [Container].
func (g *Grid) IsEmpty() bool { return g.NumChildren() == 0 }

// OnlyChild implements [Container].
func (g *Grid) OnlyChild() (TileID, bool) {
	only := NilTileID
	for _, id := range g.children {
		if id.IsNil() {
			continue
		}
		if !only.IsNil() {
			return NilTileID, false
		}
		only = id
	}
	return only, !only.IsNil()
}

// HasChild implements [Container].
func (g *Grid) HasChild(id TileID) bool {
	return !id.IsNil() && slices.Contains(g.children, id)
}

// AddChild implements [Container].
func (g *Grid) AddChild(id TileID) { g.children = append(g.children, id) }

// InsertChildAt implements [Container]. If the slot at index is a hole the
// child fills it; otherwise the grid reflows, shifting later slots so the
// child lands logically at the requested row-major index. An out-of-range
// index appends.
func (g *Grid) InsertChildAt(index int, id TileID) {
	if index >= 0 && index < len(g.children) {
		if g.children[index].IsNil() {
			g.children[index] = id
			return
		}
		g.children = slices.Insert(g.children, index, id)
		return
	}
	g.children = append(g.children, id)
}

// RemoveChild implements [Container]. The slot is left as a hole so the
// remaining children keep their cells; layout collapses excess holes later.
func (g *Grid) RemoveChild(id TileID) (int, bool) {
	index := slices.Index(g.children, id)
	if index < 0 || id.IsNil() {
		return 0, false
	}
	g.children[index] = NilTileID
	return index, true
}

// Retain implements [Container].
func (g *Grid) Retain(keep func(TileID) bool) {
	for i, id := range g.children {
		if !id.IsNil() && !keep(id) {
			g.children[i] = NilTileID
		}
	}
}

func (g *Grid) simplifyChildren(fn func(TileID) simplifyAction) {
	for i, child := range g.children {
		if child.IsNil() {
			continue
		}
		switch action := fn(child); {
		case action.remove:
			g.children[i] = NilTileID
		case !action.replace.IsNil():
			g.children[i] = action.replace
		}
	}
}

// collapseHoles removes all holes, compacting the row-major order.
func (g *Grid) collapseHoles() {
	g.children = slices.DeleteFunc(g.children, func(id TileID) bool { return id.IsNil() })
}

// trimTrailingHoles drops empty slots at the end of the grid.
func (g *Grid) trimTrailingHoles() {
	for len(g.children) > 0 && g.children[len(g.children)-1].IsNil() {
		g.children = g.children[:len(g.children)-1]
	}
}

// visibleSlots returns the row-major slots, keeping holes but dropping
// invisible children.
func (g *Grid) visibleSlots(ts *Tiles) []TileID {
	slots := make([]TileID, 0, len(g.children))
	for _, id := range g.children {
		if id.IsNil() || ts.IsVisible(id) {
			slots = append(slots, id)
		}
	}
	return slots
}
