package tiles

import "github.com/mhellweg/dockyard/pkg/geom"

// resizeTarget identifies one draggable boundary: the gap before child,
// column, or row number index.
type resizeTarget struct {
	container TileID
	index     int
	row       bool // grid only: boundary between rows rather than columns
}

// resizeState carries an in-progress boundary drag across frames.
type resizeState struct {
	active bool
	target resizeTarget
}

// resizeHitTolerance widens the grabbable strip around a gap beyond the
// gap itself, in points.
const resizeHitTolerance = 2.0

// hitResizeBoundary finds the boundary under the pointer, if any. Only
// visible, laid-out containers are considered.
func (t *Tree) hitResizeBoundary(behavior Behavior, pointer geom.Pos) (resizeTarget, bool) {
	tol := behavior.GapWidth()/2 + resizeHitTolerance
	for id, tile := range t.tiles.All() {
		rect, ok := t.tiles.Rect(id)
		if !ok || !rect.Contains(pointer) {
			continue
		}
		switch c := tile.Container.(type) {
		case *Linear:
			if target, ok := t.hitLinearBoundary(id, c, pointer, tol); ok {
				return target, true
			}
		case *Grid:
			if target, ok := hitGridBoundary(id, c, pointer, tol); ok {
				return target, true
			}
		}
	}
	return resizeTarget{}, false
}

func (t *Tree) hitLinearBoundary(id TileID, l *Linear, pointer geom.Pos, tol float64) (resizeTarget, bool) {
	visible := t.tiles.visibleChildren(l.Children)
	for i := 1; i < len(visible); i++ {
		prev, ok1 := t.tiles.Rect(visible[i-1])
		next, ok2 := t.tiles.Rect(visible[i])
		if !ok1 || !ok2 {
			continue
		}
		var gap float64
		if l.Dir == Horizontal {
			gap = (prev.Max.X + next.Min.X) / 2
			if abs(pointer.X-gap) <= tol {
				return resizeTarget{container: id, index: i}, true
			}
		} else {
			gap = (prev.Max.Y + next.Min.Y) / 2
			if abs(pointer.Y-gap) <= tol {
				return resizeTarget{container: id, index: i}, true
			}
		}
	}
	return resizeTarget{}, false
}

func hitGridBoundary(id TileID, g *Grid, pointer geom.Pos, tol float64) (resizeTarget, bool) {
	for i := 1; i < len(g.colRanges); i++ {
		gap := (g.colRanges[i-1].max + g.colRanges[i].min) / 2
		if abs(pointer.X-gap) <= tol {
			return resizeTarget{container: id, index: i, row: false}, true
		}
	}
	for i := 1; i < len(g.rowRanges); i++ {
		gap := (g.rowRanges[i-1].max + g.rowRanges[i].min) / 2
		if abs(pointer.Y-gap) <= tol {
			return resizeTarget{container: id, index: i, row: true}, true
		}
	}
	return resizeTarget{}, false
}

// dragResizeBoundary moves the targeted boundary toward the pointer by
// redistributing shares, honoring the behavior's minimum tile size.
func (t *Tree) dragResizeBoundary(behavior Behavior, target resizeTarget, pointer geom.Pos) {
	tile, ok := t.tiles.Get(target.container)
	if !ok || !tile.IsContainer() {
		return
	}
	switch c := tile.Container.(type) {
	case *Linear:
		t.dragResizeLinear(behavior, c, target.index, pointer)
	case *Grid:
		dragResizeGrid(behavior, c, target, pointer)
	}
}

func (t *Tree) dragResizeLinear(behavior Behavior, l *Linear, boundary int, pointer geom.Pos) {
	visible := t.tiles.visibleChildren(l.Children)
	if boundary < 1 || boundary >= len(visible) {
		return
	}
	prev, ok1 := t.tiles.Rect(visible[boundary-1])
	next, ok2 := t.tiles.Rect(visible[boundary])
	if !ok1 || !ok2 {
		return
	}

	var current, want, extent float64
	if l.Dir == Horizontal {
		current = (prev.Max.X + next.Min.X) / 2
		want = pointer.X
		for _, child := range visible {
			if r, ok := t.tiles.Rect(child); ok {
				extent += r.Width()
			}
		}
	} else {
		current = (prev.Max.Y + next.Min.Y) / 2
		want = pointer.Y
		for _, child := range visible {
			if r, ok := t.tiles.Rect(child); ok {
				extent += r.Height()
			}
		}
	}
	if extent <= 0 {
		return
	}

	total := 0.0
	for _, child := range visible {
		total += l.Shares.Get(child)
	}
	sharesPerPoint := total / extent
	minShare := behavior.MinSize() * sharesPerPoint

	delta := (want - current) * sharesPerPoint
	get := func(i int) float64 { return l.Shares.Get(visible[i]) }
	set := func(i int, s float64) { l.Shares.set(visible[i], s) }

	if delta > 0 {
		// Boundary moves forward: shrink the tiles after it, grow the
		// one before.
		shrunk := shrinkShares(get, set, forward(boundary, len(visible)), delta, minShare)
		set(boundary-1, get(boundary-1)+shrunk)
	} else if delta < 0 {
		shrunk := shrinkShares(get, set, backward(boundary-1), -delta, minShare)
		set(boundary, get(boundary)+shrunk)
	}
}

func dragResizeGrid(behavior Behavior, g *Grid, target resizeTarget, pointer geom.Pos) {
	ranges := g.colRanges
	shares := g.ColShares
	want := pointer.X
	if target.row {
		ranges = g.rowRanges
		shares = g.RowShares
		want = pointer.Y
	}
	i := target.index
	if i < 1 || i >= len(ranges) || len(shares) != len(ranges) {
		return
	}

	extent := 0.0
	for _, r := range ranges {
		extent += r.length()
	}
	if extent <= 0 {
		return
	}
	total := 0.0
	for _, s := range shares {
		total += s
	}
	sharesPerPoint := total / extent
	minShare := behavior.MinSize() * sharesPerPoint

	current := (ranges[i-1].max + ranges[i].min) / 2
	delta := (want - current) * sharesPerPoint
	get := func(j int) float64 { return shares[j] }
	set := func(j int, s float64) { shares[j] = s }

	if delta > 0 {
		shrunk := shrinkShares(get, set, forward(i, len(shares)), delta, minShare)
		set(i-1, get(i-1)+shrunk)
	} else if delta < 0 {
		shrunk := shrinkShares(get, set, backward(i-1), -delta, minShare)
		set(i, get(i)+shrunk)
	}
}

// evenOutShares resets the targeted container's shares along the dragged
// axis to an even split. Bound to double-clicking a boundary.
func (t *Tree) evenOutShares(target resizeTarget) {
	tile, ok := t.tiles.Get(target.container)
	if !ok || !tile.IsContainer() {
		return
	}
	switch c := tile.Container.(type) {
	case *Linear:
		for _, child := range c.Children {
			c.Shares.set(child, 1)
		}
	case *Grid:
		shares := c.ColShares
		if target.row {
			shares = c.RowShares
		}
		for i := range shares {
			shares[i] = 1
		}
	}
}

// shrinkShares takes up to shrink share units from the slots in the given
// order, never pushing a slot below minShare, and returns how much was
// actually taken. The caller gives the proceeds to the slot on the other
// side of the boundary.
func shrinkShares(get func(int) float64, set func(int, float64), order []int, shrink, minShare float64) float64 {
	remaining := shrink
	taken := 0.0
	for _, i := range order {
		s := get(i)
		give := min(max(s-minShare, 0), remaining)
		if give <= 0 {
			continue
		}
		set(i, s-give)
		remaining -= give
		taken += give
	}
	return taken
}

// forward lists indices from start up to length-1.
func forward(start, length int) []int {
	order := make([]int, 0, length-start)
	for i := start; i < length; i++ {
		order = append(order, i)
	}
	return order
}

// backward lists indices from start down to 0.
func backward(start int) []int {
	order := make([]int, 0, start+1)
	for i := start; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
