package tiles

import "github.com/mhellweg/dockyard/pkg/geom"

// Layout recomputes the rectangle of every visible tile, top-down from the
// root into the given rectangle.
//
// The pass is pure bookkeeping: it only fills the rectangle cache, which
// hit-testing and painting read later in the same frame. Given an
// unchanged tree and rectangle, two consecutive passes produce
// bit-identical results - the next frame's hit-testing depends on it.
//
// Inactive tab children and invisible tiles receive no rectangle.
func (t *Tree) Layout(behavior Behavior, rect geom.Rect) {
	t.tiles.clearRects()
	if t.root.IsNil() {
		return
	}
	t.tiles.layoutTile(behavior, rect, t.root)
}

func (ts *Tiles) layoutTile(behavior Behavior, rect geom.Rect, id TileID) {
	tile, ok := ts.tiles[id]
	if !ok {
		ts.warnf("layout: missing tile %s", id)
		return
	}
	ts.setRect(id, rect)

	if !tile.IsContainer() || tile.Container.IsEmpty() {
		return
	}

	switch c := tile.Container.(type) {
	case *Linear:
		ts.layoutLinear(behavior, rect, c)
	case *Tabs:
		ts.layoutTabs(behavior, rect, c)
	case *Grid:
		ts.layoutGrid(behavior, rect, c)
	}
}

func (ts *Tiles) layoutLinear(behavior Behavior, rect geom.Rect, l *Linear) {
	// Drop share entries for children that have departed.
	l.Shares.Retain(l.HasChild)

	visible := ts.visibleChildren(l.Children)
	if len(visible) == 0 {
		return
	}

	gap := behavior.GapWidth()
	totalGap := gap * float64(len(visible)-1)

	if l.Dir == Horizontal {
		widths := l.Shares.Split(visible, max(rect.Width()-totalGap, 0))
		x := rect.Min.X
		for i, child := range visible {
			childRect := geom.FromMinSize(geom.P(x, rect.Min.Y), widths[i], rect.Height())
			ts.layoutTile(behavior, childRect, child)
			x += widths[i] + gap
		}
	} else {
		heights := l.Shares.Split(visible, max(rect.Height()-totalGap, 0))
		y := rect.Min.Y
		for i, child := range visible {
			childRect := geom.FromMinSize(geom.P(rect.Min.X, y), rect.Width(), heights[i])
			ts.layoutTile(behavior, childRect, child)
			y += heights[i] + gap
		}
	}
}

func (ts *Tiles) layoutTabs(behavior Behavior, rect geom.Rect, tabs *Tabs) {
	// Re-validate the active pointer: the active child may have been
	// hidden, or a simplification may have invalidated it.
	if !tabs.Active.IsNil() && !ts.IsVisible(tabs.Active) {
		tabs.Active = NilTileID
	}
	if !tabs.HasChild(tabs.Active) {
		tabs.Active = NilTileID
		for _, child := range tabs.Children {
			if ts.IsVisible(child) {
				tabs.Active = child
				break
			}
		}
	}

	// Only the active tab is laid out; the others are invisible this frame.
	if !tabs.Active.IsNil() {
		_, content := rect.SplitTopBottomAtY(rect.Min.Y + behavior.TabBarHeight())
		ts.layoutTile(behavior, content, tabs.Active)
	}
}

func (ts *Tiles) layoutGrid(behavior Behavior, rect geom.Rect, g *Grid) {
	g.trimTrailingHoles()

	gap := behavior.GapWidth()
	slots := g.visibleSlots(ts)

	cols := g.Columns
	if cols <= 0 {
		cols = behavior.GridAutoColumnCount(len(slots), rect, gap)
	}
	cols = max(cols, 1)
	rows := (len(slots) + cols - 1) / cols

	g.ColShares = resizeShares(g.ColShares, cols)
	g.RowShares = resizeShares(g.RowShares, rows)

	colWidths := sizesFromShares(g.ColShares, rect.Width(), gap)
	rowHeights := sizesFromShares(g.RowShares, rect.Height(), gap)

	g.colRanges = g.colRanges[:0]
	x := rect.Min.X
	for _, w := range colWidths {
		g.colRanges = append(g.colRanges, span{min: x, max: x + w})
		x += w + gap
	}
	g.rowRanges = g.rowRanges[:0]
	y := rect.Min.Y
	for _, h := range rowHeights {
		g.rowRanges = append(g.rowRanges, span{min: y, max: y + h})
		y += h + gap
	}

	for i, child := range slots {
		if child.IsNil() {
			continue
		}
		col := i % cols
		row := i / cols
		childRect := geom.Rect{
			Min: geom.P(g.colRanges[col].min, g.rowRanges[row].min),
			Max: geom.P(g.colRanges[col].max, g.rowRanges[row].max),
		}
		ts.layoutTile(behavior, childRect, child)
	}

	// Collapse holes once they outnumber the smaller grid dimension, so
	// the grid can shrink next frame.
	holes := cols*rows - g.NumChildren()
	if min(cols, rows) <= holes {
		g.collapseHoles()
	}
}

// resizeShares grows or shrinks a share slice to n entries, filling new
// entries with the default share of 1.
func resizeShares(shares []float64, n int) []float64 {
	for len(shares) < n {
		shares = append(shares, 1)
	}
	return shares[:n]
}

// sizesFromShares apportions an available length among shared slots,
// accounting for the gap between adjacent slots. A non-positive share sum
// falls back to an equal split.
func sizesFromShares(shares []float64, available, gap float64) []float64 {
	if len(shares) == 0 {
		return nil
	}
	available = max(available-gap*float64(len(shares)-1), 0)

	total := 0.0
	for _, s := range shares {
		total += s
	}

	sizes := make([]float64, len(shares))
	if total <= 0 {
		for i := range sizes {
			sizes[i] = available / float64(len(shares))
		}
		return sizes
	}
	for i, s := range shares {
		sizes[i] = s / total * available
	}
	return sizes
}
