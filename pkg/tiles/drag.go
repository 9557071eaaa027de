package tiles

import (
	"math"
	"slices"

	"github.com/mhellweg/dockyard/pkg/geom"
)

// InsertionPoint addresses a slot in the tree: a position inside an
// existing container, or a split of an existing tile. When Kind differs
// from the parent's actual container kind, [Tree.MoveTile] converts: the
// parent's current content moves into a fresh container of the requested
// kind and the inserted tile joins it at Index.
type InsertionPoint struct {
	Parent TileID
	Kind   ContainerKind
	Index  int
}

// DragPhase is the state of the pointer-drag state machine that moves
// tiles between frames.
type DragPhase int

const (
	// DragIdle means no tile is being interacted with.
	DragIdle DragPhase = iota
	// DragArmed means the pointer went down on a draggable tile but has
	// not yet traveled past the drag threshold. Releasing now is a click.
	DragArmed
	// DragActive means the tile is being dragged and drop targets are
	// being suggested.
	DragActive
	// DragDropped is reported for the single frame in which an active
	// drag was released over a target.
	DragDropped
	// DragCancelled is reported for the single frame in which an active
	// drag was abandoned without a drop.
	DragCancelled
)

func (p DragPhase) String() string {
	switch p {
	case DragIdle:
		return "idle"
	case DragArmed:
		return "armed"
	case DragActive:
		return "active"
	case DragDropped:
		return "dropped"
	case DragCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Input is one frame's worth of pointer state, in the same coordinate
// space as the rectangle passed to [Tree.Frame].
type Input struct {
	// Pointer is the current pointer position.
	Pointer geom.Pos
	// PrimaryDown reports whether the primary button is held this frame.
	PrimaryDown bool
	// DoubleClicked reports a primary double-click this frame.
	DoubleClicked bool
	// Cancel aborts any in-progress drag or resize, e.g. on Escape or
	// when the pointer leaves the window.
	Cancel bool
}

// dragState carries the drag machine across frames.
type dragState struct {
	phase    DragPhase
	tile     TileID
	pressPos geom.Pos
	wasDown  bool
}

// dropContext accumulates candidate insertion points during an active drag
// and keeps the one whose preview rectangle's center is closest to the
// pointer.
type dropContext struct {
	dragged    TileID
	pointer    geom.Pos
	bestDistSq float64
	best       *InsertionPoint
	preview    geom.Rect
}

func newDropContext(dragged TileID, pointer geom.Pos) *dropContext {
	return &dropContext{
		dragged:    dragged,
		pointer:    pointer,
		bestDistSq: math.Inf(1),
	}
}

// suggest offers a candidate. The preview rectangle is what a host would
// highlight; its center decides which candidate wins.
func (dc *dropContext) suggest(at InsertionPoint, preview geom.Rect) {
	d := dc.pointer.DistanceSq(preview.Center())
	if d < dc.bestDistSq {
		dc.bestDistSq = d
		at := at
		dc.best = &at
		dc.preview = preview
	}
}

// suggestDropTargets walks the laid-out tree and offers every legal
// insertion point for the dragged tile. The dragged subtree itself is
// skipped so a tile cannot be dropped into its own descendants.
func (t *Tree) suggestDropTargets(behavior Behavior, dc *dropContext) {
	t.suggestIn(behavior, dc, t.root)
}

func (t *Tree) suggestIn(behavior Behavior, dc *dropContext, id TileID) {
	if id == dc.dragged {
		return
	}
	tile, ok := t.tiles.Get(id)
	if !ok {
		return
	}
	rect, ok := t.tiles.Rect(id)
	if !ok {
		return
	}

	switch c := tile.Container; {
	case c == nil:
		t.suggestTileSplits(dc, id, rect)
	case c.Kind() == KindTabs:
		t.suggestTabBar(behavior, dc, id, c.(*Tabs), rect)
		if active := c.(*Tabs).Active; !active.IsNil() {
			t.suggestIn(behavior, dc, active)
		}
	case c.Kind() == KindHorizontal || c.Kind() == KindVertical:
		t.suggestLinearGaps(dc, id, c.(*Linear))
		for _, child := range c.ChildIDs() {
			t.suggestIn(behavior, dc, child)
		}
	default:
		t.suggestGridSlots(dc, id, c.(*Grid))
		for _, child := range c.ChildIDs() {
			t.suggestIn(behavior, dc, child)
		}
	}
}

// suggestTileSplits offers the five classic docking zones over a single
// tile: the four edge halves split it, the center stacks into tabs.
func (t *Tree) suggestTileSplits(dc *dropContext, id TileID, rect geom.Rect) {
	left, right := rect.SplitLeftRightAtFraction(0.5)
	top, bottom := rect.SplitTopBottomAtFraction(0.5)

	dc.suggest(InsertionPoint{Parent: id, Kind: KindHorizontal, Index: 0}, left)
	dc.suggest(InsertionPoint{Parent: id, Kind: KindHorizontal, Index: 1}, right)
	dc.suggest(InsertionPoint{Parent: id, Kind: KindVertical, Index: 0}, top)
	dc.suggest(InsertionPoint{Parent: id, Kind: KindVertical, Index: 1}, bottom)
	dc.suggest(InsertionPoint{Parent: id, Kind: KindTabs, Index: math.MaxInt / 2},
		rect.Shrink(rect.Width()/4))
}

// suggestLinearGaps offers the slots between, before, and after a split's
// children, previewed as the half of the adjacent child nearest the slot.
func (t *Tree) suggestLinearGaps(dc *dropContext, id TileID, l *Linear) {
	visible := t.tiles.visibleChildren(l.Children)
	for i, child := range visible {
		rect, ok := t.tiles.Rect(child)
		if !ok {
			continue
		}
		index := slices.Index(l.Children, child)
		var before, after geom.Rect
		if l.Dir == Horizontal {
			before, after = rect.SplitLeftRightAtFraction(0.5)
		} else {
			before, after = rect.SplitTopBottomAtFraction(0.5)
		}
		dc.suggest(InsertionPoint{Parent: id, Kind: l.Dir.kind(), Index: index}, before)
		if i == len(visible)-1 {
			dc.suggest(InsertionPoint{Parent: id, Kind: l.Dir.kind(), Index: index + 1}, after)
		}
	}
}

// suggestTabBar offers a slot before each tab button and one after the
// last, previewed as slivers of the tab bar.
func (t *Tree) suggestTabBar(behavior Behavior, dc *dropContext, id TileID, tabs *Tabs, rect geom.Rect) {
	bar, _ := rect.SplitTopBottomAtY(rect.Min.Y + behavior.TabBarHeight())
	n := len(tabs.Children)
	if n == 0 {
		dc.suggest(InsertionPoint{Parent: id, Kind: KindTabs, Index: 0}, bar)
		return
	}
	x := bar.Min.X
	for i, child := range tabs.Children {
		w := behavior.TabButtonWidth(t.tabTitle(behavior, child))
		slot := geom.FromMinSize(geom.P(x, bar.Min.Y), w/2, bar.Height())
		dc.suggest(InsertionPoint{Parent: id, Kind: KindTabs, Index: i}, slot)
		x += w
		if i == n-1 {
			end := geom.FromMinSize(geom.P(x-w/2, bar.Min.Y), w/2, bar.Height())
			dc.suggest(InsertionPoint{Parent: id, Kind: KindTabs, Index: n}, end)
		}
	}
}

// suggestGridSlots offers every hole in the grid plus the slot past the
// last occupant.
func (t *Tree) suggestGridSlots(dc *dropContext, id TileID, g *Grid) {
	cols := len(g.colRanges)
	rows := len(g.rowRanges)
	if cols == 0 || rows == 0 {
		return
	}
	slots := g.Slots()
	for i := 0; i < cols*rows; i++ {
		if i < len(slots) && !slots[i].IsNil() {
			continue
		}
		col := i % cols
		row := i / cols
		slot := geom.Rect{
			Min: geom.P(g.colRanges[col].min, g.rowRanges[row].min),
			Max: geom.P(g.colRanges[col].max, g.rowRanges[row].max),
		}
		dc.suggest(InsertionPoint{Parent: id, Kind: KindGrid, Index: i}, slot)
	}
}

// tabTitle resolves the title a tab button would show for the tile,
// including container children.
func (t *Tree) tabTitle(behavior Behavior, id TileID) string {
	tile, ok := t.tiles.Get(id)
	if !ok {
		return ""
	}
	if tile.IsPane() {
		return behavior.TabTitle(tile.Pane)
	}
	return tile.Container.Kind().String()
}

// insertAt places the already-detached tile at the insertion point. If the
// destination is a container of the requested kind the tile joins its
// children; otherwise the destination's content is moved aside into a
// fresh container of the requested kind holding both.
func (t *Tree) insertAt(id TileID, at InsertionPoint) {
	dest, ok := t.tiles.Get(at.Parent)
	if !ok {
		t.tiles.warnf("insert: missing destination %s", at.Parent)
		if t.root.IsNil() {
			t.root = id
		}
		return
	}

	if dest.IsContainer() && dest.Container.Kind() == at.Kind {
		dest.Container.InsertChildAt(at.Index, id)
		return
	}

	// Move the destination's content to a new ID and turn the
	// destination into the requested container. Reusing the
	// destination's ID keeps its parent's reference valid.
	moved := t.tiles.Insert(&Tile{Pane: dest.Pane, Container: dest.Container})
	wrapper := NewContainer(at.Kind, []TileID{moved})
	wrapper.InsertChildAt(at.Index, id)
	*dest = Tile{Container: wrapper}
}
