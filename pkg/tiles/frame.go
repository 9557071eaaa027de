package tiles

import "github.com/mhellweg/dockyard/pkg/geom"

// FrameResponse reports what one [Tree.Frame] pass did with the input, so
// the host can draw drop previews and choose cursors.
type FrameResponse struct {
	// Phase is the drag machine's state after this frame. DragDropped
	// and DragCancelled appear for exactly one frame.
	Phase DragPhase
	// Dragged is the tile being dragged, or nil outside a drag.
	Dragged TileID
	// Insertion is where the dragged tile would land if released now.
	Insertion *InsertionPoint
	// Preview is the rectangle to highlight for Insertion.
	Preview geom.Rect
	// ResizeHover reports that the pointer is over a draggable boundary,
	// so the host can switch to a resize cursor.
	ResizeHover bool
}

// Frame runs one full pass: canonicalize the tree, collect garbage, lay
// tiles out into rect, process the frame's pointer input, and invoke the
// behavior's paint callbacks for every visible tile. A frame that completes
// a drop canonicalizes and lays out a second time so painting sees the
// moved tile's new rectangles.
//
// Hosts call this once per rendered frame from their UI loop.
func (t *Tree) Frame(behavior Behavior, rect geom.Rect, input Input) FrameResponse {
	t.Simplify(behavior.SimplificationOptions())
	t.GC(behavior)
	t.Layout(behavior, rect)

	resp := t.interact(behavior, input)
	if resp.Phase == DragDropped {
		// The drop restructured the tree; the rect cache must be rebuilt
		// before anything paints from it.
		t.Simplify(behavior.SimplificationOptions())
		t.GC(behavior)
		t.Layout(behavior, rect)
	}
	t.paint(behavior, input, &resp)
	t.drag.wasDown = input.PrimaryDown
	return resp
}

func (t *Tree) interact(behavior Behavior, input Input) FrameResponse {
	if input.Cancel {
		resp := FrameResponse{Phase: DragIdle}
		if t.drag.phase == DragActive {
			resp.Phase = DragCancelled
		}
		t.drag = dragState{wasDown: t.drag.wasDown}
		t.resize = resizeState{}
		return resp
	}

	pressed := input.PrimaryDown && !t.drag.wasDown

	// Boundary resizing wins over dragging: while a boundary is grabbed
	// or hovered, tiles cannot be picked up.
	if t.resize.active {
		if !input.PrimaryDown {
			t.resize = resizeState{}
			behavior.OnEdit(TileResized)
		} else {
			t.dragResizeBoundary(behavior, t.resize.target, input.Pointer)
		}
		return FrameResponse{Phase: DragIdle, ResizeHover: true}
	}
	if t.drag.phase == DragIdle {
		if target, ok := t.hitResizeBoundary(behavior, input.Pointer); ok {
			if input.DoubleClicked {
				t.evenOutShares(target)
				behavior.OnEdit(TileResized)
			} else if pressed {
				t.resize = resizeState{active: true, target: target}
			}
			return FrameResponse{Phase: DragIdle, ResizeHover: true}
		}
	}

	switch t.drag.phase {
	case DragIdle:
		if pressed {
			if tab, _, ok := t.hitTabButton(behavior, input.Pointer); ok {
				t.drag = dragState{phase: DragArmed, tile: tab, pressPos: input.Pointer, wasDown: t.drag.wasDown}
			}
		}

	case DragArmed:
		if !input.PrimaryDown {
			// A click, not a drag: activate the pressed tab.
			t.activateTab(behavior, t.drag.tile)
			t.drag = dragState{wasDown: t.drag.wasDown}
			return FrameResponse{Phase: DragIdle}
		}
		if input.Pointer.Distance(t.drag.pressPos) >= behavior.DragThreshold() {
			t.drag.phase = DragActive
			behavior.OnEdit(TileDragged)
		}

	case DragActive:
		dc := newDropContext(t.drag.tile, input.Pointer)
		t.suggestDropTargets(behavior, dc)
		if input.PrimaryDown {
			return FrameResponse{
				Phase:     DragActive,
				Dragged:   t.drag.tile,
				Insertion: dc.best,
				Preview:   dc.preview,
			}
		}
		dragged := t.drag.tile
		t.drag = dragState{wasDown: t.drag.wasDown}
		if dc.best == nil {
			return FrameResponse{Phase: DragCancelled, Dragged: dragged}
		}
		if err := t.MoveTile(dragged, *dc.best); err != nil {
			t.tiles.warnf("drop: %v", err)
			return FrameResponse{Phase: DragCancelled, Dragged: dragged}
		}
		behavior.OnEdit(TileDropped)
		return FrameResponse{Phase: DragDropped, Dragged: dragged, Insertion: dc.best, Preview: dc.preview}

	case DragDropped, DragCancelled:
		// One-frame states, already reset.
	}

	if t.drag.phase == DragArmed || t.drag.phase == DragActive {
		return FrameResponse{Phase: t.drag.phase, Dragged: t.drag.tile}
	}
	return FrameResponse{Phase: DragIdle}
}

// paint walks the laid-out tree and hands every visible pane and tab bar
// to the behavior. A pane reporting DragStarted arms the drag machine, the
// same as pressing on its tab button.
func (t *Tree) paint(behavior Behavior, input Input, resp *FrameResponse) {
	t.paintTile(behavior, input, resp, t.root)
}

func (t *Tree) paintTile(behavior Behavior, input Input, resp *FrameResponse, id TileID) {
	tile, ok := t.tiles.Get(id)
	if !ok {
		return
	}
	rect, ok := t.tiles.Rect(id)
	if !ok {
		return
	}

	if tile.IsPane() {
		r := behavior.PaneUI(id, tile.Pane, rect)
		if r.DragStarted && t.drag.phase == DragIdle {
			t.drag = dragState{phase: DragArmed, tile: id, pressPos: input.Pointer, wasDown: t.drag.wasDown}
			resp.Phase = DragArmed
			resp.Dragged = id
		}
		return
	}

	if tabs, ok := tile.Container.(*Tabs); ok {
		for _, b := range t.tabButtons(behavior, rect, tabs) {
			behavior.TabUI(t.tiles, b.child, b.rect, TabState{
				Active:       tabs.IsActive(b.child),
				BeingDragged: t.drag.phase == DragActive && t.drag.tile == b.child,
				Closable:     t.tileClosable(behavior, b.child),
			})
		}
		if !tabs.Active.IsNil() {
			t.paintTile(behavior, input, resp, tabs.Active)
		}
		return
	}

	for _, child := range tile.Container.ChildIDs() {
		t.paintTile(behavior, input, resp, child)
	}
}

// tabButton is one button in a tab bar, hit-tested and painted alike.
type tabButton struct {
	child TileID
	rect  geom.Rect
}

func (t *Tree) tabButtons(behavior Behavior, rect geom.Rect, tabs *Tabs) []tabButton {
	bar, _ := rect.SplitTopBottomAtY(rect.Min.Y + behavior.TabBarHeight())
	buttons := make([]tabButton, 0, len(tabs.Children))
	x := bar.Min.X
	for _, child := range tabs.Children {
		w := behavior.TabButtonWidth(t.tabTitle(behavior, child))
		buttons = append(buttons, tabButton{
			child: child,
			rect:  geom.FromMinSize(geom.P(x, bar.Min.Y), w, bar.Height()),
		})
		x += w
	}
	return buttons
}

// hitTabButton finds the tab button under the pointer, searching every
// visible tab container.
func (t *Tree) hitTabButton(behavior Behavior, pointer geom.Pos) (child, container TileID, ok bool) {
	for id, tile := range t.tiles.All() {
		tabs, isTabs := tile.Container.(*Tabs)
		if !isTabs {
			continue
		}
		rect, laidOut := t.tiles.Rect(id)
		if !laidOut {
			continue
		}
		for _, b := range t.tabButtons(behavior, rect, tabs) {
			if b.rect.Contains(pointer) {
				return b.child, id, true
			}
		}
	}
	return NilTileID, NilTileID, false
}

// activateTab selects the tile in its parent tab container, if it has one.
func (t *Tree) activateTab(behavior Behavior, id TileID) {
	parent, ok := t.tiles.ParentOf(id)
	if !ok {
		return
	}
	tile, ok := t.tiles.Get(parent)
	if !ok {
		return
	}
	if tabs, isTabs := tile.Container.(*Tabs); isTabs && tabs.SetActive(id) {
		behavior.OnEdit(TabSelected)
	}
}

func (t *Tree) tileClosable(behavior Behavior, id TileID) bool {
	tile, ok := t.tiles.Get(id)
	if !ok || !tile.IsPane() {
		return false
	}
	return behavior.IsTabClosable(t.tiles, id)
}

// CloseTile removes a closable tile after asking the behavior for consent.
// Containers close without consultation; panes can veto via OnTabClose.
// Returns false when the close was vetoed or the tile is unknown.
func (t *Tree) CloseTile(behavior Behavior, id TileID) bool {
	tile, ok := t.tiles.Get(id)
	if !ok {
		return false
	}
	if tile.IsPane() && !behavior.OnTabClose(t.tiles, id) {
		return false
	}
	if _, err := t.RemoveRecursively(id); err != nil {
		return false
	}
	behavior.OnEdit(TileRemoved)
	return true
}
