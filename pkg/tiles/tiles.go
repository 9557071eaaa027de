package tiles

import (
	"iter"

	charmlog "github.com/charmbracelet/log"

	"github.com/mhellweg/dockyard/pkg/geom"
)

// Tiles is the arena owning every tile of a tree, keyed by [TileID].
//
// The arena knows nothing about layout; it stores tiles and the child
// edges containers carry, and answers derived queries such as [Tiles.ParentOf]
// by scanning. It is not safe for concurrent use - a tree and its arena are
// owned by one call site per frame.
type Tiles struct {
	tiles map[TileID]*Tile

	// Tiles are visible by default, so only the invisible ones are stored.
	invisible map[TileID]struct{}

	// rects is filled in by the layout step each frame. It is transient
	// state: a structural mutation invalidates it until the next layout.
	rects map[TileID]geom.Rect

	logger *charmlog.Logger
}

// NewTiles creates an empty arena.
func NewTiles() *Tiles {
	return &Tiles{
		tiles:     make(map[TileID]*Tile),
		invisible: make(map[TileID]struct{}),
		rects:     make(map[TileID]geom.Rect),
	}
}

// SetLogger directs the arena's diagnostics (repair warnings, simplifier
// traces) to the given logger. A nil logger silences them.
func (ts *Tiles) SetLogger(logger *charmlog.Logger) { ts.logger = logger }

func (ts *Tiles) warnf(format string, args ...any) {
	if ts.logger != nil {
		ts.logger.Warnf(format, args...)
	}
}

func (ts *Tiles) debugf(format string, args ...any) {
	if ts.logger != nil {
		ts.logger.Debugf(format, args...)
	}
}

// Len returns the number of tiles, including invisible ones.
func (ts *Tiles) Len() int { return len(ts.tiles) }

// IsEmpty reports whether the arena holds no tiles.
func (ts *Tiles) IsEmpty() bool { return len(ts.tiles) == 0 }

// Get returns the tile with the given ID, or false if the ID does not
// resolve (never inserted, or removed).
func (ts *Tiles) Get(id TileID) (*Tile, bool) {
	t, ok := ts.tiles[id]
	return t, ok
}

// All iterates over every (id, tile) pair in arbitrary but
// stable-within-one-range order. The sequence is restartable.
func (ts *Tiles) All() iter.Seq2[TileID, *Tile] {
	return func(yield func(TileID, *Tile) bool) {
		for id, t := range ts.tiles {
			if !yield(id, t) {
				return
			}
		}
	}
}

// IDs returns every tile ID in arbitrary order.
func (ts *Tiles) IDs() []TileID {
	ids := make([]TileID, 0, len(ts.tiles))
	for id := range ts.tiles {
		ids = append(ids, id)
	}
	return ids
}

// Insert stores a tile under a fresh identifier and returns it.
func (ts *Tiles) Insert(tile *Tile) TileID {
	id := NewTileID()
	ts.tiles[id] = tile
	return id
}

// InsertPane stores a new leaf tile holding the given payload.
// The tile starts detached; attach it to a container to make it visible.
func (ts *Tiles) InsertPane(pane any) TileID {
	return ts.Insert(NewPane(pane))
}

// InsertContainer stores a new empty container of the given kind.
func (ts *Tiles) InsertContainer(kind ContainerKind) TileID {
	return ts.Insert(NewContainerTile(NewContainer(kind, nil)))
}

// InsertTabsContainer stores a new tab container with the given children.
func (ts *Tiles) InsertTabsContainer(children []TileID) TileID {
	return ts.Insert(NewContainerTile(NewTabs(children)))
}

// InsertHorizontalContainer stores a new left-to-right split.
func (ts *Tiles) InsertHorizontalContainer(children []TileID) TileID {
	return ts.Insert(NewContainerTile(NewLinear(Horizontal, children)))
}

// InsertVerticalContainer stores a new top-down split.
func (ts *Tiles) InsertVerticalContainer(children []TileID) TileID {
	return ts.Insert(NewContainerTile(NewLinear(Vertical, children)))
}

// InsertGridContainer stores a new grid.
func (ts *Tiles) InsertGridContainer(children []TileID) TileID {
	return ts.Insert(NewContainerTile(NewGrid(children)))
}

// Remove deletes the tile itself but not the references a parent may hold
// to it - callers must detach first, or use [Tree.RemoveRecursively] which
// does both. Returns the removed tile, or false if the ID was not live.
func (ts *Tiles) Remove(id TileID) (*Tile, bool) {
	t, ok := ts.tiles[id]
	if !ok {
		return nil, false
	}
	delete(ts.tiles, id)
	delete(ts.invisible, id)
	delete(ts.rects, id)
	return t, true
}

// removeIfContainer deletes the tile only when it is a container node.
func (ts *Tiles) removeIfContainer(id TileID) {
	if t, ok := ts.tiles[id]; ok && t.IsContainer() {
		ts.Remove(id)
	}
}

// RemoveRecursively deletes the tile and, for containers, every descendant.
// Parent references are not touched. The removed IDs are returned in
// unspecified order.
func (ts *Tiles) RemoveRecursively(id TileID) []TileID {
	var removed []TileID
	ts.removeRecursively(id, &removed)
	return removed
}

func (ts *Tiles) removeRecursively(id TileID, removed *[]TileID) {
	tile, ok := ts.Remove(id)
	if !ok {
		return
	}
	if tile.IsContainer() {
		for _, child := range tile.Container.ChildIDs() {
			ts.removeRecursively(child, removed)
		}
	}
	*removed = append(*removed, id)
}

// ParentOf returns the container holding id as a direct child. Parents are
// not stored; this scans every container, which is fine for the tree sizes
// this engine targets (tens to low hundreds of tiles).
func (ts *Tiles) ParentOf(child TileID) (TileID, bool) {
	for id, tile := range ts.tiles {
		if tile.IsContainer() && tile.Container.HasChild(child) {
			return id, true
		}
	}
	return NilTileID, false
}

// IsVisible reports whether the tile is visible. Tiles are visible by
// default; invisible tiles keep their place in the hierarchy but receive
// no rectangle.
func (ts *Tiles) IsVisible(id TileID) bool {
	_, invisible := ts.invisible[id]
	return !invisible
}

// SetVisible shows or hides a tile.
func (ts *Tiles) SetVisible(id TileID, visible bool) {
	if visible {
		delete(ts.invisible, id)
	} else {
		ts.invisible[id] = struct{}{}
	}
}

// ToggleVisibility flips a tile's visibility.
func (ts *Tiles) ToggleVisibility(id TileID) {
	ts.SetVisible(id, !ts.IsVisible(id))
}

// Rect returns the rectangle assigned to the tile by the most recent
// layout pass, or false for invisible tiles and tiles that were not laid
// out (e.g. inactive tabs).
func (ts *Tiles) Rect(id TileID) (geom.Rect, bool) {
	if !ts.IsVisible(id) {
		return geom.Rect{}, false
	}
	r, ok := ts.rects[id]
	return r, ok
}

func (ts *Tiles) setRect(id TileID, r geom.Rect) { ts.rects[id] = r }

func (ts *Tiles) clearRects() {
	clear(ts.rects)
}

// visibleChildren filters the given IDs down to the visible ones.
func (ts *Tiles) visibleChildren(ids []TileID) []TileID {
	visible := ids[:0:0]
	for _, id := range ids {
		if ts.IsVisible(id) {
			visible = append(visible, id)
		}
	}
	return visible
}

// gc drops every tile unreachable from root, defending against cycles and
// duplicated children that a bad import could have produced. When behavior
// is non-nil its RetainPane veto is honored for panes.
func (ts *Tiles) gc(behavior Behavior, root TileID) {
	visited := make(map[TileID]struct{}, len(ts.tiles))
	if !root.IsNil() {
		// The root action is ignored: the root is never collected.
		ts.gcTile(behavior, visited, root)
	}

	if len(visited) < len(ts.tiles) {
		// Expected to happen only for trees set up in a bad state or
		// restored from a corrupt snapshot.
		for id := range ts.tiles {
			if _, ok := visited[id]; !ok {
				ts.debugf("gc: collecting unreachable tile %s", id)
			}
		}
	}

	for id := range ts.tiles {
		if _, ok := visited[id]; !ok {
			delete(ts.tiles, id)
			delete(ts.invisible, id)
			delete(ts.rects, id)
		}
	}
}

// gcTile returns true if the tile should be kept.
func (ts *Tiles) gcTile(behavior Behavior, visited map[TileID]struct{}, id TileID) bool {
	tile, ok := ts.tiles[id]
	if !ok {
		return false
	}
	if _, seen := visited[id]; seen {
		ts.warnf("gc: cycle or duplicated child at %s", id)
		return false
	}
	visited[id] = struct{}{}

	if tile.IsPane() {
		if behavior != nil && !behavior.RetainPane(tile.Pane) {
			delete(ts.tiles, id)
			return false
		}
		return true
	}

	tile.Container.Retain(func(child TileID) bool {
		return ts.gcTile(behavior, visited, child)
	})
	return true
}
