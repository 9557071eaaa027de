package tiles

import (
	charmlog "github.com/charmbracelet/log"

	"github.com/mhellweg/dockyard/pkg/geom"
)

// Tree is a dockable layout: a [Tiles] arena plus the ID of the root tile.
// The zero value is not usable; construct trees with [Empty], [New], or one
// of the container-specific constructors.
//
// A Tree is not safe for concurrent use. Hosts drive it from a single
// goroutine, typically their UI loop.
type Tree struct {
	tiles *Tiles
	root  TileID

	drag   dragState
	resize resizeState
}

// Empty returns a tree with no tiles at all.
func Empty() *Tree {
	return &Tree{tiles: NewTiles()}
}

// New returns a tree rooted at the given tile of an existing arena. Tiles in
// the arena that are not reachable from root are kept until the next GC.
func New(root TileID, tiles *Tiles) *Tree {
	return &Tree{tiles: tiles, root: root}
}

// NewTabsTree builds a tree whose root is a tab container over the given
// panes, inserting one pane tile per value.
func NewTabsTree(panes ...any) *Tree {
	return newContainerTree(KindTabs, panes)
}

// NewHorizontalTree builds a tree whose root splits the given panes
// left-to-right.
func NewHorizontalTree(panes ...any) *Tree {
	return newContainerTree(KindHorizontal, panes)
}

// NewVerticalTree builds a tree whose root stacks the given panes
// top-to-bottom.
func NewVerticalTree(panes ...any) *Tree {
	return newContainerTree(KindVertical, panes)
}

// NewGridTree builds a tree whose root arranges the given panes in a grid
// with automatic column count.
func NewGridTree(panes ...any) *Tree {
	return newContainerTree(KindGrid, panes)
}

func newContainerTree(kind ContainerKind, panes []any) *Tree {
	tiles := NewTiles()
	children := make([]TileID, 0, len(panes))
	for _, pane := range panes {
		children = append(children, tiles.InsertPane(pane))
	}
	root := tiles.Insert(NewContainerTile(NewContainer(kind, children)))
	return &Tree{tiles: tiles, root: root}
}

// SetLogger routes the tree's diagnostics to the given logger. A nil logger
// silences them.
func (t *Tree) SetLogger(logger *charmlog.Logger) {
	t.tiles.SetLogger(logger)
}

// Root returns the root tile ID, which is nil for an empty tree.
func (t *Tree) Root() TileID { return t.root }

// SetRoot re-roots the tree. The previous root's subtree stays in the arena
// until the next GC.
func (t *Tree) SetRoot(id TileID) { t.root = id }

// IsRoot reports whether id is the current root.
func (t *Tree) IsRoot(id TileID) bool { return !id.IsNil() && id == t.root }

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool { return t.root.IsNil() }

// Tiles exposes the underlying arena for direct inspection and insertion.
func (t *Tree) Tiles() *Tiles { return t.tiles }

// Get returns the tile stored under id.
func (t *Tree) Get(id TileID) (*Tile, bool) { return t.tiles.Get(id) }

// ParentOf returns the container directly holding id, or false for the root
// and for unknown IDs.
func (t *Tree) ParentOf(id TileID) (TileID, bool) {
	return t.tiles.ParentOf(id)
}

// Rect returns the rectangle assigned to id by the most recent layout pass.
// Invisible tiles and tiles not reached by the pass report false.
func (t *Tree) Rect(id TileID) (geom.Rect, bool) {
	return t.tiles.Rect(id)
}

// FindPane returns the ID of the first pane for which pred returns true,
// searching the tree depth-first from the root.
func (t *Tree) FindPane(pred func(pane any) bool) (TileID, bool) {
	return t.findPaneIn(t.root, pred)
}

func (t *Tree) findPaneIn(id TileID, pred func(pane any) bool) (TileID, bool) {
	tile, ok := t.tiles.Get(id)
	if !ok {
		return NilTileID, false
	}
	if tile.IsPane() {
		if pred(tile.Pane) {
			return id, true
		}
		return NilTileID, false
	}
	for _, child := range tile.Container.ChildIDs() {
		if found, ok := t.findPaneIn(child, pred); ok {
			return found, true
		}
	}
	return NilTileID, false
}

// ActiveTiles returns the tiles a layout pass would reach: every tile from
// the root down, except invisible tiles and the hidden children of tab
// containers. Order is depth-first.
func (t *Tree) ActiveTiles() []TileID {
	var active []TileID
	t.collectActive(t.root, &active)
	return active
}

func (t *Tree) collectActive(id TileID, active *[]TileID) {
	tile, ok := t.tiles.Get(id)
	if !ok || !t.tiles.IsVisible(id) {
		return
	}
	*active = append(*active, id)
	if !tile.IsContainer() {
		return
	}
	if tabs, ok := tile.Container.(*Tabs); ok {
		if !tabs.Active.IsNil() {
			t.collectActive(tabs.Active, active)
		}
		return
	}
	for _, child := range tile.Container.ChildIDs() {
		t.collectActive(child, active)
	}
}

// MakeActive selects, in every tab container on the path from the root to
// each pane matching pred, the tab leading to that pane. Use it to reveal a
// pane that may be buried under inactive tabs.
func (t *Tree) MakeActive(pred func(id TileID, pane any) bool) {
	t.makeActiveIn(t.root, pred)
}

// makeActiveIn reports whether the subtree at id contains a matching pane.
func (t *Tree) makeActiveIn(id TileID, pred func(id TileID, pane any) bool) bool {
	tile, ok := t.tiles.Get(id)
	if !ok {
		return false
	}
	if tile.IsPane() {
		return pred(id, tile.Pane)
	}
	found := false
	for _, child := range tile.Container.ChildIDs() {
		if t.makeActiveIn(child, pred) {
			found = true
			if tabs, ok := tile.Container.(*Tabs); ok {
				tabs.Active = child
			}
		}
	}
	return found
}

// MoveTile detaches the tile from its current parent and inserts it at the
// given insertion point. The move is atomic: on any error the tree is
// unchanged.
//
// Returns [ErrNotFound] if the tile or the insertion parent is not live,
// and [ErrCyclicMove] if the destination lies inside the moved tile's own
// subtree.
func (t *Tree) MoveTile(id TileID, at InsertionPoint) error {
	if _, ok := t.tiles.Get(id); !ok {
		return ErrNotFound
	}
	if _, ok := t.tiles.Get(at.Parent); !ok {
		return ErrNotFound
	}
	if id == at.Parent || t.isDescendant(at.Parent, id) {
		return ErrCyclicMove
	}

	t.removeFromParent(id)
	t.insertAt(id, at)
	return nil
}

// isDescendant reports whether id lies strictly inside the subtree rooted
// at ancestor.
func (t *Tree) isDescendant(id, ancestor TileID) bool {
	tile, ok := t.tiles.Get(ancestor)
	if !ok || !tile.IsContainer() {
		return false
	}
	for _, child := range tile.Container.ChildIDs() {
		if child == id || t.isDescendant(id, child) {
			return true
		}
	}
	return false
}

// removeFromParent detaches id from whichever container holds it. The tile
// itself stays in the arena.
func (t *Tree) removeFromParent(id TileID) {
	if parent, ok := t.tiles.ParentOf(id); ok {
		if tile, ok := t.tiles.Get(parent); ok && tile.IsContainer() {
			tile.Container.RemoveChild(id)
		}
	}
}

// RemoveRecursively detaches the tile from its parent and deletes it and
// all its descendants from the arena. Removing the root empties the tree.
// Returns the removed IDs, or [ErrNotFound] if the tile is not live.
func (t *Tree) RemoveRecursively(id TileID) ([]TileID, error) {
	if _, ok := t.tiles.Get(id); !ok {
		return nil, ErrNotFound
	}
	t.removeFromParent(id)
	removed := t.tiles.RemoveRecursively(id)
	if id == t.root {
		t.root = NilTileID
	}
	return removed, nil
}

// GC deletes every tile not reachable from the root, and drops reachable
// panes that behavior's RetainPane vetoes. It also detaches duplicated and
// cyclic child references, which only a corrupt import can produce.
func (t *Tree) GC(behavior Behavior) {
	t.tiles.gc(behavior, t.root)
}
