package tiles

// ContainerKind is the layout type of a [Container]. It is used both to
// describe a container and to request its conversion to another layout.
type ContainerKind int

const (
	// KindTabs shows one child at a time behind a tab bar.
	KindTabs ContainerKind = iota
	// KindHorizontal splits children left-to-right.
	KindHorizontal
	// KindVertical splits children top-down.
	KindVertical
	// KindGrid lays children out in row-major cells.
	KindGrid
)

// AllContainerKinds lists every kind, in display order.
var AllContainerKinds = []ContainerKind{KindTabs, KindHorizontal, KindVertical, KindGrid}

func (k ContainerKind) String() string {
	switch k {
	case KindTabs:
		return "tabs"
	case KindHorizontal:
		return "horizontal"
	case KindVertical:
		return "vertical"
	case KindGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// simplifyAction is the verdict of a simplification visit on one tile.
type simplifyAction struct {
	remove  bool
	replace TileID // non-nil: replace the tile with this one in its parent's slot
}

func simplifyKeep() simplifyAction            { return simplifyAction{} }
func simplifyRemove() simplifyAction          { return simplifyAction{remove: true} }
func simplifyReplace(id TileID) simplifyAction { return simplifyAction{replace: id} }

// Container is a tile holding an ordered collection of child tiles.
// The three implementations are [Linear], [Tabs], and [Grid].
//
// Containers store only child identifiers; the tiles themselves live in the
// arena ([Tiles]). A container never holds a reference back to its parent -
// "parent of" is always a derived query.
type Container interface {
	// Kind returns the layout type.
	Kind() ContainerKind

	// ChildIDs returns the children in order. For grids, holes are skipped.
	// The returned slice is a copy.
	ChildIDs() []TileID

	// NumChildren returns the number of children (grid holes excluded).
	NumChildren() int

	// IsEmpty reports whether the container has no children.
	IsEmpty() bool

	// OnlyChild returns the sole child and true if there is exactly one.
	OnlyChild() (TileID, bool)

	// HasChild reports whether the given tile is a direct child.
	HasChild(id TileID) bool

	// AddChild appends a child.
	AddChild(id TileID)

	// InsertChildAt inserts a child at the given position, clamped to
	// [0, len]. Grids reflow so the child lands logically at that
	// row-major index; tab containers also activate the inserted child.
	InsertChildAt(index int, id TileID)

	// RemoveChild detaches a direct child, returning its former index.
	// Tab containers repair their active pointer, preferring the previous
	// sibling. Returns false if id is not a child.
	RemoveChild(id TileID) (int, bool)

	// Retain keeps only the children for which keep returns true, in order.
	Retain(keep func(TileID) bool)

	// simplifyChildren applies a simplification verdict to each child slot.
	simplifyChildren(fn func(TileID) simplifyAction)
}

// NewContainer constructs an empty container of the given kind.
func NewContainer(kind ContainerKind, children []TileID) Container {
	switch kind {
	case KindHorizontal:
		return NewLinear(Horizontal, children)
	case KindVertical:
		return NewLinear(Vertical, children)
	case KindGrid:
		return NewGrid(children)
	default:
		return NewTabs(children)
	}
}

// ConvertContainer returns a container of the requested kind holding the
// same children in the same order. Shares and the active-tab pointer are
// reset to their defaults. Converting to the current kind returns c
// unchanged.
func ConvertContainer(c Container, kind ContainerKind) Container {
	if c.Kind() == kind {
		return c
	}
	return NewContainer(kind, c.ChildIDs())
}
