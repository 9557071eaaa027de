package tiles

import "slices"

// LinearDir is the split axis of a [Linear] container.
type LinearDir int

const (
	// Horizontal splits left-to-right.
	Horizontal LinearDir = iota
	// Vertical splits top-down.
	Vertical
)

func (d LinearDir) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// kind returns the container kind matching the direction.
func (d LinearDir) kind() ContainerKind {
	if d == Vertical {
		return KindVertical
	}
	return KindHorizontal
}

// Linear is a horizontal or vertical split container. Children appear in
// order along the split axis and are sized by their [Shares].
type Linear struct {
	Children []TileID
	Dir      LinearDir
	Shares   Shares
}

// NewLinear creates a linear container with the given children, all on the
// default share.
func NewLinear(dir LinearDir, children []TileID) *Linear {
	return &Linear{Children: slices.Clone(children), Dir: dir}
}

// NewBinaryLinear creates a two-child split where the first child takes the
// given fraction of the space. The fraction is clamped to [0, 1]. Shares
// are scaled by two so the total stays equal to the child count, which
// keeps later insertions near-equal.
func NewBinaryLinear(dir LinearDir, first, second TileID, fraction float64) *Linear {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	l := NewLinear(dir, []TileID{first, second})
	l.Shares.set(first, 2*fraction)
	l.Shares.set(second, 2*(1-fraction))
	return l
}

// Kind implements [Container].
func (l *Linear) Kind() ContainerKind { return l.Dir.kind() }

// ChildIDs implements [Container].
func (l *Linear) ChildIDs() []TileID { return slices.Clone(l.Children) }

// NumChildren implements [Container].
func (l *Linear) NumChildren() int { return len(l.Children) }

// IsEmpty implements [Container].
func (l *Linear) IsEmpty() bool { return len(l.Children) == 0 }

// OnlyChild implements [Container].
func (l *Linear) OnlyChild() (TileID, bool) {
	if len(l.Children) == 1 {
		return l.Children[0], true
	}
	return NilTileID, false
}

// HasChild implements [Container].
func (l *Linear) HasChild(id TileID) bool { return slices.Contains(l.Children, id) }

// AddChild implements [Container].
func (l *Linear) AddChild(id TileID) { l.Children = append(l.Children, id) }

// InsertChildAt implements [Container].
func (l *Linear) InsertChildAt(index int, id TileID) {
	index = clampIndex(index, len(l.Children))
	l.Children = slices.Insert(l.Children, index, id)
}

// RemoveChild implements [Container]. The child's stored share is dropped.
func (l *Linear) RemoveChild(id TileID) (int, bool) {
	index := slices.Index(l.Children, id)
	if index < 0 {
		return 0, false
	}
	l.Children = slices.Delete(l.Children, index, index+1)
	l.Shares.Delete(id)
	return index, true
}

// Retain implements [Container].
func (l *Linear) Retain(keep func(TileID) bool) {
	l.Children = slices.DeleteFunc(l.Children, func(id TileID) bool { return !keep(id) })
}

func (l *Linear) simplifyChildren(fn func(TileID) simplifyAction) {
	kept := l.Children[:0]
	for _, child := range l.Children {
		switch action := fn(child); {
		case action.remove:
			l.Shares.Delete(child)
		case !action.replace.IsNil():
			l.Shares.Replace(child, action.replace)
			kept = append(kept, action.replace)
		default:
			kept = append(kept, child)
		}
	}
	l.Children = kept
}

// clampIndex limits an insertion index to [0, length]. Callers may pass a
// very large index to mean "append".
func clampIndex(index, length int) int {
	if index < 0 {
		return 0
	}
	if index > length {
		return length
	}
	return index
}
