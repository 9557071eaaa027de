package tiles

import "slices"

// Tabs is a container showing one child at a time. The children are the
// tabs, in order; Active points at the currently open one.
//
// Invariant: when Children is non-empty, Active references one of them.
// The engine repairs the pointer whenever the active child departs,
// preferring the previous sibling by index.
type Tabs struct {
	Children []TileID
	Active   TileID
}

// NewTabs creates a tab container. The first child starts active.
func NewTabs(children []TileID) *Tabs {
	t := &Tabs{Children: slices.Clone(children)}
	if len(t.Children) > 0 {
		t.Active = t.Children[0]
	}
	return t
}

// SetActive makes the given child the open tab, reporting whether that
// changed anything. Non-children are refused.
func (t *Tabs) SetActive(id TileID) bool {
	if !t.HasChild(id) || t.Active == id {
		return false
	}
	t.Active = id
	return true
}

// IsActive reports whether the given child is the open tab.
func (t *Tabs) IsActive(id TileID) bool { return !id.IsNil() && t.Active == id }

// Kind implements [Container].
func (t *Tabs) Kind() ContainerKind { return KindTabs }

// ChildIDs implements [Container].
func (t *Tabs) ChildIDs() []TileID { return slices.Clone(t.Children) }

// NumChildren implements [Container].
func (t *Tabs) NumChildren() int { return len(t.Children) }

// IsEmpty implements [Container].
func (t *Tabs) IsEmpty() bool { return len(t.Children) == 0 }

// OnlyChild implements [Container].
func (t *Tabs) OnlyChild() (TileID, bool) {
	if len(t.Children) == 1 {
		return t.Children[0], true
	}
	return NilTileID, false
}

// HasChild implements [Container].
func (t *Tabs) HasChild(id TileID) bool { return slices.Contains(t.Children, id) }

// AddChild implements [Container].
func (t *Tabs) AddChild(id TileID) {
	t.Children = append(t.Children, id)
	if len(t.Children) == 1 {
		t.Active = id
	}
}

// InsertChildAt implements [Container]. The inserted child becomes active,
// matching what a user expects from dropping a tile onto a tab bar.
func (t *Tabs) InsertChildAt(index int, id TileID) {
	index = clampIndex(index, len(t.Children))
	t.Children = slices.Insert(t.Children, index, id)
	t.Active = id
}

// RemoveChild implements [Container]. Removing the active tab repoints
// Active at the previous sibling, or the new first tab when the first one
// was removed.
func (t *Tabs) RemoveChild(id TileID) (int, bool) {
	index := slices.Index(t.Children, id)
	if index < 0 {
		return 0, false
	}
	t.Children = slices.Delete(t.Children, index, index+1)
	if t.Active == id {
		t.repairActive(index)
	}
	return index, true
}

// repairActive repoints Active after the tab at removedIndex departed.
func (t *Tabs) repairActive(removedIndex int) {
	if len(t.Children) == 0 {
		t.Active = NilTileID
		return
	}
	index := removedIndex - 1
	if index < 0 {
		index = 0
	}
	if index >= len(t.Children) {
		index = len(t.Children) - 1
	}
	t.Active = t.Children[index]
}

// Retain implements [Container].
func (t *Tabs) Retain(keep func(TileID) bool) {
	for i := len(t.Children) - 1; i >= 0; i-- {
		if !keep(t.Children[i]) {
			id := t.Children[i]
			t.Children = slices.Delete(t.Children, i, i+1)
			if t.Active == id {
				t.repairActive(i)
			}
		}
	}
}

func (t *Tabs) simplifyChildren(fn func(TileID) simplifyAction) {
	for i := len(t.Children) - 1; i >= 0; i-- {
		child := t.Children[i]
		switch action := fn(child); {
		case action.remove:
			t.Children = slices.Delete(t.Children, i, i+1)
			if t.Active == child {
				t.repairActive(i)
			}
		case !action.replace.IsNil():
			t.Children[i] = action.replace
			if t.Active == child {
				t.Active = action.replace
			}
		}
	}
}
