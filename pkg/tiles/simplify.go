package tiles

// SimplificationOptions selects which canonicalization rules the simplifier
// applies. The zero value disables every rule; most hosts want
// [DefaultSimplificationOptions].
type SimplificationOptions struct {
	// PruneEmptyTabs removes tab containers with no children.
	PruneEmptyTabs bool
	// PruneEmptyContainers removes non-tab containers with no children.
	PruneEmptyContainers bool
	// PruneSingleChildTabs replaces a tab container holding exactly one
	// child with that child, unless the child is a pane and
	// AllPanesMustHaveTabs keeps the wrapper.
	PruneSingleChildTabs bool
	// PruneSingleChildContainers replaces a non-tab container holding
	// exactly one child with that child.
	PruneSingleChildContainers bool
	// AllPanesMustHaveTabs wraps every pane whose parent is not a tab
	// container in a fresh single-tab container.
	AllPanesMustHaveTabs bool
	// JoinNestedLinearContainers splices the children of a linear
	// container into a parent linear container of the same direction.
	JoinNestedLinearContainers bool
}

// DefaultSimplificationOptions enables every rule except
// AllPanesMustHaveTabs.
func DefaultSimplificationOptions() SimplificationOptions {
	return SimplificationOptions{
		PruneEmptyTabs:             true,
		PruneEmptyContainers:       true,
		PruneSingleChildTabs:       true,
		PruneSingleChildContainers: true,
		JoinNestedLinearContainers: true,
	}
}

// NoSimplificationOptions disables every rule, freezing the tree shape
// exactly as the host built it.
func NoSimplificationOptions() SimplificationOptions {
	return SimplificationOptions{}
}

// Simplify canonicalizes the tree bottom-up according to the options:
// empty containers vanish, single-child wrappers collapse, and nested
// same-direction splits merge. Running it twice in a row is a no-op.
//
// When a root wrapper collapses the tree is re-rooted at its child; the
// root itself is otherwise exempt from removal.
func (t *Tree) Simplify(options SimplificationOptions) {
	if t.root.IsNil() {
		return
	}
	action := t.tiles.simplifyTile(options, t.root, nil)
	if action.remove {
		t.tiles.Remove(t.root)
		t.root = NilTileID
	} else if !action.replace.IsNil() {
		t.tiles.removeIfContainer(t.root)
		t.root = action.replace
	}
}

// simplifyTile canonicalizes the subtree rooted at id and reports what the
// parent should do with it. parentKind is nil at the root.
func (ts *Tiles) simplifyTile(options SimplificationOptions, id TileID, parentKind *ContainerKind) simplifyAction {
	tile, ok := ts.tiles[id]
	if !ok {
		ts.warnf("simplify: missing tile %s", id)
		return simplifyRemove()
	}

	if tile.IsPane() {
		if options.AllPanesMustHaveTabs && (parentKind == nil || *parentKind != KindTabs) {
			wrapped := ts.Insert(NewContainerTile(NewTabs([]TileID{id})))
			ts.debugf("simplify: wrapped pane %s in tabs %s", id, wrapped)
			return simplifyReplace(wrapped)
		}
		return simplifyKeep()
	}

	container := tile.Container
	kind := container.Kind()

	container.simplifyChildren(func(child TileID) simplifyAction {
		action := ts.simplifyTile(options, child, &kind)
		if action.remove {
			ts.Remove(child)
		} else if !action.replace.IsNil() {
			// A collapsed container is gone for good, but a pane
			// replaced by its new tabs wrapper lives on beneath it.
			ts.removeIfContainer(child)
		}
		return action
	})

	if l, ok := container.(*Linear); ok && options.JoinNestedLinearContainers {
		ts.joinNestedLinear(l)
	}

	if container.IsEmpty() {
		prune := options.PruneEmptyContainers
		if kind == KindTabs {
			prune = options.PruneEmptyTabs
		}
		if prune {
			return simplifyRemove()
		}
		return simplifyKeep()
	}

	if only, ok := container.OnlyChild(); ok {
		collapse := options.PruneSingleChildContainers
		if kind == KindTabs {
			collapse = options.PruneSingleChildTabs
			if collapse && options.AllPanesMustHaveTabs {
				// Keep the wrapper around a lone pane, or the next
				// pass would immediately re-create it.
				if child, ok := ts.tiles[only]; ok && child.IsPane() {
					collapse = false
				}
			}
		}
		if collapse {
			ts.debugf("simplify: collapsing %s into its only child %s", id, only)
			return simplifyReplace(only)
		}
	}

	return simplifyKeep()
}

// joinNestedLinear splices children of same-direction linear children into
// l, replacing each nested container with its children in place.
//
// The spliced children's shares are scaled so that together they occupy
// exactly the screen area the nested container had: each child share is
// multiplied by the container's share over the sum of the child shares.
func (ts *Tiles) joinNestedLinear(l *Linear) {
	merged := make([]TileID, 0, len(l.Children))
	for _, child := range l.Children {
		tile, ok := ts.tiles[child]
		if !ok {
			merged = append(merged, child)
			continue
		}
		nested, ok := tile.Container.(*Linear)
		if !ok || nested.Dir != l.Dir {
			merged = append(merged, child)
			continue
		}

		childShareSum := 0.0
		for _, grandchild := range nested.Children {
			childShareSum += nested.Shares.Get(grandchild)
		}
		scale := 1.0
		if childShareSum > 0 {
			scale = l.Shares.Get(child) / childShareSum
		}
		for _, grandchild := range nested.Children {
			l.Shares.set(grandchild, nested.Shares.Get(grandchild)*scale)
			merged = append(merged, grandchild)
		}

		l.Shares.Delete(child)
		ts.Remove(child)
		ts.debugf("simplify: joined nested %s split %s into parent", nested.Dir, child)
	}
	l.Children = merged
}
