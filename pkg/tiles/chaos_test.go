package tiles

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/mhellweg/dockyard/pkg/geom"
)

// TestChaos_RandomEditsKeepInvariants hammers a tree with random moves,
// removals, insertions, and frames, checking structural invariants after
// every step: every tile has at most one parent, every tab container's
// active pointer is one of its children or nil, and no container
// references a dead tile.
func TestChaos_RandomEditsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := NewGridTree("p0", "p1", "p2", "p3", "p4", "p5")
	b := &testBehavior{}
	rect := geom.NewRect(0, 0, 640, 480)

	for step := 0; step < 500; step++ {
		ids := tree.Tiles().IDs()
		if len(ids) == 0 {
			break
		}
		pick := func() TileID { return ids[rng.Intn(len(ids))] }

		switch rng.Intn(5) {
		case 0:
			kind := AllContainerKinds[rng.Intn(len(AllContainerKinds))]
			err := tree.MoveTile(pick(), InsertionPoint{
				Parent: pick(),
				Kind:   kind,
				Index:  rng.Intn(4),
			})
			if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrCyclicMove) {
				t.Fatalf("step %d: MoveTile() = %v", step, err)
			}
		case 1:
			if id := pick(); id != tree.Root() {
				tree.RemoveRecursively(id)
			}
		case 2:
			pane := tree.Tiles().InsertPane(step)
			err := tree.MoveTile(pane, InsertionPoint{
				Parent: pick(),
				Kind:   KindTabs,
				Index:  rng.Intn(4),
			})
			if err != nil && !errors.Is(err, ErrNotFound) {
				t.Fatalf("step %d: MoveTile(new pane) = %v", step, err)
			}
		case 3:
			tree.Simplify(DefaultSimplificationOptions())
		case 4:
			tree.Frame(b, rect, Input{Pointer: geom.P(
				rng.Float64()*640, rng.Float64()*480,
			)})
		}

		assertInvariants(t, tree, step)
		if t.Failed() {
			return
		}
	}
}

func assertInvariants(t *testing.T, tree *Tree, step int) {
	t.Helper()
	parents := make(map[TileID]TileID)
	for id, tile := range tree.Tiles().All() {
		if !tile.IsContainer() {
			continue
		}
		if tabs, ok := tile.Container.(*Tabs); ok {
			if !tabs.Active.IsNil() && !tabs.HasChild(tabs.Active) {
				t.Errorf("step %d: tabs %v active %v is not a child", step, id, tabs.Active)
			}
		}
		for _, child := range tile.Container.ChildIDs() {
			if _, ok := tree.Get(child); !ok {
				t.Errorf("step %d: container %v references dead tile %v", step, id, child)
			}
			if prev, claimed := parents[child]; claimed {
				t.Errorf("step %d: tile %v has parents %v and %v", step, child, prev, id)
			}
			parents[child] = id
		}
	}
	if root := tree.Root(); !root.IsNil() {
		if _, ok := tree.Get(root); !ok {
			t.Errorf("step %d: root %v is dead", step, root)
		}
		if p, claimed := parents[root]; claimed {
			t.Errorf("step %d: root %v has parent %v", step, root, p)
		}
	}
}
