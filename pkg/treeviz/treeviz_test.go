package treeviz

import (
	"strings"
	"testing"

	"github.com/mhellweg/dockyard/pkg/tiles"
)

func TestToDOT_ListsTilesAndEdges(t *testing.T) {
	tree := tiles.NewTabsTree("editor", "logs")

	dot := ToDOT(tree, tiles.DefaultBehavior{}, Options{})

	for _, want := range []string{"digraph layout", "tabs", "editor", "logs"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "->"); got != 2 {
		t.Errorf("ToDOT() has %d edges, want 2", got)
	}
	if !strings.Contains(dot, `label="active"`) {
		t.Error("ToDOT() does not mark the active tab edge")
	}
}

func TestToDOT_EmptyTree(t *testing.T) {
	dot := ToDOT(tiles.Empty(), tiles.DefaultBehavior{}, Options{})

	if strings.Count(dot, "label=") != 0 {
		t.Errorf("ToDOT(empty) has nodes:\n%s", dot)
	}
}

func TestToDOT_DetailedIncludesIDs(t *testing.T) {
	tree := tiles.NewHorizontalTree("a")
	root := tree.Root()

	dot := ToDOT(tree, tiles.DefaultBehavior{}, Options{Detailed: true})

	if !strings.Contains(dot, root.String()) {
		t.Errorf("detailed ToDOT() missing root ID %s:\n%s", root, dot)
	}
}
