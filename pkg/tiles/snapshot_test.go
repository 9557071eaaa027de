package tiles

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func stringPanes() (func(any) (string, error), func(string) (any, error)) {
	encode := func(pane any) (string, error) { return pane.(string), nil }
	decode := func(payload string) (any, error) { return payload, nil }
	return encode, decode
}

func TestSnapshot_RoundTrip(t *testing.T) {
	tree, _, _, _, _, _ := buildNestedTree()
	encode, decode := stringPanes()

	first, err := tree.Snapshot(encode)
	if err != nil {
		t.Fatalf("Snapshot() = %v", err)
	}

	restored, err := FromSnapshot(first, decode)
	if err != nil {
		t.Fatalf("FromSnapshot() = %v", err)
	}

	second, err := restored.Snapshot(encode)
	if err != nil {
		t.Fatalf("Snapshot() = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the snapshot:\nbefore: %+v\nafter:  %+v", first, second)
	}
}

func TestSnapshot_PreservesSharesAndActive(t *testing.T) {
	tiles := NewTiles()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")
	tb := tiles.InsertTabsContainer([]TileID{a, b})
	c := tiles.InsertPane("c")
	root := tiles.InsertHorizontalContainer([]TileID{tb, c})
	tree := New(root, tiles)

	rootTile, _ := tree.Get(root)
	rootTile.Container.(*Linear).Shares.Set(c, 2.5)
	tbTile, _ := tree.Get(tb)
	tbTile.Container.(*Tabs).SetActive(b)

	encode, decode := stringPanes()
	snap, err := tree.Snapshot(encode)
	if err != nil {
		t.Fatalf("Snapshot() = %v", err)
	}
	restored, err := FromSnapshot(snap, decode)
	if err != nil {
		t.Fatalf("FromSnapshot() = %v", err)
	}

	rTile, _ := restored.Get(root)
	if got := rTile.Container.(*Linear).Shares.Get(c); got != 2.5 {
		t.Errorf("restored share = %v, want 2.5", got)
	}
	tTile, _ := restored.Get(tb)
	if got := tTile.Container.(*Tabs).Active; got != b {
		t.Errorf("restored Active = %v, want %v", got, b)
	}
}

func TestSnapshot_PreservesGridHoles(t *testing.T) {
	tiles := NewTiles()
	a := tiles.InsertPane("a")
	b := tiles.InsertPane("b")
	c := tiles.InsertPane("c")
	root := tiles.InsertGridContainer([]TileID{a, b, c})
	tree := New(root, tiles)

	rootTile, _ := tree.Get(root)
	g := rootTile.Container.(*Grid)
	g.Columns = 2
	g.RemoveChild(b)
	if _, err := tree.RemoveRecursively(b); err != nil {
		t.Fatalf("RemoveRecursively() = %v", err)
	}

	encode, decode := stringPanes()
	snap, err := tree.Snapshot(encode)
	if err != nil {
		t.Fatalf("Snapshot() = %v", err)
	}
	restored, err := FromSnapshot(snap, decode)
	if err != nil {
		t.Fatalf("FromSnapshot() = %v", err)
	}

	rTile, _ := restored.Get(root)
	slots := rTile.Container.(*Grid).Slots()
	if len(slots) != 3 || !slots[1].IsNil() || slots[2] != c {
		t.Errorf("restored slots = %v, want [a hole c]", slots)
	}
	if got := rTile.Container.(*Grid).Columns; got != 2 {
		t.Errorf("restored Columns = %d, want 2", got)
	}
}

func TestSnapshot_TOMLRoundTrip(t *testing.T) {
	tree, _, _, _, _, _ := buildNestedTree()
	encode, _ := stringPanes()

	snap, err := tree.Snapshot(encode)
	if err != nil {
		t.Fatalf("Snapshot() = %v", err)
	}

	var buf bytes.Buffer
	if err := snap.EncodeTOML(&buf); err != nil {
		t.Fatalf("EncodeTOML() = %v", err)
	}
	decoded, err := DecodeSnapshotTOML(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshotTOML() = %v", err)
	}

	if decoded.Root != snap.Root {
		t.Errorf("decoded Root = %v, want %v", decoded.Root, snap.Root)
	}
	if len(decoded.Tiles) != len(snap.Tiles) {
		t.Fatalf("decoded %d tiles, want %d", len(decoded.Tiles), len(snap.Tiles))
	}
	if _, err := FromSnapshot(decoded, nil); err != nil {
		t.Errorf("FromSnapshot(decoded) = %v", err)
	}
}

func TestFromSnapshot_RejectsUnknownKind(t *testing.T) {
	id := NewTileID()
	s := &Snapshot{Root: id, Tiles: []SnapshotTile{{ID: id, Kind: "blob"}}}

	if _, err := FromSnapshot(s, nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("FromSnapshot() = %v, want ErrInvalidSnapshot", err)
	}
}

func TestFromSnapshot_RejectsDuplicateID(t *testing.T) {
	id := NewTileID()
	s := &Snapshot{Root: id, Tiles: []SnapshotTile{
		{ID: id, Kind: "pane"},
		{ID: id, Kind: "pane"},
	}}

	if _, err := FromSnapshot(s, nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("FromSnapshot() = %v, want ErrInvalidSnapshot", err)
	}
}

func TestFromSnapshot_RejectsMissingChild(t *testing.T) {
	root := NewTileID()
	s := &Snapshot{Root: root, Tiles: []SnapshotTile{
		{ID: root, Kind: "tabs", Children: []TileID{NewTileID()}},
	}}

	if _, err := FromSnapshot(s, nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("FromSnapshot() = %v, want ErrInvalidSnapshot", err)
	}
}

func TestFromSnapshot_RejectsDoubleParent(t *testing.T) {
	pane, t1, t2, root := NewTileID(), NewTileID(), NewTileID(), NewTileID()
	s := &Snapshot{Root: root, Tiles: []SnapshotTile{
		{ID: pane, Kind: "pane"},
		{ID: t1, Kind: "tabs", Children: []TileID{pane}},
		{ID: t2, Kind: "tabs", Children: []TileID{pane}},
		{ID: root, Kind: "horizontal", Children: []TileID{t1, t2}},
	}}

	if _, err := FromSnapshot(s, nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("FromSnapshot() = %v, want ErrInvalidSnapshot", err)
	}
}

func TestFromSnapshot_RejectsDisconnectedCycle(t *testing.T) {
	root, x, y := NewTileID(), NewTileID(), NewTileID()
	s := &Snapshot{Root: root, Tiles: []SnapshotTile{
		{ID: root, Kind: "pane"},
		{ID: x, Kind: "tabs", Children: []TileID{y}},
		{ID: y, Kind: "tabs", Children: []TileID{x}},
	}}

	if _, err := FromSnapshot(s, nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("FromSnapshot() = %v, want ErrInvalidSnapshot", err)
	}
}

func TestFromSnapshot_RejectsForeignActiveTab(t *testing.T) {
	a, b, root := NewTileID(), NewTileID(), NewTileID()
	s := &Snapshot{Root: root, Tiles: []SnapshotTile{
		{ID: root, Kind: "tabs", Children: []TileID{a, b}, Active: NewTileID()},
		{ID: a, Kind: "pane", Pane: "a"},
		{ID: b, Kind: "pane", Pane: "b"},
	}}

	if _, err := FromSnapshot(s, nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("FromSnapshot() = %v, want ErrInvalidSnapshot", err)
	}
}

func TestFromSnapshot_RejectsMissingRoot(t *testing.T) {
	id := NewTileID()
	s := &Snapshot{Root: NewTileID(), Tiles: []SnapshotTile{{ID: id, Kind: "pane"}}}

	if _, err := FromSnapshot(s, nil); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("FromSnapshot() = %v, want ErrInvalidSnapshot", err)
	}
}

func TestSnapshot_DeterministicOrder(t *testing.T) {
	tree, _, _, _, _, _ := buildNestedTree()
	encode, _ := stringPanes()

	first, err := tree.Snapshot(encode)
	if err != nil {
		t.Fatalf("Snapshot() = %v", err)
	}
	second, err := tree.Snapshot(encode)
	if err != nil {
		t.Fatalf("Snapshot() = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two exports of the same tree differ")
	}
}
