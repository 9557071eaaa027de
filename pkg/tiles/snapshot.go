package tiles

import (
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
)

// Snapshot is a serializable image of a [Tree]. Pane payloads are opaque to
// the engine, so hosts supply an encoder and decoder for them; everything
// else round-trips losslessly, including tile IDs, grid holes, and the
// active tab of every tab container.
//
// The struct marshals cleanly with encoding/json and with TOML via
// [Snapshot.EncodeTOML].
type Snapshot struct {
	Root  TileID         `json:"root" toml:"root"`
	Tiles []SnapshotTile `json:"tiles" toml:"tiles"`
}

// SnapshotTile is one tile in a [Snapshot]. Kind selects which of the
// optional fields are meaningful.
type SnapshotTile struct {
	ID   TileID `json:"id" toml:"id"`
	Kind string `json:"kind" toml:"kind"`

	// Pane is the host-encoded payload, for Kind "pane".
	Pane string `json:"pane,omitempty" toml:"pane,omitempty"`

	// Children lists child IDs in order. Grid children may include nil
	// IDs marking empty slots.
	Children []TileID `json:"children,omitempty" toml:"children,omitempty"`

	// Active is the open tab, for Kind "tabs".
	Active TileID `json:"active,omitzero" toml:"active,omitempty"`

	// Shares carries per-child shares, for linear kinds.
	Shares []ShareEntry `json:"shares,omitempty" toml:"shares,omitempty"`

	// Columns and the share slices describe grid geometry. Columns 0
	// means automatic.
	Columns   int       `json:"columns,omitempty" toml:"columns,omitempty"`
	ColShares []float64 `json:"col_shares,omitempty" toml:"col_shares,omitempty"`
	RowShares []float64 `json:"row_shares,omitempty" toml:"row_shares,omitempty"`

	// Invisible marks tiles hidden at export time.
	Invisible bool `json:"invisible,omitempty" toml:"invisible,omitempty"`
}

// ShareEntry is one child's relative share within a linear container.
type ShareEntry struct {
	Child TileID  `json:"child" toml:"child"`
	Share float64 `json:"share" toml:"share"`
}

func (s ShareEntry) String() string { return fmt.Sprintf("%s=%g", s.Child, s.Share) }

const (
	snapshotPane = "pane"
)

// Snapshot exports the tree. encodePane turns each pane payload into a
// string; pass nil to export panes as empty payloads. Tiles are sorted by
// ID so equal trees export byte-identically.
func (t *Tree) Snapshot(encodePane func(pane any) (string, error)) (*Snapshot, error) {
	s := &Snapshot{Root: t.root}
	for id, tile := range t.tiles.All() {
		st := SnapshotTile{ID: id, Invisible: !t.tiles.IsVisible(id)}
		if tile.IsPane() {
			st.Kind = snapshotPane
			if encodePane != nil {
				payload, err := encodePane(tile.Pane)
				if err != nil {
					return nil, fmt.Errorf("encoding pane %s: %w", id, err)
				}
				st.Pane = payload
			}
		} else {
			st.Kind = tile.Container.Kind().String()
			switch c := tile.Container.(type) {
			case *Tabs:
				st.Children = c.ChildIDs()
				st.Active = c.Active
			case *Linear:
				st.Children = c.ChildIDs()
				c.Shares.Each(func(child TileID, share float64) {
					st.Shares = append(st.Shares, ShareEntry{Child: child, Share: share})
				})
				sort.Slice(st.Shares, func(i, j int) bool {
					return st.Shares[i].Child.Less(st.Shares[j].Child)
				})
			case *Grid:
				st.Children = c.Slots()
				st.Columns = c.Columns
				st.ColShares = append([]float64(nil), c.ColShares...)
				st.RowShares = append([]float64(nil), c.RowShares...)
			}
		}
		s.Tiles = append(s.Tiles, st)
	}
	sort.Slice(s.Tiles, func(i, j int) bool {
		return s.Tiles[i].ID.Less(s.Tiles[j].ID)
	})
	return s, nil
}

// FromSnapshot rebuilds a tree. decodePane turns each stored pane payload
// back into a live payload; pass nil to restore the payload strings as-is.
//
// Structural damage is refused with an error wrapping [ErrInvalidSnapshot]:
// duplicate IDs, unknown kinds, references to missing tiles, a child
// claimed by two parents, or an unreachable cycle.
func FromSnapshot(s *Snapshot, decodePane func(payload string) (any, error)) (*Tree, error) {
	tiles := NewTiles()
	for _, st := range s.Tiles {
		if st.ID.IsNil() {
			return nil, fmt.Errorf("%w: tile with nil ID", ErrInvalidSnapshot)
		}
		if _, dup := tiles.tiles[st.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tile %s", ErrInvalidSnapshot, st.ID)
		}

		tile, err := decodeTile(st, decodePane)
		if err != nil {
			return nil, err
		}
		tiles.tiles[st.ID] = tile
		if st.Invisible {
			tiles.SetVisible(st.ID, false)
		}
	}

	if err := validateSnapshotRefs(tiles, s.Root); err != nil {
		return nil, err
	}
	return &Tree{tiles: tiles, root: s.Root}, nil
}

func decodeTile(st SnapshotTile, decodePane func(string) (any, error)) (*Tile, error) {
	if st.Kind == snapshotPane {
		payload := any(st.Pane)
		if decodePane != nil {
			decoded, err := decodePane(st.Pane)
			if err != nil {
				return nil, fmt.Errorf("decoding pane %s: %w", st.ID, err)
			}
			payload = decoded
		}
		return NewPane(payload), nil
	}

	switch st.Kind {
	case KindTabs.String():
		tabs := NewTabs(st.Children)
		if !st.Active.IsNil() {
			tabs.Active = st.Active
		}
		return NewContainerTile(tabs), nil
	case KindHorizontal.String(), KindVertical.String():
		dir := Horizontal
		if st.Kind == KindVertical.String() {
			dir = Vertical
		}
		l := NewLinear(dir, st.Children)
		for _, e := range st.Shares {
			if err := l.Shares.Set(e.Child, e.Share); err != nil {
				return nil, fmt.Errorf("%w: share %s of %s", ErrInvalidSnapshot, e, st.ID)
			}
		}
		return NewContainerTile(l), nil
	case KindGrid.String():
		g := NewGrid(st.Children)
		g.Columns = st.Columns
		g.ColShares = append([]float64(nil), st.ColShares...)
		g.RowShares = append([]float64(nil), st.RowShares...)
		return NewContainerTile(g), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q for tile %s", ErrInvalidSnapshot, st.Kind, st.ID)
	}
}

// validateSnapshotRefs checks that every child reference resolves, that no
// tile has two parents or is its own ancestor, that the root is live, and
// that each tab container's active pointer is one of its children.
func validateSnapshotRefs(tiles *Tiles, root TileID) error {
	if !root.IsNil() {
		if _, ok := tiles.tiles[root]; !ok {
			return fmt.Errorf("%w: root %s not among tiles", ErrInvalidSnapshot, root)
		}
	} else if len(tiles.tiles) > 0 {
		return fmt.Errorf("%w: tiles present but no root", ErrInvalidSnapshot)
	}

	parents := make(map[TileID]TileID, len(tiles.tiles))
	for id, tile := range tiles.tiles {
		if !tile.IsContainer() {
			continue
		}
		if tabs, isTabs := tile.Container.(*Tabs); isTabs {
			if !tabs.Active.IsNil() && !tabs.HasChild(tabs.Active) {
				return fmt.Errorf("%w: %s active tab %s not among its children", ErrInvalidSnapshot, id, tabs.Active)
			}
		}
		for _, child := range tile.Container.ChildIDs() {
			if child.IsNil() {
				continue // grid hole
			}
			if _, ok := tiles.tiles[child]; !ok {
				return fmt.Errorf("%w: %s references missing child %s", ErrInvalidSnapshot, id, child)
			}
			if prev, claimed := parents[child]; claimed {
				return fmt.Errorf("%w: %s claimed by both %s and %s", ErrInvalidSnapshot, child, prev, id)
			}
			parents[child] = id
		}
	}
	if _, rooted := parents[root]; rooted && !root.IsNil() {
		return fmt.Errorf("%w: root %s has a parent", ErrInvalidSnapshot, root)
	}

	// With single parents and a parentless root, any cycle is a loop of
	// tiles disconnected from the root. Walk each tile upward; revisiting
	// the start means a loop.
	for id := range tiles.tiles {
		seen := map[TileID]struct{}{id: {}}
		for cur := id; ; {
			parent, ok := parents[cur]
			if !ok {
				break
			}
			if _, looped := seen[parent]; looped {
				return fmt.Errorf("%w: cycle through %s", ErrInvalidSnapshot, parent)
			}
			seen[parent] = struct{}{}
			cur = parent
		}
	}
	return nil
}

// EncodeTOML writes the snapshot as TOML.
func (s *Snapshot) EncodeTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// DecodeSnapshotTOML reads a TOML snapshot. The result is structurally
// unvalidated; [FromSnapshot] validates on rebuild.
func DecodeSnapshotTOML(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &s, nil
}
