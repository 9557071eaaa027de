package tiles

import (
	"bytes"

	"github.com/google/uuid"
)

// TileID identifies a [Tile] within a tree, be it a container or a pane.
//
// IDs are random UUIDs: unique within (and across) tree instances, stable
// until the tile is removed, and comparable, so they work directly as map
// keys. The zero value is the nil ID and never refers to a live tile.
type TileID uuid.UUID

// NilTileID is the zero TileID. It never resolves to a tile.
var NilTileID TileID

// NewTileID generates a fresh random identifier.
func NewTileID() TileID { return TileID(uuid.New()) }

// IsNil reports whether the ID is the zero value.
func (id TileID) IsNil() bool { return id == NilTileID }

// Less provides a total order over IDs, used for deterministic
// serialization and stable test output.
func (id TileID) Less(other TileID) bool {
	return bytes.Compare(id[:], other[:]) < 0
}

// String returns a short form of the ID for logs and debug output.
func (id TileID) String() string {
	if id.IsNil() {
		return "nil"
	}
	return uuid.UUID(id).String()[:8]
}

// MarshalText implements encoding.TextMarshaler so IDs serialize as their
// full UUID string in JSON and TOML.
func (id TileID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TileID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}

// Tile is a node in the tree: either a pane (a leaf holding an opaque
// host-supplied payload) or a [Container] of more tiles. Exactly one of
// the two fields is set.
type Tile struct {
	// Pane is the host payload for leaf tiles. The engine never interprets
	// it; it only hands it back through [Behavior] callbacks.
	Pane any

	// Container is non-nil for container tiles.
	Container Container
}

// NewPane creates a leaf tile with the given payload.
func NewPane(pane any) *Tile { return &Tile{Pane: pane} }

// NewContainerTile wraps a container in a tile.
func NewContainerTile(c Container) *Tile { return &Tile{Container: c} }

// IsPane reports whether the tile is a leaf.
func (t *Tile) IsPane() bool { return t.Container == nil }

// IsContainer reports whether the tile is a container.
func (t *Tile) IsContainer() bool { return t.Container != nil }

// Kind returns the container kind and true, or false for panes.
func (t *Tile) Kind() (ContainerKind, bool) {
	if t.Container == nil {
		return 0, false
	}
	return t.Container.Kind(), true
}
