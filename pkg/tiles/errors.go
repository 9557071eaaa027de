package tiles

import "errors"

var (
	// ErrNotFound is returned when a TileID does not resolve to a live tile.
	// This happens for fabricated or foreign identifiers, and for identifiers
	// whose tile has been removed. Removal permanently invalidates an ID:
	// identifiers are never recycled, so a stale ID can never silently alias
	// a newer tile.
	ErrNotFound = errors.New("tile not found")

	// ErrCyclicMove is returned by [Tree.MoveTile] when the requested move
	// would make a tile its own ancestor: the target container is the moved
	// tile itself or one of its descendants. The tree is left unchanged.
	ErrCyclicMove = errors.New("move would create a cycle")

	// ErrInvalidShare is returned by [Shares.Set] for non-positive share
	// values, which would assign zero or negative space to a child.
	ErrInvalidShare = errors.New("share must be positive")

	// ErrInvalidSnapshot is returned by [ImportTree] when a snapshot fails
	// structural validation: a child reference to a missing tile, a tile with
	// more than one parent, a cycle, or an unknown container kind.
	ErrInvalidSnapshot = errors.New("invalid tree snapshot")
)
