// Package tiles implements a dockable tiling layout: a tree of panes and
// containers that splits a rectangle into resizable, draggable regions.
//
// # Overview
//
// A [Tree] owns an arena of tiles. Each tile is either a pane, whose
// payload and rendering belong to the host, or a container arranging child
// tiles: a [Linear] split (horizontal or vertical, with per-child shares),
// a [Tabs] group showing one child at a time, or a [Grid]. Containers nest
// to arbitrary depth.
//
// The engine is UI-toolkit agnostic. Hosts implement [Behavior] to render
// panes and tab buttons and to tune sizes and policies, then call
// [Tree.Frame] once per rendered frame with the available rectangle and
// the frame's pointer input. The frame pass simplifies the tree, collects
// garbage, assigns every visible tile a rectangle, and drives tab
// activation, drag-and-drop rearrangement, and boundary resizing.
//
// # Basic Usage
//
// Build a tree from pane payloads, then run frames:
//
//	tree := tiles.NewHorizontalTree("left", "right")
//	resp := tree.Frame(behavior, geom.NewRect(0, 0, 800, 600), input)
//	if resp.Phase == tiles.DragActive {
//	    highlight(resp.Preview)
//	}
//
// Trees can also be assembled by hand through [Tree.Tiles]: insert panes
// and containers into the arena, then root the tree with [Tree.SetRoot].
//
// # Simplification
//
// Edits can leave the tree in a non-canonical shape: empty containers,
// single-child wrappers, a horizontal split directly inside another
// horizontal split. [Tree.Simplify] canonicalizes bottom-up under
// [SimplificationOptions]; [Tree.Frame] applies the behavior's options
// every pass, so hosts rarely call it directly.
//
// # Persistence
//
// [Tree.Snapshot] and [FromSnapshot] convert trees to and from a plain
// serializable form. Pane payloads are opaque to the engine, so the host
// supplies the payload encoder and decoder.
//
// A Tree is not safe for concurrent use; drive it from one goroutine.
package tiles
