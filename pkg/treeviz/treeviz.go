// Package treeviz renders the structure of a layout tree as a Graphviz
// diagram: one box per tile, edges from containers to their children.
// Useful for debugging simplification and drag-and-drop behavior.
package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/mhellweg/dockyard/pkg/observability"
	"github.com/mhellweg/dockyard/pkg/tiles"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes tile IDs and per-child shares in node labels.
	// When false, only kinds and pane titles are shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format. The resulting string can be
// rendered with [RenderSVG] or any dot(1) compatible tool.
//
// Containers are drawn as filled boxes labeled with their kind; panes as
// white boxes labeled with the behavior's tab title. The active child of a
// tab container is marked with a bold edge.
func ToDOT(tree *tiles.Tree, behavior tiles.Behavior, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if !tree.IsEmpty() {
		writeTile(&buf, tree, behavior, opts, tree.Root())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeTile(buf *bytes.Buffer, tree *tiles.Tree, behavior tiles.Behavior, opts Options, id tiles.TileID) {
	tile, ok := tree.Get(id)
	if !ok {
		return
	}

	label, attrs := tileAttrs(tree, behavior, opts, id, tile)
	fmt.Fprintf(buf, "  %q [label=%q%s];\n", id.String(), label, attrs)

	if !tile.IsContainer() {
		return
	}

	active := tiles.NilTileID
	if tabs, isTabs := tile.Container.(*tiles.Tabs); isTabs {
		active = tabs.Active
	}
	for _, child := range tile.Container.ChildIDs() {
		edge := ""
		if child == active {
			edge = ` [penwidth=2, label="active"]`
		}
		fmt.Fprintf(buf, "  %q -> %q%s;\n", id.String(), child.String(), edge)
		writeTile(buf, tree, behavior, opts, child)
	}
}

func tileAttrs(tree *tiles.Tree, behavior tiles.Behavior, opts Options, id tiles.TileID, tile *tiles.Tile) (label, attrs string) {
	if tile.IsContainer() {
		label = tile.Container.Kind().String()
		attrs = `, fillcolor=lightgrey`
	} else {
		label = behavior.TabTitle(tile.Pane)
	}
	if opts.Detailed {
		parts := []string{label, id.String()}
		if rect, ok := tree.Rect(id); ok {
			parts = append(parts, fmt.Sprintf("%gx%g", rect.Width(), rect.Height()))
		}
		label = strings.Join(parts, "\n")
	}
	return label, attrs
}

// RenderSVG renders a DOT diagram to SVG bytes using the embedded
// Graphviz engine.
func RenderSVG(ctx context.Context, dot string) (out []byte, err error) {
	observability.Render().OnRenderStart(ctx, "svg")
	start := time.Now()
	defer func() {
		observability.Render().OnRenderComplete(ctx, "svg", len(out), time.Since(start), err)
	}()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
