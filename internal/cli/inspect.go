package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhellweg/dockyard/pkg/tiles"
)

// inspectCommand creates the inspect command for examining a saved layout.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [layout.toml]",
		Short: "Print a summary of a saved layout",
		Long: `Print a summary of a saved layout.

The inspect command reads a layout snapshot and prints the container tree
as an indented outline, followed by tile counts. Use it to sanity-check a
layout file without starting the demo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0])
		},
	}
	return cmd
}

func (c *CLI) runInspect(input string) error {
	tree, err := loadSnapshotTree(input)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(input) + "\n\n")
	if tree.IsEmpty() {
		b.WriteString(StyleDim.Render("(empty layout)") + "\n")
	} else {
		writeOutline(&b, tree, tree.Root(), 0)
	}

	panes, containers := 0, 0
	for _, tile := range tree.Tiles().All() {
		if tile.IsPane() {
			panes++
		} else {
			containers++
		}
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		StyleDim.Render("panes:"), StyleValue.Render(fmt.Sprint(panes)),
		StyleDim.Render("containers:"), StyleValue.Render(fmt.Sprint(containers))))

	fmt.Print(b.String())
	return nil
}

// writeOutline prints the subtree rooted at id, one tile per line.
func writeOutline(b *strings.Builder, tree *tiles.Tree, id tiles.TileID, depth int) {
	tile, ok := tree.Get(id)
	if !ok {
		return
	}
	indent := strings.Repeat("  ", depth)

	if tile.IsPane() {
		payload, _ := tile.Pane.(string)
		line := fmt.Sprintf("%s%s %s", indent, StyleHighlight.Render("pane"), summarize(payload))
		if !tree.Tiles().IsVisible(id) {
			line += " " + StyleDim.Render("(hidden)")
		}
		b.WriteString(line + "\n")
		return
	}

	kind := tile.Container.Kind()
	line := indent + StyleValue.Render(kind.String())
	if tabs, ok := tile.Container.(*tiles.Tabs); ok && !tabs.Active.IsNil() {
		line += StyleDim.Render(fmt.Sprintf(" (active %s)", shortID(tabs.Active)))
	}
	b.WriteString(line + "\n")

	children := tile.Container.ChildIDs()
	if grid, ok := tile.Container.(*tiles.Grid); ok {
		children = grid.Slots()
	}
	for _, child := range children {
		if child.IsNil() {
			b.WriteString(strings.Repeat("  ", depth+1) + StyleDim.Render("(empty slot)") + "\n")
			continue
		}
		writeOutline(b, tree, child, depth+1)
	}
}

// summarize trims a pane payload down to one short line.
func summarize(payload string) string {
	payload = strings.ReplaceAll(payload, "\n", " ")
	const maxLen = 48
	if len(payload) > maxLen {
		payload = payload[:maxLen-1] + "…"
	}
	if payload == "" {
		return StyleDim.Render("(no payload)")
	}
	return payload
}

func shortID(id tiles.TileID) string {
	s := id.String()
	if len(s) > 8 {
		s = s[:8]
	}
	return s
}
