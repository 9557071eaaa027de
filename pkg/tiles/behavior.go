package tiles

import (
	"fmt"
	"math"

	"github.com/mhellweg/dockyard/pkg/geom"
)

// EditAction describes the kind of structural edit that triggered a call
// to [Behavior.OnEdit], for host-side bookkeeping or undo support.
type EditAction int

const (
	// TileInserted: a tile was attached to a container.
	TileInserted EditAction = iota
	// TileRemoved: a tile was detached and deleted.
	TileRemoved
	// TileDragged: a drag gesture passed the movement threshold.
	TileDragged
	// TileDropped: a drag completed and the tile changed position.
	TileDropped
	// TileResized: a divider was dragged or double-clicked.
	TileResized
	// TabSelected: a tab became active, by click or hover-during-drag.
	TabSelected
)

func (a EditAction) String() string {
	switch a {
	case TileInserted:
		return "inserted"
	case TileRemoved:
		return "removed"
	case TileDragged:
		return "dragged"
	case TileDropped:
		return "dropped"
	case TileResized:
		return "resized"
	case TabSelected:
		return "tab-selected"
	default:
		return "unknown"
	}
}

// TabState informs the rendering of one tab button.
type TabState struct {
	// Active: is this the open tab?
	Active bool

	// BeingDragged: is the tab currently being dragged away?
	BeingDragged bool

	// Closable: should the tab show a close affordance?
	Closable bool
}

// PaneResponse is what [Behavior.PaneUI] reports back to the engine.
type PaneResponse struct {
	// DragStarted is set when the user began dragging the pane via some
	// element inside it (e.g. a title bar the host draws).
	DragStarted bool
}

// Behavior is the capability a host implements to give the tree its look
// and feel. The engine calls it during the frame pass to paint pane
// bodies and tab buttons, to query titles and style hints, and to notify
// the host of structural edits.
//
// Embed [DefaultBehavior] and override only what you need.
type Behavior interface {
	// PaneUI renders a pane's body into its assigned rectangle.
	PaneUI(id TileID, pane any, rect geom.Rect) PaneResponse

	// TabTitle returns the display title for a pane's tab.
	TabTitle(pane any) string

	// TabUI renders one tab button. The engine has already computed the
	// button rectangle and handles clicks and drags on it.
	TabUI(ts *Tiles, id TileID, rect geom.Rect, state TabState)

	// TabButtonWidth returns the width of a tab button for the given
	// title. The engine cannot measure text, so the host supplies this.
	TabButtonWidth(title string) float64

	// IsTabClosable reports whether a tab should carry a close affordance.
	IsTabClosable(ts *Tiles, id TileID) bool

	// OnTabClose is called when a tab's close affordance is activated.
	// Return false to veto the close.
	OnTabClose(ts *Tiles, id TileID) bool

	// RetainPane returns false if the pane should be removed from the tree.
	RetainPane(pane any) bool

	// OnEdit is called after the user edits the tree somehow.
	OnEdit(action EditAction)

	// TabBarHeight is the height of the strip holding tab titles.
	TabBarHeight() float64

	// GapWidth is the thickness of the divider strip between children of a
	// linear container and between grid rows/columns. The strip doubles as
	// the resize handle.
	GapWidth() float64

	// MinSize is the width and height below which no child shrinks
	// during a resize.
	MinSize() float64

	// DragThreshold is how far the pointer must travel before an armed
	// press becomes a drag.
	DragThreshold() float64

	// GridAutoColumnCount picks a column count for an auto grid showing n
	// children in the given rectangle.
	GridAutoColumnCount(n int, rect geom.Rect, gap float64) int

	// SimplificationOptions returns the tree's canonicalization rules.
	SimplificationOptions() SimplificationOptions
}

// DefaultBehavior provides the default for every [Behavior] method except
// the two a host must define to be useful: PaneUI and TabTitle (the
// defaults render nothing and print the payload). Embed it in your own
// behavior and override selectively.
type DefaultBehavior struct{}

// PaneUI renders nothing.
func (DefaultBehavior) PaneUI(TileID, any, geom.Rect) PaneResponse { return PaneResponse{} }

// TabTitle formats the payload with %v.
func (DefaultBehavior) TabTitle(pane any) string { return fmt.Sprintf("%v", pane) }

// TabUI renders nothing.
func (DefaultBehavior) TabUI(*Tiles, TileID, geom.Rect, TabState) {}

// TabButtonWidth estimates one cell per rune plus padding, which matches
// terminal hosts; pixel hosts should override with real text metrics.
func (DefaultBehavior) TabButtonWidth(title string) float64 {
	return float64(len([]rune(title))) + 4
}

// IsTabClosable defaults to no close affordance.
func (DefaultBehavior) IsTabClosable(*Tiles, TileID) bool { return false }

// OnTabClose allows the close.
func (DefaultBehavior) OnTabClose(*Tiles, TileID) bool { return true }

// RetainPane keeps every pane.
func (DefaultBehavior) RetainPane(any) bool { return true }

// OnEdit ignores the notification.
func (DefaultBehavior) OnEdit(EditAction) {}

// TabBarHeight defaults to 24.
func (DefaultBehavior) TabBarHeight() float64 { return 24 }

// GapWidth defaults to 4.
func (DefaultBehavior) GapWidth() float64 { return 4 }

// MinSize defaults to 32.
func (DefaultBehavior) MinSize() float64 { return 32 }

// DragThreshold defaults to 6.
func (DefaultBehavior) DragThreshold() float64 { return 6 }

// GridAutoColumnCount uses [ColumnCountHeuristic] with a 4:3 ideal cell.
func (DefaultBehavior) GridAutoColumnCount(n int, rect geom.Rect, gap float64) int {
	return ColumnCountHeuristic(n, rect.Width(), rect.Height(), gap, 4.0/3.0)
}

// SimplificationOptions defaults to [DefaultSimplificationOptions].
func (DefaultBehavior) SimplificationOptions() SimplificationOptions {
	return DefaultSimplificationOptions()
}

// ColumnCountHeuristic picks how many columns to use to fit n children in
// a width×height area, aiming for cells close to the desired aspect ratio.
//
// Every candidate count is scored by the aspect error of its cells plus a
// penalty of two per empty trailing cell; the lowest loss wins. For n ≥ 4
// the count n-1 is skipped outright since it always produces a single
// orphan on the last row.
func ColumnCountHeuristic(n int, width, height, gap, desiredAspect float64) int {
	bestLoss := math.Inf(1)
	bestCols := 1

	for cols := 1; cols <= n; cols++ {
		if n >= 4 && cols == n-1 {
			continue
		}

		rows := (n + cols - 1) / cols

		cellWidth := (width - gap*float64(cols-1)) / float64(cols)
		cellHeight := (height - gap*float64(rows-1)) / float64(rows)

		aspectDiff := math.Abs(desiredAspect - cellWidth/cellHeight)
		emptyCells := cols*rows - n

		loss := aspectDiff*float64(n) + 2*float64(emptyCells)
		if loss < bestLoss {
			bestLoss = loss
			bestCols = cols
		}
	}
	return bestCols
}
