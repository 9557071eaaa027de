package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhellweg/dockyard/pkg/geom"
	"github.com/mhellweg/dockyard/pkg/tiles"
)

// doubleClickWindow is how quickly two presses at the same cell count as
// a double-click.
const doubleClickWindow = 400 * time.Millisecond

// demoCommand creates the demo command running the interactive TUI.
func (c *CLI) demoCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive terminal layout demo",
		Long: `Run the interactive terminal layout demo.

The demo hosts a layout tree in the terminal. Drag tabs with the mouse to
rearrange panes, drag the borders between panes to resize them, and
double-click a border to even out the split.

Keys:
  n      add a new pane
  s / l  save / load the layout
  q      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFile
			if path == "" {
				var err error
				if path, err = configPath(); err != nil {
					return fmt.Errorf("locate config: %w", err)
				}
			}
			cfg, err := LoadConfig(path)
			if err != nil {
				return err
			}
			return c.runDemo(cfg)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default ~/.config/dockyard/config.toml)")

	return cmd
}

func (c *CLI) runDemo(cfg Config) error {
	model := newDemoModel(cfg, c.Logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// demoPane is the payload the demo stores in each pane tile.
type demoPane struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// demoBehavior adapts the engine's callbacks to the cell canvas.
type demoBehavior struct {
	tiles.DefaultBehavior
	cfg    Config
	canvas *cellCanvas
	logger *charmlog.Logger
	edits  int
}

func (b *demoBehavior) TabBarHeight() float64  { return b.cfg.TabBarHeight }
func (b *demoBehavior) GapWidth() float64      { return b.cfg.GapWidth }
func (b *demoBehavior) MinSize() float64       { return b.cfg.MinSize }
func (b *demoBehavior) DragThreshold() float64 { return b.cfg.DragThreshold }

func (b *demoBehavior) TabTitle(pane any) string {
	if p, ok := pane.(demoPane); ok {
		return p.Title
	}
	return fmt.Sprintf("%v", pane)
}

// TabButtonWidth sizes a button to its bracketed title.
func (b *demoBehavior) TabButtonWidth(title string) float64 {
	return float64(len([]rune(title)) + 3)
}

func (b *demoBehavior) PaneUI(_ tiles.TileID, pane any, rect geom.Rect) tiles.PaneResponse {
	b.canvas.drawBox(rect)
	if p, ok := pane.(demoPane); ok {
		inner := rect.Shrink(1)
		b.canvas.writeString(cell(inner.Min.X), cell(inner.Min.Y), int(inner.Width()), p.Body)
	}
	return tiles.PaneResponse{}
}

func (b *demoBehavior) TabUI(ts *tiles.Tiles, id tiles.TileID, rect geom.Rect, state tiles.TabState) {
	title := "?"
	if tile, ok := ts.Get(id); ok {
		if tile.IsPane() {
			title = b.TabTitle(tile.Pane)
		} else {
			title = tile.Container.Kind().String()
		}
	}
	marker := " "
	switch {
	case state.BeingDragged:
		marker = "~"
	case state.Active:
		marker = "▸"
	}
	b.canvas.writeString(cell(rect.Min.X), cell(rect.Min.Y), int(rect.Width()), marker+"["+title+"]")
}

func (b *demoBehavior) IsTabClosable(*tiles.Tiles, tiles.TileID) bool { return true }

func (b *demoBehavior) OnEdit(action tiles.EditAction) {
	b.edits++
	b.logger.Debug("tree edited", "action", action, "edits", b.edits)
}

// The demo keeps every pane behind a tab so everything can be dragged by
// its tab button.
func (b *demoBehavior) SimplificationOptions() tiles.SimplificationOptions {
	opts := tiles.DefaultSimplificationOptions()
	opts.AllPanesMustHaveTabs = true
	return opts
}

// demoModel is the bubbletea model hosting the tree.
type demoModel struct {
	tree     *tiles.Tree
	behavior *demoBehavior
	cfg      Config
	logger   *charmlog.Logger

	width, height int
	canvas        *cellCanvas
	resp          tiles.FrameResponse
	status        string

	pointer     geom.Pos
	primaryDown bool
	lastClick   time.Time
	lastClickAt geom.Pos
	paneSeq     int
}

func newDemoModel(cfg Config, logger *charmlog.Logger) *demoModel {
	tree := tiles.NewHorizontalTree(
		demoPane{Title: "one", Body: "drag my tab"},
		demoPane{Title: "two", Body: "resize my border"},
		demoPane{Title: "three", Body: "double-click a border"},
	)
	tree.SetLogger(logger)

	canvas := newCanvas(1, 1)
	return &demoModel{
		tree:     tree,
		behavior: &demoBehavior{cfg: cfg, canvas: canvas, logger: logger},
		cfg:      cfg,
		logger:   logger,
		canvas:   canvas,
		paneSeq:  3,
		status:   "n: new pane  s/l: save/load  q: quit",
	}
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 1 // bottom row is the status bar
		if m.height < 3 {
			m.height = 3
		}
		m.canvas = newCanvas(m.width, m.height)
		m.behavior.canvas = m.canvas
		m.runFrame(false)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.runFrame(true)
		case "n":
			m.addPane()
			m.runFrame(false)
		case "s":
			m.status = m.saveLayout()
			m.runFrame(false)
		case "l":
			m.status = m.loadLayout()
			m.runFrame(false)
		}

	case tea.MouseMsg:
		m.pointer = geom.P(float64(msg.X), float64(msg.Y))
		double := false
		if msg.Button == tea.MouseButtonLeft {
			switch msg.Action {
			case tea.MouseActionPress:
				now := time.Now()
				double = now.Sub(m.lastClick) < doubleClickWindow && m.pointer == m.lastClickAt
				m.lastClick = now
				m.lastClickAt = m.pointer
				m.primaryDown = true
			case tea.MouseActionRelease:
				m.primaryDown = false
			}
		}
		m.frameWithDoubleClick(double)
	}
	return m, nil
}

func (m *demoModel) runFrame(cancel bool) {
	m.frame(tiles.Input{Pointer: m.pointer, PrimaryDown: m.primaryDown, Cancel: cancel})
}

func (m *demoModel) frameWithDoubleClick(double bool) {
	m.frame(tiles.Input{Pointer: m.pointer, PrimaryDown: m.primaryDown, DoubleClicked: double})
}

func (m *demoModel) frame(input tiles.Input) {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.canvas.clear()
	rect := geom.NewRect(0, 0, float64(m.width), float64(m.height))
	m.resp = m.tree.Frame(m.behavior, rect, input)
	if m.resp.Phase == tiles.DragActive && m.resp.Insertion != nil {
		m.canvas.shade(m.resp.Preview)
	}
}

func (m *demoModel) View() string {
	bar := m.statusBar()
	return m.canvas.String() + "\n" + bar
}

func (m *demoModel) statusBar() string {
	left := StyleTitle.Render(appName)
	state := StyleDim.Render(m.status)
	if m.resp.Phase == tiles.DragActive {
		state = StyleWarning.Render("moving tile, release to drop")
	} else if m.resp.ResizeHover {
		state = StyleHighlight.Render("drag to resize, double-click to even out")
	}
	return left + "  " + state
}

// addPane appends a fresh pane to the root container, or roots the tree
// with it when everything has been closed.
func (m *demoModel) addPane() {
	m.paneSeq++
	pane := demoPane{Title: fmt.Sprintf("pane %d", m.paneSeq), Body: "fresh pane"}
	id := m.tree.Tiles().InsertPane(pane)

	if m.tree.IsEmpty() {
		m.tree.SetRoot(id)
		return
	}
	root := m.tree.Root()
	kind := tiles.KindTabs
	if tile, ok := m.tree.Get(root); ok && tile.IsContainer() {
		kind = tile.Container.Kind()
	}
	at := tiles.InsertionPoint{Parent: root, Kind: kind, Index: 1 << 20}
	if err := m.tree.MoveTile(id, at); err != nil {
		m.logger.Warn("add pane", "err", err)
	}
}

func (m *demoModel) layoutFile() string {
	if m.cfg.LayoutFile != "" {
		return m.cfg.LayoutFile
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, ".cache", appName, "layout.toml")
}

func (m *demoModel) saveLayout() string {
	snap, err := m.tree.Snapshot(encodeDemoPane)
	if err != nil {
		return "save failed: " + err.Error()
	}
	path := m.layoutFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "save failed: " + err.Error()
	}
	f, err := os.Create(path)
	if err != nil {
		return "save failed: " + err.Error()
	}
	defer f.Close()
	if err := snap.EncodeTOML(f); err != nil {
		return "save failed: " + err.Error()
	}
	return "layout saved to " + path
}

func (m *demoModel) loadLayout() string {
	f, err := os.Open(m.layoutFile())
	if err != nil {
		return "load failed: " + err.Error()
	}
	defer f.Close()

	snap, err := tiles.DecodeSnapshotTOML(f)
	if err != nil {
		return "load failed: " + err.Error()
	}
	tree, err := tiles.FromSnapshot(snap, decodeDemoPane)
	if err != nil {
		return "load failed: " + err.Error()
	}
	tree.SetLogger(m.logger)
	m.tree = tree
	return "layout loaded"
}

func encodeDemoPane(pane any) (string, error) {
	p, ok := pane.(demoPane)
	if !ok {
		return "", fmt.Errorf("unexpected pane payload %T", pane)
	}
	data, err := json.Marshal(p)
	return string(data), err
}

func decodeDemoPane(payload string) (any, error) {
	var p demoPane
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, err
	}
	return p, nil
}
