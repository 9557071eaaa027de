package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhellweg/dockyard/pkg/cache"
	"github.com/mhellweg/dockyard/pkg/observability"
	"github.com/mhellweg/dockyard/pkg/tiles"
	"github.com/mhellweg/dockyard/pkg/treeviz"
)

// renderCacheTTL is how long cached SVG renders stay valid.
const renderCacheTTL = 7 * 24 * time.Hour

// vizCommand creates the viz command for rendering a saved layout.
func (c *CLI) vizCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "viz [layout.toml]",
		Short: "Render a saved layout as a Graphviz diagram",
		Long: `Render a saved layout as a Graphviz diagram.

The viz command takes a layout snapshot (produced by the demo's save key or
any host using the snapshot format) and renders the container tree to DOT
or SVG. Container nodes show their kind, pane nodes their payload, and the
active tab path is drawn with heavier edges.

SVG renders are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "dot" && format != "svg" {
				return fmt.Errorf("unknown format %q, want dot or svg", format)
			}
			return c.runViz(cmd.Context(), args[0], format, output, detailed, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include tile IDs and shares in node labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable render caching")

	return cmd
}

// runViz loads the snapshot and renders it.
func (c *CLI) runViz(ctx context.Context, input, format, output string, detailed, noCache bool) error {
	logger := loggerFromContext(ctx)
	observability.SetCacheHooks(&logCacheHooks{logger: logger})
	observability.SetRenderHooks(&logRenderHooks{logger: logger})

	tree, err := loadSnapshotTree(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded layout", "file", input, "tiles", tree.Tiles().Len())

	dot := treeviz.ToDOT(tree, tiles.DefaultBehavior{}, treeviz.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = c.renderSVG(ctx, dot, noCache)
		if err != nil {
			return err
		}
	}

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Printf("%s %s\n", StyleHighlight.Render("wrote"), output)
	return nil
}

// renderSVG renders DOT to SVG through the render cache.
func (c *CLI) renderSVG(ctx context.Context, dot string, noCache bool) ([]byte, error) {
	store, err := c.renderCache(noCache)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	key := cache.RenderKey("svg", []byte(dot))
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		return data, nil
	}

	data, err := treeviz.RenderSVG(ctx, dot)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	if err := store.Set(ctx, key, data, renderCacheTTL); err != nil {
		c.Logger.Warn("cache render", "err", err)
	}
	return data, nil
}

func (c *CLI) renderCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the render cache location using the XDG standard
// (~/.cache/dockyard/render).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName, "render"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName, "render"), nil
}

// loadSnapshotTree reads a snapshot file and rebuilds the tree, keeping
// pane payloads as their raw encoded strings.
func loadSnapshotTree(path string) (*tiles.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout %s: %w", path, err)
	}
	defer f.Close()

	snap, err := tiles.DecodeSnapshotTOML(f)
	if err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	tree, err := tiles.FromSnapshot(snap, func(payload string) (any, error) {
		return payload, nil
	})
	if err != nil {
		return nil, fmt.Errorf("rebuild layout %s: %w", path, err)
	}
	return tree, nil
}

// logCacheHooks logs cache activity at debug level.
type logCacheHooks struct {
	observability.NoopCacheHooks
	logger *charmlog.Logger
}

func (h *logCacheHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("render cache hit", "key", key)
}

func (h *logCacheHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("render cache miss", "key", key)
}

// logRenderHooks logs render timing at debug level.
type logRenderHooks struct {
	observability.NoopRenderHooks
	logger *charmlog.Logger
}

func (h *logRenderHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "duration", d)
}
