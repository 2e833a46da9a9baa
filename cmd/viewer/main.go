// viewer is the interactive desktop Mandelbrot viewer.
// Arrows change zoom and iteration limit, WASD pans, 1-7 jump to points of interest, R resets, Escape quits.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	mandel "github.com/marben/mandel_viewer"
	"github.com/marben/mandel_viewer/render"
	"github.com/spf13/cobra"
)

type config struct {
	width, height int
	iterations    int
	workers       int
	tileSize      int
	poi           int
	hud           bool
}

func mainCmd() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:   "viewer",
		Short: "Interactive Mandelbrot viewer",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.width, "width", 1280, "initial window width")
	flags.IntVar(&cfg.height, "height", 720, "initial window height")
	flags.IntVar(&cfg.iterations, "iterations", mandel.DefaultIterations, "initial iteration limit")
	flags.IntVar(&cfg.workers, "workers", 0, "render goroutines, 0 for one per CPU")
	flags.IntVar(&cfg.tileSize, "tile", render.DefaultTileSize, "render tile size in pixels")
	flags.IntVar(&cfg.poi, "poi", -1, "start at this point of interest instead of the default view")
	flags.BoolVar(&cfg.hud, "hud", false, "draw the stats line inside the window")

	return cmd
}

func run(cfg config) error {
	vp := mandel.Viewport{Width: cfg.width, Height: cfg.height}
	if !vp.Valid() {
		return fmt.Errorf("%w: %dx%d", mandel.ErrInvalidViewport, cfg.width, cfg.height)
	}
	if cfg.iterations < 0 {
		return fmt.Errorf("iteration limit must not be negative, got %d", cfg.iterations)
	}

	view := mandel.DefaultView()
	view.Iterations = float64(cfg.iterations)
	if cfg.poi >= 0 {
		p, err := mandel.POI(cfg.poi)
		if err != nil {
			return fmt.Errorf("--poi %d: %w", cfg.poi, err)
		}
		view.SetLocation(p)
	}

	g := newGame(render.New(cfg.workers, cfg.tileSize), vp, cfg.hud)
	g.loop.SetView(view)

	ebiten.SetWindowSize(cfg.width, cfg.height)
	ebiten.SetWindowTitle("Mandelbrot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// One Update per displayed frame; frame time comes from the loop's clock.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	log.Printf("starting viewer %dx%d, iteration limit %d", cfg.width, cfg.height, cfg.iterations)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
