// snapshot renders one view of the Mandelbrot set and saves it as a PNG file.
// The view is the default one, a point of interest, or an explicit center and scale.
// With --server the image is rendered by a running Mandelbrot server instead of locally.

package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"net"
	"os"
	"time"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandel_viewer"
	"github.com/marben/mandel_viewer/render"
	"github.com/spf13/cobra"
)

type config struct {
	poi           int
	x, y, scale   float64
	iterations    int
	width, height int
	supersample   int
	workers       int
	out           string
	server        string
	list          bool
}

// view resolves the requested view. Explicitly set x, y or scale flags
// override the point of interest.
func (cfg config) view(cmd *cobra.Command) (mandel.ViewState, error) {
	v := mandel.DefaultView()
	if cfg.poi >= 0 {
		p, err := mandel.POI(cfg.poi)
		if err != nil {
			return v, fmt.Errorf("--poi %d: %w", cfg.poi, err)
		}
		v.SetLocation(p)
	}

	flags := cmd.Flags()
	if flags.Changed("x") {
		v.X = cfg.x
	}
	if flags.Changed("y") {
		v.Y = cfg.y
	}
	if flags.Changed("scale") {
		if cfg.scale <= 0 {
			return v, fmt.Errorf("scale must be positive, got %g", cfg.scale)
		}
		v.Scale = cfg.scale
	}
	if cfg.iterations < 0 {
		return v, fmt.Errorf("iteration limit must not be negative, got %d", cfg.iterations)
	}
	v.Iterations = float64(cfg.iterations)
	return v, nil
}

func mainCmd() *cobra.Command {
	return newCmd(new(config))
}

// newCmd binds the command's flags to cfg.
func newCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "snapshot",
		Short:         "Render a Mandelbrot view to PNG",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true, // main logs the error
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.list {
				listPOIs(cmd.OutOrStdout())
				return nil
			}
			v, err := cfg.view(cmd)
			if err != nil {
				return err
			}
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(cmd.Context(), *cfg, v)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.poi, "poi", -1, "point of interest to render, -1 for the default view")
	flags.Float64Var(&cfg.x, "x", mandel.DefaultX, "view center, real part")
	flags.Float64Var(&cfg.y, "y", mandel.DefaultY, "view center, imaginary part")
	flags.Float64Var(&cfg.scale, "scale", mandel.DefaultScale, "half of the visible imaginary extent")
	flags.IntVar(&cfg.iterations, "iterations", mandel.DefaultIterations, "iteration limit")
	flags.IntVar(&cfg.width, "width", 1920, "image width")
	flags.IntVar(&cfg.height, "height", 1080, "image height")
	flags.IntVar(&cfg.supersample, "supersample", 1, "render at this multiple of the resolution and downscale")
	flags.IntVar(&cfg.workers, "workers", 0, "render goroutines, 0 for one per CPU")
	flags.StringVarP(&cfg.out, "out", "o", "mandel.png", "output file")
	flags.StringVar(&cfg.server, "server", "", "render on the Mandelbrot server at this tcp address instead of locally")
	flags.BoolVar(&cfg.list, "list", false, "list the points of interest and exit")

	return cmd
}

func listPOIs(w io.Writer) {
	for i, p := range mandel.POIs() {
		fmt.Fprintf(w, "%d\t%-26s x=%.016f y=%.016f scale=%.03e\n", i, p.Name, p.X, p.Y, p.Scale)
	}
}

// run renders the view and saves it as a PNG file.
func run(ctx context.Context, cfg config, v mandel.ViewState) error {
	vp := mandel.Viewport{Width: cfg.width, Height: cfg.height}
	log.Printf("Rendering %dx%d at x=%.016f y=%.016f scale=%.03e, iteration limit %d...",
		vp.Width, vp.Height, v.X, v.Y, v.Scale, v.IterationLimit())

	start := time.Now()
	var img image.Image
	if cfg.server != "" {
		rgba, err := renderRemote(ctx, cfg.server, v, vp, cfg.supersample)
		if err != nil {
			return fmt.Errorf("render on %s: %w", cfg.server, err)
		}
		img = &rgba
	} else {
		rgba, err := render.New(cfg.workers, 0).Still(ctx, mandel.Params(v, vp), cfg.supersample)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		img = rgba
	}
	log.Printf("Rendered in %s", time.Since(start))

	if err := writePNG(cfg.out, img); err != nil {
		return err
	}
	log.Printf("Image saved to %q", cfg.out)
	return nil
}

// renderRemote asks the server at addr for the still.
func renderRemote(ctx context.Context, addr string, v mandel.ViewState, vp mandel.Viewport, supersample int) (image.RGBA, error) {
	log.Printf("Connecting to Mandelbrot server on %s...", addr)
	var d net.Dialer
	tcpConn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return image.RGBA{}, fmt.Errorf("failed to connect to server: %w", err)
	}

	ep := irpc.NewEndpoint(tcpConn)
	defer ep.Close()

	client, err := mandel.NewSnapshotterIrpcClient(ep)
	if err != nil {
		return image.RGBA{}, fmt.Errorf("failed to create Snapshotter client: %w", err)
	}
	img, err := client.Snapshot(ctx, v, vp, supersample)
	if err != nil {
		return image.RGBA{}, fmt.Errorf("client.Snapshot: %w", err)
	}
	return img, nil
}

// writePNG encodes img into a new file. The file is closed exactly once and
// a failed close is reported unless encoding already failed.
func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}
