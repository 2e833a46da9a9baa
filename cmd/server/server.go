// server streams the Mandelbrot viewer to browsers and renders stills for remote clients.
// Browsers load the wasm client, which serves mandel.Display over websocket; the server runs
// a frame loop per browser on its own CPUs. mandel.Snapshotter is served over tcp and websocket.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandel_viewer"
	"github.com/marben/mandel_viewer/render"
	"github.com/spf13/cobra"
)

type config struct {
	port                int
	rpcPort             int
	fps                 int
	iterations          int
	workers             int
	tileSize            int
	maxWidth, maxHeight int
	maxSupersample      int
}

func (cfg config) validate() error {
	if cfg.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", cfg.fps)
	}
	if cfg.iterations < 0 {
		return fmt.Errorf("iteration limit must not be negative, got %d", cfg.iterations)
	}
	if !cfg.limit().Valid() {
		return fmt.Errorf("%w: max %dx%d", mandel.ErrInvalidViewport, cfg.maxWidth, cfg.maxHeight)
	}
	if cfg.maxSupersample < 1 {
		return fmt.Errorf("max supersample must be at least 1, got %d", cfg.maxSupersample)
	}
	return nil
}

// limit is the largest frame rendered for a client.
func (cfg config) limit() mandel.Viewport {
	return mandel.Viewport{Width: cfg.maxWidth, Height: cfg.maxHeight}
}

func mainCmd() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Serve the Mandelbrot viewer over websocket and stills over irpc",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true, // main logs the error
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.port, "port", 8080, "http port serving the page, wasm client and websocket")
	flags.IntVar(&cfg.rpcPort, "rpc-port", 8081, "tcp port serving stills")
	flags.IntVar(&cfg.fps, "fps", 20, "frames per second streamed to each browser")
	flags.IntVar(&cfg.iterations, "iterations", mandel.DefaultIterations, "initial iteration limit of new sessions")
	flags.IntVar(&cfg.workers, "workers", 0, "render goroutines per session, 0 for one per CPU")
	flags.IntVar(&cfg.tileSize, "tile", render.DefaultTileSize, "render tile size in pixels")
	flags.IntVar(&cfg.maxWidth, "max-width", 1920, "largest frame width rendered for a client")
	flags.IntVar(&cfg.maxHeight, "max-height", 1080, "largest frame height rendered for a client")
	flags.IntVar(&cfg.maxSupersample, "max-supersample", 4, "largest supersampling factor of stills")

	return cmd
}

// newServers returns the irpc server for browsers, which serve mandel.Display,
// and the one for tcp clients, which don't. Both serve stills from one shared renderer.
func newServers(cfg config) (display, stills *irpc.Server) {
	snapshotterIrpcService := mandel.NewSnapshotterIrpcService(
		render.NewStills(render.New(cfg.workers, cfg.tileSize), cfg.limit(), cfg.maxSupersample),
	)

	display = irpc.NewServer(
		irpc.WithOnConnect(func(ep *irpc.Endpoint) { serveDisplay(ep, cfg) }),
		irpc.WithServices(snapshotterIrpcService),
	)
	stills = irpc.NewServer(irpc.WithServices(snapshotterIrpcService))
	return display, stills
}

func run(ctx context.Context, cfg config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	displayServer, stillsServer := newServers(cfg)

	// TCP
	log.Printf("tcp listening on port: %d", cfg.rpcPort)
	tcpListener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.rpcPort))
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, cfg.port)

	errCh := make(chan error, 3)
	go func() {
		errCh <- fmt.Errorf("httpServer: %w", httpServer.ListenAndServe())
	}()
	go func() {
		errCh <- fmt.Errorf("server.Serve tcp: %w", stillsServer.Serve(tcpListener))
	}()
	go func() {
		errCh <- fmt.Errorf("server.Serve ws: %w", displayServer.Serve(websocketListener))
	}()

	log.Printf("mb server waiting for tcp and websocket connections")
	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
		log.Printf("shutting down")
	}

	// closing the irpc servers ends every session
	if err := errors.Join(displayServer.Close(), stillsServer.Close()); err != nil {
		log.Printf("irpc server close: %v", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		runErr = errors.Join(runErr, fmt.Errorf("httpServer shutdown: %w", err))
	}
	return runErr
}

func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("run: %+v", err)
	}
}
