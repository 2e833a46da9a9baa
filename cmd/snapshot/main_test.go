package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandel_viewer"
	"github.com/marben/mandel_viewer/render"
)

func TestView(t *testing.T) {
	poi, _ := mandel.POI(1)

	tests := []struct {
		name    string
		args    []string
		want    mandel.ViewState
		wantErr bool
	}{
		{"default", nil, mandel.DefaultView(), false},
		{"poi", []string{"--poi", "1"}, mandel.ViewState{X: poi.X, Y: poi.Y, Scale: poi.Scale, Iterations: mandel.DefaultIterations}, false},
		{"poi with scale override", []string{"--poi", "1", "--scale", "0.5", "--iterations", "300"}, mandel.ViewState{X: poi.X, Y: poi.Y, Scale: 0.5, Iterations: 300}, false},
		{"explicit center", []string{"--x", "-1", "--y", "0.25"}, mandel.ViewState{X: -1, Y: 0.25, Scale: mandel.DefaultScale, Iterations: mandel.DefaultIterations}, false},
		{"unknown poi", []string{"--poi", "99"}, mandel.ViewState{}, true},
		{"zero scale", []string{"--scale", "0"}, mandel.ViewState{}, true},
		{"negative iterations", []string{"--iterations", "-5"}, mandel.ViewState{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := new(config)
			cmd := newCmd(cfg)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}

			got, err := cfg.view(cmd)
			if (err != nil) != tt.wantErr {
				t.Fatalf("view err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("view = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func checkPNG(t *testing.T, out string, width, height int) {
	t.Helper()
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != width || cfg.Height != height {
		t.Errorf("image is %dx%d, want %dx%d", cfg.Width, cfg.Height, width, height)
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	cmd := mainCmd()
	cmd.SetArgs([]string{"--width", "48", "--height", "27", "--iterations", "32", "--supersample", "2", "--out", out})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	checkPNG(t, out, 48, 27)
}

func TestRunOnServer(t *testing.T) {
	stills := render.NewStills(render.New(2, 16), mandel.Viewport{Width: 64, Height: 64}, 2)
	server := irpc.NewServer(irpc.WithServices(mandel.NewSnapshotterIrpcService(stills)))
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go server.Serve(l)
	defer server.Close()

	out := filepath.Join(t.TempDir(), "out.png")
	cmd := mainCmd()
	cmd.SetArgs([]string{"--server", l.Addr().String(), "--poi", "2", "--width", "40", "--height", "30", "--supersample", "2", "--out", out})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	checkPNG(t, out, 40, 30)

	// over the server's limit
	cmd = mainCmd()
	cmd.SetArgs([]string{"--server", l.Addr().String(), "--width", "100", "--height", "30", "--out", out})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("oversized remote render succeeded")
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()

	out := filepath.Join(dir, "ok.png")
	if err := writePNG(out, image.NewRGBA(image.Rect(0, 0, 5, 3))); err != nil {
		t.Fatal(err)
	}
	checkPNG(t, out, 5, 3)

	if err := writePNG(filepath.Join(dir, "missing", "out.png"), image.NewRGBA(image.Rect(0, 0, 5, 3))); err == nil {
		t.Error("write into a missing directory succeeded")
	}

	// png refuses empty images; the encode error wins over a clean close
	err := writePNG(filepath.Join(dir, "empty.png"), image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if err == nil || !strings.Contains(err.Error(), "encode") {
		t.Errorf("empty image: err = %v", err)
	}
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	cmd := mainCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--list"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(mandel.POIs()) {
		t.Fatalf("listed %d points, want %d:\n%s", len(lines), len(mandel.POIs()), buf.String())
	}
	if !strings.Contains(lines[0], "x=-0.7104275066275000") {
		t.Errorf("first line = %q", lines[0])
	}
}
