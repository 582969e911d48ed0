// Command vpdemo replays a gesture script through a viewport engine and
// renders the resulting view as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/config"
	"github.com/gogpu/viewport/preview"
	"github.com/gogpu/viewport/script"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		scriptPath = flag.String("script", "", "JSON gesture script")
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		output     = flag.String("output", "viewport.png", "output file")
		verbose    = flag.Bool("v", false, "log engine transitions")
	)
	flag.Parse()

	if *verbose {
		viewport.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := viewport.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	e, err := viewport.New(viewport.WithConfig(cfg))
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		changed, err := script.Run(e, data)
		if err != nil {
			log.Fatalf("Failed to run script: %v", err)
		}
		log.Printf("Script applied, %d steps changed the view", changed)
	}

	dc := gg.NewContext(*width, *height)
	defer dc.Close()

	if err := preview.Render(dc, e.Transform(), preview.SceneFunc(drawScene)); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("View %v saved to %s (%dx%d)\n", e.Transform(), *output, *width, *height)
}

// drawScene draws a few canvas-space nodes and edges.
func drawScene(dc *gg.Context) {
	type node struct {
		x, y, w, h float64
		color      gg.RGBA
	}
	nodes := []node{
		{80, 80, 160, 90, gg.Hex("#e76f51")},
		{360, 60, 160, 90, gg.Hex("#2a9d8f")},
		{220, 280, 200, 110, gg.Hex("#e9c46a")},
		{520, 300, 140, 80, gg.Hex("#264653")},
	}

	dc.SetRGB(0.4, 0.4, 0.45)
	dc.SetLineWidth(3)
	for _, edge := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}} {
		a, b := nodes[edge[0]], nodes[edge[1]]
		dc.MoveTo(a.x+a.w/2, a.y+a.h/2)
		dc.LineTo(b.x+b.w/2, b.y+b.h/2)
		_ = dc.Stroke()
	}

	for _, n := range nodes {
		dc.SetColor(n.color)
		dc.DrawRoundedRectangle(n.x, n.y, n.w, n.h, 12)
		_ = dc.Fill()
	}

	// A circle at the canvas origin marks where the axes cross.
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(0, 0, 6)
	_ = dc.Fill()
	dc.DrawArc(0, 0, 12, 0, math.Pi/2)
	_ = dc.Stroke()
}
