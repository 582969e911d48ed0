// Command vpterm is an interactive terminal viewport explorer.
//
// Ctrl+wheel zooms around the mouse, the wheel and arrow keys pan, and
// dragging with the left button pans. + and - zoom in steps, 0 resets
// and q quits.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/config"
	"github.com/gogpu/viewport/integration/termview"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		logPath    = flag.String("log", "", "write debug log to file")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		viewport.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	w, h := screen.Size()
	c := termview.NewController(e, w, h)
	nodes := []gg.Rect{
		gg.NewRect(gg.Pt(10, 6), gg.Pt(24, 14)),
		gg.NewRect(gg.Pt(36, 4), gg.Pt(50, 12)),
		gg.NewRect(gg.Pt(20, 24), gg.Pt(40, 34)),
		gg.NewRect(gg.Pt(-30, -20), gg.Pt(-12, -8)),
	}

	var cursorX, cursorY int
	c.Draw(screen, nodes, cursorX, cursorY)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if m, ok := ev.(*tcell.EventMouse); ok {
			cursorX, cursorY = m.Position()
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		if _, quit := c.Handle(ev); quit {
			return
		}
		c.Draw(screen, nodes, cursorX, cursorY)
	}
}
