//go:build !tinygo

// Command ili9488-sim runs the demo scenes against the simulated panel and
// shows the result in a window, or writes the final frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/inindev/ili9488"
	"github.com/inindev/ili9488/internal/demo"
	"github.com/inindev/ili9488/sim"
	"tinygo.org/x/drivers"
)

var (
	scene    = flag.String("scene", "all", "Scene to run: all, fill, quadrant, blocks, stacked, text, scroll")
	rotation = flag.Int("rotation", 0, "Initial rotation in quarter turns")
	rgb666   = flag.Bool("18bpp", false, "Use the 18 bpp interface pixel format")
	bmpFile  = flag.String("bmp", "", "24-bit BMP to draw after the scenes")
	pngFile  = flag.String("png", "", "Run without a window and write the last frame to this file")
	scale    = flag.Int("scale", 2, "Window scale factor")
	verbose  = flag.Bool("v", false, "Log every command")
)

func main() {
	flag.Parse()

	panel := sim.NewPanel(false)
	disp := ili9488.New(panel, ili9488.BusSerial, ili9488.Pins{DC: panel.DC()})

	cfg := ili9488.Config{Rotation: drivers.Rotation(*rotation)}
	if *rgb666 {
		cfg.PixelFormat = ili9488.PixelFormat18
	}
	if *verbose {
		cfg.Logger = log.New(os.Stderr, "ili9488: ", log.Lmicroseconds)
	}
	if err := disp.Configure(cfg); err != nil {
		log.Fatalf("Failed to configure display: %v", err)
	}

	r := &demo.Runner{Disp: disp}
	if *pngFile != "" {
		r.Pause = func(time.Duration) {}
		if err := run(r); err != nil {
			log.Fatal(err)
		}
		if err := writePNG(*pngFile, panel.Frame()); err != nil {
			log.Fatal(err)
		}
		return
	}

	go func() {
		if err := run(r); err != nil {
			log.Print(err)
		}
	}()

	g := &game{panel: panel}
	w, h := int(ili9488.TFT_DEFAULT_WIDTH), int(ili9488.TFT_DEFAULT_HEIGHT)
	ebiten.SetWindowTitle(fmt.Sprintf("ILI9488 %dx%d", w, h))
	ebiten.SetWindowSize(w**scale, h**scale)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func run(r *demo.Runner) error {
	var err error
	if *scene == "all" {
		err = r.All()
	} else if s, ok := demo.SceneByName(*scene); ok {
		err = s.Run(r)
	} else {
		return fmt.Errorf("unknown scene: %s", *scene)
	}
	if err != nil || *bmpFile == "" {
		return err
	}

	f, err := os.Open(*bmpFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Bitmap(f)
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// game shows the panel's glass. The demo draws from its own goroutine;
// the panel serializes access to frame memory.
type game struct {
	panel *sim.Panel
	img   *image.RGBA
}

func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, int(ili9488.TFT_DEFAULT_WIDTH), int(ili9488.TFT_DEFAULT_HEIGHT)))
	}
	g.panel.FrameInto(g.img)
	screen.WritePixels(g.img.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(ili9488.TFT_DEFAULT_WIDTH), int(ili9488.TFT_DEFAULT_HEIGHT)
}
