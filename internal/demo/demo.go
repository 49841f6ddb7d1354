// Package demo draws the test scenes shared by the hardware and simulator
// demo programs.
package demo

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/inindev/ili9488"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// Runner draws scenes on a display. Pause is called between frames; it
// defaults to time.Sleep.
type Runner struct {
	Disp  *ili9488.Device
	Pause func(time.Duration)
}

// Scene is a named demo step.
type Scene struct {
	Name string
	Run  func(r *Runner) error
}

// Scenes lists every demo in the order All runs them.
var Scenes = []Scene{
	{"fill", func(r *Runner) error { return r.ScreenFill(CMYColors) }},
	{"quadrant", func(r *Runner) error { return r.Rotate(r.Quadrant, 1500*time.Millisecond, 4) }},
	{"blocks", func(r *Runner) error { return r.Rotate(r.ColorBlocks, 500*time.Millisecond, 8) }},
	{"stacked", func(r *Runner) error { return r.Rotate(r.StackedRectangles, 1500*time.Millisecond, 6) }},
	{"text", func(r *Runner) error { return r.Text() }},
	{"scroll", func(r *Runner) error { return r.Terminal(40) }},
}

// SceneByName looks up a scene.
func SceneByName(name string) (Scene, bool) {
	for _, s := range Scenes {
		if s.Name == name {
			return s, true
		}
	}
	return Scene{}, false
}

// All runs every scene once.
func (r *Runner) All() error {
	for _, s := range Scenes {
		if err := s.Run(r); err != nil {
			return fmt.Errorf("demo %s: %w", s.Name, err)
		}
	}
	return nil
}

func (r *Runner) pause(d time.Duration) {
	if r.Pause != nil {
		r.Pause(d)
		return
	}
	time.Sleep(d)
}

// ScreenFill fills the whole screen with each color in turn.
func (r *Runner) ScreenFill(palette []uint32) error {
	for _, c := range palette {
		if err := r.Disp.FillScreen(RGB(c)); err != nil {
			return err
		}
		r.pause(time.Second)
	}
	return nil
}

// Quadrant draws a square and a cross whose colors follow the rotation.
func (r *Runner) Quadrant() error {
	cfa := []uint32{RYB_BGREEN, RYB_BPURPLE}
	cba := []uint32{RYB_YORANGE, RYB_YGREEN}

	i := r.Disp.Rotation() % 2
	if err := r.Disp.FillScreen(RGB(cba[i])); err != nil {
		return err
	}
	fg := RGB(cfa[i])
	if err := r.Disp.FillRectangle(10, 10, 50, 50, fg); err != nil {
		return err
	}
	width, height := r.Disp.Size()
	if err := r.Disp.DrawHLine(10, width-20, height/3, fg); err != nil {
		return err
	}
	return r.Disp.DrawVLine(width/2, 10, height-20, fg)
}

// ColorBlocks draws a 10x10 grid of shades.
func (r *Runner) ColorBlocks() error {
	width, height := r.Disp.Size()
	bw := width / 10
	bh := height / 10
	for x := int16(0); x < 10; x++ {
		for y := int16(0); y < 10; y++ {
			if err := r.Disp.FillRectangle(x*bw, y*bh, bw, bh, RGB(blockPalette[x][y])); err != nil {
				return err
			}
		}
	}
	return nil
}

// StackedRectangles draws four quadrants with a rectangle on top.
func (r *Runner) StackedRectangles() error {
	const (
		G_RED uint32 = 0xea4335

		CUL = CMY_BLUE
		CUR = G_RED
		CLL = RYB_GREEN
		CLR = RYB_YORANGE
		CMT = CMY_ORANGE
	)

	width, height := r.Disp.Size()
	rects := []struct {
		x, y, w, h int16
		c          uint32
	}{
		{0, 0, width / 2, height / 2, CUL},                  // upper-left
		{width / 2, 0, width / 2, height / 2, CUR},          // upper-right
		{0, height / 2, width / 2, height / 2, CLL},         // lower-left
		{width / 2, height / 2, width / 2, height / 2, CLR}, // lower-right
		{width / 4, height / 4, width / 2, height / 2, CMT}, // middle
	}
	for _, rc := range rects {
		if err := r.Disp.FillRectangle(rc.x, rc.y, rc.w, rc.h, RGB(rc.c)); err != nil {
			return err
		}
	}
	return nil
}

// Rotate runs fn count times, turning the display a quarter turn each time.
func (r *Runner) Rotate(fn func() error, delay time.Duration, count int) error {
	for i := 0; i < count; i++ {
		if err := r.Disp.SetRotation(drivers.Rotation(i % 4)); err != nil {
			return err
		}
		if err := fn(); err != nil {
			return err
		}
		r.pause(delay)
	}
	return r.Disp.SetRotation(drivers.Rotation0)
}

// Text prints the named colors with tinyfont.
func (r *Runner) Text() error {
	if err := r.Disp.FillScreen(RGB(BLACK)); err != nil {
		return err
	}
	names := []string{"white", "red", "green", "blue", "cyan", "magenta", "yellow", "orange", "pink"}
	y := int16(16)
	for _, name := range names {
		c, _ := ili9488.ColorByName(name)
		tinyfont.WriteLine(r.Disp, &proggy.TinySZ8pt7b, 10, y, name, rgba565(c))
		y += 12
	}
	r.pause(2 * time.Second)
	return nil
}

// Terminal writes lines through tinyterm until the screen scrolls with
// the hardware scroll registers.
func (r *Runner) Terminal(lines int) error {
	if err := r.Disp.FillScreen(RGB(BLACK)); err != nil {
		return err
	}
	term := tinyterm.NewTerminal(r.Disp)
	term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})
	for i := 0; i < lines; i++ {
		fmt.Fprintf(term, "\x1b[3%dmline %d\x1b[0m %s\n", 1+i%7, i, r.Disp)
		r.pause(50 * time.Millisecond)
	}
	r.Disp.StopScroll()
	return nil
}

// Bitmap draws a 24-bit BMP in the top-left corner.
func (r *Runner) Bitmap(bmp io.Reader) error {
	if err := r.Disp.FillScreen(RGB(BLACK)); err != nil {
		return err
	}
	return r.Disp.DrawBMP(0, 0, bmp)
}

func rgba565(c uint16) color.RGBA {
	return color.RGBA{
		R: uint8(c>>8) & 0xf8,
		G: uint8(c>>3) & 0xfc,
		B: uint8(c << 3),
		A: 0xff,
	}
}
