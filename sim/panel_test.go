package sim

import (
	"testing"

	"github.com/inindev/ili9488"
	"tinygo.org/x/drivers"
)

func newDevice(t *testing.T, parallel bool, cfg ili9488.Config) (*ili9488.Device, *Panel) {
	t.Helper()
	p := NewPanel(parallel)
	bus := ili9488.BusSerial
	if parallel {
		bus = ili9488.BusParallel8
	}
	d := ili9488.New(p, bus, ili9488.Pins{DC: p.DC()})
	if err := d.Configure(cfg); err != nil {
		t.Fatalf("Configure() = %v", err)
	}
	return d, p
}

func TestConfigureState(t *testing.T) {
	_, p := newDevice(t, false, ili9488.Config{})
	if p.sleeping || !p.on {
		t.Error("panel asleep or off after Configure")
	}
	if p.colmod != ili9488.PIXFMT_16BPP {
		t.Errorf("COLMOD = %#02x, want 0x55", p.colmod)
	}
	if p.MADCTL() != 0 {
		t.Errorf("MADCTL = %#02x, want 0", p.MADCTL())
	}
}

func TestFillScreen(t *testing.T) {
	d, p := newDevice(t, false, ili9488.Config{})
	if err := d.WriteFillRectPreclipped(0, 0, 320, 480, ili9488.WHITE); err != nil {
		t.Fatal(err)
	}
	log := p.Log()
	if last := log[len(log)-1]; last.Cmd != ili9488.CMD_RAMWR || last.Pixels != 153600 {
		t.Errorf("last command %#02x with %d pixels, want RAMWR with 153600", last.Cmd, last.Pixels)
	}
	for _, pt := range [][2]int{{0, 0}, {319, 0}, {0, 479}, {319, 479}, {160, 240}} {
		if c := p.Pixel(pt[0], pt[1]); c != ili9488.WHITE {
			t.Errorf("pixel %v = %#04x, want white", pt, c)
		}
	}
}

// TestRotationGeometry draws a marker at the logical origin and checks
// which physical corner it lands in.
func TestRotationGeometry(t *testing.T) {
	tests := []struct {
		rot    drivers.Rotation
		mirror bool
		x, y   int // physical corner of the logical origin
		xAxis  [2]int
	}{
		{drivers.Rotation0, false, 0, 0, [2]int{1, 0}},
		{drivers.Rotation90, false, 319, 0, [2]int{0, 1}},
		{drivers.Rotation180, false, 319, 479, [2]int{-1, 0}},
		{drivers.Rotation270, false, 0, 479, [2]int{0, -1}},
		{drivers.Rotation0, true, 319, 0, [2]int{-1, 0}},
		{drivers.Rotation180, true, 0, 479, [2]int{1, 0}},
	}
	for _, tt := range tests {
		d, p := newDevice(t, false, ili9488.Config{Rotation: tt.rot, Mirror: tt.mirror})
		d.WriteFillRectPreclipped(0, 0, 2, 1, ili9488.RED)

		if c := p.Pixel(tt.x, tt.y); c != ili9488.RED {
			t.Errorf("rotation %d mirror %v: origin not at physical (%d, %d)", tt.rot, tt.mirror, tt.x, tt.y)
		}
		nx, ny := tt.x+tt.xAxis[0], tt.y+tt.xAxis[1]
		if c := p.Pixel(nx, ny); c != ili9488.RED {
			t.Errorf("rotation %d mirror %v: logical x axis not towards (%d, %d)", tt.rot, tt.mirror, nx, ny)
		}
	}
}

func TestRotatedFullScreen(t *testing.T) {
	for rot := drivers.Rotation(0); rot < 4; rot++ {
		d, p := newDevice(t, false, ili9488.Config{Rotation: rot})
		w, h := d.Size()
		d.WriteFillRectPreclipped(0, 0, w, h, ili9488.CYAN)
		for y := 0; y < 480; y += 31 {
			for x := 0; x < 320; x += 29 {
				if c := p.Pixel(x, y); c != ili9488.CYAN {
					t.Fatalf("rotation %d: pixel (%d, %d) not filled", rot, x, y)
				}
			}
		}
	}
}

func TestWritePixelLogical(t *testing.T) {
	d, p := newDevice(t, false, ili9488.Config{Rotation: drivers.Rotation90})
	d.WritePixel(10, 20, ili9488.BLUE)
	if c, ok := p.LogicalPixel(10, 20); !ok || c != ili9488.BLUE {
		t.Errorf("LogicalPixel(10, 20) = %#04x, %v", c, ok)
	}
}

func TestPixelFormat18(t *testing.T) {
	d, p := newDevice(t, false, ili9488.Config{PixelFormat: ili9488.PixelFormat18})
	if p.colmod != ili9488.PIXFMT_18BPP {
		t.Fatalf("COLMOD = %#02x, want 0x66", p.colmod)
	}
	d.SetAddressWindow(1, 2, 2, 1)
	d.WritePixels([]uint8{0x20, 0xfd, 0xe0, 0x07}, true, false)
	if c := p.Pixel(1, 2); c != ili9488.ORANGE {
		t.Errorf("pixel (1, 2) = %#04x, want %#04x", c, ili9488.ORANGE)
	}
	if c := p.Pixel(2, 2); c != ili9488.GREEN {
		t.Errorf("pixel (2, 2) = %#04x, want %#04x", c, ili9488.GREEN)
	}
}

func TestWindowWrap(t *testing.T) {
	d, p := newDevice(t, false, ili9488.Config{})
	d.SetAddressWindow(10, 10, 2, 2)
	d.WriteColor(ili9488.RED, 4)
	d.WriteColor(ili9488.GREEN, 1) // wraps to the window start
	if c := p.Pixel(10, 10); c != ili9488.GREEN {
		t.Errorf("pixel (10, 10) = %#04x, want green", c)
	}
	if c := p.Pixel(11, 11); c != ili9488.RED {
		t.Errorf("pixel (11, 11) = %#04x, want red", c)
	}
	if c := p.Pixel(12, 10); c != 0 {
		t.Errorf("pixel (12, 10) outside the window written")
	}
}

func TestReadRegisters(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		d, _ := newDevice(t, parallel, ili9488.Config{Rotation: drivers.Rotation90})

		id := make([]uint8, 3)
		for i := range id {
			b, err := d.ReadCommand8(ili9488.CMD_RDID4, uint8(i))
			if err != nil {
				t.Fatal(err)
			}
			id[i] = b
		}
		if id[1] != 0x94 || id[2] != 0x88 {
			t.Errorf("parallel %v: ID4 = % x, want 00 94 88", parallel, id)
		}

		madctl, err := d.ReadCommand8(ili9488.CMD_RDMADCTL, 0)
		if err != nil {
			t.Fatal(err)
		}
		if madctl != ili9488.MADCTL_MX|ili9488.MADCTL_MH|ili9488.MADCTL_MV {
			t.Errorf("parallel %v: MADCTL = %#02x", parallel, madctl)
		}

		mode, _ := d.ReadCommand8(ili9488.CMD_RDMODE, 0)
		if mode != 0x9c {
			t.Errorf("parallel %v: power mode = %#02x, want 0x9c", parallel, mode)
		}
	}
}

func TestFrameInversionAndBGR(t *testing.T) {
	d, p := newDevice(t, false, ili9488.Config{})
	d.WriteFillRectPreclipped(0, 0, 320, 480, ili9488.RED)

	if c := p.Frame().RGBAAt(0, 0); c.R != 0xff || c.B != 0 {
		t.Errorf("frame pixel = %v, want red", c)
	}
	d.SetBGR(true)
	if c := p.Frame().RGBAAt(0, 0); c.B != 0xff || c.R != 0 {
		t.Errorf("BGR frame pixel = %v, want blue", c)
	}
	d.SetBGR(false)
	d.InvertDisplay(true)
	if !p.Inverted() {
		t.Fatal("inversion not applied")
	}
	if c := p.Frame().RGBAAt(0, 0); c.R != 0 || c.G != 0xff || c.B != 0xff {
		t.Errorf("inverted frame pixel = %v, want cyan", c)
	}
	d.SetDisplayOn(false)
	if c := p.Frame().RGBAAt(0, 0); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("frame with display off = %v, want black", c)
	}
}

func TestFrameScroll(t *testing.T) {
	d, p := newDevice(t, false, ili9488.Config{})
	d.WriteFillRectPreclipped(0, 0, 320, 480, ili9488.BLACK)
	d.WriteFillRectPreclipped(0, 100, 320, 1, ili9488.WHITE)

	d.SetScrollMargins(20, 20)
	d.ScrollTo(60) // line 60 shows at the top of the scroll area
	frame := p.Frame()
	if c := frame.RGBAAt(0, 60); c.R != 0xff {
		t.Errorf("display line 60 = %v, want memory line 100", c)
	}
	if c := frame.RGBAAt(0, 100); c.R != 0 {
		t.Errorf("display line 100 not scrolled")
	}

	d.StopScroll()
	if c := p.Frame().RGBAAt(0, 100); c.R != 0xff {
		t.Errorf("display line 100 after StopScroll = %v", c)
	}
}

func TestLogRecordsParams(t *testing.T) {
	d, p := newDevice(t, false, ili9488.Config{})
	p.ClearLog()
	d.InvertDisplay(true)
	d.WritePixel(10, 20, ili9488.BLUE)

	log := p.Log()
	want := []struct {
		cmd    uint8
		params []uint8
	}{
		{ili9488.CMD_INVON, nil},
		{ili9488.CMD_CASET, []uint8{0x00, 0x0a, 0x00, 0x0a}},
		{ili9488.CMD_PASET, []uint8{0x00, 0x14, 0x00, 0x14}},
		{ili9488.CMD_RAMWR, nil},
	}
	if len(log) != len(want) {
		t.Fatalf("got %d commands, want %d", len(log), len(want))
	}
	for i, w := range want {
		if log[i].Cmd != w.cmd || string(log[i].Params) != string(w.params) {
			t.Errorf("command %d = %#02x % x, want %#02x % x", i, log[i].Cmd, log[i].Params, w.cmd, w.params)
		}
	}
	if log[3].Pixels != 1 {
		t.Errorf("RAMWR pixels = %d, want 1", log[3].Pixels)
	}
}
