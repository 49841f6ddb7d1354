// Package sim emulates an ILI9488 controller behind the driver's Transport
// and DC pin. It decodes the command stream into a 320x480 frame memory so
// drawing code can be checked without hardware.
package sim

import (
	"image"
	"image/color"
	"sync"

	"github.com/inindev/ili9488"
)

// Command is one decoded controller command. Pixels counts the pixels that
// followed a memory write.
type Command struct {
	Cmd    uint8
	Params []uint8
	Pixels int
}

// Panel is a simulated ILI9488. It implements ili9488.Transport and
// io.ByteReader; DC returns the data/command line to hand to the driver.
type Panel struct {
	mu sync.Mutex

	width, height int
	mem           []uint16 // RGB565, native portrait addressing
	parallel      bool

	dc     bool
	op     int // current command, -1 before the first one
	params []uint8
	pixel  []uint8 // partial pixel
	log    []Command
	entry  int // log index of op, -1 after ClearLog

	madctl   uint8
	colmod   uint8
	inverted bool
	sleeping bool
	on       bool

	col0, col1 int
	row0, row1 int
	x, y       int

	scrolling bool
	tfa, vsa  int
	ssa       int

	rdidx int // pending serial read index, -1 if none
	rdbuf []uint8
}

// NewPanel returns a panel in its reset state. parallel selects the read
// framing of the 8-bit bus (a dummy byte first) instead of the serial one.
func NewPanel(parallel bool) *Panel {
	p := &Panel{
		width:    int(ili9488.TFT_DEFAULT_WIDTH),
		height:   int(ili9488.TFT_DEFAULT_HEIGHT),
		parallel: parallel,
		dc:       true,
		op:       -1,
		entry:    -1,
	}
	p.mem = make([]uint16, p.width*p.height)
	p.reset()
	return p
}

func (p *Panel) reset() {
	p.madctl = 0
	p.colmod = 0x66
	p.inverted = false
	p.sleeping = true
	p.on = false
	p.col0, p.col1 = 0, p.width-1
	p.row0, p.row1 = 0, p.height-1
	p.scrolling = false
	p.tfa, p.vsa, p.ssa = 0, p.height, 0
	p.rdidx = -1
	p.rdbuf = nil
}

// DC returns the data/command line. Low selects command bytes.
func (p *Panel) DC() *DCLine {
	return &DCLine{p: p}
}

// DCLine is the panel's data/command input.
type DCLine struct {
	p *Panel
}

func (l *DCLine) High() { l.Set(true) }
func (l *DCLine) Low()  { l.Set(false) }

func (l *DCLine) Set(high bool) {
	l.p.mu.Lock()
	l.p.dc = high
	l.p.mu.Unlock()
}

func (l *DCLine) Get() bool {
	l.p.mu.Lock()
	defer l.p.mu.Unlock()
	return l.p.dc
}

// Write feeds bytes to the controller. With DC low every byte is a
// command, otherwise bytes are parameters or pixel data.
func (p *Panel) Write(data []uint8) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range data {
		if p.dc {
			p.data(b)
		} else {
			p.command(b)
		}
	}
	return nil
}

// ReadByte returns the next byte of the last read command's response.
func (p *Panel) ReadByte() (byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.rdbuf) == 0 {
		return 0, nil
	}
	b := p.rdbuf[0]
	p.rdbuf = p.rdbuf[1:]
	return b, nil
}

func (p *Panel) command(cmd uint8) {
	p.log = append(p.log, Command{Cmd: cmd})
	p.entry = len(p.log) - 1
	p.op = int(cmd)
	p.params = p.params[:0]
	p.pixel = p.pixel[:0]

	switch cmd {
	case ili9488.CMD_SWRESET:
		p.reset()
	case ili9488.CMD_SLPIN:
		p.sleeping = true
	case ili9488.CMD_SLPOUT:
		p.sleeping = false
	case ili9488.CMD_NORON, ili9488.CMD_PTLON:
		p.scrolling = false
	case ili9488.CMD_INVOFF:
		p.inverted = false
	case ili9488.CMD_INVON:
		p.inverted = true
	case ili9488.CMD_DISPOFF:
		p.on = false
	case ili9488.CMD_DISPON:
		p.on = true
	case ili9488.CMD_RAMWR:
		p.x, p.y = p.col0, p.row0
	}

	if resp, ok := p.response(cmd); ok {
		if p.parallel {
			p.rdbuf = append([]uint8{0}, resp...)
		} else {
			idx := 0
			if p.rdidx >= 0 {
				idx = p.rdidx
			}
			if idx < len(resp) {
				p.rdbuf = resp[idx:]
			} else {
				p.rdbuf = nil
			}
		}
	}
	if cmd != ili9488.CMD_RDIDX {
		p.rdidx = -1
	}
}

func (p *Panel) data(b uint8) {
	if p.op < 0 {
		return
	}
	cmd := uint8(p.op)
	switch cmd {
	case ili9488.CMD_RAMWR, ili9488.CMD_RAMWRC:
		p.pixel = append(p.pixel, b)
		if len(p.pixel) == p.bytesPerPixel() {
			p.writePixel(p.decode(p.pixel))
			p.pixel = p.pixel[:0]
			if p.entry >= 0 {
				p.log[p.entry].Pixels++
			}
		}
		return
	}

	p.params = append(p.params, b)
	if p.entry >= 0 {
		p.log[p.entry].Params = append(p.log[p.entry].Params, b)
	}
	prm := p.params
	switch cmd {
	case ili9488.CMD_CASET:
		if len(prm) == 4 {
			p.col0, p.col1 = be16(prm[0:]), be16(prm[2:])
		}
	case ili9488.CMD_PASET:
		if len(prm) == 4 {
			p.row0, p.row1 = be16(prm[0:]), be16(prm[2:])
		}
	case ili9488.CMD_MADCTL:
		if len(prm) == 1 {
			p.madctl = prm[0]
		}
	case ili9488.CMD_PIXFMT:
		if len(prm) == 1 {
			p.colmod = prm[0]
		}
	case ili9488.CMD_VSCRDEF:
		if len(prm) == 6 {
			p.tfa, p.vsa = be16(prm[0:]), be16(prm[2:])
		}
	case ili9488.CMD_VSCRSADD:
		if len(prm) == 2 {
			p.ssa = be16(prm[0:])
			p.scrolling = true
		}
	case ili9488.CMD_RDIDX:
		if len(prm) == 1 {
			p.rdidx = int(prm[0] & 0x0f)
		}
	}
}

// response is the data the controller returns for a read command.
func (p *Panel) response(cmd uint8) ([]uint8, bool) {
	switch cmd {
	case ili9488.CMD_RDMODE:
		var mode uint8 = 0x80 // booster on
		if !p.sleeping {
			mode |= 0x10
		}
		if !p.scrolling {
			mode |= 0x08
		}
		if p.on {
			mode |= 0x04
		}
		return []uint8{mode}, true
	case ili9488.CMD_RDMADCTL:
		return []uint8{p.madctl}, true
	case ili9488.CMD_RDPIXFMT:
		return []uint8{p.colmod}, true
	case ili9488.CMD_RDID4:
		return []uint8{0x00, 0x94, 0x88}, true
	}
	return nil, false
}

func (p *Panel) bytesPerPixel() int {
	if p.colmod&0x07 == 0x05 {
		return 2
	}
	return 3
}

func (p *Panel) decode(b []uint8) uint16 {
	if len(b) == 2 {
		return uint16(b[0])<<8 | uint16(b[1])
	}
	return uint16(b[0]&0xf8)<<8 | uint16(b[1]&0xfc)<<3 | uint16(b[2]>>3)
}

// writePixel stores c at the write cursor and advances it through the
// address window, wrapping at its end.
func (p *Panel) writePixel(c uint16) {
	if px, py, ok := p.physical(p.x, p.y); ok {
		p.mem[py*p.width+px] = c
	}
	p.x++
	if p.x > p.col1 {
		p.x = p.col0
		p.y++
		if p.y > p.row1 {
			p.y = p.row0
		}
	}
}

// physical maps a column/page address to frame memory through MADCTL.
func (p *Panel) physical(col, row int) (int, int, bool) {
	px, py := col, row
	if p.madctl&ili9488.MADCTL_MV != 0 {
		px, py = row, col
	}
	if px < 0 || py < 0 || px >= p.width || py >= p.height {
		return 0, 0, false
	}
	if p.madctl&ili9488.MADCTL_MX != 0 {
		px = p.width - 1 - px
	}
	if p.madctl&ili9488.MADCTL_MY != 0 {
		py = p.height - 1 - py
	}
	return px, py, true
}

// Pixel returns frame memory at native portrait coordinates.
func (p *Panel) Pixel(x, y int) uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mem[y*p.width+x]
}

// LogicalPixel returns the pixel a driver in the current MADCTL
// orientation wrote at x, y.
func (p *Panel) LogicalPixel(x, y int) (uint16, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	px, py, ok := p.physical(x, y)
	if !ok {
		return 0, false
	}
	return p.mem[py*p.width+px], true
}

// Log returns the commands received so far.
func (p *Panel) Log() []Command {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Command(nil), p.log...)
}

// ClearLog drops the recorded commands.
func (p *Panel) ClearLog() {
	p.mu.Lock()
	p.log = nil
	p.entry = -1
	p.mu.Unlock()
}

// MADCTL returns the current memory access control value.
func (p *Panel) MADCTL() uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.madctl
}

// Inverted reports whether display inversion is on.
func (p *Panel) Inverted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inverted
}

// Frame renders what the glass shows: frame memory through the vertical
// scroll mapping, inversion and RGB/BGR order. The panel is dark while it
// sleeps or the display is off.
func (p *Panel) Frame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	p.FrameInto(img)
	return img
}

// FrameInto renders into img, which must be at least 320x480.
func (p *Panel) FrameInto(img *image.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sleeping || !p.on {
		for i := range img.Pix {
			img.Pix[i] = 0
			if i%4 == 3 {
				img.Pix[i] = 0xff
			}
		}
		return
	}
	for y := 0; y < p.height; y++ {
		src := p.scrollLine(y)
		for x := 0; x < p.width; x++ {
			img.SetRGBA(x, y, p.rgba(p.mem[src*p.width+x]))
		}
	}
}

// scrollLine returns the memory line shown on display line y.
func (p *Panel) scrollLine(y int) int {
	if !p.scrolling || p.vsa <= 0 || y < p.tfa || y >= p.tfa+p.vsa {
		return y
	}
	off := p.ssa - p.tfa
	line := p.tfa + ((y-p.tfa+off)%p.vsa+p.vsa)%p.vsa
	if line >= p.height {
		return y
	}
	return line
}

func (p *Panel) rgba(c uint16) color.RGBA {
	r := uint8(c>>8) & 0xf8
	g := uint8(c>>3) & 0xfc
	b := uint8(c << 3)
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	if p.madctl&ili9488.MADCTL_BGR != 0 {
		r, b = b, r
	}
	if p.inverted {
		r, g, b = ^r, ^g, ^b
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func be16(b []uint8) int {
	return int(b[0])<<8 | int(b[1])
}
