// Package ili9488 drives the ILI9488 320x480 TFT controller over a serial
// (SPI or bit-banged) or 8-bit parallel bus.
//
// The driver exposes the primitive operations a drawing library needs:
// address windows, pixel streams, repeated-color fills, rotation, vertical
// scrolling and inversion. It also satisfies drivers.Displayer, so
// tinyfont and tinyterm can draw on it directly.
//
// A typical TinyGo setup:
//
//	machine.SPI0.Configure(machine.SPIConfig{Frequency: 40e6})
//	disp := ili9488.NewSPI(machine.SPI0, ili9488.Pins{
//		DC: ili9488.OutputPin(machine.GP8),
//		CS: ili9488.OutputPin(machine.GP9),
//	})
//	disp.Configure(ili9488.Config{})
//	disp.WriteFillRectPreclipped(0, 0, 320, 480, ili9488.BLUE)
package ili9488

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"tinygo.org/x/drivers"
)

var (
	ErrOutOfBounds = errors.New("ili9488: rectangle coordinates outside display area")
	ErrNotReadable = errors.New("ili9488: bus cannot read")
)

// Bus identifies the wire protocol of a transport. It decides how register
// reads are framed.
type Bus uint8

const (
	BusSerial    Bus = iota // 4-wire SPI, hardware or bit-banged
	BusParallel8            // 8080 8-bit parallel
)

// PixelFormat is the interface pixel format programmed through COLMOD.
// Callers always hand RGB565 values to the driver.
type PixelFormat uint8

const (
	PixelFormat16 PixelFormat = iota // RGB565, 2 bytes per pixel
	PixelFormat18                    // RGB666, 3 bytes per pixel
)

func (pf PixelFormat) bytesPerPixel() int {
	if pf == PixelFormat18 {
		return 3
	}
	return 2
}

// Pins are the control lines owned by the Device. Only DC is required.
type Pins struct {
	DC  Pin // data / command
	CS  Pin // chip select, nil if held low or driven by the SPI peripheral
	RST Pin // hardware reset, nil to use a software reset
	BL  Pin // backlight
}

// Config is the panel configuration applied by Configure.
type Config struct {
	// Native panel size in portrait. Defaults to 320x480.
	Width  uint16
	Height uint16

	// Landscape makes Rotation0 a landscape orientation.
	Landscape bool

	Rotation drivers.Rotation
	Mirror   bool // mirror the image horizontally
	BGR      bool // panel has blue-green-red subpixel order
	Inverted bool // enable display inversion after init

	// PixelFormat16 unless the bus only accepts 18 bpp, which is the case
	// for the 4-wire serial interface on some modules.
	PixelFormat PixelFormat

	// Frequency is a bus speed hint in Hz, applied when the transport
	// implements FrequencySetter. 0 keeps the current speed.
	Frequency uint32

	// Lock guards a physical bus shared with other peripherals. It is held
	// from the address window through the end of the pixel stream.
	Lock sync.Locker

	// Logger, when set, receives every command and its parameters.
	Logger *log.Logger
}

const bufferSize = 192 // multiple of 2 and 3

// Device is an ILI9488 panel.
type Device struct {
	tspt Transport
	bus  Bus

	dc  Pin // tft data / command
	cs  Pin // spi chip select
	rst Pin // tft reset
	bl  Pin // tft backlight

	width     uint16 // native pixel width
	height    uint16 // native pixel height
	landscape bool
	rot       drivers.Rotation // tft orientation
	mirror    bool             // mirror tft output
	bgr       bool             // tft blue-green-red mode
	format    PixelFormat
	madctl    uint8 // last MADCTL value sent

	lock    sync.Locker
	log     *log.Logger
	depth   int  // nested startWrite calls
	pending bool // an AsyncWriter transfer holds the bus

	cmd   [1]uint8
	buf   []uint8
	sleep func(time.Duration)
}

// New returns a Device on an arbitrary transport. Configure must be called
// before drawing.
func New(tspt Transport, bus Bus, pins Pins) *Device {
	d := &Device{
		tspt:   tspt,
		bus:    bus,
		dc:     pins.DC,
		cs:     pins.CS,
		rst:    pins.RST,
		bl:     pins.BL,
		width:  TFT_DEFAULT_WIDTH,
		height: TFT_DEFAULT_HEIGHT,
		rot:    drivers.Rotation0,
		buf:    make([]uint8, bufferSize),
		sleep:  time.Sleep,
	}

	if d.cs != nil {
		d.cs.High()
	}
	d.dc.High()
	if d.bl != nil {
		d.bl.Low() // display off
	}
	if d.rst != nil {
		d.rst.High()
	}
	return d
}

// NewSPI returns a Device on a hardware SPI bus.
func NewSPI(spi drivers.SPI, pins Pins) *Device {
	return New(NewSPITransport(spi, 0), BusSerial, pins)
}

// NewSoftSPI returns a Device on bit-banged serial pins. sdi may be nil.
func NewSoftSPI(sck, sdo, sdi Pin, pins Pins) *Device {
	return New(NewSoftSPITransport(sck, sdo, sdi, 0), BusSerial, pins)
}

// NewParallel returns a Device on an 8-bit parallel bus. rd may be nil for
// a write-only bus.
func NewParallel(data [8]Pin, wr, rd Pin, pins Pins) *Device {
	return New(NewParallelTransport(data, wr, rd), BusParallel8, pins)
}

// Configure resets the panel and runs the power-on sequence. It must be
// called once before any drawing operation.
func (d *Device) Configure(cfg Config) error {
	if err := d.finish(); err != nil {
		return err
	}

	d.width, d.height = TFT_DEFAULT_WIDTH, TFT_DEFAULT_HEIGHT
	if cfg.Width != 0 {
		d.width = cfg.Width
	}
	if cfg.Height != 0 {
		d.height = cfg.Height
	}
	d.landscape = cfg.Landscape
	d.rot = cfg.Rotation % 4
	d.mirror = cfg.Mirror
	d.bgr = cfg.BGR
	d.format = cfg.PixelFormat
	d.lock = cfg.Lock
	d.log = cfg.Logger

	if cfg.Frequency != 0 {
		if fs, ok := d.tspt.(FrequencySetter); ok {
			if err := fs.SetFrequency(cfg.Frequency); err != nil {
				return fmt.Errorf("ili9488: set bus frequency: %w", err)
			}
		}
	}

	if err := d.Reset(); err != nil {
		return err
	}
	if err := d.initPanel(); err != nil {
		return err
	}
	if cfg.Inverted {
		if err := d.InvertDisplay(true); err != nil {
			return err
		}
	}

	d.SetBacklight(true)
	return nil
}

// Reset performs a hardware reset if a reset pin is present, otherwise a
// CMD_SWRESET software reset, and waits for the controller to settle.
func (d *Device) Reset() error {
	if d.rst != nil {
		d.rst.Low()
		d.sleep(64 * time.Millisecond) // datasheet says 10us minimum
		d.rst.High()
	} else {
		if err := d.writeCmd(CMD_SWRESET); err != nil {
			return err
		}
	}
	d.sleep(140 * time.Millisecond) // datasheet says 120ms
	return nil
}

// SetBacklight turns the TFT backlight on / off.
func (d *Device) SetBacklight(on bool) {
	if d.bl != nil {
		d.bl.Set(on)
	}
}

// InvertDisplay switches display inversion on or off.
func (d *Device) InvertDisplay(invert bool) error {
	if err := d.finish(); err != nil {
		return err
	}
	if invert {
		return d.writeCmd(CMD_INVON)
	}
	return d.writeCmd(CMD_INVOFF)
}

// Sleep enters or leaves sleep mode. Leaving sleep waits the 120ms the
// charge pumps need before the next command.
func (d *Device) Sleep(sleep bool) error {
	if err := d.finish(); err != nil {
		return err
	}
	if sleep {
		return d.writeCmd(CMD_SLPIN)
	}
	if err := d.writeCmd(CMD_SLPOUT); err != nil {
		return err
	}
	d.sleep(120 * time.Millisecond)
	return nil
}

// SetDisplayOn turns the panel output on or off without touching memory.
func (d *Device) SetDisplayOn(on bool) error {
	if err := d.finish(); err != nil {
		return err
	}
	if on {
		return d.writeCmd(CMD_DISPON)
	}
	return d.writeCmd(CMD_DISPOFF)
}

// ReadCommand8 reads byte index of the response to register reg. The
// transport must implement io.ByteReader.
func (d *Device) ReadCommand8(reg, index uint8) (uint8, error) {
	rd, ok := d.tspt.(io.ByteReader)
	if !ok {
		return 0, ErrNotReadable
	}
	if err := d.finish(); err != nil {
		return 0, err
	}

	skip := int(index)
	if d.bus == BusSerial {
		if err := d.writeCmd(CMD_RDIDX, 0x10+index); err != nil {
			return 0, err
		}
		skip = 0
	} else {
		skip++ // dummy read cycle
	}

	d.startWrite()
	defer d.endWrite()

	if err := d.sendCommand(reg); err != nil {
		return 0, err
	}
	var b uint8
	for i := 0; i <= skip; i++ {
		var err error
		if b, err = rd.ReadByte(); err != nil {
			return 0, fmt.Errorf("ili9488: read %#02x: %w", reg, err)
		}
	}
	return b, nil
}

// String returns a short description of the device.
func (d *Device) String() string {
	w, h := d.Size()
	return fmt.Sprintf("ili9488.Device{%dx%d}", w, h)
}

// writeCmd issues a TFT command with optional data as its own transaction
func (d *Device) writeCmd(cmd uint8, data ...uint8) error {
	d.startWrite()
	defer d.endWrite()
	return d.sendCommand(cmd, data...)
}

// sendCommand issues a command inside an open transaction
func (d *Device) sendCommand(cmd uint8, data ...uint8) error {
	if d.log != nil {
		d.log.Printf("command %#02x data %#02x", cmd, data)
	}

	d.dc.Low() // command mode
	d.cmd[0] = cmd
	err := d.tspt.Write(d.cmd[:])
	d.dc.High() // data mode
	if err != nil {
		return fmt.Errorf("ili9488: command %#02x: %w", cmd, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := d.tspt.Write(data); err != nil {
		return fmt.Errorf("ili9488: command %#02x data: %w", cmd, err)
	}
	return nil
}

// StartWrite takes the bus and asserts chip select. Calls nest; the bus is
// released by the matching outermost EndWrite. Use it to keep several
// window and stream calls in one transaction.
//
// It first completes a pending non-blocking WritePixels and returns that
// transfer's error. The bus is taken either way, so EndWrite must follow.
func (d *Device) StartWrite() error {
	err := d.finish()
	d.startWrite()
	return err
}

// EndWrite releases the bus taken by StartWrite.
func (d *Device) EndWrite() {
	d.endWrite()
}

// Wait blocks until a non-blocking WritePixels has completed and releases
// the bus it held. It returns the transfer's error.
func (d *Device) Wait() error {
	return d.finish()
}

func (d *Device) startWrite() {
	if d.depth == 0 {
		if d.lock != nil {
			d.lock.Lock()
		}
		if d.cs != nil {
			d.cs.Low()
		}
	}
	d.depth++
}

func (d *Device) endWrite() {
	if d.depth == 0 {
		return
	}
	d.depth--
	if d.depth == 0 {
		if d.cs != nil {
			d.cs.High()
		}
		if d.lock != nil {
			d.lock.Unlock()
		}
	}
}

// finish completes an outstanding non-blocking transfer.
func (d *Device) finish() error {
	if !d.pending {
		return nil
	}
	d.pending = false
	err := d.tspt.(AsyncWriter).Wait()
	d.endWrite()
	if err != nil {
		return fmt.Errorf("ili9488: pixel transfer: %w", err)
	}
	return nil
}
