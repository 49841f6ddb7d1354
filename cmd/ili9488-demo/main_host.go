//go:build linux && !tinygo

// Command ili9488-demo runs the demo scenes on an ILI9488 attached to a
// Linux host's SPI bus.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/inindev/ili9488"
	"github.com/inindev/ili9488/hostbus"
	"github.com/inindev/ili9488/internal/demo"
	"tinygo.org/x/drivers"
)

var (
	spiBus   = flag.String("spi", "", "SPI bus name (empty for default)")
	spiHz    = flag.Int("hz", 32000000, "SPI frequency in Hz")
	gpioChip = flag.String("chip", "", "GPIO character device; when set, pins are line offsets")
	dcPin    = flag.String("dc", "GPIO24", "Data/Command pin name")
	rstPin   = flag.String("rst", "GPIO25", "Reset pin name (empty for software reset)")
	blPin    = flag.String("bl", "", "Backlight pin name")
	scene    = flag.String("scene", "all", "Scene to run: all, fill, quadrant, blocks, stacked, text, scroll")
	rotation = flag.Int("rotation", 0, "Initial rotation in quarter turns")
	bgr      = flag.Bool("bgr", false, "Panel has BGR subpixel order")
	rgb666   = flag.Bool("18bpp", false, "Use the 18 bpp interface pixel format")
	bmpFile  = flag.String("bmp", "", "24-bit BMP to draw after the scenes")
	verbose  = flag.Bool("v", false, "Log every command")
)

func main() {
	flag.Parse()

	// Initialize periph.io
	if _, err := host.Init(); err != nil {
		log.Fatalf("Failed to initialize periph.io: %v", err)
	}

	// Open SPI bus
	b, err := spireg.Open(*spiBus)
	if err != nil {
		log.Fatalf("Failed to open SPI bus: %v", err)
	}
	defer b.Close()

	bus, err := hostbus.NewSPI(b, physic.Frequency(*spiHz)*physic.Hertz)
	if err != nil {
		log.Fatal(err)
	}

	pins, err := openPins()
	if err != nil {
		log.Fatal(err)
	}

	cfg := ili9488.Config{
		Rotation: drivers.Rotation(*rotation),
		BGR:      *bgr,
	}
	if *rgb666 {
		cfg.PixelFormat = ili9488.PixelFormat18
	}
	if *verbose {
		cfg.Logger = log.New(os.Stderr, "ili9488: ", log.Lmicroseconds)
	}

	disp := ili9488.New(bus, ili9488.BusSerial, pins)
	if err := disp.Configure(cfg); err != nil {
		log.Fatalf("Failed to configure display: %v", err)
	}
	fmt.Printf("Display initialized: %v\n", disp)

	if id, err := disp.ReadCommand8(ili9488.CMD_RDID4, 2); err == nil {
		fmt.Printf("ID4: %#02x\n", id)
	}

	r := &demo.Runner{Disp: disp}
	if *scene == "all" {
		err = r.All()
	} else if s, ok := demo.SceneByName(*scene); ok {
		err = s.Run(r)
	} else {
		log.Fatalf("Unknown scene: %s", *scene)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *bmpFile != "" {
		f, err := os.Open(*bmpFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := r.Bitmap(f); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Demo complete")
}

// openPins resolves the control lines through gpioreg, or through the GPIO
// character device when -chip is set.
func openPins() (ili9488.Pins, error) {
	var pins ili9488.Pins
	open := func(name string) (ili9488.Pin, error) {
		if *gpioChip != "" {
			offset, err := strconv.Atoi(name)
			if err != nil {
				return nil, fmt.Errorf("pin %q: want a line offset: %w", name, err)
			}
			lp, err := hostbus.RequestPin(*gpioChip, offset)
			if err != nil {
				return nil, err
			}
			return lp, nil
		}
		p := hostbus.NewPin(gpioreg.ByName(name))
		if p == nil {
			return nil, fmt.Errorf("GPIO pin %s not found", name)
		}
		return p, nil
	}

	var err error
	if pins.DC, err = open(*dcPin); err != nil {
		return pins, err
	}
	if *rstPin != "" {
		if pins.RST, err = open(*rstPin); err != nil {
			return pins, err
		}
	}
	if *blPin != "" {
		if pins.BL, err = open(*blPin); err != nil {
			return pins, err
		}
	}
	return pins, nil
}
