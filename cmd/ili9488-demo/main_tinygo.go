//go:build tinygo

package main

import (
	"machine"
	"os"
	"time"

	"github.com/inindev/ili9488"
	"github.com/inindev/ili9488/internal/demo"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/sdcard"
	"tinygo.org/x/tinyfs/fatfs"
)

func main() {
	machine.SPI2.Configure(machine.SPIConfig{
		SCK: machine.TFT_SCK_PIN,
		SDO: machine.TFT_SDO_PIN,
		SDI: machine.TFT_SDI_PIN,
		//CS:        machine.TFT_CS_PIN,
		LSBFirst:  false,
		Mode:      machine.SPI_MODE0,
		Frequency: 40e6,
	})

	disp := ili9488.NewSPI(machine.SPI2, ili9488.Pins{
		DC:  ili9488.OutputPin(machine.TFT_DC_PIN),
		CS:  ili9488.OutputPin(machine.TFT_CS_PIN),
		BL:  ili9488.OutputPin(machine.TFT_BL_PIN),
		RST: ili9488.OutputPin(machine.NoPin),
	})
	if err := disp.Configure(ili9488.Config{}); err != nil {
		printError("failed to configure display", "", err)
		return
	}

	if id, err := disp.ReadCommand8(ili9488.CMD_RDID4, 2); err == nil {
		print("display id: ")
		println(id)
	}

	r := &demo.Runner{Disp: disp}
	if err := r.All(); err != nil {
		printError("demo failed", "", err)
	}

	disp.SetRotation(drivers.Rotation90)
	bitmapDemo(r, "/logo.bmp")
	time.Sleep(time.Second)
	disp.SetRotation(drivers.Rotation270)
	bitmapDemo(r, "/logo.bmp")

	for {
		time.Sleep(time.Minute)
	}
}

func bitmapDemo(r *demo.Runner, filename string) {
	sd := sdcard.New(&machine.SPI2, machine.SD_SCK_PIN, machine.SD_SDO_PIN, machine.SD_SDI_PIN, machine.SD_CS_PIN)
	err := sd.Configure()
	if err != nil {
		printError("failed to bind sdcard device", "", err)
		return
	}

	filesystem := fatfs.New(&sd)
	filesystem.Configure(&fatfs.Config{
		SectorSize: 512,
	})

	f, err := filesystem.OpenFile(filename, os.O_RDONLY)
	if err != nil {
		printError("could not open file", filename, err)
		return
	}
	defer f.Close()

	if err := r.Bitmap(f); err != nil {
		printError("could not draw bitmap", filename, err)
	}
}

func printError(msg, key string, err error) {
	print(msg)
	if key != "" {
		print(" ")
		print(key)
	}
	print(" - error: ")
	print(err.Error())
	print("\r\n")
}
