package ili9488

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
)

var _ drivers.Displayer = (*Device)(nil)

// Display does nothing beyond completing a pending transfer: the driver
// has no frame buffer, every drawing call goes straight to the panel.
func (d *Device) Display() error {
	return d.finish()
}

// SetPixel draws a single pixel. Coordinates outside the display are
// ignored.
func (d *Device) SetPixel(x, y int16, c color.RGBA) {
	w, h := d.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	d.WritePixel(x, y, RGBA565(c))
}

// FillRectangle fills a rectangle at a given coordinates with a color
func (d *Device) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if !d.inBounds(x, y, width, height) {
		return ErrOutOfBounds
	}
	return d.WriteFillRectPreclipped(x, y, width, height, RGBA565(c))
}

// FillScreen fills the screen with a given color
func (d *Device) FillScreen(c color.RGBA) error {
	w, h := d.Size()
	return d.WriteFillRectPreclipped(0, 0, w, h, RGBA565(c))
}

// DrawHLine draws a horizontal line between x0 and x1 inclusive.
func (d *Device) DrawHLine(x0, x1, y int16, c color.RGBA) error {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	return d.FillRectangle(x0, y, x1-x0+1, 1, c)
}

// DrawVLine draws a vertical line between y0 and y1 inclusive.
func (d *Device) DrawVLine(x, y0, y1 int16, c color.RGBA) error {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return d.FillRectangle(x, y0, 1, y1-y0+1, c)
}

// DrawBitmap copies the bitmap to the screen at the given coordinates. It
// returns once the image data has been sent completely.
func (d *Device) DrawBitmap(x, y int16, bitmap pixel.Image[pixel.RGB565BE]) error {
	bw, bh := bitmap.Size()
	if !d.inBounds(x, y, int16(bw), int16(bh)) {
		return ErrOutOfBounds
	}
	if err := d.finish(); err != nil {
		return err
	}
	d.startWrite()
	defer d.endWrite()
	if err := d.setWindow(uint16(x), uint16(y), uint16(bw), uint16(bh)); err != nil {
		return err
	}
	return d.WritePixels(bitmap.RawBuffer(), true, true)
}

// DrawRGBBitmap copies an RGB565 bitmap to the screen at the given
// coordinates.
func (d *Device) DrawRGBBitmap(x, y int16, data []uint16, w, h int16) error {
	if len(data) < int(w)*int(h) {
		return ErrOutOfBounds
	}
	if !d.inBounds(x, y, w, h) {
		return ErrOutOfBounds
	}
	if err := d.finish(); err != nil {
		return err
	}
	d.startWrite()
	defer d.endWrite()
	if err := d.setWindow(uint16(x), uint16(y), uint16(w), uint16(h)); err != nil {
		return err
	}
	return d.writeColors(data[:int(w)*int(h)])
}

// DrawRGBBitmap8 copies a big-endian RGB565 byte bitmap to the screen at
// the given coordinates.
func (d *Device) DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error {
	if len(data) < 2*int(w)*int(h) {
		return ErrOutOfBounds
	}
	if !d.inBounds(x, y, w, h) {
		return ErrOutOfBounds
	}
	if err := d.finish(); err != nil {
		return err
	}
	d.startWrite()
	defer d.endWrite()
	if err := d.setWindow(uint16(x), uint16(y), uint16(w), uint16(h)); err != nil {
		return err
	}
	return d.WritePixels(data[:2*int(w)*int(h)], true, true)
}
