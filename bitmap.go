package ili9488

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrBadBitmap = errors.New("ili9488: unsupported bitmap")

// bmpHeader is the file header followed by the BITMAPINFOHEADER fields
// DrawBMP needs.
type bmpHeader struct {
	Magic      [2]uint8
	FileSize   uint32
	_          uint32
	DataOffset uint32

	InfoSize    uint32
	Width       int32
	Height      int32
	Planes      uint16
	BitCount    uint16
	Compression uint32
}

const bmpHeaderSize = 14 + 20

// DrawBMP streams an uncompressed 24-bit BMP from r to the display with its
// top-left corner at x, y. Only one row is buffered at a time, so images
// can be drawn straight from a file on an SD card.
//
// https://en.wikipedia.org/wiki/BMP_file_format
func (d *Device) DrawBMP(x, y int16, r io.Reader) error {
	var hdr bmpHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("ili9488: bitmap header: %w", err)
	}
	if hdr.Magic != [2]uint8{'B', 'M'} || hdr.BitCount != 24 || hdr.Compression != 0 ||
		hdr.Width <= 0 || hdr.Height == 0 || hdr.DataOffset < bmpHeaderSize {
		return ErrBadBitmap
	}

	// skip the rest of the header and the palette, if any
	if _, err := io.CopyN(io.Discard, r, int64(hdr.DataOffset-bmpHeaderSize)); err != nil {
		return fmt.Errorf("ili9488: bitmap header: %w", err)
	}

	bottomUp := hdr.Height > 0
	h32 := int64(hdr.Height)
	if !bottomUp {
		h32 = -h32
	}
	// compare before narrowing to int16
	dw, dh := d.Size()
	if int64(hdr.Width) > int64(dw) || h32 > int64(dh) {
		return ErrOutOfBounds
	}
	w, h := int16(hdr.Width), int16(h32)
	if !d.inBounds(x, y, w, h) {
		return ErrOutOfBounds
	}

	if err := d.finish(); err != nil {
		return err
	}
	d.startWrite()
	defer d.endWrite()

	stride := (int(w)*3 + 3) &^ 3 // rows are padded to 4 bytes
	row := make([]uint8, stride)
	for i := int16(0); i < h; i++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return fmt.Errorf("ili9488: bitmap row %d: %w", i, err)
		}
		ry := y + i
		if bottomUp {
			ry = y + h - 1 - i
		}
		if err := d.setWindow(uint16(x), uint16(ry), uint16(w), 1); err != nil {
			return err
		}
		if err := d.writeBGR24(row[:int(w)*3]); err != nil {
			return err
		}
	}
	return nil
}

// writeBGR24 converts a row of blue-green-red triplets to the bus format.
func (d *Device) writeBGR24(src []uint8) error {
	per := len(d.buf) / d.format.bytesPerPixel()
	for len(src) >= 3 {
		k := len(src) / 3
		if k > per {
			k = per
		}
		out := d.buf[:0]
		for i := 0; i < k; i++ {
			out = d.appendColor(out, RGB565(src[3*i+2], src[3*i+1], src[3*i]))
		}
		if err := d.write(out); err != nil {
			return err
		}
		src = src[3*k:]
	}
	return nil
}
