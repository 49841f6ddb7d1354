package ili9488

import (
	"fmt"
)

// WritePixels streams len(colors)/2 RGB565 values into the current address
// window. bigEndian describes the byte order of colors; the panel always
// takes the high byte first, so little-endian data is swapped on the way
// out. colors itself is never modified.
//
// With blocking false the transfer may continue after WritePixels returns
// if the transport implements AsyncWriter and the data needs no
// conversion. colors must then stay untouched until Wait returns; the next
// driver call waits implicitly. Otherwise the call blocks.
func (d *Device) WritePixels(colors []uint8, blocking, bigEndian bool) error {
	if err := d.finish(); err != nil {
		return err
	}
	colors = colors[:len(colors)&^1]
	if len(colors) == 0 {
		return nil
	}

	direct := bigEndian && d.format == PixelFormat16
	if aw, ok := d.tspt.(AsyncWriter); ok && direct && !blocking {
		d.startWrite()
		if err := aw.WriteAsync(colors); err != nil {
			d.endWrite()
			return fmt.Errorf("ili9488: pixel transfer: %w", err)
		}
		d.pending = true
		return nil
	}

	d.startWrite()
	defer d.endWrite()
	if direct {
		return d.write(colors)
	}
	return d.writeNsl(colors, bigEndian)
}

// WriteColor streams color n times into the current address window.
func (d *Device) WriteColor(color uint16, n int) error {
	if err := d.finish(); err != nil {
		return err
	}
	d.startWrite()
	defer d.endWrite()
	return d.writeColor(color, n)
}

func (d *Device) writeColor(color uint16, n int) error {
	if n <= 0 {
		return nil
	}
	if rw, ok := d.tspt.(RepeatWriter); ok && d.format == PixelFormat16 {
		if err := rw.WriteRepeated(color, n); err != nil {
			return fmt.Errorf("ili9488: pixel transfer: %w", err)
		}
		return nil
	}
	var pattern [3]uint8
	return d.writeNn(d.appendColor(pattern[:0], color), n)
}

// writeColors streams native RGB565 values.
func (d *Device) writeColors(colors []uint16) error {
	per := len(d.buf) / d.format.bytesPerPixel()
	for len(colors) > 0 {
		k := len(colors)
		if k > per {
			k = per
		}
		out := d.buf[:0]
		for _, c := range colors[:k] {
			out = d.appendColor(out, c)
		}
		if err := d.write(out); err != nil {
			return err
		}
		colors = colors[k:]
	}
	return nil
}

// writeNn sends n copies of pattern. The scratch buffer is filled once and
// reused for every chunk.
func (d *Device) writeNn(pattern []uint8, n int) error {
	size := len(pattern)
	per := len(d.buf) / size
	if per > n {
		per = n
	}
	chunk := d.buf[:per*size]
	for i := 0; i < per; i++ {
		copy(chunk[i*size:], pattern)
	}

	for n > 0 {
		k := per
		if k > n {
			k = n
		}
		if err := d.write(chunk[:k*size]); err != nil {
			return err
		}
		n -= k
	}
	return nil
}

// writeNsl converts 16-bit source pixels to the bus format chunk by chunk.
func (d *Device) writeNsl(src []uint8, bigEndian bool) error {
	per := len(d.buf) / d.format.bytesPerPixel()
	for len(src) >= 2 {
		k := len(src) / 2
		if k > per {
			k = per
		}
		out := d.buf[:0]
		for i := 0; i < k; i++ {
			hi, lo := src[2*i], src[2*i+1]
			if !bigEndian {
				hi, lo = lo, hi
			}
			out = d.appendColor(out, uint16(hi)<<8|uint16(lo))
		}
		if err := d.write(out); err != nil {
			return err
		}
		src = src[2*k:]
	}
	return nil
}

// appendColor appends the bus encoding of an RGB565 value.
func (d *Device) appendColor(b []uint8, c uint16) []uint8 {
	if d.format == PixelFormat18 {
		r, g, bl := expand666(c)
		return append(b, r, g, bl)
	}
	return append(b, uint8(c>>8), uint8(c))
}

func (d *Device) write(b []uint8) error {
	if err := d.tspt.Write(b); err != nil {
		return fmt.Errorf("ili9488: pixel transfer: %w", err)
	}
	return nil
}
