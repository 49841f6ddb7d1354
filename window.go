package ili9488

// SetAddressWindow defines the output area for the following pixel stream
// and arms the controller with CMD_RAMWR. The window is in logical
// (rotated) coordinates and is not clipped; w and h must be at least 1.
func (d *Device) SetAddressWindow(x, y, w, h uint16) error {
	if err := d.finish(); err != nil {
		return err
	}
	d.startWrite()
	defer d.endWrite()
	return d.setWindow(x, y, w, h)
}

// setWindow sends CMD_CASET, CMD_PASET and CMD_RAMWR inside an open transaction
func (d *Device) setWindow(x, y, w, h uint16) error {
	x1 := x + w - 1
	if err := d.sendCommand(CMD_CASET,
		uint8(x>>8),
		uint8(x),
		uint8(x1>>8),
		uint8(x1),
	); err != nil {
		return err
	}
	y1 := y + h - 1
	if err := d.sendCommand(CMD_PASET,
		uint8(y>>8),
		uint8(y),
		uint8(y1>>8),
		uint8(y1),
	); err != nil {
		return err
	}
	return d.sendCommand(CMD_RAMWR)
}

// WritePixel sets a single pixel. The coordinates are not checked.
func (d *Device) WritePixel(x, y int16, color uint16) error {
	if err := d.finish(); err != nil {
		return err
	}
	d.startWrite()
	defer d.endWrite()

	if err := d.setWindow(uint16(x), uint16(y), 1, 1); err != nil {
		return err
	}
	return d.writeColor(color, 1)
}

// WriteFillRectPreclipped fills a rectangle the caller has already clipped
// to the display. Out of range coordinates are passed to the controller
// as is.
func (d *Device) WriteFillRectPreclipped(x, y, w, h int16, color uint16) error {
	if err := d.finish(); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	d.startWrite()
	defer d.endWrite()

	if err := d.setWindow(uint16(x), uint16(y), uint16(w), uint16(h)); err != nil {
		return err
	}
	return d.writeColor(color, int(w)*int(h))
}

// inBounds reports whether the rectangle lies inside the logical display.
func (d *Device) inBounds(x, y, w, h int16) bool {
	dw, dh := d.Size()
	if w <= 0 || h <= 0 || x < 0 || y < 0 {
		return false
	}
	return int(x)+int(w) <= int(dw) && int(y)+int(h) <= int(dh)
}
