package ili9488

// Vertical scrolling always runs along the panel's native 480-line axis;
// the rotation decides which way that is on screen.

// ScrollTo sets the vertical scroll start address.
func (d *Device) ScrollTo(y uint16) error {
	if err := d.finish(); err != nil {
		return err
	}
	return d.writeCmd(CMD_VSCRSADD,
		uint8(y>>8),
		uint8(y))
}

// SetScrollMargins defines fixed areas of top and bottom lines around the
// scrolling area. The sum is not checked against the panel height; when it
// exceeds it the scrolling area is sent as zero lines.
func (d *Device) SetScrollMargins(top, bottom uint16) error {
	if err := d.finish(); err != nil {
		return err
	}
	var middle uint16
	if int(top)+int(bottom) < int(d.height) {
		middle = d.height - top - bottom
	}
	return d.writeCmd(CMD_VSCRDEF,
		uint8(top>>8),
		uint8(top),
		uint8(middle>>8),
		uint8(middle),
		uint8(bottom>>8),
		uint8(bottom))
}

// SetScrollArea sets an area to scroll with fixed top/bottom or left/right
// parts of the display. Rotation affects scroll direction.
func (d *Device) SetScrollArea(topFixedArea, bottomFixedArea int16) {
	d.SetScrollMargins(uint16(topFixedArea), uint16(bottomFixedArea))
}

// SetScroll sets the vertical scroll address of the display.
func (d *Device) SetScroll(line int16) {
	d.ScrollTo(uint16(line))
}

// StopScroll returns the display to its normal state
func (d *Device) StopScroll() {
	if d.finish() != nil {
		return
	}
	d.writeCmd(CMD_NORON)
}
