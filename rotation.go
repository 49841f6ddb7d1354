package ili9488

import (
	"tinygo.org/x/drivers"
)

// madctlTable maps a clock-wise panel orientation to the MY/MX/MV address
// order bits, with the ML/MH refresh order following the address order.
// Index 0 is the panel's native portrait orientation.
var madctlTable = [2][4]uint8{
	{ // regular
		0,
		MADCTL_MX | MADCTL_MH | MADCTL_MV,
		MADCTL_MX | MADCTL_MH | MADCTL_MY | MADCTL_ML,
		MADCTL_MV | MADCTL_MY | MADCTL_ML,
	},
	{ // mirrored
		MADCTL_MX | MADCTL_MH,
		MADCTL_MX | MADCTL_MH | MADCTL_MY | MADCTL_ML | MADCTL_MV,
		MADCTL_MY | MADCTL_ML,
		MADCTL_MV,
	},
}

// Size returns the current size of the display.
func (d *Device) Size() (int16, int16) {
	if d.orientation()%2 == 0 {
		return int16(d.width), int16(d.height)
	}
	return int16(d.height), int16(d.width)
}

// Rotation returns the current rotation of the display.
func (d *Device) Rotation() drivers.Rotation {
	return d.rot
}

// SetRotation sets the clock-wise rotation of the display. Values above
// Rotation270 wrap around.
func (d *Device) SetRotation(rot drivers.Rotation) error {
	if err := d.finish(); err != nil {
		return err
	}
	d.rot = rot % 4
	return d.updateMadctl()
}

// Rotate turns the display by delta quarter turns clock-wise from its
// current rotation.
func (d *Device) Rotate(delta drivers.Rotation) error {
	return d.SetRotation((d.rot + delta%4) % 4)
}

// Mirror returns true if the display is set to show a mirrored image.
func (d *Device) Mirror() bool {
	return d.mirror
}

// SetMirror switches the display between mirrored image and non-mirrored image mode.
func (d *Device) SetMirror(mirror bool) error {
	if err := d.finish(); err != nil {
		return err
	}
	d.mirror = mirror
	return d.updateMadctl()
}

// BGR returns true if the display is in blue-green-red (BGR) mode.
func (d *Device) BGR() bool {
	return d.bgr
}

// SetBGR switches the display between blue-green-red (BGR) and red-green-blue (RGB) mode.
func (d *Device) SetBGR(bgr bool) error {
	if err := d.finish(); err != nil {
		return err
	}
	d.bgr = bgr
	return d.updateMadctl()
}

// orientation is the table index: the logical rotation shifted by the
// base orientation.
func (d *Device) orientation() int {
	o := int(d.rot % 4)
	if d.landscape {
		o++
	}
	return o % 4
}

// madctlValue computes CMD_MADCTL from rotation, mirror and RGB/BGR.
func (d *Device) madctlValue() uint8 {
	m := 0
	if d.mirror {
		m = 1
	}
	madctl := madctlTable[m][d.orientation()]
	if d.bgr {
		madctl |= MADCTL_BGR
	}
	return madctl
}

// updateMadctl sends CMD_MADCTL for the current settings
func (d *Device) updateMadctl() error {
	d.madctl = d.madctlValue()
	return d.writeCmd(CMD_MADCTL, d.madctl)
}
