package ili9488

import (
	"time"
)

// initStep is one command of the power-on sequence, followed by a settle
// delay the panel needs before it accepts the next command.
type initStep struct {
	cmd    uint8
	params []uint8
	delay  time.Duration
}

var initSequence = []initStep{
	{cmd: CMD_GMCTRP1, params: gammaPositive},
	{cmd: CMD_GMCTRN1, params: gammaNegative},
	{cmd: CMD_PWCTR1, params: powerControl1},
	{cmd: CMD_PWCTR2, params: powerControl2},
	{cmd: CMD_VMCTR1, params: vcomControl},
	{cmd: CMD_IFMODE, params: interfaceMode},
	{cmd: CMD_FRMCTR1, params: frameRate},
	{cmd: CMD_INVCTR, params: inversionControl},
	{cmd: CMD_DFUNCTR, params: displayFunction},
	{cmd: CMD_ETMOD, params: entryMode},
	{cmd: CMD_SETIMAGE, params: imageFunction},
	{cmd: CMD_ADJCTR3, params: adjustControl3},
	{cmd: CMD_SLPOUT, delay: 120 * time.Millisecond},
	{cmd: CMD_DISPON, delay: 20 * time.Millisecond},
}

// initPanel performs base-level initialization and setup of the TFT display
func (d *Device) initPanel() error {
	for _, step := range initSequence {
		if err := d.writeCmd(step.cmd, step.params...); err != nil {
			return err
		}
		if step.delay > 0 {
			d.sleep(step.delay)
		}
	}

	pixfmt := PIXFMT_16BPP
	if d.format == PixelFormat18 {
		pixfmt = PIXFMT_18BPP
	}
	if err := d.writeCmd(CMD_PIXFMT, pixfmt); err != nil {
		return err
	}

	return d.updateMadctl()
}
