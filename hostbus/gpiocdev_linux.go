//go:build linux

package hostbus

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// LinePin is a GPIO line requested through the Linux GPIO character
// device. It satisfies ili9488.Pin and ili9488.DirPin.
type LinePin struct {
	line *gpiocdev.Line
	err  error
}

// RequestPin requests offset on chip (e.g. "gpiochip0") as an output,
// initially low.
func RequestPin(chip string, offset int) (*LinePin, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("hostbus: request %s:%d: %w", chip, offset, err)
	}
	return &LinePin{line: line}, nil
}

func (lp *LinePin) High() { lp.set(1) }
func (lp *LinePin) Low()  { lp.set(0) }

func (lp *LinePin) Set(high bool) {
	if high {
		lp.set(1)
	} else {
		lp.set(0)
	}
}

func (lp *LinePin) Get() bool {
	v, err := lp.line.Value()
	if err != nil {
		lp.keep(err)
		return false
	}
	return v != 0
}

// SetInput switches the line direction.
func (lp *LinePin) SetInput(input bool) {
	if input {
		lp.keep(lp.line.Reconfigure(gpiocdev.AsInput))
	} else {
		lp.keep(lp.line.Reconfigure(gpiocdev.AsOutput(0)))
	}
}

// Err returns the first error seen on the line.
func (lp *LinePin) Err() error {
	return lp.err
}

// Close releases the line.
func (lp *LinePin) Close() error {
	return lp.line.Close()
}

func (lp *LinePin) set(v int) {
	lp.keep(lp.line.SetValue(v))
}

func (lp *LinePin) keep(err error) {
	if err != nil && lp.err == nil {
		lp.err = fmt.Errorf("hostbus: gpio line: %w", err)
	}
}
