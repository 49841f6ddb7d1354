//go:build tinygo

package ili9488

import (
	"machine"
)

// OutputPin configures p as an output. It returns nil for machine.NoPin so
// optional lines in Pins can be filled in unconditionally.
func OutputPin(p machine.Pin) Pin {
	if p == machine.NoPin {
		return nil
	}
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return p
}

// BidiPin is a data line of a readable parallel bus.
type BidiPin machine.Pin

func (p BidiPin) High()         { machine.Pin(p).High() }
func (p BidiPin) Low()          { machine.Pin(p).Low() }
func (p BidiPin) Set(high bool) { machine.Pin(p).Set(high) }
func (p BidiPin) Get() bool     { return machine.Pin(p).Get() }

// SetInput switches the line between input and output.
func (p BidiPin) SetInput(input bool) {
	mode := machine.PinOutput
	if input {
		mode = machine.PinInput
	}
	machine.Pin(p).Configure(machine.PinConfig{Mode: mode})
}

// ParallelPins configures eight consecutive GPIOs starting at d0 as the
// data lines of a parallel bus.
func ParallelPins(d0 machine.Pin, readable bool) (data [8]Pin) {
	for i := range data {
		p := d0 + machine.Pin(i)
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		if readable {
			data[i] = BidiPin(p)
		} else {
			data[i] = p
		}
	}
	return data
}
