//go:build tinygo && rp2040

package ili9488

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
)

// PIOTransport drives the 8-bit parallel bus from an RP2040 PIO state
// machine. WR and D0..D7 are owned by the PIO; the bus is write-only.
type PIOTransport struct {
	pl *piolib.Parallel8Tx
}

// NewPIOTransport claims a state machine on block and programs it for an
// 8080 write bus with WR on wr and data on d0..d0+7.
func NewPIOTransport(block *pio.PIO, wr, d0 machine.Pin, baud uint32, dma bool) (*PIOTransport, error) {
	sm, err := block.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	pl, err := piolib.NewParallel8Tx(sm, wr, d0, baud)
	if err != nil {
		return nil, err
	}
	if dma {
		if err := pl.EnableDMA(true); err != nil {
			return nil, err
		}
	}
	return &PIOTransport{pl: pl}, nil
}

func (pt *PIOTransport) Write(data []uint8) error {
	return pt.pl.Write(data)
}

// NewPIO returns a Device on a PIO driven parallel bus.
func NewPIO(pt *PIOTransport, pins Pins) *Device {
	return New(pt, BusParallel8, pins)
}
