package ili9488

import (
	"tinygo.org/x/drivers"
)

// SPITransport sends bytes through a hardware SPI peripheral. machine.SPI
// satisfies drivers.SPI.
type SPITransport struct {
	spi drivers.SPI // spi bus
	max int         // largest single Tx, 0 = unlimited
}

// NewSPITransport returns a transport on spi. maxTx bounds the size of a
// single Tx call for peripherals with a limited DMA descriptor; 0 means no
// limit.
func NewSPITransport(spi drivers.SPI, maxTx int) *SPITransport {
	return &SPITransport{
		spi: spi,
		max: maxTx,
	}
}

func (st *SPITransport) Write(data []uint8) error {
	if st.max <= 0 {
		return st.spi.Tx(data, nil)
	}
	for len(data) > 0 {
		n := len(data)
		if n > st.max {
			n = st.max
		}
		if err := st.spi.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// ReadByte clocks out a zero byte and returns what the panel drove on SDO.
func (st *SPITransport) ReadByte() (byte, error) {
	return st.spi.Transfer(0)
}
