// Package hostbus connects the ili9488 driver to a Linux host: SPI and GPIO
// through periph.io, or GPIO through the character device API.
package hostbus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var errBusy = errors.New("hostbus: transfer in progress")

// SPI is an ili9488 transport on a periph.io SPI connection. It supports
// register reads and non-blocking pixel writes.
type SPI struct {
	c         conn.Conn
	maxTxSize int
	done      chan error
}

// NewSPI connects to p in mode 0 with 8-bit words at frequency f.
func NewSPI(p spi.Port, f physic.Frequency) (*SPI, error) {
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("hostbus: connect spi: %w", err)
	}
	return NewSPIConn(c), nil
}

// NewSPIConn wraps an existing connection.
func NewSPIConn(c conn.Conn) *SPI {
	// Get the maxTxSize from the conn if it implements the conn.Limits
	// interface, otherwise use 4096 bytes.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096
	}
	return &SPI{
		c:         c,
		maxTxSize: maxTxSize,
	}
}

func (s *SPI) String() string {
	return fmt.Sprintf("hostbus.SPI{%s}", s.c)
}

func (s *SPI) Write(data []uint8) error {
	for len(data) > 0 {
		n := len(data)
		if n > s.maxTxSize {
			n = s.maxTxSize
		}
		if err := s.c.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// ReadByte clocks out a zero byte and returns the byte read back.
func (s *SPI) ReadByte() (byte, error) {
	var w, r [1]uint8
	if err := s.c.Tx(w[:], r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

// WriteAsync starts sending data in the background. data must not be
// modified until Wait returns.
func (s *SPI) WriteAsync(data []uint8) error {
	if s.done != nil {
		return errBusy
	}
	s.done = make(chan error, 1)
	go func() {
		s.done <- s.Write(data)
	}()
	return nil
}

// Wait blocks until the transfer started by WriteAsync completes.
func (s *SPI) Wait() error {
	if s.done == nil {
		return nil
	}
	err := <-s.done
	s.done = nil
	return err
}

// Pin adapts a periph.io GPIO to ili9488.Pin and ili9488.DirPin. The first
// failed Out or In is kept and reported by Err.
type Pin struct {
	p   gpio.PinIO
	err error
}

// NewPin returns p as a driver pin, or nil if p is nil or gpio.INVALID.
func NewPin(p gpio.PinIO) *Pin {
	if p == nil || p == gpio.INVALID {
		return nil
	}
	return &Pin{p: p}
}

func (p *Pin) High() { p.out(gpio.High) }
func (p *Pin) Low()  { p.out(gpio.Low) }

func (p *Pin) Set(high bool) {
	p.out(gpio.Level(high))
}

func (p *Pin) Get() bool {
	return bool(p.p.Read())
}

// SetInput switches the line to input with no pull, or back to output low.
func (p *Pin) SetInput(input bool) {
	if !input {
		p.out(gpio.Low)
		return
	}
	if err := p.p.In(gpio.Float, gpio.NoEdge); err != nil && p.err == nil {
		p.err = fmt.Errorf("hostbus: %s: %w", p.p, err)
	}
}

// Err returns the first error seen on the pin.
func (p *Pin) Err() error {
	return p.err
}

func (p *Pin) String() string {
	return p.p.String()
}

func (p *Pin) out(l gpio.Level) {
	if err := p.p.Out(l); err != nil && p.err == nil {
		p.err = fmt.Errorf("hostbus: %s: %w", p.p, err)
	}
}
