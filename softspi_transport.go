package ili9488

import (
	"time"
)

// SoftSPITransport bit-bangs SPI mode 0 (clock idle low, sample on the
// rising edge) over plain GPIO pins. It is the slowest bus, useful when
// the panel sits on pins without an SPI peripheral.
type SoftSPITransport struct {
	sck Pin
	sdo Pin
	sdi Pin // nil if the panel's SDO is not wired

	halfPeriod time.Duration
	delay      func(time.Duration)
}

// NewSoftSPITransport returns a bit-banged transport. sdi may be nil. hz
// sets the target clock; 0 runs as fast as the pins toggle.
func NewSoftSPITransport(sck, sdo, sdi Pin, hz uint32) *SoftSPITransport {
	st := &SoftSPITransport{
		sck:   sck,
		sdo:   sdo,
		sdi:   sdi,
		delay: busyWait,
	}
	st.SetFrequency(hz)
	st.sck.Low()
	st.sdo.Low()
	return st
}

// SetFrequency changes the bit clock.
func (st *SoftSPITransport) SetFrequency(hz uint32) error {
	st.halfPeriod = 0
	if hz > 0 {
		st.halfPeriod = time.Duration(500000000/hz) * time.Nanosecond
	}
	return nil
}

func (st *SoftSPITransport) Write(data []uint8) error {
	for _, b := range data {
		st.shift(b)
	}
	return nil
}

// WriteRepeated shifts data out n times, high byte first.
func (st *SoftSPITransport) WriteRepeated(data uint16, n int) error {
	hi, lo := uint8(data>>8), uint8(data)
	for i := 0; i < n; i++ {
		st.shift(hi)
		st.shift(lo)
	}
	return nil
}

// ReadByte clocks in one byte on sdi.
func (st *SoftSPITransport) ReadByte() (byte, error) {
	if st.sdi == nil {
		return 0, ErrNotReadable
	}
	var b uint8
	st.sdo.Low()
	for i := 0; i < 8; i++ {
		st.wait()
		st.sck.High()
		b <<= 1
		if st.sdi.Get() {
			b |= 1
		}
		st.wait()
		st.sck.Low()
	}
	return b, nil
}

func (st *SoftSPITransport) shift(b uint8) {
	for mask := uint8(0x80); mask != 0; mask >>= 1 {
		st.sdo.Set(b&mask != 0)
		st.wait()
		st.sck.High()
		st.wait()
		st.sck.Low()
	}
}

func (st *SoftSPITransport) wait() {
	if st.halfPeriod > 0 {
		st.delay(st.halfPeriod)
	}
}

// busyWait spins instead of sleeping; scheduler sleeps are far coarser
// than a clock half period.
func busyWait(d time.Duration) {
	start := time.Now()
	for time.Since(start) < d {
	}
}
