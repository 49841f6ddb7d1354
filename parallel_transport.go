package ili9488

// ParallelTransport drives an 8080-style 8-bit parallel bus: the byte is
// placed on D0..D7 and latched by the rising edge of WR. Reads pulse RD and
// sample D0..D7, which requires data pins that implement DirPin.
type ParallelTransport struct {
	data [8]Pin
	wr   Pin
	rd   Pin // nil for a write-only bus
	last int // last byte on the data lines, -1 if unknown
}

// NewParallelTransport returns a transport on data pins d (D0 first), write
// strobe wr and optional read strobe rd.
func NewParallelTransport(d [8]Pin, wr, rd Pin) *ParallelTransport {
	pt := &ParallelTransport{
		data: d,
		wr:   wr,
		rd:   rd,
		last: -1,
	}
	pt.wr.High()
	if pt.rd != nil {
		pt.rd.High()
	}
	return pt
}

func (pt *ParallelTransport) Write(data []uint8) error {
	for _, b := range data {
		pt.put(b)
		pt.strobe()
	}
	return nil
}

// WriteRepeated sends data n times, high byte first. When both bytes are
// equal the data lines are set once and only WR is toggled.
func (pt *ParallelTransport) WriteRepeated(data uint16, n int) error {
	hi, lo := uint8(data>>8), uint8(data)
	if hi == lo {
		pt.put(hi)
		for i := 0; i < 2*n; i++ {
			pt.strobe()
		}
		return nil
	}
	for i := 0; i < n; i++ {
		pt.put(hi)
		pt.strobe()
		pt.put(lo)
		pt.strobe()
	}
	return nil
}

// ReadByte pulses RD and samples the data lines.
func (pt *ParallelTransport) ReadByte() (byte, error) {
	if pt.rd == nil {
		return 0, ErrNotReadable
	}
	for _, p := range pt.data {
		dp, ok := p.(DirPin)
		if !ok {
			return 0, ErrNotReadable
		}
		dp.SetInput(true)
	}
	defer func() {
		for _, p := range pt.data {
			p.(DirPin).SetInput(false)
		}
		pt.last = -1
	}()

	pt.rd.Low()
	var b uint8
	for i, p := range pt.data {
		if p.Get() {
			b |= 1 << i
		}
	}
	pt.rd.High()
	return b, nil
}

func (pt *ParallelTransport) put(b uint8) {
	if int(b) == pt.last {
		return
	}
	for i, p := range pt.data {
		p.Set(b&(1<<i) != 0)
	}
	pt.last = int(b)
}

func (pt *ParallelTransport) strobe() {
	pt.wr.Low()
	pt.wr.High()
}
