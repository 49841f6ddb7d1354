package ili9488

// Transport moves bytes between the host and the controller. It knows
// nothing about chip select or the data/command line; the Device drives
// those pins around each transfer.
type Transport interface {
	// Write sends b, most significant bit of each byte first.
	Write(b []uint8) error
}

// RepeatWriter is implemented by transports that can repeat a 16-bit value
// without a source buffer. The value goes out high byte first.
type RepeatWriter interface {
	WriteRepeated(data uint16, n int) error
}

// AsyncWriter is implemented by transports that can send without blocking.
// b must not be modified until Wait returns. At most one write is in flight.
type AsyncWriter interface {
	WriteAsync(b []uint8) error
	Wait() error
}

// FrequencySetter is implemented by transports with an adjustable clock.
type FrequencySetter interface {
	SetFrequency(hz uint32) error
}

// Pin is a digital output line. machine.Pin satisfies it under TinyGo.
type Pin interface {
	High()
	Low()
	Set(high bool)
	Get() bool
}

// DirPin is a Pin whose direction can be switched, used for the data lines
// of a readable parallel bus.
type DirPin interface {
	Pin
	SetInput(input bool)
}
