package ili9488

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestFillScreenWhite(t *testing.T) {
	d, tb := newTestDevice(t, Config{})

	if err := d.WriteFillRectPreclipped(0, 0, 320, 480, WHITE); err != nil {
		t.Fatal(err)
	}

	cmds := tb.commands()
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	expectCommands(t, cmds[:2], []command{
		{cmd: CMD_CASET, data: []uint8{0x00, 0x00, 0x01, 0x3f}},
		{cmd: CMD_PASET, data: []uint8{0x00, 0x00, 0x01, 0xdf}},
	})
	if cmds[2].cmd != CMD_RAMWR {
		t.Fatalf("command 2 = %#02x, want CMD_RAMWR", cmds[2].cmd)
	}
	if n := len(cmds[2].data); n != 2*153600 {
		t.Fatalf("pixel data = %d bytes, want %d", n, 2*153600)
	}
	for i, b := range cmds[2].data {
		if b != 0xff {
			t.Fatalf("pixel byte %d = %#02x, want 0xff", i, b)
		}
	}
}

func TestConfigureThenFillScreen(t *testing.T) {
	tb := &testBus{dc: &testPin{}, cs: &testPin{}}
	d := New(tb, BusSerial, Pins{DC: tb.dc, CS: tb.cs})
	d.sleep = func(time.Duration) {}

	if err := d.Configure(Config{}); err != nil {
		t.Fatal(err)
	}
	if err := d.SetRotation(0); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteFillRectPreclipped(0, 0, 320, 480, 0xffff); err != nil {
		t.Fatal(err)
	}

	want := []command{{cmd: CMD_SWRESET}}
	for _, step := range initSequence {
		want = append(want, command{cmd: step.cmd, data: step.params})
	}
	want = append(want,
		command{cmd: CMD_PIXFMT, data: []uint8{PIXFMT_16BPP}},
		command{cmd: CMD_MADCTL, data: []uint8{0x00}},
		command{cmd: CMD_MADCTL, data: []uint8{0x00}},
		command{cmd: CMD_CASET, data: []uint8{0x00, 0x00, 0x01, 0x3f}},
		command{cmd: CMD_PASET, data: []uint8{0x00, 0x00, 0x01, 0xdf}},
		command{cmd: CMD_RAMWR, data: bytes.Repeat([]uint8{0xff}, 2*153600)},
	)
	expectCommands(t, tb.commands(), want)
	if tb.csViolations != 0 {
		t.Errorf("%d transfers with chip select released", tb.csViolations)
	}
}

func TestWritePixel(t *testing.T) {
	d, tb := newTestDevice(t, Config{})

	if err := d.WritePixel(10, 20, BLUE); err != nil {
		t.Fatal(err)
	}
	expectCommands(t, tb.commands(), []command{
		{cmd: CMD_CASET, data: []uint8{0x00, 0x0a, 0x00, 0x0a}},
		{cmd: CMD_PASET, data: []uint8{0x00, 0x14, 0x00, 0x14}},
		{cmd: CMD_RAMWR, data: []uint8{0x00, 0x1f}},
	})
}

func TestSetAddressWindowEncoding(t *testing.T) {
	tests := []struct {
		x, y, w, h uint16
		caset      []uint8
		paset      []uint8
	}{
		{0, 0, 1, 1, []uint8{0x00, 0x00, 0x00, 0x00}, []uint8{0x00, 0x00, 0x00, 0x00}},
		{256, 300, 64, 180, []uint8{0x01, 0x00, 0x01, 0x3f}, []uint8{0x01, 0x2c, 0x01, 0xdf}},
		{0, 0, 480, 320, []uint8{0x00, 0x00, 0x01, 0xdf}, []uint8{0x00, 0x00, 0x01, 0x3f}},
	}
	for _, tt := range tests {
		d, tb := newTestDevice(t, Config{})
		// the same window twice must be sent twice
		for i := 0; i < 2; i++ {
			if err := d.SetAddressWindow(tt.x, tt.y, tt.w, tt.h); err != nil {
				t.Fatal(err)
			}
		}
		want := []command{
			{cmd: CMD_CASET, data: tt.caset},
			{cmd: CMD_PASET, data: tt.paset},
			{cmd: CMD_RAMWR},
		}
		expectCommands(t, tb.commands(), append(want, want...))
	}
}

func TestWritePixelsByteOrder(t *testing.T) {
	colors := []uint16{RED, GREEN, BLUE, ORANGE, PINK}
	be := make([]uint8, 0, 2*len(colors))
	le := make([]uint8, 0, 2*len(colors))
	for _, c := range colors {
		be = append(be, uint8(c>>8), uint8(c))
		le = append(le, uint8(c), uint8(c>>8))
	}
	leCopy := append([]uint8(nil), le...)

	for _, format := range []PixelFormat{PixelFormat16, PixelFormat18} {
		d, tb := newTestDevice(t, Config{PixelFormat: format})
		if err := d.WritePixels(be, true, true); err != nil {
			t.Fatal(err)
		}
		fromBE := tb.commands()[0].data
		tb.reset()

		if err := d.WritePixels(le, true, false); err != nil {
			t.Fatal(err)
		}
		fromLE := tb.commands()[0].data

		if !bytes.Equal(fromBE, fromLE) {
			t.Errorf("format %d: big-endian % x != little-endian % x", format, fromBE, fromLE)
		}
		if len(fromBE) != len(colors)*format.bytesPerPixel() {
			t.Errorf("format %d: %d bytes, want %d", format, len(fromBE), len(colors)*format.bytesPerPixel())
		}
		if !bytes.Equal(le, leCopy) {
			t.Error("WritePixels modified the source buffer")
		}
	}
}

func TestWritePixelsBigEndianDirect(t *testing.T) {
	d, tb := newTestDevice(t, Config{})
	buf := make([]uint8, 1000)
	for i := range buf {
		buf[i] = uint8(i)
	}
	if err := d.WritePixels(buf, true, true); err != nil {
		t.Fatal(err)
	}
	if len(tb.writes) != 1 || !bytes.Equal(tb.writes[0].data, buf) {
		t.Errorf("big-endian 16 bpp pixels not sent in one transfer")
	}
}

func TestWritePixelsOddLength(t *testing.T) {
	d, tb := newTestDevice(t, Config{})
	if err := d.WritePixels([]uint8{0xf8, 0x00, 0x12}, true, true); err != nil {
		t.Fatal(err)
	}
	if got := tb.commands()[0].data; !bytes.Equal(got, []uint8{0xf8, 0x00}) {
		t.Errorf("got % x, want f8 00", got)
	}
}

func TestWriteColorCount(t *testing.T) {
	for _, format := range []PixelFormat{PixelFormat16, PixelFormat18} {
		var want []uint8
		switch format {
		case PixelFormat16:
			want = []uint8{0xfd, 0x20}
		case PixelFormat18:
			want = []uint8{0xf8, 0xa4, 0x00}
		}
		for _, n := range []int{0, 1, 63, 64, 65, 95, 96, 97, 1000, 153600} {
			d, tb := newTestDevice(t, Config{PixelFormat: format})
			if err := d.WriteColor(ORANGE, n); err != nil {
				t.Fatal(err)
			}

			var total int
			for _, w := range tb.writes {
				if len(w.data) > bufferSize || len(w.data)%len(want) != 0 {
					t.Fatalf("format %d n %d: transfer of %d bytes", format, n, len(w.data))
				}
				for i := 0; i < len(w.data); i += len(want) {
					if !bytes.Equal(w.data[i:i+len(want)], want) {
						t.Fatalf("format %d n %d: pixel % x, want % x", format, n, w.data[i:i+len(want)], want)
					}
				}
				total += len(w.data)
			}
			if total != n*len(want) {
				t.Errorf("format %d: WriteColor(%d) sent %d bytes, want %d", format, n, total, n*len(want))
			}
		}
	}
}

type repeatBus struct {
	testBus
	calls []uint16
	count int
}

func (rb *repeatBus) WriteRepeated(data uint16, n int) error {
	rb.calls = append(rb.calls, data)
	rb.count += n
	return nil
}

func TestWriteColorRepeatWriter(t *testing.T) {
	rb := &repeatBus{testBus: testBus{dc: &testPin{}}}
	d := New(rb, BusSerial, Pins{DC: rb.dc})

	if err := d.WriteFillRectPreclipped(0, 0, 20, 10, MAGENTA); err != nil {
		t.Fatal(err)
	}
	if len(rb.calls) != 1 || rb.calls[0] != MAGENTA || rb.count != 200 {
		t.Errorf("WriteRepeated calls %x count %d, want one call of 200", rb.calls, rb.count)
	}
	if cmds := rb.commands(); len(cmds) != 3 || len(cmds[2].data) != 0 {
		t.Error("pixel data sent through Write")
	}
}

type asyncBus struct {
	testBus
	inflight []uint8
	waits    int
	waitErr  error
}

func (ab *asyncBus) WriteAsync(b []uint8) error {
	ab.inflight = b
	return ab.Write(b)
}

func (ab *asyncBus) Wait() error {
	ab.waits++
	ab.inflight = nil
	return ab.waitErr
}

func TestWritePixelsNonBlocking(t *testing.T) {
	ab := &asyncBus{testBus: testBus{dc: &testPin{}, cs: &testPin{}}}
	d := New(ab, BusSerial, Pins{DC: ab.dc, CS: ab.cs})

	buf := []uint8{0xf8, 0x00, 0x07, 0xe0}
	if err := d.SetAddressWindow(0, 0, 2, 1); err != nil {
		t.Fatal(err)
	}
	if err := d.WritePixels(buf, false, true); err != nil {
		t.Fatal(err)
	}
	if ab.inflight == nil {
		t.Fatal("non-blocking write did not use WriteAsync")
	}
	if ab.cs.level {
		t.Error("chip select released during a transfer in flight")
	}

	// the next operation completes the transfer first
	if err := d.WritePixel(0, 0, RED); err != nil {
		t.Fatal(err)
	}
	if ab.waits != 1 {
		t.Errorf("Wait called %d times, want 1", ab.waits)
	}
	if !ab.cs.level {
		t.Error("chip select asserted after the transfer completed")
	}
	if err := d.Wait(); err != nil || ab.waits != 1 {
		t.Errorf("Wait() = %v with %d waits, want no extra wait", err, ab.waits)
	}
}

func TestWritePixelsNonBlockingNeedsConversion(t *testing.T) {
	ab := &asyncBus{testBus: testBus{dc: &testPin{}}}
	d := New(ab, BusSerial, Pins{DC: ab.dc})

	if err := d.WritePixels([]uint8{0x00, 0xf8}, false, false); err != nil {
		t.Fatal(err)
	}
	if ab.inflight != nil || d.pending {
		t.Error("little-endian pixels sent asynchronously")
	}
}

func TestStartWriteReportsPendingError(t *testing.T) {
	ab := &asyncBus{testBus: testBus{dc: &testPin{}, cs: &testPin{}}}
	d := New(ab, BusSerial, Pins{DC: ab.dc, CS: ab.cs})
	errBus := errors.New("dma fault")
	ab.waitErr = errBus

	if err := d.WritePixels([]uint8{0xf8, 0x00}, false, true); err != nil {
		t.Fatal(err)
	}
	if err := d.StartWrite(); !errors.Is(err, errBus) {
		t.Errorf("StartWrite() = %v, want %v", err, errBus)
	}
	if ab.cs.level {
		t.Error("StartWrite did not take the bus after a failed transfer")
	}
	d.EndWrite()
	if !ab.cs.level {
		t.Error("chip select still asserted after EndWrite")
	}

	if err := d.StartWrite(); err != nil {
		t.Errorf("StartWrite() with nothing pending = %v", err)
	}
	d.EndWrite()
}
