package ili9488

import (
	"image/color"
	"strings"
)

// RGB565 color values.
const (
	BLACK       uint16 = 0x0000 //   0,   0,   0
	NAVY        uint16 = 0x000f //   0,   0, 123
	DARKGREEN   uint16 = 0x03e0 //   0, 125,   0
	DARKCYAN    uint16 = 0x03ef //   0, 125, 123
	MAROON      uint16 = 0x7800 // 123,   0,   0
	PURPLE      uint16 = 0x780f // 123,   0, 123
	OLIVE       uint16 = 0x7be0 // 123, 125,   0
	LIGHTGREY   uint16 = 0xc618 // 198, 195, 198
	DARKGREY    uint16 = 0x7bef // 123, 125, 123
	BLUE        uint16 = 0x001f //   0,   0, 255
	GREEN       uint16 = 0x07e0 //   0, 255,   0
	CYAN        uint16 = 0x07ff //   0, 255, 255
	RED         uint16 = 0xf800 // 255,   0,   0
	MAGENTA     uint16 = 0xf81f // 255,   0, 255
	YELLOW      uint16 = 0xffe0 // 255, 255,   0
	WHITE       uint16 = 0xffff // 255, 255, 255
	ORANGE      uint16 = 0xfd20 // 255, 165,   0
	GREENYELLOW uint16 = 0xafe5 // 173, 255,  41
	PINK        uint16 = 0xfc18 // 255, 130, 198
)

var colorNames = map[string]uint16{
	"black":       BLACK,
	"navy":        NAVY,
	"darkgreen":   DARKGREEN,
	"darkcyan":    DARKCYAN,
	"maroon":      MAROON,
	"purple":      PURPLE,
	"olive":       OLIVE,
	"lightgrey":   LIGHTGREY,
	"darkgrey":    DARKGREY,
	"blue":        BLUE,
	"green":       GREEN,
	"cyan":        CYAN,
	"red":         RED,
	"magenta":     MAGENTA,
	"yellow":      YELLOW,
	"white":       WHITE,
	"orange":      ORANGE,
	"greenyellow": GREENYELLOW,
	"pink":        PINK,
}

// ColorByName looks up one of the named RGB565 colors, ignoring case.
func ColorByName(name string) (uint16, bool) {
	c, ok := colorNames[strings.ToLower(name)]
	return c, ok
}

// RGB565 packs 8-bit channels into a 16-bit 5-6-5 color.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b>>3)
}

// RGBA565 packs a color.RGBA, ignoring alpha.
func RGBA565(c color.RGBA) uint16 {
	return RGB565(c.R, c.G, c.B)
}

// expand666 splits a 5-6-5 color into the three bytes of an 18 bpp pixel.
// The controller reads the upper six bits of each byte.
func expand666(c uint16) (r, g, b uint8) {
	r = uint8(c>>8) & 0xf8
	g = uint8(c>>3) & 0xfc
	b = uint8(c << 3)
	return
}
