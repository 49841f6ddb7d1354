package demo

import (
	"image/color"
)

// https://www.w3schools.com/colors/colors_wheels.asp
const (
	BLACK uint32 = 0x000000
	WHITE uint32 = 0xffffff

	// https://www.w3schools.com/colors/pic_cmyk_wheel.gif
	CMY_CYAN    uint32 = 0x00ffff
	CMY_CBLUE   uint32 = 0x0080ff
	CMY_BLUE    uint32 = 0x0000ff
	CMY_PURPLE  uint32 = 0x8000ff
	CMY_MAGENTA uint32 = 0xff00ff
	CMY_MRED    uint32 = 0xff0080
	CMY_RED     uint32 = 0xff0000
	CMY_ORANGE  uint32 = 0xff8000
	CMY_YELLOW  uint32 = 0xffff00
	CMY_YGREEN  uint32 = 0x80ff00
	CMY_GREEN   uint32 = 0x00ff00
	CMY_CGREEN  uint32 = 0x00ff80

	// https://www.w3schools.com/colors/pic_ryb_itten.jpg
	RYB_RED     uint32 = 0xfe2712
	RYB_RORANGE uint32 = 0xfc600a
	RYB_ORANGE  uint32 = 0xfb9902
	RYB_YORANGE uint32 = 0xfccc1a
	RYB_YELLOW  uint32 = 0xfefe33
	RYB_YGREEN  uint32 = 0xb2d732
	RYB_GREEN   uint32 = 0x66b032
	RYB_BGREEN  uint32 = 0x347c98
	RYB_BLUE    uint32 = 0x0247fe
	RYB_BPURPLE uint32 = 0x4424d6
	RYB_PURPLE  uint32 = 0x8601af
	RYB_RPURPLE uint32 = 0xc21460
)

var (
	CMYColors = []uint32{CMY_CYAN, CMY_CBLUE, CMY_BLUE, CMY_PURPLE, CMY_MAGENTA, CMY_MRED, CMY_RED, CMY_ORANGE, CMY_YELLOW, CMY_YGREEN, CMY_GREEN, CMY_CGREEN}
	RYBColors = []uint32{RYB_RED, RYB_RORANGE, RYB_ORANGE, RYB_YORANGE, RYB_YELLOW, RYB_YGREEN, RYB_GREEN, RYB_BGREEN, RYB_BLUE, RYB_BPURPLE, RYB_PURPLE, RYB_RPURPLE}
)

var blockPalette = [10][10]uint32{
	{0xfdedec, 0xfadbd8, 0xf5b7b1, 0xf1948a, 0xec7063, 0xe74c3c, 0xcb4335, 0xb03a2e, 0x943126, 0x78281f}, // reds
	{0xf4ecf7, 0xe8daef, 0xd2b4de, 0xbb8fce, 0xa569bd, 0x8e44ad, 0x7d3c98, 0x6c3483, 0x5b2c6f, 0x4a235a}, // purples
	{0xebf5fb, 0xd6eaf8, 0xaed6f1, 0x85c1e9, 0x5dade2, 0x3498db, 0x2e86c1, 0x2874a6, 0x21618c, 0x1b4f72}, // blues
	{0xe8f6f3, 0xd0ece7, 0xa2d9ce, 0x73c6b6, 0x45b39d, 0x16a085, 0x138d75, 0x117a65, 0x0e6655, 0x0b5345}, // d-greens
	{0xeafaf1, 0xd5f5e3, 0xabebc6, 0x82e0aa, 0x58d68d, 0x2ecc71, 0x28b463, 0x239b56, 0x1d8348, 0x186a3b}, // l-greens
	{0xfef9e7, 0xfcf3cf, 0xf9e79f, 0xf7dc6f, 0xf4d03f, 0xf1c40f, 0xd4ac0d, 0xb7950b, 0x9a7d0a, 0x7d6608}, // yellows
	{0xfef5e7, 0xfdebd0, 0xfad7a0, 0xf8c471, 0xf5b041, 0xf39c12, 0xd68910, 0xb9770e, 0x9c640c, 0x7e5109}, // oranges
	{0xfbeee6, 0xf6ddcc, 0xedbb99, 0xe59866, 0xdc7633, 0xd35400, 0xba4a00, 0xa04000, 0x873600, 0x6e2c00}, // browns
	{0xf8f9f9, 0xf2f3f4, 0xe5e7e9, 0xd7dbdd, 0xcacfd2, 0xbdc3c7, 0xa6acaf, 0x909497, 0x797d7f, 0x626567}, // grays
	{0xeaecee, 0xd5d8dc, 0xabb2b9, 0x808b96, 0x566573, 0x2c3e50, 0x273746, 0x212f3d, 0x1c2833, 0x17202a}, // steel
}

// RGB converts a 0xrrggbb value.
func RGB(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}
