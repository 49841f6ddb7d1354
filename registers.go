package ili9488

const (
	TFT_DEFAULT_WIDTH  uint16 = 320 // Rotation0, portrait
	TFT_DEFAULT_HEIGHT uint16 = 480
)

const ( // ILI9488 Datasheet v1.0, pp. 140-146
	CMD_NOP     uint8 = 0x00 // No Operation
	CMD_SWRESET uint8 = 0x01 // Software Reset

	CMD_RDDID      uint8 = 0x04 // Read Display Identification Information
	CMD_RDDST      uint8 = 0x09 // Read Display Status
	CMD_RDMODE     uint8 = 0x0a // Read Display Power Mode
	CMD_RDMADCTL   uint8 = 0x0b // Read Display MADCTL
	CMD_RDPIXFMT   uint8 = 0x0c // Read Display Pixel Format
	CMD_RDIMGFMT   uint8 = 0x0d // Read Display Image Mode
	CMD_RDSIGMODE  uint8 = 0x0e // Read Display Signal Mode
	CMD_RDSELFDIAG uint8 = 0x0f // Read Display Self-Diagnostic Result

	CMD_SLPIN    uint8 = 0x10 // Enter Sleep Mode
	CMD_SLPOUT   uint8 = 0x11 // Sleep Out
	CMD_PTLON    uint8 = 0x12 // Partial Mode ON
	CMD_NORON    uint8 = 0x13 // Normal Display Mode ON
	CMD_INVOFF   uint8 = 0x20 // Display Inversion OFF
	CMD_INVON    uint8 = 0x21 // Display Inversion ON
	CMD_GAMMASET uint8 = 0x26 // Gamma Set
	CMD_DISPOFF  uint8 = 0x28 // Display OFF
	CMD_DISPON   uint8 = 0x29 // Display ON

	CMD_CASET    uint8 = 0x2a // Column Address Set
	CMD_PASET    uint8 = 0x2b // Page Address Set
	CMD_RAMWR    uint8 = 0x2c // Memory Write
	CMD_RAMRD    uint8 = 0x2e // Memory Read
	CMD_PTLAR    uint8 = 0x30 // Partial Area
	CMD_VSCRDEF  uint8 = 0x33 // Vertical Scrolling Definition
	CMD_TEOFF    uint8 = 0x34 // Tearing Effect Line OFF
	CMD_TEON     uint8 = 0x35 // Tearing Effect Line ON
	CMD_MADCTL   uint8 = 0x36 // Memory Access Control
	CMD_VSCRSADD uint8 = 0x37 // Vertical Scrolling Start Address
	CMD_IDMOFF   uint8 = 0x38 // Idle Mode OFF
	CMD_IDMON    uint8 = 0x39 // Idle Mode ON
	CMD_PIXFMT   uint8 = 0x3a // COLMOD: Interface Pixel Format
	CMD_RAMWRC   uint8 = 0x3c // Memory Write Continue
	CMD_RAMRDC   uint8 = 0x3e // Memory Read Continue

	CMD_IFMODE  uint8 = 0xb0 // Interface Mode Control
	CMD_FRMCTR1 uint8 = 0xb1 // Frame Rate Control (In Normal Mode/Full Colors)
	CMD_FRMCTR2 uint8 = 0xb2 // Frame Rate Control (In Idle Mode/8 colors)
	CMD_FRMCTR3 uint8 = 0xb3 // Frame Rate control (In Partial Mode/Full Colors)
	CMD_INVCTR  uint8 = 0xb4 // Display Inversion Control
	CMD_PRCTR   uint8 = 0xb5 // Blanking Porch Control
	CMD_DFUNCTR uint8 = 0xb6 // Display Function Control
	CMD_ETMOD   uint8 = 0xb7 // Entry Mode Set

	CMD_PWCTR1 uint8 = 0xc0 // Power Control 1
	CMD_PWCTR2 uint8 = 0xc1 // Power Control 2
	CMD_PWCTR3 uint8 = 0xc2 // Power Control 3
	CMD_PWCTR4 uint8 = 0xc3 // Power Control 4
	CMD_PWCTR5 uint8 = 0xc4 // Power Control 5
	CMD_VMCTR1 uint8 = 0xc5 // VCOM Control 1
	CMD_VMCTR2 uint8 = 0xc7 // VCOM Control 2

	CMD_RDIDX uint8 = 0xd9 // SPI Read Command Index (undocumented)
	CMD_RDID1 uint8 = 0xda // Read ID1
	CMD_RDID2 uint8 = 0xdb // Read ID2
	CMD_RDID3 uint8 = 0xdc // Read ID3
	CMD_RDID4 uint8 = 0xd3 // Read ID4

	CMD_GMCTRP1  uint8 = 0xe0 // Positive Gamma Correction
	CMD_GMCTRN1  uint8 = 0xe1 // Negative Gamma Correction
	CMD_SETIMAGE uint8 = 0xe9 // Set Image Function
	CMD_ADJCTR3  uint8 = 0xf7 // Adjust Control 3
)

const (
	MADCTL_MY  uint8 = 0x80 // Row Address Order         1 = address bottom to top
	MADCTL_MX  uint8 = 0x40 // Column Address Order      1 = address right to left
	MADCTL_MV  uint8 = 0x20 // Row/Column Exchange       1 = mirror and rotate 90 ccw
	MADCTL_ML  uint8 = 0x10 // Vertical Refresh Order    1 = refresh bottom to top
	MADCTL_BGR uint8 = 0x08 // RGB-BGR Order             1 = Blue-Green-Red pixel order
	MADCTL_MH  uint8 = 0x04 // Horizontal Refresh Order  1 = refresh right to left
)

// COLMOD parameters: DPI bits [6:4], DBI bits [2:0].
const (
	PIXFMT_16BPP uint8 = 0x55
	PIXFMT_18BPP uint8 = 0x66
)

// Default parameter blobs for the power-on sequence.
var (
	gammaPositive = []uint8{0x00, 0x03, 0x09, 0x08, 0x16, 0x0a, 0x3f, 0x78, 0x4c, 0x09, 0x0a, 0x08, 0x16, 0x1a, 0x0f}
	gammaNegative = []uint8{0x00, 0x16, 0x19, 0x03, 0x0f, 0x05, 0x32, 0x45, 0x46, 0x04, 0x0e, 0x0d, 0x35, 0x37, 0x0f}

	powerControl1 = []uint8{
		0x17, // VREG1OUT:  5.0000
		0x15, // VREG2OUT: -4.8750
	}
	powerControl2 = []uint8{
		0x41, // VGH: VCI x 6  VGL: -VCI x 4
	}
	vcomControl = []uint8{
		0x00, // nVM
		0x12, // VCM_REG:    -1.71875
		0x80, // VCM_REG_EN: true
	}
	interfaceMode = []uint8{
		0x00, // SDA_EN: DIN/SDO both used
	}
	frameRate = []uint8{
		0xa0, // FRS: 60.76  DIVA: 0
		0x11, // RTNA: 17 clocks
	}
	inversionControl = []uint8{
		0x02, // DINV: 2 dot inversion
	}
	displayFunction = []uint8{
		0x02, // PT: AGND
		0x22, // SS: S960 -> S1  ISC: 5 frames
		0x3b, // NL: 8 * (3b + 1) = 480 lines
	}
	entryMode = []uint8{
		0xc6, // EPF: 11 (db5 -> r0,g0,b0)
	}
	imageFunction = []uint8{
		0x00, // 24-bit data bus off
	}
	adjustControl3 = []uint8{
		0xa9,
		0x51,
		0x2c,
		0x82, // DSI_18_option: loosely packed
	}
)
