//go:build !nooled

package board

// OLED header wiring of the stock board.
const (
	OLEDEnabled = true

	OLEDSDAPin = 10
	OLEDSCLPin = 11

	// OLEDAddress is the 7-bit address of the SSD1306 panel.
	OLEDAddress = 0x3C
)

// Both pins must be valid GPIOs and distinct; a violation fails the build.
const (
	_ = MaxGPIO - OLEDSDAPin
	_ = MaxGPIO - OLEDSCLPin
	_ = 1 / (OLEDSDAPin - OLEDSCLPin)
)

var OLEDPins = Pins{SDA: OLEDSDAPin, SCL: OLEDSCLPin}

// OLEDBus is derived from the data pin at build time.
var OLEDBus = ResolveI2CBus(OLEDSDAPin)
