//go:build nooled

package board

const (
	OLEDEnabled = false
	OLEDAddress = 0x3C
)

var OLEDPins = Pins{SDA: NoPin, SCL: NoPin}

var OLEDBus = ResolveI2CBus(NoPin)
