// Package board holds the pin assignments of the OLED header and the
// mapping from those pins to the RP2040 I2C controllers.
package board

import "ogxmini/core"

// ResolveI2CBus picks the controller that serves sda. Pins outside the
// I2C1 set map to I2C0.
func ResolveI2CBus(sda core.GPIOPin) core.I2CBusID {
	switch sda {
	case 2, 6, 10, 14, 15, 18, 26:
		return core.I2C1
	}
	return core.I2C0
}

// SecondaryBusPins returns the data pins served by I2C1, in pin order.
func SecondaryBusPins() []core.GPIOPin {
	var pins []core.GPIOPin
	for p := core.GPIOPin(0); p <= MaxGPIO; p++ {
		if ResolveI2CBus(p) == core.I2C1 {
			pins = append(pins, p)
		}
	}
	return pins
}
