//go:build rp2040 && !nooled && !softi2c

package main

import (
	"ogxmini/board"
	"ogxmini/core"
	"ogxmini/display"
)

// No Timeout: machine.I2C.Tx does not yield, so the timer could never fire
// first. The driver aborts a stuck write itself.
func newOLEDTransport() (display.ByteTransport, display.GPIODelay) {
	t := display.NewHardwareTransport(core.MustI2C(), board.OLEDBus, board.OLEDSDAPin, board.OLEDSCLPin)
	return t, display.NewDelay()
}
