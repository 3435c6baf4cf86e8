//go:build rp2040 && !nooled && softi2c

package main

import (
	"machine"

	"tinygo.org/x/drivers/i2csoft"

	"ogxmini/board"
	"ogxmini/display"
)

func newOLEDTransport() (display.ByteTransport, display.GPIODelay) {
	scl := machine.Pin(board.OLEDSCLPin)
	sda := machine.Pin(board.OLEDSDAPin)
	bus := i2csoft.New(scl, sda)
	configure := func() error {
		return bus.Configure(i2csoft.I2CConfig{
			Frequency: display.HardwareBusFrequency,
			SCL:       scl,
			SDA:       sda,
		})
	}
	return display.NewDriverTransport(bus, configure), display.NewDelay()
}
