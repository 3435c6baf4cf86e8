//go:build rp2040 && !nooled

package main

import (
	"tinygo.org/x/drivers"

	"ogxmini/board"
	"ogxmini/core"
	"ogxmini/display"
)

// newDisplay assembles the panel on the board's OLED header. A wiring
// error leaves the firmware running with the no-op display.
func newDisplay() display.Facade {
	if err := board.OLEDPins.Validate(); err != nil {
		core.DebugPrintln("[OLED] " + err.Error())
		return display.Nop{}
	}

	transport, delay := newOLEDTransport()
	link, err := display.NewLink(transport, delay, drivers.Rotation0)
	if err != nil {
		core.DebugPrintln("[OLED] " + err.Error())
		return display.Nop{}
	}
	return display.New(link, display.NewSSD1306)
}
