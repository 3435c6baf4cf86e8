package display

import "tinygo.org/x/drivers"

// Panel geometry and bus address.
const (
	PanelWidth   = 128
	PanelHeight  = 64
	PanelAddress = 0x3C
)

// Controller is what the facade needs from a display controller driver.
type Controller interface {
	drivers.Displayer

	// ClearBuffer blanks the frame buffer without touching the panel.
	ClearBuffer()

	// SetPowerSave turns the panel off (true) or on (false).
	SetPowerSave(on bool) error
}

// ControllerFunc builds a controller on a link and runs its power-on
// sequence.
type ControllerFunc func(link *Link) (Controller, error)
