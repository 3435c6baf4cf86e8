package board

import (
	"errors"

	"ogxmini/core"
)

// NoPin marks an unassigned line.
const NoPin = ^core.GPIOPin(0)

// MaxGPIO is the highest user GPIO on the RP2040.
const MaxGPIO core.GPIOPin = 29

var (
	ErrMissingClockPin = errors.New("board: data pin set without clock pin")
	ErrMissingDataPin  = errors.New("board: clock pin set without data pin")
	ErrPinConflict     = errors.New("board: data and clock share a pin")
	ErrInvalidPin      = errors.New("board: pin out of range")
)

// Pins is the two-wire assignment of the display header.
type Pins struct {
	SDA core.GPIOPin
	SCL core.GPIOPin
}

// Configured reports whether both lines are assigned.
func (p Pins) Configured() bool {
	return p.SDA != NoPin && p.SCL != NoPin
}

// Bus returns the controller that serves the data pin.
func (p Pins) Bus() core.I2CBusID {
	return ResolveI2CBus(p.SDA)
}

// Validate checks the assignment. An assignment with neither pin set is
// valid and means the display is absent.
func (p Pins) Validate() error {
	switch {
	case p.SDA == NoPin && p.SCL == NoPin:
		return nil
	case p.SCL == NoPin:
		return ErrMissingClockPin
	case p.SDA == NoPin:
		return ErrMissingDataPin
	case p.SDA > MaxGPIO || p.SCL > MaxGPIO:
		return ErrInvalidPin
	case p.SDA == p.SCL:
		return ErrPinConflict
	}
	return nil
}
