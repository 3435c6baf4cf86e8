package display

import "ogxmini/core"

// SoftwareLines drives the clock and data lines as plain GPIO outputs.
type SoftwareLines struct {
	Delay

	gpio core.GPIODriver
	scl  core.GPIOPin
	sda  core.GPIOPin
}

// NewSoftwareLines returns lines on the scl and sda pins with the default delays.
func NewSoftwareLines(gpio core.GPIODriver, scl, sda core.GPIOPin) *SoftwareLines {
	return &SoftwareLines{
		Delay: *NewDelay(),
		gpio:  gpio,
		scl:   scl,
		sda:   sda,
	}
}

// InitGPIO configures both lines as outputs and leaves them high (bus idle).
func (l *SoftwareLines) InitGPIO() error {
	for _, pin := range [...]core.GPIOPin{l.scl, l.sda} {
		if err := l.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
		if err := l.gpio.SetPin(pin, true); err != nil {
			return err
		}
	}
	return nil
}

func (l *SoftwareLines) SetClock(high bool) error {
	return l.gpio.SetPin(l.scl, high)
}

func (l *SoftwareLines) SetData(high bool) error {
	return l.gpio.SetPin(l.sda, high)
}
