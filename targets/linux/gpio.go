//go:build !tinygo

package main

import (
	"errors"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"ogxmini/core"
)

var errUnknownPin = errors.New("GPIO pin not found")

// PeriphGPIODriver implements core.GPIODriver with periph's pin registry.
type PeriphGPIODriver struct {
	mu sync.Mutex

	byName func(name string) gpio.PinIO
	pins   map[core.GPIOPin]gpio.PinIO
}

func NewPeriphGPIODriver() *PeriphGPIODriver {
	return &PeriphGPIODriver{
		byName: gpioreg.ByName,
		pins:   make(map[core.GPIOPin]gpio.PinIO),
	}
}

// ConfigureOutput looks the pin up as "GPIO<n>" and drives it high.
func (d *PeriphGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := d.lookup(pin)
	return err
}

func (d *PeriphGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, err := d.lookup(pin)
	if err != nil {
		return err
	}
	return p.Out(gpio.Level(value))
}

func (d *PeriphGPIODriver) lookup(pin core.GPIOPin) (gpio.PinIO, error) {
	if p, ok := d.pins[pin]; ok {
		return p, nil
	}
	p := d.byName("GPIO" + core.Utoa(uint32(pin)))
	if p == nil {
		return nil, errUnknownPin
	}
	if err := p.Out(gpio.High); err != nil {
		return nil, err
	}
	d.pins[pin] = p
	return p, nil
}
