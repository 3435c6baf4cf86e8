//go:build rp2040

package main

import (
	"errors"
	"machine"
	"sync"

	"ogxmini/core"
)

// RPI2CDriver implements core.I2CDriver using TinyGo's machine.I2C.
type RPI2CDriver struct {
	mu sync.Mutex

	// Configured I2C buses
	// RP2040 has I2C0 and I2C1
	buses map[core.I2CBusID]*machine.I2C
}

// NewRPI2CDriver constructs the driver
func NewRPI2CDriver() *RPI2CDriver {
	return &RPI2CDriver{
		buses: make(map[core.I2CBusID]*machine.I2C),
	}
}

// ConfigureBus binds the pins to the controller and sets the clock rate.
// machine switches both pins to PinI2C, which enables the internal pull-ups.
func (d *RPI2CDriver) ConfigureBus(bus core.I2CBusID, cfg core.I2CBusConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var i2c *machine.I2C
	switch bus {
	case core.I2C0:
		i2c = machine.I2C0
	case core.I2C1:
		i2c = machine.I2C1
	default:
		return errors.New("unsupported I2C bus ID")
	}
	if !cfg.PullUp {
		return errors.New("I2C without pull-ups is not supported")
	}

	err := i2c.Configure(machine.I2CConfig{
		Frequency: cfg.Frequency,
		SDA:       machine.Pin(cfg.SDA),
		SCL:       machine.Pin(cfg.SCL),
	})
	if err != nil {
		return err
	}

	d.buses[bus] = i2c
	return nil
}

// Write transmits data to a device at the given address on the specified bus.
func (d *RPI2CDriver) Write(bus core.I2CBusID, addr core.I2CAddress, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i2c, exists := d.buses[bus]
	if !exists {
		return errors.New("I2C bus not configured")
	}

	// Write-only: no read buffer, Tx ends with a stop condition
	return i2c.Tx(uint16(addr), data, nil)
}
