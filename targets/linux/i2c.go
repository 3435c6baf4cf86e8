//go:build !tinygo

package main

import (
	"errors"
	"sync"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"

	"ogxmini/core"
)

// PeriphI2CDriver implements core.I2CDriver on Linux I2C adapters.
type PeriphI2CDriver struct {
	mu sync.Mutex

	// open is i2creg.Open outside tests
	open  func(name string) (i2c.BusCloser, error)
	names map[core.I2CBusID]string
	buses map[core.I2CBusID]i2c.BusCloser
}

// NewPeriphI2CDriver constructs the driver. names maps a controller ID to
// an i2creg bus name; an empty name opens the first adapter.
func NewPeriphI2CDriver(names map[core.I2CBusID]string) *PeriphI2CDriver {
	return &PeriphI2CDriver{
		open:  i2creg.Open,
		names: names,
		buses: make(map[core.I2CBusID]i2c.BusCloser),
	}
}

// ConfigureBus opens the adapter on first use and sets its clock rate.
// Pin routing and pull-ups are fixed by the board on Linux.
func (d *PeriphI2CDriver) ConfigureBus(bus core.I2CBusID, cfg core.I2CBusConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buses[bus]
	if !ok {
		name, known := d.names[bus]
		if !known {
			return errors.New("unsupported I2C bus ID")
		}
		var err error
		if b, err = d.open(name); err != nil {
			return err
		}
		d.buses[bus] = b
		glog.V(1).Infof("%s: opened %s (sda=%d scl=%d)", bus, b, cfg.SDA, cfg.SCL)
	}
	return b.SetSpeed(physic.Frequency(cfg.Frequency) * physic.Hertz)
}

// Write transmits data to a device at the given address on the specified bus.
func (d *PeriphI2CDriver) Write(bus core.I2CBusID, addr core.I2CAddress, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buses[bus]
	if !ok {
		return errors.New("I2C bus not configured")
	}
	return b.Tx(uint16(addr), data, nil)
}

// Close releases every opened adapter.
func (d *PeriphI2CDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var errs []error
	for id, b := range d.buses {
		errs = append(errs, b.Close())
		delete(d.buses, id)
	}
	return errors.Join(errs...)
}
