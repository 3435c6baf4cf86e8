//go:build !tinygo

package main

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"

	"ogxmini/core"
)

// recordBus records writes and accepts any speed.
type recordBus struct {
	*i2ctest.Record
	speed  physic.Frequency
	closed bool
}

func newRecordBus() *recordBus {
	return &recordBus{Record: &i2ctest.Record{}}
}

func (r *recordBus) SetSpeed(f physic.Frequency) error {
	r.speed = f
	return nil
}

func (r *recordBus) Close() error {
	r.closed = true
	return nil
}

func (r *recordBus) ops() []i2ctest.IO {
	r.Lock()
	defer r.Unlock()
	return append([]i2ctest.IO(nil), r.Ops...)
}

func newTestI2C(t *testing.T, bus i2c.BusCloser) *PeriphI2CDriver {
	t.Helper()
	d := NewPeriphI2CDriver(map[core.I2CBusID]string{core.I2C0: "0", core.I2C1: "1"})
	d.open = func(string) (i2c.BusCloser, error) { return bus, nil }
	return d
}

// testPins backs a PeriphGPIODriver with gpiotest pins.
type testPins map[string]*gpiotest.Pin

func newTestGPIO(pins ...int) (*PeriphGPIODriver, testPins) {
	tp := testPins{}
	for _, n := range pins {
		name := "GPIO" + core.Utoa(uint32(n))
		tp[name] = &gpiotest.Pin{N: name, Num: n}
	}
	d := NewPeriphGPIODriver()
	d.byName = func(name string) gpio.PinIO {
		if p, ok := tp[name]; ok {
			return p
		}
		return nil
	}
	return d, tp
}
