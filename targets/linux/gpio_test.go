//go:build !tinygo

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"

	"ogxmini/core"
)

func TestPeriphGPIODriverOutput(t *testing.T) {
	d, pins := newTestGPIO(10, 11)

	require.NoError(t, d.ConfigureOutput(10))
	assert.Equal(t, gpio.High, pins["GPIO10"].L)

	require.NoError(t, d.SetPin(10, false))
	assert.Equal(t, gpio.Low, pins["GPIO10"].L)

	// SetPin on an unconfigured pin configures it first
	require.NoError(t, d.SetPin(11, false))
	assert.Equal(t, gpio.Low, pins["GPIO11"].L)
}

func TestPeriphGPIODriverUnknownPin(t *testing.T) {
	d, _ := newTestGPIO(10)
	assert.ErrorIs(t, d.ConfigureOutput(core.GPIOPin(7)), errUnknownPin)
	assert.ErrorIs(t, d.SetPin(7, true), errUnknownPin)
}
