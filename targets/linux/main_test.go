//go:build !tinygo

package main

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"

	"ogxmini/board"
	"ogxmini/display"
)

func parseFlags(t *testing.T, args ...string) *config {
	t.Helper()
	fs := flag.NewFlagSet("linux", flag.ContinueOnError)
	cfg := registerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cfg
}

func TestFlagDefaults(t *testing.T) {
	cfg := parseFlags(t)
	assert.Equal(t, time.Second, cfg.interval)
	assert.Equal(t, 50*time.Millisecond, cfg.timeout)
	assert.Equal(t, board.OLEDPins, cfg.pins())
}

func TestFlagPins(t *testing.T) {
	cfg := parseFlags(t, "-sda", "6", "-scl", "7", "-rotate", "180")
	pins := cfg.pins()
	assert.Equal(t, board.Pins{SDA: 6, SCL: 7}, pins)
	assert.Equal(t, board.ResolveI2CBus(6), pins.Bus())

	cfg = parseFlags(t, "-sda", "-1", "-scl", "-1")
	assert.False(t, cfg.pins().Configured())
}

func TestNewDisplayNoPanel(t *testing.T) {
	cfg := parseFlags(t, "-sda", "-1", "-scl", "-1")
	f, err := newDisplay(cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, display.Nop{}, f)
	assert.NoError(t, f.Initialize())
}

func TestNewDisplayConfigErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"missing clock": {"-sda", "20", "-scl", "-1"},
		"rotation":      {"-rotate", "90"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := newDisplay(parseFlags(t, args...), nil, nil)
			assert.Error(t, err)
		})
	}

	_, err := newDisplay(parseFlags(t, "-sda", "20", "-scl", "-1"), nil, nil)
	assert.ErrorIs(t, err, board.ErrMissingClockPin)
}

func TestNewDisplayHardware(t *testing.T) {
	bus := newRecordBus()
	cfg := parseFlags(t, "-sda", "6", "-scl", "7")

	f, err := newDisplay(cfg, newTestI2C(t, bus), nil)
	require.NoError(t, err)
	require.NoError(t, f.Initialize())
	require.NoError(t, f.RenderNow())

	ops := bus.ops()
	require.NotEmpty(t, ops)
	for _, op := range ops {
		assert.LessOrEqual(t, len(op.W), display.TransferBufferSize)
	}
}

func TestNewDisplaySoft(t *testing.T) {
	if testing.Short() {
		t.Skip("clocks a full frame with real delays")
	}
	gpioDrv, pins := newTestGPIO(20, 21)
	cfg := parseFlags(t, "-sda", "20", "-scl", "21", "-soft")

	f, err := newDisplay(cfg, nil, gpioDrv)
	require.NoError(t, err)
	require.NoError(t, f.Initialize())

	// Bus idles high between transactions
	assert.Equal(t, gpio.High, pins["GPIO20"].L)
	assert.Equal(t, gpio.High, pins["GPIO21"].L)
}
