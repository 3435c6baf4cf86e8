//go:build !tinygo

// Command linux runs the status panel on a Linux board through periph.io.
package main

import (
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/golang/glog"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"

	"ogxmini/board"
	"ogxmini/core"
	"ogxmini/display"
)

type config struct {
	bus      string
	sda      int
	scl      int
	soft     bool
	rotate   int
	interval time.Duration
	timeout  time.Duration
	console  string
	baud     int
}

func registerFlags(fs *flag.FlagSet) *config {
	cfg := &config{}
	fs.StringVar(&cfg.bus, "bus", "", "I2C bus name (empty: first adapter)")
	fs.IntVar(&cfg.sda, "sda", pinDefault(board.OLEDPins.SDA), "data pin, -1 for no panel")
	fs.IntVar(&cfg.scl, "scl", pinDefault(board.OLEDPins.SCL), "clock pin, -1 for no panel")
	fs.BoolVar(&cfg.soft, "soft", false, "bit-bang the bus on GPIO instead of using the adapter")
	fs.IntVar(&cfg.rotate, "rotate", 0, "panel rotation in degrees (0 or 180)")
	fs.DurationVar(&cfg.interval, "interval", time.Second, "render period")
	fs.DurationVar(&cfg.timeout, "timeout", 50*time.Millisecond, "bus write timeout, 0 to wait forever")
	fs.StringVar(&cfg.console, "console", "", "serial device mirroring debug output")
	fs.IntVar(&cfg.baud, "baud", 115200, "console baud rate")
	return cfg
}

func pinDefault(p core.GPIOPin) int {
	if p == board.NoPin {
		return -1
	}
	return int(p)
}

func (c *config) pins() board.Pins {
	pin := func(n int) core.GPIOPin {
		if n < 0 {
			return board.NoPin
		}
		return core.GPIOPin(n)
	}
	return board.Pins{SDA: pin(c.sda), SCL: pin(c.scl)}
}

func (c *config) rotation() (drivers.Rotation, error) {
	switch c.rotate {
	case 0:
		return drivers.Rotation0, nil
	case 180:
		return drivers.Rotation180, nil
	}
	return 0, display.ErrUnsupportedRotation
}

// newDisplay assembles the facade described by cfg on the given HAL.
func newDisplay(cfg *config, i2cDrv core.I2CDriver, gpioDrv core.GPIODriver) (display.Facade, error) {
	pins := cfg.pins()
	if err := pins.Validate(); err != nil {
		return nil, err
	}
	if !pins.Configured() {
		return display.Nop{}, nil
	}

	rotation, err := cfg.rotation()
	if err != nil {
		return nil, err
	}
	var (
		transport display.ByteTransport
		delay     display.GPIODelay
	)
	if cfg.soft {
		lines := display.NewSoftwareLines(gpioDrv, pins.SCL, pins.SDA)
		transport, delay = display.NewBitBangTransport(lines), lines
	} else {
		hw := display.NewHardwareTransport(i2cDrv, pins.Bus(), pins.SDA, pins.SCL)
		hw.Timeout = cfg.timeout
		transport, delay = hw, display.NewDelay()
	}

	link, err := display.NewLink(transport, delay, rotation)
	if err != nil {
		return nil, err
	}
	return display.New(link, newPeriphPanel), nil
}

func main() {
	cfg := registerFlags(flag.CommandLine)
	flag.Parse()
	defer glog.Flush()

	var console io.WriteCloser
	if cfg.console != "" {
		var err error
		if console, err = openConsole(cfg.console, cfg.baud); err != nil {
			glog.Exitf("console %s: %v", cfg.console, err)
		}
		defer console.Close()
	}
	core.SetDebugWriter(debugWriter(console))
	core.SetDebugEnabled(true)

	if _, err := host.Init(); err != nil {
		glog.Exitf("host init: %v", err)
	}

	i2cDrv := NewPeriphI2CDriver(map[core.I2CBusID]string{
		core.I2C0: cfg.bus,
		core.I2C1: cfg.bus,
	})
	defer i2cDrv.Close()
	core.SetI2CDriver(i2cDrv)
	core.SetGPIODriver(NewPeriphGPIODriver())

	oled, err := newDisplay(cfg, core.MustI2C(), core.MustGPIO())
	if err != nil {
		glog.Exitf("display: %v", err)
	}
	if err := oled.Initialize(); err != nil {
		glog.Errorf("initialize: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := oled.RenderNow(); err != nil {
				glog.Warningf("render: %v", err)
			}
		case <-stop:
			glog.Info("stopping")
			return
		}
	}
}
