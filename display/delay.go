package display

import "time"

// Delay implements the blocking half of GPIODelay with a sleep function.
// Requests shorter than Granularity are rounded up to it.
type Delay struct {
	Granularity time.Duration
	Sleep       func(time.Duration)
}

// NewDelay returns a Delay with microsecond granularity backed by time.Sleep.
func NewDelay() *Delay {
	return &Delay{Granularity: time.Microsecond, Sleep: time.Sleep}
}

// InitGPIO does nothing; the hardware transport owns its pins.
func (d *Delay) InitGPIO() error { return nil }

func (d *Delay) DelayMilli(ms uint8) { d.wait(time.Duration(ms) * time.Millisecond) }

func (d *Delay) Delay10Micro() { d.wait(10 * time.Microsecond) }

func (d *Delay) Delay100Nano() { d.wait(100 * time.Nanosecond) }

func (d *Delay) wait(dur time.Duration) {
	if dur < d.Granularity {
		dur = d.Granularity
	}
	if dur <= 0 {
		return
	}
	sleep := d.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(dur)
}
