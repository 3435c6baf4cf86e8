package display

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freeserif"

	"ogxmini/core"
)

// Facade is the display surface the rest of the firmware calls. Every
// implementation must be safe to call whether or not a panel is fitted.
type Facade interface {
	Initialize() error
	Enable(on bool)
	Printf(format string, args ...any)
	RenderNow() error
}

var (
	_ Facade = (*Display)(nil)
	_ Facade = Nop{}
)

// Fixed startup label.
const (
	Label  = "OGXMini"
	LabelX = 0
	LabelY = 12
)

var labelColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

type displayState uint8

const (
	stateUninitialized displayState = iota
	stateReady
)

// Display drives one panel through a Link.
type Display struct {
	link          *Link
	newController ControllerFunc

	ctrl  Controller
	state displayState
}

// New returns a display that builds its controller with newController
// on first Initialize.
func New(link *Link, newController ControllerFunc) *Display {
	return &Display{link: link, newController: newController}
}

// Ready reports whether Initialize has brought the panel up.
func (d *Display) Ready() bool { return d.state == stateReady }

// Initialize brings up the bus and the controller, wakes the panel and
// draws the label. Calling it again repeats the whole sequence.
func (d *Display) Initialize() error {
	d.link.TakeErr()
	if err := d.link.Init(); err != nil {
		return d.fail("init", err)
	}

	ctrl, err := d.newController(d.link)
	if err != nil {
		return d.fail("configure", err)
	}
	d.ctrl = ctrl
	if err := ctrl.SetPowerSave(false); err != nil {
		return d.fail("power", err)
	}

	d.state = stateReady
	return d.draw()
}

// Enable is reserved for panel power control and currently does nothing.
func (d *Display) Enable(on bool) {}

// Printf is reserved for text output and currently does nothing.
func (d *Display) Printf(format string, args ...any) {}

// RenderNow redraws the label and flushes it to the panel.
func (d *Display) RenderNow() error {
	if d.state != stateReady {
		return ErrNotInitialized
	}
	return d.draw()
}

func (d *Display) draw() error {
	d.ctrl.ClearBuffer()
	tinyfont.WriteLine(d.ctrl, &freeserif.Bold9pt7b, LabelX, LabelY, Label, labelColor)
	err := d.ctrl.Display()
	if linkErr := d.link.TakeErr(); err == nil {
		err = linkErr
	}
	if err != nil {
		return d.fail("flush", err)
	}
	return nil
}

func (d *Display) fail(op string, err error) error {
	core.DebugPrintln("[OLED] " + op + " failed: " + err.Error())
	if core.IsDebugEnabled() {
		core.DumpTransferRing()
	}
	return err
}
