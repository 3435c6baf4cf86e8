//go:build !tinygo

package main

import (
	"image/color"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"

	"ogxmini/display"
)

var _ i2c.Bus = (*periphBus)(nil)

// periphBus lets periph's ssd1306 driver write through a display.Link.
type periphBus struct {
	link *display.Link
}

func (b *periphBus) String() string { return "ogxmini-link" }

func (b *periphBus) Tx(addr uint16, w, r []byte) error {
	return b.link.Tx(addr, w, r)
}

// SetSpeed is ignored; the byte transport owns the clock rate.
func (b *periphBus) SetSpeed(physic.Frequency) error { return nil }

// frameWindow selects the whole panel in horizontal addressing mode.
var frameWindow = []byte{
	0x00,
	0x20, 0x00,
	0x21, 0, display.PanelWidth - 1,
	0x22, 0, display.PanelHeight/8 - 1,
}

// periphPanel adapts periph's ssd1306.Dev to display.Controller. The
// driver runs the power-on sequence; frames bypass Dev.Draw, which skips
// unchanged frames, and go out whole through the link.
type periphPanel struct {
	dev  *ssd1306.Dev
	link *display.Link
	img  *image1bit.VerticalLSB

	// frame is the data control byte followed by img.Pix.
	frame []byte
}

// newPeriphPanel is a display.ControllerFunc backed by periph's driver.
func newPeriphPanel(link *display.Link) (display.Controller, error) {
	opts := ssd1306.DefaultOpts
	opts.W = display.PanelWidth
	opts.H = display.PanelHeight
	opts.Rotated = link.Rotation() == drivers.Rotation180

	dev, err := ssd1306.NewI2C(&periphBus{link: link}, &opts)
	if err != nil {
		return nil, err
	}
	link.TakeErr()

	img := image1bit.NewVerticalLSB(dev.Bounds())
	frame := make([]byte, 1+len(img.Pix))
	frame[0] = 0x40
	img.Pix = frame[1:]
	return &periphPanel{dev: dev, link: link, img: img, frame: frame}, nil
}

func (p *periphPanel) Size() (x, y int16) {
	b := p.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (p *periphPanel) SetPixel(x, y int16, c color.RGBA) {
	p.img.SetBit(int(x), int(y), image1bit.Bit(c.R|c.G|c.B != 0))
}

func (p *periphPanel) Display() error {
	if err := p.link.Tx(display.PanelAddress, frameWindow, nil); err != nil {
		return err
	}
	return p.link.Tx(display.PanelAddress, p.frame, nil)
}

func (p *periphPanel) ClearBuffer() {
	clear(p.img.Pix)
}

// SetPowerSave halts the panel, or sends DISPLAYON since periph's driver
// has no resume call.
func (p *periphPanel) SetPowerSave(on bool) error {
	if on {
		return p.dev.Halt()
	}
	return p.link.Tx(display.PanelAddress, []byte{0x00, 0xAF}, nil)
}
