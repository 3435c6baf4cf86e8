//go:build tinygo

package display

import "tinygo.org/x/drivers/ssd1306"

type ssd1306Panel struct {
	*ssd1306.Device
	link *Link
}

// NewSSD1306 configures an SSD1306 128x64 panel at PanelAddress on link.
func NewSSD1306(link *Link) (Controller, error) {
	dev := ssd1306.NewI2C(link)
	link.TakeErr()
	dev.Configure(ssd1306.Config{
		Width:    PanelWidth,
		Height:   PanelHeight,
		Address:  PanelAddress,
		VccState: ssd1306.SWITCHCAPVCC,
		Rotation: link.Rotation(),
	})
	// Configure drops command errors; the link kept the first one
	if err := link.TakeErr(); err != nil {
		return nil, err
	}
	return &ssd1306Panel{Device: dev, link: link}, nil
}

func (p *ssd1306Panel) SetPowerSave(on bool) error {
	if err := p.Sleep(on); err != nil {
		return err
	}
	return p.link.TakeErr()
}
