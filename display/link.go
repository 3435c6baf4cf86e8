package display

import "tinygo.org/x/drivers"

var _ drivers.I2C = (*Link)(nil)

// Link binds a byte transport and its delay callbacks to a controller
// driver. It is the bus the controller writes to.
type Link struct {
	transport ByteTransport
	gpio      GPIODelay
	rotation  drivers.Rotation

	err error
}

// NewLink returns a link over t and g. The SSD1306 can only mirror its
// output, so rotation must be Rotation0 or Rotation180.
func NewLink(t ByteTransport, g GPIODelay, rotation drivers.Rotation) (*Link, error) {
	switch rotation {
	case drivers.Rotation0, drivers.Rotation180:
	default:
		return nil, ErrUnsupportedRotation
	}
	return &Link{transport: t, gpio: g, rotation: rotation}, nil
}

// Rotation returns the orientation handed to the controller.
func (l *Link) Rotation() drivers.Rotation { return l.rotation }

// Init sets up the lines and the bus, then lets the panel settle.
func (l *Link) Init() error {
	if err := l.gpio.InitGPIO(); err != nil {
		return l.keep(err)
	}
	if err := l.transport.Init(); err != nil {
		return l.keep(err)
	}
	l.gpio.DelayMilli(10)
	return nil
}

// Tx writes w to the 7-bit address addr. Reads and wider addresses are
// rejected.
//
// A write longer than the transfer buffer is sent as several
// transactions, each repeating the leading control byte.
func (l *Link) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return l.keep(&TransferError{Op: "tx", Err: ErrReadUnsupported})
	}
	if addr > 0x7F {
		return l.keep(&TransferError{Op: "tx", Err: ErrInvalidAddress})
	}
	addr8 := uint8(addr << 1)
	if len(w) <= TransferBufferSize {
		return l.keep(l.transfer(addr8, nil, w))
	}

	ctrl := w[:1]
	for payload := w[1:]; len(payload) > 0; {
		n := min(len(payload), TransferBufferSize-len(ctrl))
		if err := l.transfer(addr8, ctrl, payload[:n]); err != nil {
			return l.keep(err)
		}
		payload = payload[n:]
	}
	return nil
}

// TakeErr returns the first error since the previous call and clears it.
func (l *Link) TakeErr() error {
	err := l.err
	l.err = nil
	return err
}

func (l *Link) transfer(addr8 uint8, ctrl, data []byte) error {
	if err := l.transport.StartTransfer(); err != nil {
		return err
	}
	var err error
	if len(ctrl) > 0 {
		err = l.transport.Send(ctrl)
	}
	if err == nil {
		err = l.transport.Send(data)
	}
	// Always close the transaction so the transport is left idle
	if endErr := l.transport.EndTransfer(addr8); err == nil {
		err = endErr
	}
	return err
}

func (l *Link) keep(err error) error {
	if err != nil && l.err == nil {
		l.err = err
	}
	return err
}
