package display

import "ogxmini/core"

// softBusID tags bit-bang transfers in the transfer ring.
const softBusID = 0xFF

// BitBangTransport clocks transactions out on two GPIO lines. The lines
// are output-only, so ACK bits are clocked but never sampled and a
// missing panel is not detected. Prefer DriverTransport over i2csoft
// where the target has it.
type BitBangTransport struct {
	lines BusLines
	buf   TransferBuffer
	open  bool
	stats TransferStats

	// first line error of the frame being clocked
	err error
}

// NewBitBangTransport returns a transport driving lines.
func NewBitBangTransport(lines BusLines) *BitBangTransport {
	return &BitBangTransport{lines: lines}
}

// Stats returns the transaction counters.
func (t *BitBangTransport) Stats() TransferStats { return t.stats }

// Init releases both lines to the idle-high state.
func (t *BitBangTransport) Init() error {
	t.err = nil
	t.setData(true)
	t.setClock(true)
	if t.err != nil {
		return &TransferError{Op: "init", Err: ErrTransferFailed, Cause: t.err}
	}
	return nil
}

func (t *BitBangTransport) StartTransfer() error {
	if t.open {
		t.stats.Aborted++
	}
	t.buf.Reset()
	t.open = true
	return nil
}

func (t *BitBangTransport) Send(data []byte) error {
	if !t.open {
		return &TransferError{Op: "send", Err: ErrNoTransaction}
	}
	if err := t.buf.Append(data); err != nil {
		return &TransferError{Op: "send", Err: err}
	}
	return nil
}

func (t *BitBangTransport) EndTransfer(addr8 uint8) error {
	if !t.open {
		return &TransferError{Op: "end", Err: ErrNoTransaction}
	}
	t.open = false

	n := t.buf.Len()
	if t.buf.Overflowed() {
		t.stats.Overflows++
		core.RecordTransfer(core.EvtBufferOverflow, softBusID, WireAddress(addr8), n)
		return &TransferError{Op: "end", Err: ErrBufferOverflow}
	}

	t.err = nil
	t.start()
	t.writeByte(addr8 &^ 1)
	for _, b := range t.buf.Bytes() {
		t.writeByte(b)
	}
	t.stop()
	t.buf.Reset()

	if t.err != nil {
		t.stats.Failures++
		core.RecordTransfer(core.EvtTransferFailed, softBusID, WireAddress(addr8), n)
		return &TransferError{Op: "end", Err: ErrTransferFailed, Cause: t.err}
	}
	t.stats.Transfers++
	t.stats.Bytes += uint32(n)
	core.RecordTransfer(core.EvtTransferOK, softBusID, WireAddress(addr8), n)
	return nil
}

// start issues a START: SDA falls while SCL is high.
func (t *BitBangTransport) start() {
	t.setData(true)
	t.setClock(true)
	t.half()
	t.setData(false)
	t.half()
	t.setClock(false)
	t.half()
}

// stop issues a STOP: SDA rises while SCL is high.
func (t *BitBangTransport) stop() {
	t.setData(false)
	t.half()
	t.setClock(true)
	t.half()
	t.setData(true)
	t.half()
}

// writeByte shifts b out MSB first, then clocks the ACK slot with SDA released.
func (t *BitBangTransport) writeByte(b byte) {
	for i := 7; i >= 0; i-- {
		t.bit(b&(1<<uint(i)) != 0)
	}
	t.bit(true)
}

func (t *BitBangTransport) bit(high bool) {
	t.setData(high)
	t.half()
	t.setClock(true)
	t.half()
	t.setClock(false)
}

func (t *BitBangTransport) half() {
	if t.err == nil {
		t.lines.Delay100Nano()
	}
}

func (t *BitBangTransport) setClock(high bool) {
	if t.err == nil {
		t.err = t.lines.SetClock(high)
	}
}

func (t *BitBangTransport) setData(high bool) {
	if t.err == nil {
		t.err = t.lines.SetData(high)
	}
}
