package display

import (
	"tinygo.org/x/drivers"

	"ogxmini/core"
)

// DriverTransport buffers one transaction and flushes it with a single
// Tx on a drivers.I2C. The firmware pairs it with i2csoft, which clocks
// the GPIO lines and fails the write when the panel does not ACK.
type DriverTransport struct {
	bus       drivers.I2C
	configure func() error

	buf   TransferBuffer
	open  bool
	stats TransferStats
}

// NewDriverTransport returns a transport writing to bus. configure, when
// set, runs on every Init.
func NewDriverTransport(bus drivers.I2C, configure func() error) *DriverTransport {
	return &DriverTransport{bus: bus, configure: configure}
}

// Stats returns the transaction counters.
func (t *DriverTransport) Stats() TransferStats { return t.stats }

func (t *DriverTransport) Init() error {
	if t.configure == nil {
		return nil
	}
	if err := t.configure(); err != nil {
		return &TransferError{Op: "init", Err: ErrTransferFailed, Cause: err}
	}
	return nil
}

func (t *DriverTransport) StartTransfer() error {
	if t.open {
		t.stats.Aborted++
	}
	t.buf.Reset()
	t.open = true
	return nil
}

func (t *DriverTransport) Send(data []byte) error {
	if !t.open {
		return &TransferError{Op: "send", Err: ErrNoTransaction}
	}
	if err := t.buf.Append(data); err != nil {
		return &TransferError{Op: "send", Err: err}
	}
	return nil
}

func (t *DriverTransport) EndTransfer(addr8 uint8) error {
	if !t.open {
		return &TransferError{Op: "end", Err: ErrNoTransaction}
	}
	t.open = false

	addr := WireAddress(addr8)
	n := t.buf.Len()
	if t.buf.Overflowed() {
		t.stats.Overflows++
		core.RecordTransfer(core.EvtBufferOverflow, softBusID, addr, n)
		return &TransferError{Op: "end", Err: ErrBufferOverflow}
	}

	err := t.bus.Tx(uint16(addr), t.buf.Bytes(), nil)
	t.buf.Reset()
	if err != nil {
		t.stats.Failures++
		core.RecordTransfer(core.EvtTransferFailed, softBusID, addr, n)
		return &TransferError{Op: "end", Err: ErrTransferFailed, Cause: err}
	}

	t.stats.Transfers++
	t.stats.Bytes += uint32(n)
	core.RecordTransfer(core.EvtTransferOK, softBusID, addr, n)
	return nil
}
