package display

import (
	"time"

	"ogxmini/core"
)

// HardwareBusFrequency is the SCL rate used for the panel.
const HardwareBusFrequency = 400000

// HardwareTransport buffers one transaction and flushes it as a single
// blocking write on an I2C controller.
type HardwareTransport struct {
	i2c core.I2CDriver
	bus core.I2CBusID
	cfg core.I2CBusConfig

	// Timeout bounds each bus write. Zero waits for the driver. It needs
	// a preemptive runtime; under TinyGo the write never yields to the
	// timer, so leave it zero there.
	Timeout time.Duration

	buf   TransferBuffer
	open  bool
	stats TransferStats

	// Set while a timed-out write is still running on the bus.
	inflight chan error
	pending  [TransferBufferSize]byte
	lateAddr uint8
	lateLen  int
}

// NewHardwareTransport returns a transport for the controller bus with
// its data and clock lines on sda and scl.
func NewHardwareTransport(i2c core.I2CDriver, bus core.I2CBusID, sda, scl core.GPIOPin) *HardwareTransport {
	return &HardwareTransport{
		i2c: i2c,
		bus: bus,
		cfg: core.I2CBusConfig{
			Frequency: HardwareBusFrequency,
			SDA:       sda,
			SCL:       scl,
			PullUp:    true,
		},
	}
}

// Bus returns the controller this transport writes to.
func (t *HardwareTransport) Bus() core.I2CBusID { return t.bus }

// Stats returns the transaction counters.
func (t *HardwareTransport) Stats() TransferStats { return t.stats }

func (t *HardwareTransport) Init() error {
	if err := t.i2c.ConfigureBus(t.bus, t.cfg); err != nil {
		return &TransferError{Op: "init", Err: ErrTransferFailed, Cause: err}
	}
	return nil
}

func (t *HardwareTransport) StartTransfer() error {
	if t.open {
		t.stats.Aborted++
	}
	t.buf.Reset()
	t.open = true
	return nil
}

func (t *HardwareTransport) Send(data []byte) error {
	if !t.open {
		return &TransferError{Op: "send", Err: ErrNoTransaction}
	}
	if err := t.buf.Append(data); err != nil {
		return &TransferError{Op: "send", Err: err}
	}
	return nil
}

func (t *HardwareTransport) EndTransfer(addr8 uint8) error {
	if !t.open {
		return &TransferError{Op: "end", Err: ErrNoTransaction}
	}
	t.open = false

	addr := WireAddress(addr8)
	n := t.buf.Len()
	if t.buf.Overflowed() {
		t.stats.Overflows++
		core.RecordTransfer(core.EvtBufferOverflow, uint8(t.bus), addr, n)
		return &TransferError{Op: "end", Err: ErrBufferOverflow}
	}
	if t.busy() {
		t.stats.Busy++
		core.RecordTransfer(core.EvtBusBusy, uint8(t.bus), addr, n)
		return &TransferError{Op: "end", Err: ErrBusBusy}
	}

	err := t.write(core.I2CAddress(addr), t.buf.Bytes())
	t.buf.Reset()
	switch {
	case err == errWriteTimeout:
		t.stats.Timeouts++
		core.RecordTransfer(core.EvtTransferTimeout, uint8(t.bus), addr, n)
		core.DebugPrintln("[OLED] write timeout on " + t.bus.String() + " addr=" + core.Hex8(addr))
		return &TransferError{Op: "end", Err: ErrTransferTimeout}
	case err != nil:
		t.stats.Failures++
		core.RecordTransfer(core.EvtTransferFailed, uint8(t.bus), addr, n)
		return &TransferError{Op: "end", Err: ErrTransferFailed, Cause: err}
	}

	t.stats.Transfers++
	t.stats.Bytes += uint32(n)
	core.RecordTransfer(core.EvtTransferOK, uint8(t.bus), addr, n)
	return nil
}

// write runs the bus write, bounded by Timeout when set. A write that
// outlives the timeout keeps running and is tracked in inflight.
func (t *HardwareTransport) write(addr core.I2CAddress, data []byte) error {
	if t.Timeout <= 0 {
		return t.i2c.Write(t.bus, addr, data)
	}

	// The caller's buffer is reused by the next transaction
	n := copy(t.pending[:], data)
	done := make(chan error, 1)
	go func() {
		done <- t.i2c.Write(t.bus, addr, t.pending[:n])
	}()

	timer := time.NewTimer(t.Timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		t.inflight = done
		t.lateAddr = uint8(addr)
		t.lateLen = n
		return errWriteTimeout
	}
}

// busy reports whether a timed-out write has not finished yet. A write
// that has finished is counted and recorded by its real outcome.
func (t *HardwareTransport) busy() bool {
	if t.inflight == nil {
		return false
	}
	select {
	case err := <-t.inflight:
		t.inflight = nil
		if err != nil {
			t.stats.Failures++
			core.RecordTransfer(core.EvtTransferFailed, uint8(t.bus), t.lateAddr, t.lateLen)
			core.DebugPrintln("[OLED] late write failed on " + t.bus.String() + ": " + err.Error())
		} else {
			t.stats.Late++
			t.stats.Bytes += uint32(t.lateLen)
			core.RecordTransfer(core.EvtTransferOK, uint8(t.bus), t.lateAddr, t.lateLen)
		}
		return false
	default:
		return true
	}
}
