// Package display drives the SSD1306 status panel over a two-wire bus.
//
// A controller driver talks to a Link, which turns every bus write into
// one or more transactions on a ByteTransport. HardwareTransport writes to
// an I2C controller. DriverTransport flushes through any drivers.I2C,
// such as the i2csoft software bus. BitBangTransport toggles two GPIO
// lines for hosts without a software bus. A binary uses exactly one.
package display

// ByteTransport carries one transaction at a time: StartTransfer, zero or
// more Send calls, then EndTransfer.
type ByteTransport interface {
	// Init brings up the bus. It must run once before the first
	// transaction and may be repeated.
	Init() error

	// StartTransfer opens a transaction with an empty buffer.
	StartTransfer() error

	// Send appends data to the open transaction.
	Send(data []byte) error

	// EndTransfer writes the buffered bytes to the device whose 8-bit
	// write address is addr8 and closes the transaction.
	EndTransfer(addr8 uint8) error
}

// GPIODelay supplies line setup and blocking delays. Every delay is a
// lower bound.
type GPIODelay interface {
	InitGPIO() error
	DelayMilli(ms uint8)
	Delay10Micro()
	Delay100Nano()
}

// BusLines are the two output primitives the bit-bang transport needs.
type BusLines interface {
	GPIODelay
	SetClock(high bool) error
	SetData(high bool) error
}

// TransferStats counts transactions seen by a transport.
type TransferStats struct {
	Transfers uint32 // completed bus writes
	Bytes     uint32 // payload bytes of completed writes
	Failures  uint32 // writes that returned an error
	Overflows uint32 // transactions rejected for exceeding the buffer
	Timeouts  uint32 // writes abandoned after the timeout
	Late      uint32 // abandoned writes that later completed
	Busy      uint32 // transactions refused while an abandoned write ran
	Aborted   uint32 // transactions reopened before EndTransfer
}

// WireAddress converts an 8-bit write address to the 7-bit bus address.
func WireAddress(addr8 uint8) uint8 {
	return addr8 >> 1
}
