package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TransferEvent captures one bus transaction for post-mortem analysis
type TransferEvent struct {
	Kind   uint8  // Event kind code (Evt*)
	Bus    uint8  // Bus controller number
	Addr   uint8  // 7-bit device address
	Length uint16 // Payload length in bytes
	Clock  uint32 // System clock at event
}

// Event kind codes
const (
	EvtTransferOK      = 1 // Bus write completed
	EvtTransferFailed  = 2 // Bus write returned an error
	EvtTransferTimeout = 3 // Bus write did not finish in time
	EvtBufferOverflow  = 4 // Burst exceeded the transfer buffer
	EvtBusBusy         = 5 // Write refused while a stalled write is pending
)

const (
	TransferRingSize = 32 // Keep last 32 transactions for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Transfer capture ring buffer (non-blocking, for post-mortem)
	transferRing      [TransferRingSize]TransferEvent
	transferRingHead  uint8 // Next write position
	transferRingCount uint8 // Number of valid entries

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, glog, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncDebug starts the async debug output goroutine
// Call this from main() after SetDebugWriter
func InitAsyncDebug() {
	debugChan = make(chan string, 16) // Buffer 16 messages
	go debugOutputWorker()
}

// debugOutputWorker runs in background, drains debug channel
func debugOutputWorker() {
	for msg := range debugChan {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer
// Blocks if debug is enabled (use DebugAsync for non-blocking)
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking)
// Returns immediately even if channel is full (drops message)
func DebugAsync(msg string) {
	if !debugEnabled || debugChan == nil {
		return
	}
	select {
	case debugChan <- msg:
	default:
		// Channel full, drop message (non-blocking)
	}
}

// RecordTransfer captures a bus transaction in the ring buffer
func RecordTransfer(kind, bus, addr uint8, length int) {
	idx := transferRingHead
	transferRing[idx] = TransferEvent{
		Kind:   kind,
		Bus:    bus,
		Addr:   addr,
		Length: uint16(length),
		Clock:  GetTime(),
	}
	transferRingHead = (idx + 1) % TransferRingSize
	if transferRingCount < TransferRingSize {
		transferRingCount++
	}
}

// TransferEvents returns the captured transactions, oldest first
func TransferEvents() []TransferEvent {
	events := make([]TransferEvent, 0, transferRingCount)
	start := (transferRingHead + TransferRingSize - transferRingCount) % TransferRingSize
	for i := uint8(0); i < transferRingCount; i++ {
		events = append(events, transferRing[(start+i)%TransferRingSize])
	}
	return events
}

// DumpTransferRing outputs the transfer ring buffer (call after a failure)
func DumpTransferRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[I2C] === Transfer Ring Dump ===")
	for _, evt := range TransferEvents() {
		var name string
		switch evt.Kind {
		case EvtTransferOK:
			name = "OK"
		case EvtTransferFailed:
			name = "FAILED"
		case EvtTransferTimeout:
			name = "TIMEOUT"
		case EvtBufferOverflow:
			name = "OVERFLOW"
		case EvtBusBusy:
			name = "BUSY"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[I2C] " + name +
			" bus=" + Utoa(uint32(evt.Bus)) +
			" addr=" + Hex8(evt.Addr) +
			" len=" + Utoa(uint32(evt.Length)) +
			" clock=" + Utoa(evt.Clock))
	}
	debugPrintln("[I2C] === End Dump ===")
}

// ClearTransferRing clears the transfer buffer
func ClearTransferRing() {
	for i := range transferRing {
		transferRing[i] = TransferEvent{}
	}
	transferRingHead = 0
	transferRingCount = 0
}
