package display

import (
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"ogxmini/core"
)

type mockI2C struct{ mock.Mock }

func (m *mockI2C) ConfigureBus(bus core.I2CBusID, cfg core.I2CBusConfig) error {
	return m.Called(bus, cfg).Error(0)
}

func (m *mockI2C) Write(bus core.I2CBusID, addr core.I2CAddress, data []byte) error {
	return m.Called(bus, addr, append([]byte(nil), data...)).Error(0)
}

type mockGPIO struct{ mock.Mock }

func (m *mockGPIO) ConfigureOutput(pin core.GPIOPin) error {
	return m.Called(pin).Error(0)
}

func (m *mockGPIO) SetPin(pin core.GPIOPin, value bool) error {
	return m.Called(pin, value).Error(0)
}

type busWrite struct {
	Bus  core.I2CBusID
	Addr core.I2CAddress
	Data []byte
}

// recordingI2C keeps a copy of every write. Writes after failAfter
// successful ones return err.
type recordingI2C struct {
	mu         sync.Mutex
	configured []core.I2CBusConfig
	writes     []busWrite
	err        error
	failAfter  int
}

func (r *recordingI2C) ConfigureBus(bus core.I2CBusID, cfg core.I2CBusConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configured = append(r.configured, cfg)
	return nil
}

func (r *recordingI2C) Write(bus core.I2CBusID, addr core.I2CAddress, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil && len(r.writes) >= r.failAfter {
		return r.err
	}
	r.writes = append(r.writes, busWrite{Bus: bus, Addr: addr, Data: append([]byte(nil), data...)})
	return nil
}

func (r *recordingI2C) take() []busWrite {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.writes
	r.writes = nil
	return w
}

// stallingI2C blocks every write until release is closed, then returns err.
type stallingI2C struct {
	release chan struct{}
	err     error

	mu     sync.Mutex
	writes [][]byte
}

func (s *stallingI2C) ConfigureBus(core.I2CBusID, core.I2CBusConfig) error { return nil }

func (s *stallingI2C) Write(_ core.I2CBusID, _ core.I2CAddress, data []byte) error {
	s.mu.Lock()
	s.writes = append(s.writes, append([]byte(nil), data...))
	s.mu.Unlock()
	<-s.release
	return s.err
}

func (s *stallingI2C) written() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.writes...)
}

// sleepRecorder collects requested sleeps instead of blocking.
type sleepRecorder struct {
	sleeps []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) { s.sleeps = append(s.sleeps, d) }

func (s *sleepRecorder) delay() *Delay {
	return &Delay{Granularity: time.Microsecond, Sleep: s.sleep}
}

type lineState struct{ scl, sda bool }

// traceLines records the level of both lines after every change.
type traceLines struct {
	Delay
	state     lineState
	trace     []lineState
	halfDelay int
	inits     int

	// SetClock/SetData calls before err is returned; negative never fails
	failAfter int
	sets      int
	err       error
}

func newTraceLines() *traceLines {
	l := &traceLines{state: lineState{true, true}, failAfter: -1}
	l.Delay = Delay{Granularity: time.Microsecond, Sleep: func(time.Duration) {}}
	return l
}

func (l *traceLines) InitGPIO() error { l.inits++; return nil }

func (l *traceLines) Delay100Nano() { l.halfDelay++ }

func (l *traceLines) set(fn func()) error {
	if l.failAfter >= 0 && l.sets >= l.failAfter {
		return l.err
	}
	l.sets++
	fn()
	l.trace = append(l.trace, l.state)
	return nil
}

func (l *traceLines) SetClock(high bool) error {
	return l.set(func() { l.state.scl = high })
}

func (l *traceLines) SetData(high bool) error {
	return l.set(func() { l.state.sda = high })
}

// decodeI2C turns a line trace into the byte frames between START and
// STOP. Data is sampled on rising SCL; every ninth bit is the ACK slot.
func decodeI2C(initial lineState, trace []lineState) [][]byte {
	var (
		frames  [][]byte
		frame   []byte
		bits    []bool
		inFrame bool
	)
	prev := initial
	for _, cur := range trace {
		switch {
		case prev.scl && cur.scl && prev.sda && !cur.sda:
			inFrame, frame, bits = true, nil, nil
		case prev.scl && cur.scl && !prev.sda && cur.sda:
			if inFrame {
				frames = append(frames, frame)
			}
			inFrame = false
		case !prev.scl && cur.scl && inFrame:
			bits = append(bits, cur.sda)
			if len(bits) == 9 {
				var b byte
				for _, bit := range bits[:8] {
					b <<= 1
					if bit {
						b |= 1
					}
				}
				frame = append(frame, b)
				bits = bits[:0]
			}
		}
		prev = cur
	}
	return frames
}

// recordingTransport logs the transaction calls made on it.
type recordingTransport struct {
	calls []string
	sent  [][]byte
	addrs []uint8

	initErr error
	endErr  error
}

func (r *recordingTransport) Init() error {
	r.calls = append(r.calls, "init")
	return r.initErr
}

func (r *recordingTransport) StartTransfer() error {
	r.calls = append(r.calls, "start")
	return nil
}

func (r *recordingTransport) Send(data []byte) error {
	r.calls = append(r.calls, "send")
	r.sent = append(r.sent, append([]byte(nil), data...))
	return nil
}

func (r *recordingTransport) EndTransfer(addr8 uint8) error {
	r.calls = append(r.calls, "end")
	r.addrs = append(r.addrs, addr8)
	return r.endErr
}

// captureDebug routes core debug output into the returned slice.
func captureDebug(t interface{ Cleanup(func()) }) *[]string {
	var lines []string
	core.SetDebugWriter(func(s string) { lines = append(lines, s) })
	core.SetDebugEnabled(true)
	t.Cleanup(func() {
		core.SetDebugWriter(func(string) {})
		core.SetDebugEnabled(false)
	})
	return &lines
}

// txBus is a drivers.I2C that records writes. With nack set it fails like
// a software bus that saw no ACK.
type txBus struct {
	addrs  []uint16
	writes [][]byte
	nack   error
}

func (b *txBus) Tx(addr uint16, w, r []byte) error {
	if b.nack != nil {
		return b.nack
	}
	b.addrs = append(b.addrs, addr)
	b.writes = append(b.writes, append([]byte(nil), w...))
	return nil
}
