package core

// TimerFreq is the system timer frequency.
// The RP2040/RP2350 timer peripheral counts microseconds.
const (
	TimerFreq = 1000000
)

var systemTicks uint32

// GetTime returns the current system time in timer ticks
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the current system time (for testing/hardware integration)
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// TimerFromUS converts microseconds to timer ticks
func TimerFromUS(us uint32) uint32 {
	return uint32(uint64(us) * TimerFreq / 1000000)
}

// TimerFromMS converts milliseconds to timer ticks
func TimerFromMS(ms uint32) uint32 {
	return uint32(uint64(ms) * TimerFreq / 1000)
}

// ProcessTimers runs every task that is due at the current time
func ProcessTimers() {
	currentTime = GetTime()
	TaskDispatch()
}
