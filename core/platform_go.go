//go:build !tinygo

package core

// Host builds (tests, the Linux target) have no interrupt controller and
// drive the tick counter through SetTime.

// State is a placeholder for interrupt state on regular Go
type State uintptr

func disableInterrupts() State { return 0 }

func restoreInterrupts(State) {}

func getSystemTicks() uint32 {
	return systemTicks
}

func setSystemTicks(ticks uint32) {
	systemTicks = ticks
}
