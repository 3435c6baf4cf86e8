//go:build rp2040

package main

import (
	"machine"
	"time"

	"ogxmini/board"
	"ogxmini/core"
)

// renderPeriodMS is the status panel refresh period.
const renderPeriodMS = 1000

var loopErrors uint32

func main() {
	// Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitDebug()
	UpdateSystemTime()

	core.SetGPIODriver(NewRPGPIODriver())
	core.SetI2CDriver(NewRPI2CDriver())

	oled := newDisplay()
	if board.OLEDEnabled {
		core.DebugPrintln("[OLED] " + board.OLEDBus.String() +
			" sda=" + core.Utoa(uint32(board.OLEDPins.SDA)) +
			" scl=" + core.Utoa(uint32(board.OLEDPins.SCL)))
	}
	// Failures are logged by the display; the firmware runs without a panel
	_ = oled.Initialize()

	core.ScheduleTask(core.NewPeriodicTask(core.TimerFromMS(renderPeriodMS), func() {
		_ = oled.RenderNow()
	}))

	for {
		// Recover from panics in the main loop to prevent a firmware crash
		func() {
			defer func() {
				if r := recover(); r != nil {
					loopErrors++
					core.DebugAsync("[MAIN] recovered, errors=" + core.Utoa(loopErrors))
				}
			}()

			UpdateSystemTime()
			core.ProcessTimers()
		}()

		// Let the debug worker run
		time.Sleep(time.Millisecond)
	}
}
