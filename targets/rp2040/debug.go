//go:build rp2040

package main

import (
	"machine"

	"ogxmini/core"
)

// debugOutput enables debug lines on the USB serial console.
const debugOutput = true

// InitDebug routes core debug output to the USB CDC console.
func InitDebug() {
	core.SetDebugWriter(func(s string) {
		machine.Serial.Write([]byte(s))
		machine.Serial.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(debugOutput)
	core.InitAsyncDebug()
}
