//go:build !tinygo

package main

import (
	"io"

	"github.com/golang/glog"
	"github.com/tarm/serial"

	"ogxmini/core"
)

// openConsole opens a serial port for mirrored debug output.
func openConsole(name string, baud int) (io.WriteCloser, error) {
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, err
	}
	return port, nil
}

// debugWriter logs through glog and copies every line to console when set.
func debugWriter(console io.Writer) core.DebugWriter {
	return func(s string) {
		glog.InfoDepth(1, s)
		if console == nil {
			return
		}
		if _, err := io.WriteString(console, s+"\r\n"); err != nil {
			glog.Warningf("console: %v", err)
		}
	}
}
