//go:build rp2040 && nooled

package main

import "ogxmini/display"

func newDisplay() display.Facade {
	return display.Nop{}
}
