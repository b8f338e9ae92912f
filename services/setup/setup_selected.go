//go:build rp2040 || rp2350

package setup

// Selected is the setup the firmware boots with.
var Selected = Pico
