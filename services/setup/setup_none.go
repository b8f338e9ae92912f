//go:build !(rp2040 || rp2350)

package setup

// Selected is the setup the host simulator boots with.
var Selected = CH32V003
