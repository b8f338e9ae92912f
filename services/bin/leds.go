package bin

import (
	"smartbin-go/services/hal"
	"smartbin-go/types"
)

// LedBank maps the three indicator LEDs to their lines.
type LedBank struct {
	io   hal.DigitalIO
	pins [3]hal.Pin
}

func NewLedBank(io hal.DigitalIO, lid, status2, status3 hal.Pin) *LedBank {
	return &LedBank{io: io, pins: [3]hal.Pin{lid, status2, status3}}
}

func (b *LedBank) Set(id types.LED, on bool) {
	if int(id) >= len(b.pins) {
		return
	}
	b.io.Write(b.pins[id], hal.Level(on))
}

func (b *LedBank) AllOff() {
	for _, p := range b.pins {
		b.io.Write(p, hal.Low)
	}
}
