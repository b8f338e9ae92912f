package bin

import (
	"smartbin-go/services/hal"
	"smartbin-go/types"
	"smartbin-go/x/logx"
)

// FillIndicator lights the three LEDs in turn while the fill sensor reads
// Deasserted. It keeps no latch, so the sequence repeats every iteration for
// as long as the reading holds.
//
// The polarity follows the installed hardware: Deasserted is the
// unobstructed reading on a pull-down input. Do not invert it without
// checking the sensor wiring.
type FillIndicator struct {
	leds *LedBank
	clk  hal.Clock
}

func NewFillIndicator(leds *LedBank, clk hal.Clock) *FillIndicator {
	return &FillIndicator{leds: leds, clk: clk}
}

// Update reports whether the sequence ran.
func (f *FillIndicator) Update(st *State, sample hal.Level) bool {
	if sample != Deasserted {
		return false
	}
	// The first stage reuses the lid LED.
	for _, id := range [...]types.LED{types.LEDLid, types.LEDStatus2, types.LEDStatus3} {
		f.leds.Set(id, true)
		f.clk.Delay(FillStep)
	}
	f.leds.AllOff()
	st.Fills++
	logx.Debug("fill", "fill sequence done", "count", st.Fills)
	return true
}
