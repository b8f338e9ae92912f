package bin

import (
	"smartbin-go/services/hal"
	"smartbin-go/types"
	"smartbin-go/x/logx"
)

// LidController opens and closes the lid once per continuous presence.
type LidController struct {
	motor *MotorDriver
	leds  *LedBank
	clk   hal.Clock
}

func NewLidController(m *MotorDriver, leds *LedBank, clk hal.Clock) *LidController {
	return &LidController{motor: m, leds: leds, clk: clk}
}

// Update applies one lid sensor sample. It runs the presence sequence, which
// blocks for its full duration, only on the first Asserted sample after a
// Deasserted one. It reports whether the sequence ran.
func (c *LidController) Update(st *State, sample hal.Level) bool {
	if sample == Asserted && !st.LidOpened {
		c.presence()
		st.LidOpened = true
		st.Presences++
		logx.Info("lid", "presence sequence done", "count", st.Presences)
		return true
	}
	if sample == Deasserted {
		st.LidOpened = false
	}
	return false
}

func (c *LidController) presence() {
	c.leds.Set(types.LEDLid, true)

	c.motor.Open()
	c.clk.Delay(LidTravel)
	c.motor.Stop()

	c.clk.Delay(LidOpenDwell)
	c.leds.Set(types.LEDLid, false)

	c.clk.Delay(LidCloseDelay)
	c.motor.Close()
	c.clk.Delay(LidTravel)
	c.motor.Stop()
}
