// services/hal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"
	"strconv"
	"time"

	"smartbin-go/errcode"
	"smartbin-go/services/hal"
)

const BoardName = "pico"

// Default returns machine-backed IO and a sleeping clock.
func Default() (hal.DigitalIO, hal.Clock) { return rp2IO{}, sleepClock{} }

// ---- GPIO ----

// rp2IO maps hal.Pin directly to machine.Pin (GP numbering).
type rp2IO struct{}

var _ hal.DigitalIO = rp2IO{}

func pinOf(op string, p hal.Pin) (machine.Pin, error) {
	// RP2 user GPIOs GP0..GP29.
	if p < 0 || p > 29 {
		return machine.NoPin, &errcode.E{C: errcode.UnknownPin, Op: op, Msg: "pin " + strconv.Itoa(int(p))}
	}
	return machine.Pin(p), nil
}

func (rp2IO) ConfigureOutput(p hal.Pin) error {
	mp, err := pinOf("configure_output", p)
	if err != nil {
		return err
	}
	mp.Configure(machine.PinConfig{Mode: machine.PinOutput})
	mp.Low()
	return nil
}

func (rp2IO) ConfigureInput(p hal.Pin, pull hal.Pull) error {
	mp, err := pinOf("configure_input", p)
	if err != nil {
		return err
	}
	var mode machine.PinMode
	switch pull {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	mp.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (rp2IO) Write(p hal.Pin, level hal.Level) { machine.Pin(p).Set(bool(level)) }
func (rp2IO) Read(p hal.Pin) hal.Level         { return hal.Level(machine.Pin(p).Get()) }

// ---- Clock ----

// sleepClock blocks the only running goroutine; nothing else is scheduled.
type sleepClock struct{}

func (sleepClock) Delay(d time.Duration) { time.Sleep(d) }
