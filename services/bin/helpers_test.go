package bin

import (
	"testing"
	"time"

	"smartbin-go/services/hal"
	"smartbin-go/services/hal/platform"
	"smartbin-go/services/setup"
)

var pins = setup.CH32V003.Pins

// newRig boots a loop on host doubles and clears the boot trace. The lid sensor
// idles Deasserted; the fill sensor is held Asserted so idle iterations do not
// run the fill sequence.
func newRig(t *testing.T, opts ...Option) (*ControlLoop, *platform.HostIO, *platform.HostClock) {
	t.Helper()
	io, clk := platform.NewHost()
	l := New(io, clk, pins, opts...)
	if err := l.Boot(); err != nil {
		t.Fatalf("boot: %v", err)
	}
	io.SetInput(pins.LidSensor, Deasserted)
	io.SetInput(pins.FillSensor, Asserted)
	io.ResetOps()
	return l, io, clk
}

// step is a compact view of a recorded op: writes and delays only.
type step struct {
	at    time.Duration
	delay time.Duration
	pin   hal.Pin
	level hal.Level
}

func wr(at time.Duration, p hal.Pin, lvl hal.Level) step { return step{at: at, pin: p, level: lvl} }
func dl(at, dur time.Duration) step                      { return step{at: at, delay: dur, pin: -1} }

func actions(ops []platform.Op) []step {
	var out []step
	for _, op := range ops {
		switch op.Kind {
		case platform.OpWrite:
			out = append(out, wr(op.At, op.Pin, op.Level))
		case platform.OpDelay:
			out = append(out, dl(op.At, op.Dur))
		}
	}
	return out
}

func expectActions(t *testing.T, got, want []step) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d actions, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("action %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// checkMotorExclusive fails if forward and reverse are ever high together.
func checkMotorExclusive(t *testing.T, ops []platform.Op) {
	t.Helper()
	var fwd, rev hal.Level
	for i, op := range ops {
		if op.Kind != platform.OpWrite {
			continue
		}
		switch op.Pin {
		case pins.MotorForward:
			fwd = op.Level
		case pins.MotorReverse:
			rev = op.Level
		}
		if fwd == hal.High && rev == hal.High {
			t.Fatalf("forward and reverse both high at op %d (%v)", i, op)
		}
	}
}
