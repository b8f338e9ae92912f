package bin

import (
	"runtime"
	"testing"
	"time"

	"smartbin-go/services/hal"
	"smartbin-go/services/hal/platform"
)

const ms = time.Millisecond

func TestBootSequence(t *testing.T) {
	io, clk := platform.NewHost()
	l := New(io, clk, pins)
	if err := l.Boot(); err != nil {
		t.Fatalf("boot: %v", err)
	}

	ops := io.Ops()
	var kinds []platform.OpKind
	for _, op := range ops {
		kinds = append(kinds, op.Kind)
	}
	// six outputs, enable high, two inputs, three LEDs off
	want := []platform.OpKind{
		platform.OpConfigureOutput, platform.OpConfigureOutput, platform.OpConfigureOutput,
		platform.OpConfigureOutput, platform.OpConfigureOutput, platform.OpConfigureOutput,
		platform.OpWrite,
		platform.OpConfigureInput, platform.OpConfigureInput,
		platform.OpWrite, platform.OpWrite, platform.OpWrite,
	}
	if len(kinds) != len(want) {
		t.Fatalf("boot ops = %v", ops)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("boot op %d = %v, want %v", i, ops[i], want[i])
		}
	}
	if ops[6].Pin != pins.MotorEnable || ops[6].Level != hal.High {
		t.Fatalf("enable not driven high: %v", ops[6])
	}
	for _, op := range ops[7:9] {
		if op.Pull != hal.PullDown {
			t.Fatalf("sensor %d not pulled down", op.Pin)
		}
	}
	for _, p := range []hal.Pin{pins.LidLED, pins.StatusLED2, pins.StatusLED3} {
		if !io.IsOutput(p) || io.Level(p) != hal.Low {
			t.Fatalf("LED pin %d not an output at low", p)
		}
	}
	if clk.Now() != 0 {
		t.Fatalf("boot must not delay, took %v", clk.Now())
	}
}

func TestBootReportsConflictsAndProceeds(t *testing.T) {
	io, clk := platform.NewHost()
	bad := pins
	bad.FillSensor = bad.StatusLED3 // already an output
	l := New(io, clk, bad)
	if err := l.Boot(); err == nil {
		t.Fatal("expected a configuration error")
	}
	// loop still runs
	l.Step()
	if l.State().Iterations != 1 {
		t.Fatal("loop should proceed after boot errors")
	}
}

func TestPresenceSequenceTiming(t *testing.T) {
	l, io, _ := newRig(t)
	io.SetInput(pins.LidSensor, Asserted)

	l.Step()

	fwd, rev, led := pins.MotorForward, pins.MotorReverse, pins.LidLED
	expectActions(t, actions(io.Ops()), []step{
		wr(0, led, hal.High),
		wr(0, rev, hal.Low), wr(0, fwd, hal.High),
		dl(0, 150*ms),
		wr(150*ms, fwd, hal.Low), wr(150*ms, rev, hal.Low),
		dl(150*ms, 500*ms),
		wr(650*ms, led, hal.Low),
		dl(650*ms, 500*ms),
		wr(1150*ms, fwd, hal.Low), wr(1150*ms, rev, hal.High),
		dl(1150*ms, 150*ms),
		wr(1300*ms, fwd, hal.Low), wr(1300*ms, rev, hal.Low),
		dl(1300*ms, IdleInterval),
	})
	if st := l.State(); !st.LidOpened || st.Presences != 1 {
		t.Fatalf("state after presence = %+v", st)
	}
}

func TestPresenceAtMostOncePerAssertion(t *testing.T) {
	l, io, clk := newRig(t)
	io.SetInput(pins.LidSensor, Asserted)

	l.Step()
	start := clk.Now()
	for i := 0; i < 20; i++ {
		l.Step()
	}
	if n := l.State().Presences; n != 1 {
		t.Fatalf("presence ran %d times during one assertion", n)
	}
	if got := clk.Now() - start; got != 20*IdleInterval {
		t.Fatalf("latched iterations should only idle, took %v", got)
	}
	if !l.State().LidOpened {
		t.Fatal("latch should hold while asserted")
	}
}

func TestLatchResetsOnDeassert(t *testing.T) {
	l, io, _ := newRig(t)

	io.SetInput(pins.LidSensor, Asserted)
	l.Step()
	io.SetInput(pins.LidSensor, Deasserted)
	l.Step()
	if l.State().LidOpened {
		t.Fatal("latch should clear on the first deasserted sample")
	}
	io.SetInput(pins.LidSensor, Asserted)
	l.Step()
	if st := l.State(); st.Presences != 2 || !st.LidOpened {
		t.Fatalf("re-assertion should re-trigger, state %+v", st)
	}
}

func TestFillSequence(t *testing.T) {
	l, io, _ := newRig(t)
	io.SetInput(pins.FillSensor, Deasserted)

	l.Step()

	lid, s2, s3 := pins.LidLED, pins.StatusLED2, pins.StatusLED3
	expectActions(t, actions(io.Ops()), []step{
		wr(0, lid, hal.High), dl(0, FillStep),
		wr(1000*ms, s2, hal.High), dl(1000*ms, FillStep),
		wr(2000*ms, s3, hal.High), dl(2000*ms, FillStep),
		wr(3000*ms, lid, hal.Low), wr(3000*ms, s2, hal.Low), wr(3000*ms, s3, hal.Low),
		dl(3000*ms, IdleInterval),
	})
	if l.State().Fills != 1 {
		t.Fatalf("fills = %d", l.State().Fills)
	}
}

func TestFillRepeatsWhileDeasserted(t *testing.T) {
	l, io, clk := newRig(t)
	io.SetInput(pins.FillSensor, Deasserted)

	for i := 0; i < 3; i++ {
		l.Step()
	}
	if l.State().Fills != 3 {
		t.Fatalf("fills = %d, want one per iteration", l.State().Fills)
	}
	if clk.Now() != 3*(3*FillStep+IdleInterval) {
		t.Fatalf("elapsed %v", clk.Now())
	}
}

func TestFillSkippedWhenAsserted(t *testing.T) {
	l, io, _ := newRig(t)

	l.Step()

	expectActions(t, actions(io.Ops()), []step{dl(0, IdleInterval)})
	if l.State().Fills != 0 {
		t.Fatal("no fill sequence expected")
	}
}

func TestPresenceThenFillInOneIteration(t *testing.T) {
	l, io, clk := newRig(t)
	io.SetInput(pins.LidSensor, Asserted)
	io.SetInput(pins.FillSensor, Deasserted)

	l.Step()

	// The fill branch uses the sample taken before the presence sequence.
	if st := l.State(); st.Presences != 1 || st.Fills != 1 {
		t.Fatalf("state = %+v", st)
	}
	presence := 2*LidTravel + LidOpenDwell + LidCloseDelay
	if clk.Now() != presence+3*FillStep+IdleInterval {
		t.Fatalf("elapsed %v", clk.Now())
	}
	checkMotorExclusive(t, io.Ops())
}

func TestMotorLinesExclusiveOverRun(t *testing.T) {
	l, io, _ := newRig(t)
	for i := 0; i < 200; i++ {
		io.SetInput(pins.LidSensor, hal.Level(i%3 != 0))
		io.SetInput(pins.FillSensor, hal.Level(i%5 != 0))
		l.Step()
	}
	if l.State().Presences == 0 {
		t.Fatal("pattern should have triggered presence sequences")
	}
	checkMotorExclusive(t, io.Ops())
}

func TestTenThousandIterations(t *testing.T) {
	l, io, clk := newRig(t)
	io.KeepLast(64)

	var last time.Duration
	for i := 0; i < 10000; i++ {
		io.SetInput(pins.LidSensor, hal.Level(i%2 == 0))
		io.SetInput(pins.FillSensor, hal.Level(i%4 != 3))
		l.Step()
		if now := clk.Now(); now <= last {
			t.Fatalf("iteration %d made no progress", i)
		} else {
			last = now
		}
	}
	st := l.State()
	if st.Iterations != 10000 || st.Presences != 5000 || st.Fills != 2500 {
		t.Fatalf("state = %+v", st)
	}
}

// stopClock ends the calling goroutine after limit delays, the only way out
// of Run in a test.
type stopClock struct {
	hal.Clock
	limit, n int
	done     chan struct{}
}

func (c *stopClock) Delay(d time.Duration) {
	c.Clock.Delay(d)
	c.n++
	if c.n == c.limit {
		close(c.done)
		runtime.Goexit()
	}
}

func TestRunKeepsIterating(t *testing.T) {
	io, clk := platform.NewHost()
	io.KeepLast(64)
	sc := &stopClock{Clock: clk, limit: 500, done: make(chan struct{})}
	l := New(io, sc, pins)
	_ = l.Boot()
	io.SetInput(pins.FillSensor, Asserted)

	go l.Run()

	select {
	case <-sc.done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not reach the delay limit")
	}
	// idle-only iterations: one delay each
	if got := l.State().Iterations; got != 499 {
		t.Fatalf("iterations = %d, want 499", got)
	}
}
