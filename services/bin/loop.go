package bin

import (
	"errors"

	"smartbin-go/bus"
	"smartbin-go/services/hal"
	"smartbin-go/services/setup"
	"smartbin-go/types"
	"smartbin-go/x/logx"
	"smartbin-go/x/timex"
)

// Loop state is republished every loopReportEvery iterations.
const loopReportEvery = 50

var (
	topicLidValue      = bus.T("bin", "lid", "value")
	topicPresenceEvent = bus.T("bin", "lid", "event", "presence")
	topicFillEvent     = bus.T("bin", "fill", "event", "sequence")
	topicLoopValue     = bus.T("bin", "loop", "value")
)

// ControlLoop samples both sensors, runs the lid and fill rules, then idles.
// Everything happens on the caller's goroutine; every delay blocks the loop.
type ControlLoop struct {
	io   hal.DigitalIO
	clk  hal.Clock
	pins setup.PinMap

	motor *MotorDriver
	leds  *LedBank
	lid   *LidController
	fill  *FillIndicator

	conn  *bus.Connection // optional
	state State
}

type Option func(*ControlLoop)

// WithBus reports lid, fill and loop state on conn. Publishing never blocks.
func WithBus(conn *bus.Connection) Option {
	return func(l *ControlLoop) { l.conn = conn }
}

func New(io hal.DigitalIO, clk hal.Clock, pins setup.PinMap, opts ...Option) *ControlLoop {
	l := &ControlLoop{io: io, clk: clk, pins: pins}
	l.motor = NewMotorDriver(io, pins.MotorForward, pins.MotorReverse, pins.MotorEnable)
	l.leds = NewLedBank(io, pins.LidLED, pins.StatusLED2, pins.StatusLED3)
	l.lid = NewLidController(l.motor, l.leds, clk)
	l.fill = NewFillIndicator(l.leds, clk)
	for _, o := range opts {
		o(l)
	}
	return l
}

// Boot configures the outputs, arms the motor, configures both sensors with
// pull-down bias and clears the LEDs. A line that fails to configure is
// reported in the returned error; boot carries on regardless.
func (l *ControlLoop) Boot() error {
	var errs []error
	for _, p := range []hal.Pin{
		l.pins.MotorForward, l.pins.MotorReverse, l.pins.MotorEnable,
		l.pins.LidLED, l.pins.StatusLED2, l.pins.StatusLED3,
	} {
		if err := l.io.ConfigureOutput(p); err != nil {
			errs = append(errs, err)
		}
	}
	l.motor.Arm()

	for _, p := range []hal.Pin{l.pins.LidSensor, l.pins.FillSensor} {
		if err := l.io.ConfigureInput(p, hal.PullDown); err != nil {
			errs = append(errs, err)
		}
	}
	l.leds.AllOff()

	l.publish(topicLidValue, types.LidValue{Opened: l.state.LidOpened}, true)
	logx.Info("loop", "boot done", "failures", len(errs))
	return errors.Join(errs...)
}

// Run iterates forever.
func (l *ControlLoop) Run() {
	for {
		l.Step()
	}
}

// Step performs one iteration: sample, lid rule, fill rule, idle.
func (l *ControlLoop) Step() {
	lidSample := l.io.Read(l.pins.LidSensor)
	fillSample := l.io.Read(l.pins.FillSensor)

	was := l.state.LidOpened
	if l.lid.Update(&l.state, lidSample) {
		l.publish(topicPresenceEvent, types.PresenceEvent{Count: l.state.Presences, TS: timex.NowMs()}, false)
	}
	if l.state.LidOpened != was {
		l.publish(topicLidValue, types.LidValue{Opened: l.state.LidOpened}, true)
	}

	if l.fill.Update(&l.state, fillSample) {
		l.publish(topicFillEvent, types.FillEvent{Count: l.state.Fills, TS: timex.NowMs()}, false)
	}

	l.clk.Delay(IdleInterval)

	l.state.Iterations++
	if l.state.Iterations%loopReportEvery == 0 {
		l.publish(topicLoopValue, types.LoopValue{Iterations: l.state.Iterations, TS: timex.NowMs()}, true)
	}
}

// State returns a copy of the loop state.
func (l *ControlLoop) State() State { return l.state }

func (l *ControlLoop) publish(t bus.Topic, payload any, retained bool) {
	if l.conn == nil {
		return
	}
	l.conn.Publish(l.conn.NewMessage(t, payload, retained))
}
