// services/hal/platform/factories_host.go
//go:build !(rp2040 || rp2350)

package platform

import (
	"strconv"
	"sync"
	"time"

	"smartbin-go/errcode"
	"smartbin-go/services/hal"
)

// BoardName identifies the platform the setup is selected for.
const BoardName = "host"

// ----------------------------- Trace -----------------------------------------

type OpKind uint8

const (
	OpConfigureOutput OpKind = iota
	OpConfigureInput
	OpWrite
	OpRead
	OpDelay
)

func (k OpKind) String() string {
	switch k {
	case OpConfigureOutput:
		return "configure_output"
	case OpConfigureInput:
		return "configure_input"
	case OpWrite:
		return "write"
	case OpRead:
		return "read"
	case OpDelay:
		return "delay"
	default:
		return "?"
	}
}

// Op is one recorded call against the host doubles, stamped with the virtual
// time at which it happened.
type Op struct {
	At    time.Duration
	Kind  OpKind
	Pin   hal.Pin
	Level hal.Level
	Pull  hal.Pull
	Dur   time.Duration // OpDelay only
}

func (o Op) String() string {
	s := "+" + strconv.FormatInt(o.At.Milliseconds(), 10) + "ms " + o.Kind.String()
	switch o.Kind {
	case OpDelay:
		return s + " " + o.Dur.String()
	case OpWrite, OpRead:
		return s + " pin" + strconv.Itoa(int(o.Pin)) + "=" + o.Level.String()
	default:
		return s + " pin" + strconv.Itoa(int(o.Pin))
	}
}

type recorder struct {
	mu   sync.Mutex
	now  time.Duration
	ops  []Op
	keep int
}

func (r *recorder) add(op Op) {
	r.mu.Lock()
	op.At = r.now
	r.ops = append(r.ops, op)
	if r.keep > 0 && len(r.ops) > 2*r.keep {
		r.ops = append(r.ops[:0], r.ops[len(r.ops)-r.keep:]...)
	}
	r.mu.Unlock()
}

// ----------------------------- GPIO (host) -----------------------------------

type hostLine struct {
	configured bool
	output     bool
	level      hal.Level
}

// HostIO implements hal.DigitalIO over simulated lines and records every call.
// Sensor inputs are driven by tests through SetInput.
type HostIO struct {
	rec   *recorder
	mu    sync.Mutex
	lines map[hal.Pin]*hostLine
}

// HostClock implements hal.Clock as a virtual clock. Delay advances virtual
// time instantly unless Scale > 0, in which case it also sleeps d*Scale.
type HostClock struct {
	rec   *recorder
	Scale float64
}

// NewHost returns a linked IO/clock pair sharing one trace.
func NewHost() (*HostIO, *HostClock) {
	rec := &recorder{}
	return &HostIO{rec: rec, lines: make(map[hal.Pin]*hostLine)}, &HostClock{rec: rec}
}

var (
	_ hal.DigitalIO = (*HostIO)(nil)
	_ hal.Clock     = (*HostClock)(nil)
)

func (h *HostIO) line(p hal.Pin) *hostLine {
	l, ok := h.lines[p]
	if !ok {
		l = &hostLine{}
		h.lines[p] = l
	}
	return l
}

func (h *HostIO) ConfigureOutput(p hal.Pin) error {
	if p < 0 {
		return &errcode.E{C: errcode.UnknownPin, Op: "configure_output", Msg: "pin " + strconv.Itoa(int(p))}
	}
	h.mu.Lock()
	l := h.line(p)
	if l.configured && !l.output {
		h.mu.Unlock()
		return &errcode.E{C: errcode.PinInUse, Op: "configure_output", Msg: "pin " + strconv.Itoa(int(p))}
	}
	l.configured, l.output, l.level = true, true, hal.Low
	h.mu.Unlock()
	h.rec.add(Op{Kind: OpConfigureOutput, Pin: p})
	return nil
}

func (h *HostIO) ConfigureInput(p hal.Pin, pull hal.Pull) error {
	if p < 0 {
		return &errcode.E{C: errcode.UnknownPin, Op: "configure_input", Msg: "pin " + strconv.Itoa(int(p))}
	}
	h.mu.Lock()
	l := h.line(p)
	if l.configured && l.output {
		h.mu.Unlock()
		return &errcode.E{C: errcode.PinInUse, Op: "configure_input", Msg: "pin " + strconv.Itoa(int(p))}
	}
	if !l.configured {
		// idle level follows the bias until a test drives the line
		l.level = pull == hal.PullUp
	}
	l.configured, l.output = true, false
	h.mu.Unlock()
	h.rec.add(Op{Kind: OpConfigureInput, Pin: p, Pull: pull})
	return nil
}

func (h *HostIO) Write(p hal.Pin, level hal.Level) {
	h.mu.Lock()
	l := h.line(p)
	if l.output {
		l.level = level
	}
	h.mu.Unlock()
	h.rec.add(Op{Kind: OpWrite, Pin: p, Level: level})
}

func (h *HostIO) Read(p hal.Pin) hal.Level {
	h.mu.Lock()
	v := h.line(p).level
	h.mu.Unlock()
	h.rec.add(Op{Kind: OpRead, Pin: p, Level: v})
	return v
}

// SetInput drives the simulated level seen on an input line.
func (h *HostIO) SetInput(p hal.Pin, level hal.Level) {
	h.mu.Lock()
	l := h.line(p)
	if !l.output {
		l.level = level
	}
	h.mu.Unlock()
}

// Level returns the current level of a line without recording a read.
func (h *HostIO) Level(p hal.Pin) hal.Level {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.line(p).level
}

// IsOutput reports whether p has been configured as an output.
func (h *HostIO) IsOutput(p hal.Pin) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, ok := h.lines[p]
	return ok && l.configured && l.output
}

// Ops returns a copy of the recorded trace.
func (h *HostIO) Ops() []Op {
	h.rec.mu.Lock()
	defer h.rec.mu.Unlock()
	return append([]Op(nil), h.rec.ops...)
}

// ResetOps clears the trace; line state and virtual time are kept.
func (h *HostIO) ResetOps() {
	h.rec.mu.Lock()
	h.rec.ops = h.rec.ops[:0]
	h.rec.mu.Unlock()
}

// KeepLast bounds the trace to roughly the last n ops; 0 keeps everything.
func (h *HostIO) KeepLast(n int) {
	h.rec.mu.Lock()
	h.rec.keep = n
	h.rec.mu.Unlock()
}

// ----------------------------- Clock (host) ----------------------------------

func (c *HostClock) Delay(d time.Duration) {
	c.rec.add(Op{Kind: OpDelay, Dur: d})
	c.rec.mu.Lock()
	c.rec.now += d
	c.rec.mu.Unlock()
	if c.Scale > 0 {
		time.Sleep(time.Duration(float64(d) * c.Scale))
	}
}

// Now returns the virtual time elapsed since NewHost.
func (c *HostClock) Now() time.Duration {
	c.rec.mu.Lock()
	defer c.rec.mu.Unlock()
	return c.rec.now
}

// Default returns the platform IO and clock: a host pair running in real time.
func Default() (hal.DigitalIO, hal.Clock) {
	io, clk := NewHost()
	io.KeepLast(256)
	clk.Scale = 1
	return io, clk
}
